// Package normalize maps raw transcript text to a canonical token form
// used for fuzzy matching.
//
// Normalization tokenizes on non-alphanumeric boundaries, lowercases,
// canonicalizes synonyms, and stems each word with a Porter stemmer
// backed by an irregular-verbs table (ran -> run, was -> be). The same
// normalizer is applied to indexed rows and to query terms, so both
// sides always agree on token shape.
//
// Normalization is deterministic for a given normalizer configuration.
// A Normalizer is not safe for concurrent use; indexing and search each
// run single-threaded over their own instance.
package normalize
