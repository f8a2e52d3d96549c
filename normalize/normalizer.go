// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package normalize

import (
	"strings"
	"unicode"

	"github.com/blevesearch/go-porterstemmer"
)

// baseSynonyms canonicalizes common shorthand before stemming so both
// spellings land on the same token.
var baseSynonyms = map[string]string{
	"repo":  "repository",
	"repos": "repository",
	"k8s":   "kubernetes",
	"auth":  "authentication",
	"env":   "environment",
	"db":    "database",
	"dir":   "directory",
	"dirs":  "directory",
}

// Normalizer maps raw text to canonical token form. The zero value is
// not usable; construct with New.
type Normalizer struct {
	synonyms map[string]string
	cache    map[string]string
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithSynonyms merges extra synonym mappings (raw word -> canonical word)
// on top of the built-in table. Keyword Discovery feeds its dictionary
// through this.
func WithSynonyms(extra map[string]string) Option {
	return func(n *Normalizer) {
		for k, v := range extra {
			n.synonyms[strings.ToLower(k)] = strings.ToLower(v)
		}
	}
}

// New creates a Normalizer with the built-in synonym and irregulars tables.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{
		synonyms: make(map[string]string, len(baseSynonyms)),
		cache:    make(map[string]string),
	}
	for k, v := range baseSynonyms {
		n.synonyms[k] = v
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Normalize maps raw text to its canonical token form: tokens split on
// non-alphanumeric boundaries, lowercased, synonym-canonicalized,
// stemmed, and rejoined with single spaces. Underscore-joined input is
// treated as one literal phrase whose words normalize individually.
//
// If normalization of a token panics (stemmer edge cases on unusual
// runes), the whole call falls back to lowercase pass-through so the
// normalized store stays complete.
func (n *Normalizer) Normalize(text string) (normalized string) {
	defer func() {
		if r := recover(); r != nil {
			normalized = strings.ToLower(strings.TrimSpace(text))
		}
	}()

	tokens := Tokenize(text)
	out := make([]string, 0, len(tokens))
	for _, token := range tokens {
		out = append(out, n.word(token))
	}
	return strings.Join(out, " ")
}

// NormalizeTerm normalizes a single query term. Underscores join a
// literal phrase: each joined word normalizes independently and the
// result keeps single-space separators, matching the shape of
// normalized store text.
func (n *Normalizer) NormalizeTerm(term string) string {
	return n.Normalize(strings.ReplaceAll(term, "_", " "))
}

// word normalizes one token: irregular lookup first, then synonym
// canonicalization, then stemming. Non-ASCII tokens and tokens shorter
// than two runes pass through lowercased.
func (n *Normalizer) word(token string) string {
	lower := strings.ToLower(token)
	if cached, ok := n.cache[lower]; ok {
		return cached
	}

	result := lower
	switch {
	case len([]rune(lower)) < 2:
		// single characters are left alone
	case !isASCIIWord(lower):
		// non-ASCII tokens pass through unchanged
	default:
		if base, ok := irregulars[result]; ok {
			result = base
		} else {
			if canonical, ok := n.synonyms[result]; ok {
				result = canonical
			}
			result = porterstemmer.StemString(result)
		}
	}

	n.cache[lower] = result
	return result
}

// Tokenize splits text on non-alphanumeric boundaries. Pure function;
// it performs no case folding or stemming.
func Tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func isASCIIWord(s string) bool {
	for _, r := range s {
		if r > unicode.MaxASCII {
			return false
		}
	}
	return true
}
