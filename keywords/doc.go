// Package keywords extracts search keywords from free text and discovers
// domain vocabulary from the index via co-occurrence analysis. Discovered
// terms are persisted as dictionary entries and refreshed in the background
// when the index grows stale.
package keywords
