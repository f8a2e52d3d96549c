package search

import (
	"context"
	"regexp"
	"sort"
	"strings"

	"github.com/poiesic/retrace/keywords"
)

// MaxTopics caps the topic list per session.
const MaxTopics = 4

var topicWordPattern = regexp.MustCompile(`\b[a-zA-Z]{3,}\b`)

// topics returns the most frequent substantive words across a session's
// matching rows, excluding the query's own terms and stopwords. Words
// present in the keyword dictionary count double: discovery already
// judged them domain vocabulary.
func (s *Searcher) topics(ctx context.Context, query *Query, session *SessionResult) []string {
	exclude := make(map[string]bool, len(query.Terms))
	for _, term := range query.Terms {
		exclude[term.Raw] = true
		for _, w := range strings.Fields(term.Normalized) {
			exclude[w] = true
		}
	}

	known := s.dictionaryTerms(ctx)

	counts := make(map[string]int)
	for _, row := range session.rows {
		for _, word := range topicWordPattern.FindAllString(strings.ToLower(row.Text), -1) {
			if exclude[word] || keywords.IsSearchStopword(word) {
				continue
			}
			counts[word]++
		}
	}

	type topic struct {
		word  string
		score int
	}
	ranked := make([]topic, 0, len(counts))
	for word, count := range counts {
		score := count
		if known[word] {
			score *= 2
		}
		ranked = append(ranked, topic{word, score})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].word < ranked[j].word
	})

	if len(ranked) > MaxTopics {
		ranked = ranked[:MaxTopics]
	}
	out := make([]string, len(ranked))
	for i, t := range ranked {
		out[i] = t.word
	}
	return out
}

// dictionaryTerms loads the discovered vocabulary. Dictionary staleness
// or absence is fine; topics just lose their boost.
func (s *Searcher) dictionaryTerms(ctx context.Context) map[string]bool {
	if s.dict == nil {
		return nil
	}
	entries, err := s.dict.AllEntries(ctx)
	if err != nil {
		s.logger.Debug("dictionary unavailable for topics", "err", err)
		return nil
	}
	known := make(map[string]bool, len(entries))
	for _, e := range entries {
		known[e.Term] = true
	}
	return known
}
