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


package search

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/poiesic/retrace/core"
	"github.com/poiesic/retrace/normalize"
	"github.com/poiesic/retrace/store"
)

// Defaults for Search parameters when the caller passes zero values.
const (
	DefaultSessionCount = 8
	DefaultMessageCount = 3
	DefaultContextChars = 300
)

// TieBreak selects the timestamp direction for final ranking ties.
type TieBreak int

const (
	// MostRecentFirst ranks newer sessions above older ones on a tie.
	MostRecentFirst TieBreak = iota
	// OldestFirst ranks older sessions above newer ones on a tie.
	OldestFirst
)

// Params controls one search call.
type Params struct {
	// SessionCount caps ranked sessions in the report. Zero means
	// DefaultSessionCount.
	SessionCount int
	// MessageCount caps snippet rows per session. Negative suppresses
	// snippets entirely; zero means DefaultMessageCount.
	MessageCount int
	// ContextChars is the snippet window width. Zero means
	// DefaultContextChars.
	ContextChars int
	// Topics switches the per-session block to topic display.
	Topics bool
}

// SessionResult is one ranked session with its matching rows.
type SessionResult struct {
	SessionID core.SessionID
	// KeywordCounts maps raw query terms to total occurrences across
	// the session's matching rows.
	KeywordCounts map[string]int
	// WeightedScore sums the weights of distinct matched terms.
	WeightedScore uint64
	// Matches is the number of matching rows in the session.
	Matches     int
	Latest      time.Time
	Earliest    time.Time
	ProjectPath string
	// Selected holds the rows chosen for snippet display.
	Selected []*core.Row
	Topics   []string

	// rows is every matching row, kept for selection and topics.
	rows []*core.Row
}

// Report is the outcome of one search call.
type Report struct {
	Query    *Query
	Sessions []*SessionResult
	Params   Params
}

// SessionIDs returns the full ids of the ranked sessions, in rank
// order. Recall consumes these when chained after a search.
func (r *Report) SessionIDs() []core.SessionID {
	ids := make([]core.SessionID, len(r.Sessions))
	for i, s := range r.Sessions {
		ids[i] = s.SessionID
	}
	return ids
}

// Searcher runs compiled queries against the index store.
type Searcher struct {
	index          store.IndexStore
	dict           store.DictionaryRepository
	normalizer     *normalize.Normalizer
	excludeSession core.SessionID
	tieBreak       TieBreak
	logger         *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithDictionary wires the keyword dictionary into topic extraction.
func WithDictionary(dict store.DictionaryRepository) Option {
	return func(s *Searcher) error {
		s.dict = dict
		return nil
	}
}

// WithNormalizer replaces the default normalizer.
func WithNormalizer(n *normalize.Normalizer) Option {
	return func(s *Searcher) error {
		if n != nil {
			s.normalizer = n
		}
		return nil
	}
}

// WithExcludedSession drops one session from every result set. Used so
// the session issuing the search never surfaces itself.
func WithExcludedSession(id core.SessionID) Option {
	return func(s *Searcher) error {
		s.excludeSession = id
		return nil
	}
}

// WithTieBreak sets the timestamp direction for final ranking ties.
func WithTieBreak(tb TieBreak) Option {
	return func(s *Searcher) error {
		s.tieBreak = tb
		return nil
	}
}

// NewSearcher creates a new searcher over the index store.
func NewSearcher(index store.IndexStore, opts ...Option) (*Searcher, error) {
	if index == nil {
		return nil, ErrIndexRequired
	}

	s := &Searcher{
		index:      index,
		normalizer: normalize.New(),
		tieBreak:   MostRecentFirst,
		logger:     slog.Default().With("component", "searcher"),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Search compiles rawQuery and returns the ranked report.
func (s *Searcher) Search(ctx context.Context, rawQuery string, params Params) (*Report, error) {
	return s.SearchWithMonitor(ctx, rawQuery, params, nil)
}

// SearchWithMonitor is Search with stage callbacks.
func (s *Searcher) SearchWithMonitor(ctx context.Context, rawQuery string, params Params, monitor Monitor) (*Report, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	monitor.Start(rawQuery)

	query, err := Compile(rawQuery, s.normalizer)
	if err != nil {
		return nil, err
	}
	monitor.AfterCompile(query)

	if params.SessionCount == 0 {
		params.SessionCount = DefaultSessionCount
	}
	if params.ContextChars == 0 {
		params.ContextChars = DefaultContextChars
	}
	switch {
	case params.MessageCount < 0:
		params.MessageCount = 0
	case params.MessageCount == 0:
		params.MessageCount = DefaultMessageCount
	}

	rows, err := s.retrieve(ctx, query, monitor)
	if err != nil {
		return nil, err
	}

	sessions := s.rank(query, rows)
	if len(sessions) > params.SessionCount {
		sessions = sessions[:params.SessionCount]
	}

	for _, session := range sessions {
		s.selectRows(query, session, params.MessageCount)
		if params.Topics {
			session.Topics = s.topics(ctx, query, session)
		}
	}

	monitor.Finish(sessions)
	return &Report{Query: query, Sessions: sessions, Params: params}, nil
}

// retrieve scans the whole store and keeps unique matching rows.
// Incremental rebuilds can append duplicate rows, so identical
// (timestamp, role, text) triples within a session collapse to one.
func (s *Searcher) retrieve(ctx context.Context, query *Query, monitor Monitor) ([]*core.Row, error) {
	type rowKey struct {
		session core.SessionID
		ts      int64
		role    core.Role
		text    string
	}
	seen := make(map[rowKey]bool)

	var rows []*core.Row
	err := s.index.Scan(ctx, func(r *core.Row) error {
		if s.excludeSession != "" && r.SessionID == s.excludeSession {
			return nil
		}
		if !query.Matches(r.NormalizedText) {
			return nil
		}

		key := rowKey{r.SessionID, r.Timestamp.UnixMicro(), r.Role, r.Text}
		if seen[key] {
			return nil
		}
		seen[key] = true

		rows = append(rows, r)
		monitor.RowMatched(r)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Searcher) rank(query *Query, rows []*core.Row) []*SessionResult {
	bySession := make(map[core.SessionID]*SessionResult)
	rowsBySession := make(map[core.SessionID][]*core.Row)

	for _, row := range rows {
		session := bySession[row.SessionID]
		if session == nil {
			session = &SessionResult{
				SessionID:     row.SessionID,
				KeywordCounts: make(map[string]int),
				Earliest:      row.Timestamp,
				Latest:        row.Timestamp,
				ProjectPath:   row.OriginPath,
			}
			bySession[row.SessionID] = session
		}

		session.Matches++
		if row.Timestamp.After(session.Latest) {
			session.Latest = row.Timestamp
		}
		if row.Timestamp.Before(session.Earliest) {
			session.Earliest = row.Timestamp
		}

		for _, term := range query.Terms {
			if n := term.Count(row.NormalizedText); n > 0 {
				session.KeywordCounts[term.Raw] += n
			}
		}

		rowsBySession[row.SessionID] = append(rowsBySession[row.SessionID], row)
	}

	results := make([]*SessionResult, 0, len(bySession))
	for _, session := range bySession {
		for _, term := range query.Terms {
			if session.KeywordCounts[term.Raw] > 0 {
				session.WeightedScore += term.Weight
			}
		}
		results = append(results, session)
	}

	sort.Slice(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.WeightedScore != b.WeightedScore {
			return a.WeightedScore > b.WeightedScore
		}
		if a.Matches != b.Matches {
			return a.Matches > b.Matches
		}
		if !a.Latest.Equal(b.Latest) {
			if s.tieBreak == OldestFirst {
				return a.Latest.Before(b.Latest)
			}
			return a.Latest.After(b.Latest)
		}
		return a.SessionID < b.SessionID
	})

	for _, session := range results {
		session.rows = rowsBySession[session.SessionID]
	}
	return results
}

// selectRows trims a session's rows to the snippet budget, preferring
// rows that hit more distinct keywords, then user-authored rows.
func (s *Searcher) selectRows(query *Query, session *SessionResult, messageCount int) {
	rows := session.rows
	if messageCount <= 0 {
		session.Selected = nil
		return
	}

	type scored struct {
		row   *core.Row
		hits  int
		order int
	}
	candidates := make([]scored, len(rows))
	for i, row := range rows {
		candidates[i] = scored{
			row:   row,
			hits:  len(query.MatchedTerms(row.NormalizedText)),
			order: i,
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.hits != b.hits {
			return a.hits > b.hits
		}
		aUser := a.row.Role == core.RoleUser
		bUser := b.row.Role == core.RoleUser
		if aUser != bUser {
			return aUser
		}
		return a.order < b.order
	})

	if len(candidates) > messageCount {
		candidates = candidates[:messageCount]
	}

	selected := make([]*core.Row, len(candidates))
	for i, c := range candidates {
		selected[i] = c.row
	}
	session.Selected = selected
}
