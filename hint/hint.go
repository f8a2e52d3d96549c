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


package hint

import (
	"context"
	"log/slog"
	"strings"

	"github.com/poiesic/retrace/keywords"
	"github.com/poiesic/retrace/search"
)

// DefaultSessionCount caps hint results lower than plain search; hints
// are unsolicited, so they should stay short.
const DefaultSessionCount = 5

// Hinter wraps a Searcher with keyword extraction.
type Hinter struct {
	searcher *search.Searcher
	sessions int
	logger   *slog.Logger
}

// Option configures a Hinter.
type Option func(*Hinter)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(h *Hinter) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// WithSessionCount overrides the result cap.
func WithSessionCount(n int) Option {
	return func(h *Hinter) {
		if n > 0 {
			h.sessions = n
		}
	}
}

// NewHinter creates a Hinter over an existing searcher.
func NewHinter(searcher *search.Searcher, opts ...Option) (*Hinter, error) {
	if searcher == nil {
		return nil, ErrSearcherRequired
	}

	h := &Hinter{
		searcher: searcher,
		sessions: DefaultSessionCount,
		logger:   slog.Default().With("component", "hint"),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

// Result is one hint run: the keywords that were extracted and the
// report they produced. Report is nil when nothing was extractable.
type Result struct {
	Keywords []string
	Report   *search.Report
}

// Hint extracts keywords from text and searches for related sessions.
// Snippets are suppressed and topics shown instead; a hint should read
// as a pointer, not a dump.
func (h *Hinter) Hint(ctx context.Context, text string) (*Result, error) {
	extracted := keywords.Extract(text, keywords.MaxExtracted)
	if len(extracted) == 0 {
		h.logger.Debug("no keywords extracted", "chars", len(text))
		return &Result{}, nil
	}

	report, err := h.searcher.Search(ctx, strings.Join(extracted, " "), search.Params{
		SessionCount: h.sessions,
		MessageCount: -1,
		Topics:       true,
	})
	if err != nil {
		return nil, err
	}

	return &Result{Keywords: extracted, Report: report}, nil
}

// Render formats the hint for terminal display.
func (r *Result) Render() string {
	if len(r.Keywords) == 0 {
		return "No searchable keywords in input.\n"
	}
	if r.Report == nil || len(r.Report.Sessions) == 0 {
		return "No related past sessions.\n"
	}

	var b strings.Builder
	b.WriteString("Possibly related past sessions:\n\n")
	b.WriteString(r.Report.Render())
	return b.String()
}
