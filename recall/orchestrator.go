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


package recall

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/poiesic/retrace/ai"
	"github.com/poiesic/retrace/core"
	"github.com/poiesic/retrace/store"
)

// Defaults for the shared batch budget and liveness polling.
const (
	DefaultTimeout      = 15 * time.Second
	DefaultPollInterval = 500 * time.Millisecond
)

// ContentProvider supplies one session's full conversation as text.
// transcript.Source satisfies it.
type ContentProvider interface {
	SessionText(id core.SessionID) (string, error)
}

// Orchestrator fans a question out to the answering capability, one
// concurrent call per resolved session, under a single shared timeout.
type Orchestrator struct {
	index        store.IndexStore
	content      ContentProvider
	answerer     ai.Answerer
	timeout      time.Duration
	pollInterval time.Duration
	logger       *slog.Logger
}

// Option configures an Orchestrator.
type Option func(*Orchestrator) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) error {
		if logger == nil {
			logger = slog.Default()
		}
		o.logger = logger
		return nil
	}
}

// WithTimeout sets the shared wall-clock budget for a whole batch.
func WithTimeout(d time.Duration) Option {
	return func(o *Orchestrator) error {
		if d > 0 {
			o.timeout = d
		}
		return nil
	}
}

// WithPollInterval sets the liveness polling cadence.
func WithPollInterval(d time.Duration) Option {
	return func(o *Orchestrator) error {
		if d > 0 {
			o.pollInterval = d
		}
		return nil
	}
}

// NewOrchestrator creates a recall orchestrator.
func NewOrchestrator(index store.IndexStore, content ContentProvider, answerer ai.Answerer, opts ...Option) (*Orchestrator, error) {
	if index == nil {
		return nil, ErrIndexRequired
	}
	if content == nil {
		return nil, ErrContentRequired
	}
	if answerer == nil {
		return nil, ErrAnswererRequired
	}

	o := &Orchestrator{
		index:        index,
		content:      content,
		answerer:     answerer,
		timeout:      DefaultTimeout,
		pollInterval: DefaultPollInterval,
		logger:       slog.Default().With("component", "recall"),
	}

	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}

	return o, nil
}

// Result is the outcome of one recall call.
type Result struct {
	Outcomes []core.RecallOutcome
	// Single marks a one-session call whose raw answer bypassed
	// classification.
	Single bool
}

// slot is the isolated per-task buffer. Only its own goroutine writes
// it while running; the orchestrator reads it under the mutex after the
// join, so a straggler cancelled mid-write cannot race the report.
type slot struct {
	mu   sync.Mutex
	text string
	err  error
	done bool
}

// Recall answers the question against each session named by prefixes.
// Unresolvable prefixes fail before any dispatch. A single session
// bypasses concurrency and classification and returns the raw answer.
func (o *Orchestrator) Recall(ctx context.Context, prefixes []string, question string) (*Result, error) {
	if len(prefixes) == 0 {
		return nil, ErrNoSessions
	}
	if strings.TrimSpace(question) == "" {
		return nil, ErrEmptyQuestion
	}

	sessions, err := resolve(ctx, o.index, prefixes)
	if err != nil {
		return nil, err
	}
	if len(sessions) == 0 {
		return &Result{}, nil
	}

	if len(sessions) == 1 {
		return o.recallSingle(ctx, sessions[0], question)
	}
	return o.recallBatch(ctx, sessions, question)
}

func (o *Orchestrator) recallSingle(ctx context.Context, session sessionInfo, question string) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	text, err := o.ask(ctx, session.id, question)
	if err != nil {
		return nil, err
	}

	return &Result{
		Single: true,
		Outcomes: []core.RecallOutcome{{
			SessionID:      session.id,
			Classification: core.ClassificationAnswered,
			Text:           text,
			Date:           session.earliest,
		}},
	}, nil
}

func (o *Orchestrator) recallBatch(ctx context.Context, sessions []sessionInfo, question string) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	slots := make([]slot, len(sessions))
	finished := make(chan struct{}, len(sessions))

	for i, session := range sessions {
		go func(i int, session sessionInfo) {
			text, err := o.ask(ctx, session.id, question)

			s := &slots[i]
			s.mu.Lock()
			s.text = text
			s.err = err
			s.done = true
			s.mu.Unlock()

			finished <- struct{}{}
		}(i, session)
	}

	// Liveness polling: count completions until all report in or the
	// shared budget expires. Expiry cancels the context; stragglers are
	// classified from whatever their buffer holds.
	remaining := len(sessions)
	ticker := time.NewTicker(o.pollInterval)
	defer ticker.Stop()

poll:
	for remaining > 0 {
		select {
		case <-finished:
			remaining--
		case <-ticker.C:
			o.logger.Debug("recall batch in flight", "remaining", remaining)
		case <-ctx.Done():
			o.logger.Warn("recall budget expired", "unfinished", remaining)
			break poll
		}
	}

	outcomes := make([]core.RecallOutcome, len(sessions))
	for i, session := range sessions {
		s := &slots[i]
		s.mu.Lock()
		text, taskErr, done := s.text, s.err, s.done
		s.mu.Unlock()

		failed := !done || taskErr != nil
		if taskErr != nil {
			o.logger.Debug("recall task failed", "session", session.id.Short(), "err", taskErr)
		}

		outcomes[i] = core.RecallOutcome{
			SessionID:      session.id,
			Classification: classify(text, failed),
			Text:           text,
			Date:           session.earliest,
		}
	}

	return &Result{Outcomes: outcomes}, nil
}

func (o *Orchestrator) ask(ctx context.Context, id core.SessionID, question string) (string, error) {
	content, err := o.content.SessionText(id)
	if err != nil {
		return "", err
	}
	return o.answerer.Answer(ctx, content, question)
}
