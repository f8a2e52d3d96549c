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


package ingest

import (
	"context"
	"log/slog"
	"time"

	"github.com/poiesic/retrace/core"
	"github.com/poiesic/retrace/normalize"
	"github.com/poiesic/retrace/store"
	"github.com/poiesic/retrace/transcript"
)

// TranscriptSource is the slice of transcript.Source the builder needs.
type TranscriptSource interface {
	Units() ([]transcript.Unit, error)
	UnitsSince(since time.Time) ([]transcript.Unit, error)
	Messages(unit transcript.Unit) ([]transcript.Message, error)
}

// RefreshScheduler schedules a background keyword-dictionary refresh.
type RefreshScheduler interface {
	ScheduleIfStale(ctx context.Context) (bool, error)
}

// Builder extends the append-only index from a transcript source.
// The index is single-writer: run at most one build at a time.
type Builder struct {
	source      TranscriptSource
	index       store.IndexStore
	checkpoints store.CheckpointRepository
	staleness   store.StalenessFlag
	scheduler   RefreshScheduler
	normalizer  *normalize.Normalizer
	logger      *slog.Logger
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithStaleness wires the dictionary staleness flag and an optional
// scheduler. After a build appends rows, the flag is marked and, when a
// scheduler is present, a detached refresh is submitted.
func WithStaleness(flag store.StalenessFlag, scheduler RefreshScheduler) BuilderOption {
	return func(b *Builder) {
		b.staleness = flag
		b.scheduler = scheduler
	}
}

// WithNormalizer replaces the default normalizer.
func WithNormalizer(n *normalize.Normalizer) BuilderOption {
	return func(b *Builder) {
		b.normalizer = n
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) BuilderOption {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// NewBuilder creates a Builder. The checkpoint repository may be nil, in
// which case every build is a full build.
func NewBuilder(source TranscriptSource, index store.IndexStore, checkpoints store.CheckpointRepository, opts ...BuilderOption) (*Builder, error) {
	if source == nil {
		return nil, ErrNilSource
	}
	if index == nil {
		return nil, ErrNilIndex
	}

	b := &Builder{
		source:      source,
		index:       index,
		checkpoints: checkpoints,
		normalizer:  normalize.New(),
		logger:      slog.Default().With("component", "index-builder"),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// FullBuild indexes every transcript unit. Returns the number of rows
// appended.
func (b *Builder) FullBuild(ctx context.Context) (int, error) {
	units, err := b.source.Units()
	if err != nil {
		return 0, err
	}
	return b.build(ctx, units)
}

// IncrementalUpdate indexes only units modified after the last build
// checkpoint. Without a checkpoint it degrades to a full build. Prior
// rows are never rewritten; retrieval deduplicates.
func (b *Builder) IncrementalUpdate(ctx context.Context) (int, error) {
	var since time.Time
	if b.checkpoints != nil {
		cp, err := b.checkpoints.LoadCheckpoint(ctx)
		if err != nil {
			return 0, err
		}
		if cp != nil {
			since = cp.LastBuild
		}
	}

	units, err := b.source.UnitsSince(since)
	if err != nil {
		return 0, err
	}
	return b.build(ctx, units)
}

func (b *Builder) build(ctx context.Context, units []transcript.Unit) (int, error) {
	started := time.Now().UTC()
	appended := 0

	for _, unit := range units {
		if unit.SessionID.IsSubAgent() {
			continue
		}

		messages, err := b.source.Messages(unit)
		if err != nil {
			b.logger.Debug("skipping unreadable unit", "unit", unit.Path, "err", err)
			continue
		}

		var rows []*core.Row
		for _, msg := range messages {
			text := msg.Body.Text()
			if isNoise(text) {
				continue
			}

			rows = append(rows, &core.Row{
				SessionID:      msg.SessionID,
				Timestamp:      msg.Timestamp,
				Role:           msg.Role,
				Text:           text,
				NormalizedText: b.normalizer.Normalize(text),
				OriginPath:     msg.OriginPath,
			})
		}

		if len(rows) == 0 {
			continue
		}
		if err := b.index.Append(ctx, rows...); err != nil {
			return appended, err
		}
		appended += len(rows)
	}

	if b.checkpoints != nil {
		count, err := b.index.Count(ctx)
		if err != nil {
			return appended, err
		}
		cp := &core.Checkpoint{LastBuild: started, RowCount: uint64(count)}
		if err := b.checkpoints.SaveCheckpoint(ctx, cp); err != nil {
			return appended, err
		}
	}

	if appended > 0 {
		b.markAndSchedule(ctx)
	}

	b.logger.Info("index build complete", "units", len(units), "rows", appended)
	return appended, nil
}

// markAndSchedule flags the dictionary stale and kicks off a detached
// refresh. Failures here never fail the build.
func (b *Builder) markAndSchedule(ctx context.Context) {
	if b.staleness == nil {
		return
	}
	if _, err := b.staleness.MarkStale(ctx); err != nil {
		b.logger.Warn("error marking dictionary stale", "err", err)
		return
	}
	if b.scheduler == nil {
		return
	}
	if _, err := b.scheduler.ScheduleIfStale(ctx); err != nil {
		b.logger.Warn("error scheduling dictionary refresh", "err", err)
	}
}
