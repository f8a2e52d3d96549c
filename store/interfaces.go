package store

import (
	"context"

	"github.com/poiesic/retrace/core"
)

// IndexStore is the append-only message-level record store.
// Implementations are single-writer: no two index builds run at once.
type IndexStore interface {
	// Append writes rows to the end of the store in the given order.
	// Rows are never deduplicated here; dedup is a search-time concern.
	Append(ctx context.Context, rows ...*core.Row) error

	// Scan calls fn for every decodable row in append order.
	// Malformed trailing rows are skipped, not reported.
	// Scanning stops early if fn returns an error.
	Scan(ctx context.Context, fn func(*core.Row) error) error

	// Count returns the number of decodable rows.
	Count(ctx context.Context) (int, error)

	// Close releases resources held by the store.
	Close() error
}

// DictionaryRepository stores the advisory keyword dictionary.
// Staleness is tolerated; the dictionary is rebuilt asynchronously.
type DictionaryRepository interface {
	// PutEntries inserts or replaces dictionary entries.
	PutEntries(ctx context.Context, entries ...*core.DictionaryEntry) error

	// GetEntry retrieves the entry for a term.
	// Returns ErrNotFound if no entry exists.
	GetEntry(ctx context.Context, term string) (*core.DictionaryEntry, error)

	// AllEntries returns every dictionary entry.
	AllEntries(ctx context.Context) ([]*core.DictionaryEntry, error)

	// Close releases resources held by the repository.
	Close() error
}

// CheckpointRepository stores the index build checkpoint.
type CheckpointRepository interface {
	// SaveCheckpoint replaces the stored checkpoint.
	SaveCheckpoint(ctx context.Context, checkpoint *core.Checkpoint) error

	// LoadCheckpoint returns the stored checkpoint, or nil when no build
	// has completed yet.
	LoadCheckpoint(ctx context.Context) (*core.Checkpoint, error)
}

// StalenessFlag is the cache-invalidation gate for dictionary refreshes.
// It has an explicit init/refresh/clear lifecycle so a pending refresh
// is not rescheduled redundantly.
type StalenessFlag interface {
	// Init ensures the flag exists, clear, without disturbing an
	// already-set flag.
	Init(ctx context.Context) error

	// MarkStale sets the flag. Returns true if the flag transitioned
	// from clear to stale, false if it was already stale.
	MarkStale(ctx context.Context) (bool, error)

	// IsStale reports the flag state.
	IsStale(ctx context.Context) (bool, error)

	// Clear resets the flag after a completed refresh.
	Clear(ctx context.Context) error
}
