package badger

import (
	"context"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/retrace/core"
	"github.com/poiesic/retrace/store"
)

// CheckpointRepository implements store.CheckpointRepository for BadgerDB.
type CheckpointRepository struct {
	backend *Backend
}

var _ store.CheckpointRepository = (*CheckpointRepository)(nil)

// NewCheckpointRepository creates a new CheckpointRepository.
func NewCheckpointRepository(backend *Backend) (*CheckpointRepository, error) {
	return &CheckpointRepository{
		backend: backend,
	}, nil
}

// SaveCheckpoint replaces the stored checkpoint.
func (r *CheckpointRepository) SaveCheckpoint(ctx context.Context, checkpoint *core.Checkpoint) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		value := store.MarshalCheckpoint(checkpoint)
		if err := tx.Set(makeCheckpointKey(), value); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// LoadCheckpoint returns the stored checkpoint, or nil when no build has
// completed yet.
func (r *CheckpointRepository) LoadCheckpoint(ctx context.Context) (*core.Checkpoint, error) {
	var checkpoint *core.Checkpoint

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeCheckpointKey())
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return nil
			}
			return err
		}
		return item.Value(func(val []byte) error {
			checkpoint, err = store.UnmarshalCheckpoint(val)
			return err
		})
	}, false)

	if err != nil {
		return nil, err
	}
	return checkpoint, nil
}
