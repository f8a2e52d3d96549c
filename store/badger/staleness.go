package badger

import (
	"context"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/retrace/store"
)

// stale flag values
const (
	flagClear = byte(0)
	flagStale = byte(1)
)

// StalenessFlag implements store.StalenessFlag on a single BadgerDB key.
// MarkStale reports whether this call performed the clear-to-stale
// transition, so callers can dedupe refresh work.
type StalenessFlag struct {
	backend *Backend
	name    string
}

var _ store.StalenessFlag = (*StalenessFlag)(nil)

// NewStalenessFlag creates a named staleness flag.
func NewStalenessFlag(backend *Backend, name string) (*StalenessFlag, error) {
	return &StalenessFlag{
		backend: backend,
		name:    name,
	}, nil
}

// Init ensures the flag key exists, leaving an existing value untouched.
func (f *StalenessFlag) Init(ctx context.Context) error {
	return f.backend.WithTx(func(tx *badger.Txn) error {
		_, err := tx.Get(makeStalenessKey(f.name))
		if err == nil {
			return nil
		}
		if err != badger.ErrKeyNotFound {
			return err
		}
		if err := tx.Set(makeStalenessKey(f.name), []byte{flagClear}); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// MarkStale sets the flag. Returns true only when the flag was clear
// before this call.
func (f *StalenessFlag) MarkStale(ctx context.Context) (bool, error) {
	transitioned := false

	err := f.backend.WithTx(func(tx *badger.Txn) error {
		current, err := f.read(tx)
		if err != nil {
			return err
		}
		if current == flagStale {
			return nil
		}
		transitioned = true
		if err := tx.Set(makeStalenessKey(f.name), []byte{flagStale}); err != nil {
			return err
		}
		return tx.Commit()
	}, true)

	if err != nil {
		return false, err
	}
	return transitioned, nil
}

// IsStale reports whether the flag is set.
func (f *StalenessFlag) IsStale(ctx context.Context) (bool, error) {
	stale := false

	err := f.backend.WithTx(func(tx *badger.Txn) error {
		current, err := f.read(tx)
		if err != nil {
			return err
		}
		stale = current == flagStale
		return nil
	}, false)

	if err != nil {
		return false, err
	}
	return stale, nil
}

// Clear resets the flag.
func (f *StalenessFlag) Clear(ctx context.Context) error {
	return f.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set(makeStalenessKey(f.name), []byte{flagClear}); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

func (f *StalenessFlag) read(tx *badger.Txn) (byte, error) {
	item, err := tx.Get(makeStalenessKey(f.name))
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return flagClear, nil
		}
		return flagClear, err
	}

	value := flagClear
	err = item.Value(func(val []byte) error {
		if len(val) > 0 {
			value = val[0]
		}
		return nil
	})
	return value, err
}
