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

package badger

import (
	"context"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/retrace/core"
	"github.com/poiesic/retrace/store"
)

// DictionaryRepository implements store.DictionaryRepository for BadgerDB.
// Entries are keyed by the content-based ID of their lowercased term.
type DictionaryRepository struct {
	backend *Backend
}

var _ store.DictionaryRepository = (*DictionaryRepository)(nil)

// NewDictionaryRepository creates a new DictionaryRepository.
func NewDictionaryRepository(backend *Backend) (*DictionaryRepository, error) {
	return &DictionaryRepository{
		backend: backend,
	}, nil
}

// Close releases resources. DictionaryRepository has no resources to release.
func (r *DictionaryRepository) Close() error {
	return nil
}

// PutEntries inserts or replaces dictionary entries.
func (r *DictionaryRepository) PutEntries(ctx context.Context, entries ...*core.DictionaryEntry) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, entry := range entries {
			if err := core.ValidateDictionaryEntry(entry); err != nil {
				return err
			}

			entry.Term = strings.ToLower(entry.Term)
			entry.UpdatedAt = time.Now().UTC()

			key := makeDictionaryKey(core.IDFromContent(entry.Term))
			value := store.MarshalDictionaryEntry(entry)
			if err := tx.Set(key, value); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetEntry retrieves the entry for a term.
// Returns store.ErrNotFound if no entry exists.
func (r *DictionaryRepository) GetEntry(ctx context.Context, term string) (*core.DictionaryEntry, error) {
	var entry *core.DictionaryEntry

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeDictionaryKey(core.IDFromContent(strings.ToLower(term)))
		item, err := tx.Get(key)
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return store.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			entry, err = store.UnmarshalDictionaryEntry(val)
			return err
		})
	}, false)

	if err != nil {
		return nil, err
	}
	return entry, nil
}

// AllEntries returns every dictionary entry.
func (r *DictionaryRepository) AllEntries(ctx context.Context) ([]*core.DictionaryEntry, error) {
	var entries []*core.DictionaryEntry

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(dictionaryPrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			item := iter.Item()

			var entry *core.DictionaryEntry
			err := item.Value(func(val []byte) error {
				var err error
				entry, err = store.UnmarshalDictionaryEntry(val)
				return err
			})
			if err != nil {
				return err
			}
			if entry != nil {
				entries = append(entries, entry)
			}
		}
		return nil
	}, false)

	if err != nil {
		return nil, err
	}
	return entries, nil
}
