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


// Package retrace indexes conversational session transcripts into an
// append-only keyword store and answers queries with ranked sessions,
// snippets, and optional per-session LLM recall.
package retrace

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/poiesic/retrace/ai"
	"github.com/poiesic/retrace/hint"
	"github.com/poiesic/retrace/ingest"
	"github.com/poiesic/retrace/keywords"
	"github.com/poiesic/retrace/recall"
	"github.com/poiesic/retrace/search"
	"github.com/poiesic/retrace/store"
	"github.com/poiesic/retrace/store/badger"
	"github.com/poiesic/retrace/store/tsv"
)

// dictionaryFlag names the staleness flag gating keyword discovery.
const dictionaryFlag = "keyword-dictionary"

// System bundles the stores living under one data directory: the TSV
// index plus the badger-backed dictionary, checkpoint, and staleness
// flag. It is the construction root for the package's components.
type System struct {
	index       *tsv.Store
	backend     *badger.Backend
	dict        store.DictionaryRepository
	checkpoints store.CheckpointRepository
	flag        store.StalenessFlag
	logger      *slog.Logger
}

// SystemOption configures Open.
type SystemOption func(*systemOptions)

type systemOptions struct {
	inMemory bool
}

// WithInMemoryMetadata keeps the badger metadata store in memory.
// The TSV index still lives on disk. Intended for tests.
func WithInMemoryMetadata() SystemOption {
	return func(o *systemOptions) {
		o.inMemory = true
	}
}

// Open initializes every store under dataDir, creating it when absent.
func Open(dataDir string, opts ...SystemOption) (*System, error) {
	options := &systemOptions{}
	for _, opt := range opts {
		opt(options)
	}

	index, err := tsv.Open(filepath.Join(dataDir, "index.tsv"))
	if err != nil {
		return nil, err
	}

	backend, err := badger.OpenBackend(filepath.Join(dataDir, "meta"), options.inMemory)
	if err != nil {
		return nil, err
	}

	dict, err := badger.NewDictionaryRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	checkpoints, err := badger.NewCheckpointRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	flag, err := badger.NewStalenessFlag(backend, dictionaryFlag)
	if err != nil {
		backend.Close()
		return nil, err
	}
	if err := flag.Init(context.Background()); err != nil {
		backend.Close()
		return nil, err
	}

	return &System{
		index:       index,
		backend:     backend,
		dict:        dict,
		checkpoints: checkpoints,
		flag:        flag,
		logger:      slog.Default(),
	}, nil
}

func (s *System) Close() error {
	if err := s.index.Close(); err != nil {
		s.logger.Error("error closing index store", "err", err)
	}
	if err := s.backend.Close(); err != nil {
		s.logger.Error("error closing metadata store", "err", err)
		return err
	}
	return nil
}

func (s *System) Index() store.IndexStore {
	return s.index
}

func (s *System) Dictionary() store.DictionaryRepository {
	return s.dict
}

func (s *System) StalenessFlag() store.StalenessFlag {
	return s.flag
}

// NewBuilder returns an index builder over source with the dictionary
// staleness lifecycle wired in. A scheduler may be attached through
// opts; without one, builds mark the flag and leave the refresh to the
// caller.
func (s *System) NewBuilder(source ingest.TranscriptSource, opts ...ingest.BuilderOption) (*ingest.Builder, error) {
	opts = append([]ingest.BuilderOption{ingest.WithStaleness(s.flag, nil)}, opts...)
	return ingest.NewBuilder(source, s.index, s.checkpoints, opts...)
}

// NewSearcher returns a searcher with the keyword dictionary wired in.
func (s *System) NewSearcher(opts ...search.Option) (*search.Searcher, error) {
	opts = append([]search.Option{search.WithDictionary(s.dict)}, opts...)
	return search.NewSearcher(s.index, opts...)
}

// NewHinter returns a hinter over a dictionary-aware searcher.
func (s *System) NewHinter(searchOpts []search.Option, opts ...hint.Option) (*hint.Hinter, error) {
	searcher, err := s.NewSearcher(searchOpts...)
	if err != nil {
		return nil, err
	}
	return hint.NewHinter(searcher, opts...)
}

// NewOrchestrator returns a recall orchestrator resolving session
// prefixes against this system's index.
func (s *System) NewOrchestrator(content recall.ContentProvider, answerer ai.Answerer, opts ...recall.Option) (*recall.Orchestrator, error) {
	return recall.NewOrchestrator(s.index, content, answerer, opts...)
}

// NewRefresher returns a keyword discovery refresher gated on this
// system's staleness flag.
func (s *System) NewRefresher(opts ...keywords.DiscoveryOption) (*keywords.Refresher, error) {
	discovery := keywords.NewDiscovery(s.index, s.dict, opts...)
	return keywords.NewRefresher(discovery, s.flag)
}
