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


// Package store defines the storage interfaces for the retrieval pipeline.
//
// Two stores back the system:
//   - IndexStore: the append-only message-level record store (raw plus
//     normalized columns). Rows are never rewritten or deleted; the row
//     count is monotonically non-decreasing. The tsv subpackage provides
//     the file-backed implementation.
//   - The metadata repositories (DictionaryRepository, CheckpointRepository,
//     StalenessFlag): advisory keyword dictionary, build checkpoints, and
//     the cache-invalidation flag gating dictionary refreshes. The badger
//     subpackage provides the BadgerDB-backed implementations.
package store
