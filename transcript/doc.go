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


// Package transcript reads session transcripts from an on-disk log tree.
//
// A transcript source is a directory of per-project subdirectories, each
// containing one JSONL file per session. The Source type discovers
// transcript units (one file per session) and parses their messages.
// Message bodies come in two shapes: a plain string, or a sequence of
// typed blocks of which only text blocks carry indexable content.
//
// Parsing is lenient: malformed lines and units are skipped, never fatal.
// A missing source root is a setup error and is reported immediately.
package transcript
