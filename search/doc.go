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


// Package search compiles keyword queries and runs them against the
// index store.
//
// A query is space-separated groups of pipe-separated terms. Without
// "|" the query is simple mode: any term matches. With "|" it is strict
// mode: every group must contribute at least one matching term. Underscore
// joins words into a literal phrase. Matching runs on the normalized
// text column, so inflected forms ("ran", "running") find each other.
//
// Matching rows are grouped into sessions, ranked by which query terms
// they hit (earlier terms outrank any number of later-term matches),
// and rendered as a report with snippets and optional topics.
package search
