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


// Package recall dispatches a question to the answering capability once
// per selected session, concurrently, under one shared timeout, then
// classifies each answer as ANSWERED, NO_INFORMATION, or ERROR. It is
// the only concurrent path in the system; everything else runs once,
// synchronously, per invocation.
package recall
