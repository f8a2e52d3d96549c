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
	"regexp"
	"strings"
)

// Text shorter than this carries no retrieval signal.
const minTextLength = 10

var (
	toolMarkupPattern      = regexp.MustCompile(`<(command-name|command-message|command-args|local-command-stdout|local-command-stderr|system-reminder|tool_use_error)>`)
	progressCounterPattern = regexp.MustCompile(`^(\[\d+/\d+\]|Processed \d+|\d+%\s|\.{3,}\s*$)`)
)

// IsToolMarkup reports whether text is slash-command or tool plumbing
// markup rather than conversation.
func IsToolMarkup(text string) bool {
	return toolMarkupPattern.MatchString(text)
}

// IsEnvironmentBanner reports whether text is an injected environment
// preamble rather than something a participant wrote.
func IsEnvironmentBanner(text string) bool {
	return strings.HasPrefix(text, "Caveat: the messages below") ||
		strings.HasPrefix(text, "<env>") ||
		strings.Contains(text, "# currentDate")
}

// IsProgressCounter reports whether text is a bare progress line.
func IsProgressCounter(text string) bool {
	return progressCounterPattern.MatchString(text)
}

// IsNearEmpty reports whether text is too short to index.
func IsNearEmpty(text string) bool {
	return len(strings.TrimSpace(text)) < minTextLength
}

// isNoise combines the named predicates. Each predicate stays separately
// exported so it can be tested and tuned on its own.
func isNoise(text string) bool {
	return IsNearEmpty(text) ||
		IsToolMarkup(text) ||
		IsEnvironmentBanner(text) ||
		IsProgressCounter(text)
}
