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


package keywords

import (
	"regexp"
	"strings"
)

// MaxExtracted is the default cap on keywords returned by Extract.
const MaxExtracted = 6

var (
	// Words shorter than three letters ("am", "pc", "re") are dropped.
	wordPattern   = regexp.MustCompile(`\b[a-zA-Z]{3,}\b`)
	numberPattern = regexp.MustCompile(`\b\d{3,}\b`)
)

// Extract pulls search keywords from free text. Words of three or more
// letters survive stopword filtering; numbers of three or more digits
// (HTTP status codes, ports) are kept as-is. Order of first appearance
// is preserved and duplicates are removed. At most max keywords are
// returned; max <= 0 means MaxExtracted.
func Extract(text string, max int) []string {
	if max <= 0 {
		max = MaxExtracted
	}
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var found []string
	for _, w := range wordPattern.FindAllString(strings.ToLower(text), -1) {
		if !extractionStopwords[w] {
			found = append(found, w)
		}
	}
	found = append(found, numberPattern.FindAllString(text, -1)...)

	seen := make(map[string]bool, len(found))
	var unique []string
	for _, kw := range found {
		if seen[kw] {
			continue
		}
		seen[kw] = true
		unique = append(unique, kw)
	}

	if len(unique) > max {
		unique = unique[:max]
	}
	return unique
}
