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


package search

import (
	"regexp"
	"strings"

	"github.com/poiesic/retrace/normalize"
)

// Term is one compiled query term.
type Term struct {
	// Raw is the term as typed, lowercased, underscores intact.
	Raw string
	// Normalized is the form matched against the normalized text column.
	Normalized string
	// Weight ranks the term by its position in the query. Powers of two
	// guarantee that one hit on an earlier term outweighs any number of
	// hits on later terms.
	Weight uint64

	pattern *regexp.Regexp
}

// Matches reports whether the term occurs in normalizedText.
func (t *Term) Matches(normalizedText string) bool {
	return t.pattern.MatchString(normalizedText)
}

// Count returns the number of occurrences in normalizedText.
func (t *Term) Count(normalizedText string) int {
	return len(t.pattern.FindAllStringIndex(normalizedText, -1))
}

// Query is a compiled query. In strict mode groups are ANDed and terms
// within a group ORed; in simple mode any term anywhere matches.
type Query struct {
	Groups [][]*Term
	// Terms is every term in original query order.
	Terms []*Term
	// Strict is true when the query uses "|" alternation.
	Strict bool
}

// Compile parses a raw query string. Groups are separated by spaces,
// terms within a group by "|". Each term runs through the normalizer's
// tokenizer so it matches the shape of indexed tokens; synonym lookup is
// part of that same pass, keeping query and index forms aligned.
func Compile(raw string, n *normalize.Normalizer) (*Query, error) {
	if n == nil {
		n = normalize.New()
	}

	q := &Query{}
	position := 0

	fields := strings.Fields(raw)
	for _, field := range fields {
		var group []*Term
		for _, part := range strings.Split(field, "|") {
			if part == "" {
				continue
			}
			term := compileTerm(part, position, n)
			if term == nil {
				continue
			}
			group = append(group, term)
			q.Terms = append(q.Terms, term)
			position++
		}
		if len(group) > 0 {
			q.Groups = append(q.Groups, group)
		}
	}

	if len(q.Terms) == 0 {
		return nil, ErrEmptyQuery
	}

	// Earlier terms get exponentially higher weights.
	total := len(q.Terms)
	for i, term := range q.Terms {
		shift := total - 1 - i
		if shift > 62 {
			shift = 62
		}
		term.Weight = uint64(1) << shift
	}

	q.Strict = strings.Contains(raw, "|")
	return q, nil
}

func compileTerm(raw string, position int, n *normalize.Normalizer) *Term {
	normalized := n.NormalizeTerm(raw)
	if strings.TrimSpace(normalized) == "" {
		return nil
	}

	pattern, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(normalized) + `\b`)
	if err != nil {
		return nil
	}

	return &Term{
		Raw:        strings.ToLower(raw),
		Normalized: normalized,
		pattern:    pattern,
	}
}

// Matches reports whether an entry's normalized text satisfies the
// query. Simple mode needs any one term; strict mode needs at least one
// term from every group.
func (q *Query) Matches(normalizedText string) bool {
	if !q.Strict {
		for _, term := range q.Terms {
			if term.Matches(normalizedText) {
				return true
			}
		}
		return false
	}

	for _, group := range q.Groups {
		matched := false
		for _, term := range group {
			if term.Matches(normalizedText) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

// MatchedTerms returns the query terms occurring in normalizedText, in
// query order.
func (q *Query) MatchedTerms(normalizedText string) []*Term {
	var matched []*Term
	for _, term := range q.Terms {
		if term.Matches(normalizedText) {
			matched = append(matched, term)
		}
	}
	return matched
}
