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
	"fmt"
	"os"
	"strings"

	"github.com/poiesic/retrace/core"
)

// Render formats the report for terminal display: one block per ranked
// session, then a summary footer. An empty report renders as a plain
// no-matches message.
func (r *Report) Render() string {
	if len(r.Sessions) == 0 {
		return "No matches found.\n"
	}

	var b strings.Builder
	for _, session := range r.Sessions {
		r.renderSession(&b, session)
	}

	if r.Query.Strict {
		fmt.Fprintf(&b, "\nFound matches in %d sessions (strict mode)\n", len(r.Sessions))
	} else {
		fmt.Fprintf(&b, "\nFound matches in %d sessions (searched %d keywords)\n",
			len(r.Sessions), len(r.Query.Terms))
	}
	return b.String()
}

func (r *Report) renderSession(b *strings.Builder, session *SessionResult) {
	tally := r.keywordTally(session)
	date := session.Latest.Format("2006-01-02")

	if r.Params.Topics && len(session.Topics) > 0 {
		fmt.Fprintf(b, "[%s] %s (%d matches | %s) -> %s\n",
			session.SessionID.Short(), tally, session.Matches, date,
			strings.Join(session.Topics, ", "))
	} else {
		fmt.Fprintf(b, "[%s] %s (%d matches | %s | %s)\n",
			session.SessionID.Short(), tally, session.Matches, date,
			shortenPath(session.ProjectPath))
	}

	if len(session.Selected) == 0 {
		return
	}

	for _, row := range session.Selected {
		label := "[asst]"
		if row.Role == core.RoleUser {
			label = "[user]"
		}
		fmt.Fprintf(b, "%s %s\n", label,
			snippet(row.Text, row.NormalizedText, r.Query, r.Params.ContextChars))
	}

	if session.Matches > len(session.Selected) {
		fmt.Fprintf(b, "... and %d more matches\n", session.Matches-len(session.Selected))
	}
	b.WriteByte('\n')
}

// keywordTally renders per-term occurrence counts in query order,
// "term[3]" style, omitting terms the session never matched.
func (r *Report) keywordTally(session *SessionResult) string {
	var parts []string
	for _, term := range r.Query.Terms {
		if count := session.KeywordCounts[term.Raw]; count > 0 {
			parts = append(parts, fmt.Sprintf("%s[%d]", term.Raw, count))
		}
	}
	return strings.Join(parts, " ")
}

// shortenPath replaces the home directory prefix with "~".
func shortenPath(path string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	if strings.HasPrefix(path, home) {
		return "~" + strings.TrimPrefix(path, home)
	}
	return path
}
