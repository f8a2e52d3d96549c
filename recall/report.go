package recall

import (
	"fmt"
	"strings"

	"github.com/poiesic/retrace/core"
)

// Render formats the recall result for terminal display. Only ANSWERED
// outcomes appear in full; the rest collapse into one diagnostic line.
// Degraded batches render as plain messages, never as errors.
func (r *Result) Render() string {
	if len(r.Outcomes) == 0 {
		return "No sessions to recall.\n"
	}

	if r.Single {
		return r.Outcomes[0].Text + "\n"
	}

	var b strings.Builder
	answered := 0
	noInfo := 0
	failed := 0

	for _, outcome := range r.Outcomes {
		switch outcome.Classification {
		case core.ClassificationAnswered:
			answered++
			fmt.Fprintf(&b, "[%s %s]\n%s\n\n",
				outcome.SessionID.Short(),
				outcome.Date.Format("2006-01-02"),
				outcome.Text)
		case core.ClassificationNoInformation:
			noInfo++
		default:
			failed++
		}
	}

	if answered == 0 {
		b.WriteString("No session produced an answer.\n")
	}
	if noInfo > 0 || failed > 0 {
		fmt.Fprintf(&b, "(%d sessions with no relevant information, %d errors)\n", noInfo, failed)
	}
	return b.String()
}
