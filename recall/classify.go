package recall

import (
	"strings"

	"github.com/poiesic/retrace/ai"
	"github.com/poiesic/retrace/core"
)

// errorMarkers are substrings that mark an answer as a capability
// failure rather than a real response.
var errorMarkers = []string{
	"API Error:",
	"error: rate limit",
	"context deadline exceeded",
}

// classify maps one raw answer buffer to its classification. Called
// exactly once per session, after the batch has joined or timed out.
func classify(text string, failed bool) core.Classification {
	if failed {
		return core.ClassificationError
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return core.ClassificationError
	}

	for _, marker := range errorMarkers {
		if strings.Contains(trimmed, marker) {
			return core.ClassificationError
		}
	}

	if strings.Contains(strings.ToUpper(trimmed), ai.NoInformationSentinel) {
		return core.ClassificationNoInformation
	}

	return core.ClassificationAnswered
}
