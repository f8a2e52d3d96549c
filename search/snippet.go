package search

import (
	"regexp"
	"strings"
)

// snippet extracts a window around the first matched term. A third of
// the window precedes the match so the hit lands early but keeps some
// leading context. Clipped edges get ellipses; short text passes
// through whole.
func snippet(text, normalizedText string, query *Query, contextChars int) string {
	if len(text) <= contextChars {
		return text
	}

	pos := matchPosition(text, normalizedText, query)
	if pos < 0 {
		return text[:contextChars] + "..."
	}

	before := contextChars / 3
	after := contextChars - before
	start := pos - before
	if start < 0 {
		start = 0
	}
	end := pos + after
	if end > len(text) {
		end = len(text)
	}

	out := text[start:end]
	if start > 0 {
		out = "..." + out
	}
	if end < len(text) {
		out = out + "..."
	}
	return out
}

// matchPosition locates the first query term in the raw text. Raw terms
// are tried first, with underscores as single-character wildcards so
// phrases land on their literal spelling. When inflection hides the raw
// form, the normalized word index maps back to a character offset.
func matchPosition(text, normalizedText string, query *Query) int {
	lower := strings.ToLower(text)

	for _, term := range query.Terms {
		expr := strings.ReplaceAll(regexp.QuoteMeta(term.Raw), "_", ".")
		re, err := regexp.Compile(expr)
		if err != nil {
			continue
		}
		if loc := re.FindStringIndex(lower); loc != nil {
			return loc[0]
		}
	}

	words := strings.Fields(lower)
	normWords := strings.Fields(normalizedText)
	for _, term := range query.Terms {
		for i, w := range normWords {
			if w != term.Normalized {
				continue
			}
			if i >= len(words) {
				break
			}
			pos := 0
			for _, prior := range words[:i] {
				pos += len(prior) + 1
			}
			return pos
		}
	}

	return -1
}
