package factories

import (
	"strings"
	"unicode"
)

// SummaryMaxChars is where summaries get cut for list views.
const SummaryMaxChars = 230

// MakeSummary picks the first non-blank candidate and truncates it at a word
// boundary. Never cuts mid-word.
func MakeSummary(candidates ...string) string {
	for _, candidate := range candidates {
		if strings.TrimSpace(candidate) != "" {
			return TruncateAtWord(candidate, SummaryMaxChars)
		}
	}
	return ""
}

// TruncateAtWord shortens s to at most max runes, backtracking to the last
// whitespace boundary and appending an ellipsis.
func TruncateAtWord(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}

	cut := max
	for cut > 0 && !unicode.IsSpace(runes[cut]) {
		cut--
	}
	if cut == 0 {
		cut = max
	}

	return strings.TrimRightFunc(string(runes[:cut]), unicode.IsSpace) + "..."
}
