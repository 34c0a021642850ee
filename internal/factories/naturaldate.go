package factories

import (
	"fmt"
	"strconv"
	"strings"
)

// MakeYearSpan normalises a partially-recorded collection year into a span.
// Trailing unknown digits widen the span: "185" covers 1850-1859 and "18"
// covers 1800-1899. A complete four-digit year passes through unchanged;
// anything else yields the input untouched.
func MakeYearSpan(year string) string {
	year = strings.TrimSpace(strings.TrimRight(year, "-?"))
	if year == "" {
		return ""
	}
	if _, err := strconv.Atoi(year); err != nil {
		return year
	}

	switch len(year) {
	case 4:
		return year
	case 3:
		return fmt.Sprintf("%s0-%s9", year, year)
	case 2:
		return fmt.Sprintf("%s00-%s99", year, year)
	default:
		return year
	}
}
