// Package yearparse extracts a calendar year from a file name.
//
// Patterns are tried in a fixed priority order and the first one that matches
// anywhere in the name wins, even when a later pattern would also match.
package yearparse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Pattern is one date layout the extractor understands.
type Pattern struct {
	// Name identifies the layout in logs and the activity record.
	Name string
	// Example is a representative token, shown by the extract command.
	Example string

	re     *regexp.Regexp
	derive func(token string) string
}

// Result describes a successful extraction.
type Result struct {
	Year    string
	Pattern string
	Token   string
}

// Ordered by priority. Do not reorder: callers rely on day-mon-yyyy winning
// over yy-mm-dd when both appear in the same name.
var patterns = []Pattern{
	{
		Name:    "day-mon-yyyy",
		Example: "31-DEC-2024",
		re:      regexp.MustCompile(`\d{2}-[A-Z]{3}-\d{4}`),
		derive:  yearFromDayMonthYear,
	},
	{
		Name:    "yy-mm-dd",
		Example: "24-12-31",
		re:      regexp.MustCompile(`\d{2}-\d{2}-\d{2}`),
		derive:  yearFromShortDate,
	},
}

// Patterns returns the patterns in the order they are tried.
func Patterns() []Pattern {
	out := make([]Pattern, len(patterns))
	copy(out, patterns)
	return out
}

// Extract returns the year found in name, or false when no pattern matches.
func Extract(name string) (string, bool) {
	r, ok := Match(name)
	if !ok {
		return "", false
	}
	return r.Year, true
}

// Match is Extract with the matching pattern and token attached.
func Match(name string) (Result, bool) {
	for _, p := range patterns {
		token := p.re.FindString(name)
		if token == "" {
			continue
		}
		return Result{
			Year:    p.derive(token),
			Pattern: p.Name,
			Token:   token,
		}, true
	}
	return Result{}, false
}

// 31-DEC-2024 -> 2024
func yearFromDayMonthYear(token string) string {
	parts := strings.Split(token, "-")
	return parts[2]
}

// yearFromShortDate reads the leading yy of a yy-mm-dd token. Every two digit
// value lands in 2000-2099; there is no 1900s window.
func yearFromShortDate(token string) string {
	parts := strings.Split(token, "-")
	yy, err := strconv.Atoi(parts[0])
	if err != nil {
		// the pattern guarantees two ASCII digits
		return parts[0]
	}
	if yy < 100 {
		return fmt.Sprintf("20%02d", yy)
	}
	return strconv.Itoa(yy)
}
