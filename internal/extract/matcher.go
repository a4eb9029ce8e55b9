package extract

import (
	"fmt"
	"regexp"
	"strings"
)

// Pattern is one candidate expression for a field, compiled once at
// construction. Expressions match case-insensitively with "." matching line
// breaks, so a captured value may span multiple lines. group selects the
// capture group carrying the value (0 means the whole match).
//
// Compiled patterns are immutable and safe to share across concurrent
// parse calls without locking.
type Pattern struct {
	re    *regexp.Regexp
	group int
}

// NewPattern compiles expr with the (?is) flags.
func NewPattern(expr string, group int) (Pattern, error) {
	re, err := regexp.Compile(`(?is)` + expr)
	if err != nil {
		return Pattern{}, fmt.Errorf("compile pattern %q: %w", expr, err)
	}
	return Pattern{re: re, group: group}, nil
}

// MustPattern is NewPattern for static tables; it panics on a bad expression.
func MustPattern(expr string, group int) Pattern {
	p, err := NewPattern(expr, group)
	if err != nil {
		panic(err)
	}
	return p
}

var spaceRuns = regexp.MustCompile(`\s+`)

// Match tries each pattern in order and returns the designated capture group
// of the first match, with whitespace runs (including newlines) collapsed to
// single spaces and the result trimmed. The second return is false when no
// pattern matches. Identical text and patterns always yield identical
// output.
func Match(text string, patterns []Pattern) (string, bool) {
	for _, p := range patterns {
		groups := p.re.FindStringSubmatch(text)
		if groups == nil {
			continue
		}
		if p.group < 0 || p.group >= len(groups) {
			continue
		}
		val := strings.TrimSpace(spaceRuns.ReplaceAllString(groups[p.group], " "))
		if val != "" {
			return val, true
		}
	}
	return "", false
}
