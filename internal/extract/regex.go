package extract

import (
	"regexp"
	"strings"

	"github.com/LogeshBharathi/pdf-job-parser-backend/constants"
)

var (
	newlinePadding = regexp.MustCompile(`\s*\n\s*`)
	blankRuns      = regexp.MustCompile(` +`)
)

// RegexStrategy is the guaranteed-available fallback tier. Given text it
// always produces a complete JobRecord; fields with no matching pattern hold
// the sentinel. It carries no mutable state past construction.
type RegexStrategy struct {
	table PatternTable
}

// NewRegexStrategy builds the fallback tier over a pattern table; a nil
// table selects DefaultPatterns.
func NewRegexStrategy(table PatternTable) *RegexStrategy {
	if table == nil {
		table = DefaultPatterns()
	}
	return &RegexStrategy{table: table}
}

// Extract matches every schema field independently against the normalized
// text. One field's miss never affects another's extraction, and the method
// never fails: the worst case is a record of sentinels with the text snippet.
func (s *RegexStrategy) Extract(text string) JobRecord {
	cleaned := NormalizeText(text)

	var rec JobRecord
	for _, field := range constants.SchemaFields {
		value, ok := Match(cleaned, s.table[field])
		if !ok {
			value = constants.Sentinel
		}
		rec.setField(field, value)
	}
	rec.RawText = Truncate(cleaned, constants.RawTextLimit)
	return rec
}

// NormalizeText prepares raw extracted text for pattern matching: trim,
// collapse whitespace-padded line breaks to single newlines, collapse runs
// of spaces.
func NormalizeText(text string) string {
	cleaned := newlinePadding.ReplaceAllString(strings.TrimSpace(text), "\n")
	return blankRuns.ReplaceAllString(cleaned, " ")
}
