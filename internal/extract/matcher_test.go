package extract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LogeshBharathi/pdf-job-parser-backend/internal/extract"
)

func TestMatch_FirstPatternWins(t *testing.T) {
	patterns := []extract.Pattern{
		extract.MustPattern(`total vacancies\s*[:\-]?\s*(\d+)`, 1),
		extract.MustPattern(`grand total\s*[:\-]?\s*(\d+)`, 1),
	}
	text := "Total Vacancies: 42\nGrand Total: 99"

	got, ok := extract.Match(text, patterns)
	require.True(t, ok)
	assert.Equal(t, "42", got)
}

func TestMatch_CaseInsensitive(t *testing.T) {
	patterns := []extract.Pattern{extract.MustPattern(`recruitment of (.+?)(?:\n|$)`, 1)}

	got, ok := extract.Match("RECRUITMENT OF Junior Engineers\nmore text", patterns)
	require.True(t, ok)
	assert.Equal(t, "Junior Engineers", got)
}

func TestMatch_ValueSpansLines(t *testing.T) {
	patterns := []extract.Pattern{extract.MustPattern(`SCALE OF PAY(.+?)END`, 1)}
	text := "SCALE OF PAY Level 6\nRs. 35400 - 112400\nEND"

	got, ok := extract.Match(text, patterns)
	require.True(t, ok)
	assert.Equal(t, "Level 6 Rs. 35400 - 112400", got)
}

func TestMatch_CollapsesWhitespaceAndTrims(t *testing.T) {
	patterns := []extract.Pattern{extract.MustPattern(`title:\s*(.+?)$`, 1)}

	got, ok := extract.Match("title:   Senior   Clerk  ", patterns)
	require.True(t, ok)
	assert.Equal(t, "Senior Clerk", got)
}

func TestMatch_NoMatch(t *testing.T) {
	patterns := []extract.Pattern{extract.MustPattern(`grand total\s*[:\-]?\s*(\d+)`, 1)}

	got, ok := extract.Match("nothing relevant here", patterns)
	assert.False(t, ok)
	assert.Empty(t, got)
}

func TestMatch_EmptyPatternList(t *testing.T) {
	_, ok := extract.Match("any text", nil)
	assert.False(t, ok)
}

func TestMatch_GroupZeroIsWholeMatch(t *testing.T) {
	patterns := []extract.Pattern{extract.MustPattern(`government of india`, 0)}

	got, ok := extract.Match("The Government of India announces", patterns)
	require.True(t, ok)
	assert.Equal(t, "Government of India", got)
}

func TestNewPattern_InvalidExpr(t *testing.T) {
	_, err := extract.NewPattern(`(`, 1)
	assert.Error(t, err)
}
