package extract

import "github.com/LogeshBharathi/pdf-job-parser-backend/constants"

// PatternTable maps a schema field to its ordered candidate patterns, most
// specific first. The table is configuration, not logic: the matcher and the
// fallback strategy work with any table, and callers tuned for a different
// document genre can supply their own.
type PatternTable map[string][]Pattern

// DefaultPatterns returns the table tuned for Indian government recruitment
// notices. Section-body patterns anchor on section vocabulary ("SCALE OF
// PAY", "EDUCATIONAL QUALIFICATIONS", ...) and capture up to the next
// numbered section heading or the end of the text; the heading is consumed
// by the expression but excluded from the capture group.
func DefaultPatterns() PatternTable {
	return PatternTable{
		constants.FieldJobTitle: {
			MustPattern(`recruitment for the post of\s*(.+?)(?:\n|$)`, 1),
			MustPattern(`RECRUITMENT OF (.+?)(?:\n|$)`, 1),
			MustPattern(`CEN NO\. \d+/\d+ \((.+?)\)`, 1),
		},
		constants.FieldDepartment: {
			MustPattern(`(government of india|ministry of .+?|department of .+?|railway recruitment board)`, 1),
		},
		constants.FieldVacancies: {
			MustPattern(`total vacancies\s*[:\-]?\s*(\d+)`, 1),
			MustPattern(`grand total\s*[:\-]?\s*(\d+)`, 1),
		},
		constants.FieldEligibility: {
			MustPattern(`(?:\d+\.0\s+AGE LIMIT|\d+\.0\s+EDUCATIONAL QUALIFICATIONS|essential qualifications)(.+?)(?:\n\d+\.0|$)`, 1),
		},
		constants.FieldSalary: {
			MustPattern(`(?:SCALE OF PAY|PAY LEVEL|PAY MATRIX)(.+?)(?:\n\d+\.0|$)`, 1),
		},
		constants.FieldApplicationDeadline: {
			MustPattern(`closing date.*?submission of.*?application.*?\n?([^\n]+)`, 1),
		},
		constants.FieldApplicationURL: {
			MustPattern(`apply online through the website\s*([^\s]+)`, 1),
		},
	}
}
