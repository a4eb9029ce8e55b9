package extract

import (
	"github.com/LogeshBharathi/pdf-job-parser-backend/constants"
)

// JobRecord is the canonical output of both extraction tiers: the seven
// schema fields plus a bounded snippet of the source text. Every field is
// always a non-empty string; a fact the document does not state is carried
// as constants.Sentinel, never as "" or a missing key.
type JobRecord struct {
	JobTitle            string `json:"job_title"`
	Department          string `json:"department"`
	Vacancies           string `json:"vacancies"`
	Eligibility         string `json:"eligibility"`
	Salary              string `json:"salary"`
	ApplicationDeadline string `json:"application_deadline"`
	ApplicationURL      string `json:"application_url"`
	RawText             string `json:"raw_text"`
}

// Field returns the record's value for a schema field name.
func (r JobRecord) Field(name string) string {
	switch name {
	case constants.FieldJobTitle:
		return r.JobTitle
	case constants.FieldDepartment:
		return r.Department
	case constants.FieldVacancies:
		return r.Vacancies
	case constants.FieldEligibility:
		return r.Eligibility
	case constants.FieldSalary:
		return r.Salary
	case constants.FieldApplicationDeadline:
		return r.ApplicationDeadline
	case constants.FieldApplicationURL:
		return r.ApplicationURL
	}
	return ""
}

func (r *JobRecord) setField(name, value string) {
	switch name {
	case constants.FieldJobTitle:
		r.JobTitle = value
	case constants.FieldDepartment:
		r.Department = value
	case constants.FieldVacancies:
		r.Vacancies = value
	case constants.FieldEligibility:
		r.Eligibility = value
	case constants.FieldSalary:
		r.Salary = value
	case constants.FieldApplicationDeadline:
		r.ApplicationDeadline = value
	case constants.FieldApplicationURL:
		r.ApplicationURL = value
	}
}

// MissingFields lists the schema fields still holding the sentinel.
func (r JobRecord) MissingFields() []string {
	var missing []string
	for _, name := range constants.SchemaFields {
		if r.Field(name) == constants.Sentinel {
			missing = append(missing, name)
		}
	}
	return missing
}

// Truncate bounds s to at most n runes. Shorter inputs pass through
// unchanged; multi-byte characters are never split.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
