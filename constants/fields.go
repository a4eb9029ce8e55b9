package constants

// Sentinel marks a schema field whose value could not be found in the
// document. Records never carry null or missing keys; absence is always
// this exact string.
const Sentinel = "Not specified"

// Field names of the job-record schema, in output order.
const (
	FieldJobTitle            = "job_title"
	FieldDepartment          = "department"
	FieldVacancies           = "vacancies"
	FieldEligibility         = "eligibility"
	FieldSalary              = "salary"
	FieldApplicationDeadline = "application_deadline"
	FieldApplicationURL      = "application_url"
)

// SchemaFields holds the extractable field names (raw_text excluded).
var SchemaFields = []string{
	FieldJobTitle,
	FieldDepartment,
	FieldVacancies,
	FieldEligibility,
	FieldSalary,
	FieldApplicationDeadline,
	FieldApplicationURL,
}

// RawTextLimit bounds the raw_text snippet carried on every record.
const RawTextLimit = 1000
