package llm

import "github.com/LogeshBharathi/pdf-job-parser-backend/constants"

// BuildJobJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. Sanitized model output is validated against it locally before
// the record is accepted: all seven fields required, all strings, nothing
// extra.
func BuildJobJSONSchema() map[string]any {
	props := make(map[string]any, len(constants.SchemaFields))
	required := make([]string, 0, len(constants.SchemaFields))
	for _, name := range constants.SchemaFields {
		props[name] = map[string]any{"type": "string", "minLength": 1}
		required = append(required, name)
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             required,
	}
}
