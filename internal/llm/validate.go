package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

var (
	jobSchemaOnce sync.Once
	jobSchema     *jsonschema.Schema
	jobSchemaErr  error
)

// jobRecordSchema compiles BuildJobJSONSchema once; the schema is fixed for
// the process lifetime and shared across requests.
func jobRecordSchema() (*jsonschema.Schema, error) {
	jobSchemaOnce.Do(func() {
		b, err := json.Marshal(BuildJobJSONSchema())
		if err != nil {
			jobSchemaErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("job-record.json", bytes.NewReader(b)); err != nil {
			jobSchemaErr = fmt.Errorf("add schema: %w", err)
			return
		}
		jobSchema, jobSchemaErr = compiler.Compile("job-record.json")
	})
	return jobSchema, jobSchemaErr
}

// ValidateJobRecordJSON validates a sanitized payload against the job-record
// schema.
func ValidateJobRecordJSON(data []byte) error {
	schema, err := jobRecordSchema()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
