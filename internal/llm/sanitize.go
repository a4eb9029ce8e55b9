package llm

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/LogeshBharathi/pdf-job-parser-backend/constants"
)

// SanitizeFields coerces a model payload into the uniform record shape:
// every schema field present, every value a non-empty string, null/absent/
// blank replaced by the sentinel, unknown keys removed. The result is what
// gets validated against BuildJobJSONSchema.
func SanitizeFields(raw []byte, logger *slog.Logger) ([]byte, []string, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, nil, fmt.Errorf("sanitize: decode: %w", err)
	}

	changed := make([]string, 0, 8)
	out := make(map[string]any, len(constants.SchemaFields))
	for _, k := range constants.SchemaFields {
		v, ok := m[k]
		if !ok {
			out[k] = constants.Sentinel
			changed = append(changed, k+"(missing)")
			continue
		}
		s, note := coerceString(v)
		if s == "" {
			s = constants.Sentinel
			if note == "" {
				note = "empty"
			}
		}
		out[k] = s
		if note != "" {
			changed = append(changed, k+"("+note+")")
		}
		delete(m, k)
	}
	for k := range m {
		changed = append(changed, k+"(unknown)")
	}

	bs, err := json.Marshal(out)
	if err != nil {
		return nil, changed, fmt.Errorf("sanitize: encode: %w", err)
	}
	if len(changed) > 0 {
		logger.Warn("llm.extract.sanitized", "changed", changed)
	}
	return bs, changed, nil
}

// coerceString renders any JSON value as a string. Numbers drop trailing
// zeros ("500", not "500.00"); composite values are re-encoded compactly.
func coerceString(v any) (string, string) {
	switch t := v.(type) {
	case nil:
		return "", "null"
	case string:
		return strings.TrimSpace(t), ""
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), "number"
	case bool:
		return strconv.FormatBool(t), "bool"
	default:
		bs, err := json.Marshal(t)
		if err != nil {
			return "", "type"
		}
		return string(bs), "composite"
	}
}
