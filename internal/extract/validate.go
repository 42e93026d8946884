package extract

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildVersionJSONSchema returns a JSON-Schema (draft 2020-12 subset) for the
// version payload persisted into ocr_versions. We validate locally before the
// JSONB merge so a malformed engine result can never corrupt stored evidence.
func BuildVersionJSONSchema() map[string]any {
	page := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"page_number": map[string]any{"type": "integer", "minimum": 1},
			"text":        map[string]any{"type": "string"},
			"confidence":  map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
		},
		"required": []string{"page_number", "text"},
	}
	metrics := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"total_pages":      map[string]any{"type": "integer", "minimum": 0},
			"char_count":       map[string]any{"type": "integer", "minimum": 0},
			"whitespace_count": map[string]any{"type": "integer", "minimum": 0},
			"runtime_ms":       map[string]any{"type": "integer", "minimum": 0},
			"method":           map[string]any{"type": "string", "minLength": 1},
		},
		"required": []string{"total_pages", "char_count", "method"},
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"engine":           map[string]any{"type": "string", "minLength": 1},
			"engine_version":   map[string]any{"type": "string", "minLength": 1},
			"pipeline_version": map[string]any{"type": "string", "minLength": 1},
			"extracted_at":     map[string]any{"type": "string"},
			"worker_id":        map[string]any{"type": "string", "minLength": 1},
			"pages":            map[string]any{"type": "array", "items": page},
			"metrics":          metrics,
			"warnings":         map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"sufficient":       map[string]any{"type": "boolean"},
		},
		"required": []string{"engine", "engine_version", "pipeline_version", "pages", "metrics", "sufficient"},
	}
}

// ValidateVersionPayload validates marshalled payload bytes against the
// version schema.
func ValidateVersionPayload(data []byte) error {
	b, err := json.Marshal(BuildVersionJSONSchema())
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("version.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("version.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("payload does not match schema: %w", err)
	}
	return nil
}
