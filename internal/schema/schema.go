// Package schema validates the shape of an evaluation results document
// before it is aggregated.
package schema

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ValidationError lists every schema violation found in a document.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("evaluation results failed validation: %s", strings.Join(e.Problems, "; "))
}

// DocumentSchema describes the fields of a promptfoo result document that
// evalgrid consumes. Unknown fields are allowed.
func DocumentSchema() map[string]any {
	componentResult := map[string]any{
		"type": []string{"object", "null"},
		"properties": map[string]any{
			"pass":   map[string]any{"type": []string{"boolean", "null"}},
			"reason": map[string]any{"type": []string{"string", "null"}},
			"assertion": map[string]any{
				"type": []string{"object", "null"},
				"properties": map[string]any{
					"value": map[string]any{"type": []string{"string", "null"}},
				},
			},
		},
	}

	record := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"provider": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":    map[string]any{"type": "string", "minLength": 1},
					"label": map[string]any{"type": []string{"string", "null"}},
				},
				"required": []string{"id"},
			},
			"gradingResult": map[string]any{
				"type": []string{"object", "null"},
				"properties": map[string]any{
					"componentResults": map[string]any{
						"type":  []string{"array", "null"},
						"items": componentResult,
					},
				},
			},
			"testCase": map[string]any{
				"type": []string{"object", "null"},
				"properties": map[string]any{
					"description": map[string]any{"type": []string{"string", "null"}},
				},
			},
		},
		"required": []string{"provider"},
	}

	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"results": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"results": map[string]any{
						"type":  "array",
						"items": record,
					},
				},
				"required": []string{"results"},
			},
		},
		"required": []string{"results"},
	}
}

// ValidateDocument checks raw document bytes against DocumentSchema. It
// returns a *ValidationError when the document is well-formed JSON that
// violates the schema.
func ValidateDocument(data []byte) error {
	schemaLoader := gojsonschema.NewGoLoader(DocumentSchema())
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}
	if result.Valid() {
		return nil
	}
	problems := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		problems = append(problems, desc.String())
	}
	return &ValidationError{Problems: problems}
}
