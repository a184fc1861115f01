package usecase

import (
	"encoding/json"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"finmail-classifier/internal/classification"
)

var resultSchema = jsonschema.MustCompileString("classification_result.json", buildResultSchema())

// buildResultSchema derives the JSON Schema of classification.Result from the
// enum literals so the two cannot drift apart.
func buildResultSchema() string {
	text := map[string]any{"type": "string"}
	schema := map[string]any{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type":    "object",
		"required": []string{
			"category", "reason", "summary", "suggestedResponse", "priority", "sentiment",
		},
		"properties": map[string]any{
			"category":          map[string]any{"type": "string", "enum": classification.Categories},
			"reason":            text,
			"summary":           text,
			"suggestedResponse": text,
			"priority":          map[string]any{"type": "string", "enum": classification.Priorities},
			"sentiment":         map[string]any{"type": "string", "enum": classification.Sentiments},
		},
	}

	b, err := json.Marshal(schema)
	if err != nil {
		panic(err)
	}
	return string(b)
}
