package usecase

import (
	"encoding/json"
	"strings"

	"finmail-classifier/internal/classification"
)

const fence = "```"

// stripFences removes a leading ```json or ``` marker and a trailing ``` marker
// that some models add despite being told not to.
func stripFences(raw string) string {
	s := strings.TrimSpace(raw)
	switch {
	case strings.HasPrefix(s, fence+"json"):
		s = s[len(fence+"json"):]
	case strings.HasPrefix(s, fence):
		s = s[len(fence):]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), fence)
	return strings.TrimSpace(s)
}

// parseResult turns raw model output into a Result. Invalid JSON yields
// *MalformedResponseError and a schema mismatch *SchemaValidationError.
func parseResult(raw string) (classification.Result, error) {
	cleaned := stripFences(raw)

	var doc any
	if err := json.Unmarshal([]byte(cleaned), &doc); err != nil {
		return classification.Result{}, &classification.MalformedResponseError{
			Snippet: classification.Truncate(cleaned, classification.SnippetLength),
			Err:     err,
		}
	}

	if err := resultSchema.Validate(doc); err != nil {
		return classification.Result{}, &classification.SchemaValidationError{Err: err}
	}

	var result classification.Result
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return classification.Result{}, &classification.SchemaValidationError{Err: err}
	}

	return result, nil
}
