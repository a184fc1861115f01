package classification

import (
	"errors"
	"fmt"
)

// SnippetLength caps how much model output or error text is echoed back.
const SnippetLength = 200

var (
	ErrEmptyContent = errors.New("email content is empty")
)

// MalformedResponseError means the model output was not valid JSON after fence stripping.
type MalformedResponseError struct {
	Snippet string
	Err     error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed model response: %v | response: %s", e.Err, e.Snippet)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// SchemaValidationError means the model output was JSON but not a valid Result.
type SchemaValidationError struct {
	Err error
}

func (e *SchemaValidationError) Error() string {
	return fmt.Sprintf("schema validation failed: %v", e.Err)
}

func (e *SchemaValidationError) Unwrap() error { return e.Err }

// InternalError wraps anything unexpected. Message is already truncated.
type InternalError struct {
	Message string
	Err     error
}

func (e *InternalError) Error() string {
	return "classification failed: " + e.Message
}

func (e *InternalError) Unwrap() error { return e.Err }

// Truncate returns at most n runes of s.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
