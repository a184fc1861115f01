package llmprovider

import "context"

// Provider is a chat-completion service able to run a request against a named model.
type Provider interface {
	// Generate sends one completion request to model and returns its text output.
	// Failures should be returned as *ProviderError so the Manager can tell
	// unavailable models and throttling apart from everything else.
	Generate(ctx context.Context, model string, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "groq")
	Name() string
}

// ResponseFormat hints the provider about the expected shape of the output.
type ResponseFormat string

const (
	ResponseFormatText       ResponseFormat = "text"
	ResponseFormatJSONObject ResponseFormat = "json_object"
)

// Request represents a normalized completion request
type Request struct {
	SystemInstruction string
	Prompt            string
	Temperature       float64
	ResponseFormat    ResponseFormat
}

// Response represents a normalized completion response
type Response struct {
	Text         string
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
