package groq

import "time"

const (
	// ProviderName identifies Groq in logs, metrics and the model catalog
	ProviderName = "Groq"

	// DefaultBaseURL is Groq's OpenAI-compatible API endpoint
	DefaultBaseURL = "https://api.groq.com/openai/v1"

	// DefaultTimeout bounds a single completion call
	DefaultTimeout = 60 * time.Second
)
