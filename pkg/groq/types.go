package groq

import "time"

// Config configures the Groq client.
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}
