package llmprovider

import (
	"errors"
	"fmt"
)

var (
	// ErrNoModelsConfigured indicates the candidate model list is empty
	ErrNoModelsConfigured = errors.New("no models configured")

	// ErrInvalidRequest indicates the request is malformed
	ErrInvalidRequest = errors.New("invalid request")

	// ErrEmptyResponse indicates the provider answered without any choice
	ErrEmptyResponse = errors.New("empty response from provider")

	// ErrRateLimitExceeded indicates throttling persisted across every attempt
	ErrRateLimitExceeded = errors.New("rate limit exceeded")

	// ErrAllModelsFailed indicates no candidate model produced output
	ErrAllModelsFailed = errors.New("all models failed")
)

// ErrorKind is the cause of a failed provider call, decided once where the
// provider's error is received.
type ErrorKind int

const (
	KindOther ErrorKind = iota
	KindModelNotFound
	KindRateLimited
)

func (k ErrorKind) String() string {
	switch k {
	case KindModelNotFound:
		return "model_not_found"
	case KindRateLimited:
		return "rate_limited"
	default:
		return "error"
	}
}

// ProviderError wraps provider-specific errors
type ProviderError struct {
	Provider   string
	Model      string
	Kind       ErrorKind
	StatusCode int
	Err        error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s (model %s): %v", e.Provider, e.Model, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// KindOf returns the cause carried by a *ProviderError in err's chain. Errors that
// did not come through a provider boundary are classified by their message.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindOther
	}
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return ClassifyMessage(err.Error())
}

// RateLimitError is returned when every attempt ended throttled.
type RateLimitError struct {
	Model    string // last model attempted
	Attempts int
	Err      error
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limit exceeded after %d attempt(s), last model %s: %v", e.Attempts, e.Model, e.Err)
}

func (e *RateLimitError) Is(target error) bool { return target == ErrRateLimitExceeded }

func (e *RateLimitError) Unwrap() error { return e.Err }

// AllModelsFailedError is returned when the attempt budget ran out without output.
type AllModelsFailedError struct {
	Attempts int
	LastErr  error
}

func (e *AllModelsFailedError) Error() string {
	return fmt.Sprintf("all models failed after %d attempt(s): %v", e.Attempts, e.LastErr)
}

func (e *AllModelsFailedError) Is(target error) bool { return target == ErrAllModelsFailed }

func (e *AllModelsFailedError) Unwrap() error { return e.LastErr }
