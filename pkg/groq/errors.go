package groq

import (
	"errors"

	"github.com/sashabaranov/go-openai"

	"finmail-classifier/pkg/llmprovider"
)

// wrapError classifies err once. The HTTP status carried by the SDK error wins;
// the message heuristic covers everything else.
func wrapError(model string, err error) error {
	pe := &llmprovider.ProviderError{
		Provider: ProviderName,
		Model:    model,
		Err:      err,
	}

	pe.StatusCode = statusCode(err)
	if kind, ok := llmprovider.ClassifyStatus(pe.StatusCode); ok {
		pe.Kind = kind
		return pe
	}

	pe.Kind = llmprovider.ClassifyMessage(err.Error())
	return pe
}

func statusCode(err error) int {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode
	}
	return 0
}
