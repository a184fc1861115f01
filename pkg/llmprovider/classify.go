package llmprovider

import (
	"net/http"
	"strings"
)

// ClassifyStatus maps an HTTP status returned by a completion API to an ErrorKind.
// ok is false when the status says nothing about the kind.
func ClassifyStatus(status int) (kind ErrorKind, ok bool) {
	switch status {
	case http.StatusNotFound:
		return KindModelNotFound, true
	case http.StatusTooManyRequests:
		return KindRateLimited, true
	default:
		return KindOther, false
	}
}

// ClassifyMessage applies the text heuristic observed against the provider.
// Unavailable-model markers are checked before throttling markers, so a message
// containing both counts as an unavailable model.
func ClassifyMessage(msg string) ErrorKind {
	lower := strings.ToLower(msg)

	if strings.Contains(msg, "404") || strings.Contains(lower, "not found") || strings.Contains(lower, "model") {
		return KindModelNotFound
	}

	if strings.Contains(msg, "429") || strings.Contains(lower, "rate limit") || strings.Contains(lower, "quota") {
		return KindRateLimited
	}

	return KindOther
}
