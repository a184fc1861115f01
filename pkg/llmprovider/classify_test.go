package llmprovider

import (
	"errors"
	"fmt"
	"testing"
)

func TestClassifyMessage(t *testing.T) {
	tests := []struct {
		msg  string
		want ErrorKind
	}{
		{"error, status code: 404, message: not available", KindModelNotFound},
		{"The requested resource was Not Found", KindModelNotFound},
		{"The Model `x` has been decommissioned", KindModelNotFound},
		{"status code: 429", KindRateLimited},
		{"Rate Limit reached, please retry", KindRateLimited},
		{"Daily QUOTA exhausted", KindRateLimited},
		{"Rate limit reached for model llama", KindModelNotFound},
		{"connection reset by peer", KindOther},
		{"", KindOther},
	}

	for _, tt := range tests {
		if got := ClassifyMessage(tt.msg); got != tt.want {
			t.Errorf("ClassifyMessage(%q) = %s, want %s", tt.msg, got, tt.want)
		}
	}
}

func TestClassifyStatus(t *testing.T) {
	if k, ok := ClassifyStatus(404); !ok || k != KindModelNotFound {
		t.Errorf("404 => %s, %v", k, ok)
	}
	if k, ok := ClassifyStatus(429); !ok || k != KindRateLimited {
		t.Errorf("429 => %s, %v", k, ok)
	}
	if _, ok := ClassifyStatus(500); ok {
		t.Errorf("500 should not be classified")
	}
}

func TestKindOf(t *testing.T) {
	pe := &ProviderError{Provider: "groq", Model: "m", Kind: KindRateLimited, Err: errors.New("model busy")}
	if got := KindOf(fmt.Errorf("wrapped: %w", pe)); got != KindRateLimited {
		t.Errorf("KindOf(wrapped provider error) = %s, want rate_limited", got)
	}
	if got := KindOf(errors.New("quota exceeded")); got != KindRateLimited {
		t.Errorf("KindOf(plain) = %s, want rate_limited", got)
	}
	if got := KindOf(nil); got != KindOther {
		t.Errorf("KindOf(nil) = %s, want error", got)
	}
}
