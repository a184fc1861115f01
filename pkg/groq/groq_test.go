package groq_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finmail-classifier/pkg/groq"
	"finmail-classifier/pkg/llmprovider"
)

type chatRequest struct {
	Model          string  `json:"model"`
	Temperature    float64 `json:"temperature"`
	MaxTokens      *int    `json:"max_tokens"`
	ResponseFormat *struct {
		Type string `json:"type"`
	} `json:"response_format"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func newServer(t *testing.T, handler func(w http.ResponseWriter, req chatRequest)) *groq.Client {
	t.Helper()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/openai/v1/chat/completions" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		handler(w, req)
	}))
	t.Cleanup(ts.Close)

	client, err := groq.New(groq.Config{APIKey: "test-key", BaseURL: ts.URL + "/openai/v1"})
	require.NoError(t, err)
	return client
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{"message": message, "type": "invalid_request_error", "code": code},
	})
}

var jsonReq = &llmprovider.Request{
	SystemInstruction: "system text",
	Prompt:            "user text",
	Temperature:       0.3,
	ResponseFormat:    llmprovider.ResponseFormatJSONObject,
}

func TestNew_RequiresAPIKey(t *testing.T) {
	_, err := groq.New(groq.Config{})
	assert.Error(t, err)
}

func TestGenerate_Success(t *testing.T) {
	var got chatRequest
	client := newServer(t, func(w http.ResponseWriter, req chatRequest) {
		got = req
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"model": "llama-3.1-8b-instant",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "{\"category\":\"Produtivo\"}"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 12, "completion_tokens": 7, "total_tokens": 19}
		}`))
	})

	resp, err := client.Generate(context.Background(), "llama-3.1-8b-instant", jsonReq)
	require.NoError(t, err)

	assert.Equal(t, `{"category":"Produtivo"}`, resp.Text)
	assert.Equal(t, "llama-3.1-8b-instant", resp.ModelName)
	assert.Equal(t, groq.ProviderName, resp.ProviderName)
	assert.Equal(t, 19, resp.Usage.TotalTokens)

	assert.Equal(t, "llama-3.1-8b-instant", got.Model)
	assert.InDelta(t, 0.3, got.Temperature, 0.0001)
	assert.Nil(t, got.MaxTokens)
	require.NotNil(t, got.ResponseFormat)
	assert.Equal(t, "json_object", got.ResponseFormat.Type)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "system text", got.Messages[0].Content)
	assert.Equal(t, "user", got.Messages[1].Role)
	assert.Equal(t, "user text", got.Messages[1].Content)
}

func TestGenerate_ErrorKinds(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		code     string
		message  string
		wantKind llmprovider.ErrorKind
	}{
		{"model not found", http.StatusNotFound, "model_not_found", "The model `mixtral-8x7b-32768` does not exist", llmprovider.KindModelNotFound},
		{"rate limited", http.StatusTooManyRequests, "rate_limit_exceeded", "Rate limit reached for model `llama-3.1-70b-versatile`", llmprovider.KindRateLimited},
		{"decommissioned model", http.StatusBadRequest, "model_decommissioned", "The model has been decommissioned", llmprovider.KindModelNotFound},
		{"server error", http.StatusInternalServerError, "internal_error", "Internal server error", llmprovider.KindOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newServer(t, func(w http.ResponseWriter, _ chatRequest) {
				writeError(w, tt.status, tt.code, tt.message)
			})

			_, err := client.Generate(context.Background(), "m", jsonReq)
			require.Error(t, err)

			var pe *llmprovider.ProviderError
			require.True(t, errors.As(err, &pe), "expected *ProviderError, got %T", err)
			assert.Equal(t, tt.wantKind, pe.Kind)
			assert.Equal(t, tt.status, pe.StatusCode)
			assert.Equal(t, "m", pe.Model)
		})
	}
}

func TestGenerate_EmptyChoices(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, _ chatRequest) {
		_, _ = w.Write([]byte(`{"id":"x","object":"chat.completion","choices":[]}`))
	})

	_, err := client.Generate(context.Background(), "m", jsonReq)
	assert.ErrorIs(t, err, llmprovider.ErrEmptyResponse)
	assert.Equal(t, llmprovider.KindOther, llmprovider.KindOf(err))
}
