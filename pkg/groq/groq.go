package groq

import (
	"context"
	"errors"
	"net/http"

	"github.com/sashabaranov/go-openai"

	"finmail-classifier/pkg/llmprovider"
)

// Client talks to Groq's chat completion API and implements llmprovider.Provider.
type Client struct {
	client *openai.Client
}

// New creates a new Groq client
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	clientConfig.BaseURL = cfg.BaseURL
	clientConfig.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	return &Client{client: openai.NewClientWithConfig(clientConfig)}, nil
}

// Name implements llmprovider.Provider
func (c *Client) Name() string {
	return ProviderName
}

// Generate implements llmprovider.Provider. Every failure is returned as a
// *llmprovider.ProviderError whose Kind is decided here.
func (c *Client) Generate(ctx context.Context, model string, req *llmprovider.Request) (*llmprovider.Response, error) {
	chatReq := openai.ChatCompletionRequest{
		Model:       model,
		Messages:    buildMessages(req),
		Temperature: float32(req.Temperature),
	}
	if req.ResponseFormat == llmprovider.ResponseFormatJSONObject {
		chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := c.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return nil, wrapError(model, err)
	}

	if len(resp.Choices) == 0 {
		return nil, wrapError(model, llmprovider.ErrEmptyResponse)
	}

	return &llmprovider.Response{
		Text:         resp.Choices[0].Message.Content,
		ProviderName: ProviderName,
		ModelName:    model,
		Usage: &llmprovider.Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

func buildMessages(req *llmprovider.Request) []openai.ChatCompletionMessage {
	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if req.SystemInstruction != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.SystemInstruction,
		})
	}
	return append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.Prompt,
	})
}
