package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

var (
	// ErrLLMUnavailable indicates the LLM service is not configured or unavailable.
	ErrLLMUnavailable = errors.New("LLM service unavailable")
	// ErrLLMRequest indicates an error during the LLM API request.
	ErrLLMRequest = errors.New("LLM request failed")
	// ErrLLMResponse indicates an error parsing the LLM response.
	ErrLLMResponse = errors.New("failed to parse LLM response")
)

const defaultModel = "llama-3.3-70b-versatile"

// Client wraps an OpenAI-compatible chat completions API.
// The base URL is configurable so any provider speaking the
// OpenAI wire format (Groq, OpenAI, a local gateway) can serve it.
type Client struct {
	client openai.Client
	model  string
}

// NewClient creates a chat completions client.
// Returns nil if apiKey is empty.
func NewClient(apiKey, model, baseURL string) *Client {
	if apiKey == "" {
		return nil
	}

	if model == "" {
		model = defaultModel
	}

	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	return &Client{
		client: openai.NewClient(opts...),
		model:  model,
	}
}

// Model returns the configured model identifier.
func (c *Client) Model() string {
	if c == nil {
		return ""
	}
	return c.model
}

// Chat performs a raw chat completion request. The model field of
// params is filled in from the client configuration when unset.
func (c *Client) Chat(ctx context.Context, params openai.ChatCompletionNewParams) (*openai.ChatCompletion, error) {
	if c == nil {
		return nil, ErrLLMUnavailable
	}

	if params.Model == "" {
		params.Model = c.model
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLLMRequest, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrLLMResponse)
	}

	return resp, nil
}

// Complete is a convenience wrapper for a single system+user exchange
// returning the assistant text.
func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	resp, err := c.Chat(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
	})
	if err != nil {
		return "", err
	}

	return resp.Choices[0].Message.Content, nil
}
