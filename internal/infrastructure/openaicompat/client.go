// Package openaicompat implements the completion client for
// OpenAI-compatible chat completion upstreams.
package openaicompat

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"

	"github.com/DanielBarbieri21/Chatbot-Auto-Pecas/internal/domain/chat"
)

// Client adapts an OpenAI-style chat completion endpoint to the
// chat.CompletionClient contract.
type Client struct {
	api   *openai.Client
	model string
	log   zerolog.Logger
}

// NewClient constructs the client. An empty baseURL targets the
// official OpenAI endpoint; any OpenAI-compatible gateway works through
// the base URL override.
func NewClient(apiKey, baseURL, model string, log zerolog.Logger) *Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &Client{
		api:   openai.NewClientWithConfig(cfg),
		model: model,
		log:   log.With().Str("component", "openai-client").Logger(),
	}
}

// Complete sends the prompt as a single user message and returns the
// first choice's content. Errors always wrap one of the chat upstream
// sentinels.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", classifyError(err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", chat.ErrUpstreamInvalidResponse
	}
	return resp.Choices[0].Message.Content, nil
}

func classifyError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", chat.ErrUpstreamTimeout, err)
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.HTTPStatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: status %d", chat.ErrUpstreamAuth, apiErr.HTTPStatusCode)
		default:
			return fmt.Errorf("%w: status %d", chat.ErrUpstreamTransport, apiErr.HTTPStatusCode)
		}
	}
	return fmt.Errorf("%w: %v", chat.ErrUpstreamTransport, err)
}
