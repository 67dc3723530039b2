// Package gemini implements the completion client against the Google
// generative language generateContent endpoint.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"resty.dev/v3"

	"github.com/DanielBarbieri21/Chatbot-Auto-Pecas/internal/domain/chat"
	"github.com/DanielBarbieri21/Chatbot-Auto-Pecas/internal/utils/httpclients"
)

// Client calls the Gemini generateContent API. It is the only component
// in the chat pipeline that performs network I/O.
type Client struct {
	client  *resty.Client
	baseURL string
	apiKey  string
	model   string
	log     zerolog.Logger
}

type generatePart struct {
	Text string `json:"text"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
}

type generateCandidate struct {
	Content generateContent `json:"content"`
}

type generateRequest struct {
	Contents []generateContent `json:"contents"`
}

type generateResponse struct {
	Candidates []generateCandidate `json:"candidates"`
}

// NewClient constructs a Gemini completion client. The API key comes
// from configuration and is sent as a query parameter, matching the
// generativelanguage v1 contract.
func NewClient(baseURL, apiKey, model string, log zerolog.Logger) *Client {
	return &Client{
		client:  httpclients.NewClient("GeminiClient"),
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		log:     log.With().Str("component", "gemini-client").Logger(),
	}
}

// Complete sends the prompt and extracts the first candidate's text.
// Errors always wrap one of the chat upstream sentinels.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	body := generateRequest{
		Contents: []generateContent{
			{Parts: []generatePart{{Text: prompt}}},
		},
	}

	var out generateResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("key", c.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&out).
		Post(fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model))
	if err != nil {
		return "", classifyTransportError(err)
	}

	if resp.IsError() {
		switch resp.StatusCode() {
		case http.StatusUnauthorized, http.StatusForbidden:
			return "", fmt.Errorf("%w: status %d", chat.ErrUpstreamAuth, resp.StatusCode())
		default:
			return "", fmt.Errorf("%w: status %d", chat.ErrUpstreamTransport, resp.StatusCode())
		}
	}

	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", chat.ErrUpstreamInvalidResponse
	}
	text := out.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return "", chat.ErrUpstreamInvalidResponse
	}
	return text, nil
}

func classifyTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", chat.ErrUpstreamTimeout, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", chat.ErrUpstreamTimeout, err)
	}
	return fmt.Errorf("%w: %v", chat.ErrUpstreamTransport, err)
}
