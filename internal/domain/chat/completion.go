package chat

import (
	"context"
	"errors"
)

// CompletionClient sends one prompt to the external generative service
// and returns the generated reply text verbatim. Implementations live in
// infrastructure; errors must wrap one of the upstream sentinels below.
type CompletionClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Upstream failure taxonomy. All four are absorbed by the chat service
// and converted into a degraded reply; they are never surfaced to the
// HTTP caller.
var (
	ErrUpstreamTimeout         = errors.New("upstream completion timed out")
	ErrUpstreamTransport       = errors.New("upstream transport failure")
	ErrUpstreamInvalidResponse = errors.New("upstream response missing generated text")
	ErrUpstreamAuth            = errors.New("upstream rejected credentials")
)

// ErrEmptyMessage is the only caller-visible chat validation error.
var ErrEmptyMessage = errors.New("mensagem é obrigatória")

// IsUpstreamFailure reports whether err belongs to the absorbed
// completion failure taxonomy.
func IsUpstreamFailure(err error) bool {
	return errors.Is(err, ErrUpstreamTimeout) ||
		errors.Is(err, ErrUpstreamTransport) ||
		errors.Is(err, ErrUpstreamInvalidResponse) ||
		errors.Is(err, ErrUpstreamAuth)
}

// UpstreamFailureKind returns a short label for metrics and logs.
func UpstreamFailureKind(err error) string {
	switch {
	case errors.Is(err, ErrUpstreamTimeout):
		return "timeout"
	case errors.Is(err, ErrUpstreamAuth):
		return "auth"
	case errors.Is(err, ErrUpstreamInvalidResponse):
		return "invalid_response"
	case errors.Is(err, ErrUpstreamTransport):
		return "transport"
	default:
		return "unknown"
	}
}
