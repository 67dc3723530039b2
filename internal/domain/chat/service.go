package chat

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/DanielBarbieri21/Chatbot-Auto-Pecas/internal/domain/catalog"
	"github.com/DanielBarbieri21/Chatbot-Auto-Pecas/internal/infrastructure/metrics"
)

// Service orchestrates one chat turn: record the user message, build the
// prompt, dispatch to the completion upstream and absorb any upstream
// failure into a fallback reply.
type Service interface {
	Handle(ctx context.Context, sessionID, message string) (Reply, error)
	Reset(sessionID string)
	History(sessionID string) []Turn
}

type service struct {
	store    *HistoryStore
	client   CompletionClient
	catalog  catalog.Service
	provider string
	timeout  time.Duration
	log      zerolog.Logger
}

// NewService wires the chat orchestration service.
func NewService(store *HistoryStore, client CompletionClient, catalogSvc catalog.Service, provider string, timeout time.Duration, log zerolog.Logger) Service {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &service{
		store:    store,
		client:   client,
		catalog:  catalogSvc,
		provider: provider,
		timeout:  timeout,
		log:      log.With().Str("component", "chat-service").Logger(),
	}
}

// Handle runs one conversational exchange. Upstream completion failures
// never escape: they yield a degraded Reply with a nil error. Only input
// validation and failures outside the dispatch boundary return errors.
func (s *service) Handle(ctx context.Context, sessionID, message string) (Reply, error) {
	if strings.TrimSpace(message) == "" {
		return Reply{}, ErrEmptyMessage
	}

	products, err := s.catalog.List(ctx)
	if err != nil {
		return Reply{}, err
	}

	s.store.Append(sessionID, Turn{Role: RoleUser, Text: message})
	metrics.SessionsActive.Set(float64(s.store.Sessions()))

	prompt := BuildPrompt(products, message)

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	text, err := s.client.Complete(callCtx, prompt)
	elapsed := time.Since(start)
	if err != nil {
		kind := UpstreamFailureKind(err)
		metrics.CompletionDuration.WithLabelValues(s.provider, "error").Observe(elapsed.Seconds())
		metrics.CompletionErrorsTotal.WithLabelValues(s.provider, kind).Inc()
		metrics.ChatTurnsTotal.WithLabelValues(metrics.OutcomeDegraded).Inc()
		s.log.Warn().
			Err(err).
			Str("session_id", sessionID).
			Str("error_type", kind).
			Dur("latency", elapsed).
			Msg("completion failed, serving fallback reply")

		reply := FallbackReply(message, products)
		s.store.Append(sessionID, Turn{Role: RoleAssistant, Text: reply, Degraded: true})
		return Reply{Text: reply, Degraded: true}, nil
	}

	metrics.CompletionDuration.WithLabelValues(s.provider, "ok").Observe(elapsed.Seconds())
	metrics.ChatTurnsTotal.WithLabelValues(metrics.OutcomeCompleted).Inc()

	s.store.Append(sessionID, Turn{Role: RoleAssistant, Text: text})
	return Reply{Text: text}, nil
}

// Reset clears the session's history. Always succeeds.
func (s *service) Reset(sessionID string) {
	s.store.Reset(sessionID)
	s.log.Info().Str("session_id", sessionID).Msg("conversation reset")
}

// History returns a copy of the session's recorded turns.
func (s *service) History(sessionID string) []Turn {
	return s.store.Snapshot(sessionID)
}
