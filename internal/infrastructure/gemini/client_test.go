package gemini

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DanielBarbieri21/Chatbot-Auto-Pecas/internal/domain/chat"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, "test-key", "gemini-1.5-flash", zerolog.Nop())
}

func TestCompleteSuccess(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/models/gemini-1.5-flash:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Temos o Filtro de Ar por R$ 45,90."}]}}]}`))
	})

	reply, err := client.Complete(context.Background(), "Tem filtro de ar?")
	require.NoError(t, err)
	assert.Equal(t, "Temos o Filtro de Ar por R$ 45,90.", reply)
}

func TestCompleteInvalidResponse(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no candidates", `{}`},
		{"empty candidates", `{"candidates":[]}`},
		{"candidate without parts", `{"candidates":[{"content":{"parts":[]}}]}`},
		{"empty text", `{"candidates":[{"content":{"parts":[{"text":""}]}}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(tt.body))
			})

			_, err := client.Complete(context.Background(), "oi")
			require.Error(t, err)
			assert.True(t, errors.Is(err, chat.ErrUpstreamInvalidResponse), "got %v", err)
		})
	}
}

func TestCompleteStatusMapping(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, chat.ErrUpstreamAuth},
		{http.StatusForbidden, chat.ErrUpstreamAuth},
		{http.StatusTooManyRequests, chat.ErrUpstreamTransport},
		{http.StatusInternalServerError, chat.ErrUpstreamTransport},
	}

	for _, tt := range tests {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
		})

		_, err := client.Complete(context.Background(), "oi")
		require.Error(t, err)
		assert.True(t, errors.Is(err, tt.want), "status %d: got %v", tt.status, err)
	}
}

func TestCompleteTimeout(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.Complete(ctx, "oi")
	require.Error(t, err)
	assert.True(t, errors.Is(err, chat.ErrUpstreamTimeout), "got %v", err)
}
