package handlers

import (
	"context"

	"github.com/DanielBarbieri21/Chatbot-Auto-Pecas/internal/domain/chat"
)

// ChatHandler invokes the chat orchestration service.
type ChatHandler struct {
	service chat.Service
}

// NewChatHandler wires dependencies for chat routes.
func NewChatHandler(service chat.Service) *ChatHandler {
	return &ChatHandler{
		service: service,
	}
}

// Handle runs one chat turn for the session.
func (h *ChatHandler) Handle(ctx context.Context, sessionID, message string) (chat.Reply, error) {
	return h.service.Handle(ctx, sessionID, message)
}

// Reset clears the session's conversation history.
func (h *ChatHandler) Reset(sessionID string) {
	h.service.Reset(sessionID)
}
