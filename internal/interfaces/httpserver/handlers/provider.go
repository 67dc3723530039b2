package handlers

import (
	catalogdomain "github.com/DanielBarbieri21/Chatbot-Auto-Pecas/internal/domain/catalog"
	"github.com/DanielBarbieri21/Chatbot-Auto-Pecas/internal/domain/chat"
)

// Provider groups the HTTP handlers for route registration.
type Provider struct {
	Catalog *CatalogHandler
	Chat    *ChatHandler
}

// NewProvider wires all handlers.
func NewProvider(catalogService catalogdomain.Service, chatService chat.Service) *Provider {
	return &Provider{
		Catalog: NewCatalogHandler(catalogService),
		Chat:    NewChatHandler(chatService),
	}
}
