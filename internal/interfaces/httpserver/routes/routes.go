package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/DanielBarbieri21/Chatbot-Auto-Pecas/internal/interfaces/httpserver/handlers"
)

// SessionHeader selects the conversation scope of chat requests. When a
// client omits it, the chat routes mint a fresh session id and echo it
// back so the client can stick to it.
const SessionHeader = "X-Session-ID"

// Provider encapsulates route registration.
type Provider struct {
	handlers *handlers.Provider
}

// NewProvider builds the route registrar.
func NewProvider(handlerProvider *handlers.Provider) *Provider {
	return &Provider{
		handlers: handlerProvider,
	}
}

// Register attaches the storefront routes at the engine root.
func (p *Provider) Register(engine *gin.Engine) {
	registerCatalogRoutes(engine, p.handlers.Catalog)
	registerChatRoutes(engine, p.handlers.Chat)
}
