package routes

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/DanielBarbieri21/Chatbot-Auto-Pecas/internal/domain/chat"
	"github.com/DanielBarbieri21/Chatbot-Auto-Pecas/internal/interfaces/httpserver/dto"
	"github.com/DanielBarbieri21/Chatbot-Auto-Pecas/internal/interfaces/httpserver/handlers"
)

func registerChatRoutes(router gin.IRoutes, handler *handlers.ChatHandler) {
	router.POST("/chat", postChat(handler))
	router.POST("/chat/reset", postChatReset(handler))
}

func postChat(handler *handlers.ChatHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.ChatRequest
		if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Message) == "" {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: chat.ErrEmptyMessage.Error()})
			return
		}

		sessionID := resolveSession(c)
		reply, err := handler.Handle(c.Request.Context(), sessionID, req.Message)
		if err != nil {
			if errors.Is(err, chat.ErrEmptyMessage) {
				c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: chat.ErrEmptyMessage.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "erro ao processar, tente novamente em alguns segundos"})
			return
		}

		// Completed and degraded turns share the same success shape.
		c.JSON(http.StatusOK, dto.ChatResponse{Reply: reply.Text})
	}
}

func postChatReset(handler *handlers.ChatHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		handler.Reset(resolveSession(c))
		c.JSON(http.StatusOK, dto.MessageResponse{Message: "Conversa resetada"})
	}
}

// resolveSession reads the caller's session id, minting one when absent,
// and echoes the effective id in the response headers.
func resolveSession(c *gin.Context) string {
	sessionID := strings.TrimSpace(c.GetHeader(SessionHeader))
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	c.Header(SessionHeader, sessionID)
	return sessionID
}
