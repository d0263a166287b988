package handler

import (
	"errors"

	"github.com/brightlabs/sciencebot-go/internal/model"
	"github.com/brightlabs/sciencebot-go/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler serves the plain-HTTP chat surface for callers that don't hold
// a WebSocket (e.g. server-rendered pages).
type ChatHandler struct {
	chatService    *service.ChatService
	sessionService *service.SessionService
	logger         *zap.Logger
}

// NewChatHandler creates a chat handler.
func NewChatHandler(chatService *service.ChatService, sessionService *service.SessionService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		chatService:    chatService,
		sessionService: sessionService,
		logger:         logger,
	}
}

// Chat runs one chat turn.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid request"})
		return
	}

	resp, err := h.chatService.HandleUserMessage(c.Request.Context(), req.SessionID, req.Text)
	if err != nil {
		if errors.Is(err, service.ErrEmptyMessage) {
			c.JSON(400, gin.H{"error": "message text is required"})
			return
		}
		h.logger.Error("chat turn failed", zap.Error(err))
		c.JSON(500, gin.H{"error": "chat failed"})
		return
	}

	c.JSON(200, resp)
}

// History returns a session's transcript.
func (h *ChatHandler) History(c *gin.Context) {
	sessionID := c.Param("sessionId")
	if sessionID == "" {
		c.JSON(400, gin.H{"error": "sessionId is required"})
		return
	}

	msgs, err := h.chatService.History(c.Request.Context(), sessionID)
	if err != nil {
		h.logger.Error("loading history failed",
			zap.String("sessionId", sessionID),
			zap.Error(err))
		c.JSON(500, gin.H{"error": "loading history failed"})
		return
	}

	c.JSON(200, gin.H{"sessionId": sessionID, "messages": msgs})
}

// Health reports service status and connected widgets.
func (h *ChatHandler) Health(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":         "UP",
		"online_widgets": h.sessionService.OnlineCount(),
	})
}
