package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/brightlabs/sciencebot-go/internal/model"
	"github.com/brightlabs/sciencebot-go/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// TODO: restrict to the site's origin in production
		return true
	},
}

// WebSocketHandler is the live chat-widget transport.
type WebSocketHandler struct {
	sessionService *service.SessionService
	chatService    *service.ChatService
	logger         *zap.Logger
}

// NewWebSocketHandler creates a WebSocket handler.
func NewWebSocketHandler(sessionService *service.SessionService, chatService *service.ChatService, logger *zap.Logger) *WebSocketHandler {
	return &WebSocketHandler{
		sessionService: sessionService,
		chatService:    chatService,
		logger:         logger,
	}
}

// HandleWebSocket upgrades the connection and runs the message loop. The
// widget may reconnect with an existing session id to keep its transcript.
func (h *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	sessionID := c.Query("sessionId")
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	session := &model.WidgetSession{
		SessionID:     sessionID,
		Conn:          conn,
		ClientIP:      c.ClientIP(),
		LastHeartbeat: time.Now(),
	}
	h.sessionService.Register(session)
	defer h.sessionService.Remove(sessionID)

	h.logger.Info("widget connected",
		zap.String("sessionId", sessionID),
		zap.String("clientIp", session.ClientIP))

	// Tell the widget its session id so it can resume after a reconnect.
	session.WriteMessage(gin.H{"type": "SESSION", "sessionId": sessionID})

	for {
		var msg model.ChatMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Error("websocket read error", zap.Error(err))
			}
			break
		}

		h.handleMessage(sessionID, &msg)
	}

	h.logger.Info("widget disconnected", zap.String("sessionId", sessionID))
}

// handleMessage dispatches one widget message.
func (h *WebSocketHandler) handleMessage(sessionID string, msg *model.ChatMessage) {
	switch msg.Type {
	case "CHAT":
		go h.reply(sessionID, msg.Text)

	case "HEARTBEAT":
		h.sessionService.UpdateHeartbeat(sessionID)

	default:
		h.logger.Warn("unknown message type",
			zap.String("sessionId", sessionID),
			zap.String("type", msg.Type))
	}
}

// reply resolves the utterance and pushes the bot's answer back, after the
// configured simulated typing delay. The delay is presentation only.
func (h *WebSocketHandler) reply(sessionID, text string) {
	h.sessionService.Send(sessionID, gin.H{"type": "TYPING"})

	resp, err := h.chatService.HandleUserMessage(context.Background(), sessionID, text)
	if err != nil {
		h.logger.Warn("ignoring unusable widget message",
			zap.String("sessionId", sessionID),
			zap.Error(err))
		return
	}

	if delay := h.chatService.TypingDelay(); delay > 0 {
		time.Sleep(delay)
	}

	h.sessionService.Send(sessionID, gin.H{
		"type":              "BOT_REPLY",
		"messageId":         resp.MessageID,
		"text":              resp.Answer,
		"language":          resp.Language,
		"kind":              resp.Kind,
		"showSupportButton": resp.ShowSupportButton,
		"supportLink":       resp.SupportLink,
	})
}
