package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/brightlabs/sciencebot-go/internal/config"
	"github.com/brightlabs/sciencebot-go/internal/model"
	"github.com/brightlabs/sciencebot-go/internal/resolver"
	"github.com/brightlabs/sciencebot-go/internal/store"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrEmptyMessage is returned when the incoming text is blank after trimming.
// The resolver assumes non-blank input, so the guard lives here.
var ErrEmptyMessage = fmt.Errorf("message text is empty")

// ChatService runs one chat turn: load the current FAQ list, resolve the
// utterance, append both sides to the transcript and shape the reply.
type ChatService struct {
	faqs        store.FAQStore
	transcripts store.TranscriptStore
	resolver    *resolver.Resolver
	chatCfg     config.ChatConfig
	logger      *zap.Logger
}

// NewChatService creates a chat service.
func NewChatService(
	faqs store.FAQStore,
	transcripts store.TranscriptStore,
	res *resolver.Resolver,
	chatCfg config.ChatConfig,
	logger *zap.Logger,
) *ChatService {
	return &ChatService{
		faqs:        faqs,
		transcripts: transcripts,
		resolver:    res,
		chatCfg:     chatCfg,
		logger:      logger,
	}
}

// HandleUserMessage processes a single utterance and returns the bot's reply.
// An empty session id starts a new session.
func (s *ChatService) HandleUserMessage(ctx context.Context, sessionID, text string) (*model.ChatResponse, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyMessage
	}
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	s.logger.Info("handling user message",
		zap.String("sessionId", sessionID),
		zap.String("text", text))

	// The FAQ list is re-read on every query; a stale or failed read is an
	// ordinary no-match condition, never a user-facing error.
	faqs, err := s.faqs.ListFAQs(ctx)
	if err != nil {
		s.logger.Error("loading faqs failed, resolving without them", zap.Error(err))
		faqs = nil
	}

	hours := model.WorkingHours{
		Start: s.chatCfg.WorkingHours.Start,
		End:   s.chatCfg.WorkingHours.End,
	}
	outcome := s.resolver.Resolve(text, faqs, hours)

	s.logger.Info("utterance resolved",
		zap.String("sessionId", sessionID),
		zap.String("kind", string(outcome.Kind)),
		zap.String("language", string(outcome.Language)))

	now := time.Now()
	userMsg := model.ChatMessage{
		MessageID: uuid.New().String(),
		Type:      "CHAT",
		Text:      text,
		Sender:    model.SenderUser,
		Timestamp: now,
	}
	botMsg := model.ChatMessage{
		MessageID:         uuid.New().String(),
		Type:              "BOT_REPLY",
		Text:              outcome.Answer,
		Sender:            model.SenderBot,
		Timestamp:         now,
		ShowSupportButton: outcome.OfferHandoff,
	}
	if err := s.transcripts.AppendMessages(ctx, sessionID, userMsg, botMsg); err != nil {
		// The reply still goes out; the transcript is best-effort.
		s.logger.Error("appending transcript failed",
			zap.String("sessionId", sessionID),
			zap.Error(err))
	}

	resp := &model.ChatResponse{
		SessionID:         sessionID,
		MessageID:         botMsg.MessageID,
		Kind:              outcome.Kind,
		Answer:            outcome.Answer,
		Language:          outcome.Language,
		ShowSupportButton: outcome.OfferHandoff,
	}
	if outcome.OfferHandoff {
		resp.SupportLink = s.chatCfg.SupportLink
	}

	return resp, nil
}

// History returns the session's transcript, oldest first.
func (s *ChatService) History(ctx context.Context, sessionID string) ([]model.ChatMessage, error) {
	return s.transcripts.ListMessages(ctx, sessionID)
}

// TypingDelay is the artificial latency the widget applies before showing a
// bot reply. Zero disables it.
func (s *ChatService) TypingDelay() time.Duration {
	return time.Duration(s.chatCfg.TypingDelayMs) * time.Millisecond
}
