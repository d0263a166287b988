package model

import "time"

// Sender of a conversation message.
const (
	SenderUser = "user"
	SenderBot  = "bot"
)

// ChatMessage is one entry of the append-only conversation transcript. The
// transcript is owned by the chat service; the resolver never reads or writes it.
type ChatMessage struct {
	MessageID         string    `json:"messageId"`
	Type              string    `json:"type"` // CHAT, HEARTBEAT, BOT_REPLY
	Text              string    `json:"text"`
	Sender            string    `json:"sender"`
	Timestamp         time.Time `json:"timestamp"`
	ShowSupportButton bool      `json:"showSupportButton,omitempty"`
}

// ChatRequest is the HTTP body for a single chat turn.
type ChatRequest struct {
	SessionID string `json:"sessionId"`
	Text      string `json:"text" binding:"required"`
}

// ChatResponse is the HTTP reply for a single chat turn.
type ChatResponse struct {
	SessionID         string      `json:"sessionId"`
	MessageID         string      `json:"messageId"`
	Kind              OutcomeKind `json:"kind"`
	Answer            string      `json:"answer"`
	Language          Language    `json:"language"`
	ShowSupportButton bool        `json:"showSupportButton"`
	// SupportLink is the configured handoff target (e.g. a WhatsApp link),
	// attached only when ShowSupportButton is set.
	SupportLink string `json:"supportLink,omitempty"`
}
