package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/brightlabs/sciencebot-go/internal/model"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	transcriptKeyPrefix = "transcript:"
	transcriptMaxLen    = 200
	transcriptTTL       = 24 * time.Hour
)

// TranscriptStore is the append-only conversation log. The resolver never
// touches it; only the chat service appends and the history endpoint reads.
type TranscriptStore interface {
	AppendMessages(ctx context.Context, sessionID string, messages ...model.ChatMessage) error
	ListMessages(ctx context.Context, sessionID string) ([]model.ChatMessage, error)
}

// RedisTranscriptStore keeps each session's transcript as a capped redis list
// with a 24h sliding expiry.
type RedisTranscriptStore struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedisTranscriptStore creates a redis-backed transcript store.
func NewRedisTranscriptStore(client *redis.Client, logger *zap.Logger) *RedisTranscriptStore {
	return &RedisTranscriptStore{
		client: client,
		logger: logger,
	}
}

// AppendMessages pushes messages onto the session's list, trims it to the cap
// and refreshes the expiry.
func (s *RedisTranscriptStore) AppendMessages(ctx context.Context, sessionID string, messages ...model.ChatMessage) error {
	if len(messages) == 0 {
		return nil
	}

	key := transcriptKeyPrefix + sessionID
	values := make([]interface{}, 0, len(messages))
	for _, msg := range messages {
		raw, err := json.Marshal(msg)
		if err != nil {
			return fmt.Errorf("encode transcript message: %w", err)
		}
		values = append(values, raw)
	}

	pipe := s.client.Pipeline()
	pipe.RPush(ctx, key, values...)
	pipe.LTrim(ctx, key, -transcriptMaxLen, -1)
	pipe.Expire(ctx, key, transcriptTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("append transcript %s: %w", sessionID, err)
	}

	return nil
}

// ListMessages returns the session's transcript, oldest first.
func (s *RedisTranscriptStore) ListMessages(ctx context.Context, sessionID string) ([]model.ChatMessage, error) {
	key := transcriptKeyPrefix + sessionID
	raws, err := s.client.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list transcript %s: %w", sessionID, err)
	}

	messages := make([]model.ChatMessage, 0, len(raws))
	for _, raw := range raws {
		var msg model.ChatMessage
		if err := json.Unmarshal([]byte(raw), &msg); err != nil {
			s.logger.Warn("skipping malformed transcript message",
				zap.String("sessionId", sessionID),
				zap.Error(err))
			continue
		}
		messages = append(messages, msg)
	}

	return messages, nil
}
