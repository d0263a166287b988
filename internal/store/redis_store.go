package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/brightlabs/sciencebot-go/internal/model"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const faqHashKey = "faqs"

// RedisFAQStore keeps FAQ entries as JSON values in a single redis hash,
// field = FAQ id. The admin panel writes through Upsert/Delete; the chat
// service re-reads the full list on every query.
type RedisFAQStore struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedisFAQStore creates a redis-backed FAQ store.
func NewRedisFAQStore(client *redis.Client, logger *zap.Logger) *RedisFAQStore {
	return &RedisFAQStore{
		client: client,
		logger: logger,
	}
}

// ListFAQs returns all entries sorted by id. Redis hash iteration order is
// unspecified, so sorting keeps resolver tie-breaking stable between calls.
func (s *RedisFAQStore) ListFAQs(ctx context.Context) ([]model.FAQ, error) {
	fields, err := s.client.HGetAll(ctx, faqHashKey).Result()
	if err != nil {
		return nil, fmt.Errorf("list faqs: %w", err)
	}

	faqs := make([]model.FAQ, 0, len(fields))
	for id, raw := range fields {
		var faq model.FAQ
		if err := json.Unmarshal([]byte(raw), &faq); err != nil {
			s.logger.Warn("skipping malformed faq entry",
				zap.String("id", id),
				zap.Error(err))
			continue
		}
		faqs = append(faqs, faq)
	}

	sort.Slice(faqs, func(i, j int) bool {
		return faqs[i].ID < faqs[j].ID
	})

	return faqs, nil
}

// GetFAQ returns one entry by id.
func (s *RedisFAQStore) GetFAQ(ctx context.Context, id string) (*model.FAQ, error) {
	raw, err := s.client.HGet(ctx, faqHashKey, id).Result()
	if err == redis.Nil {
		return nil, ErrFAQNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get faq %s: %w", id, err)
	}

	var faq model.FAQ
	if err := json.Unmarshal([]byte(raw), &faq); err != nil {
		return nil, fmt.Errorf("decode faq %s: %w", id, err)
	}
	return &faq, nil
}

// UpsertFAQ creates or replaces an entry.
func (s *RedisFAQStore) UpsertFAQ(ctx context.Context, faq model.FAQ) error {
	raw, err := json.Marshal(faq)
	if err != nil {
		return fmt.Errorf("encode faq %s: %w", faq.ID, err)
	}

	if err := s.client.HSet(ctx, faqHashKey, faq.ID, raw).Err(); err != nil {
		return fmt.Errorf("store faq %s: %w", faq.ID, err)
	}

	s.logger.Info("faq stored", zap.String("id", faq.ID))
	return nil
}

// DeleteFAQ removes an entry by id.
func (s *RedisFAQStore) DeleteFAQ(ctx context.Context, id string) error {
	removed, err := s.client.HDel(ctx, faqHashKey, id).Result()
	if err != nil {
		return fmt.Errorf("delete faq %s: %w", id, err)
	}
	if removed == 0 {
		return ErrFAQNotFound
	}

	s.logger.Info("faq deleted", zap.String("id", id))
	return nil
}
