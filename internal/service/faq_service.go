package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/brightlabs/sciencebot-go/internal/model"
	"github.com/brightlabs/sciencebot-go/internal/store"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FAQService is the content-management side: validation over the store's CRUD.
type FAQService struct {
	faqs   store.FAQStore
	logger *zap.Logger
}

// NewFAQService creates an FAQ service.
func NewFAQService(faqs store.FAQStore, logger *zap.Logger) *FAQService {
	return &FAQService{
		faqs:   faqs,
		logger: logger,
	}
}

// List returns all FAQ entries.
func (s *FAQService) List(ctx context.Context) ([]model.FAQ, error) {
	return s.faqs.ListFAQs(ctx)
}

// Get returns one entry by id.
func (s *FAQService) Get(ctx context.Context, id string) (*model.FAQ, error) {
	return s.faqs.GetFAQ(ctx, id)
}

// Save validates and stores an entry. A missing id gets a generated one.
// Both language pairs must be complete so the resolver can always select an
// answer for the detected language.
func (s *FAQService) Save(ctx context.Context, faq model.FAQ) (*model.FAQ, error) {
	faq.QuestionEN = strings.TrimSpace(faq.QuestionEN)
	faq.QuestionAR = strings.TrimSpace(faq.QuestionAR)
	faq.AnswerEN = strings.TrimSpace(faq.AnswerEN)
	faq.AnswerAR = strings.TrimSpace(faq.AnswerAR)

	if faq.QuestionEN == "" || faq.AnswerEN == "" {
		return nil, fmt.Errorf("english question and answer are required")
	}
	if faq.QuestionAR == "" || faq.AnswerAR == "" {
		return nil, fmt.Errorf("arabic question and answer are required")
	}
	if faq.ID == "" {
		faq.ID = uuid.New().String()
	}

	if err := s.faqs.UpsertFAQ(ctx, faq); err != nil {
		return nil, err
	}

	s.logger.Info("faq saved", zap.String("id", faq.ID))
	return &faq, nil
}

// Delete removes an entry by id.
func (s *FAQService) Delete(ctx context.Context, id string) error {
	return s.faqs.DeleteFAQ(ctx, id)
}
