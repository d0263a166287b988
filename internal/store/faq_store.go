package store

import (
	"context"
	"errors"

	"github.com/brightlabs/sciencebot-go/internal/model"
)

// ErrFAQNotFound is returned when an FAQ id does not exist in the store.
var ErrFAQNotFound = errors.New("faq not found")

// FAQStore is the content-management side of the FAQ list. The chat service
// only reads; the admin endpoints write.
type FAQStore interface {
	ListFAQs(ctx context.Context) ([]model.FAQ, error)
	GetFAQ(ctx context.Context, id string) (*model.FAQ, error)
	UpsertFAQ(ctx context.Context, faq model.FAQ) error
	DeleteFAQ(ctx context.Context, id string) error
}
