package testutil

import (
	"context"
	"sync"

	"github.com/brightlabs/sciencebot-go/internal/model"
	"github.com/brightlabs/sciencebot-go/internal/store"
)

// FakeFAQStore is an in-memory store.FAQStore for service tests.
type FakeFAQStore struct {
	mu   sync.Mutex
	FAQs []model.FAQ
	// ListErr, when set, is returned by ListFAQs to simulate a backend outage.
	ListErr error
}

func NewFakeFAQStore(faqs ...model.FAQ) *FakeFAQStore {
	return &FakeFAQStore{FAQs: faqs}
}

func (f *FakeFAQStore) ListFAQs(ctx context.Context) ([]model.FAQ, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	out := make([]model.FAQ, len(f.FAQs))
	copy(out, f.FAQs)
	return out, nil
}

func (f *FakeFAQStore) GetFAQ(ctx context.Context, id string) (*model.FAQ, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, faq := range f.FAQs {
		if faq.ID == id {
			out := faq
			return &out, nil
		}
	}
	return nil, store.ErrFAQNotFound
}

func (f *FakeFAQStore) UpsertFAQ(ctx context.Context, faq model.FAQ) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.FAQs {
		if f.FAQs[i].ID == faq.ID {
			f.FAQs[i] = faq
			return nil
		}
	}
	f.FAQs = append(f.FAQs, faq)
	return nil
}

func (f *FakeFAQStore) DeleteFAQ(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.FAQs {
		if f.FAQs[i].ID == id {
			f.FAQs = append(f.FAQs[:i], f.FAQs[i+1:]...)
			return nil
		}
	}
	return store.ErrFAQNotFound
}

// FakeTranscriptStore records appended messages in memory.
type FakeTranscriptStore struct {
	mu       sync.Mutex
	Messages map[string][]model.ChatMessage
}

func NewFakeTranscriptStore() *FakeTranscriptStore {
	return &FakeTranscriptStore{Messages: make(map[string][]model.ChatMessage)}
}

func (f *FakeTranscriptStore) AppendMessages(ctx context.Context, sessionID string, messages ...model.ChatMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Messages[sessionID] = append(f.Messages[sessionID], messages...)
	return nil
}

func (f *FakeTranscriptStore) ListMessages(ctx context.Context, sessionID string) ([]model.ChatMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.ChatMessage, len(f.Messages[sessionID]))
	copy(out, f.Messages[sessionID])
	return out, nil
}
