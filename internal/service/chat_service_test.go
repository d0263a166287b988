package service

import (
	"context"
	"errors"
	"testing"

	"github.com/brightlabs/sciencebot-go/internal/config"
	"github.com/brightlabs/sciencebot-go/internal/model"
	"github.com/brightlabs/sciencebot-go/internal/resolver"
	"github.com/brightlabs/sciencebot-go/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestChatService(faqs *testutil.FakeFAQStore, transcripts *testutil.FakeTranscriptStore) *ChatService {
	cfg := config.ChatConfig{
		WorkingHours: config.WorkingHoursConfig{Start: 0, End: 24},
		SupportLink:  "https://wa.me/15551234567",
	}
	return NewChatService(faqs, transcripts, resolver.New(zap.NewNop()), cfg, zap.NewNop())
}

func TestHandleUserMessageMatchesFAQ(t *testing.T) {
	faqs := testutil.NewFakeFAQStore(model.FAQ{
		ID:         "faq-1",
		QuestionEN: "What are your prices?",
		QuestionAR: "ما هي أسعاركم؟",
		AnswerEN:   "Prices start at $50",
		AnswerAR:   "تبدأ الأسعار من 50 دولارًا",
	})
	transcripts := testutil.NewFakeTranscriptStore()
	svc := newTestChatService(faqs, transcripts)

	resp, err := svc.HandleUserMessage(context.Background(), "sess-1", "what are your prices")
	require.NoError(t, err)

	assert.Equal(t, model.OutcomeMatchedFAQ, resp.Kind)
	assert.Equal(t, "Prices start at $50", resp.Answer)
	assert.Equal(t, "sess-1", resp.SessionID)
	assert.Empty(t, resp.SupportLink)

	// Both sides of the turn are on the transcript, user first.
	msgs := transcripts.Messages["sess-1"]
	require.Len(t, msgs, 2)
	assert.Equal(t, model.SenderUser, msgs[0].Sender)
	assert.Equal(t, "what are your prices", msgs[0].Text)
	assert.Equal(t, model.SenderBot, msgs[1].Sender)
	assert.Equal(t, "Prices start at $50", msgs[1].Text)
}

func TestHandleUserMessageAttachesSupportLink(t *testing.T) {
	transcripts := testutil.NewFakeTranscriptStore()
	svc := newTestChatService(testutil.NewFakeFAQStore(), transcripts)

	resp, err := svc.HandleUserMessage(context.Background(), "sess-1", "I want to talk to customer service")
	require.NoError(t, err)

	assert.Equal(t, model.OutcomeSupportPrompt, resp.Kind)
	assert.True(t, resp.ShowSupportButton)
	assert.Equal(t, "https://wa.me/15551234567", resp.SupportLink)

	msgs := transcripts.Messages["sess-1"]
	require.Len(t, msgs, 2)
	assert.True(t, msgs[1].ShowSupportButton)
}

func TestHandleUserMessageRejectsBlankText(t *testing.T) {
	svc := newTestChatService(testutil.NewFakeFAQStore(), testutil.NewFakeTranscriptStore())

	_, err := svc.HandleUserMessage(context.Background(), "sess-1", "   ")

	assert.ErrorIs(t, err, ErrEmptyMessage)
}

func TestHandleUserMessageStartsSessionWhenIDMissing(t *testing.T) {
	transcripts := testutil.NewFakeTranscriptStore()
	svc := newTestChatService(testutil.NewFakeFAQStore(), transcripts)

	resp, err := svc.HandleUserMessage(context.Background(), "", "hello")
	require.NoError(t, err)

	assert.NotEmpty(t, resp.SessionID)
	assert.Len(t, transcripts.Messages[resp.SessionID], 2)
}

func TestHandleUserMessageSurvivesStoreOutage(t *testing.T) {
	faqs := testutil.NewFakeFAQStore()
	faqs.ListErr = errors.New("redis down")
	svc := newTestChatService(faqs, testutil.NewFakeTranscriptStore())

	resp, err := svc.HandleUserMessage(context.Background(), "sess-1", "hello")
	require.NoError(t, err)

	// A failed FAQ read is an ordinary no-match; greetings still work.
	assert.Equal(t, model.OutcomeGreeting, resp.Kind)
}

func TestHistoryReturnsTranscript(t *testing.T) {
	transcripts := testutil.NewFakeTranscriptStore()
	svc := newTestChatService(testutil.NewFakeFAQStore(), transcripts)

	_, err := svc.HandleUserMessage(context.Background(), "sess-1", "hello")
	require.NoError(t, err)

	msgs, err := svc.History(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Len(t, msgs, 2)
}
