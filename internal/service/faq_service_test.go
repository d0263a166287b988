package service

import (
	"context"
	"testing"

	"github.com/brightlabs/sciencebot-go/internal/model"
	"github.com/brightlabs/sciencebot-go/internal/store"
	"github.com/brightlabs/sciencebot-go/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func validFAQ() model.FAQ {
	return model.FAQ{
		QuestionEN: "Do you run birthday parties?",
		QuestionAR: "هل تنظمون حفلات أعياد ميلاد؟",
		AnswerEN:   "Yes, science-themed parties for ages 5-12.",
		AnswerAR:   "نعم، حفلات بطابع علمي للأعمار 5-12.",
	}
}

func TestSaveGeneratesID(t *testing.T) {
	svc := NewFAQService(testutil.NewFakeFAQStore(), zap.NewNop())

	saved, err := svc.Save(context.Background(), validFAQ())
	require.NoError(t, err)

	assert.NotEmpty(t, saved.ID)

	got, err := svc.Get(context.Background(), saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved.QuestionEN, got.QuestionEN)
}

func TestSaveRequiresBothLanguages(t *testing.T) {
	svc := NewFAQService(testutil.NewFakeFAQStore(), zap.NewNop())

	missingAR := validFAQ()
	missingAR.AnswerAR = ""
	_, err := svc.Save(context.Background(), missingAR)
	assert.Error(t, err)

	missingEN := validFAQ()
	missingEN.QuestionEN = "   "
	_, err = svc.Save(context.Background(), missingEN)
	assert.Error(t, err)
}

func TestDeleteMissingFAQ(t *testing.T) {
	svc := NewFAQService(testutil.NewFakeFAQStore(), zap.NewNop())

	err := svc.Delete(context.Background(), "nope")

	assert.ErrorIs(t, err, store.ErrFAQNotFound)
}
