package resolver

import (
	"testing"
	"time"

	"github.com/brightlabs/sciencebot-go/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestResolver(hour int) *Resolver {
	return New(zap.NewNop()).WithClock(func() time.Time {
		return time.Date(2025, 6, 1, hour, 30, 0, 0, time.UTC)
	})
}

var pricesFAQ = model.FAQ{
	ID:         "faq-prices",
	QuestionEN: "What are your prices?",
	QuestionAR: "ما هي أسعاركم؟",
	AnswerEN:   "Prices start at $50",
	AnswerAR:   "تبدأ الأسعار من 50 دولارًا",
}

var alwaysOpen = model.WorkingHours{Start: 0, End: 24}

func TestResolveIsDeterministic(t *testing.T) {
	r := newTestResolver(12)
	faqs := []model.FAQ{pricesFAQ}

	first := r.Resolve("what are your prices", faqs, alwaysOpen)
	second := r.Resolve("what are your prices", faqs, alwaysOpen)

	assert.Equal(t, first, second)
}

func TestGreetingShortCircuitsFAQs(t *testing.T) {
	r := newTestResolver(12)
	faqs := []model.FAQ{{
		ID:         "faq-hello",
		QuestionEN: "hello",
		AnswerEN:   "this answer must never win over the greeting",
	}}

	out := r.Resolve("hello", faqs, alwaysOpen)

	assert.Equal(t, model.OutcomeGreeting, out.Kind)
	assert.Equal(t, model.LangEnglish, out.Language)
	assert.Equal(t, greetingReply.EN, out.Answer)
}

func TestGreetingMatchRules(t *testing.T) {
	r := newTestResolver(12)

	tests := []struct {
		name      string
		utterance string
		lang      model.Language
	}{
		{"exact english", "hi", model.LangEnglish},
		{"whole token", "hello there", model.LangEnglish},
		{"fuzzy", "helloo", model.LangEnglish},
		{"exact arabic", "مرحبا", model.LangArabic},
		{"arabic phrase", "السلام عليكم", model.LangArabic},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := r.Resolve(tt.utterance, nil, alwaysOpen)
			assert.Equal(t, model.OutcomeGreeting, out.Kind)
			assert.Equal(t, tt.lang, out.Language)
		})
	}
}

func TestExactSubstringFAQMatch(t *testing.T) {
	r := newTestResolver(12)

	out := r.Resolve("what are your prices", []model.FAQ{pricesFAQ}, alwaysOpen)

	require.Equal(t, model.OutcomeMatchedFAQ, out.Kind)
	assert.Equal(t, "Prices start at $50", out.Answer)
	assert.Equal(t, "faq-prices", out.FAQID)
}

func TestFuzzyTypoFAQMatch(t *testing.T) {
	r := newTestResolver(12)

	out := r.Resolve("wat r ur pricess", []model.FAQ{pricesFAQ}, alwaysOpen)

	require.Equal(t, model.OutcomeMatchedFAQ, out.Kind)
	assert.Equal(t, "Prices start at $50", out.Answer)
}

func TestFAQThresholdBoundary(t *testing.T) {
	r := newTestResolver(12)
	// A question with no intent vocabulary, so only the edit-distance signal
	// can fire. Three substitutions over ten runes scores 0.70, four score 0.60.
	faqs := []model.FAQ{{
		ID:         "faq-boundary",
		QuestionEN: "abcdefghij",
		AnswerEN:   "boundary reply",
	}}

	above := r.Resolve("azcdezghzj", faqs, alwaysOpen)
	require.Equal(t, model.OutcomeMatchedFAQ, above.Kind)
	assert.Equal(t, "boundary reply", above.Answer)

	below := r.Resolve("azcdezghzz", faqs, alwaysOpen)
	assert.NotEqual(t, model.OutcomeMatchedFAQ, below.Kind)
	assert.Equal(t, model.OutcomeSupportPrompt, below.Kind)
}

func TestBilingualAnswerSelection(t *testing.T) {
	r := newTestResolver(12)

	// Arabic utterance, match reached through the price intent bridge whose
	// FAQ-side vocabulary is English. The answer must still be Arabic.
	out := r.Resolve("كم سعر الاشتراك", []model.FAQ{pricesFAQ}, alwaysOpen)

	require.Equal(t, model.OutcomeMatchedFAQ, out.Kind)
	assert.Equal(t, model.LangArabic, out.Language)
	assert.Equal(t, "تبدأ الأسعار من 50 دولارًا", out.Answer)
}

func TestFAQTieBreaksOnInputOrder(t *testing.T) {
	r := newTestResolver(12)
	// Both entries score 0.95 via containment; the first in the list wins.
	faqs := []model.FAQ{
		{ID: "first", QuestionEN: "opening times", AnswerEN: "first answer"},
		{ID: "second", QuestionEN: "opening times", AnswerEN: "second answer"},
	}

	out := r.Resolve("opening times", faqs, alwaysOpen)

	require.Equal(t, model.OutcomeMatchedFAQ, out.Kind)
	assert.Equal(t, "first", out.FAQID)
}

func TestDiscoveryKeywordBeatsTablePosition(t *testing.T) {
	r := newTestResolver(12)

	out := r.Resolve("camps", nil, alwaysOpen)

	require.Equal(t, model.OutcomeDiscovery, out.Kind)
	assert.Equal(t, "camps", out.Topic)
	assert.Contains(t, out.Answer, "(/services/camps)")
}

func TestDiscoverySharedKeywordFirstTopicWins(t *testing.T) {
	r := newTestResolver(12)

	// "program" is a keyword of both workshops and camps; workshops comes
	// first in the table.
	out := r.Resolve("program", nil, alwaysOpen)

	require.Equal(t, model.OutcomeDiscovery, out.Kind)
	assert.Equal(t, "workshops", out.Topic)
}

func TestDiscoveryArabicKeyword(t *testing.T) {
	r := newTestResolver(12)

	out := r.Resolve("عندكم مخيمات؟", nil, alwaysOpen)

	require.Equal(t, model.OutcomeDiscovery, out.Kind)
	assert.Equal(t, "camps", out.Topic)
	assert.Contains(t, out.Answer, "[المخيمات](/services/camps)")
}

func TestTimeGatedFallback(t *testing.T) {
	hours := model.WorkingHours{Start: 10, End: 22}

	open := newTestResolver(15).Resolve("xyzzyq", nil, hours)
	require.Equal(t, model.OutcomeSupportPrompt, open.Kind)
	assert.True(t, open.OfferHandoff)

	closed := newTestResolver(23).Resolve("xyzzyq", nil, hours)
	require.Equal(t, model.OutcomeOutOfHours, closed.Kind)
	assert.False(t, closed.OfferHandoff)
	assert.Contains(t, closed.Answer, "10:00 AM")
	assert.Contains(t, closed.Answer, "10:00 PM")
}

func TestSupportIntentBypassesTimeGating(t *testing.T) {
	r := newTestResolver(23)
	hours := model.WorkingHours{Start: 10, End: 22}

	out := r.Resolve("I want to talk to customer service", nil, hours)

	require.Equal(t, model.OutcomeSupportPrompt, out.Kind)
	assert.True(t, out.OfferHandoff)
}

func TestEmptyFAQListIsSafe(t *testing.T) {
	r := newTestResolver(12)

	out := r.Resolve("asdkjasd", []model.FAQ{}, alwaysOpen)

	assert.Equal(t, model.OutcomeSupportPrompt, out.Kind)
}

func TestAlwaysClosedWindowIsValid(t *testing.T) {
	r := newTestResolver(12)

	out := r.Resolve("asdkjasd", nil, model.WorkingHours{Start: 9, End: 9})

	assert.Equal(t, model.OutcomeOutOfHours, out.Kind)
}

func TestMixedLanguageUtteranceResolvesToArabic(t *testing.T) {
	r := newTestResolver(12)

	out := r.Resolve("hello كم السعر", []model.FAQ{pricesFAQ}, alwaysOpen)

	// One Arabic code point makes the whole message Arabic, including the
	// greeting path ("hello" is a whole token here).
	assert.Equal(t, model.LangArabic, out.Language)
}
