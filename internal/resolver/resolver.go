package resolver

import (
	"fmt"
	"strings"
	"time"

	"github.com/brightlabs/sciencebot-go/internal/model"
	"go.uber.org/zap"
)

// Matching thresholds. Substring containment outranks everything, the intent
// bridge sits just above the typo band, and anything at or below 0.65 is
// treated as no match.
const (
	substringScore       = 0.95
	intentBridgeScore    = 0.85
	faqMatchThreshold    = 0.65
	keywordSimThreshold  = 0.85
	greetingSimThreshold = 0.8
)

// Resolver maps one raw utterance to exactly one Outcome using layered
// heuristics in strict priority order: greeting, FAQ fuzzy match, discovery
// fallback, support intent, time-gated fallback. It is stateless and safe for
// concurrent use; everything is computed from the call's inputs plus the
// wall-clock hour.
type Resolver struct {
	logger *zap.Logger
	now    func() time.Time
}

// New creates a resolver. The clock defaults to time.Now.
func New(logger *zap.Logger) *Resolver {
	return &Resolver{
		logger: logger,
		now:    time.Now,
	}
}

// WithClock overrides the wall clock. Tests pin the hour with this; production
// callers never touch it.
func (r *Resolver) WithClock(now func() time.Time) *Resolver {
	r.now = now
	return r
}

// Resolve picks the reply for a single utterance. The caller guarantees the
// utterance is non-blank; faqs may be empty. Always returns exactly one
// outcome and never fails.
func (r *Resolver) Resolve(utterance string, faqs []model.FAQ, hours model.WorkingHours) model.Outcome {
	// Step 0: normalize and detect language per message.
	text := normalize(utterance)
	arabic := containsArabic(utterance)
	lang := model.LangEnglish
	if arabic {
		lang = model.LangArabic
	}

	// Step 1: greetings short-circuit everything else.
	if matchesGreeting(text) {
		r.logger.Debug("greeting matched", zap.String("utterance", text))
		return model.Outcome{
			Kind:     model.OutcomeGreeting,
			Answer:   greetingReply.text(arabic),
			Language: lang,
		}
	}

	// Step 2: best-scoring FAQ across the whole list. Strict greater-than
	// keeps the first entry on ties, so iteration order decides.
	var best *model.FAQ
	bestScore := 0.0
	for i := range faqs {
		score := scoreFAQ(text, faqs[i])
		if score > bestScore {
			bestScore = score
			best = &faqs[i]
		}
	}
	if best != nil && bestScore > faqMatchThreshold {
		r.logger.Debug("faq matched",
			zap.String("faqId", best.ID),
			zap.Float64("score", bestScore))
		return model.Outcome{
			Kind:     model.OutcomeMatchedFAQ,
			Answer:   best.Answer(lang),
			Language: lang,
			FAQID:    best.ID,
		}
	}

	// Step 3: site-knowledge discovery. First matching topic wins, table
	// order is priority order.
	for _, topic := range discoveryTopics {
		if matchesKeywords(text, topic.KeywordsEN) || matchesKeywords(text, topic.KeywordsAR) {
			r.logger.Debug("discovery topic matched", zap.String("topic", topic.Key))
			answer := topic.AnswerEN
			if arabic {
				answer = topic.AnswerAR
			}
			return model.Outcome{
				Kind:     model.OutcomeDiscovery,
				Answer:   answer,
				Language: lang,
				Topic:    topic.Key,
			}
		}
	}

	// Step 4: an explicit ask for a human bypasses time gating.
	for _, intent := range intents {
		if intent.Key != intentSupport {
			continue
		}
		if matchesKeywords(text, intent.KeywordsEN) || matchesKeywords(text, intent.KeywordsAR) {
			return model.Outcome{
				Kind:         model.OutcomeSupportPrompt,
				Answer:       supportReply.text(arabic),
				Language:     lang,
				OfferHandoff: true,
			}
		}
	}

	// Step 5: nothing recognized. Offer a human during working hours,
	// apologize with the window otherwise.
	hour := r.now().Hour()
	if hours.IsOpen(hour) {
		return model.Outcome{
			Kind:         model.OutcomeSupportPrompt,
			Answer:       fallbackSupportReply.text(arabic),
			Language:     lang,
			OfferHandoff: true,
		}
	}
	return model.Outcome{
		Kind:     model.OutcomeOutOfHours,
		Answer:   fmt.Sprintf(outOfHoursReply.text(arabic), formatHour12(hours.Start), formatHour12(hours.End)),
		Language: lang,
	}
}

// scoreFAQ is the maximum of three signals: bidirectional substring
// containment on either question field (0.95), normalized edit-distance
// similarity against both question fields, and the intent bridge (0.85) when
// an intent's keywords occur both in the utterance and in the FAQ's own text.
func scoreFAQ(text string, faq model.FAQ) float64 {
	score := 0.0

	qEN := strings.ToLower(faq.QuestionEN)
	qAR := strings.ToLower(faq.QuestionAR)

	for _, q := range []string{qEN, qAR} {
		if q == "" {
			continue
		}
		if strings.Contains(text, q) || strings.Contains(q, text) {
			score = max(score, substringScore)
		}
		score = max(score, similarity(text, q))
	}

	if score >= intentBridgeScore {
		return score
	}

	blob := strings.ToLower(faq.QuestionEN + " " + faq.AnswerEN + " " + faq.QuestionAR + " " + faq.AnswerAR)
	for _, intent := range intents {
		if !matchesKeywords(text, intent.KeywordsEN) && !matchesKeywords(text, intent.KeywordsAR) {
			continue
		}
		if keywordsAppearIn(blob, intent.KeywordsEN) || keywordsAppearIn(blob, intent.KeywordsAR) {
			score = max(score, intentBridgeScore)
			break
		}
	}

	return score
}

// matchesGreeting tests the three greeting rules: exact equality, whole-token
// match, or whole-utterance similarity above 0.8. Plain substring containment
// is deliberately excluded ("this" contains "hi").
func matchesGreeting(text string) bool {
	tokens := strings.Fields(text)
	for _, list := range [][]string{greetingKeywordsEN, greetingKeywordsAR} {
		for _, kw := range list {
			if text == kw {
				return true
			}
			for _, tok := range tokens {
				if tok == kw {
					return true
				}
			}
			if similarity(text, kw) > greetingSimThreshold {
				return true
			}
		}
	}
	return false
}

// matchesKeywords reports whether any keyword occurs in the text, literally
// or by whole-utterance similarity above 0.85.
func matchesKeywords(text string, keywords []string) bool {
	for _, kw := range keywords {
		if fuzzyContains(text, kw, keywordSimThreshold) {
			return true
		}
	}
	return false
}

// keywordsAppearIn checks for literal occurrence only. The FAQ side of the
// intent bridge does not get fuzziness.
func keywordsAppearIn(blob string, keywords []string) bool {
	for _, kw := range keywords {
		if kw != "" && strings.Contains(blob, kw) {
			return true
		}
	}
	return false
}

// formatHour12 renders an hour for display ("10:00 AM", "10:00 PM"). Hour 24
// wraps to midnight. Display only, never used in the open/closed decision.
func formatHour12(hour int) string {
	h := hour % 24
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	display := h % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:00 %s", display, suffix)
}
