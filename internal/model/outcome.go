package model

// Language of a single utterance, detected per message rather than per session.
// Switching languages mid-conversation is treated as intentional.
type Language string

const (
	LangEnglish Language = "en"
	LangArabic  Language = "ar"
)

// OutcomeKind tags the resolver's result.
type OutcomeKind string

const (
	// OutcomeMatchedFAQ carries a specific FAQ's answer.
	OutcomeMatchedFAQ OutcomeKind = "matched_faq"
	// OutcomeDiscovery carries a canned navigational answer from the
	// site-knowledge table, with embedded [text](path) links.
	OutcomeDiscovery OutcomeKind = "discovery"
	// OutcomeGreeting carries the fixed greeting reply.
	OutcomeGreeting OutcomeKind = "greeting"
	// OutcomeSupportPrompt invites handoff to a human; OfferHandoff is set.
	OutcomeSupportPrompt OutcomeKind = "support_prompt"
	// OutcomeOutOfHours apologizes and states the working-hours window.
	OutcomeOutOfHours OutcomeKind = "out_of_hours"
)

// Outcome is the resolver's single return value: exactly one kind, the reply
// text in the detected language, and whether a talk-to-support affordance
// should be shown.
type Outcome struct {
	Kind         OutcomeKind `json:"kind"`
	Answer       string      `json:"answer"`
	Language     Language    `json:"language"`
	OfferHandoff bool        `json:"offerHandoff"`
	// FAQID identifies the matched entry when Kind is OutcomeMatchedFAQ.
	FAQID string `json:"faqId,omitempty"`
	// Topic identifies the discovery topic when Kind is OutcomeDiscovery.
	Topic string `json:"topic,omitempty"`
}
