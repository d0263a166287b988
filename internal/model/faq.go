package model

// FAQ is a curated bilingual question/answer pair maintained in the admin panel.
// The resolver treats the full set as read-only and rechecks it on every query.
type FAQ struct {
	ID         string `json:"id"`
	QuestionEN string `json:"question_en"`
	QuestionAR string `json:"question_ar"`
	AnswerEN   string `json:"answer_en"`
	AnswerAR   string `json:"answer_ar"`
}

// Question returns the question text for the given language.
func (f FAQ) Question(lang Language) string {
	if lang == LangArabic {
		return f.QuestionAR
	}
	return f.QuestionEN
}

// Answer returns the answer text for the given language.
func (f FAQ) Answer(lang Language) string {
	if lang == LangArabic {
		return f.AnswerAR
	}
	return f.AnswerEN
}

// WorkingHours is the configured support window, compared against the local
// wall-clock hour. The window does not wrap past midnight: start == end means
// always closed, and an overnight window (e.g. 22-6) cannot be expressed.
type WorkingHours struct {
	Start int `json:"start" yaml:"start"` // 0..23
	End   int `json:"end" yaml:"end"`     // 0..24
}

// IsOpen reports whether the given hour falls inside the window.
func (w WorkingHours) IsOpen(hour int) bool {
	return w.Start <= hour && hour < w.End
}
