package resolver

import "strings"

// normalize lowercases and trims an utterance. Arabic has no case, so
// lowering is a no-op there and harmless.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// containsArabic reports whether any code point falls in the Arabic block
// (U+0600–U+06FF). One Arabic character anywhere makes the whole utterance
// Arabic; mixed-language messages resolve to Arabic on purpose.
func containsArabic(s string) bool {
	for _, r := range s {
		if r >= 0x0600 && r <= 0x06FF {
			return true
		}
	}
	return false
}

// levenshtein computes the classic single-character insert/delete/substitute
// edit distance over runes, all costs 1. Two-row DP table.
func levenshtein(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}

// similarity is the normalized edit-distance score in [0, 1]:
// (max(len) - levenshtein) / max(len). Identical strings score 1.
func similarity(a, b string) float64 {
	la := len([]rune(a))
	lb := len([]rune(b))
	longest := max(la, lb)
	if longest == 0 {
		return 1
	}
	return float64(longest-levenshtein(a, b)) / float64(longest)
}

// fuzzyContains reports whether the keyword occurs literally inside the text,
// or the whole text is more than simThreshold-similar to the keyword.
func fuzzyContains(text, keyword string, simThreshold float64) bool {
	if keyword == "" {
		return false
	}
	if strings.Contains(text, keyword) {
		return true
	}
	return similarity(text, keyword) > simThreshold
}
