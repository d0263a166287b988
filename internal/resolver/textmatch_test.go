package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"prices", "pricess", 1},
		{"مرحبا", "مرحبا", 0},
		{"مرحبا", "مرحب", 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, levenshtein(tt.a, tt.b), "levenshtein(%q, %q)", tt.a, tt.b)
	}
}

func TestSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, similarity("", ""))
	assert.Equal(t, 1.0, similarity("camps", "camps"))
	assert.Equal(t, 0.0, similarity("", "abcd"))
	// Three substitutions over ten runes.
	assert.InDelta(t, 0.7, similarity("abcdefghij", "azcdezghzj"), 1e-9)
	// Four substitutions over ten runes.
	assert.InDelta(t, 0.6, similarity("abcdefghij", "azcdezghzz"), 1e-9)
}

func TestContainsArabic(t *testing.T) {
	assert.False(t, containsArabic("hello there"))
	assert.False(t, containsArabic(""))
	assert.True(t, containsArabic("مرحبا"))
	assert.True(t, containsArabic("hello مرحبا"))
	assert.True(t, containsArabic("price في"))
}

func TestFuzzyContains(t *testing.T) {
	assert.True(t, fuzzyContains("what are your camp dates", "camp", 0.85))
	assert.True(t, fuzzyContains("campss", "camps", 0.83))
	assert.False(t, fuzzyContains("unrelated text", "camps", 0.85))
	assert.False(t, fuzzyContains("anything", "", 0.85))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "hello world", normalize("  Hello World  "))
	assert.Equal(t, "مرحبا", normalize(" مرحبا "))
}
