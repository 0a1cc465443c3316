package vocab

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	v := Extract([]string{"The cat sat.", "Dogs bark loudly."})

	assert.Equal(t, Vocabulary{"bark", "cat", "dogs", "loudly", "sat", "the"}, v)
	assert.Equal(t, 6, v.Len())
}

func TestExtractDuplicatesCollapse(t *testing.T) {
	v := Extract([]string{"The cat.", "the CAT", "Cat the."})
	assert.Equal(t, Vocabulary{"cat", "the"}, v)
}

func TestTokens(t *testing.T) {
	tests := []struct {
		name     string
		sentence string
		want     []string
	}{
		{"trailing period", "The cat sat.", []string{"the", "cat", "sat"}},
		{"no trailing period", "The cat sat", []string{"the", "cat", "sat"}},
		{"last char kept", "Is it here?", []string{"is", "it", "here?"}},
		{"only one period stripped", "Wait..", []string{"wait."}},
		{"embedded periods kept", "Mr. Smith left.", []string{"mr.", "smith", "left"}},
		{"double spaces", "a  b   c", []string{"a", "b", "c"}},
		{"tabs trimmed", "a \tb", []string{"a", "b"}},
		{"only period", ".", nil},
		{"empty", "", nil},
		{"only spaces", "   ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokens(tt.sentence))
		})
	}
}

func TestExtractHasNoEmptyOrUppercaseWords(t *testing.T) {
	sentences := []string{
		"ÉCOLE Normale.",
		"  Leading and trailing  ",
		".",
		"",
		"MIXED case WORDS. Here.",
	}

	for _, word := range Extract(sentences) {
		assert.NotEmpty(t, word)
		assert.Equal(t, strings.TrimSpace(word), word)
		for _, r := range word {
			assert.False(t, unicode.IsUpper(r), "word %q has uppercase", word)
		}
	}
}

func TestContains(t *testing.T) {
	v := Extract([]string{"The cat sat."})

	assert.True(t, v.Contains("cat"))
	assert.False(t, v.Contains("sat."))
	assert.False(t, v.Contains("dog"))
	assert.False(t, Vocabulary(nil).Contains("cat"))
}
