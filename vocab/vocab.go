// Package vocab derives the word set used to build gibberish sentences.
package vocab

import (
	"sort"
	"strings"
)

// Vocabulary is the sorted set of distinct lowercase words of a corpus.
// It is built once and never modified afterwards.
type Vocabulary []string

// Extract returns the vocabulary of the given sentences.
func Extract(sentences []string) Vocabulary {
	set := map[string]struct{}{}
	for _, s := range sentences {
		for _, word := range Tokens(s) {
			set[word] = struct{}{}
		}
	}

	v := make(Vocabulary, 0, len(set))
	for word := range set {
		v = append(v, word)
	}

	sort.Strings(v)
	return v
}

// Tokens splits a sentence into lowercase words. One trailing period is
// dropped; periods inside the sentence stay part of their token.
func Tokens(sentence string) []string {
	sentence = strings.TrimSuffix(sentence, ".")
	if sentence == "" {
		return nil
	}

	var words []string
	for _, tok := range strings.Split(sentence, " ") {
		word := strings.TrimSpace(strings.ToLower(tok))
		if word == "" {
			continue
		}
		words = append(words, word)
	}

	return words
}

func (v Vocabulary) Len() int {
	return len(v)
}

// Contains reports whether word is in the vocabulary.
func (v Vocabulary) Contains(word string) bool {
	i := sort.SearchStrings(v, word)
	return i < len(v) && v[i] == word
}
