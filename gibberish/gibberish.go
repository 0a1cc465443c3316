// Package gibberish builds random word sequences of a target length.
package gibberish

import (
	"errors"
	"math/rand/v2"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/revelaction/gibset/vocab"
)

var ErrEmptyVocabulary = errors.New("gibberish: empty vocabulary")

// Rand is the random source used to pick words. *rand.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

type Generator struct {
	vocab vocab.Vocabulary
	rng   Rand
}

// NewGenerator returns a Generator drawing words from v with rng.
func NewGenerator(v vocab.Vocabulary, rng Rand) (*Generator, error) {
	if len(v) == 0 {
		return nil, ErrEmptyVocabulary
	}

	return &Generator{vocab: v, rng: rng}, nil
}

// NewSeededGenerator returns a Generator whose output only depends on v and
// seed.
func NewSeededGenerator(v vocab.Vocabulary, seed uint64) (*Generator, error) {
	return NewGenerator(v, rand.New(rand.NewPCG(seed, seed)))
}

// Generate returns a capitalized sentence of random words. Words are added
// while the accumulated length stays strictly below target; the word that
// would reach it is dropped. The first word is always present.
func (g *Generator) Generate(target int) string {
	first := g.word()
	words := []string{Capitalize(first)}
	length := utf8.RuneCountInString(first)

	word := g.word()
	for length+utf8.RuneCountInString(word) < target {
		words = append(words, word)
		length += utf8.RuneCountInString(word)
		word = g.word()
	}

	return strings.Join(words, " ")
}

func (g *Generator) word() string {
	return g.vocab[g.rng.IntN(len(g.vocab))]
}

// Capitalize uppercases the first character of s and leaves the rest as is.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}

	return string(unicode.ToUpper(r)) + s[size:]
}
