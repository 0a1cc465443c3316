package stat

import (
	"unicode/utf8"

	"github.com/revelaction/gibset/dataset"
	"github.com/revelaction/gibset/vocab"
)

type Handler struct {
	stats Stats
}

type Stats struct {
	NumSentences   int
	NumChars       int
	NumTokens      int
	AverageLength  int
	VocabularySize int

	// Number of sentences per character length
	LengthDis map[int]int
}

func (h *Handler) Get() Stats {
	return h.stats
}

func NewHandler() *Handler {
	stats := Stats{LengthDis: map[int]int{}}
	return &Handler{
		stats: stats,
	}
}

func (h *Handler) Aggregate(sentences []string) error {
	avg, err := dataset.AverageLength(sentences)
	if err != nil {
		return err
	}

	h.stats.NumSentences = len(sentences)
	h.stats.AverageLength = avg
	for _, s := range sentences {
		n := utf8.RuneCountInString(s)
		h.stats.NumChars += n
		h.stats.NumTokens += len(vocab.Tokens(s))
		h.stats.LengthDis[n]++
	}

	h.stats.VocabularySize = vocab.Extract(sentences).Len()
	return nil
}
