// Package dataset pairs corpus sentences with generated gibberish into
// labeled records.
package dataset

import (
	"errors"
	"unicode/utf8"
)

var ErrNoSentences = errors.New("dataset: corpus has no sentences")

// Label is the classification target of a record.
type Label int

const (
	Invalid Label = 0
	Valid   Label = 1
)

// Record is one line of the dataset.
type Record struct {
	Text  string `json:"text"`
	Label Label  `json:"label"`
}

// Generator produces a gibberish sentence close to a target length.
type Generator interface {
	Generate(target int) string
}

// AverageLength returns the integer mean character count of sentences.
func AverageLength(sentences []string) (int, error) {
	if len(sentences) == 0 {
		return 0, ErrNoSentences
	}

	total := 0
	for _, s := range sentences {
		total += utf8.RuneCountInString(s)
	}

	return total / len(sentences), nil
}

type Builder struct {
	sentences []string
	gen       Generator
	avgLength int
}

// NewBuilder computes the average length of sentences once; every gibberish
// record is generated with it as target.
func NewBuilder(sentences []string, gen Generator) (*Builder, error) {
	avg, err := AverageLength(sentences)
	if err != nil {
		return nil, err
	}

	return &Builder{
		sentences: sentences,
		gen:       gen,
		avgLength: avg,
	}, nil
}

func (b *Builder) AverageLength() int {
	return b.avgLength
}

// Len is the number of records Each emits.
func (b *Builder) Len() int {
	return 2 * len(b.sentences)
}

// Each calls fn for every record, in order: the sentence at index i labeled
// Valid, then a new gibberish sentence labeled Invalid. It stops at the first
// error returned by fn.
func (b *Builder) Each(fn func(i int, r Record) error) error {
	for i, s := range b.sentences {
		if err := fn(i, Record{Text: s, Label: Valid}); err != nil {
			return err
		}

		if err := fn(i, Record{Text: b.gen.Generate(b.avgLength), Label: Invalid}); err != nil {
			return err
		}
	}

	return nil
}

// Records returns all records Each would emit.
func (b *Builder) Records() []Record {
	records := make([]Record, 0, b.Len())
	_ = b.Each(func(_ int, r Record) error {
		records = append(records, r)
		return nil
	})

	return records
}
