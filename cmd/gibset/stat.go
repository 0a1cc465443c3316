package main

import (
	"fmt"

	"github.com/revelaction/gibset/stat"
)

func statCommand(path string, ui UI) error {
	sentences, err := readCorpus(path, ui)
	if err != nil {
		return err
	}

	hdl := stat.NewHandler()
	if err := hdl.Aggregate(sentences); err != nil {
		return fmt.Errorf("corpus %s: %w", path, err)
	}

	stats := hdl.Get()
	fmt.Fprintf(ui.Out, "Num sentences %d, num chars %d, average length %d\n", stats.NumSentences, stats.NumChars, stats.AverageLength)
	fmt.Fprintf(ui.Out, "Num tokens %d, vocabulary size %d\n", stats.NumTokens, stats.VocabularySize)

	return nil
}
