package main

import (
	"fmt"

	"github.com/revelaction/gibset/vocab"
)

func vocabCommand(path string, ui UI) error {
	sentences, err := readCorpus(path, ui)
	if err != nil {
		return err
	}

	for _, word := range vocab.Extract(sentences) {
		fmt.Fprintln(ui.Out, word)
	}

	return nil
}
