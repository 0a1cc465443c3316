package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/revelaction/gibset/dataset"
	"github.com/revelaction/gibset/file"
	"github.com/revelaction/gibset/gibberish"
	"github.com/revelaction/gibset/query"
	"github.com/revelaction/gibset/vocab"
)

func tryCommand(opts TryOptions, path string, ui UI) error {
	if path == file.Stdin {
		return fmt.Errorf("try reads the prompt from stdin, the corpus must be a file")
	}

	sentences, err := file.ReadSentences(path)
	if err != nil {
		return err
	}

	avg, err := dataset.AverageLength(sentences)
	if err != nil {
		return fmt.Errorf("corpus %s: %w", path, err)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	v := vocab.Extract(sentences)
	gen, err := gibberish.NewSeededGenerator(v, seed)
	if err != nil {
		return fmt.Errorf("corpus %s: %w", path, err)
	}

	return query.NewHandler(v, gen, avg, ui.Out).Run()
}
