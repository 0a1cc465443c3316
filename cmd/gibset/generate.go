package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/gosuri/uiprogress"
	"go.uber.org/zap"

	"github.com/revelaction/gibset/dataset"
	"github.com/revelaction/gibset/gibberish"
	"github.com/revelaction/gibset/render"
	"github.com/revelaction/gibset/storage"
	"github.com/revelaction/gibset/vocab"
)

func generateCommand(opts GenerateOptions, path string, ui UI) error {
	logger := newLogger(ui.Err, opts.Verbose)
	defer logger.Sync()

	sentences, err := readCorpus(path, ui)
	if err != nil {
		return err
	}

	if _, err := dataset.AverageLength(sentences); err != nil {
		return fmt.Errorf("corpus %s: %w", path, err)
	}

	v := vocab.Extract(sentences)

	seed := opts.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	gen, err := gibberish.NewSeededGenerator(v, seed)
	if err != nil {
		return fmt.Errorf("corpus %s: %w", path, err)
	}

	b, err := dataset.NewBuilder(sentences, gen)
	if err != nil {
		return fmt.Errorf("corpus %s: %w", path, err)
	}

	logger.Debug("corpus loaded",
		zap.String("source", path),
		zap.Int("sentences", len(sentences)),
		zap.Int("average_length", b.AverageLength()),
		zap.Int("vocabulary", v.Len()),
		zap.Uint64("seed", seed))

	r, err := render.New(opts.Format, ui.Out)
	if err != nil {
		return err
	}

	var bar *uiprogress.Bar
	if opts.Progress {
		progress := uiprogress.New()
		progress.SetOut(ui.Err)
		bar = progress.AddBar(len(sentences))
		bar.AppendCompleted()
		bar.PrependElapsed()
		progress.Start()
		defer progress.Stop()
	}

	var records []dataset.Record
	if opts.DB != "" {
		records = make([]dataset.Record, 0, b.Len())
	}

	err = b.Each(func(i int, rec dataset.Record) error {
		if err := r.Render(rec); err != nil {
			return err
		}

		if opts.DB != "" {
			records = append(records, rec)
		}

		if bar != nil && rec.Label == dataset.Invalid {
			bar.Incr()
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := r.Flush(); err != nil {
		return err
	}

	if opts.DB == "" {
		return nil
	}

	run := storage.Run{
		Source:         path,
		Seed:           seed,
		AverageLength:  b.AverageLength(),
		VocabularySize: v.Len(),
	}

	id, err := storeDataset(opts.DB, run, records)
	if err != nil {
		return err
	}

	logger.Info("dataset stored", zap.String("db", opts.DB), zap.Int64("run", id), zap.Int("records", len(records)))
	return nil
}

func storeDataset(path string, run storage.Run, records []dataset.Record) (int64, error) {
	var p Pool
	defer p.Close()

	repo, err := NewDatasetRepository(&p, path)
	if err != nil {
		return 0, err
	}

	return repo.Write(run, records)
}
