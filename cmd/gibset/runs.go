package main

import (
	"fmt"

	"github.com/revelaction/gibset/render"
	"github.com/revelaction/gibset/storage"
)

func runsCommand(opts RunsOptions, ui UI) error {
	var p Pool
	defer p.Close()

	repo, err := NewDatasetRepository(&p, opts.DB)
	if err != nil {
		return err
	}

	if opts.Run != nil {
		return printRun(repo, *opts.Run, ui)
	}

	return listRuns(repo, ui)
}

func listRuns(repo storage.DatasetReader, ui UI) error {
	runs, err := repo.Runs()
	if err != nil {
		return err
	}

	for _, run := range runs {
		fmt.Fprintf(ui.Out, "📖 %d %s seed=%d avg=%d vocab=%d records=%d %s\n",
			run.Id, run.Source, run.Seed, run.AverageLength, run.VocabularySize, run.NumRecords,
			run.Created.Format("2006-01-02 15:04:05"))
	}

	return nil
}

func printRun(repo storage.DatasetReader, id int64, ui UI) error {
	records, err := repo.Records(id)
	if err != nil {
		return err
	}

	r := render.NewCSVRenderer(ui.Out)
	for _, rec := range records {
		if err := r.Render(rec); err != nil {
			return err
		}
	}

	return r.Flush()
}
