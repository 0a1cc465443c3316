package main

import (
	"fmt"
	"io"
	"os"

	"github.com/revelaction/gibset/dataset"
	"github.com/revelaction/gibset/file"
	"github.com/revelaction/gibset/render"
)

type checkSummary struct {
	Valid   int
	Invalid int
}

func checkCommand(path string, ui UI) error {
	var r io.Reader = ui.In
	if path != file.Stdin {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("IO error: %w", err)
		}
		defer f.Close()
		r = f
	}

	sum, err := checkDataset(r)
	if err != nil {
		return fmt.Errorf("dataset %s: %w", path, err)
	}

	fmt.Fprintf(ui.Out, "Num records %d, valid %d, invalid %d\n", sum.Valid+sum.Invalid, sum.Valid, sum.Invalid)
	return nil
}

// checkDataset verifies that the records of r alternate between a valid
// sentence and its gibberish counterpart.
func checkDataset(r io.Reader) (checkSummary, error) {
	var sum checkSummary

	err := render.Scan(r, func(lineNo int, rec dataset.Record) error {
		want := dataset.Valid
		if lineNo%2 == 0 {
			want = dataset.Invalid
		}

		if rec.Label != want {
			return fmt.Errorf("line %d: label %d, want %d", lineNo, rec.Label, want)
		}

		if rec.Label == dataset.Valid {
			sum.Valid++
		} else {
			sum.Invalid++
		}
		return nil
	})
	if err != nil {
		return sum, err
	}

	if sum.Valid != sum.Invalid {
		return sum, fmt.Errorf("sentence %d has no gibberish counterpart", sum.Valid)
	}

	return sum, nil
}
