package main

import (
	"github.com/revelaction/gibset/file"
)

// readCorpus reads the sentences of path, or of ui.In when path is "-".
func readCorpus(path string, ui UI) ([]string, error) {
	if path == file.Stdin {
		return file.ScanSentences(ui.In)
	}

	return file.ReadSentences(path)
}
