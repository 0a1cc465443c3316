package file

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Stdin is the path that makes ReadSentences read from standard input.
const Stdin = "-"

// maxLineSize bounds a single sentence line.
const maxLineSize = 1024 * 1024

// ReadSentences reads a corpus file, one sentence per line.
func ReadSentences(path string) ([]string, error) {
	if path == Stdin {
		return ScanSentences(os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("IO error: %w", err)
	}
	defer f.Close()

	return ScanSentences(f)
}

// ScanSentences returns the lines of r in order, without line terminators.
func ScanSentences(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var sentences []string
	for scanner.Scan() {
		sentences = append(sentences, strings.TrimSuffix(scanner.Text(), "\r"))
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("IO error: %w", err)
	}

	return sentences, nil
}
