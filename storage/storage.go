package storage

import (
	"time"

	"github.com/revelaction/gibset/dataset"
)

// Run describes one generated dataset.
type Run struct {
	Id int64

	// Source is the corpus path the dataset was generated from
	Source string

	Seed           uint64
	AverageLength  int
	VocabularySize int
	NumRecords     int
	Created        time.Time
}

// DatasetReader defines read operations for dataset storage
type DatasetReader interface {
	// Runs returns the metadata of all stored runs, oldest first.
	Runs() ([]Run, error)

	// Records returns the records of a run in generation order.
	Records(runId int64) ([]dataset.Record, error)
}

// DatasetWriter defines write operations for dataset storage
type DatasetWriter interface {
	// Write persists a run and its records, returning the new run id.
	Write(run Run, records []dataset.Record) (int64, error)
}

// DatasetRepository combines read and write operations
type DatasetRepository interface {
	DatasetReader
	DatasetWriter
}
