package main

import (
	"os"

	"github.com/revelaction/gibset/storage"
	"github.com/revelaction/gibset/storage/filesystem"
	"github.com/revelaction/gibset/storage/sqlite/zombiezen"
)

// Pool owns the SQLite pool opened by NewDatasetRepository, if any.
type Pool struct {
	closer interface{ Close() error }
}

func (p *Pool) Close() error {
	if p.closer != nil {
		return p.closer.Close()
	}
	return nil
}

// NewDatasetRepository returns a filesystem store for an existing directory and
// a SQLite store for anything else. The SQLite schema is created if needed.
func NewDatasetRepository(p *Pool, path string) (storage.DatasetRepository, error) {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return filesystem.NewDatasetStore(path)
	}

	pool, err := zombiezen.NewPool(path)
	if err != nil {
		return nil, err
	}
	p.closer = pool

	if err := zombiezen.CreateSchemas(pool, zombiezen.DatasetSchema); err != nil {
		return nil, err
	}

	return zombiezen.NewDatasetStore(pool), nil
}
