package filesystem

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/revelaction/gibset/dataset"
	"github.com/revelaction/gibset/render"
	"github.com/revelaction/gibset/storage"
)

const (
	metaExt = ".json"
	dataExt = ".csv"
)

// DatasetStore keeps each run as two files in a directory: <id>.json with the
// run metadata and <id>.csv with the records.
type DatasetStore struct {
	root string
}

var _ storage.DatasetRepository = (*DatasetStore)(nil)

// NewDatasetStore creates a filesystem dataset store. root must be an
// existing directory.
func NewDatasetStore(root string) (*DatasetStore, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", root)
	}

	return &DatasetStore{root: root}, nil
}

func (h *DatasetStore) ids() ([]int64, error) {
	files, err := os.ReadDir(h.root)
	if err != nil {
		return nil, err
	}

	var ids []int64
	for _, file := range files {
		if filepath.Ext(file.Name()) != metaExt {
			continue
		}

		id, err := strconv.ParseInt(strings.TrimSuffix(file.Name(), metaExt), 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (h *DatasetStore) path(id int64, ext string) string {
	return filepath.Join(h.root, strconv.FormatInt(id, 10)+ext)
}

// Write stores records first so that a run is only listed once complete.
func (h *DatasetStore) Write(run storage.Run, records []dataset.Record) (int64, error) {
	ids, err := h.ids()
	if err != nil {
		return 0, err
	}

	run.Id = 1
	if len(ids) > 0 {
		run.Id = ids[len(ids)-1] + 1
	}
	run.NumRecords = len(records)
	if run.Created.IsZero() {
		run.Created = time.Now()
	}

	f, err := os.Create(h.path(run.Id, dataExt))
	if err != nil {
		return 0, err
	}
	defer f.Close()

	r := render.NewCSVRenderer(f)
	for _, rec := range records {
		if err := r.Render(rec); err != nil {
			return 0, err
		}
	}
	if err := r.Flush(); err != nil {
		return 0, err
	}

	meta, err := json.MarshalIndent(run, "", "\t")
	if err != nil {
		return 0, err
	}

	if err := os.WriteFile(h.path(run.Id, metaExt), meta, 0644); err != nil {
		return 0, err
	}

	return run.Id, nil
}

func (h *DatasetStore) Runs() ([]storage.Run, error) {
	ids, err := h.ids()
	if err != nil {
		return nil, err
	}

	runs := make([]storage.Run, 0, len(ids))
	for _, id := range ids {
		data, err := os.ReadFile(h.path(id, metaExt))
		if err != nil {
			return nil, fmt.Errorf("IO error: %w", err)
		}

		var run storage.Run
		if err := json.Unmarshal(data, &run); err != nil {
			return nil, fmt.Errorf("JSON decoding error: %w", err)
		}

		runs = append(runs, run)
	}

	return runs, nil
}

func (h *DatasetStore) Records(runId int64) ([]dataset.Record, error) {
	f, err := os.Open(h.path(runId, dataExt))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("run not found: %d", runId)
		}
		return nil, err
	}
	defer f.Close()

	var records []dataset.Record
	err = render.Scan(f, func(_ int, rec dataset.Record) error {
		records = append(records, rec)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}
