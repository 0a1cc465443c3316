package zombiezen

import (
	"context"
	"fmt"
	"time"

	"github.com/revelaction/gibset/dataset"
	"github.com/revelaction/gibset/storage"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

type DatasetStore struct {
	pool *sqlitex.Pool
}

var _ storage.DatasetRepository = (*DatasetStore)(nil)

func NewDatasetStore(pool *sqlitex.Pool) *DatasetStore {
	return &DatasetStore{pool: pool}
}

// Write inserts the run and all its records in a single transaction.
func (h *DatasetStore) Write(run storage.Run, records []dataset.Record) (id int64, err error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return 0, err
	}
	defer h.pool.Put(conn)

	defer sqlitex.Save(conn)(&err)

	created := run.Created
	if created.IsZero() {
		created = time.Now()
	}

	err = sqlitex.Execute(conn,
		"INSERT INTO runs (source, seed, average_length, vocabulary_size, created) VALUES (?, ?, ?, ?, ?)",
		&sqlitex.ExecOptions{
			// sqlite integers are signed, the seed keeps its bits
			Args: []any{run.Source, int64(run.Seed), run.AverageLength, run.VocabularySize, created.Unix()},
		})
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}

	id = conn.LastInsertRowID()

	for i, rec := range records {
		err = sqlitex.Execute(conn,
			"INSERT INTO records (run_id, position, text, label) VALUES (?, ?, ?, ?)",
			&sqlitex.ExecOptions{
				Args: []any{id, i, rec.Text, int(rec.Label)},
			})
		if err != nil {
			return 0, fmt.Errorf("insert record %d: %w", i, err)
		}
	}

	return id, nil
}

func (h *DatasetStore) Runs() ([]storage.Run, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	query := `SELECT r.id, r.source, r.seed, r.average_length, r.vocabulary_size, r.created,
		(SELECT COUNT(*) FROM records WHERE run_id = r.id)
		FROM runs r ORDER BY r.id`

	var runs []storage.Run
	err = sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			runs = append(runs, storage.Run{
				Id:             stmt.ColumnInt64(0),
				Source:         stmt.ColumnText(1),
				Seed:           uint64(stmt.ColumnInt64(2)),
				AverageLength:  stmt.ColumnInt(3),
				VocabularySize: stmt.ColumnInt(4),
				Created:        time.Unix(stmt.ColumnInt64(5), 0),
				NumRecords:     stmt.ColumnInt(6),
			})
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	return runs, nil
}

func (h *DatasetStore) Records(runId int64) ([]dataset.Record, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	found := false
	err = sqlitex.Execute(conn, "SELECT 1 FROM runs WHERE id = ?", &sqlitex.ExecOptions{
		Args: []any{runId},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			found = true
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("run not found: %d", runId)
	}

	var records []dataset.Record
	err = sqlitex.Execute(conn, "SELECT text, label FROM records WHERE run_id = ? ORDER BY position", &sqlitex.ExecOptions{
		Args: []any{runId},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			records = append(records, dataset.Record{
				Text:  stmt.ColumnText(0),
				Label: dataset.Label(stmt.ColumnInt(1)),
			})
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}
