package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// MergeRun is one promoted output file recorded for the history command.
type MergeRun struct {
	ID          int64
	Directory   string
	OutputPath  string
	FilesMerged int
	RowsWritten int
	CreatedAt   time.Time
}

type SQLiteStore struct {
	db *sql.DB
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.ensureSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) ensureSchema() error {
	const schema = `
CREATE TABLE IF NOT EXISTS merge_runs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	directory TEXT NOT NULL,
	output_path TEXT NOT NULL,
	files_merged INTEGER NOT NULL CHECK(files_merged >= 0),
	rows_written INTEGER NOT NULL CHECK(rows_written >= 0),
	created_at TEXT NOT NULL
);
`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// InsertRun records one promoted output file.
func (s *SQLiteStore) InsertRun(run MergeRun) error {
	const insertStmt = `
INSERT INTO merge_runs (
	directory,
	output_path,
	files_merged,
	rows_written,
	created_at
) VALUES (?, ?, ?, ?, ?);`

	_, err := s.db.Exec(
		insertStmt,
		run.Directory,
		run.OutputPath,
		run.FilesMerged,
		run.RowsWritten,
		run.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("insert merge run: %w", err)
	}
	return nil
}

// ListRuns returns recorded runs, newest first.
func (s *SQLiteStore) ListRuns() ([]MergeRun, error) {
	const query = `
SELECT
	id,
	directory,
	output_path,
	files_merged,
	rows_written,
	created_at
FROM merge_runs
ORDER BY created_at DESC, id DESC;
`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("query merge runs: %w", err)
	}
	defer rows.Close()

	runs := make([]MergeRun, 0, 32)
	for rows.Next() {
		var (
			run        MergeRun
			createdRaw string
		)
		if err := rows.Scan(
			&run.ID,
			&run.Directory,
			&run.OutputPath,
			&run.FilesMerged,
			&run.RowsWritten,
			&createdRaw,
		); err != nil {
			return nil, fmt.Errorf("scan merge run: %w", err)
		}

		run.CreatedAt, err = time.Parse(time.RFC3339, createdRaw)
		if err != nil {
			return nil, fmt.Errorf("parse created_at %q: %w", createdRaw, err)
		}

		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate merge runs: %w", err)
	}

	return runs, nil
}
