package export

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Run is one row from the export_runs table.
type Run struct {
	ID         int64
	Language   string
	DataType   string
	OutputType string
	OutputPath string
	Status     string
	Error      *string
	Entries    int
	StartedAt  int64
	FinishedAt int64
}

// Run statuses.
const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)

// RunDB manages the export_runs SQLite table.
type RunDB struct {
	db *sql.DB
}

// OpenRunDB opens (or creates) the SQLite database at path and ensures
// the export_runs table exists.
func OpenRunDB(path string) (*RunDB, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open run db: %w", err)
	}

	const ddl = `CREATE TABLE IF NOT EXISTS export_runs (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		language     TEXT NOT NULL,
		data_type    TEXT NOT NULL,
		output_type  TEXT NOT NULL,
		output_path  TEXT NOT NULL DEFAULT '',
		status       TEXT NOT NULL,
		error        TEXT,
		entries      INTEGER NOT NULL DEFAULT 0,
		started_at   INTEGER NOT NULL,
		finished_at  INTEGER NOT NULL
	)`
	if _, err := db.Exec(ddl); err != nil {
		db.Close()
		return nil, fmt.Errorf("create export_runs table: %w", err)
	}

	return &RunDB{db: db}, nil
}

// Close closes the SQLite connection.
func (r *RunDB) Close() error {
	return r.db.Close()
}

// RecordRun inserts one finished job into the ledger.
func (r *RunDB) RecordRun(run Run) error {
	const q = `INSERT INTO export_runs
		(language, data_type, output_type, output_path, status, error, entries, started_at, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.Exec(q, run.Language, run.DataType, run.OutputType, run.OutputPath,
		run.Status, run.Error, run.Entries, run.StartedAt, run.FinishedAt)
	if err != nil {
		return fmt.Errorf("record run %s %s: %w", run.Language, run.DataType, err)
	}
	return nil
}

// ListRuns returns the most recent runs, newest first.
func (r *RunDB) ListRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.Query(`SELECT id, language, data_type, output_type, output_path,
		status, error, entries, started_at, finished_at
		FROM export_runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.Language, &run.DataType, &run.OutputType,
			&run.OutputPath, &run.Status, &run.Error, &run.Entries,
			&run.StartedAt, &run.FinishedAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

func now() int64 { return time.Now().Unix() }
