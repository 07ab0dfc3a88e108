// Package history keeps every measured series in a SQLite database so that
// a run can be compared with the one before it.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// ErrClosed is returned by operations on a closed Store.
var ErrClosed = errors.New("history: store closed")

const schema = `
CREATE TABLE IF NOT EXISTS measurements (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id      TEXT    NOT NULL,
	recorded_at INTEGER NOT NULL,
	case_name   TEXT    NOT NULL,
	series      TEXT    NOT NULL,
	mean_ns     INTEGER NOT NULL,
	median_ns   INTEGER NOT NULL,
	p95_ns      INTEGER NOT NULL,
	peak_memory INTEGER NOT NULL,
	runs        INTEGER NOT NULL,
	UNIQUE (run_id, case_name, series)
);
CREATE INDEX IF NOT EXISTS idx_measurements_series
	ON measurements (case_name, series, recorded_at);
`

// Measurement is one stored series of one case.
type Measurement struct {
	Case       string        `yaml:"case" json:"case"`
	Series     string        `yaml:"series" json:"series"`
	Mean       time.Duration `yaml:"mean" json:"mean"`
	Median     time.Duration `yaml:"median" json:"median"`
	P95        time.Duration `yaml:"p95" json:"p95"`
	PeakMemory uint64        `yaml:"peak_memory" json:"peak_memory"`
	Runs       int           `yaml:"runs" json:"runs"`
}

// Store is a SQLite-backed measurement log.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at path, creating parent directories.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("history: mkdir %s: %w", dir, err)
		}
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("history: open %s: %w", path, err)
	}
	// SQLite serialises writers.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	if s.db == nil {
		return ErrClosed
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Record stores ms under runID. Re-recording a series of the same run
// replaces it.
func (s *Store) Record(ctx context.Context, runID string, at time.Time, ms ...Measurement) error {
	if s.db == nil {
		return ErrClosed
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("history: begin: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
INSERT OR REPLACE INTO measurements
	(run_id, recorded_at, case_name, series, mean_ns, median_ns, p95_ns, peak_memory, runs)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("history: prepare: %w", err)
	}
	defer stmt.Close()

	for _, m := range ms {
		if _, err := stmt.ExecContext(ctx, runID, at.UnixNano(), m.Case, m.Series,
			int64(m.Mean), int64(m.Median), int64(m.P95), int64(m.PeakMemory), m.Runs); err != nil {
			return fmt.Errorf("history: insert %s/%s: %w", m.Case, m.Series, err)
		}
	}

	return tx.Commit()
}

// Previous returns the most recent measurement of caseName/series recorded
// by a run other than runID. ok is false when there is none.
func (s *Store) Previous(ctx context.Context, runID, caseName, series string) (m Measurement, prevRun string, ok bool, err error) {
	if s.db == nil {
		return m, "", false, ErrClosed
	}
	row := s.db.QueryRowContext(ctx, `
SELECT run_id, mean_ns, median_ns, p95_ns, peak_memory, runs
FROM measurements
WHERE case_name = ? AND series = ? AND run_id <> ?
ORDER BY recorded_at DESC, id DESC
LIMIT 1`, caseName, series, runID)

	var mean, median, p95, peak int64
	err = row.Scan(&prevRun, &mean, &median, &p95, &peak, &m.Runs)
	if errors.Is(err, sql.ErrNoRows) {
		return Measurement{}, "", false, nil
	}
	if err != nil {
		return Measurement{}, "", false, fmt.Errorf("history: previous %s/%s: %w", caseName, series, err)
	}
	m.Case, m.Series = caseName, series
	m.Mean, m.Median, m.P95 = time.Duration(mean), time.Duration(median), time.Duration(p95)
	m.PeakMemory = uint64(peak)

	return m, prevRun, true, nil
}

// Runs lists run IDs, newest first.
func (s *Store) Runs(ctx context.Context) ([]string, error) {
	if s.db == nil {
		return nil, ErrClosed
	}
	rows, err := s.db.QueryContext(ctx, `
SELECT run_id FROM measurements
GROUP BY run_id
ORDER BY MAX(recorded_at) DESC`)
	if err != nil {
		return nil, fmt.Errorf("history: runs: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("history: runs: %w", err)
		}
		out = append(out, id)
	}

	return out, rows.Err()
}
