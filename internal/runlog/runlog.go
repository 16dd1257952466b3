// Package runlog records completed diagnoses to a local SQLite log so CLI
// runs can be revisited. The core pipeline never touches it.
package runlog

// #region imports
import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/percolab/shangdiag/internal/diagnose"
)

// #endregion

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS run_log (
	run_id       TEXT PRIMARY KEY,
	case_name    TEXT,
	proxies_json TEXT NOT NULL,
	result_json  TEXT NOT NULL,
	diagnosis    TEXT NOT NULL,
	created_at   TEXT NOT NULL
);
`

// #endregion schema

// #region store

// Store manages the run log in SQLite.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) a run-log database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// #endregion store

// #region entry

// Entry is one logged diagnosis.
type Entry struct {
	RunID     string
	CaseName  string
	Proxies   []float64
	Result    diagnose.Result
	CreatedAt time.Time
}

// #endregion entry

// #region record

// Record appends a completed diagnosis to the log and returns its run id.
func (s *Store) Record(caseName string, proxies []float64, res diagnose.Result) (string, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	proxiesJSON, err := json.Marshal(proxies)
	if err != nil {
		return "", fmt.Errorf("marshal proxies: %w", err)
	}
	resultJSON, err := json.Marshal(res)
	if err != nil {
		return "", fmt.Errorf("marshal result: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO run_log (run_id, case_name, proxies_json, result_json, diagnosis, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id,
		nullIfEmpty(caseName),
		string(proxiesJSON),
		string(resultJSON),
		string(res.Diagnosis),
		now.Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", fmt.Errorf("record run: %w", err)
	}
	return id, nil
}

// #endregion record

// #region recent

// Recent returns the most recent entries, newest first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT run_id, case_name, proxies_json, result_json, created_at
		 FROM run_log ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var caseName sql.NullString
		var proxiesJSON, resultJSON, createdAt string
		if err := rows.Scan(&e.RunID, &caseName, &proxiesJSON, &resultJSON, &createdAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if caseName.Valid {
			e.CaseName = caseName.String
		}
		if err := json.Unmarshal([]byte(proxiesJSON), &e.Proxies); err != nil {
			return nil, fmt.Errorf("parse proxies: %w", err)
		}
		if err := json.Unmarshal([]byte(resultJSON), &e.Result); err != nil {
			return nil, fmt.Errorf("parse result: %w", err)
		}
		if t, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
			e.CreatedAt = t
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return entries, nil
}

// #endregion recent

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers
