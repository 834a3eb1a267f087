package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const schema = `
	CREATE TABLE IF NOT EXISTS dparam_results (
		source            TEXT NOT NULL,
		label             TEXT NOT NULL,
		run_id            TEXT NOT NULL,
		center            DOUBLE NOT NULL,
		separation        DOUBLE NOT NULL,
		pre_passes        INTEGER NOT NULL,
		post_passes       INTEGER NOT NULL,
		smooth_width      DOUBLE NOT NULL,
		diff_width        DOUBLE NOT NULL,
		algorithm         TEXT NOT NULL,
		derivative        TEXT NOT NULL,
		created_at        BIGINT NOT NULL,
		PRIMARY KEY (source, label)
	);
`

const selectColumns = `
	source, label, run_id, center, separation, pre_passes, post_passes,
	smooth_width, diff_width, algorithm, derivative, created_at
`

// SQLite is a Store backed by a SQLite database file.
type SQLite struct {
	db   *sql.DB
	path string
}

// OpenSQLite opens or creates the database at path and ensures the schema.
// Use ":memory:" for a private in-memory database.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	// One connection keeps ":memory:" databases shared across calls and
	// serializes writers.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: create schema: %w", err)
	}

	diagf("opened %s", path)
	return &SQLite{db: db, path: path}, nil
}

func (s *SQLite) Put(key Key, e Entry) error {
	if err := key.validate(); err != nil {
		return err
	}

	deriv, err := json.Marshal(nonNil(e.NormalizedDerivative))
	if err != nil {
		return fmt.Errorf("store: encode derivative: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("store: begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO dparam_results (`+selectColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (source, label) DO UPDATE SET
			run_id = excluded.run_id,
			center = excluded.center,
			separation = excluded.separation,
			pre_passes = excluded.pre_passes,
			post_passes = excluded.post_passes,
			smooth_width = excluded.smooth_width,
			diff_width = excluded.diff_width,
			algorithm = excluded.algorithm,
			derivative = excluded.derivative,
			created_at = excluded.created_at
	`,
		key.Source, key.Label, e.RunID.String(), e.Center, e.Separation,
		e.PrePasses, e.PostPasses, e.SmoothWidth, e.DiffWidth, e.Algorithm,
		string(deriv), e.CreatedAt.UnixNano(),
	)
	if err != nil {
		opsf("put %s failed: %v", key, err)
		return fmt.Errorf("store: put %s: %w", key, err)
	}

	if err := tx.Commit(); err != nil {
		opsf("commit %s failed: %v", key, err)
		return fmt.Errorf("store: commit: %w", err)
	}

	diagf("put %s separation=%v run=%s", key, e.Separation, e.RunID)
	return nil
}

func (s *SQLite) Get(key Key) (Entry, error) {
	row := s.db.QueryRow(`SELECT `+selectColumns+` FROM dparam_results WHERE source = ? AND label = ?`,
		key.Source, key.Label)

	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if err != nil {
		return Entry{}, fmt.Errorf("store: get %s: %w", key, err)
	}
	return rec.Entry, nil
}

func (s *SQLite) Peaks(source string) ([]Record, error) {
	rows, err := s.db.Query(`SELECT `+selectColumns+` FROM dparam_results WHERE source = ?`, source)
	if err != nil {
		return nil, fmt.Errorf("store: peaks %q: %w", source, err)
	}
	defer rows.Close()

	var recs []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("store: peaks %q: %w", source, err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: peaks %q: %w", source, err)
	}

	sortRecords(recs)
	return recs, nil
}

func (s *SQLite) Sources() ([]string, error) {
	rows, err := s.db.Query(`SELECT DISTINCT source FROM dparam_results ORDER BY source`)
	if err != nil {
		return nil, fmt.Errorf("store: sources: %w", err)
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var src string
		if err := rows.Scan(&src); err != nil {
			return nil, fmt.Errorf("store: sources: %w", err)
		}
		out = append(out, src)
	}
	return out, rows.Err()
}

func (s *SQLite) ClearSource(source string) (int, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("store: begin: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`DELETE FROM dparam_results WHERE source = ?`, source)
	if err != nil {
		return 0, fmt.Errorf("store: clear %q: %w", source, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("store: clear %q: %w", source, err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("store: commit: %w", err)
	}

	opsf("cleared %d entries of %q", n, source)
	return int(n), nil
}

func (s *SQLite) Delete(key Key) error {
	res, err := s.db.Exec(`DELETE FROM dparam_results WHERE source = ? AND label = ?`, key.Source, key.Label)
	if err != nil {
		return fmt.Errorf("store: delete %s: %w", key, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("store: delete %s: %w", key, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, key)
	}

	diagf("deleted %s", key)
	return nil
}

// Close closes the database.
func (s *SQLite) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(sc scanner) (Record, error) {
	var (
		rec       Record
		runID     string
		deriv     string
		createdAt int64
	)

	err := sc.Scan(
		&rec.Source,
		&rec.Label,
		&runID,
		&rec.Center,
		&rec.Separation,
		&rec.PrePasses,
		&rec.PostPasses,
		&rec.SmoothWidth,
		&rec.DiffWidth,
		&rec.Algorithm,
		&deriv,
		&createdAt,
	)
	if err != nil {
		return Record{}, err
	}

	if rec.RunID, err = uuid.Parse(runID); err != nil {
		return Record{}, fmt.Errorf("run id %q: %w", runID, err)
	}
	if err := json.Unmarshal([]byte(deriv), &rec.NormalizedDerivative); err != nil {
		return Record{}, fmt.Errorf("decode derivative: %w", err)
	}
	rec.CreatedAt = time.Unix(0, createdAt).UTC()

	return rec, nil
}

func nonNil(s []float64) []float64 {
	if s == nil {
		return []float64{}
	}
	return s
}
