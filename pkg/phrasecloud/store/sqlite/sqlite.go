package sqlite

import (
	"context"
	"crypto/rand"
	"database/sql"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/cognicore/phrasecloud/pkg/phrasecloud/freq"
	"github.com/cognicore/phrasecloud/pkg/phrasecloud/internalerr"
	"github.com/cognicore/phrasecloud/pkg/phrasecloud/store"
)

// sqliteStore implements store.Store using SQLite.
type sqliteStore struct {
	db      *sql.DB
	entropy *ulid.MonotonicEntropy
}

// Open opens (creating if needed) a run store at path with WAL mode
// enabled and the schema initialized.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{
		db:      db,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}, nil
}

// Close closes the database connection.
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	root TEXT NOT NULL,
	created_at TEXT NOT NULL,
	files INTEGER NOT NULL,
	tokens INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS run_phrases (
	run_id TEXT NOT NULL,
	ord INTEGER NOT NULL,
	phrase TEXT NOT NULL,
	count INTEGER NOT NULL,
	pos INTEGER NOT NULL,
	PRIMARY KEY(run_id, ord, phrase),
	FOREIGN KEY(run_id) REFERENCES runs(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_run_phrases_order ON run_phrases(run_id, ord, pos);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// SaveRun records a run and its tables in one transaction.
func (s *sqliteStore) SaveRun(ctx context.Context, run store.Run, tables map[int]*freq.Table) (store.Run, error) {
	if run.ID == "" {
		run.ID = ulid.MustNew(ulid.Now(), s.entropy).String()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return store.Run{}, err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, root, created_at, files, tokens) VALUES (?, ?, ?, ?, ?)`,
		run.ID, run.Root, run.CreatedAt.Format(time.RFC3339), run.Files, run.Tokens)
	if err != nil {
		return store.Run{}, fmt.Errorf("insert run: %w", err)
	}

	insert, err := tx.PrepareContext(ctx,
		`INSERT INTO run_phrases (run_id, ord, phrase, count, pos) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return store.Run{}, err
	}
	defer insert.Close()

	for order, table := range tables {
		// pos preserves the table's tie-break order across a round trip
		for rank, e := range table.Entries(0) {
			if _, err := insert.ExecContext(ctx, run.ID, order, e.Phrase, int64(e.Count), rank); err != nil {
				return store.Run{}, fmt.Errorf("insert phrase: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return store.Run{}, err
	}
	return run, nil
}

// ListRuns returns all runs, newest first.
func (s *sqliteStore) ListRuns(ctx context.Context) ([]store.Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, root, created_at, files, tokens FROM runs ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []store.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// GetRun returns one run by ID.
func (s *sqliteStore) GetRun(ctx context.Context, id string) (store.Run, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, root, created_at, files, tokens FROM runs WHERE id = ?`, id)
	run, err := scanRun(row)
	if err == sql.ErrNoRows {
		return store.Run{}, fmt.Errorf("%w: %s", internalerr.ErrRunNotFound, id)
	}
	return run, err
}

// GetTable rebuilds a stored table, re-inserting phrases in their original
// rank order so tie-breaks survive the round trip.
func (s *sqliteStore) GetTable(ctx context.Context, runID string, order int) (*freq.Table, error) {
	if _, err := s.GetRun(ctx, runID); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT phrase, count FROM run_phrases WHERE run_id = ? AND ord = ? ORDER BY pos`,
		runID, order)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	table := freq.NewTable()
	for rows.Next() {
		var phrase string
		var count int64
		if err := rows.Scan(&phrase, &count); err != nil {
			return nil, err
		}
		table.Add(phrase, uint64(count))
	}
	return table, rows.Err()
}

// Orders returns the n-gram orders stored for a run, ascending.
func (s *sqliteStore) Orders(ctx context.Context, runID string) ([]int, error) {
	if _, err := s.GetRun(ctx, runID); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT DISTINCT ord FROM run_phrases WHERE run_id = ? ORDER BY ord`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []int
	for rows.Next() {
		var n int
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		orders = append(orders, n)
	}
	return orders, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRun(r rowScanner) (store.Run, error) {
	var run store.Run
	var created string
	var tokens int64
	if err := r.Scan(&run.ID, &run.Root, &created, &run.Files, &tokens); err != nil {
		return store.Run{}, err
	}
	t, err := time.Parse(time.RFC3339, created)
	if err != nil {
		return store.Run{}, fmt.Errorf("parse created_at: %w", err)
	}
	run.CreatedAt = t
	run.Tokens = uint64(tokens)
	return run, nil
}
