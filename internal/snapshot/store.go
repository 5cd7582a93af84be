package snapshot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"affixsplit/internal/affix"
)

// ErrNoRuns is returned when the store holds no run of the requested kind.
var ErrNoRuns = errors.New("no snapshot runs")

// Kinds of stored tables.
const (
	KindSuffix = "suffix"
	KindPrefix = "prefix"
)

// Run describes one saved table.
type Run struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Source    string    `json:"source,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	Entries   int       `json:"entries"`
}

// Store manages snapshot persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open creates or opens the snapshot database at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create snapshot directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Save records table as a new run of the given kind.
func (s *Store) Save(ctx context.Context, kind, source string, table affix.Table) (*Run, error) {
	run := &Run{
		ID:        uuid.NewString(),
		Kind:      kind,
		Source:    source,
		CreatedAt: time.Now().UTC(),
		Entries:   len(table),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin save tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO runs (id, kind, source, created_at, entry_count) VALUES (?, ?, ?, ?, ?)`,
		run.ID, run.Kind, nullableString(run.Source), run.CreatedAt.Format(time.RFC3339Nano), run.Entries,
	); err != nil {
		return nil, fmt.Errorf("insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO entries (run_id, affix, score) VALUES (?, ?, ?)`)
	if err != nil {
		return nil, fmt.Errorf("prepare entry insert: %w", err)
	}
	defer stmt.Close()
	for _, e := range table.Sorted() {
		if _, err := stmt.ExecContext(ctx, run.ID, e.Affix, e.Score); err != nil {
			return nil, fmt.Errorf("insert entry %q: %w", e.Affix, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit save: %w", err)
	}
	return run, nil
}

// Latest returns the most recent run of kind and its table.
func (s *Store) Latest(ctx context.Context, kind string) (*Run, affix.Table, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+runColumns+` FROM runs WHERE kind = ? ORDER BY seq DESC LIMIT 1`, kind)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, fmt.Errorf("%w of kind %q", ErrNoRuns, kind)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("get latest run: %w", err)
	}
	table, err := s.entries(ctx, run.ID)
	if err != nil {
		return nil, nil, err
	}
	return run, table, nil
}

// Get returns the run with id and its table.
func (s *Store) Get(ctx context.Context, id string) (*Run, affix.Table, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM runs WHERE id = ?`, id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, fmt.Errorf("%w with id %q", ErrNoRuns, id)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("get run: %w", err)
	}
	table, err := s.entries(ctx, run.ID)
	if err != nil {
		return nil, nil, err
	}
	return run, table, nil
}

// Runs lists all runs, newest first.
func (s *Store) Runs(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+runColumns+` FROM runs ORDER BY seq DESC`)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, *run)
	}
	return runs, rows.Err()
}

func (s *Store) entries(ctx context.Context, runID string) (affix.Table, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT affix, score FROM entries WHERE run_id = ?`, runID)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	table := affix.Table{}
	for rows.Next() {
		var (
			name  string
			score float64
		)
		if err := rows.Scan(&name, &score); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		table[name] = score
	}
	return table, rows.Err()
}

const runColumns = `id, kind, source, created_at, entry_count`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*Run, error) {
	var (
		run     Run
		source  sql.NullString
		created string
	)
	if err := row.Scan(&run.ID, &run.Kind, &source, &created, &run.Entries); err != nil {
		return nil, err
	}
	run.Source = source.String
	ts, err := time.Parse(time.RFC3339Nano, created)
	if err != nil {
		return nil, fmt.Errorf("parse created_at %q: %w", created, err)
	}
	run.CreatedAt = ts
	return &run, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
