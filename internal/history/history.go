package history

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// Run records one processing pass over a subtitle file.
type Run struct {
	ID        string
	Path      string
	Language  string
	Mods      []string
	Entries   int
	Changed   bool
	CreatedAt time.Time
}

// Store persists processing runs in a local SQLite database.
type Store struct {
	db   *sql.DB
	path string
}

// Open connects to the history database at path, creating it and its parent
// directory as needed.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure history directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
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

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) initSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create history schema: %w", err)
	}
	return nil
}

// Record inserts a run and returns it with its assigned ID and timestamp.
func (s *Store) Record(ctx context.Context, run Run) (*Run, error) {
	run.ID = uuid.NewString()
	run.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO runs (id, path, language, mods, entries, changed, created_at)
         VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.Path,
		run.Language,
		strings.Join(run.Mods, ","),
		run.Entries,
		boolToInt(run.Changed),
		run.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, fmt.Errorf("insert run: %w", err)
	}
	return &run, nil
}

// Recent returns up to limit runs, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]*Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, path, language, mods, entries, changed, created_at
         FROM runs ORDER BY created_at DESC, id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var runs []*Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// ForPath returns all runs recorded for the given subtitle path, newest first.
func (s *Store) ForPath(ctx context.Context, path string) ([]*Run, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, path, language, mods, entries, changed, created_at
         FROM runs WHERE path = ? ORDER BY created_at DESC, id DESC`,
		path,
	)
	if err != nil {
		return nil, fmt.Errorf("query runs for path: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var runs []*Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// Prune removes runs older than the cutoff and returns how many were deleted.
func (s *Store) Prune(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(
		ctx,
		`DELETE FROM runs WHERE created_at < ?`,
		cutoff.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, fmt.Errorf("prune runs: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("prune rows affected: %w", err)
	}
	return n, nil
}

func scanRun(rows *sql.Rows) (*Run, error) {
	var (
		run     Run
		mods    string
		changed int
		created string
	)
	if err := rows.Scan(&run.ID, &run.Path, &run.Language, &mods, &run.Entries, &changed, &created); err != nil {
		return nil, fmt.Errorf("scan run: %w", err)
	}
	if mods != "" {
		run.Mods = strings.Split(mods, ",")
	}
	run.Changed = changed != 0
	ts, err := time.Parse(time.RFC3339Nano, created)
	if err != nil {
		return nil, fmt.Errorf("parse run timestamp: %w", err)
	}
	run.CreatedAt = ts
	return &run, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
