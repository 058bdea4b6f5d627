// Package storage provides SQLite-based persistence for play sessions.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrNotFound is returned when a session id has no stored record.
var ErrNotFound = errors.New("storage: session not found")

// Store manages the SQLite database connection for session history.
type Store struct {
	db *sql.DB
}

// SessionRecord is one finished play session.
type SessionRecord struct {
	ID           string
	Frontend     string
	User         string
	Seed         int64
	Ticks        int
	PiecesLocked int
	BoardClears  int
	ToppedOut    bool
	Duration     time.Duration
	CreatedAt    time.Time
}

// Totals aggregates every stored session.
type Totals struct {
	Sessions     int
	Ticks        int
	PiecesLocked int
	BoardClears  int
	PlayTime     time.Duration
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
// Timestamps and durations are stored as integer milliseconds.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			frontend TEXT NOT NULL,
			user TEXT NOT NULL DEFAULT '',
			seed INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			pieces_locked INTEGER NOT NULL DEFAULT 0,
			board_clears INTEGER NOT NULL DEFAULT 0,
			topped_out INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_created ON sessions(created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_sessions_frontend ON sessions(frontend);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveSession records a finished session and returns its id.
// A fresh UUID is assigned when rec.ID is empty, and CreatedAt defaults to now.
func (s *Store) SaveSession(rec SessionRecord) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	} else if _, err := uuid.Parse(rec.ID); err != nil {
		return "", fmt.Errorf("storage: invalid session id %q: %w", rec.ID, err)
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}

	_, err := s.db.Exec(
		`INSERT INTO sessions
		 (id, frontend, user, seed, ticks, pieces_locked, board_clears, topped_out, duration_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Frontend, rec.User, rec.Seed,
		rec.Ticks, rec.PiecesLocked, rec.BoardClears, boolToInt(rec.ToppedOut),
		rec.Duration.Milliseconds(), rec.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save session: %w", err)
	}

	return rec.ID, nil
}

// SessionByID looks up one session.
func (s *Store) SessionByID(id string) (*SessionRecord, error) {
	row := s.db.QueryRow(
		`SELECT id, frontend, user, seed, ticks, pieces_locked, board_clears, topped_out, duration_ms, created_at
		 FROM sessions WHERE id = ?`,
		id,
	)

	rec, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query session: %w", err)
	}
	return &rec, nil
}

// RecentSessions returns up to limit sessions, newest first.
// An empty frontend matches every frontend.
func (s *Store) RecentSessions(frontend string, limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, frontend, user, seed, ticks, pieces_locked, board_clears, topped_out, duration_ms, created_at
		 FROM sessions
		 WHERE ? = '' OR frontend = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		frontend, frontend, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var records []SessionRecord
	for rows.Next() {
		rec, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// Totals sums statistics over every stored session.
func (s *Store) Totals() (Totals, error) {
	var (
		t        Totals
		ticks    sql.NullInt64
		pieces   sql.NullInt64
		clears   sql.NullInt64
		duration sql.NullInt64
	)
	err := s.db.QueryRow(
		`SELECT COUNT(*), SUM(ticks), SUM(pieces_locked), SUM(board_clears), SUM(duration_ms)
		 FROM sessions`,
	).Scan(&t.Sessions, &ticks, &pieces, &clears, &duration)
	if err != nil {
		return Totals{}, fmt.Errorf("storage: cannot query totals: %w", err)
	}

	t.Ticks = int(ticks.Int64)
	t.PiecesLocked = int(pieces.Int64)
	t.BoardClears = int(clears.Int64)
	t.PlayTime = time.Duration(duration.Int64) * time.Millisecond
	return t, nil
}

// ClearSessions removes every session for the given frontend.
// An empty frontend removes all sessions.
func (s *Store) ClearSessions(frontend string) (int64, error) {
	result, err := s.db.Exec(
		"DELETE FROM sessions WHERE ? = '' OR frontend = ?",
		frontend, frontend,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count removed rows: %w", err)
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSession(sc scanner) (SessionRecord, error) {
	var (
		rec        SessionRecord
		toppedOut  int
		durationMS int64
		createdMS  int64
	)
	err := sc.Scan(
		&rec.ID, &rec.Frontend, &rec.User, &rec.Seed,
		&rec.Ticks, &rec.PiecesLocked, &rec.BoardClears, &toppedOut,
		&durationMS, &createdMS,
	)
	if err != nil {
		return SessionRecord{}, err
	}

	rec.ToppedOut = toppedOut != 0
	rec.Duration = time.Duration(durationMS) * time.Millisecond
	rec.CreatedAt = time.UnixMilli(createdMS)
	return rec, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
