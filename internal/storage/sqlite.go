// Package storage provides SQLite-based session history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// sqliteTime is the layout SQLite uses for CURRENT_TIMESTAMP.
const sqliteTime = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for session history.
type Store struct {
	db *sql.DB
}

// Session is one finished (or abandoned) game.
type Session struct {
	ID           int64
	Variant      string
	Seed         int64
	Width        int
	Height       int
	Arity        int
	Matches      int
	Misses       int
	Removed      int
	Remaining    int
	Outcome      string // "cleared", "stuck" or "quit"
	DurationSecs int
	CreatedAt    time.Time
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
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			variant TEXT NOT NULL,
			seed INTEGER NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			arity INTEGER NOT NULL,
			matches INTEGER NOT NULL DEFAULT 0,
			misses INTEGER NOT NULL DEFAULT 0,
			removed INTEGER NOT NULL DEFAULT 0,
			remaining INTEGER NOT NULL DEFAULT 0,
			outcome TEXT NOT NULL,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_variant ON sessions(variant);
		CREATE INDEX IF NOT EXISTS idx_sessions_best ON sessions(variant, removed DESC);
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

// SaveSession records a finished game.
// Returns the ID of the inserted record.
func (s *Store) SaveSession(rec Session) (int64, error) {
	if rec.Variant == "" {
		return 0, errors.New("storage: session without variant")
	}
	result, err := s.db.Exec(
		`INSERT INTO sessions
			(variant, seed, width, height, arity, matches, misses, removed, remaining, outcome, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Variant, rec.Seed, rec.Width, rec.Height, rec.Arity,
		rec.Matches, rec.Misses, rec.Removed, rec.Remaining, rec.Outcome, rec.DurationSecs,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get insert id: %w", err)
	}

	return id, nil
}

const sessionColumns = `id, variant, seed, width, height, arity, matches, misses,
	removed, remaining, outcome, duration_secs, created_at`

// RecentSessions returns the latest sessions, newest first.
// An empty variant returns sessions of every variant.
func (s *Store) RecentSessions(variant string, limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 10
	}

	var (
		rows *sql.Rows
		err  error
	)
	if variant == "" {
		rows, err = s.db.Query(
			`SELECT `+sessionColumns+` FROM sessions ORDER BY created_at DESC, id DESC LIMIT ?`,
			limit,
		)
	} else {
		rows, err = s.db.Query(
			`SELECT `+sessionColumns+` FROM sessions WHERE variant = ?
			 ORDER BY created_at DESC, id DESC LIMIT ?`,
			variant, limit,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	return scanSessions(rows)
}

// BestSessions returns the sessions of a variant that removed the most tiles.
// Ties go to fewer misses, then to the older session.
func (s *Store) BestSessions(variant string, limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+sessionColumns+` FROM sessions WHERE variant = ?
		 ORDER BY removed DESC, misses ASC, created_at ASC, id ASC LIMIT ?`,
		variant, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best sessions: %w", err)
	}
	defer rows.Close()

	return scanSessions(rows)
}

func scanSessions(rows *sql.Rows) ([]Session, error) {
	var out []Session
	for rows.Next() {
		var rec Session
		var createdAt any
		if err := rows.Scan(
			&rec.ID, &rec.Variant, &rec.Seed, &rec.Width, &rec.Height, &rec.Arity,
			&rec.Matches, &rec.Misses, &rec.Removed, &rec.Remaining,
			&rec.Outcome, &rec.DurationSecs, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan session row: %w", err)
		}
		rec.CreatedAt = parseTime(createdAt)
		out = append(out, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: error iterating sessions: %w", err)
	}

	return out, nil
}

// parseTime handles both driver-decoded times and raw SQLite timestamps.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTime, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// ClearSessions removes the history of a variant.
// An empty variant clears everything.
func (s *Store) ClearSessions(variant string) error {
	var err error
	if variant == "" {
		_, err = s.db.Exec("DELETE FROM sessions")
	} else {
		_, err = s.db.Exec("DELETE FROM sessions WHERE variant = ?", variant)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}

// Totals contains aggregated statistics for a variant.
type Totals struct {
	Variant     string
	Games       int
	Cleared     int
	Stuck       int
	Quit        int
	Matches     int
	Misses      int
	BestRemoved int
	AvgRemoved  float64
	LastPlayed  time.Time
}

const totalsColumns = `COUNT(*),
	COALESCE(SUM(CASE WHEN outcome = 'cleared' THEN 1 ELSE 0 END), 0),
	COALESCE(SUM(CASE WHEN outcome = 'stuck' THEN 1 ELSE 0 END), 0),
	COALESCE(SUM(CASE WHEN outcome = 'quit' THEN 1 ELSE 0 END), 0),
	COALESCE(SUM(matches), 0),
	COALESCE(SUM(misses), 0),
	COALESCE(MAX(removed), 0),
	COALESCE(AVG(removed), 0),
	MAX(created_at)`

// Totals retrieves aggregated statistics for a variant.
// A variant that was never played returns zero totals.
func (s *Store) Totals(variant string) (*Totals, error) {
	t := &Totals{Variant: variant}
	var lastPlayed any

	err := s.db.QueryRow(
		`SELECT `+totalsColumns+` FROM sessions WHERE variant = ?`,
		variant,
	).Scan(&t.Games, &t.Cleared, &t.Stuck, &t.Quit, &t.Matches, &t.Misses,
		&t.BestRemoved, &t.AvgRemoved, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get totals: %w", err)
	}
	t.LastPlayed = parseTime(lastPlayed)

	return t, nil
}

// AllTotals retrieves statistics for every variant that has been played.
func (s *Store) AllTotals() (map[string]*Totals, error) {
	rows, err := s.db.Query(
		`SELECT variant, ` + totalsColumns + ` FROM sessions GROUP BY variant`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all totals: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*Totals)
	for rows.Next() {
		var t Totals
		var lastPlayed any
		if err := rows.Scan(&t.Variant, &t.Games, &t.Cleared, &t.Stuck, &t.Quit,
			&t.Matches, &t.Misses, &t.BestRemoved, &t.AvgRemoved, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan totals row: %w", err)
		}
		t.LastPlayed = parseTime(lastPlayed)
		stats[t.Variant] = &t
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: error iterating totals: %w", err)
	}

	return stats, nil
}
