// Package storage provides SQLite-based persistence for campaign
// progress. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for progress persistence.
type Store struct {
	db *sql.DB
}

// ProgressEntry records one completed level.
type ProgressEntry struct {
	LevelID     string
	BestMoves   int
	CompletedAt time.Time
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

	// Create parent directories
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
		CREATE TABLE IF NOT EXISTS completed_levels (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level_id TEXT NOT NULL UNIQUE,
			best_moves INTEGER NOT NULL,
			completed_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_completed_levels_level_id ON completed_levels(level_id);
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

// MarkCompleted records a level clear. Replaying a level only lowers the
// stored move count, never raises it.
func (s *Store) MarkCompleted(levelID string, moves int) error {
	_, err := s.db.Exec(
		`INSERT INTO completed_levels (level_id, best_moves) VALUES (?, ?)
		 ON CONFLICT(level_id) DO UPDATE SET
		   best_moves = MIN(best_moves, excluded.best_moves),
		   completed_at = CURRENT_TIMESTAMP`,
		levelID, moves,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot mark level completed: %w", err)
	}
	return nil
}

// IsCompleted reports whether a level has been cleared.
func (s *Store) IsCompleted(levelID string) (bool, error) {
	var n int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM completed_levels WHERE level_id = ?",
		levelID,
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("storage: cannot query completion: %w", err)
	}
	return n > 0, nil
}

// BestMoves returns the lowest recorded move count for a level.
// Returns 0, false if the level has never been cleared.
func (s *Store) BestMoves(levelID string) (int, bool, error) {
	var moves sql.NullInt64
	err := s.db.QueryRow(
		"SELECT best_moves FROM completed_levels WHERE level_id = ?",
		levelID,
	).Scan(&moves)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query best moves: %w", err)
	}
	return int(moves.Int64), moves.Valid, nil
}

// Completed retrieves every cleared level, most recent first.
func (s *Store) Completed() ([]ProgressEntry, error) {
	rows, err := s.db.Query(
		`SELECT level_id, best_moves, completed_at
		 FROM completed_levels
		 ORDER BY completed_at DESC, level_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query progress: %w", err)
	}
	defer rows.Close()

	var entries []ProgressEntry
	for rows.Next() {
		var e ProgressEntry
		var completedAt any
		if err := rows.Scan(&e.LevelID, &e.BestMoves, &completedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := completedAt.(type) {
		case time.Time:
			e.CompletedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.CompletedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// ClearProgress deletes all recorded completions.
func (s *Store) ClearProgress() error {
	_, err := s.db.Exec("DELETE FROM completed_levels")
	if err != nil {
		return fmt.Errorf("storage: cannot clear progress: %w", err)
	}
	return nil
}
