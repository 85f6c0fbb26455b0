// Package storage provides SQLite-based persistence for finished game sessions.
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

// Outcome is how a session ended.
type Outcome string

const (
	OutcomeWon  Outcome = "won"
	OutcomeLost Outcome = "lost"
)

// Store manages the SQLite database connection for result persistence.
type Store struct {
	db *sql.DB
}

// Result is one finished session.
type Result struct {
	ID         int64
	SessionID  string // Generated when empty
	Difficulty string // Preset id or "custom"
	Buttons    int
	MaxLevel   int
	Unlimited  bool
	Level      int // Level reached
	Score      int
	Outcome    Outcome
	CreatedAt  time.Time
}

// Stats contains aggregated statistics for a difficulty.
type Stats struct {
	Difficulty string
	Games      int
	Wins       int
	HighScore  int
	BestLevel  int
	AvgScore   float64
	LastPlayed time.Time
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
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			difficulty TEXT NOT NULL,
			buttons INTEGER NOT NULL,
			max_level INTEGER NOT NULL,
			unlimited INTEGER NOT NULL DEFAULT 0,
			level INTEGER NOT NULL,
			score INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_difficulty ON results(difficulty);
		CREATE INDEX IF NOT EXISTS idx_results_top ON results(difficulty, score DESC);
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

// SaveResult records a finished session.
// Returns the ID of the inserted record.
func (s *Store) SaveResult(r Result) (int64, error) {
	if r.Outcome != OutcomeWon && r.Outcome != OutcomeLost {
		return 0, fmt.Errorf("storage: unknown outcome %q", r.Outcome)
	}
	if r.SessionID == "" {
		r.SessionID = uuid.NewString()
	}

	res, err := s.db.Exec(
		`INSERT INTO results
		 (session_id, difficulty, buttons, max_level, unlimited, level, score, outcome)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.SessionID, r.Difficulty, r.Buttons, r.MaxLevel, r.Unlimited, r.Level, r.Score, string(r.Outcome),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N results for the given difficulty.
// Results are ordered by score descending; earlier results win ties.
func (s *Store) TopScores(difficulty string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, session_id, difficulty, buttons, max_level, unlimited, level, score, outcome, created_at
		 FROM results
		 WHERE difficulty = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		difficulty, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var outcome string
		var createdAt any
		if err := rows.Scan(&r.ID, &r.SessionID, &r.Difficulty, &r.Buttons, &r.MaxLevel,
			&r.Unlimited, &r.Level, &r.Score, &outcome, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Outcome = Outcome(outcome)
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// HighScore returns the highest score for the given difficulty.
// Returns 0 if no results exist.
func (s *Store) HighScore(difficulty string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM results WHERE difficulty = ?",
		difficulty,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes all results for the given difficulty.
func (s *Store) ClearScores(difficulty string) error {
	_, err := s.db.Exec("DELETE FROM results WHERE difficulty = ?", difficulty)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// Stats retrieves aggregated statistics for a difficulty.
func (s *Store) Stats(difficulty string) (*Stats, error) {
	st := &Stats{Difficulty: difficulty}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = 'won' THEN 1 ELSE 0 END), 0),
		        COALESCE(MAX(score), 0), COALESCE(MAX(level), 0), COALESCE(AVG(score), 0),
		        MAX(created_at)
		 FROM results WHERE difficulty = ?`,
		difficulty,
	).Scan(&st.Games, &st.Wins, &st.HighScore, &st.BestLevel, &st.AvgScore, &lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	st.LastPlayed = parseTime(lastPlayed)

	return st, nil
}

// AllStats retrieves statistics for every difficulty that has been played.
func (s *Store) AllStats() (map[string]*Stats, error) {
	rows, err := s.db.Query(
		`SELECT difficulty, COUNT(*),
		        SUM(CASE WHEN outcome = 'won' THEN 1 ELSE 0 END),
		        MAX(score), MAX(level), AVG(score), MAX(created_at)
		 FROM results
		 GROUP BY difficulty`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*Stats)
	for rows.Next() {
		var st Stats
		var lastPlayed any
		if err := rows.Scan(&st.Difficulty, &st.Games, &st.Wins, &st.HighScore, &st.BestLevel,
			&st.AvgScore, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.Difficulty] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// parseTime handles the driver returning either time.Time or a string.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
