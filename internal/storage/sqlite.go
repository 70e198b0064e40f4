// Package storage provides SQLite-based persistence for finished Bricker rounds.
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

// DefaultPath is where rounds are stored unless --db says otherwise.
const DefaultPath = "~/.bricker/rounds.db"

const sqliteTime = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for round history.
type Store struct {
	db *sql.DB
}

// Round is one finished round.
type Round struct {
	ID              string // UUID, generated by SaveRound when empty
	Player          string // SSH user or "local"
	Outcome         string // "win" or "lose"
	Score           int
	BricksDestroyed int
	BricksTotal     int
	LivesLeft       int
	Ticks           int
	Seed            int64
	Layout          string
	CreatedAt       time.Time
}

// Stats contains aggregated statistics over all rounds.
type Stats struct {
	Rounds     int
	Wins       int
	HighScore  int
	AvgScore   float64
	Bricks     int64
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
		CREATE TABLE IF NOT EXISTS rounds (
			id TEXT PRIMARY KEY,
			player TEXT NOT NULL DEFAULT '',
			outcome TEXT NOT NULL,
			score INTEGER NOT NULL,
			bricks_destroyed INTEGER NOT NULL DEFAULT 0,
			bricks_total INTEGER NOT NULL DEFAULT 0,
			lives_left INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			seed INTEGER NOT NULL DEFAULT 0,
			layout TEXT NOT NULL DEFAULT 'classic',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_score ON rounds(score DESC);
		CREATE INDEX IF NOT EXISTS idx_rounds_created ON rounds(created_at DESC);
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

// SaveRound records a finished round and returns its ID.
func (s *Store) SaveRound(r Round) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	_, err := s.db.Exec(
		`INSERT INTO rounds
		 (id, player, outcome, score, bricks_destroyed, bricks_total, lives_left, ticks, seed, layout)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Player, r.Outcome, r.Score, r.BricksDestroyed, r.BricksTotal,
		r.LivesLeft, r.Ticks, r.Seed, r.Layout,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save round: %w", err)
	}
	return r.ID, nil
}

const roundColumns = `id, player, outcome, score, bricks_destroyed, bricks_total,
	lives_left, ticks, seed, layout, created_at`

// TopRounds retrieves the N highest scoring rounds.
func (s *Store) TopRounds(limit int) ([]Round, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRounds(
		`SELECT `+roundColumns+` FROM rounds ORDER BY score DESC, rowid ASC LIMIT ?`,
		limit,
	)
}

// RecentRounds retrieves the N most recent rounds, newest first.
func (s *Store) RecentRounds(limit int) ([]Round, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryRounds(
		`SELECT `+roundColumns+` FROM rounds ORDER BY created_at DESC, rowid DESC LIMIT ?`,
		limit,
	)
}

// RoundByID retrieves a round by its ID. Returns nil if it does not exist.
func (s *Store) RoundByID(id string) (*Round, error) {
	rounds, err := s.queryRounds(`SELECT `+roundColumns+` FROM rounds WHERE id = ?`, id)
	if err != nil {
		return nil, err
	}
	if len(rounds) == 0 {
		return nil, nil
	}
	return &rounds[0], nil
}

func (s *Store) queryRounds(query string, args ...any) ([]Round, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var rounds []Round
	for rows.Next() {
		var r Round
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.Player,
			&r.Outcome,
			&r.Score,
			&r.BricksDestroyed,
			&r.BricksTotal,
			&r.LivesLeft,
			&r.Ticks,
			&r.Seed,
			&r.Layout,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		rounds = append(rounds, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return rounds, nil
}

// HighScore returns the highest score of any round, or 0 if there are none.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(score) FROM rounds").Scan(&score); err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// Stats retrieves aggregated statistics over all rounds.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = 'win' THEN 1 ELSE 0 END), 0),
		        COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(bricks_destroyed), 0)
		 FROM rounds`,
	).Scan(&stats.Rounds, &stats.Wins, &stats.HighScore, &stats.AvgScore, &stats.Bricks)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(`SELECT created_at FROM rounds ORDER BY created_at DESC LIMIT 1`).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// ClearRounds deletes all rounds.
func (s *Store) ClearRounds() error {
	if _, err := s.db.Exec("DELETE FROM rounds"); err != nil {
		return fmt.Errorf("storage: cannot clear rounds: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse(sqliteTime, v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
