// Package storage provides SQLite-based persistence for finished sessions.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// Only summaries are stored; a running session is never restored.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/klokkia/internal/session"
)

// Store manages the SQLite database connection for the leaderboard.
type Store struct {
	db *sql.DB
}

// SessionRecord is the stored summary of one finished session.
type SessionRecord struct {
	ID         int64         `json:"id"`
	Player     string        `json:"player"`
	Mode       string        `json:"mode"` // terminal, ssh or web
	Difficulty string        `json:"difficulty"`
	Score      int           `json:"score"`
	Won        bool          `json:"won"`
	Correct    int           `json:"correct"`
	Revealed   int           `json:"revealed"`
	Hints      int           `json:"hints"`
	Catches    int           `json:"catches"`
	Duration   time.Duration `json:"duration"`
	CreatedAt  time.Time     `json:"created_at"`
}

// RecordFromResult builds a record from a session summary.
func RecordFromResult(player, mode, difficulty string, r session.Result) SessionRecord {
	return SessionRecord{
		Player:     player,
		Mode:       mode,
		Difficulty: difficulty,
		Score:      r.Score,
		Won:        r.Won,
		Correct:    r.Correct,
		Revealed:   r.Revealed,
		Hints:      r.Hints,
		Catches:    r.Catches,
		Duration:   r.Duration,
	}
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
			player TEXT NOT NULL,
			mode TEXT NOT NULL,
			difficulty TEXT NOT NULL DEFAULT 'normal',
			score INTEGER NOT NULL,
			won INTEGER NOT NULL DEFAULT 0,
			correct INTEGER NOT NULL DEFAULT 0,
			revealed INTEGER NOT NULL DEFAULT 0,
			hints INTEGER NOT NULL DEFAULT 0,
			catches INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_top ON sessions(score DESC, duration_ms ASC);
		CREATE INDEX IF NOT EXISTS idx_sessions_player ON sessions(player);
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

// Ping checks that the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// SaveSession records a finished session.
// Returns the ID of the inserted record.
func (s *Store) SaveSession(r SessionRecord) (int64, error) {
	if r.Difficulty == "" {
		r.Difficulty = "normal"
	}
	result, err := s.db.Exec(
		`INSERT INTO sessions (player, mode, difficulty, score, won, correct, revealed, hints, catches, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Player, r.Mode, r.Difficulty, r.Score, r.Won, r.Correct, r.Revealed, r.Hints, r.Catches, r.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const selectSessions = `SELECT id, player, mode, difficulty, score, won, correct, revealed, hints, catches, duration_ms, created_at FROM sessions`

// TopSessions retrieves the best N sessions.
// Higher scores come first; ties go to the faster session.
func (s *Store) TopSessions(limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.query(selectSessions+` ORDER BY score DESC, duration_ms ASC, id ASC LIMIT ?`, limit)
}

// RecentSessions retrieves the most recent N sessions.
func (s *Store) RecentSessions(limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.query(selectSessions+` ORDER BY id DESC LIMIT ?`, limit)
}

// PlayerSessions retrieves the most recent sessions of one player.
func (s *Store) PlayerSessions(player string, limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.query(selectSessions+` WHERE player = ? ORDER BY id DESC LIMIT ?`, player, limit)
}

func (s *Store) query(q string, args ...any) ([]SessionRecord, error) {
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var records []SessionRecord
	for rows.Next() {
		var r SessionRecord
		var durationMS int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Player, &r.Mode, &r.Difficulty, &r.Score, &r.Won,
			&r.Correct, &r.Revealed, &r.Hints, &r.Catches, &durationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMS) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
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

// HighScore returns the highest stored score.
// Returns 0 if no sessions exist.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(score) FROM sessions").Scan(&score); err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// ClearSessions deletes every stored session.
func (s *Store) ClearSessions() error {
	if _, err := s.db.Exec("DELETE FROM sessions"); err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}

// Stats contains aggregated statistics over all sessions.
type Stats struct {
	Sessions     int       `json:"sessions"`
	Wins         int       `json:"wins"`
	HighScore    int       `json:"high_score"`
	AvgScore     float64   `json:"avg_score"`
	TotalCorrect int64     `json:"total_correct"`
	TotalCatches int64     `json:"total_catches"`
	LastPlayed   time.Time `json:"last_played"`
}

// Stats retrieves aggregated statistics.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(won), 0), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(correct), 0), COALESCE(SUM(catches), 0)
		 FROM sessions`,
	).Scan(&stats.Sessions, &stats.Wins, &stats.HighScore, &stats.AvgScore, &stats.TotalCorrect, &stats.TotalCatches)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(`SELECT created_at FROM sessions ORDER BY id DESC LIMIT 1`).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}
