// Package storage provides SQLite-based persistence for the high score.
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

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// ErrNoHighScore is returned by HighScoreEntry when nothing was recorded yet.
var ErrNoHighScore = errors.New("storage: no high score recorded")

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// ScoreEntry is the stored high score of one game.
type ScoreEntry struct {
	GameID    string
	Score     int
	UpdatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := config.ExpandHome(dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
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

	// Test connection
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
		CREATE TABLE IF NOT EXISTS high_scores (
			game_id TEXT PRIMARY KEY,
			score INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
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

// SetHighScore stores score as the high score of the given game,
// replacing any previous value.
func (s *Store) SetHighScore(gameID string, score int) error {
	_, err := s.db.Exec(
		`INSERT INTO high_scores (game_id, score, updated_at)
		 VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(game_id) DO UPDATE SET
		   score = excluded.score,
		   updated_at = excluded.updated_at`,
		gameID, score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}
	return nil
}

// HighScoreEntry returns the stored high score of the given game.
// Returns ErrNoHighScore if none was recorded.
func (s *Store) HighScoreEntry(gameID string) (ScoreEntry, error) {
	e := ScoreEntry{GameID: gameID}
	var updatedAt any

	err := s.db.QueryRow(
		"SELECT score, updated_at FROM high_scores WHERE game_id = ?",
		gameID,
	).Scan(&e.Score, &updatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return e, ErrNoHighScore
	}
	if err != nil {
		return e, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	// Parse the datetime - handle both time.Time and string
	switch v := updatedAt.(type) {
	case time.Time:
		e.UpdatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			e.UpdatedAt = parsed
		}
	}

	return e, nil
}

// HighScore returns the high score for the given game.
// Returns 0 if no score exists.
func (s *Store) HighScore(gameID string) (int, error) {
	e, err := s.HighScoreEntry(gameID)
	if errors.Is(err, ErrNoHighScore) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return e.Score, nil
}

// ClearHighScore deletes the high score of the given game.
func (s *Store) ClearHighScore(gameID string) error {
	_, err := s.db.Exec("DELETE FROM high_scores WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear high score: %w", err)
	}
	return nil
}

// GameScores binds a Store to one game. It satisfies the game's
// high-score store interface.
type GameScores struct {
	store  *Store
	gameID string
}

// ForGame returns the high score accessor for gameID.
func (s *Store) ForGame(gameID string) *GameScores {
	return &GameScores{store: s, gameID: gameID}
}

// LoadHighScore returns the stored high score, 0 if none.
func (g *GameScores) LoadHighScore() (int, error) {
	return g.store.HighScore(g.gameID)
}

// SaveHighScore stores a new high score.
func (g *GameScores) SaveHighScore(score int) error {
	return g.store.SetHighScore(g.gameID, score)
}
