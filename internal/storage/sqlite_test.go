package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created along with its directories
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreOpenExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.arcade/scores.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".arcade", "scores.db")); err != nil {
		t.Errorf("database should be created under HOME: %v", err)
	}
}

func TestStoreOpenCorruptFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "corrupt.db")
	garbage := make([]byte, 4096)
	for i := range garbage {
		garbage[i] = byte(i*7 + 3)
	}
	if err := os.WriteFile(dbPath, garbage, 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	store, err := Open(dbPath)
	if err == nil {
		store.Close()
		t.Fatal("Open() should fail on a file that is not a database")
	}
}

func TestStoreHighScoreEmpty(t *testing.T) {
	store := openTestStore(t)

	score, err := store.HighScore("flappy")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if score != 0 {
		t.Errorf("Expected 0 for empty database, got %d", score)
	}

	if _, err := store.HighScoreEntry("flappy"); !errors.Is(err, ErrNoHighScore) {
		t.Errorf("HighScoreEntry() error = %v, expected ErrNoHighScore", err)
	}
}

func TestStoreSetHighScore(t *testing.T) {
	store := openTestStore(t)

	if err := store.SetHighScore("flappy", 12); err != nil {
		t.Fatalf("SetHighScore() failed: %v", err)
	}
	if err := store.SetHighScore("flappy", 31); err != nil {
		t.Fatalf("SetHighScore() failed: %v", err)
	}
	if err := store.SetHighScore("other", 99); err != nil {
		t.Fatalf("SetHighScore() failed: %v", err)
	}

	score, err := store.HighScore("flappy")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if score != 31 {
		t.Errorf("Expected latest high score 31, got %d", score)
	}

	entry, err := store.HighScoreEntry("flappy")
	if err != nil {
		t.Fatalf("HighScoreEntry() failed: %v", err)
	}
	if entry.UpdatedAt.IsZero() {
		t.Error("UpdatedAt should be set")
	}
	if time.Since(entry.UpdatedAt) > 24*time.Hour {
		t.Errorf("UpdatedAt looks wrong: %v", entry.UpdatedAt)
	}
}

func TestStoreClearHighScore(t *testing.T) {
	store := openTestStore(t)

	store.SetHighScore("flappy", 5)
	store.SetHighScore("other", 7)

	if err := store.ClearHighScore("flappy"); err != nil {
		t.Fatalf("ClearHighScore() failed: %v", err)
	}

	if score, _ := store.HighScore("flappy"); score != 0 {
		t.Errorf("Expected 0 after clear, got %d", score)
	}
	if score, _ := store.HighScore("other"); score != 7 {
		t.Errorf("Other games should be untouched, got %d", score)
	}
}

func TestStorePersistsAcrossOpen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.ForGame("flappy").SaveHighScore(42); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	score, err := store.ForGame("flappy").LoadHighScore()
	if err != nil {
		t.Fatalf("LoadHighScore() failed: %v", err)
	}
	if score != 42 {
		t.Errorf("Expected 42 after reopen, got %d", score)
	}
}
