package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// execute runs the CLI with args in an isolated HOME and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	// Flags are package globals; reset them between runs
	flagFPS, flagSeed, flagDBPath, flagConfig, flagFrontend = 0, 0, "", "", ""
	flagMute, flagReset, flagDefaults = false, false, false
	resetChanged(t)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

// resetChanged clears the Changed marks cobra keeps on parsed flags.
func resetChanged(t *testing.T) {
	t.Helper()
	for _, name := range []string{"fps", "seed", "db", "config", "frontend", "mute"} {
		if f := rootCmd.PersistentFlags().Lookup(name); f != nil {
			f.Changed = false
		}
	}
	if f := highscoreCmd.Flags().Lookup("reset"); f != nil {
		f.Changed = false
	}
	if f := configCmd.Flags().Lookup("defaults"); f != nil {
		f.Changed = false
	}
}

func seedScore(t *testing.T, dbPath string, score int) {
	t.Helper()
	store, err := storage.Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()
	if err := store.ForGame(flappy.ID).SaveHighScore(score); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}
}

func TestHighscoreEmpty(t *testing.T) {
	db := filepath.Join(t.TempDir(), "scores.db")

	out, err := execute(t, "highscore", "--db", db)
	if err != nil {
		t.Fatalf("highscore failed: %v", err)
	}
	if !strings.Contains(out, "No high score recorded yet.") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestHighscoreShowAndReset(t *testing.T) {
	db := filepath.Join(t.TempDir(), "scores.db")
	seedScore(t, db, 23)

	out, err := execute(t, "highscore", "--db", db)
	if err != nil {
		t.Fatalf("highscore failed: %v", err)
	}
	if !strings.Contains(out, "High Score: 23") {
		t.Errorf("unexpected output: %q", out)
	}

	out, err = execute(t, "highscore", "--db", db, "--reset")
	if err != nil {
		t.Fatalf("highscore --reset failed: %v", err)
	}
	if !strings.Contains(out, "High score cleared.") {
		t.Errorf("unexpected output: %q", out)
	}

	out, err = execute(t, "highscore", "--db", db)
	if err != nil {
		t.Fatalf("highscore failed: %v", err)
	}
	if !strings.Contains(out, "No high score recorded yet.") {
		t.Errorf("score should be gone after reset: %q", out)
	}
}

func TestConfigAppliesFlags(t *testing.T) {
	out, err := execute(t, "config", "--fps", "30", "--seed", "42", "--frontend", "TCELL", "--mute")
	if err != nil {
		t.Fatalf("config failed: %v", err)
	}

	for _, want := range []string{"tick_rate: 30", "seed: 42", "frontend: tcell", "enabled: false"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestConfigDefaults(t *testing.T) {
	out, err := execute(t, "config")
	if err != nil {
		t.Fatalf("config failed: %v", err)
	}

	for _, want := range []string{"tick_rate: 60", "frontend: tea", "scores.db"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestConfigDefaultsFile(t *testing.T) {
	out, err := execute(t, "config", "--defaults")
	if err != nil {
		t.Fatalf("config --defaults failed: %v", err)
	}
	if out != string(config.DefaultYAML()) {
		t.Errorf("expected the embedded default file, got:\n%s", out)
	}
}

func TestConfigRejectsBadFlag(t *testing.T) {
	if _, err := execute(t, "config", "--fps", "1000"); err == nil {
		t.Error("expected error for out-of-range fps")
	}
	if _, err := execute(t, "config", "--frontend", "gtk"); err == nil {
		t.Error("expected error for unknown frontend")
	}
}

func TestPlayLoggerUnwritableHome(t *testing.T) {
	// HOME is a regular file, so ~/.arcade cannot be created
	home := filepath.Join(t.TempDir(), "home")
	if err := os.WriteFile(home, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "config")
	if err != nil {
		t.Fatalf("config failed: %v", err)
	}
	if !strings.Contains(out, "flappy.log") {
		t.Fatalf("default log file expected in config:\n%s", out)
	}

	t.Setenv("HOME", home)
	cfg, err := loadSettings(configCmd)
	if err != nil {
		t.Fatalf("settings should resolve with an unwritable HOME: %v", err)
	}

	var warn bytes.Buffer
	logger, closer := newPlayLogger(cfg, &warn)
	defer closer.Close()

	if logger == nil {
		t.Fatal("a logger is required to start the game")
	}
	if !strings.Contains(warn.String(), "warning:") {
		t.Errorf("expected a warning about the log file, got %q", warn.String())
	}
	logger.Info("game starts anyway")
}
