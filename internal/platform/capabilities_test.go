package platform

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

func testLogger(buf *bytes.Buffer) *log.Logger {
	return log.NewWithOptions(buf, log.Options{Level: log.DebugLevel})
}

func silentConfig(t *testing.T) config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.DBPath = filepath.Join(t.TempDir(), "scores.db")
	cfg.Sound.Enabled = false
	return cfg
}

func TestOpenStore(t *testing.T) {
	var buf bytes.Buffer
	cfg := silentConfig(t)

	res := Open(cfg, Options{}, testLogger(&buf))
	defer res.Close()

	if res.Caps.Store == nil {
		t.Fatalf("store should be opened, log: %s", buf.String())
	}
	if res.Caps.Sound != nil {
		t.Error("sound should be absent when disabled")
	}

	if err := res.Caps.Store.SaveHighScore(17); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}
	score, err := res.Caps.Store.LoadHighScore()
	if err != nil || score != 17 {
		t.Errorf("LoadHighScore() = %d, %v; expected 17, nil", score, err)
	}
}

func TestOpenStoreFailure(t *testing.T) {
	var buf bytes.Buffer
	cfg := silentConfig(t)

	// A regular file where a directory is expected
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg.DBPath = filepath.Join(blocker, "scores.db")

	res := Open(cfg, Options{}, testLogger(&buf))
	defer res.Close()

	if res.Caps.Store != nil {
		t.Error("store should be absent when the database cannot be opened")
	}
	if !strings.Contains(buf.String(), "could not open scores database") {
		t.Errorf("expected warning, log: %s", buf.String())
	}

	// The game must still run with the missing capability
	g := flappy.New(res.Caps)
	g.Reset(core.RuntimeConfig{ScreenW: 54, ScreenH: 76, TickRate: 60, Seed: 1})
	if g.State().HighScore != 0 {
		t.Error("high score should default to 0")
	}
}

type brokenStore struct{}

func (brokenStore) LoadHighScore() (int, error) { return 0, errors.New("disk gone") }
func (brokenStore) SaveHighScore(int) error     { return errors.New("disk gone") }

func TestLoggedStoreReportsFailures(t *testing.T) {
	var buf bytes.Buffer
	s := &loggedStore{HighScoreStore: brokenStore{}, logger: testLogger(&buf)}

	if _, err := s.LoadHighScore(); err == nil {
		t.Error("load error should be passed through")
	}
	if err := s.SaveHighScore(3); err == nil {
		t.Error("save error should be passed through")
	}

	out := buf.String()
	if !strings.Contains(out, "high score load failed") || !strings.Contains(out, "high score save failed") {
		t.Errorf("failures should be logged: %s", out)
	}
}

func TestResourcesCloseIdempotent(t *testing.T) {
	var buf bytes.Buffer
	res := Open(silentConfig(t), Options{Mute: true}, testLogger(&buf))

	if err := res.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}
	if err := res.Close(); err != nil {
		t.Errorf("second Close() failed: %v", err)
	}
}

func TestRuntimeConfig(t *testing.T) {
	cfg := config.Default()
	cfg.TickRate = 30
	cfg.Seed = 99

	rc := RuntimeConfig(cfg, 80, 24)
	if rc.ScreenW != 80 || rc.ScreenH != 24 || rc.TickRate != 30 || rc.Seed != 99 {
		t.Errorf("RuntimeConfig() = %+v", rc)
	}
}
