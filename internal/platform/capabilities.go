// Package platform wires the game to its optional collaborators and hosts
// the terminal frontends in its subpackages.
package platform

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// Resources holds the capabilities opened for a session and the handles
// that must be released on exit.
type Resources struct {
	Caps    flappy.Capabilities
	closers []io.Closer
}

// Options tweak which capabilities Open attempts.
type Options struct {
	Mute bool // Skip audio even when enabled in config
}

// Open opens the high-score store and the audio player described by cfg.
// Failures are logged as warnings and leave the capability absent; the game
// runs without it.
func Open(cfg config.Config, opts Options, logger *log.Logger) *Resources {
	r := &Resources{}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", cfg.DBPath, "error", err)
	} else {
		r.Caps.Store = &loggedStore{
			HighScoreStore: store.ForGame(flappy.ID),
			logger:         logger,
		}
		r.closers = append(r.closers, store)
	}

	if cfg.Sound.Enabled && !opts.Mute {
		player, err := audio.New(cfg.Sound)
		if err != nil {
			logger.Warn("audio unavailable, running silent", "error", err)
		} else {
			r.Caps.Sound = player
			r.closers = append(r.closers, player)
		}
	}

	logger.Debug("capabilities opened",
		"store", r.Caps.Store != nil,
		"sound", r.Caps.Sound != nil,
	)
	return r
}

// Close releases every opened handle in reverse order.
func (r *Resources) Close() error {
	var errs []error
	for i := len(r.closers) - 1; i >= 0; i-- {
		if err := r.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	r.closers = nil
	return errors.Join(errs...)
}

// loggedStore reports store failures at debug level. The game itself
// ignores them.
type loggedStore struct {
	flappy.HighScoreStore
	logger *log.Logger
}

func (s *loggedStore) LoadHighScore() (int, error) {
	score, err := s.HighScoreStore.LoadHighScore()
	if err != nil {
		s.logger.Debug("high score load failed", "error", err)
	}
	return score, err
}

func (s *loggedStore) SaveHighScore(score int) error {
	err := s.HighScoreStore.SaveHighScore(score)
	if err != nil {
		s.logger.Debug("high score save failed", "score", score, "error", err)
		return err
	}
	s.logger.Info("new high score", "score", score)
	return nil
}

// RuntimeConfig builds the simulation settings for a screen of w x h cells.
func RuntimeConfig(cfg config.Config, w, h int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  w,
		ScreenH:  h,
		TickRate: cfg.TickRate,
		Seed:     cfg.Seed,
	}
}
