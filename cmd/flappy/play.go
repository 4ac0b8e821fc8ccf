package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/logging"
	"github.com/vovakirdan/tui-flappy/internal/platform"
	tcellfront "github.com/vovakirdan/tui-flappy/internal/platform/term"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start playing Flappy Bird.

Controls:
  Space/Up/W - Flap (also starts a run)
  Enter      - Start
  P/Esc      - Pause
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Examples:
  flappy play
  flappy play --frontend tcell
  flappy play --seed 42
  flappy play --config ./my-flappy.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

// newPlayLogger opens the log file for a game session. The terminal belongs
// to the game, so log lines only go to the file; an unusable file is
// reported on warn and logging is dropped.
func newPlayLogger(cfg config.Config, warn io.Writer) (*log.Logger, io.Closer) {
	return logging.NewOrFallback(cfg.Log, io.Discard, warn)
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	logger, logCloser := newPlayLogger(cfg, cmd.ErrOrStderr())
	defer logCloser.Close()

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	res := platform.Open(cfg, platform.Options{Mute: flagMute}, logger)
	defer func() {
		if closeErr := res.Close(); closeErr != nil {
			logger.Warn("close failed", "error", closeErr)
		}
	}()

	game := flappy.New(res.Caps)
	rc := platform.RuntimeConfig(cfg, width, height)

	logger.Info("starting", "frontend", cfg.Frontend, "fps", cfg.TickRate, "seed", cfg.Seed)

	var runErr error
	switch cfg.Frontend {
	case config.FrontendTcell:
		runErr = tcellfront.Run(game, rc, logger)
	default:
		runErr = tui.Run(game, rc, logger)
	}
	if runErr != nil {
		logger.Error("game failed", "error", runErr)
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}
