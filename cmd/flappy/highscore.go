package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var flagReset bool

var highscoreCmd = &cobra.Command{
	Use:   "highscore",
	Short: "Show the stored high score",
	Long: `Display the best score recorded on this machine.

Examples:
  flappy highscore
  flappy highscore --reset
  flappy highscore --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runHighscore,
}

func init() {
	highscoreCmd.Flags().BoolVar(&flagReset, "reset", false, "Clear the stored high score")
}

func runHighscore(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagReset {
		if err := store.ClearHighScore(flappy.ID); err != nil {
			return err
		}
		fmt.Fprintln(out, "High score cleared.")
		return nil
	}

	entry, err := store.HighScoreEntry(flappy.ID)
	if errors.Is(err, storage.ErrNoHighScore) {
		fmt.Fprintln(out, "No high score recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'flappy play' to set the first one!")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "High Score: %d\n", entry.Score)
	if !entry.UpdatedAt.IsZero() {
		fmt.Fprintf(out, "Set on:     %s\n", entry.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
