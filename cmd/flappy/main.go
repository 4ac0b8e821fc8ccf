// flappy is a Flappy Bird game for the terminal.
//
// Usage:
//
//	flappy                   - Play (same as 'flappy play')
//	flappy play              - Play the game
//	flappy highscore         - Show the stored high score
//	flappy highscore --reset - Clear the stored high score
//	flappy config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.arcade/scores.db)
//	--config <path>     - Use a custom config YAML
//	--frontend <name>   - Terminal frontend: tea or tcell
//	--mute              - Disable sound
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagFrontend string
	flagMute     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Bird in your terminal",
	Long: `Flappy Bird for the terminal. Flap through the gaps between the
pipes without touching them, the ceiling or the ground.

Available commands:
  play       - Play the game (default)
  highscore  - Show or reset the stored high score
  config     - Print the effective configuration

Examples:
  flappy
  flappy play --frontend tcell
  flappy play --seed 42 --mute
  flappy highscore --reset`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	// Global persistent flags; zero values defer to the config file
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second, default from config: 60)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (default from config: ~/.arcade/scores.db)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagFrontend, "frontend", "", "Terminal frontend: tea or tcell")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(highscoreCmd)
	rootCmd.AddCommand(configCmd)
}
