package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// loadSettings loads the config file and applies the flags the user set.
func loadSettings(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.TickRate = flagFPS
	}
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flags.Changed("db") {
		cfg.DBPath = flagDBPath
	}
	if flags.Changed("frontend") {
		cfg.Frontend = flagFrontend
	}
	if flagMute {
		cfg.Sound.Enabled = false
	}

	// Flags may carry invalid values
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
