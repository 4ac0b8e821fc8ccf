package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration.
// It matches defaults/flappy.yaml.
func Default() Config {
	return Config{
		TickRate: 60,
		Seed:     0,
		DBPath:   "~/.arcade/scores.db",
		Frontend: FrontendTea,
		Sound: SoundConfig{
			Enabled:    true,
			SampleRate: 44100,
			Volume:     1.0,
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.arcade/flappy.log",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
