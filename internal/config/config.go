// Package config provides YAML-based application configuration loading for
// the game: frame rate, storage location, frontend, sound and logging.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Frontend names.
const (
	FrontendTea   = "tea"
	FrontendTcell = "tcell"
)

// Config contains all application settings.
type Config struct {
	TickRate int         `yaml:"tick_rate"`
	Seed     int64       `yaml:"seed"`
	DBPath   string      `yaml:"db_path"`
	Frontend string      `yaml:"frontend"`
	Sound    SoundConfig `yaml:"sound"`
	Log      LogConfig   `yaml:"log"`
}

// SoundConfig controls the optional audio output.
type SoundConfig struct {
	Enabled    bool    `yaml:"enabled"`
	SampleRate int     `yaml:"sample_rate"`
	Volume     float64 `yaml:"volume"` // 0.0 - 1.0, scales every effect
}

// LogConfig controls the application logger.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // Empty means stderr
}

// Validate fills zero values with defaults and rejects settings the game
// cannot run with.
func (c *Config) Validate() error {
	def := Default()

	if c.TickRate == 0 {
		c.TickRate = def.TickRate
	}
	if c.TickRate < 1 || c.TickRate > 240 {
		return fmt.Errorf("config: tick_rate %d out of range 1-240", c.TickRate)
	}

	if c.DBPath == "" {
		c.DBPath = def.DBPath
	}

	c.Frontend = strings.ToLower(strings.TrimSpace(c.Frontend))
	switch c.Frontend {
	case "":
		c.Frontend = def.Frontend
	case FrontendTea, FrontendTcell:
	default:
		return fmt.Errorf("config: unknown frontend %q (want %s or %s)", c.Frontend, FrontendTea, FrontendTcell)
	}

	if c.Sound.SampleRate == 0 {
		c.Sound.SampleRate = def.Sound.SampleRate
	}
	if c.Sound.Volume < 0 || c.Sound.Volume > 1 {
		return fmt.Errorf("config: sound volume %.2f out of range 0-1", c.Sound.Volume)
	}

	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}

	return nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
