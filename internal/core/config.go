package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The frontends fill it from the terminal size and the application config.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of the game as seen by a frontend.
type GameState struct {
	Score     int  // Current score
	HighScore int  // Best score across sessions
	GameOver  bool // Whether the last run has ended
	Paused    bool // Whether the run is paused
}

// StepResult is returned by Step after each simulation tick.
type StepResult struct {
	State GameState
	Quit  bool // The player asked to leave; the frontend exits after this tick
}
