package flappy

// Snapshot captures the complete game state for rendering, determinism
// testing and replay.
type Snapshot struct {
	Tick      int
	Mode      Mode
	Score     int
	HighScore int
	Speed     float64
	Paused    bool
	LastHit   HitKind
	Bird      Bird
	Pipes     []Pipe // Copy; safe to keep after the next Step
}

// Snapshot returns a copy of the current game state.
func (g *Game) Snapshot() Snapshot {
	pipes := make([]Pipe, len(g.pipes))
	copy(pipes, g.pipes)

	return Snapshot{
		Tick:      g.spawner.Ticks(),
		Mode:      g.mode,
		Score:     g.score,
		HighScore: g.highScore,
		Speed:     g.speed,
		Paused:    g.paused,
		LastHit:   g.lastHit,
		Bird:      g.bird,
		Pipes:     pipes,
	}
}
