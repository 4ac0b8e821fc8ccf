package flappy

import "math/rand"

// Spawner creates pipes on a fixed tick cadence.
type Spawner struct {
	tick int
	rng  *rand.Rand
}

// NewSpawner creates a spawner drawing gap positions from rng.
func NewSpawner(rng *rand.Rand) *Spawner {
	return &Spawner{rng: rng}
}

// Reset restarts the tick counter for a new run.
func (s *Spawner) Reset() {
	s.tick = 0
}

// Ticks returns the number of ticks counted since the last reset.
func (s *Spawner) Ticks() int {
	return s.tick
}

// Update counts one tick and appends a new pipe every SpawnInterval ticks.
// The gap of the new pipe follows the difficulty curve for score.
func (s *Spawner) Update(pipes []Pipe, score int) []Pipe {
	s.tick++
	if s.tick%SpawnInterval != 0 {
		return pipes
	}
	return append(pipes, NewPipe(SpawnX, GapSize(score), s.rng))
}

// Prune removes pipes that have fully left the screen, keeping order.
func Prune(pipes []Pipe) []Pipe {
	visible := pipes[:0]
	for _, p := range pipes {
		if p.Right() > PruneX {
			visible = append(visible, p)
		}
	}
	return visible
}
