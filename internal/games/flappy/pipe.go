package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Pipe represents a vertical obstacle with a gap for the bird to pass through.
type Pipe struct {
	X         float64 // Horizontal position (left edge)
	GapSize   int     // Height of the passable gap
	GapTop    int     // Y where the gap starts
	GapBottom int     // Y where the gap ends, always GapTop + GapSize
	Passed    bool    // Whether the bird has passed this pipe (for scoring)
}

// NewPipe creates a pipe at x with a gap of the given size placed at random
// between the top margin and the ground margin.
func NewPipe(x float64, gapSize int, rng *rand.Rand) Pipe {
	minTop := PipeMargin
	maxTop := GroundY - PipeMargin - gapSize
	if maxTop < minTop {
		maxTop = minTop // Gap too large for the playfield
	}

	top := minTop + rng.Intn(maxTop-minTop+1)

	return Pipe{
		X:         x,
		GapSize:   gapSize,
		GapTop:    top,
		GapBottom: top + gapSize,
	}
}

// Advance scrolls the pipe left by speed.
func (p *Pipe) Advance(speed float64) {
	p.X -= speed
}

// Right returns the x-coordinate of the trailing edge.
func (p Pipe) Right() float64 {
	return p.X + PipeWidth
}

// TopRect returns the collision rectangle of the upper barrier.
func (p Pipe) TopRect() core.RectF {
	return core.NewRectF(p.X, 0, PipeWidth, float64(p.GapTop))
}

// BottomRect returns the collision rectangle of the lower barrier, which
// reaches down to the ground line.
func (p Pipe) BottomRect() core.RectF {
	return core.NewRectF(p.X, float64(p.GapBottom), PipeWidth, float64(GroundY-p.GapBottom))
}
