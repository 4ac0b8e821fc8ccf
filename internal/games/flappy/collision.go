package flappy

// HitKind tells what ended a run.
type HitKind int

const (
	HitNone HitKind = iota
	HitCeiling
	HitGround
	HitPipe
)

// String returns a human-readable name for the hit.
func (h HitKind) String() string {
	switch h {
	case HitNone:
		return "none"
	case HitCeiling:
		return "ceiling"
	case HitGround:
		return "ground"
	case HitPipe:
		return "pipe"
	default:
		return "unknown"
	}
}

// Outcome is the result of evaluating one tick.
type Outcome struct {
	Scored int     // Pipes passed this tick
	Hit    HitKind // First collision found, HitNone if the bird survived
}

// GameOver reports whether the tick ended the run.
func (o Outcome) GameOver() bool {
	return o.Hit != HitNone
}

// Evaluate scores passed pipes and checks the bird against the boundaries and
// every pipe. Pipes whose trailing edge is left of the bird are marked passed
// and counted once. Scoring runs before collision, so a pipe can be scored on
// the same tick that ends the run. The first collision found wins.
func Evaluate(b Bird, pipes []Pipe) Outcome {
	var out Outcome

	for i := range pipes {
		if !pipes[i].Passed && pipes[i].Right() < b.X {
			pipes[i].Passed = true
			out.Scored++
		}
	}

	box := b.Rect()

	switch {
	case box.Y <= 0:
		out.Hit = HitCeiling
		return out
	case box.Bottom() >= GroundY:
		out.Hit = HitGround
		return out
	}

	for _, p := range pipes {
		if box.Intersects(p.TopRect()) || box.Intersects(p.BottomRect()) {
			out.Hit = HitPipe
			return out
		}
	}

	return out
}
