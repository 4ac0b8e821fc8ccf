package flappy

import "math"

// GapSize returns the pipe gap for the given score. The gap shrinks by
// GapShrinkPerPoint per point and bottoms out at MinGap.
func GapSize(score int) int {
	return max(MinGap, StartGap-GapShrinkPerPoint*score)
}

// ScrollSpeed returns how far pipes move per tick at the given score.
func ScrollSpeed(score int) float64 {
	return BaseSpeed + math.Min(SpeedCapDelta, SpeedGrowth*float64(score))
}
