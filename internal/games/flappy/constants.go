package flappy

// Playfield geometry in pixel units. The renderer scales these onto the
// terminal grid, so collision geometry does not depend on terminal size.
const (
	PlayfieldWidth  = 540
	PlayfieldHeight = 760
	GroundHeight    = 110
	GroundY         = PlayfieldHeight - GroundHeight // y of the ground line
)

// Physics constants - tuned for playability at 60 ticks per second.
const (
	Gravity      = 0.45 // Downward acceleration per tick
	FlapVelocity = -9.0 // Velocity set by a flap (negative = up)
	BirdX        = 120  // Fixed horizontal position of the bird center
	BirdSize     = 72   // Bird hitbox width and height
)

// Obstacle and difficulty constants.
const (
	PipeWidth         = 90
	PipeMargin        = 80  // Minimum distance of a gap from the top and from the ground
	StartGap          = 300 // Gap size at score 0
	MinGap            = 140 // Gap never shrinks below this
	GapShrinkPerPoint = 3
	BaseSpeed         = 4.0
	SpeedGrowth       = 0.05 // Extra speed per point
	SpeedCapDelta     = 2.5  // Speed never exceeds BaseSpeed + SpeedCapDelta
	SpawnInterval     = 90   // Ticks between two pipes
	SpawnX            = PlayfieldWidth + 40
	PruneX            = -50 // Pipes whose right edge reaches this are dropped
)

// Visual characters for rendering
const (
	BirdChar      = '●'
	BirdRising    = '▲'
	BirdLevel     = '▶'
	BirdDiving    = '▼'
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
	GroundChar    = '═'
	DirtChar      = '▒'
)
