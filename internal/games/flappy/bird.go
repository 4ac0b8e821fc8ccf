package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Bird is the player-controlled avatar. Y grows downward, as does Vel.
type Bird struct {
	X   float64 // Center x, fixed for the whole run
	Y   float64 // Center y
	Vel float64 // Vertical velocity
}

// NewBird returns a bird at rest in the middle of the playfield.
func NewBird() Bird {
	return Bird{
		X: BirdX,
		Y: PlayfieldHeight / 2,
	}
}

// ApplyGravity accelerates the bird downward by one tick of gravity.
func (b *Bird) ApplyGravity() {
	b.Vel += Gravity
}

// Flap overrides the current velocity with the fixed upward impulse.
func (b *Bird) Flap() {
	b.Vel = FlapVelocity
}

// Integrate moves the bird by its current velocity.
func (b *Bird) Integrate() {
	b.Y += b.Vel
}

// Update advances the bird by one tick: gravity, then movement.
func (b *Bird) Update() {
	b.ApplyGravity()
	b.Integrate()
}

// Rect returns the collision box centered on the bird.
func (b Bird) Rect() core.RectF {
	return core.CenteredRectF(b.X, b.Y, BirdSize, BirdSize)
}

// Rotation returns the display tilt in degrees, positive meaning nose up.
// It has no effect on gameplay.
func (b Bird) Rotation() float64 {
	return core.ClampF(-b.Vel*3, -25, 45)
}

// Glyph picks the rune that shows the bird's heading.
func (b Bird) Glyph() rune {
	switch r := b.Rotation(); {
	case r > 10:
		return BirdRising
	case r < -10:
		return BirdDiving
	default:
		return BirdLevel
	}
}
