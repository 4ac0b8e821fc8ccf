package flappy

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Render draws the current game state to the screen, scaling the playfield
// to the screen size.
func (g *Game) Render(dst *core.Screen) {
	RenderSnapshot(dst, g.Snapshot())
}

// RenderSnapshot draws s into dst. It is exported so frontends can render a
// snapshot taken earlier.
func RenderSnapshot(dst *core.Screen, s Snapshot) {
	dst.Clear()
	v := newViewport(dst)

	for _, p := range s.Pipes {
		v.drawPipe(dst, p)
	}
	v.drawGround(dst)

	switch s.Mode {
	case ModeMenu:
		v.drawBird(dst, s.Bird)
		drawPanel(dst, core.ColorBrightYellow,
			"Flappy Bird",
			"",
			"Press SPACE to start",
			"Use SPACE to flap. Press Q to quit.",
		)
		return

	case ModeGameOver:
		v.drawBird(dst, s.Bird)
		drawPanel(dst, core.ColorBrightWhite,
			"Game Over",
			"",
			fmt.Sprintf("Score: %d", s.Score),
			fmt.Sprintf("High Score: %d", s.HighScore),
			"",
			"Press SPACE to play again or Q to quit.",
		)
		return
	}

	v.drawBird(dst, s.Bird)
	drawHUD(dst, s)

	if s.Paused {
		drawPanel(dst, core.ColorBrightWhite, "PAUSED", "Press P to resume")
	}
}

// viewport maps playfield units onto screen cells.
type viewport struct {
	sx, sy float64 // cells per playfield unit
}

func newViewport(dst *core.Screen) viewport {
	return viewport{
		sx: float64(dst.Width()) / PlayfieldWidth,
		sy: float64(dst.Height()) / PlayfieldHeight,
	}
}

// groundRow returns the first screen row covered by the ground.
func (v viewport) groundRow() int {
	return int(GroundY * v.sy)
}

// drawPipe renders a single pipe.
func (v viewport) drawPipe(dst *core.Screen, p Pipe) {
	dst.SetColor(core.ColorGreen)

	top := p.TopRect().Scale(v.sx, v.sy)
	dst.DrawRect(top, PipeChar)

	bottom := p.BottomRect().Scale(v.sx, v.sy)
	dst.DrawRect(bottom, PipeChar)

	// Caps facing the gap
	dst.SetColor(core.ColorBrightGreen)
	if top.H > 0 {
		dst.DrawHLine(top.X, top.Bottom()-1, top.W, PipeCapTop)
	}
	if bottom.H > 0 {
		dst.DrawHLine(bottom.X, bottom.Y, bottom.W, PipeCapBottom)
	}
}

// drawGround fills everything below the ground line.
func (v viewport) drawGround(dst *core.Screen) {
	row := v.groundRow()

	dst.SetColor(core.ColorTan)
	dst.DrawHLine(0, row, dst.Width(), GroundChar)
	for y := row + 1; y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), DirtChar)
	}
}

// drawBird renders the bird box with its heading glyph at the front.
func (v viewport) drawBird(dst *core.Screen, b Bird) {
	r := b.Rect().Scale(v.sx, v.sy)

	dst.SetColor(core.ColorYellow)
	dst.DrawRect(r, BirdChar)

	dst.SetColor(core.ColorOrange)
	dst.Set(r.Right()-1, r.Y+r.H/2, b.Glyph())
}

// drawHUD shows the score and the high score.
func drawHUD(dst *core.Screen, s Snapshot) {
	dst.SetColor(core.ColorBrightWhite)
	dst.DrawTextCentered(1, fmt.Sprintf(" %d ", s.Score))

	dst.SetColor(core.ColorBrightYellow)
	dst.DrawText(1, 0, fmt.Sprintf("High: %d", s.HighScore))
}

// drawPanel draws a boxed block of centered lines in the middle of the screen.
func drawPanel(dst *core.Screen, color core.Color, lines ...string) {
	w := dst.Width()
	h := dst.Height()

	textW := 0
	for _, l := range lines {
		textW = core.Max(textW, len([]rune(l)))
	}

	boxW := core.Min(textW+4, w)
	boxH := core.Min(len(lines)+2, h)
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2
	box := core.NewRect(boxX, boxY, boxW, boxH)

	dst.SetColor(core.ColorDefault)
	dst.DrawRect(box, ' ')
	dst.SetColor(core.ColorGray)
	dst.DrawBox(box)

	dst.SetColor(color)
	for i, l := range lines {
		dst.DrawTextCentered(boxY+1+i, l)
	}
}
