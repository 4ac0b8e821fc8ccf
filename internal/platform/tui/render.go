package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// palette holds the lipgloss style of every cell color the game draws.
// Numbers are ANSI 256-color indexes.
var palette = map[core.Color]lipgloss.Style{
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")), // pipe body
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")), // bird
	core.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")), // pipe caps
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightWhite:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")), // beak
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorTan:          lipgloss.NewStyle().Foreground(lipgloss.Color("180")), // ground
}

// RenderScreen paints the game screen as one string of styled rows.
// Cells are batched into runs of one color; default-colored runs (the open
// sky, mostly) are written without escape codes.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	run := make([]rune, 0, s.Width())
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}

		run = run[:0]
		color := s.GetCell(0, y).Color
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != color {
				writeRun(&sb, color, run)
				run, color = run[:0], cell.Color
			}
			run = append(run, cell.Rune)
		}
		writeRun(&sb, color, run)
	}
	return sb.String()
}

// writeRun appends runes drawn in color c.
func writeRun(sb *strings.Builder, c core.Color, runes []rune) {
	if len(runes) == 0 {
		return
	}
	style, ok := palette[c]
	if !ok {
		sb.WriteString(string(runes))
		return
	}
	sb.WriteString(style.Render(string(runes)))
}
