// Package tui runs the game under Bubble Tea: one TickMsg per simulation
// step, keys collected between ticks, the screen painted with lipgloss.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// defaultTickRate is used when the configured rate is not positive.
const defaultTickRate = 60

// TickMsg asks the model to advance the simulation one step.
type TickMsg time.Time

// tickInterval returns the frame period for rate steps per second.
func tickInterval(rate int) time.Duration {
	if rate <= 0 {
		rate = defaultTickRate
	}
	return time.Second / time.Duration(rate)
}

// tickCmd schedules the next simulation step.
func tickCmd(rate int) tea.Cmd {
	return tea.Tick(tickInterval(rate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
