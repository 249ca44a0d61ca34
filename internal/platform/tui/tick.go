// Package tui runs the game in a terminal through Bubble Tea, locally or over
// SSH. It owns the frame clock, key mapping, hold detection and persistence.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg marks one simulation frame.
type TickMsg time.Time

// frameInterval is the wall time of one frame at rate frames per second.
func frameInterval(rate int) time.Duration {
	if rate <= 0 {
		rate = 1
	}
	return time.Second / time.Duration(rate)
}

// nextFrame schedules the following TickMsg.
func nextFrame(rate int) tea.Cmd {
	return tea.Tick(frameInterval(rate), func(t time.Time) tea.Msg { return TickMsg(t) })
}
