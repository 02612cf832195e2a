// Package tui provides the Bubble Tea integration for the demo platform.
// It handles the terminal UI loop, input mapping, menus and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick. Loop identifies the model
// instance that scheduled it, so ticks left over from a closed demo are
// dropped instead of doubling the rate of the next one.
type TickMsg struct {
	Time time.Time
	Loop int
}

// tickCmd returns a Bubble Tea command that sends tick messages at the
// specified rate. Non-positive rates fall back to 60 ticks per second.
func tickCmd(tickRate, loop int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Loop: loop}
	})
}
