// Package tui hosts the runner in a terminal: the Bubble Tea display loop,
// key bindings, asset loading, the variant menu and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg carries the wall-clock time of one display tick.
type TickMsg time.Time

// tickCmd schedules the next display tick. The model re-arms it after every
// tick, so a slow frame delays the next one instead of queueing ticks.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
