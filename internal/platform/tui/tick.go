// Package tui provides the Bubble Tea integration: the play loop, input
// mapping, board rendering, the level picker, and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives animation playback.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the
// given interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
