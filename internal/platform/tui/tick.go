// Package tui hosts the invaders session inside Bubble Tea, locally or over
// SSH. It maps terminal input onto the session and draws its screen.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per rendered frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends the next frame message.
// The session's loop turns irregular frames into fixed simulation ticks, so
// fps only affects smoothness.
func tickCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
