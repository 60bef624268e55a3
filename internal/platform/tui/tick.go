// Package tui runs the city walk on Bubble Tea. The tea loop owns timing
// and key input; every frame is drawn by the scene compositor into a
// core.Screen and converted to lipgloss-styled text.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to advance the animation by one frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
