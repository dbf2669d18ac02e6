// Package tui runs Breakout in a terminal with Bubble Tea, locally or over
// SSH. It maps keys to input actions, rasterizes each frame's graphics onto
// a cell grid and records finished runs.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/breakout/internal/settings"
)

// TickMsg is sent to trigger a frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after one frame at
// the given rate.
func tickCmd(fps int) tea.Cmd {
	return tea.Tick(frameInterval(fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func frameInterval(fps int) time.Duration {
	return time.Second / time.Duration(max(fps, settings.MinFPS))
}
