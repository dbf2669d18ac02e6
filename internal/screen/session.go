package screen

import (
	"github.com/vovakirdan/breakout/internal/config"
	"github.com/vovakirdan/breakout/internal/input"
	"github.com/vovakirdan/breakout/internal/instruction"
	"github.com/vovakirdan/breakout/internal/settings"
)

// Rows of the settings screen, top to bottom.
const (
	rowResolution = iota
	rowFPS
	numRows
)

var (
	rowWidths = [numRows]float64{600, 400}
	rowY      = [numRows]float64{0.4, 0.7} // fraction of the world height
)

// SettingsSession edits a working copy of the settings. Edits stay pending
// until confirmed; while an edit is pending the selector cannot move.
type SettingsSession struct {
	committed settings.Settings
	world     config.BreakoutWorld

	tempFPS        int
	tempResolution int // index into settings.Resolutions
	selected       int
	changed        bool
}

// NewSettingsSession starts a session on a copy of current with the FPS row
// selected.
func NewSettingsSession(current settings.Settings, world config.BreakoutWorld) *SettingsSession {
	return &SettingsSession{
		committed:      current,
		world:          world,
		tempFPS:        current.FPS,
		tempResolution: settings.ResolutionIndex(current.Graphics),
		selected:       rowFPS,
	}
}

// Update applies this frame's newly pressed keys. It returns the new
// settings when a confirm changed them (nil otherwise) and the selector to
// draw.
func (s *SettingsSession) Update(snap input.Snapshot) (*settings.Settings, []instruction.UIElement) {
	var committed *settings.Settings

	switch {
	case snap.JustPressed(input.ActionDown) && !s.changed:
		s.selected = (s.selected + 1) % numRows
	case snap.JustPressed(input.ActionUp) && !s.changed:
		s.selected = (s.selected + numRows - 1) % numRows
	case snap.JustPressed(input.ActionRight):
		s.adjust(1)
	case snap.JustPressed(input.ActionLeft):
		s.adjust(-1)
	case snap.JustPressed(input.ActionConfirm):
		s.changed = false
		next := settings.Settings{
			FPS:      s.tempFPS,
			Graphics: settings.Resolutions[s.tempResolution],
		}
		if next != s.committed {
			s.committed = next
			committed = &next
		}
	}

	return committed, []instruction.UIElement{s.selector()}
}

func (s *SettingsSession) adjust(delta int) {
	switch s.selected {
	case rowResolution:
		n := len(settings.Resolutions)
		s.tempResolution = ((s.tempResolution+delta)%n + n) % n
	case rowFPS:
		s.tempFPS = max(s.tempFPS+delta, settings.MinFPS)
	}
	s.changed = true
}

func (s *SettingsSession) selector() instruction.Selector {
	return instruction.Selector{
		X:     s.world.Width / 2,
		Y:     rowY[s.selected] * s.world.Height,
		Width: rowWidths[s.selected],
	}
}

// Settings returns the last committed settings.
func (s *SettingsSession) Settings() settings.Settings {
	return s.committed
}

// Pending returns the values shown on screen, confirmed or not.
func (s *SettingsSession) Pending() settings.Settings {
	return settings.Settings{FPS: s.tempFPS, Graphics: settings.Resolutions[s.tempResolution]}
}

// Changed reports whether an edit is waiting for confirmation.
func (s *SettingsSession) Changed() bool {
	return s.changed
}
