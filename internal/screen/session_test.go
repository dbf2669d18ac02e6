package screen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/breakout/internal/config"
	"github.com/vovakirdan/breakout/internal/input"
	"github.com/vovakirdan/breakout/internal/instruction"
	"github.com/vovakirdan/breakout/internal/settings"
)

func newSession(s settings.Settings) *SettingsSession {
	return NewSettingsSession(s, config.DefaultBreakoutConfig().World)
}

func TestSessionSelectorMovesOnlyWithoutPendingEdit(t *testing.T) {
	s := newSession(settings.Default())

	_, ui := s.Update(pressed(input.ActionUp))
	require.Len(t, ui, 1)
	assert.Equal(t, instruction.Selector{X: 400, Y: 240, Width: 600}, ui[0])

	_, ui = s.Update(pressed(input.ActionUp)) // wraps
	assert.Equal(t, instruction.Selector{X: 400, Y: 420, Width: 400}, ui[0])

	s.Update(pressed(input.ActionRight))
	require.True(t, s.Changed())
	_, ui = s.Update(pressed(input.ActionDown))
	assert.Equal(t, instruction.Selector{X: 400, Y: 420, Width: 400}, ui[0], "selector is locked while an edit is pending")

	s.Update(pressed(input.ActionConfirm))
	assert.False(t, s.Changed())
	_, ui = s.Update(pressed(input.ActionDown))
	assert.Equal(t, 240.0, ui[0].(instruction.Selector).Y)
}

func TestSessionResolutionWraps(t *testing.T) {
	s := newSession(settings.Default())
	s.Update(pressed(input.ActionDown)) // resolution row

	s.Update(pressed(input.ActionLeft))
	assert.Equal(t, settings.Resolutions[2], s.Pending().Graphics)

	s.Update(pressed(input.ActionRight))
	s.Update(pressed(input.ActionRight))
	assert.Equal(t, settings.Resolutions[1], s.Pending().Graphics)

	committed, _ := s.Update(pressed(input.ActionConfirm))
	require.NotNil(t, committed)
	assert.Equal(t, settings.Settings{FPS: 60, Graphics: settings.Resolutions[1]}, *committed)
	assert.Equal(t, *committed, s.Settings())
}

func TestSessionFPSFloor(t *testing.T) {
	s := newSession(settings.Settings{FPS: settings.MinFPS, Graphics: settings.Resolutions[0]})

	s.Update(pressed(input.ActionLeft))
	s.Update(pressed(input.ActionLeft))

	assert.Equal(t, settings.MinFPS, s.Pending().FPS)
}

func TestSessionUnknownResolutionStartsAtFirst(t *testing.T) {
	s := newSession(settings.Settings{FPS: 30, Graphics: settings.GraphicsSettings{ResolutionWidth: 1, ResolutionHeight: 1}})

	assert.Equal(t, settings.Resolutions[0], s.Pending().Graphics)

	// Confirming switches to a listed resolution.
	committed, _ := s.Update(pressed(input.ActionConfirm))
	require.NotNil(t, committed)
	assert.Equal(t, settings.Resolutions[0], committed.Graphics)
}

func TestSessionIgnoresHeldKeys(t *testing.T) {
	s := newSession(settings.Default())

	committed, _ := s.Update(held(input.ActionRight, input.ActionConfirm))

	assert.Nil(t, committed)
	assert.False(t, s.Changed())
	assert.Equal(t, 60, s.Pending().FPS)
}

func TestScreenTextCounts(t *testing.T) {
	world := config.DefaultBreakoutConfig().World
	tests := []struct {
		state State
		want  int
	}{
		{StateMenu, 5},
		{StatePause, 2},
		{StateGameOver, 3},
		{StateGameWin, 3},
		{StatePrePlay, 1},
		{StateInstructions, 9},
		{StatePlay, 0},
		{StateQuit, 0},
		{StateSettings, 0}, // no session
	}
	for _, tc := range tests {
		t.Run(tc.state.String(), func(t *testing.T) {
			assert.Len(t, screenText(tc.state, world, nil), tc.want)
		})
	}

	ui := screenText(StateSettings, world, newSession(settings.Default()))
	assert.Len(t, ui, 5)
}
