package instruction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/breakout/internal/entity"
	"github.com/vovakirdan/breakout/internal/settings"
)

func TestAudioMergeConcatenatesInOrder(t *testing.T) {
	a := Audio{Sounds: []Sound{SoundWin}}
	b := Audio{Sounds: []Sound{SoundHit, SoundBlock}}

	merged := a.Merge(b)

	assert.Equal(t, []Sound{SoundWin, SoundHit, SoundBlock}, merged.Sounds)
	assert.Equal(t, MusicNone, merged.Music)
}

func TestAudioMergeMusicPriority(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Music
		expected Music
	}{
		{"first wins", MusicVictory, MusicGameplay, MusicVictory},
		{"falls back to second", MusicNone, MusicGameOver, MusicGameOver},
		{"both absent", MusicNone, MusicNone, MusicNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			merged := Audio{Music: tc.a}.Merge(Audio{Music: tc.b})
			assert.Equal(t, tc.expected, merged.Music)
		})
	}
}

func TestAudioMergeDoesNotAliasOperands(t *testing.T) {
	backing := make([]Sound, 1, 4)
	backing[0] = SoundHit
	a := Audio{Sounds: backing}

	merged := a.Merge(Audio{Sounds: []Sound{SoundBlock}})
	merged.Sounds[0] = SoundWin

	assert.Equal(t, SoundHit, a.Sounds[0], "merge must not write through to the first operand")
	assert.Len(t, a.Sounds, 1)
}

func TestAudioEmpty(t *testing.T) {
	assert.True(t, Audio{}.Empty())
	assert.True(t, Audio{}.Merge(Audio{}).Empty())
	assert.False(t, Audio{Music: MusicMenu}.Empty())
}

func TestGraphicsMerge(t *testing.T) {
	first := settings.GraphicsSettings{ResolutionWidth: 1080, ResolutionHeight: 720}
	second := settings.GraphicsSettings{ResolutionWidth: 400, ResolutionHeight: 300}

	a := Graphics{
		Objects:        []entity.Object{entity.Paddle{}},
		UI:             []UIElement{NewMessage("PAUSED", 50, 400, 300)},
		SettingsChange: &first,
	}
	b := Graphics{
		Objects:        []entity.Object{entity.Ball{}, entity.Block{}},
		UI:             []UIElement{Selector{X: 400, Y: 240, Width: 600}},
		SettingsChange: &second,
	}

	merged := a.Merge(b)

	require.Len(t, merged.Objects, 3)
	assert.IsType(t, entity.Paddle{}, merged.Objects[0])
	assert.IsType(t, entity.Block{}, merged.Objects[2])
	require.Len(t, merged.UI, 2)
	assert.IsType(t, Message{}, merged.UI[0])
	assert.IsType(t, Selector{}, merged.UI[1])
	require.NotNil(t, merged.SettingsChange)
	assert.Equal(t, first, *merged.SettingsChange)

	// The merged change is a copy.
	merged.SettingsChange.ResolutionWidth = 1
	assert.Equal(t, 1080, first.ResolutionWidth)

	onlySecond := Graphics{}.Merge(b)
	require.NotNil(t, onlySecond.SettingsChange)
	assert.Equal(t, second, *onlySecond.SettingsChange)
}

type uiCounter struct {
	messages  []string
	selectors int
}

func (c *uiCounter) VisitMessage(m Message) { c.messages = append(c.messages, m.Text) }
func (c *uiCounter) VisitSelector(Selector) { c.selectors++ }

func TestWalkUI(t *testing.T) {
	var c uiCounter
	WalkUI([]UIElement{
		NewMessage("SETTINGS", 50, 400, 30),
		Selector{X: 400, Y: 420, Width: 400},
		NewMessage("FPS : 60", 25, 400, 420),
	}, &c)

	assert.Equal(t, []string{"SETTINGS", "FPS : 60"}, c.messages)
	assert.Equal(t, 1, c.selectors)
}

func TestNames(t *testing.T) {
	assert.Equal(t, "powerup", SoundPowerup.String())
	assert.Equal(t, "game over", MusicGameOver.String())
	assert.Equal(t, 5, NumSounds)
}
