package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolutionIndex(t *testing.T) {
	tests := []struct {
		g    GraphicsSettings
		want int
	}{
		{GraphicsSettings{800, 600}, 0},
		{GraphicsSettings{1080, 720}, 1},
		{GraphicsSettings{400, 300}, 2},
		{GraphicsSettings{1920, 1080}, 0}, // unknown
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, ResolutionIndex(tc.g), "ResolutionIndex(%s)", tc.g)
	}
}

func TestDefault(t *testing.T) {
	s := Default()
	assert.Equal(t, 60, s.FPS)
	assert.Equal(t, "800 x 600", s.Graphics.String())

	// Settings is a value: edits to a copy never reach the original.
	c := s
	c.Graphics.ResolutionWidth = 1
	assert.Equal(t, 800, s.Graphics.ResolutionWidth)
}
