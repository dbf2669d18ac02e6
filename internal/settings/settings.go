// Package settings holds the player-adjustable options: frame rate and
// output resolution.
package settings

import "fmt"

// GraphicsSettings is the part of Settings the renderer cares about.
type GraphicsSettings struct {
	ResolutionWidth  int
	ResolutionHeight int
}

func (g GraphicsSettings) String() string {
	return fmt.Sprintf("%d x %d", g.ResolutionWidth, g.ResolutionHeight)
}

// Settings is a plain value; copies never alias.
type Settings struct {
	FPS      int
	Graphics GraphicsSettings
}

// Resolutions lists the resolutions the settings screen cycles through.
var Resolutions = []GraphicsSettings{
	{ResolutionWidth: 800, ResolutionHeight: 600},
	{ResolutionWidth: 1080, ResolutionHeight: 720},
	{ResolutionWidth: 400, ResolutionHeight: 300},
}

// MinFPS is the lowest frame rate the settings screen allows.
const MinFPS = 1

// Default returns 60 FPS at 800x600.
func Default() Settings {
	return Settings{FPS: 60, Graphics: Resolutions[0]}
}

// ResolutionIndex returns the position of g in Resolutions, or 0 when g is
// not one of the listed resolutions.
func ResolutionIndex(g GraphicsSettings) int {
	for i, r := range Resolutions {
		if r == g {
			return i
		}
	}
	return 0
}
