package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/breakout/internal/input"
)

// bindings maps window keys to input actions, matching the terminal layout.
var bindings = []input.Binding[ebiten.Key]{
	{Keys: []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}, Actions: input.NewActionSet(input.ActionLeft)},
	{Keys: []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}, Actions: input.NewActionSet(input.ActionRight)},
	{Keys: []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}, Actions: input.NewActionSet(input.ActionUp)},
	{Keys: []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}, Actions: input.NewActionSet(input.ActionDown, input.ActionSettings)},
	{Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter}, Actions: input.NewActionSet(input.ActionConfirm)},
	{Keys: []ebiten.Key{ebiten.KeyP}, Actions: input.NewActionSet(input.ActionPlay, input.ActionPause)},
	{Keys: []ebiten.Key{ebiten.KeyL}, Actions: input.NewActionSet(input.ActionLaunch)},
	{Keys: []ebiten.Key{ebiten.KeyQ}, Actions: input.NewActionSet(input.ActionQuit)},
	{Keys: []ebiten.Key{ebiten.KeyI}, Actions: input.NewActionSet(input.ActionInstructions)},
	{Keys: []ebiten.Key{ebiten.KeyM}, Actions: input.NewActionSet(input.ActionMenu)},
	{Keys: []ebiten.Key{ebiten.KeyR}, Actions: input.NewActionSet(input.ActionRestart)},
}

// fullscreenKey toggles fullscreen.
const fullscreenKey = ebiten.KeyF11
