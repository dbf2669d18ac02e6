// Package screen is the top-level state machine: it picks the current screen
// from input, owns the gameplay engine and settings session for the screens
// that need them, and batches each frame's audio and graphics.
package screen

// State is a top-level screen.
type State uint8

const (
	StateMenu State = iota
	StatePrePlay
	StatePlay
	StatePause
	StateGameWin
	StateGameOver
	StateQuit
	StateInstructions
	StateSettings
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePrePlay:
		return "pre_play"
	case StatePlay:
		return "play"
	case StatePause:
		return "pause"
	case StateGameWin:
		return "game_win"
	case StateGameOver:
		return "game_over"
	case StateQuit:
		return "quit"
	case StateInstructions:
		return "instructions"
	case StateSettings:
		return "settings"
	default:
		return "unknown"
	}
}

// runsEngine reports whether the gameplay engine is updated and drawn in s.
func (s State) runsEngine() bool {
	return s == StatePlay || s == StatePause || s == StatePrePlay
}
