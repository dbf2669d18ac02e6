package screen

import (
	"fmt"

	"github.com/vovakirdan/breakout/internal/config"
	"github.com/vovakirdan/breakout/internal/instruction"
)

// line is a centered message placed at a fraction of the world height.
type line struct {
	text string
	size float64
	y    float64
}

var (
	menuLines = []line{
		{"Welcome to Breakout!", 50, 0.3},
		{"Press P to play", 25, 0.5},
		{"Press I for instructions", 25, 0.6},
		{"Press S for settings", 25, 0.7},
		{"Press Q to quit", 25, 0.8},
	}
	pauseLines = []line{
		{"PAUSED", 50, 0.5},
		{"Press P to continue", 25, 0.75},
	}
	gameOverLines = []line{
		{"GAME OVER", 50, 0.5},
		{"Press R to restart", 25, 0.7},
		{"Press Q to quit", 25, 0.8},
	}
	gameWinLines = []line{
		{"YOU WIN", 50, 0.5},
		{"Press R to restart", 25, 0.7},
		{"Press Q to quit", 25, 0.8},
	}
	prePlayLines = []line{
		{"Press L to launch", 25, 0.8},
	}
	instructionLines = []line{
		{"INSTRUCTIONS", 50, 0.05},
		{"Press A and D to move the paddle and P to pause", 15, 0.2},
		{"Try to break all the blocks", 15, 0.3},
		{"If your ball falls off the screen, you lose health. If your health reaches 0, you lose.", 15, 0.4},
		{"Blocks with a circle give you powerups or replenish your health", 15, 0.5},
		{"Blocks with a red boundary must be hit twice (or hit with piercing)", 15, 0.6},
		{"White blocks protect three blocks under them from all damage until the white blocks are themselves destroyed", 15, 0.7},
		{"Good Luck!", 25, 0.8},
		{"Press M to return to the menu", 25, 0.9},
	}
)

func settingsLines(s *SettingsSession) []line {
	pending := s.Pending()
	return []line{
		{"SETTINGS", 50, 0.05},
		{"Changes won't be applied until you press enter", 20, 0.15},
		{fmt.Sprintf("Resolution              :             %s", pending.Graphics), 25, 0.4},
		{fmt.Sprintf("FPS              :             %d", pending.FPS), 25, 0.7},
		{"Press M to return to the menu", 25, 0.9},
	}
}

// screenText returns the static text for a screen. The settings screen
// shows the session's pending values, so it needs the session.
func screenText(state State, world config.BreakoutWorld, session *SettingsSession) []instruction.UIElement {
	var lines []line
	switch state {
	case StateMenu:
		lines = menuLines
	case StatePause:
		lines = pauseLines
	case StateGameOver:
		lines = gameOverLines
	case StateGameWin:
		lines = gameWinLines
	case StatePrePlay:
		lines = prePlayLines
	case StateInstructions:
		lines = instructionLines
	case StateSettings:
		if session != nil {
			lines = settingsLines(session)
		}
	}

	out := make([]instruction.UIElement, 0, len(lines))
	for _, l := range lines {
		out = append(out, instruction.NewMessage(l.text, l.size, world.Width/2, l.y*world.Height))
	}
	return out
}
