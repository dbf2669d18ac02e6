package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/breakout/internal/core"
)

// cellStyle is the part of a Cell that affects styling.
type cellStyle struct {
	color   core.Color
	colored bool
	bold    bool
}

func styleOf(c core.Cell) cellStyle {
	return cellStyle{color: c.Color, colored: c.Colored, bold: c.Bold}
}

func (cs cellStyle) style() lipgloss.Style {
	style := lipgloss.NewStyle()
	if cs.colored {
		style = style.Foreground(lipgloss.Color(cs.color.Hex()))
	}
	if cs.bold {
		style = style.Bold(true)
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := styleOf(s.GetCell(x, y))

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if styleOf(cell) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start == (cellStyle{}) {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(start.style().Render(run.String()))
		}
	}
	return sb.String()
}
