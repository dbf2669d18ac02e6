package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/breakout/internal/core"
	"github.com/vovakirdan/breakout/internal/entity"
	"github.com/vovakirdan/breakout/internal/instruction"
)

// newTestRaster maps the 800x600 world onto 80x24 cells: 10 units per
// column, 25 units per row.
func newTestRaster() (*core.Screen, *Raster) {
	s := core.NewScreen(80, 24)
	return s, NewRaster(s, 800, 600)
}

func TestRasterPaddleLifeMarkers(t *testing.T) {
	s, r := newTestRaster()
	r.Draw(instruction.Graphics{Objects: []entity.Object{
		entity.Paddle{X: 350, Y: 540, Width: 100, Height: 10, Lives: 3},
	}})

	for _, x := range []int{38, 40, 43} {
		if c := s.GetCell(x, 22); c.Rune != glyphSolid || c.Color != core.ColorRed {
			t.Errorf("cell (%d,22) = %+v, expected a red life marker", x, c)
		}
	}
	if c := s.GetCell(36, 22); c.Rune != glyphSolid || c.Color != core.ColorWhite {
		t.Errorf("cell (36,22) = %+v, expected white paddle", c)
	}
	if c := s.GetCell(45, 22); c.Rune != ' ' {
		t.Errorf("cell (45,22) = %+v, expected nothing right of the paddle", c)
	}
}

func TestRasterBall(t *testing.T) {
	s, r := newTestRaster()
	r.Draw(instruction.Graphics{Objects: []entity.Object{
		entity.Ball{X: 400, Y: 300, Radius: 5},
		entity.Ball{X: 100, Y: 100, Radius: 5, Modifier: entity.ModifierPiercing},
	}})

	if c := s.GetCell(40, 12); c.Rune != glyphBall || c.Color != core.ColorWhite {
		t.Errorf("plain ball cell = %+v", c)
	}
	if c := s.GetCell(10, 4); c.Rune != glyphBall || c.Color != core.ColorRed {
		t.Errorf("piercing ball cell = %+v, expected red", c)
	}
}

func TestRasterBlockDecorations(t *testing.T) {
	s, r := newTestRaster()
	blue := core.Color{R: 0, G: 128, B: 255}
	r.Draw(instruction.Graphics{Objects: []entity.Object{
		entity.Block{X: 0, Y: 2, Width: 88, Height: 36, Kind: entity.BlockPowerup, Health: 2, Color: blue},
		entity.Block{X: 400, Y: 2, Width: 88, Height: 36, Kind: entity.BlockNormal, Health: 1, Protection: 1, Color: blue},
		entity.Block{X: 200, Y: 2, Width: 88, Height: 36, Kind: entity.BlockProtector, Health: 1, Color: blue},
	}})

	// Tough powerup block: red edges, negative core, plain fill between.
	if c := s.GetCell(0, 0); c.Rune != glyphTough || c.Color != core.ColorRed {
		t.Errorf("left edge = %+v, expected red health border", c)
	}
	if c := s.GetCell(7, 1); c.Rune != glyphTough || c.Color != core.ColorRed {
		t.Errorf("right edge = %+v, expected red health border", c)
	}
	if c := s.GetCell(4, 0); c.Rune != glyphCore || c.Color != blue.Negative() {
		t.Errorf("center = %+v, expected negative-colored core", c)
	}
	if c := s.GetCell(3, 0); c.Rune != glyphSolid || c.Color != blue {
		t.Errorf("fill = %+v, expected block color", c)
	}
	if c := s.GetCell(8, 0); c.Rune != ' ' {
		t.Errorf("gap column = %+v, expected empty", c)
	}

	// Protected block gets white brackets.
	if s.Get(40, 0) != '[' || s.Get(47, 0) != ']' {
		t.Errorf("protected block edges = %q %q, expected brackets", s.Get(40, 0), s.Get(47, 0))
	}

	// Protector fills white.
	if c := s.GetCell(23, 0); c.Color != core.ColorWhite {
		t.Errorf("protector fill = %+v, expected white", c)
	}
}

func TestRasterPowerups(t *testing.T) {
	s, r := newTestRaster()
	r.Draw(instruction.Graphics{Objects: []entity.Object{
		entity.Powerup{Kind: entity.PowerupPiercing, X: 205, Y: 310, Radius: 18},
		entity.Powerup{Kind: entity.PowerupLife, X: 605, Y: 310, Radius: 18},
	}})

	if c := s.GetCell(20, 12); c.Rune != glyphPiercing || c.Color != core.ColorRed {
		t.Errorf("piercing powerup cell = %+v", c)
	}
	if c := s.GetCell(60, 12); c.Rune != glyphLife || c.Color != core.ColorRed {
		t.Errorf("life powerup cell = %+v", c)
	}
}

func TestRasterOverlay(t *testing.T) {
	s, r := newTestRaster()
	r.Draw(instruction.Graphics{UI: []instruction.UIElement{
		instruction.NewMessage("PLAY", 50, 400, 300),
		instruction.NewMessage("small", 20, 400, 500),
		instruction.Selector{X: 400, Y: 240, Width: 600},
	}})

	if got := s.Row(12)[38:42]; got != "PLAY" {
		t.Errorf("title row = %q, expected PLAY centered on column 40", got)
	}
	if !s.GetCell(38, 12).Bold {
		t.Error("title should be bold")
	}
	if s.GetCell(s.Width()/2, 20).Bold {
		t.Error("small text should not be bold")
	}
	if s.Get(8, 9) != glyphArrowL || s.Get(71, 9) != glyphArrowR {
		t.Errorf("selector row = %q", s.Row(9))
	}
}

func TestRasterClearsBetweenFrames(t *testing.T) {
	s, r := newTestRaster()
	r.Draw(instruction.Graphics{Objects: []entity.Object{entity.Ball{X: 400, Y: 300}}})
	r.Draw(instruction.Graphics{})

	if strings.TrimSpace(s.String()) != "" {
		t.Error("expected an empty screen after drawing an empty batch")
	}
}

func TestRenderScreenDimensions(t *testing.T) {
	s, r := newTestRaster()
	r.Draw(instruction.Graphics{
		Objects: []entity.Object{
			entity.Paddle{X: 350, Y: 540, Width: 100, Height: 10, Lives: 2},
			entity.Block{X: 0, Y: 2, Width: 88, Height: 36, Health: 1, Color: core.Color{R: 200}},
		},
		UI: []instruction.UIElement{instruction.NewMessage("BREAKOUT", 50, 400, 300)},
	})

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 24 {
		t.Fatalf("rendered %d lines, expected 24", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 80 {
			t.Errorf("line %d is %d cells wide, expected 80", i, w)
		}
	}
}

func TestRenderScreenPlain(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawText(0, 0, "hello", core.Cell{})

	if got, want := RenderScreen(s), s.String(); got != want {
		t.Errorf("RenderScreen() = %q, expected %q", got, want)
	}
}
