package tui

import (
	"math"

	"github.com/vovakirdan/breakout/internal/core"
	"github.com/vovakirdan/breakout/internal/entity"
	"github.com/vovakirdan/breakout/internal/instruction"
)

// Glyphs used by the terminal renderer.
const (
	glyphSolid    = '█'
	glyphTough    = '▓'
	glyphBall     = '●'
	glyphCore     = '●'
	glyphPiercing = '◎'
	glyphLife     = '♥'
	glyphArrowL   = '▶'
	glyphArrowR   = '◀'
)

// titleSize is the message size from which text is drawn bold.
const titleSize = 40

// Raster draws instruction batches onto a Screen. The game area is stretched
// over the whole cell grid, since terminal cells are not square anyway.
type Raster struct {
	screen         *core.Screen
	worldW, worldH float64
	view           core.Viewport
}

// NewRaster creates a rasterizer for a worldW x worldH game area.
func NewRaster(s *core.Screen, worldW, worldH float64) *Raster {
	return &Raster{screen: s, worldW: worldW, worldH: worldH}
}

// Draw clears the screen and draws the batch: objects first, overlay on top.
func (r *Raster) Draw(g instruction.Graphics) {
	r.screen.Clear()
	r.view = core.NewStretch(float64(r.screen.Width()), float64(r.screen.Height()), r.worldW, r.worldH)

	entity.Walk(g.Objects, r)
	instruction.WalkUI(g.UI, r)
}

// cellRect converts a game box to the cells it covers. Edges are rounded, and
// a box never shrinks below one cell.
func (r *Raster) cellRect(b core.Box) core.Rect {
	x0 := int(math.Round(r.view.X(b.X)))
	x1 := int(math.Round(r.view.X(b.Right())))
	y0 := int(math.Round(r.view.Y(b.Y)))
	y1 := int(math.Round(r.view.Y(b.Bottom())))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// cellAt returns the cell containing a game point.
func (r *Raster) cellAt(x, y float64) (int, int) {
	return int(math.Floor(r.view.X(x))), int(math.Floor(r.view.Y(y)))
}

func (r *Raster) VisitPaddle(p entity.Paddle) {
	rect := r.cellRect(p.Box())
	r.screen.DrawRect(rect, core.Cell{Rune: glyphSolid, Color: core.ColorWhite, Colored: true})

	for _, mid := range p.LifeMarkers() {
		x := int(math.Round(r.view.X(mid)))
		for y := rect.Y; y < rect.Bottom(); y++ {
			r.screen.SetColored(x, y, glyphSolid, core.ColorRed)
		}
	}
}

func (r *Raster) VisitBall(b entity.Ball) {
	c := core.ColorWhite
	if b.Modifier != entity.ModifierNone {
		c = core.ColorRed
	}
	x, y := r.cellAt(b.X, b.Y)
	r.screen.SetColored(x, y, glyphBall, c)
}

func (r *Raster) VisitBlock(b entity.Block) {
	rect := r.cellRect(b.Box())

	// Leave the last column empty so neighbours stay apart.
	if rect.W >= 3 {
		rect.W--
	}

	fill := b.Color
	if b.Kind == entity.BlockProtector {
		fill = core.ColorWhite
	}
	r.screen.DrawRect(rect, core.Cell{Rune: glyphSolid, Color: fill, Colored: true})

	left, right := rect.X, rect.Right()-1
	for y := rect.Y; y < rect.Bottom(); y++ {
		switch {
		case b.Protection > 0:
			r.screen.SetCell(left, y, core.Cell{Rune: '[', Color: core.ColorWhite, Colored: true, Bold: true})
			r.screen.SetCell(right, y, core.Cell{Rune: ']', Color: core.ColorWhite, Colored: true, Bold: true})
		case b.Health > 1:
			r.screen.SetColored(left, y, glyphTough, core.ColorRed)
			r.screen.SetColored(right, y, glyphTough, core.ColorRed)
		}
	}

	if b.Kind == entity.BlockPowerup {
		cx, cy := b.Box().Center()
		x, y := r.cellAt(cx, cy)
		r.screen.SetColored(x, y, glyphCore, b.Color.Negative())
	}
}

func (r *Raster) VisitPowerup(p entity.Powerup) {
	g := glyphPiercing
	if p.Kind == entity.PowerupLife {
		g = glyphLife
	}
	x, y := r.cellAt(p.X, p.Y)
	r.screen.SetColored(x, y, g, core.ColorRed)
}

func (r *Raster) VisitMessage(m instruction.Message) {
	x := int(math.Round(r.view.X(m.X)))
	_, y := r.cellAt(m.X, m.Y)
	r.screen.DrawTextCentered(x, y, m.Text, core.Cell{
		Color:   m.Color,
		Colored: true,
		Bold:    m.Size >= titleSize,
	})
}

func (r *Raster) VisitSelector(s instruction.Selector) {
	left := int(math.Round(r.view.X(s.X - s.Width/2)))
	right := int(math.Round(r.view.X(s.X + s.Width/2)))
	_, y := r.cellAt(s.X, s.Y)
	r.screen.SetColored(left-2, y, glyphArrowL, core.ColorWhite)
	r.screen.SetColored(right+1, y, glyphArrowR, core.ColorWhite)
}
