package desktop

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/breakout/internal/core"
	"github.com/vovakirdan/breakout/internal/entity"
	"github.com/vovakirdan/breakout/internal/instruction"
	"github.com/vovakirdan/breakout/internal/settings"
)

// Size of one glyph of the debug font, in pixels.
const (
	glyphW = 6
	glyphH = 16
)

// Selector arrows, in game units.
const (
	arrowBase   = 50
	arrowHeight = 50
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// renderer draws instruction batches into the window. The 800x600 game
// area is letterboxed into the current resolution on a black background.
type renderer struct {
	worldW, worldH float64
	res            settings.GraphicsSettings
	view           core.Viewport
	dst            *ebiten.Image
	text           map[string]*ebiten.Image
}

func newRenderer(worldW, worldH float64, res settings.GraphicsSettings) *renderer {
	r := &renderer{worldW: worldW, worldH: worldH, text: map[string]*ebiten.Image{}}
	r.setResolution(res)
	return r
}

func (r *renderer) setResolution(res settings.GraphicsSettings) {
	r.res = res
	r.view = core.NewLetterbox(float64(res.ResolutionWidth), float64(res.ResolutionHeight), r.worldW, r.worldH)
}

func (r *renderer) draw(dst *ebiten.Image, g instruction.Graphics) {
	r.dst = dst
	dst.Fill(core.ColorBlack)
	vector.DrawFilledRect(dst,
		float32(r.view.OriginX), float32(r.view.OriginY),
		float32(r.view.Width), float32(r.view.Height),
		core.ColorDarkGray, false)

	entity.Walk(g.Objects, r)
	instruction.WalkUI(g.UI, r)
	r.dst = nil
}

// rect fills a game-space rectangle, or strokes it when border > 0.
func (r *renderer) rect(x, y, w, h float64, c color.Color, border float64) {
	px, py := float32(r.view.X(x)), float32(r.view.Y(y))
	pw, ph := float32(w*r.view.Scale()), float32(h*r.view.Scale())
	if border <= 0 {
		vector.DrawFilledRect(r.dst, px, py, pw, ph, c, true)
		return
	}
	bw := float32(border * r.view.Scale())
	// Stroke inside the rectangle, like a border drawn inward.
	vector.StrokeRect(r.dst, px+bw/2, py+bw/2, pw-bw, ph-bw, bw, c, true)
}

// circle fills a game-space circle, or strokes it when border > 0.
func (r *renderer) circle(x, y, radius float64, c color.Color, border float64) {
	px, py := float32(r.view.X(x)), float32(r.view.Y(y))
	pr := float32(radius * r.view.Scale())
	if border <= 0 {
		vector.DrawFilledCircle(r.dst, px, py, pr, c, true)
		return
	}
	bw := float32(border * r.view.Scale())
	vector.StrokeCircle(r.dst, px, py, pr-bw/2, bw, c, true)
}

// polygon fills a game-space polygon.
func (r *renderer) polygon(points [][2]float64, c core.Color) {
	var path vector.Path
	for i, p := range points {
		x, y := float32(r.view.X(p[0])), float32(r.view.Y(p[1]))
		if i == 0 {
			path.MoveTo(x, y)
		} else {
			path.LineTo(x, y)
		}
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	cr, cg, cb := float32(c.R)/0xff, float32(c.G)/0xff, float32(c.B)/0xff
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR, vs[i].ColorG, vs[i].ColorB, vs[i].ColorA = cr, cg, cb, 1
	}
	r.dst.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (r *renderer) VisitPaddle(p entity.Paddle) {
	r.rect(p.X, p.Y, p.Width, p.Height, core.ColorWhite, 0)
	for _, mid := range p.LifeMarkers() {
		r.rect(mid-entity.LifeMarkerWidth/2, p.Y, entity.LifeMarkerWidth, p.Height, core.ColorRed, 0)
	}
}

func (r *renderer) VisitBall(b entity.Ball) {
	c := core.ColorWhite
	if b.Modifier != entity.ModifierNone {
		c = core.ColorRed
	}
	r.circle(b.X, b.Y, b.Radius, c, 0)
}

func (r *renderer) VisitBlock(b entity.Block) {
	r.rect(b.X, b.Y, b.Width, b.Height, b.Color, 0)
	switch b.Kind {
	case entity.BlockPowerup:
		cx, cy := b.Box().Center()
		r.circle(cx, cy, b.Height/2, b.Color.Negative(), 0)
	case entity.BlockProtector:
		r.rect(b.X, b.Y, b.Width, b.Height, core.ColorWhite, 0)
	}
	if b.Health > 1 {
		r.rect(b.X, b.Y, b.Width, b.Height, core.ColorRed, math.Floor(float64(b.Health-1)*b.Height/10))
	}
	if b.Protection > 0 {
		r.rect(b.X, b.Y, b.Width, b.Height, core.ColorWhite, math.Floor(b.Height/5))
	}
}

func (r *renderer) VisitPowerup(p entity.Powerup) {
	r.circle(p.X, p.Y, p.Radius, core.ColorRed, p.Radius/4)

	switch p.Kind {
	case entity.PowerupPiercing:
		r.circle(p.X, p.Y, p.Radius/4, core.ColorRed, 0)
	case entity.PowerupLife:
		at := func(deg float64) [2]float64 {
			rad := deg * math.Pi / 180
			return [2]float64{p.X + p.Radius/2*math.Cos(rad), p.Y - p.Radius/2*math.Sin(rad)}
		}
		r.polygon([][2]float64{at(45), at(0), at(270), at(180), at(135), {p.X, p.Y}}, core.ColorRed)
	}
}

// textImage returns the debug-font rendering of s, cached across frames.
func (r *renderer) textImage(s string) *ebiten.Image {
	if img, ok := r.text[s]; ok {
		return img
	}
	img := ebiten.NewImage(max(len(s), 1)*glyphW, glyphH)
	ebitenutil.DebugPrintAt(img, s, 0, 0)
	r.text[s] = img
	return img
}

func (r *renderer) VisitMessage(m instruction.Message) {
	img := r.textImage(m.Text)
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	scale := m.Size * r.view.Scale() / glyphH

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(r.view.X(m.X), r.view.Y(m.Y))
	op.ColorScale.ScaleWithColor(m.Color)
	op.Filter = ebiten.FilterLinear
	r.dst.DrawImage(img, op)
}

func (r *renderer) VisitSelector(s instruction.Selector) {
	left := s.X - s.Width/2
	right := s.X + s.Width/2
	r.polygon([][2]float64{
		{left, s.Y},
		{left - arrowHeight, s.Y - arrowBase/2},
		{left - arrowHeight, s.Y + arrowBase/2},
	}, core.ColorWhite)
	r.polygon([][2]float64{
		{right, s.Y},
		{right + arrowHeight, s.Y - arrowBase/2},
		{right + arrowHeight, s.Y + arrowBase/2},
	}, core.ColorWhite)
}
