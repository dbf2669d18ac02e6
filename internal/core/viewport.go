package core

// Viewport maps game coordinates onto an output surface of a given size.
//
// Letterboxed viewports keep the game's aspect ratio and center the largest
// fitting rectangle, leaving bars on the remaining sides. Stretched viewports
// scale each axis independently, which suits terminal cells that are roughly
// twice as tall as they are wide.
type Viewport struct {
	ScaleX, ScaleY   float64 // Output units per game unit
	OriginX, OriginY float64 // Output position of game (0, 0)
	Width, Height    float64 // Output size of the game area
}

// NewLetterbox fits a gameW x gameH area into an outW x outH surface,
// preserving the aspect ratio.
func NewLetterbox(outW, outH, gameW, gameH float64) Viewport {
	ratio := gameW / gameH
	outRatio := outW / outH

	var v Viewport
	switch {
	case outRatio < ratio:
		// Bars above and below.
		v.Width = outW
		v.Height = outW / ratio
		v.OriginY = outH/2 - v.Height/2
	case outRatio > ratio:
		// Bars left and right.
		v.Height = outH
		v.Width = outH * ratio
		v.OriginX = outW/2 - v.Width/2
	default:
		v.Width = outW
		v.Height = outH
	}
	scale := v.Width / gameW
	v.ScaleX, v.ScaleY = scale, scale
	return v
}

// NewStretch maps a gameW x gameH area onto the full outW x outH surface.
func NewStretch(outW, outH, gameW, gameH float64) Viewport {
	return Viewport{
		ScaleX: outW / gameW,
		ScaleY: outH / gameH,
		Width:  outW,
		Height: outH,
	}
}

// X converts a game x-coordinate to output units.
func (v Viewport) X(x float64) float64 {
	return x*v.ScaleX + v.OriginX
}

// Y converts a game y-coordinate to output units.
func (v Viewport) Y(y float64) float64 {
	return y*v.ScaleY + v.OriginY
}

// Scale returns the uniform scale factor used for sizes that have no axis,
// such as radii and font sizes.
func (v Viewport) Scale() float64 {
	if v.ScaleX < v.ScaleY {
		return v.ScaleX
	}
	return v.ScaleY
}
