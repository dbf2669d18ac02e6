package core

import "fmt"

// Color is a 24-bit RGB color used by game objects and UI text.
// It implements image/color.Color so window renderers can use it directly.
type Color struct {
	R, G, B uint8
}

// Predefined colors for game elements.
var (
	ColorWhite    = Color{255, 255, 255}
	ColorBlack    = Color{0, 0, 0}
	ColorDarkGray = Color{10, 10, 10}
	ColorRed      = Color{255, 0, 0}
)

// brightnessFloor is the component value below which a channel counts as dark.
const brightnessFloor = 20

// RGBA implements image/color.Color. Colors are always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Hex returns the color as "#rrggbb", the form lipgloss accepts.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Negative returns the photographic negative of the color.
func (c Color) Negative() Color {
	return Color{255 - c.R, 255 - c.G, 255 - c.B}
}

// IsBright reports whether at least one channel reaches the brightness floor,
// which keeps blocks distinguishable from the dark playfield.
func (c Color) IsBright() bool {
	return c.R >= brightnessFloor || c.G >= brightnessFloor || c.B >= brightnessFloor
}
