package core

import "testing"

func TestBoxEdges(t *testing.T) {
	b := Box{X: 5, Y: 10, W: 20, H: 15}

	if b.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", b.Right())
	}
	if b.Bottom() != 25 {
		t.Errorf("Bottom() = %v, expected 25", b.Bottom())
	}

	cx, cy := b.Center()
	if cx != 15 || cy != 17.5 {
		t.Errorf("Center() = (%v, %v), expected (15, 17.5)", cx, cy)
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{0.05, -0.1, 0.1, 0.05},
		{-0.5, -0.1, 0.1, -0.1},
		{0.3, -0.1, 0.1, 0.1},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestViewportLetterbox(t *testing.T) {
	tests := []struct {
		name             string
		outW, outH       float64
		scale            float64
		originX, originY float64
	}{
		{"same ratio", 800, 600, 1, 0, 0},
		{"half size", 400, 300, 0.5, 0, 0},
		{"wide window gets side bars", 1080, 720, 1.2, 60, 0},
		{"tall window gets top bars", 800, 800, 1, 0, 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := NewLetterbox(tc.outW, tc.outH, 800, 600)
			if v.Scale() != tc.scale {
				t.Errorf("Scale() = %v, expected %v", v.Scale(), tc.scale)
			}
			if v.OriginX != tc.originX || v.OriginY != tc.originY {
				t.Errorf("origin = (%v, %v), expected (%v, %v)", v.OriginX, v.OriginY, tc.originX, tc.originY)
			}
			if got := v.X(800); got != tc.originX+800*tc.scale {
				t.Errorf("X(800) = %v", got)
			}
		})
	}
}

func TestViewportStretch(t *testing.T) {
	v := NewStretch(80, 24, 800, 600)

	if v.X(400) != 40 {
		t.Errorf("X(400) = %v, expected 40", v.X(400))
	}
	if v.Y(300) != 12 {
		t.Errorf("Y(300) = %v, expected 12", v.Y(300))
	}
	if v.Scale() != 0.04 {
		t.Errorf("Scale() = %v, expected 0.04", v.Scale())
	}
}

func TestColor(t *testing.T) {
	c := Color{R: 10, G: 200, B: 255}

	if c.Hex() != "#0ac8ff" {
		t.Errorf("Hex() = %q, expected #0ac8ff", c.Hex())
	}
	if n := c.Negative(); n != (Color{R: 245, G: 55, B: 0}) {
		t.Errorf("Negative() = %+v", n)
	}

	r, g, b, a := c.RGBA()
	if r != 0x0a0a || g != 0xc8c8 || b != 0xffff || a != 0xffff {
		t.Errorf("RGBA() = %x %x %x %x", r, g, b, a)
	}

	if (Color{R: 19, G: 19, B: 19}).IsBright() {
		t.Error("all channels below 20 should not be bright")
	}
	if !(Color{R: 0, G: 20, B: 0}).IsBright() {
		t.Error("a channel at 20 should be bright")
	}
}
