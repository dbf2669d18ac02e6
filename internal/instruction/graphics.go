package instruction

import (
	"github.com/vovakirdan/breakout/internal/core"
	"github.com/vovakirdan/breakout/internal/entity"
	"github.com/vovakirdan/breakout/internal/settings"
)

// UIElement is a screen overlay drawn above the game objects. It is a closed
// set: only Message and Selector implement it.
type UIElement interface {
	AcceptUI(v UIVisitor)
	isUIElement()
}

// UIVisitor handles every UIElement variant.
type UIVisitor interface {
	VisitMessage(Message)
	VisitSelector(Selector)
}

// Message is a line of text centered on (X, Y) in game coordinates.
type Message struct {
	Text  string
	Size  float64 // font size in game units
	X, Y  float64
	Font  string // empty means the platform default
	Color core.Color
}

// NewMessage creates a white message in the default font.
func NewMessage(text string, size, x, y float64) Message {
	return Message{Text: text, Size: size, X: x, Y: y, Color: core.ColorWhite}
}

// Selector marks the settings row being edited: arrows pointing at a row
// centered on (X, Y) and Width wide.
type Selector struct {
	X, Y  float64
	Width float64
}

func (m Message) AcceptUI(v UIVisitor)  { v.VisitMessage(m) }
func (s Selector) AcceptUI(v UIVisitor) { v.VisitSelector(s) }

func (Message) isUIElement()  {}
func (Selector) isUIElement() {}

// WalkUI visits each element in order.
func WalkUI(elements []UIElement, v UIVisitor) {
	for _, e := range elements {
		e.AcceptUI(v)
	}
}

// Graphics is one frame's drawing batch.
type Graphics struct {
	Objects []entity.Object
	UI      []UIElement

	// SettingsChange, when set, asks the renderer to switch resolution
	// before drawing this frame.
	SettingsChange *settings.GraphicsSettings
}

// Merge combines two batches. Lists are concatenated a-then-b; the settings
// change of a wins when present. Neither operand is modified.
func (g Graphics) Merge(o Graphics) Graphics {
	change := g.SettingsChange
	if change == nil {
		change = o.SettingsChange
	}
	if change != nil {
		c := *change
		change = &c
	}
	return Graphics{
		Objects:        concat(g.Objects, o.Objects),
		UI:             concat(g.UI, o.UI),
		SettingsChange: change,
	}
}
