package ui

import (
	"github.com/SrKotaka/Space-Shooter/internal/core"
	"github.com/SrKotaka/Space-Shooter/internal/engine"
)

// Button is a filled rectangle with centered text.
type Button struct {
	engine.Base[Host]

	Text   string
	Center core.Vector2
	Rect   core.Rectangle
	Intent Intent
	Style  Style

	ptr pointer
}

// NewButton creates a button of the given size centered on center.
func NewButton(text string, center, size core.Vector2, intent Intent) *Button {
	return &Button{
		Text:   text,
		Center: center,
		Rect:   core.RectCentered(center, size),
		Intent: intent,
		Style:  DefaultStyle,
	}
}

// Hovered reports whether the pointer was over the button last update.
func (b *Button) Hovered() bool { return b.ptr.hover }

// Pressed reports whether the button is held down.
func (b *Button) Pressed() bool { return b.ptr.click }

func (b *Button) Update(h Host) {
	if b.ptr.update(h.Input(), b.Rect) {
		h.Apply(b.Intent)
	}
}

func (b *Button) Draw(_ Host, r *engine.Renderer) {
	r.DrawRect(b.Rect, b.ptr.color(b.Style))
	r.DrawTextCentered(b.Text, b.Center, b.Style.Text, b.Style.Font)
}
