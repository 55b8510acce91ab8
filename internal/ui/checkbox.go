package ui

import (
	"math"

	"github.com/SrKotaka/Space-Shooter/internal/assets"
	"github.com/SrKotaka/Space-Shooter/internal/core"
	"github.com/SrKotaka/Space-Shooter/internal/engine"
)

// CheckBox is a square toggle with a label to its right, drawn on a
// container strip.
type CheckBox struct {
	engine.Base[Host]

	Text    string
	Center  core.Vector2
	Intent  Intent
	Style   Style
	Checked bool

	box       core.Rectangle
	container core.Rectangle
	label     core.Vector2
	ptr       pointer
}

// NewCheckBox lays out a checkbox. The box side is the smaller of size's
// components; the label is measured with the style font.
func NewCheckBox(text string, center, size core.Vector2, intent Intent) *CheckBox {
	c := &CheckBox{
		Text:   text,
		Center: center,
		Intent: intent,
		Style:  DefaultStyle,
	}
	c.layout(math.Min(size.X, size.Y))
	return c
}

func (c *CheckBox) layout(side float64) {
	text := assets.MeasureText(c.Text, c.Style.Font)
	c.box = core.Rectangle{
		Pos:  c.Center.Sub(core.Vec(side+text.X, side).Div(2)),
		Size: core.Vec(side, side),
	}
	c.container = core.Rectangle{
		Pos:  c.Center.Sub(core.Vec(text.X+side+40, text.Y+10).Div(2)),
		Size: core.Vec(text.X+120, text.Y+10),
	}
	c.label = core.Vec(c.Center.X+side, c.Center.Y)
}

// Box returns the clickable square.
func (c *CheckBox) Box() core.Rectangle { return c.box }

// Container returns the background strip.
func (c *CheckBox) Container() core.Rectangle { return c.container }

// Update flips Checked before handing the intent over, so the host reads
// the new value.
func (c *CheckBox) Update(h Host) {
	if c.ptr.update(h.Input(), c.box) {
		c.Checked = !c.Checked
		h.Apply(c.Intent)
	}
}

func (c *CheckBox) Draw(_ Host, r *engine.Renderer) {
	r.DrawRect(c.container, c.Style.Idle)
	r.DrawRect(c.box, c.ptr.color(c.Style))
	if c.Checked {
		r.DrawRect(c.box, core.White)
	}
	r.DrawRectBorder(c.box, core.Black, 2)
	r.DrawTextCentered(c.Text, c.label, c.Style.Text, c.Style.Font)
}
