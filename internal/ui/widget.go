// Package ui provides the menu widgets. Widgets never call back into
// arbitrary code: a click hands an Intent to the owning state, which
// decides what it means.
package ui

import (
	"github.com/SrKotaka/Space-Shooter/internal/assets"
	"github.com/SrKotaka/Space-Shooter/internal/core"
)

// Intent is what a widget asks its state to do.
type Intent int

const (
	IntentNone Intent = iota
	IntentPlay
	IntentSettings
	IntentQuit
	IntentBack
	IntentToggleFullscreen
)

var intentNames = [...]string{
	IntentNone:             "none",
	IntentPlay:             "play",
	IntentSettings:         "settings",
	IntentQuit:             "quit",
	IntentBack:             "back",
	IntentToggleFullscreen: "toggle_fullscreen",
}

func (i Intent) String() string {
	if i < 0 || int(i) >= len(intentNames) {
		return "unknown"
	}
	return intentNames[i]
}

// Host is the context widgets live in.
type Host interface {
	Input() *core.Input
	Apply(i Intent)
}

// Style is the color set shared by every widget.
type Style struct {
	Idle, Hover, Click core.RGB
	Text               core.RGB
	Font               assets.Font
}

// DefaultStyle is the gray menu look.
var DefaultStyle = Style{
	Idle:  core.ButtonIdle,
	Hover: core.ButtonHover,
	Click: core.ButtonClick,
	Text:  core.White,
	Font:  assets.Monospace60,
}

// pointer tracks hover and press over a rectangle. A click completes on
// the first frame button 1 is up after a frame where it was pressed
// while hovered.
type pointer struct {
	hover bool
	click bool
}

func (p *pointer) update(in *core.Input, rect core.Rectangle) (clicked bool) {
	clicked = p.click && in.Mouse.IsUp(core.ButtonLeft)
	p.hover = rect.ContainsPoint(in.Mouse.Position())
	p.click = p.hover && in.Mouse.IsDown(core.ButtonLeft)
	return clicked
}

func (p *pointer) color(s Style) core.RGB {
	switch {
	case p.click:
		return s.Click
	case p.hover:
		return s.Hover
	default:
		return s.Idle
	}
}
