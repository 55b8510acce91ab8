package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/SrKotaka/Space-Shooter/internal/core"
)

// binding maps an ebiten key to a shooter key. Held keys with repeat set
// are reported again every frame, since the app clears its keyboard after
// each one.
type binding struct {
	from   ebiten.Key
	to     core.Key
	repeat bool
}

var bindings = []binding{
	{ebiten.KeyArrowLeft, core.KeyLeft, true},
	{ebiten.KeyArrowRight, core.KeyRight, true},
	{ebiten.KeyArrowUp, core.KeyUp, true},
	{ebiten.KeyArrowDown, core.KeyDown, true},
	{ebiten.KeyW, core.KeyW, true},
	{ebiten.KeyA, core.KeyA, true},
	{ebiten.KeyS, core.KeyS, true},
	{ebiten.KeyD, core.KeyD, true},
	{ebiten.KeySpace, core.KeySpace, true},
	{ebiten.KeyP, core.KeyP, false},
	{ebiten.KeyEnter, core.KeyEnter, false},
	{ebiten.KeyEscape, core.KeyEscape, false},
}

var buttons = []struct {
	from ebiten.MouseButton
	to   core.MouseButton
}{
	{ebiten.MouseButtonLeft, core.ButtonLeft},
	{ebiten.MouseButtonMiddle, core.ButtonMiddle},
	{ebiten.MouseButtonRight, core.ButtonRight},
}

// inputState turns ebiten's polled state into the events of one frame.
type inputState struct {
	cursor core.Vector2
	moved  bool
}

func (s *inputState) poll() []core.Event {
	var events []core.Event

	x, y := ebiten.CursorPosition()
	pos := core.Vec(float64(x), float64(y))
	if !s.moved || pos != s.cursor {
		events = append(events, core.PointerMoved(pos))
		s.cursor, s.moved = pos, true
	}

	for _, b := range buttons {
		switch {
		case inpututil.IsMouseButtonJustPressed(b.from):
			events = append(events, core.ButtonDown(b.to, pos))
		case inpututil.IsMouseButtonJustReleased(b.from):
			events = append(events, core.ButtonUp(b.to, pos))
		}
	}

	for _, b := range bindings {
		switch {
		case inpututil.IsKeyJustPressed(b.from):
			events = append(events, core.KeyPress(b.to))
		case inpututil.IsKeyJustReleased(b.from):
			events = append(events, core.KeyRelease(b.to))
		case b.repeat && ebiten.IsKeyPressed(b.from):
			events = append(events, core.KeyPress(b.to))
		}
	}
	return events
}
