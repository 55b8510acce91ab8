package core

// Key identifies a keyboard key, independent of the frontend producing it.
type Key int

const (
	KeyUnknown Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyW
	KeyA
	KeyS
	KeyD
	KeySpace
	KeyP
	KeyEnter
	KeyEscape
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyW:
		return "W"
	case KeyA:
		return "A"
	case KeyS:
		return "S"
	case KeyD:
		return "D"
	case KeySpace:
		return "Space"
	case KeyP:
		return "P"
	case KeyEnter:
		return "Enter"
	case KeyEscape:
		return "Escape"
	default:
		return "Unknown"
	}
}

// MouseButton identifies a pointer button. Numbering starts at 1 (left).
type MouseButton int

const (
	ButtonLeft   MouseButton = 1
	ButtonMiddle MouseButton = 2
	ButtonRight  MouseButton = 3
)

// EventKind enumerates the raw input events the shooter consumes.
type EventKind int

const (
	EventKeyDown EventKind = iota
	EventKeyUp
	EventButtonDown
	EventButtonUp
	EventPointerMoved
	EventQuit
)

// Event is one raw input event delivered by a frontend.
type Event struct {
	Kind   EventKind
	Key    Key         // EventKeyDown, EventKeyUp
	Button MouseButton // EventButtonDown, EventButtonUp
	Pos    Vector2     // Pointer position in world units (all pointer events)
}

// KeyPress builds a key-down event.
func KeyPress(k Key) Event { return Event{Kind: EventKeyDown, Key: k} }

// KeyRelease builds a key-up event.
func KeyRelease(k Key) Event { return Event{Kind: EventKeyUp, Key: k} }

// ButtonDown builds a pointer-button-down event at pos.
func ButtonDown(b MouseButton, pos Vector2) Event {
	return Event{Kind: EventButtonDown, Button: b, Pos: pos}
}

// ButtonUp builds a pointer-button-up event at pos.
func ButtonUp(b MouseButton, pos Vector2) Event {
	return Event{Kind: EventButtonUp, Button: b, Pos: pos}
}

// PointerMoved builds a pointer motion event.
func PointerMoved(pos Vector2) Event { return Event{Kind: EventPointerMoved, Pos: pos} }

// Quit builds a quit-requested event.
func Quit() Event { return Event{Kind: EventQuit} }

// Keyboard records which keys were seen down. Reset clears everything,
// so a key reads as down only for the frame its press arrived in unless
// the frontend repeats the press.
type Keyboard struct {
	down map[Key]bool
}

// NewKeyboard creates an empty keyboard snapshot.
func NewKeyboard() *Keyboard {
	return &Keyboard{down: make(map[Key]bool)}
}

// Handle applies a key event. Other event kinds are ignored.
func (k *Keyboard) Handle(e Event) {
	switch e.Kind {
	case EventKeyDown:
		k.down[e.Key] = true
	case EventKeyUp:
		k.down[e.Key] = false
	}
}

// IsDown reports whether key was seen down. Unknown keys are up.
func (k *Keyboard) IsDown(key Key) bool {
	return k.down[key]
}

// IsUp is the negation of IsDown.
func (k *Keyboard) IsUp(key Key) bool {
	return !k.down[key]
}

// Reset forgets all key state.
func (k *Keyboard) Reset() {
	clear(k.down)
}

// Mouse records pointer button state and the last pointer position.
// Button state persists until a release arrives.
type Mouse struct {
	down map[MouseButton]bool
	pos  Vector2
}

// NewMouse creates an empty mouse snapshot.
func NewMouse() *Mouse {
	return &Mouse{down: make(map[MouseButton]bool)}
}

// Handle applies a pointer event. Motion never changes button state.
// Button events also move the pointer to where they happened: terminals
// report a click with its cell but send no motion before it unless all
// motion tracking is on.
func (m *Mouse) Handle(e Event) {
	switch e.Kind {
	case EventButtonDown:
		m.down[e.Button] = true
		m.pos = e.Pos
	case EventButtonUp:
		m.down[e.Button] = false
		m.pos = e.Pos
	case EventPointerMoved:
		m.pos = e.Pos
	}
}

// IsDown reports whether button is held.
func (m *Mouse) IsDown(b MouseButton) bool {
	return m.down[b]
}

// IsUp is the negation of IsDown.
func (m *Mouse) IsUp(b MouseButton) bool {
	return !m.down[b]
}

// Position returns the last known pointer position.
func (m *Mouse) Position() Vector2 {
	return m.pos
}

// Reset releases all buttons. The frame loop never calls it.
func (m *Mouse) Reset() {
	clear(m.down)
}

// Input bundles the keyboard and mouse snapshots handed to game code.
type Input struct {
	Keyboard *Keyboard
	Mouse    *Mouse
}

// NewInput creates an empty input snapshot.
func NewInput() *Input {
	return &Input{Keyboard: NewKeyboard(), Mouse: NewMouse()}
}

// Handle routes an event to the keyboard or mouse.
func (in *Input) Handle(e Event) {
	in.Keyboard.Handle(e)
	in.Mouse.Handle(e)
}

// AnyDown reports whether any of the given keys is down.
func (in *Input) AnyDown(keys ...Key) bool {
	for _, k := range keys {
		if in.Keyboard.IsDown(k) {
			return true
		}
	}
	return false
}
