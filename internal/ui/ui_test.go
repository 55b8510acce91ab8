package ui

import (
	"testing"

	"github.com/SrKotaka/Space-Shooter/internal/core"
	"github.com/SrKotaka/Space-Shooter/internal/engine"
)

type fakeHost struct {
	in      *core.Input
	intents []Intent
}

func newFakeHost() *fakeHost { return &fakeHost{in: core.NewInput()} }

func (h *fakeHost) Input() *core.Input { return h.in }
func (h *fakeHost) Apply(i Intent)     { h.intents = append(h.intents, i) }

func TestButtonClickSequences(t *testing.T) {
	inside := core.Vec(400, 310)
	outside := core.Vec(10, 10)

	tests := []struct {
		name   string
		frames [][]core.Event // events delivered before each update
		want   int
	}{
		{
			name: "press and release inside",
			frames: [][]core.Event{
				{core.ButtonDown(core.ButtonLeft, inside)},
				{core.ButtonUp(core.ButtonLeft, inside)},
			},
			want: 1,
		},
		{
			name: "held across frames fires once on release",
			frames: [][]core.Event{
				{core.ButtonDown(core.ButtonLeft, inside)},
				nil,
				nil,
				{core.ButtonUp(core.ButtonLeft, inside)},
				nil,
			},
			want: 1,
		},
		{
			name: "press outside",
			frames: [][]core.Event{
				{core.ButtonDown(core.ButtonLeft, outside)},
				{core.ButtonUp(core.ButtonLeft, outside)},
			},
			want: 0,
		},
		{
			name: "drag off before release",
			frames: [][]core.Event{
				{core.ButtonDown(core.ButtonLeft, inside)},
				{core.PointerMoved(outside)},
				{core.ButtonUp(core.ButtonLeft, outside)},
			},
			want: 0,
		},
		{
			name: "right button ignored",
			frames: [][]core.Event{
				{core.ButtonDown(core.ButtonRight, inside)},
				{core.ButtonUp(core.ButtonRight, inside)},
			},
			want: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := newFakeHost()
			b := NewButton("Play", core.Vec(400, 310), core.Vec(400, 100), IntentPlay)
			for _, events := range tc.frames {
				for _, e := range events {
					h.in.Handle(e)
				}
				b.Update(h)
			}
			if len(h.intents) != tc.want {
				t.Fatalf("intents = %v, expected %d", h.intents, tc.want)
			}
			for _, i := range h.intents {
				if i != IntentPlay {
					t.Errorf("intent = %v, expected play", i)
				}
			}
		})
	}
}

func TestButtonColors(t *testing.T) {
	h := newFakeHost()
	b := NewButton("Quit", core.Vec(400, 530), core.Vec(400, 100), IntentQuit)
	rec := engine.NewRecordingSurface(800, 600)
	r := engine.NewRenderer(rec)

	steps := []struct {
		event core.Event
		want  core.RGB
	}{
		{core.PointerMoved(core.Vec(0, 0)), core.ButtonIdle},
		{core.PointerMoved(core.Vec(400, 530)), core.ButtonHover},
		{core.ButtonDown(core.ButtonLeft, core.Vec(400, 530)), core.ButtonClick},
	}

	for _, s := range steps {
		h.in.Handle(s.event)
		b.Update(h)
		rec.Reset()
		b.Draw(h, r)

		if rec.Calls[0].Op != engine.OpRect || rec.Calls[0].Color != s.want {
			t.Errorf("after %v fill = %v, expected %v", s.event.Kind, rec.Calls[0].Color, s.want)
		}
		if rec.Calls[1].Text != "Quit" || rec.Calls[1].Color != core.White {
			t.Errorf("label call = %+v", rec.Calls[1])
		}
	}
}

func TestCheckBoxLayout(t *testing.T) {
	c := NewCheckBox("Fullscreen", core.Vec(400, 200), core.Vec(50, 50), IntentToggleFullscreen)

	if got, want := c.Box(), core.Rect(195, 175, 50, 50); got != want {
		t.Errorf("Box() = %+v, expected %+v", got, want)
	}
	if got, want := c.Container(), core.Rect(175, 165, 480, 70); got != want {
		t.Errorf("Container() = %+v, expected %+v", got, want)
	}
}

func TestCheckBoxToggleBeforeIntent(t *testing.T) {
	c := NewCheckBox("Fullscreen", core.Vec(400, 200), core.Vec(50, 50), IntentToggleFullscreen)
	var seen []bool
	h := &recordingHost{fakeHost: newFakeHost(), onApply: func(Intent) { seen = append(seen, c.Checked) }}

	click := func() {
		h.in.Handle(core.ButtonDown(core.ButtonLeft, core.Vec(220, 200)))
		c.Update(h)
		h.in.Handle(core.ButtonUp(core.ButtonLeft, core.Vec(220, 200)))
		c.Update(h)
	}
	click()
	click()

	if len(seen) != 2 || !seen[0] || seen[1] {
		t.Errorf("checked at intent time = %v, expected [true false]", seen)
	}
}

func TestCheckBoxDrawOrder(t *testing.T) {
	c := NewCheckBox("Fullscreen", core.Vec(400, 200), core.Vec(50, 50), IntentToggleFullscreen)
	c.Checked = true
	rec := engine.NewRecordingSurface(800, 600)
	c.Draw(newFakeHost(), engine.NewRenderer(rec))

	ops := []engine.Op{engine.OpRect, engine.OpRect, engine.OpRect, engine.OpRectBorder, engine.OpText}
	if len(rec.Calls) != len(ops) {
		t.Fatalf("got %d calls, expected %d", len(rec.Calls), len(ops))
	}
	for i, op := range ops {
		if rec.Calls[i].Op != op {
			t.Errorf("call %d = %s, expected %s", i, rec.Calls[i].Op, op)
		}
	}
	if rec.Calls[2].Color != core.White || rec.Calls[3].Color != core.Black {
		t.Error("checked box should be white with a black border")
	}
	if rec.Calls[4].X != 450-180 {
		t.Errorf("label x = %d, expected 270", rec.Calls[4].X)
	}
}

func TestIntentString(t *testing.T) {
	if IntentToggleFullscreen.String() != "toggle_fullscreen" {
		t.Errorf("String() = %q", IntentToggleFullscreen.String())
	}
	if Intent(99).String() != "unknown" {
		t.Errorf("String() = %q, expected unknown", Intent(99).String())
	}
}

type recordingHost struct {
	*fakeHost
	onApply func(Intent)
}

func (h *recordingHost) Apply(i Intent) {
	h.fakeHost.Apply(i)
	h.onApply(i)
}
