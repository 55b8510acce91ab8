package shooter

import (
	"github.com/SrKotaka/Space-Shooter/internal/assets"
	"github.com/SrKotaka/Space-Shooter/internal/core"
	"github.com/SrKotaka/Space-Shooter/internal/engine"
	"github.com/SrKotaka/Space-Shooter/internal/ui"
)

var buttonSize = core.Vec(400, 100)

// drawTitle paints the title banner centered at (cx, 100).
func drawTitle(r *engine.Renderer, cx float64, title string) {
	center := core.Vec(cx, 100)
	r.DrawRect(core.RectCentered(center, core.Vec(600, 100)), core.TitleGray)
	r.DrawTextCentered(title, center, core.White, assets.Monospace60)
}

// Menu is the title screen with Play, Settings and Quit.
type Menu struct {
	engine.Scene[ui.Host]
	game *Game
}

func NewMenu(g *Game) *Menu {
	m := &Menu{game: g}
	m.Scene = engine.NewScene[ui.Host](g.App, m)
	return m
}

func (m *Menu) Initialize() {
	cx := m.App.Resolution().X / 2
	m.Spawn(ui.NewButton("Play", core.Vec(cx, 310), buttonSize, ui.IntentPlay))
	m.Spawn(ui.NewButton("Settings", core.Vec(cx, 420), buttonSize, ui.IntentSettings))
	m.Spawn(ui.NewButton("Quit", core.Vec(cx, 530), buttonSize, ui.IntentQuit))
	m.Scene.Initialize()
}

func (m *Menu) Input() *core.Input { return m.App.Input() }

func (m *Menu) Apply(i ui.Intent) {
	switch i {
	case ui.IntentPlay:
		m.App.SetState(NewGameplay(m.game))
	case ui.IntentSettings:
		m.App.SetState(NewSettings(m.game))
	case ui.IntentQuit:
		m.App.Quit()
	}
}

func (m *Menu) Draw(r *engine.Renderer) {
	r.Fill(core.MenuGray)
	m.Scene.Draw(r)
	drawTitle(r, m.App.Resolution().X/2, "Space Shooters")
}

// Settings holds the fullscreen toggle and a Back button. The toggle
// writes through to the settings store immediately.
type Settings struct {
	engine.Scene[ui.Host]
	game       *Game
	fullscreen *ui.CheckBox
}

func NewSettings(g *Game) *Settings {
	s := &Settings{game: g}
	s.Scene = engine.NewScene[ui.Host](g.App, s)
	return s
}

func (s *Settings) Initialize() {
	cx := s.App.Resolution().X / 2
	s.Spawn(ui.NewButton("Back", core.Vec(cx, 530), buttonSize, ui.IntentBack))
	s.fullscreen = ui.NewCheckBox("Fullscreen", core.Vec(cx, 200), core.Vec(50, 50), ui.IntentToggleFullscreen)
	s.fullscreen.Checked = s.App.Settings().Fullscreen()
	s.Spawn(s.fullscreen)
	s.Scene.Initialize()
}

func (s *Settings) Input() *core.Input { return s.App.Input() }

func (s *Settings) Apply(i ui.Intent) {
	switch i {
	case ui.IntentBack:
		s.App.SetState(NewMenu(s.game))
	case ui.IntentToggleFullscreen:
		on := s.fullscreen.Checked
		s.App.Settings().SetFullscreen(on)
		s.App.Display().SetFullscreen(on)
		s.App.Logger().Debug("fullscreen toggled", "on", on)
	}
}

func (s *Settings) Draw(r *engine.Renderer) {
	r.Fill(core.MenuGray)
	s.Scene.Draw(r)
	drawTitle(r, s.App.Resolution().X/2, "Settings")
}
