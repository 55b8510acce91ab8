package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/SrKotaka/Space-Shooter/internal/config"
	"github.com/SrKotaka/Space-Shooter/internal/storage"
)

var (
	launcherTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	launcherCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	launcherDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// LauncherModel is the difficulty picker shown before a terminal run.
type LauncherModel struct {
	modes          []config.DifficultyPreset
	best           map[string]int
	cursor         int
	width          int
	height         int
	keys           NavKeyMap
	help           help.Model
	quitting       bool
	selected       bool
	openScoreboard bool
}

// NewLauncherModel creates a launcher with the cursor on current. Best
// scores per mode come from store when it is not nil.
func NewLauncherModel(store *storage.Store, width, height int, current config.DifficultyPreset) LauncherModel {
	modes := config.Presets()
	m := LauncherModel{
		modes:  modes,
		best:   make(map[string]int),
		width:  width,
		height: height,
		keys:   DefaultNavKeyMap(),
		help:   help.New(),
	}
	for i, p := range modes {
		if p == current {
			m.cursor = i
		}
	}

	if store != nil {
		if stats, err := store.AllStats(); err == nil {
			for mode, st := range stats {
				m.best[mode] = st.HighScore
			}
		}
	}
	return m
}

// Init initializes the launcher.
func (m LauncherModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the launcher.
func (m LauncherModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m LauncherModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.modes)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		m.selected = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Scores):
		m.openScoreboard = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the launcher.
func (m LauncherModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(launcherTitleStyle.Render("S P A C E   S H O O T E R S"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Choose a difficulty", m.width))
	b.WriteString("\n\n")

	for i, mode := range m.modes {
		line := fmt.Sprintf("  %-8s", mode)
		if best, ok := m.best[string(mode)]; ok {
			line += launcherDimStyle.Render(fmt.Sprintf("  best %d", best))
		}
		if i == m.cursor {
			line = launcherCursorStyle.Render("> ") + strings.TrimPrefix(line, "  ")
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(helpStyle.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the chosen mode, ok is false when nothing was chosen.
func (m LauncherModel) Selected() (config.DifficultyPreset, bool) {
	if !m.selected {
		return "", false
	}
	return m.modes[m.cursor], true
}

// IsQuitting returns true if user requested to quit.
func (m LauncherModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m LauncherModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// centerText centers text within given width, measuring printable cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// LauncherResult holds the result of running the launcher.
type LauncherResult struct {
	Mode            config.DifficultyPreset
	WantsScoreboard bool
	Quit            bool
}

// RunLauncher shows the launcher and returns the choice.
func RunLauncher(store *storage.Store, width, height int, current config.DifficultyPreset) (LauncherResult, error) {
	p := tea.NewProgram(
		NewLauncherModel(store, width, height, current),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return LauncherResult{}, err
	}

	m, ok := finalModel.(LauncherModel)
	if !ok {
		return LauncherResult{Quit: true}, nil
	}
	if m.WantsScoreboard() {
		return LauncherResult{Mode: m.modes[m.cursor], WantsScoreboard: true}, nil
	}
	if mode, ok := m.Selected(); ok {
		return LauncherResult{Mode: mode}, nil
	}
	return LauncherResult{Quit: true}, nil
}
