package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/henri123lemoine/plant-haiku/internal/ui"
)

// RerunFunc resolves a re-invocation reference into a fresh panel.
type RerunFunc func(ref string) (ui.Panel, error)

// Model is the preview application model.
type Model struct {
	// Data
	panel ui.Panel
	theme ui.Theme
	rerun RerunFunc

	// State
	loading bool
	err     error
	taps    int

	// UI
	width  int
	height int
	keys   KeyMap

	// Exit behavior
	shouldQuit bool
}

// New creates a new Model showing panel. rerun may be nil, in which case
// taps are ignored.
func New(panel ui.Panel, theme ui.Theme, rerun RerunFunc) Model {
	return Model{
		panel: panel,
		theme: theme,
		rerun: rerun,
		keys:  DefaultKeyMap(),
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case PanelLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			// Keep showing the previous panel
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		m.panel = msg.Panel
		m.taps++
		return m, nil
	}

	return m, nil
}

// handleKeyPress handles key presses.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.shouldQuit = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Tap):
		if m.loading || m.rerun == nil || m.panel.URL == "" {
			return m, nil
		}
		m.loading = true
		return m, rerunPanel(m.rerun, m.panel.URL)
	}
	return m, nil
}

// View renders the UI.
func (m Model) View() string {
	return ui.RenderPreview(ui.PreviewParams{
		Panel:  m.panel,
		Theme:  m.theme,
		Width:  m.width,
		Height: m.height,
		Err:    m.err,
		Help:   m.help(),
	})
}

func (m Model) help() string {
	if m.rerun == nil || m.panel.URL == "" {
		q := m.keys.Quit.Help()
		return q.Key + " " + q.Desc
	}
	return m.keys.HelpText()
}

// Panel returns the panel currently shown.
func (m Model) Panel() ui.Panel {
	return m.panel
}

// Taps returns how many taps produced a new panel.
func (m Model) Taps() int {
	return m.taps
}

// ShouldQuit returns true if the app should quit.
func (m Model) ShouldQuit() bool {
	return m.shouldQuit
}

// Commands

func rerunPanel(rerun RerunFunc, ref string) tea.Cmd {
	return func() tea.Msg {
		panel, err := rerun(ref)
		return PanelLoadedMsg{Panel: panel, Err: err}
	}
}
