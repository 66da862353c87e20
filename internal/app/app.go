// Package app wires the Bubble Tea program: root model, screen router
// and dependency injection into screens.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/neolab/neodiag/internal/report"
	"github.com/neolab/neodiag/internal/router"
	"github.com/neolab/neodiag/internal/screen"
	"github.com/neolab/neodiag/internal/screens/home"
	"github.com/neolab/neodiag/internal/store"
	"github.com/neolab/neodiag/internal/ui/layout"
)

// Options carries the collaborators screens depend on.
type Options struct {
	// Sessions persists finished diagnostics. Required.
	Sessions *store.SessionRepo

	// Reporter generates AI reports. Nil disables the feature.
	Reporter *report.Service

	// MasterPassword is the shared secret gating the master panel.
	// Empty means the panel cannot be entered at all.
	MasterPassword string
}

// Model is the root Bubble Tea model.
type Model struct {
	router *router.Router
	width  int
	height int
}

func newModel(opts Options) Model {
	return Model{
		router: router.New(home.New(opts.Sessions, opts.Reporter, opts.MasterPassword)),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Only ctrl+c is global. Everything else, esc included, belongs
		// to the active screen: admin uses esc to step back one phase
		// and results to leave the whole survey.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	note := ""
	if active != nil {
		title = active.Title()
		if np, ok := active.(screen.HeaderNoteProvider); ok {
			note = np.HeaderNote()
		}
	}

	header := layout.RenderHeader(title, note, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Навигация"},
		{Key: "Enter", Description: "Выбрать"},
		{Key: "Ctrl+C", Description: "Выход"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); len(hints) > 0 {
			footerHints = hints
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newModel(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
