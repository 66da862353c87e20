// Package home implements the entry screen with the main menu.
package home

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/neolab/neodiag/internal/report"
	"github.com/neolab/neodiag/internal/router"
	"github.com/neolab/neodiag/internal/screen"
	"github.com/neolab/neodiag/internal/screens/admin"
	"github.com/neolab/neodiag/internal/screens/survey"
	"github.com/neolab/neodiag/internal/store"
	"github.com/neolab/neodiag/internal/ui/theme"
)

// menuItem is one entry of the home menu.
type menuItem struct {
	label  string
	action func() tea.Cmd
}

// HomeScreen is the application entry screen.
type HomeScreen struct {
	items    []menuItem
	selected int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen with its collaborators.
func New(sessions *store.SessionRepo, reporter *report.Service, masterPassword string) *HomeScreen {
	items := []menuItem{
		{
			label: "Пройти диагностику",
			action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: survey.New(sessions)}
				}
			},
		},
		{
			label: "Мастер-панель",
			action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: admin.New(sessions, reporter, masterPassword)}
				}
			},
		},
		{
			label: "Выход",
			action: func() tea.Cmd {
				return tea.Quit
			},
		},
	}

	return &HomeScreen{items: items}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "💠 Диагностика потенциалов"
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return h, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if h.selected > 0 {
			h.selected--
		}
	case "down", "j":
		if h.selected < len(h.items)-1 {
			h.selected++
		}
	case "enter":
		return h, h.items[h.selected].action()
	}

	return h, nil
}

func (h *HomeScreen) View(width, height int) string {
	title := theme.Title.Width(width).Render("NEO Диагностика потенциалов")
	subtitle := theme.Subtitle.Width(width).Render("6 позиций · 9 потенциалов · 3 сферы")

	var menu string
	for i, item := range h.items {
		if i == h.selected {
			menu += theme.Selected.Render("  ▸ "+item.label) + "\n"
		} else {
			menu += theme.Unselected.Render("    "+item.label) + "\n"
		}
	}

	body := title + "\n" + subtitle + "\n\n" + menu

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		AlignVertical(lipgloss.Center).
		Render(body)
}
