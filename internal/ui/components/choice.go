package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/neolab/neodiag/internal/ui/theme"
)

// ChoiceOption is one selectable entry of a Choice list.
type ChoiceOption struct {
	ID    string
	Label string
}

// Choice is a single-select option list. Unlike a graded quiz there is
// no correct answer — every option is a valid diagnostic signal.
type Choice struct {
	Options  []ChoiceOption
	Selected int
}

// NewChoice creates a choice list over the given options.
func NewChoice(options []ChoiceOption) Choice {
	return Choice{Options: options}
}

// Init returns nil.
func (c Choice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation. Selection is read by the caller
// via Value after it observes the enter key.
func (c Choice) Update(msg tea.Msg) (Choice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	}

	return c, nil
}

// Value returns the option id under the cursor, or "" for an empty list.
func (c Choice) Value() string {
	if c.Selected < 0 || c.Selected >= len(c.Options) {
		return ""
	}
	return c.Options[c.Selected].ID
}

// View renders the option list.
func (c Choice) View() string {
	var s string
	for i, opt := range c.Options {
		prefix := "    "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == c.Selected {
			prefix = "  ▸ "
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		s += style.Render(prefix+opt.Label) + "\n"
	}
	return s
}
