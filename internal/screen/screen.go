// Package screen defines the interface every application screen
// implements for the router.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/neolab/neodiag/internal/ui/layout"
)

// Screen is one view in the navigation stack.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface screens implement to provide
// custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// HeaderNoteProvider is an optional interface screens implement to put
// a note (e.g. session progress) in the header's right corner.
type HeaderNoteProvider interface {
	HeaderNote() string
}
