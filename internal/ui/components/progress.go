package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/neolab/neodiag/internal/ui/theme"
)

// ProgressBar displays answered/total session progress.
type ProgressBar struct {
	Done  int
	Total int
	Width int
}

// NewProgressBar creates a progress bar.
func NewProgressBar(done, total, width int) ProgressBar {
	return ProgressBar{Done: done, Total: total, Width: width}
}

// View renders the bar with a "done/total" suffix.
func (p ProgressBar) View() string {
	suffix := fmt.Sprintf(" %d/%d", p.Done, p.Total)

	barWidth := p.Width - lipgloss.Width(suffix)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := 0
	if p.Total > 0 {
		filled = barWidth * p.Done / p.Total
	}
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}

	bar := lipgloss.NewStyle().Background(theme.Secondary).Render(strings.Repeat(" ", filled)) +
		lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", barWidth-filled))

	return bar + lipgloss.NewStyle().Foreground(theme.TextDim).Render(suffix)
}
