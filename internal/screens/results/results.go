// Package results renders the insight table of a finished session.
package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/neolab/neodiag/internal/catalog"
	"github.com/neolab/neodiag/internal/router"
	"github.com/neolab/neodiag/internal/screen"
	"github.com/neolab/neodiag/internal/scoring"
	"github.com/neolab/neodiag/internal/session"
	"github.com/neolab/neodiag/internal/ui/layout"
	"github.com/neolab/neodiag/internal/ui/theme"
)

// ResultsScreen shows the preliminary outcome of a session.
type ResultsScreen struct {
	record  *session.Record
	table   session.InsightTable
	saveErr error
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a results screen. saveErr, when non-nil, is shown as a
// warning: results are displayed even when the durable write failed.
func New(rec *session.Record, saveErr error) *ResultsScreen {
	return &ResultsScreen{
		record:  rec,
		table:   session.BuildInsightTable(rec),
		saveErr: saveErr,
	}
}

func (r *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultsScreen) Title() string {
	return "Результат"
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter/Esc", Description: "В меню"},
	}
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			// The results screen replaced the survey on the stack, so
			// one pop returns to the menu.
			return r, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return r, nil
}

func (r *ResultsScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Body.Bold(true).Render("Диагностика завершена ✅") + "\n\n")

	if r.saveErr != nil {
		b.WriteString(theme.Warning.Render("Не удалось сохранить сессию: "+r.saveErr.Error()) + "\n\n")
	}

	b.WriteString(theme.Selected.Render("Топ-3 потенциала") + "\n")
	b.WriteString(renderRanked(r.table.Top3) + "\n")

	b.WriteString(theme.Selected.Render("Топ-6") + "\n")
	b.WriteString(renderRanked(r.table.Top6) + "\n")

	b.WriteString(theme.Selected.Render("Колонки") + "\n")
	for _, c := range catalog.Columns() {
		b.WriteString(theme.Hint.Render(catalog.ColumnLabels[c]) + "\n")
		b.WriteString(renderRanked(r.table.Columns[c]))
	}
	b.WriteString("\n")

	b.WriteString(theme.Selected.Render("Позиции") + "\n")
	for pos := 1; pos <= catalog.PositionCount; pos++ {
		b.WriteString(theme.Hint.Render(catalog.PositionLabel(pos)) + "\n")
		b.WriteString(renderRanked(r.table.Positions[fmt.Sprintf("pos_%d", pos)]))
	}

	b.WriteString("\n" + theme.Hint.Render(fmt.Sprintf(
		"Вопросов: %d · Ответов: %d · Сессия %s",
		r.record.Meta.QuestionCount,
		r.record.Meta.AnsweredCount,
		shortID(r.record.Meta.SessionID),
	)))

	return lipgloss.NewStyle().Padding(1, 4).Width(width).Render(b.String())
}

func renderRanked(entries []scoring.Ranked) string {
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(theme.Body.Render(fmt.Sprintf("  %s — %d", e.Potential, e.Score)) + "\n")
	}
	return b.String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
