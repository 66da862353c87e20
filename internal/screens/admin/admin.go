// Package admin implements the master panel: a password-gated browser
// over stored session records with on-demand AI report generation.
package admin

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/neolab/neodiag/internal/report"
	"github.com/neolab/neodiag/internal/router"
	"github.com/neolab/neodiag/internal/screen"
	"github.com/neolab/neodiag/internal/session"
	"github.com/neolab/neodiag/internal/store"
	"github.com/neolab/neodiag/internal/ui/components"
	"github.com/neolab/neodiag/internal/ui/layout"
	"github.com/neolab/neodiag/internal/ui/theme"
)

type phase int

const (
	phaseAuth phase = iota
	phaseList
	phaseDetail
)

type sessionsLoadedMsg struct {
	records []*session.Record
	err     error
}

type reportDoneMsg struct {
	reports report.Reports
	saveErr error
	err     error
}

// AdminScreen is the master panel.
type AdminScreen struct {
	sessions *store.SessionRepo
	reporter *report.Service
	secret   string

	phase    phase
	password components.TextInput
	authErr  string

	records []*session.Record
	cursor  int

	selected   *session.Record
	generating bool
	status     string
}

var _ screen.Screen = (*AdminScreen)(nil)
var _ screen.KeyHintProvider = (*AdminScreen)(nil)

// New creates the master panel behind the shared secret.
func New(sessions *store.SessionRepo, reporter *report.Service, secret string) *AdminScreen {
	return &AdminScreen{
		sessions: sessions,
		reporter: reporter,
		secret:   secret,
		password: components.NewPasswordInput("Пароль мастера"),
	}
}

func (a *AdminScreen) Init() tea.Cmd {
	return a.password.Init()
}

func (a *AdminScreen) Title() string {
	return "🛠️ Мастер-панель"
}

func (a *AdminScreen) KeyHints() []layout.KeyHint {
	switch a.phase {
	case phaseAuth:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Войти"},
			{Key: "Esc", Description: "Назад"},
		}
	case phaseList:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Сессии"},
			{Key: "Enter", Description: "Открыть"},
			{Key: "Esc", Description: "Назад"},
		}
	default:
		return []layout.KeyHint{
			{Key: "G", Description: "AI-отчёт"},
			{Key: "Esc", Description: "К списку"},
		}
	}
}

func (a *AdminScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionsLoadedMsg:
		if msg.err != nil {
			a.status = "Не удалось загрузить сессии: " + msg.err.Error()
			return a, nil
		}
		a.records = msg.records
		return a, nil

	case reportDoneMsg:
		a.generating = false
		if msg.err != nil {
			a.status = "Ошибка генерации: " + msg.err.Error()
			return a, nil
		}
		// Attach only after the whole generation succeeded; a partial
		// report is never persisted.
		a.selected.ClientReport = msg.reports.Client
		a.selected.MasterReport = msg.reports.Master
		if msg.saveErr != nil {
			a.status = "Отчёт получен, но не сохранён: " + msg.saveErr.Error()
		} else {
			a.status = "Готово ✅ отчёт сохранён в сессии."
		}
		return a, nil

	case tea.KeyMsg:
		switch a.phase {
		case phaseAuth:
			return a.updateAuth(msg)
		case phaseList:
			return a.updateList(msg)
		default:
			return a.updateDetail(msg)
		}
	}

	if a.phase == phaseAuth {
		var cmd tea.Cmd
		a.password, cmd = a.password.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *AdminScreen) updateAuth(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if msg.String() == "esc" {
		return a, leavePanel()
	}
	if msg.String() == "enter" {
		if a.secret == "" {
			a.authErr = "NEODIAG_MASTER_PASSWORD не задан."
			return a, nil
		}
		if a.password.Value() != a.secret {
			a.authErr = "Неверный пароль"
			return a, nil
		}
		a.phase = phaseList
		a.authErr = ""
		return a, a.loadSessions()
	}

	var cmd tea.Cmd
	a.password, cmd = a.password.Update(msg)
	return a, cmd
}

func (a *AdminScreen) updateList(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < len(a.records)-1 {
			a.cursor++
		}
	case "enter":
		if a.cursor < len(a.records) {
			a.selected = a.records[a.cursor]
			a.status = ""
			a.phase = phaseDetail
		}
	case "esc":
		return a, leavePanel()
	}
	return a, nil
}

func leavePanel() tea.Cmd {
	return func() tea.Msg { return router.PopScreenMsg{} }
}

func (a *AdminScreen) updateDetail(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.phase = phaseList
		return a, a.loadSessions()
	case "g":
		return a.generateReports()
	}
	return a, nil
}

func (a *AdminScreen) loadSessions() tea.Cmd {
	sessions := a.sessions
	return func() tea.Msg {
		records, err := sessions.ListAll(context.Background())
		return sessionsLoadedMsg{records: records, err: err}
	}
}

// generateReports calls the reporting collaborator and persists both
// report fields on success. The feature degrades to a status line when
// no provider is configured.
func (a *AdminScreen) generateReports() (screen.Screen, tea.Cmd) {
	if a.reporter == nil {
		a.status = "AI-отчёты недоступны: провайдер не настроен."
		return a, nil
	}
	if a.generating || a.selected == nil {
		return a, nil
	}

	a.generating = true
	a.status = "Генерация отчёта (" + a.reporter.ModelID() + ")..."

	reporter := a.reporter
	sessions := a.sessions
	rec := a.selected

	return a, func() tea.Msg {
		table := session.BuildInsightTable(rec)
		reports, err := reporter.Generate(context.Background(), table)
		if err != nil {
			return reportDoneMsg{err: err}
		}

		saved := *rec
		saved.ClientReport = reports.Client
		saved.MasterReport = reports.Master
		saveErr := sessions.Save(context.Background(), &saved)

		return reportDoneMsg{reports: reports, saveErr: saveErr}
	}
}

func (a *AdminScreen) View(width, height int) string {
	var body string
	switch a.phase {
	case phaseAuth:
		body = a.viewAuth()
	case phaseList:
		body = a.viewList()
	default:
		body = a.viewDetail(width)
	}
	return lipgloss.NewStyle().Padding(1, 4).Width(width).Render(body)
}

func (a *AdminScreen) viewAuth() string {
	s := theme.Body.Bold(true).Render("Доступ мастера") + "\n\n" + a.password.View()
	if a.authErr != "" {
		s += "\n" + theme.Warning.Render(a.authErr)
	}
	return s
}

func (a *AdminScreen) viewList() string {
	if len(a.records) == 0 {
		return theme.Hint.Render("Пока нет сохранённых сессий.")
	}

	var b strings.Builder
	b.WriteString(theme.Body.Bold(true).Render("Сессии") + "\n\n")
	for i, rec := range a.records {
		label := sessionLabel(rec)
		if i == a.cursor {
			b.WriteString(theme.Selected.Render("  ▸ "+label) + "\n")
		} else {
			b.WriteString(theme.Unselected.Render("    "+label) + "\n")
		}
	}
	if a.status != "" {
		b.WriteString("\n" + theme.Warning.Render(a.status))
	}
	return b.String()
}

func (a *AdminScreen) viewDetail(width int) string {
	rec := a.selected
	var b strings.Builder

	b.WriteString(theme.Body.Bold(true).Render(sessionLabel(rec)) + "\n\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("Имя: %s", dash(rec.Meta.Name))) + "\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("Контакт: %s", dash(rec.Meta.Contact))) + "\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("Запрос: %s", dash(rec.Meta.Request))) + "\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf(
		"Вопросов: %d · Ответов: %d", rec.Meta.QuestionCount, rec.Meta.AnsweredCount)) + "\n\n")

	b.WriteString(theme.Selected.Render("Топ-3") + "\n")
	for _, e := range rec.Top3 {
		b.WriteString(theme.Body.Render(fmt.Sprintf("  %s — %d", e.Potential, e.Score)) + "\n")
	}

	if rec.ClientReport != "" {
		b.WriteString("\n" + theme.Selected.Render("Клиентский отчёт") + "\n")
		b.WriteString(theme.Body.Width(width-8).Render(rec.ClientReport) + "\n")
	}
	if rec.MasterReport != "" {
		b.WriteString("\n" + theme.Selected.Render("Мастерский отчёт") + "\n")
		b.WriteString(theme.Body.Width(width-8).Render(rec.MasterReport) + "\n")
	}

	if a.status != "" {
		b.WriteString("\n" + theme.Warning.Render(a.status))
	}
	return b.String()
}

func sessionLabel(rec *session.Record) string {
	id := rec.Meta.SessionID
	if len(id) > 8 {
		id = id[:8]
	}
	return fmt.Sprintf("%s | %s | %s | %s",
		dash(rec.Meta.Name),
		dash(rec.Meta.Request),
		rec.Meta.Timestamp.Format("2006-01-02 15:04"),
		id,
	)
}

func dash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
