// Package survey implements the respondent-facing question flow. It
// walks the live plan, records answers into the ledger and re-derives
// the plan after every answer so newly unlocked potential questions
// appear in place.
package survey

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/neolab/neodiag/internal/catalog"
	"github.com/neolab/neodiag/internal/ledger"
	"github.com/neolab/neodiag/internal/plan"
	"github.com/neolab/neodiag/internal/router"
	"github.com/neolab/neodiag/internal/screen"
	"github.com/neolab/neodiag/internal/screens/results"
	"github.com/neolab/neodiag/internal/session"
	"github.com/neolab/neodiag/internal/store"
	"github.com/neolab/neodiag/internal/ui/components"
	"github.com/neolab/neodiag/internal/ui/layout"
	"github.com/neolab/neodiag/internal/ui/theme"
)

// SurveyScreen drives one diagnostic session from intake to results.
type SurveyScreen struct {
	sessions  *store.SessionRepo
	sessionID string
	led       *ledger.Ledger

	// questions is the current plan; cursor indexes into it. Both are
	// refreshed after every recorded answer.
	questions []catalog.Question
	cursor    int

	input  components.TextInput
	choice components.Choice
	warn   string

	finishing bool
}

var _ screen.Screen = (*SurveyScreen)(nil)
var _ screen.KeyHintProvider = (*SurveyScreen)(nil)
var _ screen.HeaderNoteProvider = (*SurveyScreen)(nil)

// New creates a survey screen with a fresh session id and empty ledger.
func New(sessions *store.SessionRepo) *SurveyScreen {
	s := &SurveyScreen{
		sessions:  sessions,
		sessionID: uuid.NewString(),
		led:       ledger.New(),
	}
	s.questions = plan.Build(nil)
	s.prepareInput()
	return s
}

func (s *SurveyScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *SurveyScreen) Title() string {
	return "Диагностика"
}

// HeaderNote shows the position in the live plan.
func (s *SurveyScreen) HeaderNote() string {
	if s.cursor >= len(s.questions) {
		return ""
	}
	q := s.questions[s.cursor]
	return fmt.Sprintf("вопрос %d из %d · %s", s.cursor+1, len(s.questions), q.Stage)
}

func (s *SurveyScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Далее"},
		{Key: "Ctrl+E", Description: "Завершить сейчас"},
		{Key: "Esc", Description: "Назад в меню"},
	}
}

func (s *SurveyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case finalizedMsg:
		// Replace rather than push: the survey is over, esc from the
		// results screen should land on the menu, not on a spent survey.
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: results.New(msg.Record, msg.SaveErr)}
		}

	case tea.KeyMsg:
		if s.finishing {
			return s, nil
		}
		switch msg.String() {
		case "enter":
			return s.submit()
		case "ctrl+e":
			return s.finalize()
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}

	if s.finishing || s.cursor >= len(s.questions) {
		return s, nil
	}

	var cmd tea.Cmd
	if s.current().Type == catalog.TypeText {
		s.input, cmd = s.input.Update(msg)
	} else {
		s.choice, cmd = s.choice.Update(msg)
	}
	return s, cmd
}

func (s *SurveyScreen) current() catalog.Question {
	return s.questions[s.cursor]
}

// submit validates and records the current answer, then re-derives the
// plan and advances. An empty answer is rejected in place: ledger,
// plan and cursor all stay unchanged.
func (s *SurveyScreen) submit() (screen.Screen, tea.Cmd) {
	if s.cursor >= len(s.questions) {
		return s.finalize()
	}

	q := s.current()
	value := s.choice.Value()
	if q.Type == catalog.TypeText {
		value = s.input.Value()
	}

	if err := s.led.Record(q, value); err != nil {
		s.warn = "Заполни ответ."
		return s, nil
	}
	s.warn = ""

	// The answer may have unlocked potential questions; rebuild before
	// advancing so they are visited in plan order.
	s.questions = plan.Build(s.led.Answers())
	s.cursor++

	if s.cursor >= len(s.questions) {
		return s.finalize()
	}

	s.prepareInput()
	return s, s.input.Init()
}

// prepareInput resets the answer widgets for the question under the cursor.
func (s *SurveyScreen) prepareInput() {
	if s.cursor >= len(s.questions) {
		return
	}
	q := s.current()
	if q.Type == catalog.TypeText {
		s.input = components.NewTextInput("Ответ...", 0)
		return
	}
	opts := make([]components.ChoiceOption, len(q.Options))
	for i, o := range q.Options {
		opts[i] = components.ChoiceOption{ID: o.ID, Label: o.Text}
	}
	s.choice = components.NewChoice(opts)
}

// finalize assembles the record and saves it best-effort. A failed save
// still shows results; the error surfaces as a warning line there.
func (s *SurveyScreen) finalize() (screen.Screen, tea.Cmd) {
	s.finishing = true
	led := s.led
	sessionID := s.sessionID
	sessions := s.sessions

	return s, func() tea.Msg {
		rec := session.Finalize(led, sessionID, time.Now())
		var saveErr error
		if sessions != nil {
			saveErr = sessions.Save(context.Background(), rec)
		}
		return finalizedMsg{Record: rec, SaveErr: saveErr}
	}
}

func (s *SurveyScreen) View(width, height int) string {
	if s.finishing {
		return theme.Hint.Width(width).Render("Подсчёт результатов...")
	}
	if s.cursor >= len(s.questions) {
		return ""
	}

	q := s.current()

	progress := components.NewProgressBar(s.cursor, len(s.questions), width-8).View()

	question := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Width(width - 8).
		Render(q.Text)

	var answer string
	if q.Type == catalog.TypeText {
		answer = s.input.View()
	} else {
		answer = s.choice.View()
	}

	body := progress + "\n\n" + question + "\n\n" + answer
	if s.warn != "" {
		body += "\n" + theme.Warning.Render(s.warn)
	}

	return lipgloss.NewStyle().Padding(1, 4).Width(width).Render(body)
}
