// Package ledger records the answers of a single respondent together
// with a chronological event log used for audit and progress display.
package ledger

import (
	"errors"
	"strings"
	"time"

	"github.com/neolab/neodiag/internal/catalog"
)

// ErrEmptyAnswer is returned when a required answer is empty. The ledger
// is left unchanged; the respondent must resubmit.
var ErrEmptyAnswer = errors.New("answer must not be empty")

// Event is one immutable entry of the chronological log.
type Event struct {
	Timestamp    time.Time          `json:"timestamp"`
	QuestionID   string             `json:"question_id"`
	QuestionText string             `json:"question_text"`
	AnswerType   catalog.AnswerType `json:"answer_type"`
	Answer       string             `json:"answer"`
}

// Ledger holds the answers-so-far (last write per question wins) and the
// append-only event log. The navigation cursor into the plan is session
// state owned by the caller, not by the ledger.
type Ledger struct {
	answers map[string]string
	events  []Event
	now     func() time.Time
}

// New creates an empty ledger stamping events with time.Now.
func New() *Ledger {
	return NewWithClock(time.Now)
}

// NewWithClock creates an empty ledger with an injectable clock.
func NewWithClock(now func() time.Time) *Ledger {
	return &Ledger{
		answers: make(map[string]string),
		now:     now,
	}
}

// Record stores an answer for the question, overwriting any prior answer
// for the same id, and appends one event. Empty answers are rejected with
// ErrEmptyAnswer and leave the ledger untouched.
func (l *Ledger) Record(q catalog.Question, value string) error {
	if !NonEmpty(q, value) {
		return ErrEmptyAnswer
	}

	l.answers[q.ID] = value
	l.events = append(l.events, Event{
		Timestamp:    l.now().UTC(),
		QuestionID:   q.ID,
		QuestionText: q.Text,
		AnswerType:   q.Type,
		Answer:       value,
	})
	return nil
}

// IsAnswered reports whether the question id has an answer.
func (l *Ledger) IsAnswered(id string) bool {
	_, ok := l.answers[id]
	return ok
}

// Answers returns a copy of the answer map.
func (l *Ledger) Answers() map[string]string {
	out := make(map[string]string, len(l.answers))
	for k, v := range l.answers {
		out[k] = v
	}
	return out
}

// Events returns the event log in chronological order.
func (l *Ledger) Events() []Event {
	out := make([]Event, len(l.events))
	copy(out, l.events)
	return out
}

// AnsweredCount returns the number of recorded events. Re-answering a
// question counts again: the log is the audit trail, not the answer map.
func (l *Ledger) AnsweredCount() int {
	return len(l.events)
}

// NonEmpty reports whether value is a valid non-empty answer for the
// question: trimmed non-blank for text questions, any present option id
// for single-choice questions.
func NonEmpty(q catalog.Question, value string) bool {
	if q.Type == catalog.TypeText {
		return strings.TrimSpace(value) != ""
	}
	return value != ""
}
