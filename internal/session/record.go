// Package session assembles the durable Session Record: respondent
// meta, answers, score tensors, rankings, event log and AI reports.
package session

import (
	"strings"
	"time"

	"github.com/neolab/neodiag/internal/catalog"
	"github.com/neolab/neodiag/internal/ledger"
	"github.com/neolab/neodiag/internal/plan"
	"github.com/neolab/neodiag/internal/scoring"
)

// Schema identifies the serialized record layout.
const Schema = "ai-neo.session.v8"

// AppVersion is stamped into every record.
const AppVersion = "mvp-8.0-positions-24"

// Meta carries identity and respondent intake fields.
type Meta struct {
	Schema        string    `json:"schema"`
	AppVersion    string    `json:"app_version"`
	Timestamp     time.Time `json:"timestamp"`
	SessionID     string    `json:"session_id"`
	Name          string    `json:"name"`
	Request       string    `json:"request"`
	Contact       string    `json:"contact"`
	QuestionCount int       `json:"question_count"`
	AnsweredCount int       `json:"answered_count"`
}

// Record is the full serializable session aggregate. It is created at
// finalize time, mutated afterwards only by attaching AI reports, and
// never deleted from within the application.
type Record struct {
	Meta         Meta                              `json:"meta"`
	Answers      map[string]string                 `json:"answers"`
	Scores       scoring.Tensor                    `json:"scores"`
	ColScores    map[catalog.Column]scoring.Tensor `json:"col_scores"`
	PosScores    map[int]scoring.Tensor            `json:"pos_scores"`
	Top3         []scoring.Ranked                  `json:"top3"`
	Top6         []scoring.Ranked                  `json:"top6"`
	EventLog     []ledger.Event                    `json:"event_log"`
	ClientReport string                            `json:"ai_client_report"`
	MasterReport string                            `json:"ai_master_report"`
}

// Finalize derives a Record from the ledger. It is a pure composition:
// the plan and scores are recomputed from the current answers, so a
// record is always internally consistent even when the ledger is
// incomplete (early finish is allowed).
func Finalize(led *ledger.Ledger, sessionID string, now time.Time) *Record {
	answers := led.Answers()
	questions := plan.Build(answers)
	scores := scoring.Score(answers, questions)

	return &Record{
		Meta: Meta{
			Schema:        Schema,
			AppVersion:    AppVersion,
			Timestamp:     now.UTC(),
			SessionID:     sessionID,
			Name:          trimmedAnswer(answers, catalog.IntakeNameID),
			Request:       trimmedAnswer(answers, catalog.IntakeRequestID),
			Contact:       trimmedAnswer(answers, catalog.IntakeContactID),
			QuestionCount: len(questions),
			AnsweredCount: led.AnsweredCount(),
		},
		Answers:   answers,
		Scores:    scores.Global,
		ColScores: scores.ByColumn,
		PosScores: scores.ByPosition,
		Top3:      scoring.TopN(scores.Global, 3),
		Top6:      scoring.TopN(scores.Global, 6),
		EventLog:  led.Events(),
	}
}

func trimmedAnswer(answers map[string]string, id string) string {
	return strings.TrimSpace(answers[id])
}
