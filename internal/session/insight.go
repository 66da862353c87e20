package session

import (
	"fmt"

	"github.com/neolab/neodiag/internal/catalog"
	"github.com/neolab/neodiag/internal/scoring"
)

// InsightTable is the ranked-summary view of a record handed to the
// reporting collaborator and shown on the results screen.
type InsightTable struct {
	Meta           Meta                                `json:"meta"`
	Top3           []scoring.Ranked                    `json:"top3"`
	Top6           []scoring.Ranked                    `json:"top6"`
	Columns        map[catalog.Column][]scoring.Ranked `json:"columns"`
	Positions      map[string][]scoring.Ranked         `json:"positions"`
	AnswersExcerpt map[string]string                   `json:"answers_excerpt"`
}

// excerptKeys are the free-text answers forwarded to the reporting
// collaborator verbatim.
var excerptKeys = []string{catalog.IntakeRequestID}

// BuildInsightTable derives the ranked summary from a record.
func BuildInsightTable(rec *Record) InsightTable {
	cols := make(map[catalog.Column][]scoring.Ranked, 3)
	for _, c := range catalog.Columns() {
		cols[c] = scoring.TopN(rec.ColScores[c], 3)
	}

	positions := make(map[string][]scoring.Ranked, catalog.PositionCount)
	for pos := 1; pos <= catalog.PositionCount; pos++ {
		positions[fmt.Sprintf("pos_%d", pos)] = scoring.TopN(rec.PosScores[pos], 3)
	}

	excerpt := make(map[string]string)
	for _, k := range excerptKeys {
		if v, ok := rec.Answers[k]; ok {
			excerpt[k] = v
		}
	}

	return InsightTable{
		Meta:           rec.Meta,
		Top3:           scoring.TopN(rec.Scores, 3),
		Top6:           scoring.TopN(rec.Scores, 6),
		Columns:        cols,
		Positions:      positions,
		AnswersExcerpt: excerpt,
	}
}
