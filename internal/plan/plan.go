// Package plan derives the ordered question list of a session from the
// answers given so far. The plan is a pure function of the answer
// snapshot: it only ever grows as answers arrive and never reorders
// entries already emitted.
package plan

import "github.com/neolab/neodiag/internal/catalog"

// Build returns the current plan for the given answer snapshot:
// the three intake questions, then for each position 1..6 its two
// sphere questions followed — once the position's sphere is known —
// by the two potential questions of the chosen sphere.
//
// Positions are independent: an unanswered earlier position hides only
// its own potential questions, never later positions.
func Build(answers map[string]string) []catalog.Question {
	out := make([]catalog.Question, 0, 3+catalog.PositionCount*4)
	out = append(out, catalog.IntakeQuestions()...)

	for pos := 1; pos <= catalog.PositionCount; pos++ {
		sq := catalog.SphereQuestions(pos)
		out = append(out, sq[0], sq[1])

		sphere, ok := ChosenSphere(answers, pos)
		if !ok {
			continue
		}

		pq := catalog.PotentialQuestions(pos, sphere)
		out = append(out, pq[0], pq[1])
	}

	return out
}

// ChosenSphere resolves the sphere of a position from the answers to its
// two sphere questions. The first answer wins; when only the second is
// present it decides; on conflict the first wins. Returns false while
// neither question has a valid sphere answer.
func ChosenSphere(answers map[string]string, pos int) (catalog.Sphere, bool) {
	if s, ok := catalog.ParseSphere(answers[catalog.SphereQuestionID(pos, 1)]); ok {
		return s, true
	}
	if s, ok := catalog.ParseSphere(answers[catalog.SphereQuestionID(pos, 2)]); ok {
		return s, true
	}
	return "", false
}

// Index builds a question-id lookup over a plan.
func Index(questions []catalog.Question) map[string]catalog.Question {
	idx := make(map[string]catalog.Question, len(questions))
	for _, q := range questions {
		idx[q.ID] = q
	}
	return idx
}
