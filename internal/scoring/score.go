// Package scoring aggregates potential-stage answers into count tensors
// and ranks them for reporting.
package scoring

import (
	"github.com/neolab/neodiag/internal/catalog"
	"github.com/neolab/neodiag/internal/plan"
)

// Tensor maps each potential to a non-negative count. Every tensor
// carries all nine potentials, zeroes included, so serialized records
// are shape-stable.
type Tensor map[catalog.Potential]int

// NewTensor returns a tensor with all potentials at zero.
func NewTensor() Tensor {
	t := make(Tensor, len(catalog.Potentials()))
	for _, p := range catalog.Potentials() {
		t[p] = 0
	}
	return t
}

// Scores holds the three accumulation dimensions.
type Scores struct {
	Global     Tensor
	ByColumn   map[catalog.Column]Tensor
	ByPosition map[int]Tensor
}

// Score walks the answers against the plan derived from those same
// answers. Each potential-stage answer whose value is a known potential
// contributes +1 to the global tensor, its column's tensor and its
// position's tensor. Everything else — intake, sphere answers, and
// answers to questions no longer in the plan (a changed sphere choice
// orphans them) — contributes nothing.
func Score(answers map[string]string, questions []catalog.Question) Scores {
	s := Scores{
		Global:     NewTensor(),
		ByColumn:   make(map[catalog.Column]Tensor, 3),
		ByPosition: make(map[int]Tensor, catalog.PositionCount),
	}
	for _, c := range catalog.Columns() {
		s.ByColumn[c] = NewTensor()
	}
	for pos := 1; pos <= catalog.PositionCount; pos++ {
		s.ByPosition[pos] = NewTensor()
	}

	idx := plan.Index(questions)

	for qid, value := range answers {
		q, ok := idx[qid]
		if !ok || q.Stage != catalog.StagePotential {
			continue
		}
		pot, ok := catalog.ParsePotential(value)
		if !ok {
			continue
		}

		s.Global[pot]++
		if t, ok := s.ByColumn[q.Column]; ok {
			t[pot]++
		}
		if t, ok := s.ByPosition[q.Position]; ok {
			t[pot]++
		}
	}

	return s
}
