package scoring

import (
	"sort"

	"github.com/neolab/neodiag/internal/catalog"
)

// Ranked is one entry of a ranked potential list.
type Ranked struct {
	Potential catalog.Potential `json:"pot"`
	Score     int               `json:"score"`
}

// TopN returns the n highest-scoring potentials of a tensor, descending.
// Ties keep the catalog declaration order: the sort is stable over a
// slice built in that order, which makes the output deterministic.
func TopN(t Tensor, n int) []Ranked {
	ranked := make([]Ranked, 0, len(catalog.Potentials()))
	for _, p := range catalog.Potentials() {
		ranked = append(ranked, Ranked{Potential: p, Score: t[p]})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}
