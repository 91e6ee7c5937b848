package ranking

import "sort"

// DefaultEpsilon is the score tolerance below which two candidates are
// treated as tied and keep their original relative order.
const DefaultEpsilon = 1e-9

// Rank orders scored candidates by descending score and returns the top
// k with 1-based contiguous ranks assigned. Scores within epsilon of
// each other are ties: the stable sort preserves their original
// extraction order, so the output is fully deterministic for a given
// input order. k larger than the candidate count returns everything;
// an empty input returns an empty slice, never an error.
func Rank(scored []ScoredCandidate, k int, epsilon float64) []ScoredCandidate {
	ranked := make([]ScoredCandidate, len(scored))
	copy(ranked, scored)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score-ranked[j].Score > epsilon
	})

	for i := range ranked {
		ranked[i].Rank = i + 1
	}

	if k < 0 {
		k = 0
	}
	if k < len(ranked) {
		ranked = ranked[:k]
	}
	return ranked
}
