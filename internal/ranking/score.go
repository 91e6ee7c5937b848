package ranking

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ValidateWeights checks the weight vector against the metric set: keys
// must match exactly, no weight may be negative, and the sum must be
// positive so renormalization is possible.
func ValidateWeights(set MetricSet, weights WeightVector) error {
	if len(weights) != len(set) {
		return &InvalidWeightsError{Reason: fmt.Sprintf("expected %d weights, got %d", len(set), len(weights))}
	}
	sum := 0.0
	for _, def := range set {
		w, ok := weights[def.Name]
		if !ok {
			return &InvalidWeightsError{Reason: fmt.Sprintf("missing weight for metric %q", def.Name)}
		}
		if w < 0 {
			return &InvalidWeightsError{Reason: fmt.Sprintf("negative weight %f for metric %q", w, def.Name)}
		}
		sum += w
	}
	if sum <= 0 {
		return &InvalidWeightsError{Reason: fmt.Sprintf("weights sum to %f, must be positive", sum)}
	}
	return nil
}

// weightColumn renormalizes the weights to sum to exactly 1 and lays
// them out in metric-set order.
func weightColumn(set MetricSet, weights WeightVector) []float64 {
	col := make([]float64, len(set))
	for i, def := range set {
		col[i] = weights[def.Name]
	}
	sum := floats.Sum(col)
	if sum > 0 {
		floats.Scale(1.0/sum, col)
	}
	return col
}

// Score computes the composite score for every normalized candidate as
// the weighted sum of its normalized metrics. Pure and deterministic:
// identical inputs always produce identical scores. Rank is left unset.
func Score(set MetricSet, normalized []NormalizedCandidate, weights WeightVector) ([]ScoredCandidate, error) {
	if err := ValidateWeights(set, weights); err != nil {
		return nil, err
	}

	if len(normalized) == 0 {
		return []ScoredCandidate{}, nil
	}

	rows, cols := len(normalized), len(set)
	data := make([]float64, 0, rows*cols)
	for _, nc := range normalized {
		for _, def := range set {
			data = append(data, nc.NormMetrics[def.Name])
		}
	}
	normMatrix := mat.NewDense(rows, cols, data)
	w := mat.NewVecDense(cols, weightColumn(set, weights))

	var composite mat.VecDense
	composite.MulVec(normMatrix, w)

	scored := make([]ScoredCandidate, rows)
	for i, nc := range normalized {
		scored[i] = ScoredCandidate{ID: nc.ID, Score: composite.AtVec(i)}
	}
	return scored, nil
}
