package ranking

import (
	"gonum.org/v1/gonum/floats"
)

const (
	// NeutralScore is assigned to every present value of a degenerate
	// column (min == max), so the metric carries no discriminating power.
	NeutralScore = 0.5

	// MissingScore is the worst-case score assigned to explicit missing
	// values, whatever the metric's direction.
	MissingScore = 0.0
)

// ValidateCandidates checks that every candidate carries an entry, present
// or missing, for every metric in the set. Run before any normalization
// work so failures surface eagerly.
func ValidateCandidates(set MetricSet, candidates []Candidate) error {
	for _, c := range candidates {
		for _, def := range set {
			if _, ok := c.RawMetrics[def.Name]; !ok {
				return &ValidationError{CandidateID: c.ID, Metric: def.Name, Reason: "metric key absent"}
			}
		}
	}
	return nil
}

// Normalize min-max rescales each metric column onto [0,1] over the given
// candidate batch. Bounds are per-run: they are recomputed from scratch on
// every call and must not be cached across batches.
func Normalize(set MetricSet, candidates []Candidate) ([]NormalizedCandidate, error) {
	if err := ValidateCandidates(set, candidates); err != nil {
		return nil, err
	}

	normalized := make([]NormalizedCandidate, len(candidates))
	for i, c := range candidates {
		normalized[i] = NormalizedCandidate{
			ID:          c.ID,
			NormMetrics: make(map[string]float64, len(set)),
		}
	}

	for _, def := range set {
		present := make([]float64, 0, len(candidates))
		for _, c := range candidates {
			if v := c.RawMetrics[def.Name]; v.Present {
				present = append(present, v.Float)
			}
		}

		var minVal, maxVal float64
		if len(present) > 0 {
			minVal = floats.Min(present)
			maxVal = floats.Max(present)
		}

		for i, c := range candidates {
			v := c.RawMetrics[def.Name]
			normalized[i].NormMetrics[def.Name] = normalizeValue(v, def.Direction, minVal, maxVal)
		}
	}

	return normalized, nil
}

func normalizeValue(v Value, dir Direction, minVal, maxVal float64) float64 {
	if !v.Present {
		return MissingScore
	}
	if minVal == maxVal {
		return NeutralScore
	}
	if dir == LowerIsBetter {
		return (maxVal - v.Float) / (maxVal - minVal)
	}
	return (v.Float - minVal) / (maxVal - minVal)
}
