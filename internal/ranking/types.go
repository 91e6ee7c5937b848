// Package ranking contains the hybrid ranking engine: min-max
// normalization of heterogeneous product metrics, weighted composite
// scoring, and deterministic top-K ordering.
package ranking

import "fmt"

// Direction states whether a higher or lower raw value is more desirable.
type Direction int

const (
	HigherIsBetter Direction = iota
	LowerIsBetter
)

func (d Direction) String() string {
	if d == LowerIsBetter {
		return "lower-is-better"
	}
	return "higher-is-better"
}

// MetricDefinition names one metric and its direction.
type MetricDefinition struct {
	Name      string
	Direction Direction
}

// MetricSet is the closed, ordered list of metrics every candidate and
// weight vector must cover. Column order in the score matrix follows
// the set's order.
type MetricSet []MetricDefinition

// Names returns the metric names in set order.
func (s MetricSet) Names() []string {
	names := make([]string, len(s))
	for i, def := range s {
		names[i] = def.Name
	}
	return names
}

// Validate rejects empty sets and duplicate metric names.
func (s MetricSet) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("metric set is empty")
	}
	seen := make(map[string]bool, len(s))
	for _, def := range s {
		if def.Name == "" {
			return fmt.Errorf("metric set contains an unnamed metric")
		}
		if seen[def.Name] {
			return fmt.Errorf("duplicate metric %q in metric set", def.Name)
		}
		seen[def.Name] = true
	}
	return nil
}

// Value is a raw metric value or an explicit missing marker. The zero
// Value is missing, so absent optional fields convert safely.
type Value struct {
	Float   float64
	Present bool
}

// Num wraps a present numeric value.
func Num(f float64) Value {
	return Value{Float: f, Present: true}
}

// Missing returns the explicit missing-value marker.
func Missing() Value {
	return Value{}
}

// Candidate is one product record prior to normalization. RawMetrics
// must contain an entry for every metric in the set; use Missing() for
// values the extractor could not supply. The engine never mutates it.
type Candidate struct {
	ID         string
	RawMetrics map[string]Value
}

// WeightVector maps metric name to a non-negative relative importance.
// Keys must exactly match the metric set; the engine renormalizes the
// weights to sum to 1 before scoring.
type WeightVector map[string]float64

// NormalizedCandidate holds per-metric values rescaled onto [0,1],
// recomputed every run.
type NormalizedCandidate struct {
	ID          string
	NormMetrics map[string]float64
}

// ScoredCandidate is the engine's output element. Rank is 1-based and
// contiguous in the returned order.
type ScoredCandidate struct {
	ID    string  `json:"id"`
	Score float64 `json:"score"`
	Rank  int     `json:"rank"`
}
