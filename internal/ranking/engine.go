package ranking

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// Engine binds a metric set to the normalize/score/rank pipeline. It
// holds no mutable state between runs, so one Engine may serve
// concurrent independent ranking requests.
type Engine struct {
	set     MetricSet
	epsilon float64
	topK    int
}

type EngineOption func(*Engine)

// WithEpsilon overrides the tie-break score tolerance.
func WithEpsilon(epsilon float64) EngineOption {
	return func(e *Engine) {
		e.epsilon = epsilon
	}
}

// WithTopK sets the default result count used when Rank is called with
// a non-positive k.
func WithTopK(k int) EngineOption {
	return func(e *Engine) {
		e.topK = k
	}
}

// DefaultTopK mirrors the recommendation count the presentation layer
// historically displayed.
const DefaultTopK = 3

func NewEngine(set MetricSet, opts ...EngineOption) (*Engine, error) {
	if err := set.Validate(); err != nil {
		return nil, fmt.Errorf("new engine: %w", err)
	}

	e := &Engine{
		set:     set,
		epsilon: DefaultEpsilon,
		topK:    DefaultTopK,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Metrics returns the engine's metric set.
func (e *Engine) Metrics() MetricSet {
	return e.set
}

// Rank runs one full ranking pass: fail-fast validation of weights and
// candidates, per-run min-max normalization, composite scoring, then
// deterministic top-k ordering. Inputs are never mutated and nothing is
// cached across calls.
func (e *Engine) Rank(candidates []Candidate, weights WeightVector, k int) ([]ScoredCandidate, error) {
	if k <= 0 {
		k = e.topK
	}

	// Both validations run before any normalization work so a bad run
	// never fails mid-computation.
	if err := ValidateWeights(e.set, weights); err != nil {
		return nil, err
	}
	if err := ValidateCandidates(e.set, candidates); err != nil {
		return nil, err
	}

	normalized, err := Normalize(e.set, candidates)
	if err != nil {
		return nil, err
	}

	scored, err := Score(e.set, normalized, weights)
	if err != nil {
		return nil, err
	}

	ranked := Rank(scored, k, e.epsilon)
	log.Debug().Int("candidates", len(candidates)).Int("returned", len(ranked)).Msg("ranking run complete")
	return ranked, nil
}
