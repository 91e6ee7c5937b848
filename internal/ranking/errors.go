package ranking

import "fmt"

// ValidationError reports a candidate whose raw metrics do not conform
// to the metric set. It names the offending candidate and metric so a
// failed run is attributable, not generic.
type ValidationError struct {
	CandidateID string
	Metric      string
	Reason      string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid candidate %q: metric %q: %s", e.CandidateID, e.Metric, e.Reason)
}

// InvalidWeightsError reports a weight vector whose keys mismatch the
// metric set or whose weights cannot be renormalized.
type InvalidWeightsError struct {
	Reason string
}

func (e *InvalidWeightsError) Error() string {
	return fmt.Sprintf("invalid weight vector: %s", e.Reason)
}
