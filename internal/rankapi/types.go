package rankapi

import "github.com/marketsift/marketsift/internal/ranking"

// CandidatePayload is one candidate on the wire. Metric entries with a
// JSON null value are explicit missing markers; a metric key absent
// from the map entirely fails validation.
type CandidatePayload struct {
	ID      string              `json:"id"`
	Metrics map[string]*float64 `json:"metrics"`
}

// RankRequest drives one ranking run. Weights are optional: when
// omitted, the server infers them from the free-text intent.
type RankRequest struct {
	Intent     string               `json:"intent"`
	Weights    ranking.WeightVector `json:"weights,omitempty"`
	Candidates []CandidatePayload   `json:"candidates"`
	TopK       int                  `json:"top_k"`
}

type RankResponse struct {
	Success bool                      `json:"success"`
	Weights ranking.WeightVector      `json:"weights,omitempty"`
	Ranked  []ranking.ScoredCandidate `json:"ranked"`
	Error   string                    `json:"error,omitempty"`
}

type MetricPayload struct {
	Name      string `json:"name"`
	Direction string `json:"direction"`
}

type MetricsResponse struct {
	Success bool            `json:"success"`
	Metrics []MetricPayload `json:"metrics"`
}

func (p CandidatePayload) toCandidate() ranking.Candidate {
	raw := make(map[string]ranking.Value, len(p.Metrics))
	for name, v := range p.Metrics {
		if v == nil {
			raw[name] = ranking.Missing()
		} else {
			raw[name] = ranking.Num(*v)
		}
	}
	return ranking.Candidate{ID: p.ID, RawMetrics: raw}
}
