package intent

import (
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/marketsift/marketsift/internal/ranking"
)

const (
	baseEmphasis    = 1.0
	keywordEmphasis = 2.0
)

// defaultKeywords maps metric names to intent phrases that emphasize
// them. Only metrics present in the configured set are ever emitted.
var defaultKeywords = map[string][]string{
	"Price":        {"cheap", "cheapest", "budget", "affordable", "inexpensive", "low price"},
	"Rating":       {"quality", "best", "top rated", "reliable", "well made", "good"},
	"Reviews":      {"popular", "bestseller", "well reviewed", "many reviews"},
	"DeliveryDays": {"fast", "quick", "urgent", "tomorrow", "asap", "soon", "delivered"},
}

// RuleInferrer is the table-lookup weight inference mechanism: every
// metric starts at a uniform base weight, and each matched keyword adds
// a fixed emphasis to its metric. Deterministic and dependency-free.
type RuleInferrer struct {
	set      ranking.MetricSet
	keywords map[string][]string
}

func NewRuleInferrer(set ranking.MetricSet) *RuleInferrer {
	return &RuleInferrer{set: set, keywords: defaultKeywords}
}

func (r *RuleInferrer) Infer(text string) (ranking.WeightVector, error) {
	lowered := strings.ToLower(text)

	weights := make(ranking.WeightVector, len(r.set))
	for _, def := range r.set {
		weights[def.Name] = baseEmphasis
		for _, kw := range r.keywords[def.Name] {
			if strings.Contains(lowered, kw) {
				weights[def.Name] += keywordEmphasis
			}
		}
	}

	log.Debug().Str("intent", text).Interface("weights", weights).Msg("rule-based weights inferred")
	return weights, nil
}
