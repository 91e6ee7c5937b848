package config

import (
	"fmt"
	"strings"

	"github.com/marketsift/marketsift/internal/ranking"
)

// ParseMetricSet parses a METRIC_SET spec string of comma-separated
// name:direction pairs (direction one of "higher" or "lower") into a
// validated metric set, e.g. "Price:lower,Rating:higher".
func ParseMetricSet(spec string) (ranking.MetricSet, error) {
	var set ranking.MetricSet
	for _, pair := range strings.Split(spec, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		name, dir, ok := strings.Cut(pair, ":")
		if !ok {
			return nil, fmt.Errorf("metric spec %q: expected name:direction", pair)
		}
		def := ranking.MetricDefinition{Name: strings.TrimSpace(name)}
		switch strings.ToLower(strings.TrimSpace(dir)) {
		case "higher":
			def.Direction = ranking.HigherIsBetter
		case "lower":
			def.Direction = ranking.LowerIsBetter
		default:
			return nil, fmt.Errorf("metric spec %q: unknown direction %q", pair, dir)
		}
		set = append(set, def)
	}
	if err := set.Validate(); err != nil {
		return nil, fmt.Errorf("metric spec %q: %w", spec, err)
	}
	return set, nil
}
