package marketplace

import (
	"github.com/marketsift/marketsift/internal/ranking"
)

// Metric names the extractor supplies. They must match the configured
// metric set for a ranking run to pass validation.
const (
	MetricPrice        = "Price"
	MetricRating       = "Rating"
	MetricReviews      = "Reviews"
	MetricDeliveryDays = "DeliveryDays"
)

func metricValue(f *float64) ranking.Value {
	if f == nil {
		return ranking.Missing()
	}
	return ranking.Num(*f)
}

// Candidates converts raw products into engine candidates, preserving
// the search result order. Absent optional fields become explicit
// missing markers so incomplete products are never silently favored.
func Candidates(products []Product) []ranking.Candidate {
	candidates := make([]ranking.Candidate, len(products))
	for i, p := range products {
		id := p.ID
		if id == "" {
			id = p.Link
		}
		candidates[i] = ranking.Candidate{
			ID: id,
			RawMetrics: map[string]ranking.Value{
				MetricPrice:        metricValue(p.Price),
				MetricRating:       metricValue(p.Rating),
				MetricReviews:      metricValue(p.Reviews),
				MetricDeliveryDays: metricValue(p.DeliveryDays),
			},
		}
	}
	return candidates
}

// ByID indexes products by the same identifier Candidates assigns, for
// looking ranked results back up for display.
func ByID(products []Product) map[string]Product {
	byID := make(map[string]Product, len(products))
	for _, p := range products {
		id := p.ID
		if id == "" {
			id = p.Link
		}
		byID[id] = p
	}
	return byID
}
