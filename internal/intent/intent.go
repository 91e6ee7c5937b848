// Package intent turns a free-text statement of shopping intent into a
// weight vector over the configured metric set. The engine treats the
// result as opaque input and validates it itself, so implementations
// are swappable: a rule-based table and a remote model client are both
// provided behind the same interface.
package intent

import (
	"github.com/marketsift/marketsift/internal/ranking"
)

// Inferrer maps a free-text goal (e.g. "cheap and fast") to a weight
// vector whose keys exactly cover the metric set.
type Inferrer interface {
	Infer(text string) (ranking.WeightVector, error)
}
