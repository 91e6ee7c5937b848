package marketplace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidates_MapsFieldsAndMissing(t *testing.T) {
	price := 31.5
	rating := 4.2
	products := []Product{
		{ID: "p1", Price: &price, Rating: &rating},
		{Link: "https://example.com/p2"},
	}

	candidates := Candidates(products)
	require.Len(t, candidates, 2)

	first := candidates[0]
	assert.Equal(t, "p1", first.ID)
	assert.True(t, first.RawMetrics[MetricPrice].Present)
	assert.Equal(t, 31.5, first.RawMetrics[MetricPrice].Float)
	// nil wire fields become explicit missing markers, not zeros.
	assert.False(t, first.RawMetrics[MetricReviews].Present)
	assert.False(t, first.RawMetrics[MetricDeliveryDays].Present)

	// Products without an ID fall back to their link.
	second := candidates[1]
	assert.Equal(t, "https://example.com/p2", second.ID)
	assert.False(t, second.RawMetrics[MetricPrice].Present)
}

func TestCandidates_PreservesOrder(t *testing.T) {
	products := []Product{{ID: "z"}, {ID: "a"}, {ID: "m"}}

	candidates := Candidates(products)

	ids := []string{candidates[0].ID, candidates[1].ID, candidates[2].ID}
	assert.Equal(t, []string{"z", "a", "m"}, ids)
}

func TestByID(t *testing.T) {
	products := []Product{{ID: "p1", Title: "one"}, {Link: "l2", Title: "two"}}

	byID := ByID(products)

	assert.Equal(t, "one", byID["p1"].Title)
	assert.Equal(t, "two", byID["l2"].Title)
}
