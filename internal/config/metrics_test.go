package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketsift/marketsift/internal/ranking"
)

func TestParseMetricSet_Default(t *testing.T) {
	cfg := EngineEnvConfig{MetricSpec: "Price:lower,Rating:higher,Reviews:higher,DeliveryDays:lower"}

	set, err := ParseMetricSet(cfg.MetricSpec)
	require.NoError(t, err)
	require.Len(t, set, 4)

	assert.Equal(t, "Price", set[0].Name)
	assert.Equal(t, ranking.LowerIsBetter, set[0].Direction)
	assert.Equal(t, "Rating", set[1].Name)
	assert.Equal(t, ranking.HigherIsBetter, set[1].Direction)
}

func TestParseMetricSet_Invalid(t *testing.T) {
	tests := []struct {
		name string
		spec string
	}{
		{"missing direction", "Price"},
		{"unknown direction", "Price:cheapest"},
		{"duplicate metric", "Price:lower,Price:higher"},
		{"empty spec", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMetricSet(tt.spec)
			require.Error(t, err)
		})
	}
}
