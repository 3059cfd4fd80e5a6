package services

import (
	"testing"

	"lifeos-finance/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComparePeriods(t *testing.T) {
	epsilon := decimal.NewFromFloat(0.01)

	tests := []struct {
		name        string
		previous    float64
		current     float64
		wantDiff    string
		wantPercent string
		wantTrend   string
	}{
		{
			name:        "rising",
			previous:    100,
			current:     110,
			wantDiff:    "10",
			wantPercent: "10",
			wantTrend:   models.TrendRising,
		},
		{
			name:        "falling",
			previous:    100,
			current:     90,
			wantDiff:    "-10",
			wantPercent: "-10",
			wantTrend:   models.TrendFalling,
		},
		{
			name:        "identical totals are stable",
			previous:    250,
			current:     250,
			wantDiff:    "0",
			wantPercent: "0",
			wantTrend:   models.TrendStable,
		},
		{
			// 0.005 rounds half-even to 0 in both presentation fields
			name:        "difference inside epsilon is stable",
			previous:    100,
			current:     100.005,
			wantDiff:    "0",
			wantPercent: "0",
			wantTrend:   models.TrendStable,
		},
		{
			name:        "drop to zero",
			previous:    200,
			current:     0,
			wantDiff:    "-200",
			wantPercent: "-100",
			wantTrend:   models.TrendFalling,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			comparison := comparePeriods("02/2025",
				decimal.NewFromFloat(tt.previous),
				decimal.NewFromFloat(tt.current),
				epsilon)

			assert.Equal(t, "02/2025", comparison.PreviousLabel)
			assert.True(t, comparison.Difference.Equal(decimal.RequireFromString(tt.wantDiff)),
				"difference = %s", comparison.Difference)
			require.NotNil(t, comparison.PercentChange)
			assert.True(t, comparison.PercentChange.Equal(decimal.RequireFromString(tt.wantPercent)),
				"percent = %s", comparison.PercentChange)
			assert.Equal(t, tt.wantTrend, comparison.Trend)
		})
	}
}

func TestComparePeriods_ZeroPrevious(t *testing.T) {
	epsilon := decimal.NewFromFloat(0.01)

	comparison := comparePeriods("02/2025", decimal.Zero, decimal.NewFromFloat(50), epsilon)
	assert.Nil(t, comparison.PercentChange)
	assert.Equal(t, models.TrendRising, comparison.Trend)
	assert.True(t, comparison.Difference.Equal(decimal.NewFromInt(50)))

	comparison = comparePeriods("02/2025", decimal.Zero, decimal.Zero, epsilon)
	assert.Nil(t, comparison.PercentChange)
	assert.Equal(t, models.TrendStable, comparison.Trend)
}
