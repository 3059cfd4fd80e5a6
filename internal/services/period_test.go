package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testBounds = YearBounds{Min: 2000, Max: 2100}

func TestMonthlyRange(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		month     int
		wantStart time.Time
		wantEnd   time.Time
		wantErr   error
	}{
		{
			name:      "mid year month",
			year:      2025,
			month:     3,
			wantStart: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "december rolls into next year",
			year:      2025,
			month:     12,
			wantStart: time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "february in leap year",
			year:      2024,
			month:     2,
			wantStart: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "month zero",
			year:    2025,
			month:   0,
			wantErr: ErrInvalidMonth,
		},
		{
			name:    "month thirteen",
			year:    2025,
			month:   13,
			wantErr: ErrInvalidMonth,
		},
		{
			name:    "year below range",
			year:    1999,
			month:   6,
			wantErr: ErrInvalidYear,
		},
		{
			name:    "year above range",
			year:    2101,
			month:   6,
			wantErr: ErrInvalidYear,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := MonthlyRange(tt.year, tt.month, testBounds)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestAnnualRange(t *testing.T) {
	start, end, err := AnnualRange(2025, testBounds)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), end)

	_, _, err = AnnualRange(1999, testBounds)
	assert.ErrorIs(t, err, ErrInvalidYear)
}

func TestWithinRange_HalfOpen(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	// Start is inclusive, end is exclusive
	assert.True(t, withinRange(start, start, end))
	assert.True(t, withinRange(end.Add(-time.Second), start, end))
	assert.False(t, withinRange(end, start, end))
	assert.False(t, withinRange(start.Add(-time.Second), start, end))
}

func TestPreviousMonth(t *testing.T) {
	year, month := PreviousMonth(2025, 3)
	assert.Equal(t, 2025, year)
	assert.Equal(t, 2, month)

	year, month = PreviousMonth(2025, 1)
	assert.Equal(t, 2024, year)
	assert.Equal(t, 12, month)
}

func TestMonthLabel(t *testing.T) {
	assert.Equal(t, "03/2025", MonthLabel(2025, 3))
	assert.Equal(t, "12/2024", MonthLabel(2024, 12))
	assert.Equal(t, "2025", YearLabel(2025))
}
