package pricing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"stayadmin/internal/domains/booking/pricing"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
		wantErr  error
	}{
		{
			name:     "three full nights",
			checkIn:  date(2025, time.March, 10),
			checkOut: date(2025, time.March, 13),
			want:     3,
		},
		{
			name:     "single night",
			checkIn:  date(2025, time.March, 10),
			checkOut: date(2025, time.March, 11),
			want:     1,
		},
		{
			name:     "partial day rounds up",
			checkIn:  time.Date(2025, time.March, 10, 14, 0, 0, 0, time.UTC),
			checkOut: time.Date(2025, time.March, 11, 11, 0, 0, 0, time.UTC),
			want:     1,
		},
		{
			name:     "same day is invalid",
			checkIn:  date(2025, time.March, 10),
			checkOut: date(2025, time.March, 10),
			wantErr:  pricing.ErrInvalidDateRange,
		},
		{
			name:     "check-out before check-in is invalid",
			checkIn:  date(2025, time.March, 13),
			checkOut: date(2025, time.March, 10),
			wantErr:  pricing.ErrInvalidDateRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pricing.Nights(tt.checkIn, tt.checkOut)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, got)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTotalAmount_FlatRate(t *testing.T) {
	total := pricing.TotalAmount(date(2025, time.March, 10), date(2025, time.March, 13), 3000, nil)

	assert.InDelta(t, 9000, total, 0.001)
}

func TestTotalAmount_CustomRateOverride(t *testing.T) {
	overrides := map[string]float64{
		"2025-03-11": 5000,
	}

	total := pricing.TotalAmount(date(2025, time.March, 10), date(2025, time.March, 13), 3000, overrides)

	assert.InDelta(t, 11000, total, 0.001)
}

func TestTotalAmount_MissingOverrideFallsBackToZeroRate(t *testing.T) {
	overrides := map[string]float64{
		"2025-03-10": 4000,
	}

	// No flat rate: the uncovered nights contribute nothing.
	total := pricing.TotalAmount(date(2025, time.March, 10), date(2025, time.March, 13), 0, overrides)

	assert.InDelta(t, 4000, total, 0.001)
}

func TestTotalAmount_InvalidRangeIsZero(t *testing.T) {
	total := pricing.TotalAmount(date(2025, time.March, 13), date(2025, time.March, 10), 3000, nil)

	assert.Zero(t, total)
}

func TestDateRange(t *testing.T) {
	dates := pricing.DateRange(date(2025, time.March, 10), date(2025, time.March, 13))

	assert.Len(t, dates, 3)
	assert.Equal(t, date(2025, time.March, 10), dates[0])
	assert.Equal(t, date(2025, time.March, 11), dates[1])
	assert.Equal(t, date(2025, time.March, 12), dates[2])
}

func TestDateRange_InvalidRange(t *testing.T) {
	assert.Empty(t, pricing.DateRange(date(2025, time.March, 10), date(2025, time.March, 10)))
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{name: "plain decimal", raw: "4500.50", want: 4500.50},
		{name: "currency symbol and grouping", raw: "₹12,500", want: 12500},
		{name: "surrounding whitespace", raw: " 300 ", want: 300},
		{name: "negative amount", raw: "-250", want: -250},
		{name: "unparsable", raw: "pending", want: 0},
		{name: "empty", raw: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, pricing.ParseAmount(tt.raw), 0.001)
		})
	}
}
