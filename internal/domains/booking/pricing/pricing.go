// Package pricing holds the nightly-rate calculations shared by the booking
// creation flow, the analytics reports, and the invoice builder.
package pricing

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"time"

	"stayadmin/shared/constant"
)

// ErrInvalidDateRange is returned when check-out does not come after check-in.
var ErrInvalidDateRange = errors.New("check-out date must be after check-in date")

var nonAmountChars = regexp.MustCompile(`[^0-9.\-]`)

const hoursPerDay = 24

// Nights counts the nights of a stay, rounding partial-day differences up so
// a stay crossing a DST boundary still counts whole nights.
func Nights(checkIn, checkOut time.Time) (int, error) {
	if !checkOut.After(checkIn) {
		return 0, ErrInvalidDateRange
	}

	days := checkOut.Sub(checkIn).Hours() / hoursPerDay

	return int(math.Ceil(days)), nil
}

// TotalAmount sums the stay cost over exactly Nights(checkIn, checkOut)
// calendar days starting at check-in. Each night uses the custom rate for its
// date when present, otherwise the flat rate, otherwise zero. Without any
// overrides the result is a flat multiply. An invalid date range totals zero.
func TotalAmount(checkIn, checkOut time.Time, ratePerNight float64, customDailyRates map[string]float64) float64 {
	nights, err := Nights(checkIn, checkOut)
	if err != nil {
		return 0
	}

	if len(customDailyRates) == 0 {
		return ratePerNight * float64(nights)
	}

	total := 0.0

	for i := range nights {
		key := checkIn.AddDate(0, 0, i).Format(constant.CalendarDateFormat)

		if rate, ok := customDailyRates[key]; ok {
			total += rate
		} else {
			total += ratePerNight
		}
	}

	return total
}

// DateRange lists the night dates of a stay, check-in inclusive and check-out
// exclusive. Invalid ranges yield an empty slice.
func DateRange(checkIn, checkOut time.Time) []time.Time {
	nights, err := Nights(checkIn, checkOut)
	if err != nil {
		return nil
	}

	dates := make([]time.Time, nights)
	for i := range nights {
		dates[i] = checkIn.AddDate(0, 0, i)
	}

	return dates
}

// ParseAmount reads a loosely formatted currency string. Currency symbols and
// digit-group separators are stripped before parsing; an unparsable value is
// zero so one bad row never aborts a report.
func ParseAmount(raw string) float64 {
	cleaned := nonAmountChars.ReplaceAllString(raw, "")
	if cleaned == "" {
		return 0
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}

	return value
}
