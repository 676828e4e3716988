// Package calendar lays booking stays out on a 6-week month grid. Both
// functions are pure: (month, year, bookings) in, cells and bars out.
package calendar

import (
	"time"

	"stayadmin/internal/domains/booking/model"
	"stayadmin/internal/domains/booking/pricing"
)

const (
	// CellCount is the fixed size of the visible window, 6 weeks of 7 days.
	CellCount = 42

	daysPerWeek = 7
)

// BookingBar is one renderable rectangle: a contiguous run of nights within a
// single week row. A stay crossing week boundaries yields one bar per row.
type BookingBar struct {
	Booking  model.Booking
	StartCol int // day of week, 1=Sunday .. 7=Saturday
	Span     int // nights in this row, never extending past column 7
	Row      int // week row, 0..5
	Slot     int // vertical stacking offset within the cells it covers
}

// Dates returns the 42 consecutive days of the month view, starting from the
// Sunday on or before the 1st.
func Dates(year int, month time.Month) []time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	start := first.AddDate(0, 0, -int(first.Weekday()))

	dates := make([]time.Time, CellCount)
	for i := range dates {
		dates[i] = start.AddDate(0, 0, i)
	}

	return dates
}

// Bars places every booking that overlaps the window. Nights before the
// window clip to the first cell, nights past it are dropped, and a booking
// with a non-positive stay is skipped. Vertical slots are assigned first-free
// per bar in booking-input order, so stacking is reproducible.
func Bars(dates []time.Time, bookings []model.Booking) []BookingBar {
	if len(dates) == 0 {
		return nil
	}

	windowStart := midnight(dates[0])

	bars := []BookingBar{}

	// Used stacking slots per cell, keyed by absolute day index.
	occupied := make([]map[int]bool, CellCount)

	for _, booking := range bookings {
		nights, err := pricing.Nights(booking.CheckIn, booking.CheckOut)
		if err != nil {
			continue
		}

		offset := dayIndex(windowStart, booking.CheckIn)
		remaining := nights

		if offset < 0 {
			// Check-in predates the window: clip to the first cell.
			remaining += offset
			offset = 0
		}

		if remaining <= 0 || offset >= CellCount {
			continue
		}

		if offset+remaining > CellCount {
			remaining = CellCount - offset
		}

		slot := freeSlot(occupied, offset, remaining)

		for remaining > 0 {
			col := offset%daysPerWeek + 1

			span := daysPerWeek - col + 1
			if remaining < span {
				span = remaining
			}

			bars = append(bars, BookingBar{
				Booking:  booking,
				StartCol: col,
				Span:     span,
				Row:      offset / daysPerWeek,
				Slot:     slot,
			})

			for i := offset; i < offset+span; i++ {
				if occupied[i] == nil {
					occupied[i] = map[int]bool{}
				}

				occupied[i][slot] = true
			}

			offset += span
			remaining -= span
		}
	}

	return bars
}

// freeSlot finds the lowest slot unused across the whole cell run, so every
// bar of one booking stacks at the same height.
func freeSlot(occupied []map[int]bool, offset, length int) int {
	for slot := 0; ; slot++ {
		taken := false

		for i := offset; i < offset+length; i++ {
			if occupied[i][slot] {
				taken = true

				break
			}
		}

		if !taken {
			return slot
		}
	}
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// dayIndex counts calendar days from the window start, negative when the
// given date precedes it.
func dayIndex(windowStart, t time.Time) int {
	return int(midnight(t).Sub(windowStart).Hours() / 24)
}
