// Package report computes the dashboard aggregations over a booking list.
// Every function is a pure pass over its input: nothing is mutated, nothing
// is cached, and a malformed row degrades to zero instead of failing the
// whole report.
package report

import (
	"sort"
	"time"

	"stayadmin/internal/domains/booking/model"
	"stayadmin/internal/domains/booking/pricing"
)

// monthLabelFormat keys revenue trend and monthly performance buckets.
const monthLabelFormat = "Jan 2006"

const percentBase = 100

type PlatformShare struct {
	Platform   string  `json:"platform"`
	Count      int     `json:"count"`
	Revenue    float64 `json:"revenue"`
	Percentage float64 `json:"percentage"`
}

type RoomOccupancy struct {
	Room            string  `json:"room"`
	Bookings        int     `json:"bookings"`
	TotalDays       int     `json:"total_days"`
	Revenue         float64 `json:"revenue"`
	AvgStayDuration float64 `json:"avg_stay_duration"`
}

type RevenueTrend struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

type TopRoom struct {
	Room     string  `json:"room"`
	Bookings int     `json:"bookings"`
	Revenue  float64 `json:"revenue"`
}

type RoomPerformance struct {
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

// Revenue extracts a booking's revenue from its payment field. Unparsable
// payments count as zero.
func Revenue(booking model.Booking) float64 {
	return pricing.ParseAmount(booking.Payment)
}

// TotalRevenue sums the revenue of the whole input.
func TotalRevenue(bookings []model.Booking) float64 {
	total := 0.0
	for _, booking := range bookings {
		total += Revenue(booking)
	}

	return total
}

// nights treats an invalid date range as a zero-night stay.
func nights(booking model.Booking) int {
	n, err := pricing.Nights(booking.CheckIn, booking.CheckOut)
	if err != nil {
		return 0
	}

	return n
}

// PlatformShares groups bookings by platform in first-seen order. Percentages
// are relative to the filtered input, so they always sum to about 100 for a
// non-empty input.
func PlatformShares(bookings []model.Booking) []PlatformShare {
	shares := []PlatformShare{}
	index := map[string]int{}

	for _, booking := range bookings {
		i, ok := index[booking.Platform]
		if !ok {
			i = len(shares)
			index[booking.Platform] = i

			shares = append(shares, PlatformShare{Platform: booking.Platform})
		}

		shares[i].Count++
		shares[i].Revenue += Revenue(booking)
	}

	total := len(bookings)
	if total == 0 {
		return shares
	}

	for i := range shares {
		shares[i].Percentage = float64(shares[i].Count) / float64(total) * percentBase
	}

	return shares
}

// RoomOccupancies groups bookings by room in first-seen order, summing nights
// per room. A room in the result always has at least one booking, so the
// average stay duration never divides by zero.
func RoomOccupancies(bookings []model.Booking) []RoomOccupancy {
	occupancies := []RoomOccupancy{}
	index := map[string]int{}

	for _, booking := range bookings {
		i, ok := index[booking.RoomID]
		if !ok {
			i = len(occupancies)
			index[booking.RoomID] = i

			occupancies = append(occupancies, RoomOccupancy{Room: booking.RoomID})
		}

		occupancies[i].Bookings++
		occupancies[i].TotalDays += nights(booking)
		occupancies[i].Revenue += Revenue(booking)
	}

	for i := range occupancies {
		if occupancies[i].Bookings > 0 {
			occupancies[i].AvgStayDuration = float64(occupancies[i].TotalDays) / float64(occupancies[i].Bookings)
		}
	}

	return occupancies
}

// RevenueTrends buckets revenue by the check-in month and sorts the buckets
// by the parsed month, so Dec 2024 precedes Jan 2025 despite string order.
func RevenueTrends(bookings []model.Booking) []RevenueTrend {
	buckets := map[string]float64{}
	months := map[string]time.Time{}

	for _, booking := range bookings {
		monthStart := time.Date(booking.CheckIn.Year(), booking.CheckIn.Month(), 1, 0, 0, 0, 0, time.UTC)
		label := monthStart.Format(monthLabelFormat)

		buckets[label] += Revenue(booking)
		months[label] = monthStart
	}

	trends := make([]RevenueTrend, 0, len(buckets))
	for label, revenue := range buckets {
		trends = append(trends, RevenueTrend{Month: label, Revenue: revenue})
	}

	sort.Slice(trends, func(i, j int) bool {
		return months[trends[i].Month].Before(months[trends[j].Month])
	})

	return trends
}

// TopRooms ranks every room of the input by summed revenue, descending. Ties
// keep first-seen order.
func TopRooms(bookings []model.Booking) []TopRoom {
	rooms := []TopRoom{}
	index := map[string]int{}

	for _, booking := range bookings {
		i, ok := index[booking.RoomID]
		if !ok {
			i = len(rooms)
			index[booking.RoomID] = i

			rooms = append(rooms, TopRoom{Room: booking.RoomID})
		}

		rooms[i].Bookings++
		rooms[i].Revenue += Revenue(booking)
	}

	sort.SliceStable(rooms, func(i, j int) bool {
		return rooms[i].Revenue > rooms[j].Revenue
	})

	return rooms
}

// MonthlyRoomPerformance builds the month to room to performance matrix. A
// room with no bookings in a month is absent from that month's inner map;
// consumers render absence as zero.
func MonthlyRoomPerformance(bookings []model.Booking) map[string]map[string]RoomPerformance {
	matrix := map[string]map[string]RoomPerformance{}

	for _, booking := range bookings {
		label := booking.CheckIn.Format(monthLabelFormat)

		cells, ok := matrix[label]
		if !ok {
			cells = map[string]RoomPerformance{}
			matrix[label] = cells
		}

		cell := cells[booking.RoomID]
		cell.Count++
		cell.Revenue += Revenue(booking)
		cells[booking.RoomID] = cell
	}

	return matrix
}
