package report_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"stayadmin/internal/domains/analytics/report"
	"stayadmin/internal/domains/booking/model"
)

func stay(platform, room, payment string, checkIn time.Time, nights int) model.Booking {
	return model.Booking{
		Platform: platform,
		RoomID:   room,
		Payment:  payment,
		CheckIn:  checkIn,
		CheckOut: checkIn.AddDate(0, 0, nights),
	}
}

func TestPlatformShares_SumInvariant(t *testing.T) {
	in := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	bookings := []model.Booking{
		stay(model.PlatformAirbnb, "SS1020", "100", in, 2),
		stay(model.PlatformGoibibo, "SS1022", "250.50", in, 1),
		stay(model.PlatformAirbnb, "SS1020", "not-a-number", in, 3),
	}

	shares := report.PlatformShares(bookings)

	countSum := 0
	revenueSum := 0.0
	percentageSum := 0.0

	for _, share := range shares {
		countSum += share.Count
		revenueSum += share.Revenue
		percentageSum += share.Percentage

		assert.GreaterOrEqual(t, share.Percentage, 0.0)
		assert.LessOrEqual(t, share.Percentage, 100.0)
	}

	assert.Equal(t, len(bookings), countSum)
	assert.InDelta(t, report.TotalRevenue(bookings), revenueSum, 0.001)
	assert.InDelta(t, 100.0, percentageSum, 0.001)
}

func TestPlatformShares_EmptyInput(t *testing.T) {
	assert.Empty(t, report.PlatformShares(nil))
}

func TestPlatformShares_BadPaymentCountsAsZero(t *testing.T) {
	in := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	shares := report.PlatformShares([]model.Booking{
		stay(model.PlatformOffline, "SS715", "pending", in, 2),
	})

	assert.Len(t, shares, 1)
	assert.Zero(t, shares[0].Revenue)
	assert.Equal(t, 1, shares[0].Count)
}

func TestRoomOccupancies(t *testing.T) {
	in := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	bookings := []model.Booking{
		stay(model.PlatformAirbnb, "SS1020", "3000", in, 3),
		stay(model.PlatformAgoda, "SS1020", "2000", in, 1),
		stay(model.PlatformAirbnb, "SS1124", "5000", in, 5),
	}

	occupancies := report.RoomOccupancies(bookings)

	assert.Len(t, occupancies, 2)
	assert.Equal(t, "SS1020", occupancies[0].Room)
	assert.Equal(t, 2, occupancies[0].Bookings)
	assert.Equal(t, 4, occupancies[0].TotalDays)
	assert.InDelta(t, 2.0, occupancies[0].AvgStayDuration, 0.001)
	assert.InDelta(t, 5000, occupancies[1].Revenue, 0.001)
}

func TestRoomOccupancies_InvalidRangeCountsZeroNights(t *testing.T) {
	in := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	booking := stay(model.PlatformAirbnb, "SS1020", "3000", in, 0)

	occupancies := report.RoomOccupancies([]model.Booking{booking})

	assert.Len(t, occupancies, 1)
	assert.Equal(t, 1, occupancies[0].Bookings)
	assert.Zero(t, occupancies[0].TotalDays)
	assert.Zero(t, occupancies[0].AvgStayDuration)
}

func TestRevenueTrends_ChronologicalOrder(t *testing.T) {
	bookings := []model.Booking{
		stay(model.PlatformAirbnb, "SS1020", "100", time.Date(2025, time.February, 5, 0, 0, 0, 0, time.UTC), 2),
		stay(model.PlatformAirbnb, "SS1020", "200", time.Date(2024, time.December, 20, 0, 0, 0, 0, time.UTC), 2),
		stay(model.PlatformAirbnb, "SS1020", "300", time.Date(2025, time.January, 3, 0, 0, 0, 0, time.UTC), 2),
		stay(model.PlatformAirbnb, "SS1020", "50", time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC), 2),
	}

	trends := report.RevenueTrends(bookings)

	assert.Len(t, trends, 3)
	assert.Equal(t, "Dec 2024", trends[0].Month)
	assert.Equal(t, "Jan 2025", trends[1].Month)
	assert.Equal(t, "Feb 2025", trends[2].Month)
	assert.InDelta(t, 350, trends[1].Revenue, 0.001)
}

func TestTopRooms_Ranking(t *testing.T) {
	in := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	bookings := []model.Booking{
		stay(model.PlatformAirbnb, "SS1020", "100", in, 2),
		stay(model.PlatformAirbnb, "SS1022", "300", in, 2),
		stay(model.PlatformAirbnb, "SS1020", "50", in, 2),
	}

	rooms := report.TopRooms(bookings)

	assert.Len(t, rooms, 2)
	assert.Equal(t, report.TopRoom{Room: "SS1022", Bookings: 1, Revenue: 300}, rooms[0])
	assert.Equal(t, report.TopRoom{Room: "SS1020", Bookings: 2, Revenue: 150}, rooms[1])
}

func TestMonthlyRoomPerformance_AbsenceMeansZero(t *testing.T) {
	bookings := []model.Booking{
		stay(model.PlatformAirbnb, "SS1020", "100", time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC), 2),
		stay(model.PlatformAirbnb, "SS1022", "200", time.Date(2025, time.April, 2, 0, 0, 0, 0, time.UTC), 2),
		stay(model.PlatformAgoda, "SS1020", "75", time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC), 1),
	}

	matrix := report.MonthlyRoomPerformance(bookings)

	assert.Len(t, matrix, 2)
	assert.Equal(t, report.RoomPerformance{Count: 2, Revenue: 175}, matrix["Mar 2025"]["SS1020"])

	// A room with no bookings that month is absent, not present with zeros.
	_, ok := matrix["Mar 2025"]["SS1022"]
	assert.False(t, ok)

	_, ok = matrix["Apr 2025"]["SS1020"]
	assert.False(t, ok)
}
