package calendar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"stayadmin/internal/domains/booking/model"
	"stayadmin/internal/domains/occupancy/calendar"
)

func booking(id string, checkIn time.Time, nights int) model.Booking {
	return model.Booking{
		ID:       id,
		CheckIn:  checkIn,
		CheckOut: checkIn.AddDate(0, 0, nights),
	}
}

func TestDates_AlwaysFortyTwoConsecutiveFromSunday(t *testing.T) {
	months := []struct {
		year  int
		month time.Month
	}{
		{2025, time.March},     // 1st is a Saturday
		{2025, time.June},      // 1st is a Sunday
		{2024, time.February},  // leap month
		{2024, time.December},  // year boundary
		{2025, time.September}, // 1st is a Monday
	}

	for _, m := range months {
		dates := calendar.Dates(m.year, m.month)

		assert.Len(t, dates, calendar.CellCount)
		assert.Equal(t, time.Sunday, dates[0].Weekday())
		assert.True(t, !dates[0].After(time.Date(m.year, m.month, 1, 0, 0, 0, 0, time.UTC)))

		for i := 1; i < len(dates); i++ {
			assert.Equal(t, dates[i-1].AddDate(0, 0, 1), dates[i], "dates must be consecutive")
		}
	}
}

func TestBars_SingleRow(t *testing.T) {
	dates := calendar.Dates(2025, time.June) // June 1st 2025 is a Sunday

	bars := calendar.Bars(dates, []model.Booking{
		booking("BK0001", time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC), 3),
	})

	assert.Len(t, bars, 1)
	assert.Equal(t, 2, bars[0].StartCol)
	assert.Equal(t, 3, bars[0].Span)
	assert.Equal(t, 0, bars[0].Row)
	assert.Equal(t, 0, bars[0].Slot)
}

func TestBars_WeekBoundarySplit(t *testing.T) {
	dates := calendar.Dates(2025, time.June)

	// Friday the 6th, four nights: columns 6-7 of row 0, then 1-2 of row 1.
	bars := calendar.Bars(dates, []model.Booking{
		booking("BK0001", time.Date(2025, time.June, 6, 0, 0, 0, 0, time.UTC), 4),
	})

	assert.Len(t, bars, 2)

	assert.Equal(t, 6, bars[0].StartCol)
	assert.Equal(t, 2, bars[0].Span)
	assert.Equal(t, 0, bars[0].Row)

	assert.Equal(t, 1, bars[1].StartCol)
	assert.Equal(t, 2, bars[1].Span)
	assert.Equal(t, 1, bars[1].Row)
}

func TestBars_CheckInBeforeWindowClipsToFirstCell(t *testing.T) {
	dates := calendar.Dates(2025, time.June)

	// Three nights before the window plus two inside it.
	bars := calendar.Bars(dates, []model.Booking{
		booking("BK0001", time.Date(2025, time.May, 29, 0, 0, 0, 0, time.UTC), 5),
	})

	assert.Len(t, bars, 1)
	assert.Equal(t, 1, bars[0].StartCol)
	assert.Equal(t, 2, bars[0].Span)
	assert.Equal(t, 0, bars[0].Row)
}

func TestBars_OutsideWindowProducesNothing(t *testing.T) {
	dates := calendar.Dates(2025, time.June)

	bars := calendar.Bars(dates, []model.Booking{
		booking("before", time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC), 3),
		booking("after", time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC), 3),
	})

	assert.Empty(t, bars)
}

func TestBars_InvalidStaySkipped(t *testing.T) {
	dates := calendar.Dates(2025, time.June)

	bars := calendar.Bars(dates, []model.Booking{
		booking("BK0001", time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC), 0),
	})

	assert.Empty(t, bars)
}

func TestBars_StackingSlotsFollowInputOrder(t *testing.T) {
	dates := calendar.Dates(2025, time.June)
	start := time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)

	bars := calendar.Bars(dates, []model.Booking{
		booking("BK0001", start, 3),
		booking("BK0002", start.AddDate(0, 0, 1), 2), // overlaps BK0001
		booking("BK0003", start.AddDate(0, 0, 4), 2), // disjoint, slot reusable
	})

	assert.Len(t, bars, 3)
	assert.Equal(t, 0, bars[0].Slot)
	assert.Equal(t, 1, bars[1].Slot)
	assert.Equal(t, 0, bars[2].Slot)
}

func TestBars_SplitBarsShareOneSlot(t *testing.T) {
	dates := calendar.Dates(2025, time.June)

	bars := calendar.Bars(dates, []model.Booking{
		booking("BK0001", time.Date(2025, time.June, 4, 0, 0, 0, 0, time.UTC), 6),
		booking("BK0002", time.Date(2025, time.June, 6, 0, 0, 0, 0, time.UTC), 4),
	})

	assert.Len(t, bars, 4)

	// Both rows of one booking stack at the same height.
	assert.Equal(t, bars[0].Slot, bars[1].Slot)
	assert.Equal(t, bars[2].Slot, bars[3].Slot)
	assert.NotEqual(t, bars[0].Slot, bars[2].Slot)
}

func TestBars_TenNightStayYieldsTwoBars(t *testing.T) {
	dates := calendar.Dates(2025, time.June)

	bars := calendar.Bars(dates, []model.Booking{
		booking("BK0001", time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), 10),
	})

	assert.Len(t, bars, 2)
	assert.Equal(t, 7, bars[0].Span)
	assert.Equal(t, 3, bars[1].Span)
}
