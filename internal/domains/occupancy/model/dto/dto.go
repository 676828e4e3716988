package dto

import (
	"time"

	"stayadmin/internal/domains/occupancy/calendar"
	"stayadmin/shared/constant"
)

type BarResponse struct {
	BookingID string `json:"booking_id"`
	GuestName string `json:"guest_name"`
	RoomID    string `json:"room_id"`
	Platform  string `json:"platform"`
	CheckIn   string `json:"check_in"`
	CheckOut  string `json:"check_out"`
	StartCol  int    `json:"start_col"`
	Span      int    `json:"span"`
	Row       int    `json:"row"`
	Slot      int    `json:"slot"`
}

type CalendarResponse struct {
	Year  int           `json:"year"`
	Month int           `json:"month"`
	Dates []string      `json:"dates"`
	Bars  []BarResponse `json:"bars"`
}

func (r *CalendarResponse) FromModels(year int, month time.Month, dates []time.Time, bars []calendar.BookingBar) {
	r.Year = year
	r.Month = int(month)

	r.Dates = make([]string, len(dates))
	for i, date := range dates {
		r.Dates[i] = date.Format(constant.CalendarDateFormat)
	}

	r.Bars = make([]BarResponse, len(bars))
	for i, bar := range bars {
		r.Bars[i] = BarResponse{
			BookingID: bar.Booking.ID,
			GuestName: bar.Booking.GuestName,
			RoomID:    bar.Booking.RoomID,
			Platform:  bar.Booking.Platform,
			CheckIn:   bar.Booking.CheckIn.Format(constant.CalendarDateFormat),
			CheckOut:  bar.Booking.CheckOut.Format(constant.CalendarDateFormat),
			StartCol:  bar.StartCol,
			Span:      bar.Span,
			Row:       bar.Row,
			Slot:      bar.Slot,
		}
	}
}
