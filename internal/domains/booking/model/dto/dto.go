package dto

import (
	"fmt"
	"strconv"
	"time"

	"stayadmin/internal/domains/booking/model"
	"stayadmin/internal/domains/booking/pricing"
	"stayadmin/shared"
	"stayadmin/shared/constant"
	gDto "stayadmin/shared/dto"
	gModel "stayadmin/shared/model"
	"stayadmin/shared/timezone"
)

type GuestPayload struct {
	Name            string `json:"name"              validate:"required,max=100"`
	Aadhaar         string `json:"aadhaar"           validate:"omitempty,max=20"`
	AadhaarImageURL string `json:"aadhaar_image_url" validate:"omitempty,max=500"`
	Phone           string `json:"phone"             validate:"omitempty,max=20"`
}

func (g GuestPayload) toModel() model.GuestInfo {
	return model.GuestInfo{
		Name:            g.Name,
		Aadhaar:         g.Aadhaar,
		AadhaarImageURL: g.AadhaarImageURL,
		Phone:           g.Phone,
	}
}

type CreateBookingRequest struct {
	EntryDate        string             `json:"entry_date"         validate:"omitempty,isodate"`
	GuestName        string             `json:"guest_name"         validate:"required,max=100"`
	Aadhaar          string             `json:"aadhaar"            validate:"omitempty,max=20"`
	AadhaarImageURL  string             `json:"aadhaar_image_url"  validate:"omitempty,max=500"`
	Phone            string             `json:"phone"              validate:"omitempty,max=20"`
	AdditionalGuests []GuestPayload     `json:"additional_guests"  validate:"omitempty,dive"`
	Payment          string             `json:"payment"            validate:"omitempty,max=20"`
	RatePerNight     string             `json:"rate_per_night"     validate:"omitempty,max=20"`
	CustomDailyRates map[string]float64 `json:"custom_daily_rates" validate:"omitempty"`
	Platform         string             `json:"platform"           validate:"required,oneof=Airbnb Goibibo MakeMyTrip Agoda Offline"`
	RoomID           string             `json:"room_id"            validate:"required,oneof=SS1020 SS1022 SS1124 SS1125 SS1003 SS715"`
	CheckIn          string             `json:"check_in"           validate:"required,isodate"`
	CheckOut         string             `json:"check_out"          validate:"required,isodate"`
}

// ToModel builds the persisted booking. The caller supplies the assigned id;
// payment and total nights are recomputed from the rate inputs unless an
// explicit payment amount was provided.
func (c *CreateBookingRequest) ToModel(id, user string) (model.Booking, error) {
	checkIn, err := time.Parse(constant.CalendarDateFormat, c.CheckIn)
	if err != nil {
		return model.Booking{}, fmt.Errorf("invalid check-in date: %w", err)
	}

	checkOut, err := time.Parse(constant.CalendarDateFormat, c.CheckOut)
	if err != nil {
		return model.Booking{}, fmt.Errorf("invalid check-out date: %w", err)
	}

	nights, err := pricing.Nights(checkIn, checkOut)
	if err != nil {
		return model.Booking{}, err //nolint:wrapcheck
	}

	for key := range c.CustomDailyRates {
		day, err := time.Parse(constant.CalendarDateFormat, key)
		if err != nil {
			return model.Booking{}, fmt.Errorf("invalid custom rate date %q: %w", key, err)
		}

		if day.Before(checkIn) || !day.Before(checkOut) {
			return model.Booking{}, fmt.Errorf("custom rate date %s falls outside the stay", key)
		}
	}

	entryDate := timezone.Now()

	if c.EntryDate != "" {
		entryDate, err = time.Parse(constant.CalendarDateFormat, c.EntryDate)
		if err != nil {
			return model.Booking{}, fmt.Errorf("invalid entry date: %w", err)
		}
	}

	payment := c.Payment
	if payment == "" {
		total := pricing.TotalAmount(checkIn, checkOut, pricing.ParseAmount(c.RatePerNight), c.CustomDailyRates)
		payment = strconv.FormatFloat(total, 'f', -1, 64)
	}

	guests := make(model.GuestList, len(c.AdditionalGuests))
	for i, guest := range c.AdditionalGuests {
		guests[i] = guest.toModel()
	}

	return model.Booking{
		ID:               id,
		EntryDate:        entryDate,
		GuestName:        c.GuestName,
		Aadhaar:          c.Aadhaar,
		AadhaarImageURL:  c.AadhaarImageURL,
		Phone:            c.Phone,
		AdditionalGuests: guests,
		Payment:          payment,
		RatePerNight:     c.RatePerNight,
		CustomDailyRates: model.RateOverrides(c.CustomDailyRates),
		TotalNights:      nights,
		Platform:         c.Platform,
		RoomID:           c.RoomID,
		CheckIn:          checkIn,
		CheckOut:         checkOut,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

// UpdateBookingRequest carries a full replacement document. Bookings are
// edited via replace, so the shape matches the create request.
type UpdateBookingRequest struct {
	EntryDate        string             `json:"entry_date"         validate:"omitempty,isodate"`
	GuestName        string             `json:"guest_name"         validate:"required,max=100"`
	Aadhaar          string             `json:"aadhaar"            validate:"omitempty,max=20"`
	AadhaarImageURL  string             `json:"aadhaar_image_url"  validate:"omitempty,max=500"`
	Phone            string             `json:"phone"              validate:"omitempty,max=20"`
	AdditionalGuests []GuestPayload     `json:"additional_guests"  validate:"omitempty,dive"`
	Payment          string             `json:"payment"            validate:"omitempty,max=20"`
	RatePerNight     string             `json:"rate_per_night"     validate:"omitempty,max=20"`
	CustomDailyRates map[string]float64 `json:"custom_daily_rates" validate:"omitempty"`
	Platform         string             `json:"platform"           validate:"required,oneof=Airbnb Goibibo MakeMyTrip Agoda Offline"`
	RoomID           string             `json:"room_id"            validate:"required,oneof=SS1020 SS1022 SS1124 SS1125 SS1003 SS715"`
	CheckIn          string             `json:"check_in"           validate:"required,isodate"`
	CheckOut         string             `json:"check_out"          validate:"required,isodate"`
}

// ToFieldMap produces the full set of replaced columns, with payment and
// total nights recomputed from the submitted dates and rates.
func (u *UpdateBookingRequest) ToFieldMap(user string) (map[string]any, error) {
	create := CreateBookingRequest(*u)

	booking, err := create.ToModel(constant.Empty, user)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		model.FieldEntryDate:        booking.EntryDate,
		model.FieldGuestName:        booking.GuestName,
		model.FieldAadhaar:          booking.Aadhaar,
		model.FieldAadhaarImageURL:  booking.AadhaarImageURL,
		model.FieldPhone:            booking.Phone,
		model.FieldAdditionalGuests: booking.AdditionalGuests,
		model.FieldPayment:          booking.Payment,
		model.FieldRatePerNight:     booking.RatePerNight,
		model.FieldCustomDailyRates: booking.CustomDailyRates,
		model.FieldTotalNights:      booking.TotalNights,
		model.FieldPlatform:         booking.Platform,
		model.FieldRoomID:           booking.RoomID,
		model.FieldCheckIn:          booking.CheckIn,
		model.FieldCheckOut:         booking.CheckOut,
		constant.FieldModifiedAt:    timezone.Now(),
		constant.FieldModifiedBy:    user,
	}, nil
}

type BookingResponse struct {
	ID               string             `json:"id"`
	EntryDate        string             `json:"entry_date"`
	GuestName        string             `json:"guest_name"`
	Aadhaar          string             `json:"aadhaar,omitempty"`
	AadhaarImageURL  string             `json:"aadhaar_image_url,omitempty"`
	Phone            string             `json:"phone,omitempty"`
	AdditionalGuests []GuestPayload     `json:"additional_guests"`
	Payment          string             `json:"payment"`
	RatePerNight     string             `json:"rate_per_night,omitempty"`
	CustomDailyRates map[string]float64 `json:"custom_daily_rates,omitempty"`
	TotalNights      int                `json:"total_nights"`
	Platform         string             `json:"platform"`
	RoomID           string             `json:"room_id"`
	CheckIn          string             `json:"check_in"`
	CheckOut         string             `json:"check_out"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(booking model.Booking) {
	r.ID = booking.ID
	r.EntryDate = booking.EntryDate.Format(constant.CalendarDateFormat)
	r.GuestName = booking.GuestName
	r.Aadhaar = booking.Aadhaar
	r.AadhaarImageURL = booking.AadhaarImageURL
	r.Phone = booking.Phone
	r.Payment = booking.Payment
	r.RatePerNight = booking.RatePerNight
	r.CustomDailyRates = map[string]float64(booking.CustomDailyRates)
	r.TotalNights = booking.TotalNights
	r.Platform = booking.Platform
	r.RoomID = booking.RoomID
	r.CheckIn = booking.CheckIn.Format(constant.CalendarDateFormat)
	r.CheckOut = booking.CheckOut.Format(constant.CalendarDateFormat)
	r.Metadata.FromModel(booking.Metadata)

	r.AdditionalGuests = make([]GuestPayload, len(booking.AdditionalGuests))
	for i, guest := range booking.AdditionalGuests {
		r.AdditionalGuests[i] = GuestPayload{
			Name:            guest.Name,
			Aadhaar:         guest.Aadhaar,
			AadhaarImageURL: guest.AadhaarImageURL,
			Phone:           guest.Phone,
		}
	}
}

type CreateBookingResponse struct {
	ID string `json:"id"`
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type PlatformCount struct {
	Platform string `json:"platform"`
	Count    int    `json:"count"`
}

type StatsResponse struct {
	TotalBookings     int               `json:"total_bookings"`
	PlatformBreakdown []PlatformCount   `json:"platform_breakdown"`
	RecentBookings    []BookingResponse `json:"recent_bookings"`
}

// FromModels summarizes the whole booking set plus the most recent entries.
// Every platform appears in the breakdown, zero counts included, in the
// canonical platform order.
func (r *StatsResponse) FromModels(all, recent []model.Booking) {
	r.TotalBookings = len(all)

	counts := map[string]int{}
	for _, booking := range all {
		counts[booking.Platform]++
	}

	r.PlatformBreakdown = make([]PlatformCount, len(model.Platforms))
	for i, platform := range model.Platforms {
		r.PlatformBreakdown[i] = PlatformCount{
			Platform: platform,
			Count:    counts[platform],
		}
	}

	r.RecentBookings = make([]BookingResponse, len(recent))
	for i, booking := range recent {
		r.RecentBookings[i].FromModel(booking)
	}
}

const (
	EventActionCreated = "booking.created"
	EventActionUpdated = "booking.updated"
	EventActionDeleted = "booking.deleted"
)

// BookingEvent is the payload published to the booking lifecycle topic.
type BookingEvent struct {
	Action     string    `json:"action"`
	BookingID  string    `json:"booking_id"`
	RoomID     string    `json:"room_id"`
	Platform   string    `json:"platform"`
	OccurredAt time.Time `json:"occurred_at"`
}
