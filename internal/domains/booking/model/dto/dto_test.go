package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"stayadmin/internal/domains/booking/model"
	"stayadmin/internal/domains/booking/model/dto"
	gModel "stayadmin/shared/model"
	"stayadmin/shared/timezone"
)

func createRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		GuestName:    "Asha Verma",
		Aadhaar:      "123412341234",
		Phone:        "9876543210",
		RatePerNight: "3000",
		Platform:     model.PlatformMakeMyTrip,
		RoomID:       "SS1125",
		CheckIn:      "2025-03-10",
		CheckOut:     "2025-03-13",
	}
}

func TestCreateBookingRequest_ToModel(t *testing.T) {
	req := createRequest()
	req.AdditionalGuests = []dto.GuestPayload{
		{Name: "Rohan Verma", Phone: "9876500000"},
	}

	booking, err := req.ToModel("BK0042", "operator")

	assert.NoError(t, err)
	assert.Equal(t, "BK0042", booking.ID)
	assert.Equal(t, 3, booking.TotalNights)
	assert.Equal(t, "9000", booking.Payment)
	assert.Equal(t, time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC), booking.CheckIn)
	assert.Len(t, booking.AdditionalGuests, 1)
	assert.Equal(t, "Rohan Verma", booking.AdditionalGuests[0].Name)
	assert.Equal(t, "operator", booking.CreatedBy)
	assert.False(t, booking.EntryDate.IsZero())
}

func TestCreateBookingRequest_ToModel_CustomRates(t *testing.T) {
	req := createRequest()
	req.CustomDailyRates = map[string]float64{
		"2025-03-11": 5000,
	}

	booking, err := req.ToModel("BK0001", "operator")

	assert.NoError(t, err)
	assert.Equal(t, "11000", booking.Payment)
}

func TestCreateBookingRequest_ToModel_ExplicitPaymentWins(t *testing.T) {
	req := createRequest()
	req.Payment = "8500"

	booking, err := req.ToModel("BK0001", "operator")

	assert.NoError(t, err)
	assert.Equal(t, "8500", booking.Payment)
}

func TestCreateBookingRequest_ToModel_InvalidRange(t *testing.T) {
	req := createRequest()
	req.CheckOut = req.CheckIn

	_, err := req.ToModel("BK0001", "operator")

	assert.Error(t, err)
}

func TestCreateBookingRequest_ToModel_CustomRateOutsideStay(t *testing.T) {
	req := createRequest()
	req.CustomDailyRates = map[string]float64{
		"2025-03-13": 5000, // the check-out day is not a night of the stay
	}

	_, err := req.ToModel("BK0001", "operator")

	assert.Error(t, err)
}

func TestUpdateBookingRequest_ToFieldMap(t *testing.T) {
	req := dto.UpdateBookingRequest{
		GuestName:    "Asha Verma",
		RatePerNight: "2000",
		Platform:     model.PlatformOffline,
		RoomID:       "SS715",
		CheckIn:      "2025-05-01",
		CheckOut:     "2025-05-03",
	}

	fields, err := req.ToFieldMap("operator")

	assert.NoError(t, err)
	assert.Equal(t, 2, fields[model.FieldTotalNights])
	assert.Equal(t, "4000", fields[model.FieldPayment])
	assert.Equal(t, model.PlatformOffline, fields[model.FieldPlatform])
	assert.Equal(t, "operator", fields["modified_by"])
	assert.NotContains(t, fields, model.FieldID)
}

func TestBookingResponse_FromModel(t *testing.T) {
	now := timezone.Now()
	booking := model.Booking{
		ID:          "BK0001",
		EntryDate:   time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		GuestName:   "Asha Verma",
		Payment:     "9000",
		TotalNights: 3,
		Platform:    model.PlatformAirbnb,
		RoomID:      "SS1020",
		CheckIn:     time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:    time.Date(2025, time.March, 13, 0, 0, 0, 0, time.UTC),
		AdditionalGuests: model.GuestList{
			{Name: "Rohan Verma"},
		},
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  "operator",
			ModifiedBy: "operator",
		},
	}

	var res dto.BookingResponse
	res.FromModel(booking)

	assert.Equal(t, "BK0001", res.ID)
	assert.Equal(t, "2025-03-01", res.EntryDate)
	assert.Equal(t, "2025-03-10", res.CheckIn)
	assert.Equal(t, "2025-03-13", res.CheckOut)
	assert.Len(t, res.AdditionalGuests, 1)
	assert.Equal(t, "operator", res.CreatedBy)
}

func TestStatsResponse_FromModels(t *testing.T) {
	all := []model.Booking{
		{ID: "BK0001", Platform: model.PlatformAirbnb},
		{ID: "BK0002", Platform: model.PlatformAgoda},
		{ID: "BK0003", Platform: model.PlatformAirbnb},
	}
	recent := all[:2]

	var res dto.StatsResponse
	res.FromModels(all, recent)

	assert.Equal(t, 3, res.TotalBookings)
	assert.Len(t, res.PlatformBreakdown, len(model.Platforms))

	counts := map[string]int{}
	for _, entry := range res.PlatformBreakdown {
		counts[entry.Platform] = entry.Count
	}

	assert.Equal(t, 2, counts[model.PlatformAirbnb])
	assert.Equal(t, 1, counts[model.PlatformAgoda])
	assert.Equal(t, 0, counts[model.PlatformGoibibo])
	assert.Len(t, res.RecentBookings, 2)
}
