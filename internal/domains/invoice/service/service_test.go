package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"stayadmin/infras/otel/mocks"
	bookingMocks "stayadmin/internal/domains/booking/mocks"
	"stayadmin/internal/domains/booking/model"
	"stayadmin/internal/domains/invoice/model/dto"
	"stayadmin/internal/domains/invoice/service"
)

func TestInvoiceService_Build(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	booking := model.Booking{
		ID:           "BK0042",
		GuestName:    "Asha Verma",
		Payment:      "1234567.5",
		RatePerNight: "3000",
		TotalNights:  3,
		CheckIn:      time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:     time.Date(2025, time.March, 13, 0, 0, 0, 0, time.UTC),
	}

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(booking, nil)

	res, err := svc.Build(context.Background(), dto.BuildInvoiceRequest{
		BookingID:   "BK0042",
		InvoiceNo:   "INV-2025-001",
		InvoiceDate: "2025-03-14",
	})

	assert.NoError(t, err)
	assert.Equal(t, "INV-2025-001", res.InvoiceNo)
	assert.Equal(t, "14 Mar 2025", res.InvoiceDate)
	assert.Equal(t, "BK0042", res.BookingID)
	assert.Equal(t, "10 Mar 2025 at 2:00 PM", res.CheckIn)
	assert.Equal(t, "13 Mar 2025 at 11:00 AM", res.CheckOut)
	assert.Equal(t, 3, res.Nights)
	assert.Equal(t, "3,000", res.PricePerNight)
	assert.Equal(t, "12,34,567.5", res.TotalAmount)
}

func TestInvoiceService_Build_GeneratesInvoiceNo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	booking := model.Booking{
		ID:          "BK0001",
		GuestName:   "Asha Verma",
		Payment:     "9000",
		TotalNights: 3,
		CheckIn:     time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:    time.Date(2025, time.March, 13, 0, 0, 0, 0, time.UTC),
	}

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(booking, nil)

	res, err := svc.Build(context.Background(), dto.BuildInvoiceRequest{BookingID: "BK0001"})

	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(res.InvoiceNo, "INV-"))
	assert.Len(t, res.InvoiceNo, len("INV-")+8)

	// No flat rate on the booking: derived from payment over nights.
	assert.Equal(t, "3,000", res.PricePerNight)
}

func TestInvoiceService_Build_BookingNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Booking{}, nil)

	_, err := svc.Build(context.Background(), dto.BuildInvoiceRequest{BookingID: "BK9999"})

	assert.Error(t, err)
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{name: "under a thousand", value: 950, want: "950"},
		{name: "thousands", value: 12500, want: "12,500"},
		{name: "lakhs", value: 1234567, want: "12,34,567"},
		{name: "crores", value: 12345678, want: "1,23,45,678"},
		{name: "fractional", value: 1234.56, want: "1,234.56"},
		{name: "negative", value: -12500, want: "-12,500"},
		{name: "zero", value: 0, want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dto.FormatAmount(tt.value))
		})
	}
}
