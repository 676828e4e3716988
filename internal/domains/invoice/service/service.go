package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"stayadmin/infras/otel"
	bookingModel "stayadmin/internal/domains/booking/model"
	bookingRepo "stayadmin/internal/domains/booking/repository"
	"stayadmin/internal/domains/booking/pricing"
	"stayadmin/internal/domains/invoice/model/dto"
	"stayadmin/shared"
	"stayadmin/shared/constant"
	"stayadmin/shared/failure"
	"stayadmin/shared/timezone"
)

const (
	invoiceNoPrefix   = "INV-"
	invoiceDateFormat = "02 Jan 2006"

	// The property's fixed turnover times, printed on every invoice.
	checkInTimeLabel  = "2:00 PM"
	checkOutTimeLabel = "11:00 AM"
)

type Invoice interface {
	Build(ctx context.Context, req dto.BuildInvoiceRequest) (dto.InvoiceResponse, error)
}

type serviceImpl struct {
	bookings bookingRepo.Booking
	otel     otel.Otel
}

func New(bookings bookingRepo.Booking, otel otel.Otel) Invoice {
	return &serviceImpl{
		bookings: bookings,
		otel:     otel,
	}
}

// Build assembles the invoice payload for a stored booking. The caller may
// supply the invoice number and date; otherwise a number is generated and
// today's date is used.
func (s *serviceImpl) Build(ctx context.Context, req dto.BuildInvoiceRequest) (res dto.InvoiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Build")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.bookings.Get(ctx, shared.FilterByID(req.BookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking for invoice")

		return res, fmt.Errorf("failed to get booking for invoice: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") //nolint:wrapcheck
	}

	nights := booking.TotalNights
	if nights == 0 {
		nights, err = pricing.Nights(booking.CheckIn, booking.CheckOut)
		if err != nil {
			return res, failure.BadRequestFromString("booking has an invalid date range") //nolint:wrapcheck
		}
	}

	totalAmount := pricing.ParseAmount(booking.Payment)

	pricePerNight := pricing.ParseAmount(booking.RatePerNight)
	if pricePerNight == 0 && nights > 0 {
		pricePerNight = totalAmount / float64(nights)
	}

	invoiceNo := req.InvoiceNo
	if invoiceNo == constant.Empty {
		invoiceNo = generateInvoiceNo()
	}

	invoiceDate := timezone.Now().Format(invoiceDateFormat)

	if req.InvoiceDate != constant.Empty {
		parsed, err := time.Parse(constant.CalendarDateFormat, req.InvoiceDate)
		if err != nil {
			return res, failure.BadRequestFromString("invalid invoice date") //nolint:wrapcheck
		}

		invoiceDate = parsed.Format(invoiceDateFormat)
	}

	res = dto.InvoiceResponse{
		InvoiceNo:     invoiceNo,
		InvoiceDate:   invoiceDate,
		BookingID:     booking.ID,
		GuestName:     booking.GuestName,
		CheckIn:       fmt.Sprintf("%s at %s", booking.CheckIn.Format(invoiceDateFormat), checkInTimeLabel),
		CheckOut:      fmt.Sprintf("%s at %s", booking.CheckOut.Format(invoiceDateFormat), checkOutTimeLabel),
		Nights:        nights,
		PricePerNight: dto.FormatAmount(pricePerNight),
		TotalAmount:   dto.FormatAmount(totalAmount),
	}

	return res, nil
}

func generateInvoiceNo() string {
	fragment := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))

	return invoiceNoPrefix + fragment[:8]
}
