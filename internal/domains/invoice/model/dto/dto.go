package dto

import (
	"strconv"
	"strings"
)

type BuildInvoiceRequest struct {
	BookingID   string `json:"booking_id"   validate:"required,max=20"`
	InvoiceNo   string `json:"invoice_no"   validate:"omitempty,max=30"`
	InvoiceDate string `json:"invoice_date" validate:"omitempty,isodate"`
}

// InvoiceResponse is the flat record a document renderer consumes. Amounts
// carry en-IN digit grouping, dates carry the fixed check-in and check-out
// times of the property.
type InvoiceResponse struct {
	InvoiceNo     string `json:"invoice_no"`
	InvoiceDate   string `json:"invoice_date"`
	BookingID     string `json:"booking_id"`
	GuestName     string `json:"guest_name"`
	CheckIn       string `json:"check_in"`
	CheckOut      string `json:"check_out"`
	Nights        int    `json:"nights"`
	PricePerNight string `json:"price_per_night"`
	TotalAmount   string `json:"total_amount"`
}

// FormatAmount renders a number with Indian digit grouping: the last three
// integer digits, then groups of two, as in 12,34,567.89.
func FormatAmount(value float64) string {
	raw := strconv.FormatFloat(value, 'f', -1, 64)

	sign := ""
	if strings.HasPrefix(raw, "-") {
		sign = "-"
		raw = raw[1:]
	}

	intPart, fracPart, _ := strings.Cut(raw, ".")

	grouped := intPart
	if len(intPart) > 3 {
		head := intPart[:len(intPart)-3]
		tail := intPart[len(intPart)-3:]

		parts := []string{}
		for len(head) > 2 {
			parts = append([]string{head[len(head)-2:]}, parts...)
			head = head[:len(head)-2]
		}

		if head != "" {
			parts = append([]string{head}, parts...)
		}

		grouped = strings.Join(append(parts, tail), ",")
	}

	if fracPart != "" {
		return sign + grouped + "." + fracPart
	}

	return sign + grouped
}
