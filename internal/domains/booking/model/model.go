package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"stayadmin/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID               = "id"
	FieldEntryDate        = "entry_date"
	FieldGuestName        = "guest_name"
	FieldAadhaar          = "aadhaar"
	FieldAadhaarImageURL  = "aadhaar_image_url"
	FieldPhone            = "phone"
	FieldAdditionalGuests = "additional_guests"
	FieldPayment          = "payment"
	FieldRatePerNight     = "rate_per_night"
	FieldCustomDailyRates = "custom_daily_rates"
	FieldTotalNights      = "total_nights"
	FieldPlatform         = "platform"
	FieldRoomID           = "room_id"
	FieldCheckIn          = "check_in"
	FieldCheckOut         = "check_out"

	// SequenceName backs the BK#### identifiers. Sequence values are never
	// reused, so a deleted booking's id stays retired.
	SequenceName = "booking_id_seq"

	idPrefix = "BK"
)

const (
	PlatformAirbnb     = "Airbnb"
	PlatformGoibibo    = "Goibibo"
	PlatformMakeMyTrip = "MakeMyTrip"
	PlatformAgoda      = "Agoda"
	PlatformOffline    = "Offline"
)

// Platforms is the closed set of booking sources.
var Platforms = []string{
	PlatformAirbnb,
	PlatformGoibibo,
	PlatformMakeMyTrip,
	PlatformAgoda,
	PlatformOffline,
}

// RoomIDs is the closed set of physical room identifiers of the property.
var RoomIDs = []string{
	"SS1020",
	"SS1022",
	"SS1124",
	"SS1125",
	"SS1003",
	"SS715",
}

var errInvalidJSONBSource = errors.New("unsupported source type for jsonb column")

// FormatID renders a sequence value as a zero-padded booking id, BK0001 style.
func FormatID(seq int64) string {
	return fmt.Sprintf("%s%04d", idPrefix, seq)
}

// GuestInfo identifies one guest. Exactly one of Aadhaar and AadhaarImageURL
// is authoritative; the image URL is an opaque object-store reference.
type GuestInfo struct {
	Name            string `json:"name"`
	Aadhaar         string `json:"aadhaar,omitempty"`
	AadhaarImageURL string `json:"aadhaar_image_url,omitempty"`
	Phone           string `json:"phone,omitempty"`
}

// GuestList stores secondary guests as a jsonb column, preserving insertion
// order.
type GuestList []GuestInfo

func (g GuestList) Value() (driver.Value, error) {
	if g == nil {
		g = GuestList{}
	}

	value, err := json.Marshal(g)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal guest list: %w", err)
	}

	return value, nil
}

func (g *GuestList) Scan(src any) error {
	return scanJSONB(src, g)
}

// RateOverrides maps ISO date keys to per-night rates that override the flat
// rate, stored as a jsonb column.
type RateOverrides map[string]float64

func (r RateOverrides) Value() (driver.Value, error) {
	if r == nil {
		r = RateOverrides{}
	}

	value, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal rate overrides: %w", err)
	}

	return value, nil
}

func (r *RateOverrides) Scan(src any) error {
	return scanJSONB(src, r)
}

func scanJSONB(src, dest any) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		if err := json.Unmarshal(v, dest); err != nil {
			return fmt.Errorf("failed to unmarshal jsonb column: %w", err)
		}

		return nil
	case string:
		if err := json.Unmarshal([]byte(v), dest); err != nil {
			return fmt.Errorf("failed to unmarshal jsonb column: %w", err)
		}

		return nil
	default:
		return errInvalidJSONBSource
	}
}

type Booking struct {
	ID               string        `db:"id"`
	EntryDate        time.Time     `db:"entry_date"`
	GuestName        string        `db:"guest_name"`
	Aadhaar          string        `db:"aadhaar"`
	AadhaarImageURL  string        `db:"aadhaar_image_url"`
	Phone            string        `db:"phone"`
	AdditionalGuests GuestList     `db:"additional_guests"`
	Payment          string        `db:"payment"`
	RatePerNight     string        `db:"rate_per_night"`
	CustomDailyRates RateOverrides `db:"custom_daily_rates"`
	TotalNights      int           `db:"total_nights"`
	Platform         string        `db:"platform"`
	RoomID           string        `db:"room_id"`
	CheckIn          time.Time     `db:"check_in"`
	CheckOut         time.Time     `db:"check_out"`
	model.Metadata
}
