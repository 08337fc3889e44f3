// Package form holds the reservation draft and the rules that turn it into a
// bookable request: derived nights and total, and submit-time validation.
package form

import (
	roomDto "corais/internal/domains/room/model/dto"
	"corais/shared/failure"
	"corais/shared/timezone"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultGuestsCount = 2
	// DefaultGuestsHint is shown while no room is selected.
	DefaultGuestsHint = 4

	FieldRoom        = "room_id"
	FieldCheckIn     = "check_in"
	FieldCheckOut    = "check_out"
	FieldGuestsCount = "guests_count"
	FieldGuestName   = "guest_name"
	FieldGuestEmail  = "guest_email"
	FieldGuestPhone  = "guest_phone"

	MessageMissingRequiredField = "Por favor, preencha todos os campos obrigatórios"
	MessageInvalidDateRange     = "A data de check-out deve ser posterior ao check-in"
	MessageGuestsExceedCapacity = "O número de hóspedes excede a capacidade da suíte"
)

var (
	ErrMissingRequiredField = errors.New("missing required field")
	ErrInvalidDateRange     = errors.New("check-out must be after check-in")
	ErrGuestsExceedCapacity = errors.New("guests exceed room capacity")
)

// Draft is the in-progress reservation. Dates are nil until chosen.
type Draft struct {
	RoomID          string
	CheckIn         *time.Time
	CheckOut        *time.Time
	GuestsCount     int
	GuestName       string
	GuestEmail      string
	GuestPhone      string
	SpecialRequests string
}

func NewDraft() Draft {
	return Draft{GuestsCount: DefaultGuestsCount}
}

// Catalog is a snapshot of the bookable rooms.
type Catalog []roomDto.CatalogRoom

// Find returns the room with id, or nil.
func (c Catalog) Find(id string) *roomDto.CatalogRoom {
	if id == "" {
		return nil
	}

	for i := range c {
		if c[i].ID == id {
			return &c[i]
		}
	}

	return nil
}

// ComputeNights counts calendar days between the two dates. It is 0 when
// either date is unset and negative when check-out precedes check-in.
func ComputeNights(checkIn, checkOut *time.Time) int {
	if checkIn == nil || checkOut == nil {
		return 0
	}

	return timezone.DaysBetween(*checkIn, *checkOut)
}

// ComputeTotal is nights times the nightly rate, or 0 without a room or a positive stay.
func ComputeTotal(nights int, room *roomDto.CatalogRoom) float64 {
	if room == nil || nights <= 0 {
		return 0
	}

	return float64(nights) * room.PricePerNight
}

// Nights derives the stay length of d.
func (d Draft) Nights() int {
	return ComputeNights(d.CheckIn, d.CheckOut)
}

// Total derives the amount due for d against catalog.
func (d Draft) Total(catalog Catalog) float64 {
	return ComputeTotal(d.Nights(), catalog.Find(d.RoomID))
}

// GuestsHint is the advisory upper bound for the guests selector.
func (d Draft) GuestsHint(catalog Catalog) int {
	if room := catalog.Find(d.RoomID); room != nil {
		return room.MaxGuests
	}

	return DefaultGuestsHint
}

func missing(field string) error {
	return failure.Wrap(
		http.StatusBadRequest,
		fmt.Errorf("%w: %s", ErrMissingRequiredField, field),
		fmt.Sprintf("%s (%s)", MessageMissingRequiredField, field),
	)
}

func blank(value string) bool {
	return strings.TrimSpace(value) == ""
}

// Validate reports the first problem with d. A room id that is not in catalog
// counts as unselected.
func Validate(d Draft, catalog Catalog) error {
	room := catalog.Find(d.RoomID)

	switch {
	case room == nil:
		return missing(FieldRoom)
	case d.CheckIn == nil:
		return missing(FieldCheckIn)
	case d.CheckOut == nil:
		return missing(FieldCheckOut)
	case d.GuestsCount < 1:
		return missing(FieldGuestsCount)
	case blank(d.GuestName):
		return missing(FieldGuestName)
	case blank(d.GuestEmail):
		return missing(FieldGuestEmail)
	case blank(d.GuestPhone):
		return missing(FieldGuestPhone)
	}

	if d.Nights() <= 0 {
		return failure.Wrap(http.StatusBadRequest, ErrInvalidDateRange, MessageInvalidDateRange)
	}

	if d.GuestsCount > room.MaxGuests {
		return failure.Wrap(
			http.StatusBadRequest,
			ErrGuestsExceedCapacity,
			fmt.Sprintf("%s (máximo %d)", MessageGuestsExceedCapacity, room.MaxGuests),
		)
	}

	return nil
}
