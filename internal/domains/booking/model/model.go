package model

import (
	"corais/shared/model"
	"database/sql"
	"errors"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID = "id"

	MessagePersistence      = "Erro ao processar sua reserva. Por favor, tente novamente."
	MessageSubmissionFlight = "Sua reserva já está sendo processada. Aguarde um instante."
	MessageSuccess          = "Reserva solicitada com sucesso! Entraremos em contato em breve."
)

var (
	ErrPersistence        = errors.New("booking could not be persisted")
	ErrSubmissionInFlight = errors.New("booking submission already in flight")
)

// Booking is written once on submit and never updated here. Dates are stored
// as yyyy-MM-dd.
type Booking struct {
	ID              string         `db:"id"`
	RoomID          string         `db:"room_id"`
	GuestName       string         `db:"guest_name"`
	GuestEmail      string         `db:"guest_email"`
	GuestPhone      string         `db:"guest_phone"`
	CheckIn         string         `db:"check_in"`
	CheckOut        string         `db:"check_out"`
	GuestsCount     int            `db:"guests_count"`
	TotalAmount     float64        `db:"total_amount"`
	SpecialRequests sql.NullString `db:"special_requests"`
	Status          string         `db:"status"`
	PaymentStatus   string         `db:"payment_status"`
	model.Metadata
}
