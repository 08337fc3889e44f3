package dto

import (
	"corais/internal/domains/booking/form"
	"corais/internal/domains/booking/model"
	roomDto "corais/internal/domains/room/model/dto"
	"corais/shared/constant"
	"corais/shared/timezone"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DraftRequest carries a reservation draft over HTTP. Only the shape is
// checked here; completeness is decided by form.Validate so that every
// missing field yields the same error.
type DraftRequest struct {
	RoomID          string `json:"room_id"          validate:"omitempty,max=64"`
	CheckIn         string `json:"check_in"         validate:"omitempty,isodate"  example:"2025-03-10"`
	CheckOut        string `json:"check_out"        validate:"omitempty,isodate"  example:"2025-03-13"`
	GuestsCount     *int   `json:"guests_count"     validate:"omitempty,gte=0,lte=20"`
	GuestName       string `json:"guest_name"       validate:"omitempty,max=255"`
	GuestEmail      string `json:"guest_email"      validate:"omitempty,email,max=255"`
	GuestPhone      string `json:"guest_phone"      validate:"omitempty,phone"`
	SpecialRequests string `json:"special_requests" validate:"omitempty,max=2000"`
}

func parseDate(value string) *time.Time {
	if value == "" {
		return nil
	}

	parsed, err := timezone.Parse(constant.DateOnlyFormat, value)
	if err != nil {
		return nil
	}

	return &parsed
}

// ToDraft starts from form.NewDraft so an omitted guests_count keeps the default.
func (r *DraftRequest) ToDraft() form.Draft {
	draft := form.NewDraft()

	draft.RoomID = strings.TrimSpace(r.RoomID)
	draft.CheckIn = parseDate(r.CheckIn)
	draft.CheckOut = parseDate(r.CheckOut)
	draft.GuestName = r.GuestName
	draft.GuestEmail = r.GuestEmail
	draft.GuestPhone = r.GuestPhone
	draft.SpecialRequests = r.SpecialRequests

	if r.GuestsCount != nil {
		draft.GuestsCount = *r.GuestsCount
	}

	return draft
}

// NewRecord builds the row written for a validated draft.
func NewRecord(d form.Draft, total float64) model.Booking {
	requests := strings.TrimSpace(d.SpecialRequests)

	return model.Booking{
		ID:              uuid.NewString(),
		RoomID:          d.RoomID,
		GuestName:       strings.TrimSpace(d.GuestName),
		GuestEmail:      strings.TrimSpace(d.GuestEmail),
		GuestPhone:      strings.TrimSpace(d.GuestPhone),
		CheckIn:         timezone.Format(*d.CheckIn, constant.DateOnlyFormat),
		CheckOut:        timezone.Format(*d.CheckOut, constant.DateOnlyFormat),
		GuestsCount:     d.GuestsCount,
		TotalAmount:     total,
		SpecialRequests: sql.NullString{String: requests, Valid: requests != ""},
		Status:          constant.BookingStatusPending,
		PaymentStatus:   constant.PaymentStatusPending,
	}
}

type Confirmation struct {
	BookingID       string  `json:"booking_id"`
	Message         string  `json:"message"`
	NotificationURL string  `json:"notification_url"`
	TotalAmount     float64 `json:"total_amount"`
	Nights          int     `json:"nights"`
}

type QuoteResponse struct {
	RoomID        string  `json:"room_id,omitempty"`
	RoomName      string  `json:"room_name,omitempty"`
	Nights        int     `json:"nights"`
	PricePerNight float64 `json:"price_per_night"`
	TotalAmount   float64 `json:"total_amount"`
	GuestsHint    int     `json:"guests_hint"`
	Notice        string  `json:"notice,omitempty"`
}

type FormStateResponse struct {
	Rooms          []roomDto.CatalogRoom `json:"rooms"`
	SelectedRoomID string                `json:"selected_room_id,omitempty"`
	GuestsCount    int                   `json:"guests_count"`
	GuestsHint     int                   `json:"guests_hint"`
	Notice         string                `json:"notice,omitempty"`
}
