// Package notify turns a stored booking into the hand-off message for the
// property owner: a WhatsApp deep link and a booking.created event.
package notify

//go:generate go run go.uber.org/mock/mockgen -source=./notify.go -destination=./mocks/notify_mock.go -package=mocks

import (
	"context"
	"corais/config"
	"corais/infras/kafka"
	"corais/shared/constant"
	"corais/shared/timezone"
	"fmt"
	"net/url"
	"strings"
	"time"
)

const whatsAppBaseURL = "https://wa.me/"

// Summary is what the owner needs to confirm a reservation by hand.
type Summary struct {
	GuestName   string    `json:"guest_name"`
	RoomName    string    `json:"room_name"`
	CheckIn     time.Time `json:"check_in"`
	CheckOut    time.Time `json:"check_out"`
	GuestsCount int       `json:"guests_count"`
	TotalAmount float64   `json:"total_amount"`
	GuestPhone  string    `json:"guest_phone"`
	GuestEmail  string    `json:"guest_email"`
}

// FormatMoney renders an amount in reais with two decimals, e.g. "R$ 1500.00".
func FormatMoney(amount float64) string {
	return fmt.Sprintf("R$ %.2f", amount)
}

// Text renders the message body sent to the owner.
func (s Summary) Text() string {
	var b strings.Builder

	b.WriteString("Nova reserva!\n\n")
	fmt.Fprintf(&b, "Hóspede: %s\n", s.GuestName)
	fmt.Fprintf(&b, "Quarto: %s\n", s.RoomName)
	fmt.Fprintf(&b, "Check-in: %s\n", timezone.Format(s.CheckIn, constant.DisplayDateFormat))
	fmt.Fprintf(&b, "Check-out: %s\n", timezone.Format(s.CheckOut, constant.DisplayDateFormat))
	fmt.Fprintf(&b, "Hóspedes: %d\n", s.GuestsCount)
	fmt.Fprintf(&b, "Total: %s\n\n", FormatMoney(s.TotalAmount))
	fmt.Fprintf(&b, "Contato: %s\n", s.GuestPhone)
	fmt.Fprintf(&b, "Email: %s", s.GuestEmail)

	return b.String()
}

// WhatsAppLink builds a click-to-chat URL. Spaces are encoded as %20, which
// every WhatsApp client accepts.
func WhatsAppLink(recipient, text string) string {
	encoded := strings.ReplaceAll(url.QueryEscape(text), "+", "%20")

	return whatsAppBaseURL + recipient + "?text=" + encoded
}

// BookingCreated is the event payload published after a booking is stored.
type BookingCreated struct {
	BookingID       string    `json:"booking_id"`
	RoomID          string    `json:"room_id"`
	Summary         Summary   `json:"summary"`
	Message         string    `json:"message"`
	NotificationURL string    `json:"notification_url"`
	CreatedAt       time.Time `json:"created_at"`
}

type Publisher interface {
	Publish(ctx context.Context, event BookingCreated) error
}

type kafkaPublisher struct {
	client kafka.Client
	topic  string
}

func NewPublisher(client kafka.Client, cfg *config.Config) Publisher {
	return &kafkaPublisher{
		client: client,
		topic:  cfg.Kafka.BookingTopic,
	}
}

func (p *kafkaPublisher) Publish(ctx context.Context, event BookingCreated) error {
	err := p.client.SendMessages(ctx, p.topic, kafka.Message{Key: event.BookingID, Value: event})
	if err != nil {
		return fmt.Errorf("failed to publish booking event: %w", err)
	}

	return nil
}
