package model

import (
	"corais/shared/model"
	"errors"

	"github.com/lib/pq"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID            = "id"
	FieldName          = "name"
	FieldDescription   = "description"
	FieldPricePerNight = "price_per_night"
	FieldMaxGuests     = "max_guests"
	FieldAmenities     = "amenities"
	FieldImages        = "images"
	FieldStatus        = "status"
)

// CatalogColumns is the projection the reservation form needs.
var CatalogColumns = []string{FieldID, FieldName, FieldPricePerNight, FieldMaxGuests}

var (
	ErrCatalogFetch     = errors.New("catalog fetch failed")
	ErrInvalidAmenities = errors.New("invalid amenities")
)

type Room struct {
	ID            string         `db:"id"`
	Name          string         `db:"name"`
	Description   string         `db:"description"`
	PricePerNight float64        `db:"price_per_night"`
	MaxGuests     int            `db:"max_guests"`
	Amenities     Amenities      `db:"amenities"`
	Images        pq.StringArray `db:"images"`
	Status        string         `db:"status"`
	model.Metadata
}
