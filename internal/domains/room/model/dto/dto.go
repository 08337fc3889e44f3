package dto

import (
	"corais/internal/domains/room/model"
	gDto "corais/shared/dto"
	"math"
)

// CatalogRoom is the slim projection shown in the reservation form.
type CatalogRoom struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	PricePerNight float64 `json:"price_per_night"`
	MaxGuests     int     `json:"max_guests"`
}

func (c *CatalogRoom) FromModel(model model.Room) {
	c.ID = model.ID
	c.Name = model.Name
	c.PricePerNight = model.PricePerNight
	c.MaxGuests = model.MaxGuests
}

func CatalogFromModels(models []model.Room) []CatalogRoom {
	rooms := make([]CatalogRoom, len(models))
	for i, mod := range models {
		rooms[i].FromModel(mod)
	}

	return rooms
}

type RoomResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	PricePerNight float64  `json:"price_per_night"`
	MaxGuests     int      `json:"max_guests"`
	Amenities     []string `json:"amenities"`
	Images        []string `json:"images"`
	Status        string   `json:"status"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.PricePerNight = model.PricePerNight
	r.MaxGuests = model.MaxGuests
	r.Amenities = append([]string{}, model.Amenities...)
	r.Images = append([]string{}, model.Images...)
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = 1

	if totalData > 0 && limit > 0 {
		r.TotalPage = int(math.Ceil(float64(totalData) / float64(limit)))
	}

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
