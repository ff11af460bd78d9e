package models

import (
	"fmt"
	"time"

	"casamia/constants"
)

type Room struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	HotelID    uint      `json:"hotelId" gorm:"not null;uniqueIndex:idx_room_hotel_number"`
	RoomNumber int       `json:"roomNumber" gorm:"not null;uniqueIndex:idx_room_hotel_number"`
	Type       string    `json:"type" gorm:"not null;index"`
	Capacity   int       `json:"capacity"`
	Price      float64   `json:"price"`
	Status     string    `json:"status" gorm:"default:DISPONIBLE;index"`
	Avatar     string    `json:"avatar"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

var roomTypes = map[string]bool{
	constants.RoomTypeSingle: true,
	constants.RoomTypeDouble: true,
	constants.RoomTypeSuite:  true,
	constants.RoomTypeFamily: true,
	constants.RoomTypeLuxury: true,
}

func (r *Room) ValidateType() error {
	if !roomTypes[r.Type] {
		return fmt.Errorf("invalid type: %q", r.Type)
	}
	return nil
}

func (r *Room) ValidateStatus() error {
	if r.Status != constants.RoomStatusAvailable && r.Status != constants.RoomStatusOccupied {
		return fmt.Errorf("invalid status: %q, must be %s or %s", r.Status, constants.RoomStatusAvailable, constants.RoomStatusOccupied)
	}
	return nil
}

func (r *Room) IsAvailable() bool {
	return r.Status == constants.RoomStatusAvailable
}
