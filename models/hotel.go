package models

import (
	"fmt"
	"time"

	"github.com/lib/pq"
)

type Hotel struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	Name          string         `json:"name" gorm:"not null;index"`
	Address       string         `json:"address"`
	Category      string         `json:"category"`
	Qualification int            `json:"qualification"`
	Amenities     pq.StringArray `json:"amenities" gorm:"type:text[]"`
	AdminID       uint           `json:"adminId" gorm:"index"`
	Status        bool           `json:"status" gorm:"default:true"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	Rooms         []Room         `json:"rooms,omitempty" gorm:"foreignKey:HotelID"`
}

func (h *Hotel) ValidateQualification() error {
	if h.Qualification < 1 || h.Qualification > 5 {
		return fmt.Errorf("invalid qualification: %d, must be between 1 and 5", h.Qualification)
	}
	return nil
}
