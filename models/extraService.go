package models

import "time"

type ExtraService struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	HotelID     uint      `json:"hotelId" gorm:"not null;index"`
	Name        string    `json:"name" gorm:"not null"`
	Cost        float64   `json:"cost"`
	Description string    `json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
