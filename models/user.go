package models

import (
	"time"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Name      string    `json:"name"`
	Surname   string    `json:"surname"`
	Username  string    `gorm:"unique;not null" json:"username"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Password  string    `json:"-"`
	Phone     string    `gorm:"type:varchar(8)" json:"phone"`
	Role      string    `gorm:"default:USER_ROLE" json:"role"`
	Status    bool      `gorm:"default:true" json:"status"`
}
