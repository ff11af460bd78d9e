package models

import (
	"time"

	"casamia/constants"

	"github.com/lib/pq"
)

type Reservation struct {
	ID              uint          `json:"id" gorm:"primaryKey"`
	UserID          uint          `json:"userId" gorm:"not null;index"`
	RoomID          uint          `json:"roomId" gorm:"not null;index:idx_reservation_room_state"`
	Room            *Room         `json:"room,omitempty" gorm:"foreignKey:RoomID"`
	EntryDate       time.Time     `json:"dateEntry" gorm:"not null"`
	DepartureDate   time.Time     `json:"departureDate" gorm:"not null"`
	State           string        `json:"state" gorm:"default:activa;index:idx_reservation_room_state"`
	ExtraServiceIDs pq.Int64Array `json:"extraServices" gorm:"type:integer[]"`
	CardLast4       string        `json:"cardLast4" gorm:"type:varchar(4)"`
	CVV             string        `json:"-"`
	CardExpiry      time.Time     `json:"expired"`
	CreatedAt       time.Time     `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time     `gorm:"autoUpdateTime" json:"updatedAt"`
}

// Period is the half-open stay interval [EntryDate, DepartureDate).
func (r *Reservation) Period() Interval {
	return Interval{Start: r.EntryDate, End: r.DepartureDate}
}

func (r *Reservation) IsActive() bool {
	return r.State == constants.ReservationActive
}

// Interval is a half-open time range [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether the two intervals share at least one instant.
// An interval ending at D does not overlap one starting at D.
func (i Interval) Overlaps(o Interval) bool {
	return i.Start.Before(o.End) && i.End.After(o.Start)
}

func (i Interval) Valid() bool {
	return i.Start.Before(i.End)
}
