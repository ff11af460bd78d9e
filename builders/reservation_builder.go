package builders

import (
	"time"

	"casamia/constants"
	"casamia/models"

	"github.com/lib/pq"
)

// ReservationBuilder assembles a reservation step by step
type ReservationBuilder struct {
	reservation *models.Reservation
}

// NewReservationBuilder starts an active reservation
func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		reservation: &models.Reservation{State: constants.ReservationActive},
	}
}

// WithUser sets the guest
func (b *ReservationBuilder) WithUser(userID uint) *ReservationBuilder {
	b.reservation.UserID = userID
	return b
}

// WithRoom sets the booked room
func (b *ReservationBuilder) WithRoom(room *models.Room) *ReservationBuilder {
	b.reservation.RoomID = room.ID
	b.reservation.Room = room
	return b
}

// WithStay sets the stay interval
func (b *ReservationBuilder) WithStay(entry, departure time.Time) *ReservationBuilder {
	b.reservation.EntryDate = entry
	b.reservation.DepartureDate = departure
	return b
}

// WithExtraServices sets the requested extra services
func (b *ReservationBuilder) WithExtraServices(ids []int64) *ReservationBuilder {
	if len(ids) > 0 {
		b.reservation.ExtraServiceIDs = pq.Int64Array(ids)
	}
	return b
}

// WithCard keeps the last four digits of the card, never the full number
func (b *ReservationBuilder) WithCard(cardNumber, cvv string, expiry time.Time) *ReservationBuilder {
	if n := len(cardNumber); n >= 4 {
		b.reservation.CardLast4 = cardNumber[n-4:]
	}
	b.reservation.CVV = cvv
	b.reservation.CardExpiry = expiry
	return b
}

// Build returns the reservation
func (b *ReservationBuilder) Build() *models.Reservation {
	return b.reservation
}
