package services

import (
	"context"
	"time"

	"casamia/models"
)

// farFuture closes intervals that are open to the right.
var farFuture = time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)

// Store is the persistence surface used by the availability engine.
// Lookups of missing rooms and reservations return ErrRoomNotFound and
// ErrReservationNotFound.
type Store interface {
	FindRoom(ctx context.Context, id uint) (*models.Room, error)
	// LockRoom loads the room and holds a row lock until the surrounding
	// transaction ends.
	LockRoom(ctx context.Context, id uint) (*models.Room, error)
	UpdateRoomStatus(ctx context.Context, id uint, status string) error
	DeleteRoom(ctx context.Context, id uint) error
	// SubstituteRooms returns DISPONIBLE rooms of the hotel with the given
	// type, skipping the excluded ids, ordered by room number.
	SubstituteRooms(ctx context.Context, hotelID uint, roomType string, exclude []uint) ([]models.Room, error)

	FindReservation(ctx context.Context, id uint) (*models.Reservation, error)
	ActiveReservations(ctx context.Context, roomID uint) ([]models.Reservation, error)
	// OverlappingReservations returns active reservations on the room whose
	// stay overlaps period. excludeID of 0 excludes nothing.
	OverlappingReservations(ctx context.Context, roomID uint, period models.Interval, excludeID uint) ([]models.Reservation, error)
	// BusyRoomIDs returns the distinct rooms holding an active reservation
	// that overlaps period.
	BusyRoomIDs(ctx context.Context, period models.Interval) ([]uint, error)
	// ExpiredReservations returns active reservations with departure <= now.
	ExpiredReservations(ctx context.Context, now time.Time) ([]models.Reservation, error)
	CreateReservation(ctx context.Context, r *models.Reservation) error
	SaveReservation(ctx context.Context, r *models.Reservation) error

	// CountExtraServices counts how many of ids belong to the hotel.
	CountExtraServices(ctx context.Context, hotelID uint, ids []int64) (int64, error)

	// Transaction runs fn against a Store bound to a single unit of work.
	Transaction(ctx context.Context, fn func(tx Store) error) error
}
