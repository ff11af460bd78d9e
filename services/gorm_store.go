package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"casamia/constants"
	apperrors "casamia/errors"
	"casamia/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore implements Store on top of gorm
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func dbError(op string, err error) error {
	return apperrors.NewAppError(apperrors.ErrCodeDBError, op, err)
}

func (s *GormStore) FindRoom(ctx context.Context, id uint) (*models.Room, error) {
	var room models.Room
	if err := s.db.WithContext(ctx).First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRoomNotFound
		}
		return nil, dbError("find room", err)
	}
	return &room, nil
}

func (s *GormStore) LockRoom(ctx context.Context, id uint) (*models.Room, error) {
	var room models.Room
	err := s.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&room, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRoomNotFound
		}
		return nil, dbError("lock room", err)
	}
	return &room, nil
}

func (s *GormStore) UpdateRoomStatus(ctx context.Context, id uint, status string) error {
	res := s.db.WithContext(ctx).Model(&models.Room{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return dbError("update room status", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrRoomNotFound
	}
	return nil
}

func (s *GormStore) DeleteRoom(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Room{}, id)
	if res.Error != nil {
		return dbError("delete room", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrRoomNotFound
	}
	return nil
}

func (s *GormStore) SubstituteRooms(ctx context.Context, hotelID uint, roomType string, exclude []uint) ([]models.Room, error) {
	q := s.db.WithContext(ctx).
		Where("hotel_id = ? AND type = ? AND status = ?", hotelID, roomType, constants.RoomStatusAvailable)
	if len(exclude) > 0 {
		q = q.Where("id NOT IN ?", exclude)
	}
	var rooms []models.Room
	if err := q.Order("room_number").Find(&rooms).Error; err != nil {
		return nil, dbError("find substitute rooms", err)
	}
	return rooms, nil
}

func (s *GormStore) FindReservation(ctx context.Context, id uint) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := s.db.WithContext(ctx).First(&reservation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrReservationNotFound
		}
		return nil, dbError("find reservation", err)
	}
	return &reservation, nil
}

func (s *GormStore) ActiveReservations(ctx context.Context, roomID uint) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := s.db.WithContext(ctx).
		Where("room_id = ? AND state = ?", roomID, constants.ReservationActive).
		Order("entry_date").
		Find(&reservations).Error
	if err != nil {
		return nil, dbError("find active reservations", err)
	}
	return reservations, nil
}

func (s *GormStore) OverlappingReservations(ctx context.Context, roomID uint, period models.Interval, excludeID uint) ([]models.Reservation, error) {
	q := s.db.WithContext(ctx).
		Where("room_id = ? AND state = ?", roomID, constants.ReservationActive).
		Where("entry_date < ? AND departure_date > ?", period.End, period.Start)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var reservations []models.Reservation
	if err := q.Find(&reservations).Error; err != nil {
		return nil, dbError("find overlapping reservations", err)
	}
	return reservations, nil
}

func (s *GormStore) BusyRoomIDs(ctx context.Context, period models.Interval) ([]uint, error) {
	var ids []uint
	err := s.db.WithContext(ctx).Model(&models.Reservation{}).
		Where("state = ?", constants.ReservationActive).
		Where("entry_date < ? AND departure_date > ?", period.End, period.Start).
		Distinct().
		Pluck("room_id", &ids).Error
	if err != nil {
		return nil, dbError("find busy rooms", err)
	}
	return ids, nil
}

func (s *GormStore) ExpiredReservations(ctx context.Context, now time.Time) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := s.db.WithContext(ctx).
		Where("state = ? AND departure_date <= ?", constants.ReservationActive, now).
		Order("room_id").
		Find(&reservations).Error
	if err != nil {
		return nil, dbError("find expired reservations", err)
	}
	return reservations, nil
}

func (s *GormStore) CreateReservation(ctx context.Context, r *models.Reservation) error {
	if err := s.db.WithContext(ctx).Omit("Room").Create(r).Error; err != nil {
		return dbError("create reservation", err)
	}
	return nil
}

func (s *GormStore) SaveReservation(ctx context.Context, r *models.Reservation) error {
	if err := s.db.WithContext(ctx).Omit("Room").Save(r).Error; err != nil {
		return dbError(fmt.Sprintf("save reservation %d", r.ID), err)
	}
	return nil
}

func (s *GormStore) CountExtraServices(ctx context.Context, hotelID uint, ids []int64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.ExtraService{}).
		Where("hotel_id = ? AND id IN ?", hotelID, ids).
		Count(&count).Error
	if err != nil {
		return 0, dbError("count extra services", err)
	}
	return count, nil
}

func (s *GormStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}

// AllRooms lists every room, used by the status refresh job
func (s *GormStore) AllRooms(ctx context.Context) ([]models.Room, error) {
	var rooms []models.Room
	if err := s.db.WithContext(ctx).Order("id").Find(&rooms).Error; err != nil {
		return nil, dbError("list rooms", err)
	}
	return rooms, nil
}
