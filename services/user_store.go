package services

import (
	"context"
	"errors"
	"strings"

	"casamia/constants"
	apperrors "casamia/errors"
	"casamia/models"

	"gorm.io/gorm"
)

// UserFilter narrows ListUsers. Only active accounts are listed.
type UserFilter struct {
	Username string
	Offset   int
	Limit    int
}

// UserStore is the persistence used by UserService. Missing users return
// ErrUserNotFound.
type UserStore interface {
	FindUser(ctx context.Context, id uint) (*models.User, error)
	FindUserByUsername(ctx context.Context, username string) (*models.User, error)
	// UserTaken reports whether another account than exceptID uses the
	// username or the email. Empty values are not checked.
	UserTaken(ctx context.Context, username, email string, exceptID uint) (bool, error)
	SaveUser(ctx context.Context, user *models.User) error
	ListUsers(ctx context.Context, filter UserFilter) ([]models.User, int64, error)
	ActiveReservationIDs(ctx context.Context, userID uint) ([]uint, error)
	// DeleteUser removes the account and its reservation history. It fails
	// while the user still holds an active reservation.
	DeleteUser(ctx context.Context, id uint) error
}

// GormUserStore implements UserStore on top of gorm
type GormUserStore struct {
	db *gorm.DB
}

func NewGormUserStore(db *gorm.DB) *GormUserStore {
	return &GormUserStore{db: db}
}

func (s *GormUserStore) first(ctx context.Context, query string, args ...interface{}) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where(query, args...).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, dbError("find user", err)
	}
	return &user, nil
}

func (s *GormUserStore) FindUser(ctx context.Context, id uint) (*models.User, error) {
	return s.first(ctx, "id = ?", id)
}

func (s *GormUserStore) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.first(ctx, "LOWER(username) = ?", strings.ToLower(username))
}

func (s *GormUserStore) UserTaken(ctx context.Context, username, email string, exceptID uint) (bool, error) {
	if username == "" && email == "" {
		return false, nil
	}
	q := s.db.WithContext(ctx).Model(&models.User{}).Where("id <> ?", exceptID)
	switch {
	case username != "" && email != "":
		q = q.Where("LOWER(username) = ? OR LOWER(email) = ?", strings.ToLower(username), strings.ToLower(email))
	case username != "":
		q = q.Where("LOWER(username) = ?", strings.ToLower(username))
	default:
		q = q.Where("LOWER(email) = ?", strings.ToLower(email))
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, dbError("check user", err)
	}
	return n > 0, nil
}

func (s *GormUserStore) SaveUser(ctx context.Context, user *models.User) error {
	if err := s.db.WithContext(ctx).Save(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.NewAppError(apperrors.ErrCodeDuplicateUser, "username or email already in use", err)
		}
		return dbError("save user", err)
	}
	return nil
}

func (s *GormUserStore) ListUsers(ctx context.Context, filter UserFilter) ([]models.User, int64, error) {
	q := s.db.WithContext(ctx).Model(&models.User{}).Where("status = ?", true)
	if filter.Username != "" {
		q = q.Where("LOWER(username) = ?", strings.ToLower(filter.Username))
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, dbError("count users", err)
	}
	var users []models.User
	if err := q.Order("id").Offset(filter.Offset).Limit(filter.Limit).Find(&users).Error; err != nil {
		return nil, 0, dbError("list users", err)
	}
	return users, total, nil
}

func (s *GormUserStore) ActiveReservationIDs(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	err := s.db.WithContext(ctx).Model(&models.Reservation{}).
		Where("user_id = ? AND state = ?", userID, constants.ReservationActive).
		Order("id").Pluck("id", &ids).Error
	if err != nil {
		return nil, dbError("list user reservations", err)
	}
	return ids, nil
}

func (s *GormUserStore) DeleteUser(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var active int64
		if err := tx.Model(&models.Reservation{}).
			Where("user_id = ? AND state = ?", id, constants.ReservationActive).
			Count(&active).Error; err != nil {
			return dbError("count user reservations", err)
		}
		if active > 0 {
			return apperrors.NewAppError(apperrors.ErrCodeInvalidState, "user booked again while being deleted, user kept", nil)
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Reservation{}).Error; err != nil {
			return dbError("delete user reservations", err)
		}
		res := tx.Delete(&models.User{}, id)
		if res.Error != nil {
			return dbError("delete user", res.Error)
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrUserNotFound
		}
		return nil
	})
}
