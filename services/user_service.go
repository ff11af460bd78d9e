package services

import (
	"context"
	"strings"

	"casamia/constants"
	apperrors "casamia/errors"
	"casamia/models"
	"casamia/services/logger"
)

// ReservationCanceller cancels a reservation on behalf of its owner
type ReservationCanceller interface {
	CancelBooking(ctx context.Context, reservationID, userID uint) (*models.Reservation, error)
}

// ProfileUpdate carries the fields to change; nil fields are kept
type ProfileUpdate struct {
	Name     *string
	Surname  *string
	Username *string
	Email    *string
	Phone    *string
	// Admin only
	Password *string
	Role     *string
	Status   *bool
}

func (u ProfileUpdate) empty() bool {
	return u.Name == nil && u.Surname == nil && u.Username == nil && u.Email == nil &&
		u.Phone == nil && u.Password == nil && u.Role == nil && u.Status == nil
}

// UserLookup finds a user by id, or by username when the id is zero
type UserLookup struct {
	ID       uint
	Username string
}

// UserService manages accounts. Deleting an account cancels its active
// reservations through the booking engine first.
type UserService struct {
	store    UserStore
	bookings ReservationCanceller
	logger   logger.Logger
}

type UserServiceOptions struct {
	Store    UserStore
	Bookings ReservationCanceller
	Logger   logger.Logger
}

func NewUserService(opts UserServiceOptions) *UserService {
	if opts.Logger == nil {
		opts.Logger = logger.NopLogger{}
	}
	return &UserService{store: opts.Store, bookings: opts.Bookings, logger: opts.Logger}
}

func (s *UserService) lookup(ctx context.Context, l UserLookup) (*models.User, error) {
	switch {
	case l.ID != 0:
		return s.store.FindUser(ctx, l.ID)
	case strings.TrimSpace(l.Username) != "":
		return s.store.FindUserByUsername(ctx, strings.TrimSpace(l.Username))
	default:
		return nil, apperrors.NewAppError(apperrors.ErrCodeRequiredField, "you must provide an id or a username", nil)
	}
}

// UpdateProfile edits the caller's own account
func (s *UserService) UpdateProfile(ctx context.Context, userID uint, update ProfileUpdate) (*models.User, error) {
	update.Password, update.Role, update.Status = nil, nil, nil
	user, err := s.store.FindUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.apply(ctx, user, update)
}

// UpdateUser edits another account. ADMIN_ROLE accounts cannot be edited.
func (s *UserService) UpdateUser(ctx context.Context, target UserLookup, update ProfileUpdate) (*models.User, error) {
	user, err := s.lookup(ctx, target)
	if err != nil {
		return nil, err
	}
	if user.Role == constants.RoleAdmin {
		return nil, apperrors.NewAppError(apperrors.ErrCodeForbidden, "you cannot modify a user with ADMIN_ROLE", nil)
	}
	return s.apply(ctx, user, update)
}

func (s *UserService) apply(ctx context.Context, user *models.User, update ProfileUpdate) (*models.User, error) {
	if update.empty() {
		return nil, apperrors.NewAppError(apperrors.ErrCodeValidation, "no fields provided for update", nil)
	}

	var username, email string
	if update.Username != nil && !strings.EqualFold(*update.Username, user.Username) {
		username = strings.TrimSpace(*update.Username)
	}
	if update.Email != nil && !strings.EqualFold(*update.Email, user.Email) {
		email = strings.ToLower(strings.TrimSpace(*update.Email))
	}
	taken, err := s.store.UserTaken(ctx, username, email, user.ID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDuplicateUser, "username or email already in use", nil)
	}

	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Surname != nil {
		user.Surname = *update.Surname
	}
	if username != "" {
		user.Username = username
	}
	if email != "" {
		user.Email = email
	}
	if update.Phone != nil {
		user.Phone = *update.Phone
	}
	if update.Role != nil {
		user.Role = *update.Role
	}
	if update.Status != nil {
		user.Status = *update.Status
	}
	if update.Password != nil {
		hashed, err := HashPassword(*update.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	}
	if err := s.store.SaveUser(ctx, user); err != nil {
		return nil, err
	}
	s.logger.Info("user %d updated", user.ID)
	return user, nil
}

// UpdatePassword replaces the caller's password after checking the current one
func (s *UserService) UpdatePassword(ctx context.Context, userID uint, current, next string) error {
	user, err := s.store.FindUser(ctx, userID)
	if err != nil {
		return err
	}
	if !CheckPassword(user.Password, current) {
		return apperrors.NewAppError(apperrors.ErrCodeInvalidCredentials, "the current password is incorrect", nil)
	}
	if CheckPassword(user.Password, next) {
		return apperrors.NewAppError(apperrors.ErrCodeValidation, "the new password cannot be the same as the old one", nil)
	}
	hashed, err := HashPassword(next)
	if err != nil {
		return err
	}
	user.Password = hashed
	if err := s.store.SaveUser(ctx, user); err != nil {
		return err
	}
	s.logger.Info("user %d changed password", user.ID)
	return nil
}

// ListUsers pages through active accounts. A username filter that matches
// nothing is USER_NOT_FOUND.
func (s *UserService) ListUsers(ctx context.Context, filter UserFilter) ([]models.User, int64, error) {
	if filter.Limit <= 0 {
		filter.Limit = 5
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	users, total, err := s.store.ListUsers(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	if filter.Username != "" && len(users) == 0 {
		return nil, 0, apperrors.ErrUserNotFound
	}
	return users, total, nil
}

// DeleteMe deletes the caller's account
func (s *UserService) DeleteMe(ctx context.Context, userID uint) ([]uint, error) {
	user, err := s.store.FindUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.delete(ctx, user)
}

// DeleteUser deletes another account. ADMIN_ROLE accounts cannot be deleted.
func (s *UserService) DeleteUser(ctx context.Context, target UserLookup) (uint, []uint, error) {
	user, err := s.lookup(ctx, target)
	if err != nil {
		return 0, nil, err
	}
	if user.Role == constants.RoleAdmin {
		return 0, nil, apperrors.NewAppError(apperrors.ErrCodeForbidden, "cannot delete an administrator user", nil)
	}
	cancelled, err := s.delete(ctx, user)
	return user.ID, cancelled, err
}

// delete cancels every active reservation of the user, which frees their
// rooms, and then removes the account.
func (s *UserService) delete(ctx context.Context, user *models.User) ([]uint, error) {
	ids, err := s.store.ActiveReservationIDs(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	cancelled := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, err := s.bookings.CancelBooking(ctx, id, user.ID); err != nil {
			// Finished or cancelled meanwhile.
			if apperrors.Code(err) == apperrors.ErrCodeInvalidState {
				continue
			}
			return cancelled, err
		}
		cancelled = append(cancelled, id)
	}
	if err := s.store.DeleteUser(ctx, user.ID); err != nil {
		return cancelled, err
	}
	s.logger.Info("user %d deleted, cancelled reservations: %d", user.ID, len(cancelled))
	return cancelled, nil
}
