package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode identifies a rejection kind
type ErrorCode string

const (
	// Availability errors
	ErrCodeRoomNotFound        ErrorCode = "ROOM_NOT_FOUND"
	ErrCodeRoomUnavailable     ErrorCode = "ROOM_UNAVAILABLE"
	ErrCodeReservationNotFound ErrorCode = "RESERVATION_NOT_FOUND"
	ErrCodeInvalidState        ErrorCode = "INVALID_STATE"
	ErrCodeUnauthorized        ErrorCode = "UNAUTHORIZED"

	// Auth errors
	ErrCodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken       ErrorCode = "MISSING_TOKEN"
	ErrCodeForbidden          ErrorCode = "FORBIDDEN"
	ErrCodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	ErrCodeUserNotFound       ErrorCode = "USER_NOT_FOUND"
	ErrCodeDuplicateUser      ErrorCode = "DUPLICATE_USER"

	// Catalog errors
	ErrCodeHotelNotFound        ErrorCode = "HOTEL_NOT_FOUND"
	ErrCodeDuplicateRoom        ErrorCode = "DUPLICATE_ROOM"
	ErrCodeInvalidExtraService  ErrorCode = "INVALID_EXTRA_SERVICE"
	ErrCodeExtraServiceNotFound ErrorCode = "EXTRA_SERVICE_NOT_FOUND"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"

	// Infrastructure errors
	ErrCodeDBError     ErrorCode = "DB_ERROR"
	ErrCodeLockTimeout ErrorCode = "LOCK_TIMEOUT"
)

// AppError is the application error carried from services to handlers
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches any AppError carrying the same code, so sentinels below work with errors.Is.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// NewAppError creates a new AppError
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError reports whether err wraps an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts the AppError from err
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// Code returns the error code of err, or DB_ERROR for foreign errors.
func Code(err error) ErrorCode {
	if appErr := GetAppError(err); appErr != nil {
		return appErr.Code
	}
	return ErrCodeDBError
}

// HTTPStatus maps an error code to its response status
func HTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeRoomNotFound, ErrCodeReservationNotFound, ErrCodeHotelNotFound,
		ErrCodeUserNotFound, ErrCodeExtraServiceNotFound:
		return http.StatusNotFound
	case ErrCodeRoomUnavailable, ErrCodeDuplicateRoom, ErrCodeDuplicateUser:
		return http.StatusConflict
	case ErrCodeInvalidState, ErrCodeValidation, ErrCodeRequiredField,
		ErrCodeInvalidFormat, ErrCodeInvalidExtraService, ErrCodeInvalidCredentials:
		return http.StatusBadRequest
	case ErrCodeUnauthorized, ErrCodeForbidden:
		return http.StatusForbidden
	case ErrCodeInvalidToken, ErrCodeMissingToken:
		return http.StatusUnauthorized
	case ErrCodeLockTimeout:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

var (
	ErrRoomNotFound        = NewAppError(ErrCodeRoomNotFound, "room not found", nil)
	ErrRoomUnavailable     = NewAppError(ErrCodeRoomUnavailable, "the room is already reserved for the selected dates", nil)
	ErrReservationNotFound = NewAppError(ErrCodeReservationNotFound, "reservation not found", nil)
	ErrInvalidState        = NewAppError(ErrCodeInvalidState, "only active reservations can be canceled", nil)
	ErrUnauthorized        = NewAppError(ErrCodeUnauthorized, "you are not authorized to act on this reservation", nil)
	ErrHotelNotFound       = NewAppError(ErrCodeHotelNotFound, "hotel not found", nil)
	ErrUserNotFound        = NewAppError(ErrCodeUserNotFound, "user not found", nil)
	ErrLockTimeout         = NewAppError(ErrCodeLockTimeout, "room is busy, try again", nil)
)
