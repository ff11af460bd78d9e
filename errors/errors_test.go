package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorIsMatchesCode(t *testing.T) {
	err := NewAppError(ErrCodeRoomUnavailable, "taken", nil)
	wrapped := fmt.Errorf("booking: %w", err)

	assert.True(t, errors.Is(wrapped, ErrRoomUnavailable))
	assert.False(t, errors.Is(wrapped, ErrRoomNotFound))
	assert.Equal(t, ErrCodeRoomUnavailable, Code(wrapped))
	assert.Equal(t, ErrCodeDBError, Code(errors.New("boom")))
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewAppError(ErrCodeDBError, "find room", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "[DB_ERROR] find room: connection refused", err.Error())
	assert.Equal(t, "[ROOM_NOT_FOUND] room not found", ErrRoomNotFound.Error())
	assert.True(t, IsAppError(err))
	assert.Nil(t, GetAppError(cause))
}

func TestHTTPStatus(t *testing.T) {
	tests := map[ErrorCode]int{
		ErrCodeRoomNotFound:         http.StatusNotFound,
		ErrCodeExtraServiceNotFound: http.StatusNotFound,
		ErrCodeRoomUnavailable:      http.StatusConflict,
		ErrCodeDuplicateRoom:        http.StatusConflict,
		ErrCodeInvalidState:         http.StatusBadRequest,
		ErrCodeInvalidExtraService:  http.StatusBadRequest,
		ErrCodeValidation:           http.StatusBadRequest,
		ErrCodeUnauthorized:         http.StatusForbidden,
		ErrCodeInvalidToken:         http.StatusUnauthorized,
		ErrCodeLockTimeout:          http.StatusServiceUnavailable,
		ErrCodeDBError:              http.StatusInternalServerError,
	}
	for code, want := range tests {
		assert.Equal(t, want, HTTPStatus(code), code)
	}
}
