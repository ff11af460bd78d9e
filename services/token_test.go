package services

import (
	"testing"
	"time"

	"casamia/constants"
	apperrors "casamia/errors"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	tokens := NewTokenManager("s3cret", time.Hour)
	signed, err := tokens.GenerateToken(UserInfo{UserId: 12, Role: constants.RoleHotelAdmin})
	require.NoError(t, err)

	info, err := tokens.ParseToken(signed)
	require.NoError(t, err)
	assert.Equal(t, uint(12), info.UserId)
	assert.Equal(t, constants.RoleHotelAdmin, info.Role)
}

func TestParseTokenRejects(t *testing.T) {
	tokens := NewTokenManager("s3cret", time.Hour)

	other, err := NewTokenManager("other", time.Hour).GenerateToken(UserInfo{UserId: 1, Role: constants.RoleUser})
	require.NoError(t, err)

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		UserInfo:       UserInfo{UserId: 1, Role: constants.RoleUser},
		StandardClaims: jwt.StandardClaims{ExpiresAt: time.Now().Add(-time.Minute).Unix()},
	}).SignedString([]byte("s3cret"))
	require.NoError(t, err)

	anonymous, err := tokens.GenerateToken(UserInfo{Role: constants.RoleUser})
	require.NoError(t, err)

	cases := map[string]string{
		"garbage":      "not-a-token",
		"wrong secret": other,
		"expired":      expired,
		"no user":      anonymous,
	}
	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := tokens.ParseToken(token)
			assert.Equal(t, apperrors.ErrCodeInvalidToken, apperrors.Code(err))
		})
	}
}
