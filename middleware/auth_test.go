package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"casamia/constants"
	"casamia/errors"
	"casamia/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var tokens = services.NewTokenManager("test-secret", time.Hour)

func tokenFor(t *testing.T, id uint, role string) string {
	signed, err := tokens.GenerateToken(services.UserInfo{UserId: id, Role: role})
	require.NoError(t, err)
	return "Bearer " + signed
}

func newRouter(roles ...string) *gin.Engine {
	r := gin.New()
	r.GET("/me", AuthMiddleware(tokens, roles...), func(c *gin.Context) {
		id, role := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"id": id, "role": role})
	})
	return r
}

func get(r http.Handler, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, get(newRouter(), "").Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, get(newRouter(), "Bearer nope").Code)
	})

	t.Run("valid token sets the user", func(t *testing.T) {
		w := get(newRouter(), tokenFor(t, 5, constants.RoleUser))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":5,"role":"USER_ROLE"}`, w.Body.String())
	})

	t.Run("role required", func(t *testing.T) {
		r := newRouter(constants.RoleAdmin, constants.RoleHotelAdmin)
		assert.Equal(t, http.StatusForbidden, get(r, tokenFor(t, 5, constants.RoleUser)).Code)
		assert.Equal(t, http.StatusOK, get(r, tokenFor(t, 6, constants.RoleHotelAdmin)).Code)
	})
}

func TestRoleMiddlewareWithoutAuth(t *testing.T) {
	r := gin.New()
	r.GET("/me", RoleMiddleware(constants.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	assert.Equal(t, http.StatusUnauthorized, get(r, "").Code)
}

func TestRoleMiddlewareOnAuthenticatedGroup(t *testing.T) {
	r := gin.New()
	group := r.Group("", AuthMiddleware(tokens))
	adminOnly := group.Group("", RoleMiddleware(constants.RoleAdmin))
	adminOnly.GET("/me", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	assert.Equal(t, http.StatusUnauthorized, get(r, "").Code)
	assert.Equal(t, http.StatusForbidden, get(r, tokenFor(t, 5, constants.RoleHotelAdmin)).Code)
	assert.Equal(t, http.StatusOK, get(r, tokenFor(t, 1, constants.RoleAdmin)).Code)
}

func TestErrorHandlerRendersAttachedError(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/me", func(c *gin.Context) {
		_ = c.Error(errors.ErrRoomNotFound)
	})
	w := get(r, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"errorCode":"ROOM_NOT_FOUND"`)
}

func TestRequestIDMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/me", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(ContextRequestID))
	})

	w := get(r, "")
	generated := w.Header().Get("X-Request-ID")
	assert.NotEmpty(t, generated)
	assert.Equal(t, generated, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("X-Request-ID", "req-1")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-1", w.Header().Get("X-Request-ID"))
}
