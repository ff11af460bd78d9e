package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"casamia/middleware"
	"casamia/response"

	"github.com/gin-gonic/gin"
	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func asUser(id uint, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserID, id)
		c.Set(middleware.ContextUserRole, role)
		c.Next()
	}
}

func decode(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	var body response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func serve(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestReserveRejectsInvalidRequests(t *testing.T) {
	rc := &ReservationController{Now: func() time.Time {
		return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	}}
	r := gin.New()
	r.POST("/reserve", asUser(7, "USER_ROLE"), rc.Reserve)

	tests := []struct {
		name   string
		body   string
		status int
		code   string
	}{
		{"malformed json", `{"roomId":`, http.StatusBadRequest, "INVALID_FORMAT"},
		{"missing card", `{"roomId":1,"dateEntry":"2024-01-10","departureDate":"2024-01-15","CVV":"123","expired":"12/27"}`,
			http.StatusBadRequest, "VALIDATION_ERROR"},
		{"expired card", `{"roomId":1,"dateEntry":"2024-01-10","departureDate":"2024-01-15","cardNumber":"4111111111111111","CVV":"123","expired":"2023-06-30"}`,
			http.StatusBadRequest, "VALIDATION_ERROR"},
		{"departure before entry", `{"roomId":1,"dateEntry":"2024-01-15","departureDate":"2024-01-10","cardNumber":"4111111111111111","CVV":"123","expired":"12/27"}`,
			http.StatusBadRequest, "VALIDATION_ERROR"},
		{"bad date", `{"roomId":1,"dateEntry":"15-01-2024","departureDate":"2024-01-20","cardNumber":"4111111111111111","CVV":"123","expired":"12/27"}`,
			http.StatusBadRequest, "INVALID_FORMAT"},
		{"non positive extra service", `{"roomId":1,"dateEntry":"2024-01-10","departureDate":"2024-01-15","cardNumber":"4111111111111111","CVV":"123","expired":"12/27","extraServices":[0]}`,
			http.StatusBadRequest, "VALIDATION_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(r, http.MethodPost, "/reserve", tt.body)
			assert.Equal(t, tt.status, w.Code)
			body := decode(t, w)
			assert.Equal(t, 0, body.Code)
			assert.Equal(t, tt.code, body.ErrorCode)
		})
	}
}

func TestCancelRejectsBadID(t *testing.T) {
	rc := NewReservationController(nil, nil)
	r := gin.New()
	r.PUT("/cancel/:reservationId", asUser(7, "USER_ROLE"), rc.Cancel)

	for _, id := range []string{"abc", "0", "-3"} {
		w := serve(r, http.MethodPut, "/cancel/"+id, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, id)
		assert.Equal(t, "INVALID_FORMAT", decode(t, w).ErrorCode, id)
	}
}

func TestRoomAvailabilityRejectsBadDates(t *testing.T) {
	rc := NewRoomController(RoomControllerOptions{})
	r := gin.New()
	r.GET("/room/:roomId/availability", rc.RoomAvailability)

	w := serve(r, http.MethodGet, "/room/3/availability?entry=2024-01-10&departure=tomorrow", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_FORMAT", decode(t, w).ErrorCode)

	w = serve(r, http.MethodGet, "/room/x/availability?entry=2024-01-10&departure=2024-01-12", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadAvatarWithoutUploader(t *testing.T) {
	rc := NewRoomController(RoomControllerOptions{})
	r := gin.New()
	r.POST("/room/:roomId/avatar", asUser(1, "ADMIN_ROLE"), rc.UploadAvatar)

	w := serve(r, http.MethodPost, "/room/3/avatar", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", decode(t, w).ErrorCode)
}
