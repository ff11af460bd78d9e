package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestHotelControllerRejectsInvalidRequests(t *testing.T) {
	hc := NewHotelController(nil, nil, nil, nil)
	r := gin.New()
	r.PUT("/hotel/:id", asUser(1, "ADMIN_ROLE"), hc.UpdateHotel)
	r.DELETE("/hotel/:id", asUser(1, "ADMIN_ROLE"), hc.DeleteHotel)
	r.GET("/hotel/managed", asUser(1, "ADMIN_ROLE"), hc.ManagedHotels)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		code   string
	}{
		{"update with bad id", http.MethodPut, "/hotel/abc", `{"name":"x"}`, "INVALID_FORMAT"},
		{"update without fields", http.MethodPut, "/hotel/1", `{}`, "VALIDATION_ERROR"},
		{"qualification out of range", http.MethodPut, "/hotel/1", `{"qualification":9}`, "VALIDATION_ERROR"},
		{"delete with bad id", http.MethodDelete, "/hotel/0", ``, "INVALID_FORMAT"},
		{"managed with bad admin id", http.MethodGet, "/hotel/managed?adminId=x", ``, "INVALID_FORMAT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(r, tt.method, tt.path, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.code, decode(t, w).ErrorCode)
		})
	}
}
