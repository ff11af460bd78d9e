package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestUserControllerRejectsInvalidRequests(t *testing.T) {
	uc := &UserController{}
	r := gin.New()
	r.PUT("/editProfile", asUser(7, "USER_ROLE"), uc.EditProfile)
	r.PUT("/editUsers", asUser(1, "ADMIN_ROLE"), uc.EditUserAdmin)
	r.PUT("/updatePassword", asUser(7, "USER_ROLE"), uc.UpdatePassword)
	r.DELETE("/delete/admin", asUser(1, "ADMIN_ROLE"), uc.DeleteUserAdmin)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
		code   string
	}{
		{"bad email", http.MethodPut, "/editProfile", `{"email":"nope"}`, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"short phone", http.MethodPut, "/editProfile", `{"phone":"123"}`, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"admin role not assignable", http.MethodPut, "/editUsers", `{"uid":3,"role":"ADMIN_ROLE"}`, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"missing new password", http.MethodPut, "/updatePassword", `{"currentPassword":"x"}`, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"short new password", http.MethodPut, "/updatePassword", `{"currentPassword":"x","newPassword":"short"}`, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"delete without target", http.MethodDelete, "/delete/admin", `{}`, http.StatusBadRequest, "REQUIRED_FIELD"},
		{"malformed json", http.MethodDelete, "/delete/admin", `{"uid":`, http.StatusBadRequest, "INVALID_FORMAT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(r, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.code, decode(t, w).ErrorCode)
		})
	}
}
