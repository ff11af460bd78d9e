package middleware

import (
	"strings"

	"casamia/response"
	"casamia/services"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
)

// TokenParser verifies a bearer token
type TokenParser interface {
	ParseToken(tokenString string) (services.UserInfo, error)
}

// AuthMiddleware verifies the token and, when roles are given, requires one of them
func AuthMiddleware(tokens TokenParser, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		info, err := tokens.ParseToken(tokenString)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		if len(roles) > 0 && !hasRole(info.Role, roles) {
			response.Forbidden(c)
			c.Abort()
			return
		}

		c.Set(ContextUserID, info.UserId)
		c.Set(ContextUserRole, info.Role)
		c.Next()
	}
}

// RoleMiddleware requires one of roles; it must run after AuthMiddleware
func RoleMiddleware(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := c.Get(ContextUserRole)
		if !exists {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		role, _ := userRole.(string)
		if !hasRole(role, roles) {
			response.Forbidden(c)
			c.Abort()
			return
		}

		c.Next()
	}
}

func hasRole(role string, roles []string) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

// CurrentUser returns the authenticated user id and role
func CurrentUser(c *gin.Context) (uint, string) {
	id, _ := c.Get(ContextUserID)
	role, _ := c.Get(ContextUserRole)
	uid, _ := id.(uint)
	r, _ := role.(string)
	return uid, r
}

// ErrorHandler renders the last error attached with c.Error
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 && !c.Writer.Written() {
			response.FromError(c, c.Errors.Last().Err)
		}
	}
}
