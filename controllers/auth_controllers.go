package controllers

import (
	"casamia/dto"
	"casamia/response"
	"casamia/services"
	"casamia/validator"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// Login godoc
// @Summary Log in with email or username
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginInput true "credentials"
// @Success 200 {object} response.Response
// @Router /auth/login [post]
func (a *AuthController) Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.FromError(c, validator.BindingError(err))
		return
	}

	token, user, err := a.auth.Login(c.Request.Context(), input.Identifier, input.Password)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, dto.UserLoginResponse{
		UserID:    user.ID,
		Username:  user.Username,
		UserEmail: user.Email,
		UserRole:  user.Role,
		Token:     token,
	})
}
