package controllers

import (
	"strconv"

	"casamia/dto"
	"casamia/errors"
	"casamia/middleware"
	"casamia/models"
	"casamia/response"
	"casamia/services"
	"casamia/validator"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	Users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{Users: users}
}

func toUserResponse(u models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Surname:   u.Surname,
		Username:  u.Username,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// EditProfile godoc
// @Summary Edit the caller's profile
// @Tags user
// @Security BearerAuth
// @Param body body dto.ProfileUpdateRequest true "fields to change"
// @Success 200 {object} response.Response
// @Router /user/editProfile [put]
func (u *UserController) EditProfile(c *gin.Context) {
	var req dto.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, validator.BindingError(err))
		return
	}
	userID, _ := middleware.CurrentUser(c)
	user, err := u.Users.UpdateProfile(c.Request.Context(), userID, services.ProfileUpdate{
		Name:     req.Name,
		Surname:  req.Surname,
		Username: req.Username,
		Email:    req.Email,
		Phone:    req.Phone,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, toUserResponse(*user))
}

// EditUserAdmin godoc
// @Summary Edit another user, found by uid or username
// @Tags user
// @Security BearerAuth
// @Param body body dto.UserAdminUpdateRequest true "user and fields to change"
// @Success 200 {object} response.Response
// @Router /user/editUsers [put]
func (u *UserController) EditUserAdmin(c *gin.Context) {
	var req dto.UserAdminUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, validator.BindingError(err))
		return
	}
	user, err := u.Users.UpdateUser(c.Request.Context(), services.UserLookup{ID: req.UID, Username: req.Username}, services.ProfileUpdate{
		Name:     req.Name,
		Surname:  req.Surname,
		Username: req.NewUsername,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
		Role:     req.Role,
		Status:   req.Status,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, toUserResponse(*user))
}

// UpdatePassword godoc
// @Summary Change the caller's password
// @Tags user
// @Security BearerAuth
// @Param body body dto.PasswordUpdateRequest true "passwords"
// @Success 200 {object} response.Response
// @Router /user/updatePassword [put]
func (u *UserController) UpdatePassword(c *gin.Context) {
	var req dto.PasswordUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, validator.BindingError(err))
		return
	}
	userID, _ := middleware.CurrentUser(c)
	if err := u.Users.UpdatePassword(c.Request.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "Password successfully updated"})
}

// GetUsers godoc
// @Summary Page through active users
// @Tags user
// @Security BearerAuth
// @Param desde query int false "offset"
// @Param limite query int false "page size"
// @Param username query string false "exact username"
// @Success 200 {object} response.Response
// @Router /user/getUsers [get]
func (u *UserController) GetUsers(c *gin.Context) {
	offset, _ := strconv.Atoi(c.DefaultQuery("desde", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limite", "5"))
	if limit <= 0 {
		limit = 5
	}
	users, total, err := u.Users.ListUsers(c.Request.Context(), services.UserFilter{
		Username: c.Query("username"),
		Offset:   offset,
		Limit:    limit,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, toUserResponse(user))
	}
	response.SuccessWithPagination(c, out, offset/limit, limit, int(total))
}

// DeleteMe godoc
// @Summary Delete the caller's account
// @Description Active reservations are cancelled first, freeing their rooms.
// @Tags user
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /user/delete/me [delete]
func (u *UserController) DeleteMe(c *gin.Context) {
	userID, _ := middleware.CurrentUser(c)
	cancelled, err := u.Users.DeleteMe(c.Request.Context(), userID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, dto.UserDeletionResponse{UserID: userID, CancelledReservations: cancelled})
}

// DeleteUserAdmin godoc
// @Summary Delete a user, found by uid or username
// @Tags user
// @Security BearerAuth
// @Param body body dto.UserLookupRequest true "user"
// @Success 200 {object} response.Response
// @Router /user/delete/admin [delete]
func (u *UserController) DeleteUserAdmin(c *gin.Context) {
	var req dto.UserLookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, validator.BindingError(err))
		return
	}
	if req.UID == 0 && req.Username == "" {
		response.FromError(c, errors.NewAppError(errors.ErrCodeRequiredField, "you must provide an id or a username", nil))
		return
	}
	id, cancelled, err := u.Users.DeleteUser(c.Request.Context(), services.UserLookup{ID: req.UID, Username: req.Username})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, dto.UserDeletionResponse{UserID: id, CancelledReservations: cancelled})
}
