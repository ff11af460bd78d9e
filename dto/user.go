package dto

import "time"

// ProfileUpdateRequest edits the caller's own account. Role, password and
// status cannot be changed here.
type ProfileUpdateRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1"`
	Surname  *string `json:"surname" binding:"omitempty,min=1"`
	Username *string `json:"username" binding:"omitempty,min=3"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Phone    *string `json:"phone" binding:"omitempty,numeric,len=8"`
}

// UserAdminUpdateRequest edits another account, found by uid or username
type UserAdminUpdateRequest struct {
	UID         uint    `json:"uid"`
	Username    string  `json:"username"`
	NewUsername *string `json:"newUsername" binding:"omitempty,min=3"`
	Name        *string `json:"name" binding:"omitempty,min=1"`
	Surname     *string `json:"surname" binding:"omitempty,min=1"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Phone       *string `json:"phone" binding:"omitempty,numeric,len=8"`
	Password    *string `json:"password" binding:"omitempty,min=8"`
	Role        *string `json:"role" binding:"omitempty,oneof=USER_ROLE HOTEL_ADMIN_ROLE"`
	Status      *bool   `json:"status"`
}

type PasswordUpdateRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}

// UserLookupRequest names a user by uid or username
type UserLookupRequest struct {
	UID      uint   `json:"uid"`
	Username string `json:"username"`
}

type UserResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Surname   string    `json:"surname"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	Status    bool      `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type UserDeletionResponse struct {
	UserID                uint   `json:"userId"`
	CancelledReservations []uint `json:"cancelledReservations"`
}
