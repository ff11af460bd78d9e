package dto

type LoginInput struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

type UserLoginResponse struct {
	UserID    uint   `json:"id"`
	Username  string `json:"username"`
	UserEmail string `json:"email"`
	UserRole  string `json:"role"`
	Token     string `json:"token"`
}
