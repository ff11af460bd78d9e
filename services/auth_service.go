package services

import (
	"context"
	"errors"
	"strings"

	"casamia/constants"
	apperrors "casamia/errors"
	"casamia/models"
	"casamia/services/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService checks credentials and issues tokens
type AuthService struct {
	db     *gorm.DB
	tokens *TokenManager
	logger logger.Logger
}

func NewAuthService(db *gorm.DB, tokens *TokenManager, log logger.Logger) *AuthService {
	if log == nil {
		log = logger.NopLogger{}
	}
	return &AuthService{db: db, tokens: tokens, logger: log}
}

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func CheckPassword(hashed, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}

// Login accepts an email or username and returns a signed access token
func (s *AuthService) Login(ctx context.Context, identifier, password string) (string, *models.User, error) {
	identifier = strings.ToLower(strings.TrimSpace(identifier))
	var user models.User
	err := s.db.WithContext(ctx).
		Where("LOWER(email) = ? OR LOWER(username) = ?", identifier, identifier).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, apperrors.NewAppError(apperrors.ErrCodeInvalidCredentials, "invalid credentials", nil)
		}
		return "", nil, dbError("find user", err)
	}
	if !user.Status {
		return "", nil, apperrors.NewAppError(apperrors.ErrCodeForbidden, "user is disabled", nil)
	}
	if !CheckPassword(user.Password, password) {
		return "", nil, apperrors.NewAppError(apperrors.ErrCodeInvalidCredentials, "invalid credentials", nil)
	}
	token, err := s.tokens.GenerateToken(UserInfo{UserId: user.ID, Role: user.Role})
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}

// DefaultUser is a seed account created at startup when its role has no user
type DefaultUser struct {
	Name, Surname, Username, Email, Password, Phone, Role string
}

var DefaultUsers = []DefaultUser{
	{Name: "Emilio", Surname: "Lux", Username: "KernelAdmin", Email: "admin@example.com", Password: "Admin123#", Phone: "12345678", Role: constants.RoleAdmin},
	{Name: "Laura", Surname: "Hernández", Username: "HotelQueen", Email: "hoteladmin@example.com", Password: "Hotel456#", Phone: "87654321", Role: constants.RoleHotelAdmin},
	{Name: "Carlos", Surname: "Ramírez", Username: "carlitos123", Email: "user@example.com", Password: "User789#", Phone: "11223344", Role: constants.RoleUser},
}

// SeedDefaultUsers creates one account per role when the role has none
func (s *AuthService) SeedDefaultUsers(ctx context.Context, users []DefaultUser) error {
	for _, u := range users {
		var count int64
		if err := s.db.WithContext(ctx).Model(&models.User{}).Where("role = ?", u.Role).Count(&count).Error; err != nil {
			return dbError("count users", err)
		}
		if count > 0 {
			s.logger.Debug("%s user already exists", u.Role)
			continue
		}
		hashed, err := HashPassword(u.Password)
		if err != nil {
			return err
		}
		user := models.User{
			Name:     u.Name,
			Surname:  u.Surname,
			Username: u.Username,
			Email:    u.Email,
			Password: hashed,
			Phone:    u.Phone,
			Role:     u.Role,
			Status:   true,
		}
		if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
			return dbError("create default user", err)
		}
		s.logger.Info("default %s user created", u.Role)
	}
	return nil
}
