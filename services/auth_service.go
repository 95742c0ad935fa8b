package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hms-backend/apperrors"
	"hms-backend/models"
	"hms-backend/utils"
)

type AuthService struct {
	DB *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

// ErrInvalidCredentials is deliberately the same for unknown users and wrong
// passwords so login attempts cannot probe for usernames.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Login verifies the password and issues a signed access token.
func (s *AuthService) Login(username, password string) (string, models.User, error) {
	var user models.User
	if username == "" || password == "" {
		return "", user, apperrors.Validation("Username and password required")
	}

	if err := s.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", user, ErrInvalidCredentials
		}
		return "", user, apperrors.Store("failed to load user", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", user, ErrInvalidCredentials
	}

	token, err := utils.NewAccessToken(user.ID, user.Username, user.Role)
	if err != nil {
		return "", user, apperrors.Store("failed to sign token", err)
	}
	return token, user, nil
}

// Register creates a new login. Role defaults to admin, matching the
// single-tenant dashboard.
func (s *AuthService) Register(username, password, role string) (models.User, error) {
	var user models.User
	if username == "" || password == "" {
		return user, apperrors.Validation("Username and password required")
	}
	if role == "" {
		role = "admin"
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return user, apperrors.Store("failed to hash password", err)
	}

	user = models.User{Username: username, Password: string(hash), Role: role}
	if err := s.DB.Create(&user).Error; err != nil {
		if isDuplicateErr(err) {
			return user, apperrors.Conflict("Username already exists")
		}
		return user, apperrors.Store("failed to create user", err)
	}
	return user, nil
}

// ChangePassword swaps the stored hash after verifying the current password.
func (s *AuthService) ChangePassword(username, currentPassword, newPassword string) error {
	if username == "" || currentPassword == "" || newPassword == "" {
		return apperrors.Validation("username, currentPassword and newPassword are required")
	}

	var user models.User
	if err := s.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("User not found")
		}
		return apperrors.Store("failed to load user", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(currentPassword)) != nil {
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return apperrors.Store("failed to hash password", err)
	}

	if err := s.DB.Model(&user).Update("password", string(hash)).Error; err != nil {
		return apperrors.Store("failed to update password", err)
	}
	return nil
}
