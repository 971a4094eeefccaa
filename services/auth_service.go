package services

import (
	"errors"

	"caltrack/models"
	"caltrack/storage"
	"caltrack/utils"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type AuthService struct {
	users  *storage.UserStore
	secret string
}

func NewAuthService(users *storage.UserStore, secret string) *AuthService {
	return &AuthService{users: users, secret: secret}
}

func (s *AuthService) Register(email, password, fullName string, maxCalorie *float64) error {
	if _, err := s.users.GetByEmail(email); err == nil {
		return ErrEmailTaken
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		Email:      email,
		Password:   hashed,
		FullName:   fullName,
		MaxCalorie: maxCalorie,
	}
	return s.users.Create(&user)
}

// Authenticate checks the credentials and returns a signed bearer token.
func (s *AuthService) Authenticate(email, password string) (string, error) {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", ErrInvalidCredentials
	}

	return utils.GenerateJWT(user.ID, user.Email, s.secret)
}
