package storage

import (
	"errors"

	"caltrack/models"

	"gorm.io/gorm"
)

// UserStore is the user directory. Reads never select the password
// column; the auth service uses GetByEmail, which does.
type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) Create(user *models.User) error {
	return s.db.Create(user).Error
}

func (s *UserStore) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := s.db.
		Select("id", "created_at", "updated_at", "email", "full_name", "max_calorie", "is_super_user").
		First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserStore) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}
