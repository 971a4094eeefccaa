package storage

import (
	"errors"

	"caltrack/models"

	"gorm.io/gorm"
)

// MealStore persists meals. Every method is a single-record operation;
// concurrent updates are last-write-wins.
type MealStore struct {
	db *gorm.DB
}

func NewMealStore(db *gorm.DB) *MealStore {
	return &MealStore{db: db}
}

// Insert saves a new meal, assigning its ID and creation timestamp.
func (s *MealStore) Insert(meal *models.Meal) (*models.Meal, error) {
	if meal.FoodName == "" || meal.Calorie == 0 {
		return nil, ErrInvalidMeal
	}
	if err := s.db.Create(meal).Error; err != nil {
		return nil, err
	}
	return meal, nil
}

func (s *MealStore) FindByID(id uint) (*models.Meal, error) {
	var meal models.Meal
	if err := s.db.First(&meal, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &meal, nil
}

func (s *MealStore) FindAll() ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.
		Order("created_at DESC").
		Find(&meals).Error
	return meals, err
}

func (s *MealStore) FindByOwner(ownerID uint) ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&meals).Error
	return meals, err
}

// Patch applies only the given fields to the meal and returns the
// post-update record. Fields not present in the map are untouched.
func (s *MealStore) Patch(id uint, fields map[string]interface{}) (*models.Meal, error) {
	res := s.db.Model(&models.Meal{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.FindByID(id)
}

func (s *MealStore) Delete(id uint) error {
	res := s.db.Delete(&models.Meal{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
