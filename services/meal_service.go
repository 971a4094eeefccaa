package services

import (
	"time"

	"caltrack/models"
	"caltrack/storage"
	"caltrack/utils"
)

type MealService struct {
	meals *storage.MealStore
	users *storage.UserStore
}

func NewMealService(meals *storage.MealStore, users *storage.UserStore) *MealService {
	return &MealService{meals: meals, users: users}
}

type MealInput struct {
	FoodName    string  `json:"food_name" binding:"required"`
	Calorie     float64 `json:"calorie" binding:"required"`
	Description string  `json:"description"`
}

// canBypassOwnership reports whether the user may read and mutate meals
// they do not own.
func canBypassOwnership(user *models.User) bool {
	return user.IsSuperUser
}

func canAccess(user *models.User, meal *models.Meal) bool {
	return canBypassOwnership(user) || meal.UserID == user.ID
}

// Create logs a new meal for the caller, snapshotting the caller's
// max_calorie and super-user flag onto the record.
func (s *MealService) Create(userID uint, in MealInput) (*models.Meal, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}

	meal := &models.Meal{
		UserID:      userID,
		FoodName:    in.FoodName,
		Calorie:     in.Calorie,
		Description: in.Description,
		MaxCalorie:  user.MaxCalorie,
		IsSuperUser: user.IsSuperUser,
		Day:         utils.FormatDay(time.Now()),
	}
	return s.meals.Insert(meal)
}

// List returns the caller's meals newest-first, or every meal when the
// caller is a super user.
func (s *MealService) List(userID uint) ([]models.Meal, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}

	if canBypassOwnership(user) {
		return s.meals.FindAll()
	}
	return s.meals.FindByOwner(userID)
}

// Get returns the meal. A non-owner without super-user rights gets
// ErrNotFound, never a forbidden error, so they cannot probe which ids
// exist.
func (s *MealService) Get(userID, mealID uint) (*models.Meal, error) {
	meal, err := s.meals.FindByID(mealID)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}

	if !canAccess(user, meal) {
		return nil, storage.ErrNotFound
	}
	return meal, nil
}

// Update patches the meal with whichever of food_name, calorie and
// description are set in the input. A non-privileged owner also gets
// their current max_calorie re-snapshotted onto the meal; a super user
// never touches it.
func (s *MealService) Update(userID, mealID uint, in MealInput) (*models.Meal, error) {
	meal, err := s.meals.FindByID(mealID)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if in.FoodName != "" {
		fields["food_name"] = in.FoodName
	}
	if in.Description != "" {
		fields["description"] = in.Description
	}
	if in.Calorie != 0 {
		fields["calorie"] = in.Calorie
	}

	if !canBypassOwnership(user) {
		if meal.UserID != userID {
			return nil, storage.ErrNotFound
		}
		fields["max_calorie"] = user.MaxCalorie
	}

	return s.meals.Patch(mealID, fields)
}

// Delete removes the meal, subject to the same ownership rule as Get.
func (s *MealService) Delete(userID, mealID uint) error {
	meal, err := s.meals.FindByID(mealID)
	if err != nil {
		return err
	}

	user, err := s.users.GetByID(userID)
	if err != nil {
		return err
	}

	if !canAccess(user, meal) {
		return storage.ErrNotFound
	}
	return s.meals.Delete(mealID)
}
