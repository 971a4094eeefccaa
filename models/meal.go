package models

import (
	"gorm.io/gorm"
)

// Meal is one calorie-log entry. UserID is the owner and never changes
// after creation. Day and IsSuperUser are snapshots taken at creation;
// MaxCalorie is re-snapshotted whenever a non-privileged owner updates
// the meal.
type Meal struct {
	gorm.Model
	UserID      uint     `gorm:"index;not null" json:"user_id"`
	FoodName    string   `gorm:"not null" json:"food_name"`
	Calorie     float64  `gorm:"not null" json:"calorie"`
	Description string   `gorm:"default:''" json:"description"`
	MaxCalorie  *float64 `json:"max_calorie,omitempty"`
	Day         string   `json:"day"`
	IsSuperUser bool     `json:"is_super_user"`
}
