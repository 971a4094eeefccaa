package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email       string   `gorm:"uniqueIndex;not null" json:"email"`
	Password    string   `gorm:"not null" json:"-"`
	FullName    string   `json:"full_name"`
	MaxCalorie  *float64 `json:"max_calorie,omitempty"`
	IsSuperUser bool     `json:"is_super_user"`
}
