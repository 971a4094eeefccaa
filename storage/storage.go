package storage

import "errors"

var (
	// ErrNotFound is returned when no record matches the query.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidMeal is returned when a meal is missing required fields.
	ErrInvalidMeal = errors.New("meal requires food_name and calorie")
)
