package config

import (
	"caltrack/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OpenDB connects to postgres and migrates the schema. The returned
// handle is passed down to the stores; nothing holds it globally.
func OpenDB(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DB.DSN()), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Meal{},
	); err != nil {
		return nil, err
	}
	return db, nil
}
