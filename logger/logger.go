package logger

import (
	"os"

	"go.uber.org/zap"
)

// New builds the process logger. Set APP_ENV=development for console
// output.
func New() (*zap.Logger, error) {
	if os.Getenv("APP_ENV") == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
