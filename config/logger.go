package config

import (
	"os"

	"go.uber.org/zap"
)

var Log *zap.Logger

// InitLogger sets up the global application logger. Development config when
// APP_ENV=development, production JSON output otherwise.
func InitLogger() {
	var err error
	if os.Getenv("APP_ENV") == "development" {
		Log, err = zap.NewDevelopment()
	} else {
		Log, err = zap.NewProduction()
	}
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
}
