package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the prediction service settings, read from the environment
// with .env support.
type Config struct {
	Port        string
	ModelPath   string
	DatabaseURL string // optional: enables the prediction history log
	LogLevel    string
	LogFormat   string
}

func Load() Config {
	// missing .env is fine, the environment wins anyway
	_ = godotenv.Load()

	return Config{
		Port:        getEnv("PORT", "8090"),
		ModelPath:   getEnv("MODEL_PATH", "model/avocado_price_model.gob"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "console"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
