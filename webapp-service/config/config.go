package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the web UI settings.
type Config struct {
	Port        string
	APIURL      string // base URL of the prediction service
	HTTPTimeout time.Duration
	LogLevel    string
	LogFormat   string
}

func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:        getEnv("PORT", "8091"),
		APIURL:      getEnv("API_URL", "http://localhost:8090"),
		HTTPTimeout: 10 * time.Second,
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
