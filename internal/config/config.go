package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application settings
type Config struct {
	// Server
	Port string
	Host string

	// Database
	DBPath string

	// Security
	JWTSecret     string
	JWTExpiration time.Duration
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	config := &Config{
		Port:      getEnv("PORT", "5000"),
		Host:      getEnv("HOST", "0.0.0.0"),
		DBPath:    getEnv("DB_PATH", "/tmp/symposium.db"),
		JWTSecret: getEnv("JWT_SECRET", "sjc_symposium_secret_2025"),
	}

	if hours, err := strconv.Atoi(getEnv("JWT_EXPIRATION_HOURS", "24")); err == nil {
		config.JWTExpiration = time.Duration(hours) * time.Hour
	} else {
		config.JWTExpiration = 24 * time.Hour
	}

	return config, nil
}

// getEnv returns an environment variable or the default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
