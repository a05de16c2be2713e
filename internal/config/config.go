package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the application configuration.
type Config struct {
	ServerPort        int
	DatabasePath      string
	SecretKey         string        // JWT signing secret, must be high entropy
	Algorithm         string        // JWT signing algorithm, only HS256 is supported
	TokenTTL          time.Duration // Access token lifetime
	GoogleBooksAPIKey string
}

// Load loads configuration from environment variables or sets defaults.
func Load() (*Config, error) {
	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}

	secret := os.Getenv("SECRET_KEY")
	if secret == "" {
		return nil, errors.New("SECRET_KEY must be set")
	}

	algorithm := getEnv("ALGORITHM", "HS256")
	if algorithm != "HS256" {
		// A permissive value here would silently weaken token signing.
		return nil, fmt.Errorf("unsupported ALGORITHM %q, only HS256 is supported", algorithm)
	}

	expireStr := getEnv("TOKEN_EXPIRE_MINUTES", "30")
	expireMinutes, err := strconv.Atoi(expireStr)
	if err != nil || expireMinutes <= 0 {
		return nil, fmt.Errorf("invalid TOKEN_EXPIRE_MINUTES %q", expireStr)
	}

	return &Config{
		ServerPort:        port,
		DatabasePath:      getEnv("DATABASE_PATH", "./bookwish.db"),
		SecretKey:         secret,
		Algorithm:         algorithm,
		TokenTTL:          time.Duration(expireMinutes) * time.Minute,
		GoogleBooksAPIKey: os.Getenv("GOOGLE_BOOKS_API_KEY"),
	}, nil
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
