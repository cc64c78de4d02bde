package config

import (
	"os"
	"time"
)

type Config struct {
	HTTPAddr       string
	DatabaseURL    string
	JWTSecret      string
	JWTIssuer      string
	AccessTokenTTL time.Duration
	LogLevel       string

	// Client side.
	APIBaseURL  string
	HTTPTimeout time.Duration
}

func Load() Config {
	return Config{
		HTTPAddr:       getenv("HTTP_ADDR", ":8080"),
		DatabaseURL:    getenv("DATABASE_URL", ""),
		JWTSecret:      getenv("JWT_SECRET", "dev-secret"),
		JWTIssuer:      getenv("JWT_ISSUER", "yoga-app"),
		AccessTokenTTL: getenvDuration("ACCESS_TOKEN_TTL", 24*time.Hour),
		LogLevel:       getenv("LOG_LEVEL", "info"),
		APIBaseURL:     getenv("API_BASE_URL", "http://127.0.0.1:8080/api"),
		HTTPTimeout:    getenvDuration("HTTP_TIMEOUT", 10*time.Second),
	}
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
	}
	return fallback
}
