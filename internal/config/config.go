// Package config loads store configuration from environment variables.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Database configuration. The default substrate is an embedded sqlite
	// file; mysql/postgres/sqlserver DSN fields apply to those dialects only.
	DBType     string
	DBHost     string
	DBPort     string
	DBDatabase string
	DBUser     string
	DBPassword string

	// ProcessingDelay reproduces the original front-end's simulated
	// payment/login latency. Zero runs every operation synchronously.
	ProcessingDelay time.Duration

	// LogLevel is a zerolog level name (debug, info, warn, error).
	LogLevel string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		DBType:          getEnv("DB_TYPE", "sqlite"),
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBPort:          getEnv("DB_PORT", "3306"),
		DBDatabase:      getEnv("DB_DATABASE", "popout.db"),
		DBUser:          getEnv("DB_USER", ""),
		DBPassword:      getEnv("DB_PASSWORD", ""),
		ProcessingDelay: time.Duration(getEnvAsInt("PROCESSING_DELAY_MS", 0)) * time.Millisecond,
		LogLevel:        getEnv("LOG_LEVEL", "info"),
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
