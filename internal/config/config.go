package config

import (
	"os"
	"strconv"
	"time"

	"mentormatch/internal/apperr"
)

// Config represents the complete application configuration
type Config struct {
	Backend BackendConfig
	Server  ServerConfig
	Demo    DemoConfig
}

// BackendConfig holds settings for reaching the remote mentorship service.
// The base address is externally supplied configuration, not a core concern.
type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

// ServerConfig holds web UI server settings
type ServerConfig struct {
	Port string
}

// DemoConfig holds settings for the bundled stand-in backend
type DemoConfig struct {
	Port         string
	DatabaseURL  string
	SeedProfiles int
	GinMode      string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Backend: BackendConfig{
			BaseURL: getEnvOrDefault("BACKEND_BASE_URL", "http://localhost:8000/api"),
			Timeout: getEnvDurationOrDefault("BACKEND_TIMEOUT", 30*time.Second),
		},
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "3000"),
		},
		Demo: DemoConfig{
			Port:         getEnvOrDefault("DEMO_PORT", "8000"),
			DatabaseURL:  getEnvOrDefault("DATABASE_URL", ""),
			SeedProfiles: getEnvIntOrDefault("DEMO_SEED_PROFILES", 8),
			GinMode:      getEnvOrDefault("GIN_MODE", "release"),
		},
	}

	if config.Backend.BaseURL == "" {
		return nil, apperr.ConfigInvalid("BACKEND_BASE_URL cannot be empty")
	}
	if config.Backend.Timeout <= 0 {
		return nil, apperr.ConfigInvalid("BACKEND_TIMEOUT must be positive")
	}

	return config, nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
