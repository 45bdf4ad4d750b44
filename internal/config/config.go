package config

import (
	"os"
	"strconv"
	"time"

	"toranovel-reader/internal/domain"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort        string
	LogLevel          string
	SupabaseURL       string
	SupabaseKey       string
	ContentBucket     string
	DefaultPageSize   int
	VoicePollInterval time.Duration
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	return &AppConfig{
		// Cloud Run (and many PaaS) provide the listening port via PORT.
		// Keep SERVER_PORT for local/dev compatibility.
		ServerPort:        getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8080")),
		LogLevel:          getEnvOrDefault("LOG_LEVEL", "info"),
		SupabaseURL:       getEnvOrDefault("SUPABASE_URL", ""),
		SupabaseKey:       getEnvOrDefault("SUPABASE_ANON_KEY", ""),
		ContentBucket:     getEnvOrDefault("CONTENT_BUCKET", "chapter-content"),
		DefaultPageSize:   getEnvIntOrDefault("DEFAULT_PAGE_SIZE", 250),
		VoicePollInterval: getEnvDurationOrDefault("VOICE_POLL_INTERVAL", 2*time.Second),
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetSupabaseURL returns the Supabase URL
func (c *AppConfig) GetSupabaseURL() string {
	return c.SupabaseURL
}

// GetSupabaseKey returns the Supabase anon key
func (c *AppConfig) GetSupabaseKey() string {
	return c.SupabaseKey
}

// GetContentBucket returns the storage bucket holding chapter bodies
func (c *AppConfig) GetContentBucket() string {
	return c.ContentBucket
}

// GetDefaultPageSize returns the book-mode page size in words
func (c *AppConfig) GetDefaultPageSize() int {
	return c.DefaultPageSize
}

// GetVoicePollInterval returns the initial voice-job poll interval
func (c *AppConfig) GetVoicePollInterval() time.Duration {
	return c.VoicePollInterval
}

// Helper functions for environment variable handling
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
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
