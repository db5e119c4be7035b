package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"secretgrid/domain/document"
	"secretgrid/internal/errors"
)

// DefaultDocumentURL is the published document the decoder reads when no
// location is given.
const DefaultDocumentURL = "https://docs.google.com/document/d/e/2PACX-1vQGUck9HIFCyezsrBSnmENk5ieJuYwpt7YHYEzeNJkIb9OSDdx-ov2nRNReKQyey-cwJOoEKUhLmN9z/pub"

// Config represents the complete application configuration
type Config struct {
	Source SourceConfig
	HTTP   HTTPConfig
	Log    LogConfig
}

// SourceConfig describes where the document comes from
type SourceConfig struct {
	URL    string
	File   string // local path; takes precedence over URL when set
	Format string // see document.ParseFormat; empty means auto-detect
}

// HTTPConfig holds fetcher settings
type HTTPConfig struct {
	Timeout   time.Duration // 0 leaves net/http's default (no timeout)
	UserAgent string
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string
}

// Load reads configuration from environment variables. Only malformed values
// fail here; call Validate once command-line overrides are applied.
func Load() (*Config, error) {
	timeout, err := getEnvDurationOrDefault("SECRETGRID_TIMEOUT", 0)
	if err != nil {
		return nil, &errors.AppError{
			Code:    errors.CodeConfigInvalid,
			Message: "SECRETGRID_TIMEOUT must be a duration",
			Cause:   err,
		}
	}

	config := &Config{
		Source: SourceConfig{
			URL:    getEnvOrDefault("SECRETGRID_URL", DefaultDocumentURL),
			Format: strings.ToLower(getEnvOrDefault("SECRETGRID_FORMAT", "")),
		},
		HTTP: HTTPConfig{
			Timeout:   timeout,
			UserAgent: getEnvOrDefault("SECRETGRID_USER_AGENT", "secretgrid/1.0"),
		},
		Log: LogConfig{
			Level: getEnvOrDefault("LOG_LEVEL", "WARN"),
		},
	}

	return config, nil
}

// Location returns the file path when set, otherwise the URL
func (c *Config) Location() string {
	if c.Source.File != "" {
		return c.Source.File
	}
	return c.Source.URL
}

// Validate checks the settings that can be wrong after flags are applied
func (c *Config) Validate() error {
	if c.Source.URL == "" && c.Source.File == "" {
		return errors.ConfigInvalid("a document URL or file is required")
	}
	if c.HTTP.Timeout < 0 {
		return errors.ConfigInvalid("HTTP timeout cannot be negative")
	}
	if _, ok := document.ParseFormat(c.Source.Format); !ok {
		return errors.ConfigInvalid("unsupported document format: " + c.Source.Format)
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	// Bare integers are read as seconds.
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second, nil
	}
	return time.ParseDuration(value)
}
