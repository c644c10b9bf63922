// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Extraction ExtractionConfig
	Alerts     AlertConfig
	Logging    LoggingConfig
	App        AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"30s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN string `env:"DATABASE_DSN" envDefault:"host=localhost user=postgres password=postgres dbname=ticket_backoffice port=5432 sslmode=disable"`
}

// ExtractionConfig holds settings for the ticket extraction model API.
type ExtractionConfig struct {
	BaseURL string        `env:"EXTRACTION_BASE_URL" envDefault:"https://generativelanguage.googleapis.com/v1beta"`
	APIKey  string        `env:"EXTRACTION_API_KEY"`
	Model   string        `env:"EXTRACTION_MODEL" envDefault:"gemini-1.5-flash"`
	Timeout time.Duration `env:"EXTRACTION_TIMEOUT" envDefault:"30s"`
}

// AlertConfig holds departure alert settings.
type AlertConfig struct {
	// UrgentWindow is the horizon for dummy bookings still awaiting ticketing.
	UrgentWindow time.Duration `env:"ALERT_URGENT_WINDOW" envDefault:"24h"`

	// StandardWindow is the horizon for all other bookings.
	StandardWindow time.Duration `env:"ALERT_STANDARD_WINDOW" envDefault:"48h"`

	// LogCapacity bounds the in-memory alert log.
	LogCapacity int `env:"ALERT_LOG_CAPACITY" envDefault:"30"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`

	// Timezone is the IANA zone all departure arithmetic runs in.
	Timezone string `env:"APP_TIMEZONE" envDefault:"Asia/Colombo"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	// Validate server port
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	// Validate timeouts are positive
	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}
	if cfg.Extraction.Timeout <= 0 {
		return fmt.Errorf("EXTRACTION_TIMEOUT must be positive")
	}

	if cfg.Database.DSN == "" {
		return fmt.Errorf("DATABASE_DSN must not be empty")
	}

	// Validate alert windows
	if cfg.Alerts.UrgentWindow <= 0 {
		return fmt.Errorf("ALERT_URGENT_WINDOW must be positive")
	}
	if cfg.Alerts.StandardWindow <= 0 {
		return fmt.Errorf("ALERT_STANDARD_WINDOW must be positive")
	}
	if cfg.Alerts.UrgentWindow > cfg.Alerts.StandardWindow {
		return fmt.Errorf("ALERT_URGENT_WINDOW (%s) should not exceed ALERT_STANDARD_WINDOW (%s)",
			cfg.Alerts.UrgentWindow, cfg.Alerts.StandardWindow)
	}
	if cfg.Alerts.LogCapacity < 1 {
		return fmt.Errorf("ALERT_LOG_CAPACITY must be at least 1")
	}

	// Validate timezone
	if _, err := time.LoadLocation(cfg.App.Timezone); err != nil {
		return fmt.Errorf("APP_TIMEZONE %q is not a valid IANA zone: %w", cfg.App.Timezone, err)
	}

	// Validate log level
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	// Validate log format
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	// Validate app environment
	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

// Location resolves the configured timezone. Validation guarantees the
// zone loads, so errors collapse to UTC.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
