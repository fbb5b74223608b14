// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/flight-search/flight-search-console/internal/domain"
	"github.com/flight-search/flight-search-console/internal/infrastructure/logger"
	"github.com/flight-search/flight-search-console/internal/infrastructure/timeutil"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Search  SearchConfig
	Session SessionConfig
	Logging logger.Config
	App     AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"3000"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"30s"`
}

// SearchConfig holds settings for the remote flight search endpoint.
type SearchConfig struct {
	// Endpoint is the URL every search is sent to
	Endpoint string `env:"SEARCH_ENDPOINT" envDefault:"http://localhost:8080/api/flights/search"`

	// Variant selects the record shape and filter set (basic, extended)
	Variant string `env:"SEARCH_VARIANT" envDefault:"extended"`

	// Timezone is the IANA zone form dates are truncated in
	Timezone string `env:"SEARCH_TIMEZONE" envDefault:"UTC"`

	// Timeout bounds one remote call; zero means no timeout
	Timeout time.Duration `env:"SEARCH_TIMEOUT" envDefault:"0s"`

	// MaxAttempts is how often a transport failure is attempted
	MaxAttempts int `env:"SEARCH_MAX_ATTEMPTS" envDefault:"1"`
}

// SessionConfig holds console session settings.
type SessionConfig struct {
	IdleTTL       time.Duration `env:"SESSION_IDLE_TTL" envDefault:"30m"`
	SweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL" envDefault:"1m"`
	CookieName    string        `env:"SESSION_COOKIE" envDefault:"flight_search_session"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
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
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}

	u, err := url.Parse(cfg.Search.Endpoint)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("SEARCH_ENDPOINT must be an absolute http(s) URL, got %q", cfg.Search.Endpoint)
	}
	if u.RawQuery != "" {
		return fmt.Errorf("SEARCH_ENDPOINT must not carry a query string, got %q", cfg.Search.Endpoint)
	}
	if !domain.Variant(cfg.Search.Variant).IsValid() {
		return fmt.Errorf("SEARCH_VARIANT must be one of: basic, extended; got %q", cfg.Search.Variant)
	}
	if _, err := timeutil.GetLocation(cfg.Search.Timezone); err != nil {
		return fmt.Errorf("SEARCH_TIMEZONE: %w", err)
	}
	if cfg.Search.Timeout < 0 {
		return fmt.Errorf("SEARCH_TIMEOUT must not be negative")
	}
	if cfg.Search.MaxAttempts < 1 {
		return fmt.Errorf("SEARCH_MAX_ATTEMPTS must be at least 1, got %d", cfg.Search.MaxAttempts)
	}

	if cfg.Session.IdleTTL <= 0 {
		return fmt.Errorf("SESSION_IDLE_TTL must be positive")
	}
	if cfg.Session.SweepInterval <= 0 {
		return fmt.Errorf("SESSION_SWEEP_INTERVAL must be positive")
	}
	if cfg.Session.CookieName == "" {
		return fmt.Errorf("SESSION_COOKIE must not be empty")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

// Variant returns the configured record variant.
func (c *Config) Variant() domain.Variant {
	return domain.Variant(c.Search.Variant)
}

// Location returns the zone form dates are read in. It falls back to UTC,
// which cannot happen after a successful Load.
func (c *Config) Location() *time.Location {
	loc, err := timeutil.GetLocation(c.Search.Timezone)
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
