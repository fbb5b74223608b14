package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-search/flight-search-console/internal/domain"
)

// TestLoad_Defaults tests that all default values load correctly without any env vars.
func TestLoad_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := Load()
	require.NoError(t, err)

	// Server defaults
	assert.Equal(t, 3000, cfg.Server.Port, "default server port")
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)

	// Search defaults
	assert.Equal(t, "http://localhost:8080/api/flights/search", cfg.Search.Endpoint)
	assert.Equal(t, domain.VariantExtended, cfg.Variant())
	assert.Equal(t, time.UTC, cfg.Location())
	assert.Zero(t, cfg.Search.Timeout, "no timeout by default")
	assert.Equal(t, 1, cfg.Search.MaxAttempts, "no retries by default")

	// Session defaults
	assert.Equal(t, 30*time.Minute, cfg.Session.IdleTTL)
	assert.Equal(t, time.Minute, cfg.Session.SweepInterval)
	assert.Equal(t, "flight_search_session", cfg.Session.CookieName)

	// Logging defaults
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.False(t, cfg.Logging.EnableCaller)
	assert.Equal(t, "flight-search-console", cfg.Logging.ServiceName)

	assert.Equal(t, "development", cfg.App.Env)
}

// TestLoad_EnvironmentOverrides tests that environment variables override defaults.
func TestLoad_EnvironmentOverrides(t *testing.T) {
	clearEnvVars(t)
	setEnvVars(t, map[string]string{
		"SERVER_PORT":            "8081",
		"SEARCH_ENDPOINT":        "https://flights.example.com/search",
		"SEARCH_VARIANT":         "basic",
		"SEARCH_TIMEZONE":        "Asia/Jakarta",
		"SEARCH_TIMEOUT":         "4s",
		"SEARCH_MAX_ATTEMPTS":    "3",
		"SESSION_IDLE_TTL":       "5m",
		"SESSION_SWEEP_INTERVAL": "10s",
		"SESSION_COOKIE":         "sid",
		"LOG_LEVEL":              "debug",
		"LOG_FORMAT":             "console",
		"LOG_CALLER":             "true",
		"SERVICE_NAME":           "console-staging",
		"APP_ENV":                "staging",
	})

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, "https://flights.example.com/search", cfg.Search.Endpoint)
	assert.Equal(t, domain.VariantBasic, cfg.Variant())
	assert.Equal(t, "Asia/Jakarta", cfg.Location().String())
	assert.Equal(t, 4*time.Second, cfg.Search.Timeout)
	assert.Equal(t, 3, cfg.Search.MaxAttempts)
	assert.Equal(t, 5*time.Minute, cfg.Session.IdleTTL)
	assert.Equal(t, 10*time.Second, cfg.Session.SweepInterval)
	assert.Equal(t, "sid", cfg.Session.CookieName)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.True(t, cfg.Logging.EnableCaller)
	assert.Equal(t, "console-staging", cfg.Logging.ServiceName)
	assert.Equal(t, "staging", cfg.App.Env)
}

// TestLoad_Validation tests that invalid values are rejected with a message
// naming the variable.
func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		envVar  string
		value   string
		wantErr string
	}{
		{"port zero", "SERVER_PORT", "0", "SERVER_PORT"},
		{"port too high", "SERVER_PORT", "70000", "SERVER_PORT"},
		{"zero read timeout", "SERVER_READ_TIMEOUT", "0s", "SERVER_READ_TIMEOUT"},
		{"negative write timeout", "SERVER_WRITE_TIMEOUT", "-1s", "SERVER_WRITE_TIMEOUT"},
		{"relative endpoint", "SEARCH_ENDPOINT", "/api/flights/search", "SEARCH_ENDPOINT"},
		{"endpoint scheme", "SEARCH_ENDPOINT", "ftp://example.com/search", "SEARCH_ENDPOINT"},
		{"endpoint with query", "SEARCH_ENDPOINT", "http://example.com/search?x=1", "SEARCH_ENDPOINT"},
		{"unknown variant", "SEARCH_VARIANT", "premium", "SEARCH_VARIANT"},
		{"unknown timezone", "SEARCH_TIMEZONE", "Mars/Olympus", "SEARCH_TIMEZONE"},
		{"negative search timeout", "SEARCH_TIMEOUT", "-5s", "SEARCH_TIMEOUT"},
		{"zero attempts", "SEARCH_MAX_ATTEMPTS", "0", "SEARCH_MAX_ATTEMPTS"},
		{"zero idle ttl", "SESSION_IDLE_TTL", "0s", "SESSION_IDLE_TTL"},
		{"zero sweep interval", "SESSION_SWEEP_INTERVAL", "0s", "SESSION_SWEEP_INTERVAL"},
		{"log level", "LOG_LEVEL", "verbose", "LOG_LEVEL"},
		{"log format", "LOG_FORMAT", "xml", "LOG_FORMAT"},
		{"app env", "APP_ENV", "test", "APP_ENV"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, map[string]string{tt.envVar: tt.value})

			cfg, err := Load()

			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

// TestLoad_ParseError tests that malformed values fail parsing.
func TestLoad_ParseError(t *testing.T) {
	clearEnvVars(t)
	setEnvVars(t, map[string]string{"SEARCH_TIMEOUT": "soon"})

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

// TestMustLoad_Success tests MustLoad with valid config.
func TestMustLoad_Success(t *testing.T) {
	clearEnvVars(t)

	assert.NotPanics(t, func() {
		cfg := MustLoad()
		assert.NotNil(t, cfg)
	})
}

// TestMustLoad_Panic tests MustLoad panics on invalid config.
func TestMustLoad_Panic(t *testing.T) {
	clearEnvVars(t)
	setEnvVars(t, map[string]string{"SEARCH_VARIANT": "nope"})

	assert.Panics(t, func() {
		MustLoad()
	})
}

// TestConfig_EnvHelpers tests the IsDevelopment and IsProduction helpers.
func TestConfig_EnvHelpers(t *testing.T) {
	tests := []struct {
		env         string
		development bool
		production  bool
	}{
		{"development", true, false},
		{"staging", false, false},
		{"production", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			cfg := &Config{App: AppConfig{Env: tt.env}}

			assert.Equal(t, tt.development, cfg.IsDevelopment())
			assert.Equal(t, tt.production, cfg.IsProduction())
		})
	}
}

func TestConfig_LocationFallback(t *testing.T) {
	cfg := &Config{Search: SearchConfig{Timezone: "Not/AZone"}}
	assert.Equal(t, time.UTC, cfg.Location())
}

// Helper functions

var configEnvVars = []string{
	"SERVER_PORT",
	"SERVER_READ_TIMEOUT",
	"SERVER_WRITE_TIMEOUT",
	"SEARCH_ENDPOINT",
	"SEARCH_VARIANT",
	"SEARCH_TIMEZONE",
	"SEARCH_TIMEOUT",
	"SEARCH_MAX_ATTEMPTS",
	"SESSION_IDLE_TTL",
	"SESSION_SWEEP_INTERVAL",
	"SESSION_COOKIE",
	"LOG_LEVEL",
	"LOG_FORMAT",
	"LOG_CALLER",
	"SERVICE_NAME",
	"APP_ENV",
}

// clearEnvVars unsets all config-related environment variables and restores
// them when the test ends.
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, v := range configEnvVars {
		if old, ok := os.LookupEnv(v); ok {
			t.Cleanup(func() { os.Setenv(v, old) })
		}
		os.Unsetenv(v)
	}
}

// setEnvVars sets multiple environment variables for the duration of the test.
func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}
