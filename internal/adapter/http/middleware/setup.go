package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/flight-search/flight-search-console/internal/infrastructure/metrics"
)

// Setup registers all middleware on the Echo instance. Order matters:
//  1. RequestID, so every later log line carries it
//  2. RequestLogger, which logs the final status
//  3. Metrics, which records the final status per route
//  4. Recover, closest to the handlers
//
// Call it before registering routes. A nil m disables metrics recording.
func Setup(e *echo.Echo, log zerolog.Logger, m *metrics.Metrics) {
	SetupWithConfig(e, log, m, DefaultRecoveryConfig())
}

// SetupWithConfig registers middleware with a custom recovery configuration.
func SetupWithConfig(e *echo.Echo, log zerolog.Logger, m *metrics.Metrics, recoveryConfig RecoveryConfig) {
	e.Use(Chain(log, m, recoveryConfig)...)
}

// Chain returns the middleware as a slice for use with route groups.
func Chain(log zerolog.Logger, m *metrics.Metrics, recoveryConfig RecoveryConfig) []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{
		RequestID(),
		RequestLogger(log),
		Metrics(m),
		RecoverWithConfig(log, recoveryConfig),
	}
}
