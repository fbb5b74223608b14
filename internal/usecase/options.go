// Package usecase contains the business logic of the flight search console:
// building the remote query, normalizing results and tracking per-session
// search state.
package usecase

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/flight-search/flight-search-console/internal/domain"
	"github.com/flight-search/flight-search-console/internal/infrastructure/retry"
)

// Config contains configuration options for the use case.
type Config struct {
	// Variant selects the record shape and filters (default: extended)
	Variant domain.Variant

	// Location is the zone dates are truncated in (default: UTC)
	Location *time.Location

	// MaxAttempts is the number of times a transport failure is attempted.
	// Values below 2 disable retries.
	MaxAttempts int

	// Logger receives retry warnings (default: disabled)
	Logger *zerolog.Logger
}

// DefaultConfig returns the default configuration: extended variant, UTC
// dates, a single attempt.
func DefaultConfig() Config {
	return Config{
		Variant:     domain.VariantExtended,
		Location:    time.UTC,
		MaxAttempts: 1,
	}
}

// retryConfig derives the retry policy. Only transport failures are retried;
// a status or decode failure would repeat identically.
func (c Config) retryConfig(log zerolog.Logger) retry.Config {
	return retry.UpstreamConfig.
		WithMaxAttempts(c.MaxAttempts).
		WithRetryIf(domain.IsTransportError).
		WithOnRetry(func(attempt int, err error) {
			log.Warn().
				Err(err).
				Int("attempt", attempt).
				Int("max_attempts", c.MaxAttempts).
				Msg("Flight search attempt failed, retrying")
		})
}
