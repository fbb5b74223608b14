package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/flight-search/flight-search-console/internal/domain"
	"github.com/flight-search/flight-search-console/internal/infrastructure/retry"
)

//go:generate mockgen -source=flight_search.go -destination=flight_search_mock.go -package=usecase

// FlightSearchUseCase defines the interface for flight search operations.
type FlightSearchUseCase interface {
	// Search builds the query for the form, calls the remote endpoint once
	// and returns the normalized records.
	Search(ctx context.Context, form domain.SearchForm) ([]domain.DisplayFlight, error)

	// Variant reports which record shape and filters are in use.
	Variant() domain.Variant
}

// flightSearchUseCase implements FlightSearchUseCase on top of a SearchClient.
type flightSearchUseCase struct {
	client  domain.SearchClient
	builder *QueryBuilder
	retry   retry.Config
}

// NewFlightSearchUseCase creates a new FlightSearchUseCase with the given client and configuration.
// If config is nil, DefaultConfig is used.
func NewFlightSearchUseCase(client domain.SearchClient, config *Config) FlightSearchUseCase {
	cfg := DefaultConfig()
	if config != nil {
		if config.Variant.IsValid() {
			cfg.Variant = config.Variant
		}
		if config.Location != nil {
			cfg.Location = config.Location
		}
		if config.MaxAttempts > 0 {
			cfg.MaxAttempts = config.MaxAttempts
		}
	}

	log := zerolog.Nop()
	if config != nil && config.Logger != nil {
		log = *config.Logger
	}

	return &flightSearchUseCase{
		client:  client,
		builder: NewQueryBuilder(cfg.Variant, cfg.Location),
		retry:   cfg.retryConfig(log),
	}
}

// Search implements FlightSearchUseCase.Search.
func (uc *flightSearchUseCase) Search(ctx context.Context, form domain.SearchForm) ([]domain.DisplayFlight, error) {
	query, err := uc.builder.Build(form)
	if err != nil {
		return nil, err
	}

	records, err := retry.DoWithResult(ctx, func() ([]domain.FlightRecord, error) {
		return uc.client.Search(ctx, query)
	}, uc.retry)
	if err != nil {
		return nil, err
	}

	return NormalizeResults(uc.builder.Variant(), records), nil
}

// Variant implements FlightSearchUseCase.Variant.
func (uc *flightSearchUseCase) Variant() domain.Variant {
	return uc.builder.Variant()
}

// Ensure flightSearchUseCase implements FlightSearchUseCase at compile time.
var _ FlightSearchUseCase = (*flightSearchUseCase)(nil)
