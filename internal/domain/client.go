package domain

import "context"

//go:generate mockgen -source=client.go -destination=client_mock.go -package=domain

// SearchClient issues a single search against the remote flight endpoint.
type SearchClient interface {
	// Search sends the query and returns the raw records in endpoint order.
	// Failures are reported as *SearchError.
	Search(ctx context.Context, query SearchQuery) ([]FlightRecord, error)
}
