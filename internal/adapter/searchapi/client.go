// Package searchapi calls the remote flight search endpoint.
package searchapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/flight-search/flight-search-console/internal/domain"
	"github.com/flight-search/flight-search-console/internal/infrastructure/metrics"
)

// DefaultEndpoint is the search endpoint used when none is configured.
const DefaultEndpoint = "http://localhost:8080/api/flights/search"

// maxErrorBody bounds how much of a failed response is kept in the error.
const maxErrorBody = 512

// Config contains configuration options for the client.
type Config struct {
	// Endpoint is the full URL of the search endpoint, without a query
	Endpoint string

	// Timeout bounds one request; zero means no timeout
	Timeout time.Duration

	// HTTPClient overrides the underlying client
	HTTPClient *http.Client

	// Metrics, if set, records every request
	Metrics *metrics.Metrics

	// Logger receives request-level debug events
	Logger zerolog.Logger
}

// Client issues one GET per search and decodes the JSON array response.
type Client struct {
	endpoint   string
	httpClient *http.Client
	metrics    *metrics.Metrics
	log        zerolog.Logger
}

// NewClient creates a Client. An empty endpoint means DefaultEndpoint.
func NewClient(cfg Config) *Client {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{
		endpoint:   endpoint,
		httpClient: httpClient,
		metrics:    cfg.Metrics,
		log:        cfg.Logger.With().Str("component", "searchapi").Logger(),
	}
}

// Endpoint returns the URL searches are sent to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Search implements domain.SearchClient.
func (c *Client) Search(ctx context.Context, query domain.SearchQuery) ([]domain.FlightRecord, error) {
	start := time.Now()

	records, err := c.do(ctx, query)

	elapsed := time.Since(start)
	c.metrics.ObserveUpstream(string(domain.KindOf(err)), elapsed, len(records))

	event := c.log.Debug()
	if err != nil {
		event = event.Err(err).Str("error_kind", string(domain.KindOf(err)))
	}
	event.
		Str("query", query.Values().Encode()).
		Int("results", len(records)).
		Dur("elapsed", elapsed).
		Msg("Remote flight search")

	return records, err
}

func (c *Client) do(ctx context.Context, query domain.SearchQuery) ([]domain.FlightRecord, error) {
	url := c.endpoint
	if encoded := query.Values().Encode(); encoded != "" {
		url += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, domain.NewTransportError(fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.NewTransportError(fmt.Errorf("failed to execute request: %w", asDeadline(err)))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.NewTransportError(fmt.Errorf("failed to read response body: %w", asDeadline(err)))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, domain.NewStatusError(resp.StatusCode, truncate(strings.TrimSpace(string(body)), maxErrorBody))
	}

	var records []domain.FlightRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, domain.NewDecodeError(fmt.Errorf("failed to decode response: %w", err))
	}
	if records == nil {
		return nil, domain.NewDecodeError(errors.New("response is not a JSON array"))
	}

	return records, nil
}

// asDeadline makes a client timeout match context.DeadlineExceeded.
func asDeadline(err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() && !errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", context.DeadlineExceeded, err)
	}
	return err
}

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}

var _ domain.SearchClient = (*Client)(nil)
