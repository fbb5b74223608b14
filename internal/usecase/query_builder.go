package usecase

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/flight-search/flight-search-console/internal/domain"
	"github.com/flight-search/flight-search-console/internal/infrastructure/timeutil"
)

// QueryBuilder turns a search form into the parameter set of one remote
// search. It is safe for concurrent use.
type QueryBuilder struct {
	variant  domain.Variant
	location *time.Location
}

// NewQueryBuilder creates a builder for the given variant.
// Dates are truncated to calendar days in loc; a nil loc means UTC.
func NewQueryBuilder(variant domain.Variant, loc *time.Location) *QueryBuilder {
	if !variant.IsValid() {
		variant = domain.VariantExtended
	}
	if loc == nil {
		loc = time.UTC
	}
	return &QueryBuilder{variant: variant, location: loc}
}

// Variant returns the variant the builder was created for.
func (b *QueryBuilder) Variant() domain.Variant {
	return b.variant
}

// Build maps the form to a SearchQuery.
//
// Behavior:
//   - startDate/endDate are sent as YYYY-MM-DD when present, omitted otherwise
//   - enabled text filters are sent verbatim, disabled ones are omitted
//   - scale (extended variant) is always sent; false unless enabled and checked
//   - maxPrice (basic variant) must parse as a float when enabled
//   - filters the variant does not offer are ignored
func (b *QueryBuilder) Build(form domain.SearchForm) (domain.SearchQuery, error) {
	var q domain.SearchQuery

	q.StartDate = b.formatDate(form.DateRange.Start)
	q.EndDate = b.formatDate(form.DateRange.End)

	enabled := form.Filters.Enabled
	values := form.Filters.Values

	if b.offers(enabled, domain.FilterOrigin) {
		q.Origin = stringPtr(values.Origin)
	}
	if b.offers(enabled, domain.FilterDestination) {
		q.Destination = stringPtr(values.Destination)
	}
	if b.variant.Supports(domain.FilterScale) {
		scale := enabled.Enabled(domain.FilterScale) && values.Scale
		q.Scale = &scale
	}
	if b.offers(enabled, domain.FilterAirline) {
		q.Airline = stringPtr(values.Airline)
	}
	if b.offers(enabled, domain.FilterMaxPrice) {
		price, err := parseMaxPrice(values.MaxPrice)
		if err != nil {
			return domain.SearchQuery{}, err
		}
		q.MaxPrice = &price
	}

	return q, nil
}

func (b *QueryBuilder) offers(enabled domain.FilterSet, name domain.FilterName) bool {
	return b.variant.Supports(name) && enabled.Enabled(name)
}

func (b *QueryBuilder) formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	day := timeutil.FormatDate(t.In(b.location))
	return &day
}

// parseMaxPrice parses the max price input strictly.
func parseMaxPrice(raw string) (float64, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidMaxPrice, raw)
	}
	return price, nil
}

func stringPtr(s string) *string {
	return &s
}
