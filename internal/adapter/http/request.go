package http

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/flight-search/flight-search-console/internal/domain"
	"github.com/flight-search/flight-search-console/internal/infrastructure/timeutil"
)

// SearchParams holds the query parameters of the JSON search endpoint.
// They mirror the remote endpoint: a nil field means the parameter was
// absent and the matching filter is off.
type SearchParams struct {
	StartDate   *string
	EndDate     *string
	Origin      *string
	Destination *string
	Airline     *string
	Scale       *string
	MaxPrice    *string
}

// ParseSearchParams reads SearchParams from a query string. Only the first
// value of a repeated parameter is used.
func ParseSearchParams(q url.Values) SearchParams {
	return SearchParams{
		StartDate:   optional(q, domain.ParamStartDate),
		EndDate:     optional(q, domain.ParamEndDate),
		Origin:      optional(q, domain.ParamOrigin),
		Destination: optional(q, domain.ParamDestination),
		Airline:     optional(q, domain.ParamAirline),
		Scale:       optional(q, domain.ParamScale),
		MaxPrice:    optional(q, domain.ParamMaxPrice),
	}
}

func optional(q url.Values, key string) *string {
	if !q.Has(key) {
		return nil
	}
	v := q.Get(key)
	return &v
}

// ToForm validates the parameters and converts them to a search form.
// Dates are read as calendar days in loc. maxPrice is passed through
// unparsed; the query builder rejects it if it is not a number.
func (p SearchParams) ToForm(loc *time.Location) (domain.SearchForm, error) {
	errs := &ValidationErrors{}
	form := domain.SearchForm{Filters: domain.Filters{Enabled: domain.FilterSet{}}}

	form.DateRange.Start = parseDateParam(errs, domain.ParamStartDate, p.StartDate, loc)
	form.DateRange.End = parseDateParam(errs, domain.ParamEndDate, p.EndDate, loc)

	text := []struct {
		name  domain.FilterName
		value *string
	}{
		{domain.FilterOrigin, p.Origin},
		{domain.FilterDestination, p.Destination},
		{domain.FilterAirline, p.Airline},
		{domain.FilterMaxPrice, p.MaxPrice},
	}
	for _, f := range text {
		if f.value == nil {
			continue
		}
		form.Filters = form.Filters.Toggle(f.name, true).SetValue(f.name, *f.value)
	}

	if p.Scale != nil {
		scale, err := strconv.ParseBool(strings.TrimSpace(*p.Scale))
		if err != nil {
			errs.Add(domain.ParamScale, "scale must be true or false")
		} else {
			form.Filters = form.Filters.Toggle(domain.FilterScale, scale)
		}
	}

	if errs.HasErrors() {
		return domain.SearchForm{}, errs
	}
	return form, nil
}

func parseDateParam(errs *ValidationErrors, field string, raw *string, loc *time.Location) *time.Time {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil
	}
	t, err := timeutil.ParseDate(*raw, loc)
	if err != nil {
		errs.Add(field, field+" must be a date in YYYY-MM-DD format")
		return nil
	}
	return &t
}

// ConsoleForm is the body of the console page's search form.
// Checked filters arrive as repeated "filter" values.
type ConsoleForm struct {
	StartDate   string   `form:"startDate"`
	EndDate     string   `form:"endDate"`
	Filters     []string `form:"filter"`
	Origin      string   `form:"origin"`
	Destination string   `form:"destination"`
	Airline     string   `form:"airline"`
	MaxPrice    string   `form:"maxPrice"`
}

// Transition returns the state change the submitted form describes, limited
// to the filters the variant offers. A date that does not parse is reported
// and leaves the stored date unchanged; an empty date clears it.
func (f ConsoleForm) Transition(variant domain.Variant, loc *time.Location) (func(domain.SearchState) domain.SearchState, *ValidationErrors) {
	errs := &ValidationErrors{}

	type dateUpdate struct {
		set   bool
		value *time.Time
	}
	parse := func(field, raw string) dateUpdate {
		if strings.TrimSpace(raw) == "" {
			return dateUpdate{set: true}
		}
		t, err := timeutil.ParseDate(raw, loc)
		if err != nil {
			errs.Add(field, field+" must be a date in YYYY-MM-DD format")
			return dateUpdate{}
		}
		return dateUpdate{set: true, value: &t}
	}
	start := parse(domain.ParamStartDate, f.StartDate)
	end := parse(domain.ParamEndDate, f.EndDate)

	checked := make(map[domain.FilterName]bool, len(f.Filters))
	for _, name := range f.Filters {
		checked[domain.FilterName(name)] = true
	}
	values := domain.FilterValues{
		Origin:      f.Origin,
		Destination: f.Destination,
		Airline:     f.Airline,
		MaxPrice:    f.MaxPrice,
	}
	if variant.Supports(domain.FilterMaxPrice) && checked[domain.FilterMaxPrice] {
		if _, err := strconv.ParseFloat(strings.TrimSpace(f.MaxPrice), 64); err != nil {
			errs.Add(string(domain.FilterMaxPrice), "Max price must be a number")
		}
	}

	transition := func(s domain.SearchState) domain.SearchState {
		if start.set {
			s = s.WithStartDate(start.value)
		}
		if end.set {
			s = s.WithEndDate(end.value)
		}
		for _, name := range variant.Filters() {
			s = s.WithFilterToggled(name, checked[name])
			if name != domain.FilterScale {
				s = s.WithFilterValue(name, valueOf(values, name))
			}
		}
		return s
	}

	if errs.HasErrors() {
		return transition, errs
	}
	return transition, nil
}

func valueOf(v domain.FilterValues, name domain.FilterName) string {
	switch name {
	case domain.FilterOrigin:
		return v.Origin
	case domain.FilterDestination:
		return v.Destination
	case domain.FilterAirline:
		return v.Airline
	case domain.FilterMaxPrice:
		return v.MaxPrice
	}
	return ""
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{Field: field, Message: message})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return v != nil && len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	if v == nil {
		return nil
	}
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}
