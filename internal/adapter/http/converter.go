package http

import (
	"time"

	"github.com/flight-search/flight-search-console/internal/domain"
	"github.com/flight-search/flight-search-console/internal/infrastructure/timeutil"
)

var filterLabels = map[domain.FilterName]string{
	domain.FilterOrigin:      "Origin",
	domain.FilterDestination: "Destination",
	domain.FilterScale:       "Stopover",
	domain.FilterAirline:     "Airline",
	domain.FilterMaxPrice:    "Max price",
}

// ToSearchResponse wraps normalized flights for the JSON search endpoint.
func ToSearchResponse(flights []domain.DisplayFlight, variant domain.Variant) *SearchResponse {
	if flights == nil {
		flights = []domain.DisplayFlight{}
	}
	return &SearchResponse{
		Flights: flights,
		Total:   len(flights),
		Variant: string(variant),
	}
}

// ToSessionResponse converts a session snapshot to its JSON shape.
func ToSessionResponse(id string, variant domain.Variant, state domain.SearchState, loc *time.Location) *SessionResponse {
	resp := &SessionResponse{
		ID:      id,
		Variant: string(variant),
		Loading: state.Loading,
		Form: FormDTO{
			StartDate: formatDate(state.Form.DateRange.Start, loc),
			EndDate:   formatDate(state.Form.DateRange.End, loc),
			Filters:   state.Form.Filters,
		},
		Flights: state.Flights,
	}
	if resp.Flights == nil {
		resp.Flights = []domain.DisplayFlight{}
	}
	if state.LastError != nil {
		resp.LastError = &SessionErrorDTO{
			Kind:    string(state.ErrorKind()),
			Message: state.LastError.Error(),
		}
	}
	return resp
}

// ToPageView builds the template data for the console page. Failures of
// the last search are not shown; only input errors are.
func ToPageView(variant domain.Variant, state domain.SearchState, loc *time.Location, errs *ValidationErrors) PageView {
	view := PageView{
		Variant:   string(variant),
		Extended:  variant == domain.VariantExtended,
		StartDate: formatDate(state.Form.DateRange.Start, loc),
		EndDate:   formatDate(state.Form.DateRange.End, loc),
		Flights:   state.Flights,
		Loading:   state.Loading,
		Errors:    errs.ToMap(),
	}

	filters := state.Form.Filters
	for _, name := range variant.Filters() {
		fv := FilterView{
			Name:    string(name),
			Label:   filterLabels[name],
			Enabled: filters.Enabled.Enabled(name),
		}
		if name == domain.FilterScale {
			fv.Checkbox = true
		} else {
			fv.Value = valueOf(filters.Values, name)
		}
		view.Filters = append(view.Filters, fv)
	}

	return view
}

func formatDate(t *time.Time, loc *time.Location) string {
	if t == nil {
		return ""
	}
	if loc == nil {
		loc = time.UTC
	}
	return timeutil.FormatDate(t.In(loc))
}
