package domain

import (
	"net/url"
	"strconv"
	"time"
)

// DateLayout is the calendar-day format used on the wire.
const DateLayout = "2006-01-02"

// Query parameter names sent to the remote search endpoint.
const (
	ParamStartDate   = "startDate"
	ParamEndDate     = "endDate"
	ParamOrigin      = "origin"
	ParamDestination = "destination"
	ParamAirline     = "airline"
	ParamScale       = "scale"
	ParamMaxPrice    = "maxPrice"
)

// DateRange is the inclusive travel window of a search.
// Either end may be absent; start <= end is not enforced.
type DateRange struct {
	Start *time.Time `json:"start,omitempty"`
	End   *time.Time `json:"end,omitempty"`
}

// SearchForm is everything the user can fill in before searching.
type SearchForm struct {
	DateRange DateRange `json:"dateRange"`
	Filters   Filters   `json:"filters"`
}

// SearchQuery is the normalized parameter set for one remote search.
// Nil fields are not sent.
type SearchQuery struct {
	StartDate   *string
	EndDate     *string
	Origin      *string
	Destination *string
	Airline     *string
	Scale       *bool
	MaxPrice    *float64
}

// Values encodes the query as URL parameters, skipping absent fields.
func (q SearchQuery) Values() url.Values {
	v := url.Values{}
	setString(v, ParamStartDate, q.StartDate)
	setString(v, ParamEndDate, q.EndDate)
	setString(v, ParamOrigin, q.Origin)
	setString(v, ParamDestination, q.Destination)
	if q.Scale != nil {
		v.Set(ParamScale, strconv.FormatBool(*q.Scale))
	}
	setString(v, ParamAirline, q.Airline)
	if q.MaxPrice != nil {
		v.Set(ParamMaxPrice, strconv.FormatFloat(*q.MaxPrice, 'f', -1, 64))
	}
	return v
}

// Has reports whether the named parameter would be sent.
func (q SearchQuery) Has(param string) bool {
	_, ok := q.Values()[param]
	return ok
}

func setString(v url.Values, key string, s *string) {
	if s != nil {
		v.Set(key, *s)
	}
}
