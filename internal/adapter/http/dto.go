package http

import (
	"github.com/flight-search/flight-search-console/internal/domain"
)

// SearchResponse is the body of a successful JSON search.
type SearchResponse struct {
	// Flights are the normalized records in the order the endpoint sent them
	Flights []domain.DisplayFlight `json:"flights"`

	// Total is len(Flights)
	Total int `json:"total"`

	// Variant is the record shape the console is configured for
	Variant string `json:"variant"`
}

// SessionResponse is a JSON snapshot of one console session.
type SessionResponse struct {
	ID        string                 `json:"id,omitempty"`
	Variant   string                 `json:"variant"`
	Loading   bool                   `json:"loading"`
	Form      FormDTO                `json:"form"`
	Flights   []domain.DisplayFlight `json:"flights"`
	LastError *SessionErrorDTO       `json:"lastError,omitempty"`
}

// FormDTO is the search form as stored in a session.
type FormDTO struct {
	StartDate string         `json:"startDate,omitempty"`
	EndDate   string         `json:"endDate,omitempty"`
	Filters   domain.Filters `json:"filters"`
}

// SessionErrorDTO describes the failure of the session's last search.
type SessionErrorDTO struct {
	Kind    string `json:"kind,omitempty"`
	Message string `json:"message"`
}

// PageView is the data the console template renders.
type PageView struct {
	Variant   string
	Extended  bool
	StartDate string
	EndDate   string
	Filters   []FilterView
	Flights   []domain.DisplayFlight
	Loading   bool
	Errors    map[string]string
}

// FilterView is one filter row of the console form.
type FilterView struct {
	Name     string
	Label    string
	Enabled  bool
	Value    string
	Checkbox bool
}
