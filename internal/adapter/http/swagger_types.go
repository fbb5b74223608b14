// Package http provides swagger type definitions for API documentation.
// These mirror the JSON bodies so swag can document them with examples.
package http

// SwaggerSearchResponse represents the search API response for swagger documentation.
// @Description Normalized flight records of one remote search
type SwaggerSearchResponse struct {
	// Flights are the records in the order the endpoint returned them
	Flights []SwaggerFlight `json:"flights"`

	// Total is the number of records
	Total int `json:"total" example:"2"`

	// Variant is the record shape in use: basic or extended
	Variant string `json:"variant" example:"extended"`
}

// SwaggerFlight represents a single normalized flight.
// @Description Flight record; the basic variant carries only origin, destination, date and price; the extended one carries every other field
type SwaggerFlight struct {
	Origin             string   `json:"origin" example:"JFK"`
	Destination        string   `json:"destination" example:"LAX"`
	Date               string   `json:"date" example:"2024-06-01"`
	Price              *float64 `json:"price,omitempty" example:"59.9"`
	EconPrice          float64  `json:"econ_price" example:"200"`
	BusiPrice          float64  `json:"busi_price" example:"800"`
	Scale              string   `json:"scale" example:"Yes" enums:"Yes,No"`
	Airline            string   `json:"airline" example:"X"`
	EconAvailableSeats int      `json:"econ_avaib_seats" example:"3"`
	BusiAvailableSeats int      `json:"busi_avaib_seats" example:"1"`
}

// SwaggerSessionResponse represents a console session for swagger documentation.
// @Description Snapshot of one console session
type SwaggerSessionResponse struct {
	ID        string               `json:"id,omitempty" example:"6f1c2a4e-8d0b-4c39-9a57-3f5f0f0d2b11"`
	Variant   string               `json:"variant" example:"extended"`
	Loading   bool                 `json:"loading" example:"false"`
	Form      SwaggerForm          `json:"form"`
	Flights   []SwaggerFlight      `json:"flights"`
	LastError *SwaggerSessionError `json:"lastError,omitempty"`
}

// SwaggerForm represents the stored search form.
// @Description Dates and filters of the session's form
type SwaggerForm struct {
	StartDate string         `json:"startDate,omitempty" example:"2024-06-01"`
	EndDate   string         `json:"endDate,omitempty" example:"2024-06-10"`
	Filters   SwaggerFilters `json:"filters"`
}

// SwaggerFilters represents the filter switches and their values.
// @Description Enabled flags keyed by filter name, and the typed values
type SwaggerFilters struct {
	Enabled map[string]bool     `json:"enabled"`
	Values  SwaggerFilterValues `json:"values"`
}

// SwaggerFilterValues represents the typed filter inputs.
// @Description Filter inputs as typed; a value is only sent when its filter is enabled
type SwaggerFilterValues struct {
	Origin      string `json:"origin" example:"JFK"`
	Destination string `json:"destination" example:""`
	Airline     string `json:"airline" example:""`
	MaxPrice    string `json:"maxPrice" example:""`
	Scale       bool   `json:"scale" example:"false"`
}

// SwaggerSessionError represents the failure of the last search.
// @Description Kind and message of the last failed search
type SwaggerSessionError struct {
	Kind    string `json:"kind" example:"transport" enums:"transport,status,decode"`
	Message string `json:"message" example:"flight search transport error: connection refused"`
}
