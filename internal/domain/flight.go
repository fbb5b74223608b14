// Package domain contains the core entities of the flight search console.
// These types describe the remote search contract and the display shape the
// console renders; they carry no transport or framework dependencies.
package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Display values for the stopover column.
const (
	StopoverYes = "Yes"
	StopoverNo  = "No"
)

// FlightRecord is a single flight returned by the remote search endpoint.
// It is the superset of both response shapes the endpoint is known to emit;
// the basic shape only fills Origin, Destination, Date and Price.
type FlightRecord struct {
	// Origin is the departure airport or city as sent by the endpoint
	Origin string `json:"origin"`

	// Destination is the arrival airport or city
	Destination string `json:"destination"`

	// Date is the flight date, passed through verbatim
	Date string `json:"date"`

	// Price is the single fare of the basic shape
	Price *float64 `json:"price,omitempty"`

	// EconPrice is the economy fare of the extended shape
	EconPrice float64 `json:"econ_price"`

	// BusiPrice is the business fare of the extended shape
	BusiPrice float64 `json:"busi_price"`

	// Scale reports whether the itinerary has a stopover
	Scale Stopover `json:"scale"`

	// Airline is the operating airline name or code
	Airline string `json:"airline"`

	// EconAvailableSeats is the number of economy seats left
	EconAvailableSeats int `json:"econ_avaib_seats"`

	// BusiAvailableSeats is the number of business seats left
	BusiAvailableSeats int `json:"busi_avaib_seats"`
}

// Stopover is the scale flag of a flight record.
//
// The endpoint sends a JSON boolean, but records that were already prepared
// for display carry "Yes"/"No". Both decode to the same flag so normalizing a
// normalized payload again yields the same result.
type Stopover bool

// UnmarshalJSON accepts a boolean, null, or one of the strings
// "Yes", "No", "true", "false" (case-insensitive).
func (s *Stopover) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*s = false
		return nil
	}

	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*s = Stopover(b)
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("scale: expected boolean or string, got %s", raw)
	}

	switch strings.ToLower(strings.TrimSpace(str)) {
	case "yes", "true":
		*s = true
	case "no", "false", "":
		*s = false
	default:
		return fmt.Errorf("scale: unrecognized value %q", str)
	}
	return nil
}

// MarshalJSON encodes the flag as a JSON boolean.
func (s Stopover) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(s))
}

// Label returns the display string for the flag.
func (s Stopover) Label() string {
	if s {
		return StopoverYes
	}
	return StopoverNo
}

// DisplayFlight is a flight record in the exact shape the results table
// expects. For the extended variant Scale is always StopoverYes or
// StopoverNo. A basic flight carries and encodes only origin, destination,
// date and price.
type DisplayFlight struct {
	Origin             string   `json:"origin"`
	Destination        string   `json:"destination"`
	Date               string   `json:"date"`
	Price              *float64 `json:"price,omitempty"`
	EconPrice          float64  `json:"econ_price"`
	BusiPrice          float64  `json:"busi_price"`
	Scale              string   `json:"scale"`
	Airline            string   `json:"airline"`
	EconAvailableSeats int      `json:"econ_avaib_seats"`
	BusiAvailableSeats int      `json:"busi_avaib_seats"`

	// Variant is the record shape. Anything but VariantBasic encodes the
	// full record.
	Variant Variant `json:"-"`
}

// basicFlight is the wire shape of a basic DisplayFlight.
type basicFlight struct {
	Origin      string   `json:"origin"`
	Destination string   `json:"destination"`
	Date        string   `json:"date"`
	Price       *float64 `json:"price,omitempty"`
}

// MarshalJSON encodes the fields of the flight's variant.
func (f DisplayFlight) MarshalJSON() ([]byte, error) {
	if f.Variant == VariantBasic {
		return json.Marshal(basicFlight{
			Origin:      f.Origin,
			Destination: f.Destination,
			Date:        f.Date,
			Price:       f.Price,
		})
	}
	type full DisplayFlight
	return json.Marshal(full(f))
}
