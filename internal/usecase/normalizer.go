package usecase

import "github.com/flight-search/flight-search-console/internal/domain"

// NormalizeResults maps raw records to the shape the results table expects.
//
// Every record is visited exactly once and the output keeps the input order
// and length. For the extended variant the only transformation is scale,
// which becomes "Yes" or "No". Basic records keep origin, destination, date
// and price untouched and gain no other field. The input slice is not
// modified.
func NormalizeResults(variant domain.Variant, records []domain.FlightRecord) []domain.DisplayFlight {
	result := make([]domain.DisplayFlight, 0, len(records))
	for _, r := range records {
		if variant == domain.VariantBasic {
			result = append(result, normalizeBasic(r))
			continue
		}
		result = append(result, normalizeExtended(r))
	}
	return result
}

func normalizeBasic(r domain.FlightRecord) domain.DisplayFlight {
	return domain.DisplayFlight{
		Origin:      r.Origin,
		Destination: r.Destination,
		Date:        r.Date,
		Price:       r.Price,
		Variant:     domain.VariantBasic,
	}
}

func normalizeExtended(r domain.FlightRecord) domain.DisplayFlight {
	return domain.DisplayFlight{
		Origin:             r.Origin,
		Destination:        r.Destination,
		Date:               r.Date,
		Price:              r.Price,
		EconPrice:          r.EconPrice,
		BusiPrice:          r.BusiPrice,
		Scale:              r.Scale.Label(),
		Airline:            r.Airline,
		EconAvailableSeats: r.EconAvailableSeats,
		BusiAvailableSeats: r.BusiAvailableSeats,
		Variant:            domain.VariantExtended,
	}
}
