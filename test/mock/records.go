package mock

import (
	"fmt"

	"github.com/flight-search/flight-search-console/internal/domain"
)

var sampleRoutes = []struct{ origin, destination string }{
	{"JFK", "LAX"},
	{"CGK", "DPS"},
	{"LHR", "CDG"},
	{"SFO", "SEA"},
}

// SampleRecords returns n extended-shape records. Every other record has a
// stopover, starting with the first.
func SampleRecords(n int) []domain.FlightRecord {
	records := make([]domain.FlightRecord, n)
	for i := range records {
		route := sampleRoutes[i%len(sampleRoutes)]
		records[i] = domain.FlightRecord{
			Origin:             route.origin,
			Destination:        route.destination,
			Date:               fmt.Sprintf("2024-06-%02d", i%28+1),
			EconPrice:          float64(100 + 10*i),
			BusiPrice:          float64(400 + 40*i),
			Scale:              domain.Stopover(i%2 == 0),
			Airline:            fmt.Sprintf("Airline %d", i%3),
			EconAvailableSeats: 10 + i,
			BusiAvailableSeats: 2 + i%4,
		}
	}
	return records
}

// SampleBasicRecords returns n basic-shape records carrying only origin,
// destination, date and price.
func SampleBasicRecords(n int) []domain.FlightRecord {
	records := make([]domain.FlightRecord, n)
	for i := range records {
		route := sampleRoutes[i%len(sampleRoutes)]
		price := float64(50 + 25*i)
		records[i] = domain.FlightRecord{
			Origin:      route.origin,
			Destination: route.destination,
			Date:        fmt.Sprintf("2024-07-%02d", i%28+1),
			Price:       &price,
		}
	}
	return records
}
