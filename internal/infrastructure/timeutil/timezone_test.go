package timeutil

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLocation(t *testing.T) {
	tests := []struct {
		name    string
		zone    string
		want    string
		wantErr bool
	}{
		{name: "utc", zone: "UTC", want: "UTC"},
		{name: "empty means utc", zone: "", want: "UTC"},
		{name: "named zone", zone: "America/New_York", want: "America/New_York"},
		{name: "unknown zone", zone: "Mars/Olympus", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := GetLocation(tt.zone)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.zone)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, loc.String())
		})
	}
}

func TestGetLocation_Caching(t *testing.T) {
	ClearLocationCache()

	first, err := GetLocation("Europe/Madrid")
	require.NoError(t, err)
	second, err := GetLocation("Europe/Madrid")
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestGetLocation_ConcurrentAccess(t *testing.T) {
	ClearLocationCache()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := GetLocation("Asia/Tokyo")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
}

func TestMustGetLocation(t *testing.T) {
	assert.NotPanics(t, func() { MustGetLocation(UTC) })
	assert.Panics(t, func() { MustGetLocation("Not/AZone") })
}

func TestParseDate(t *testing.T) {
	ny := MustGetLocation("America/New_York")

	got, err := ParseDate(" 2024-06-01 ", ny)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, ny), got)

	got, err = ParseDate("2024-06-10", nil)
	require.NoError(t, err)
	assert.Equal(t, time.UTC, got.Location())

	_, err = ParseDate("06/10/2024", nil)
	assert.Error(t, err)
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "2024-06-01", FormatDate(time.Date(2024, 6, 1, 23, 59, 0, 0, time.UTC)))
}

func TestStartOfDay_PreservesLocation(t *testing.T) {
	ny := MustGetLocation("America/New_York")
	in := time.Date(2024, 6, 1, 15, 4, 5, 6, ny)

	got := StartOfDay(in)

	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, ny), got)
	assert.Equal(t, ny, got.Location())
}
