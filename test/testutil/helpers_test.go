package testutil

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustParseDate(t *testing.T) {
	tests := []struct {
		name      string
		dateStr   string
		wantYear  int
		wantMonth time.Month
		wantDay   int
	}{
		{
			name:      "valid date",
			dateStr:   "2024-06-01",
			wantYear:  2024,
			wantMonth: time.June,
			wantDay:   1,
		},
		{
			name:      "leap year date",
			dateStr:   "2024-02-29",
			wantYear:  2024,
			wantMonth: time.February,
			wantDay:   29,
		},
		{
			name:      "surrounding whitespace",
			dateStr:   " 2025-01-01 ",
			wantYear:  2025,
			wantMonth: time.January,
			wantDay:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MustParseDate(t, tt.dateStr)
			assert.Equal(t, tt.wantYear, result.Year())
			assert.Equal(t, tt.wantMonth, result.Month())
			assert.Equal(t, tt.wantDay, result.Day())
			assert.Equal(t, time.UTC, result.Location())
		})
	}
}

func TestMustParseDateIn(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*60*60)

	result := MustParseDateIn(t, "2024-06-01", loc)

	assert.Equal(t, loc, result.Location())
	assert.Equal(t, 0, result.Hour())
	assert.Equal(t, "2024-05-31T17:00:00Z", result.UTC().Format(time.RFC3339))
}

func TestDatePtr(t *testing.T) {
	d := DatePtr(t, "2024-06-10")
	require.NotNil(t, d)
	assert.Equal(t, 10, d.Day())
}

func TestPtr(t *testing.T) {
	t.Run("string value", func(t *testing.T) {
		strVal := Ptr("JFK")
		require.NotNil(t, strVal)
		assert.Equal(t, "JFK", *strVal)
	})

	t.Run("float64 value", func(t *testing.T) {
		floatVal := Ptr(89.99)
		require.NotNil(t, floatVal)
		assert.Equal(t, 89.99, *floatVal)
	})

	t.Run("bool value", func(t *testing.T) {
		boolVal := Ptr(true)
		require.NotNil(t, boolVal)
		assert.True(t, *boolVal)
	})
}

func TestLoadTestJSON(t *testing.T) {
	tests := []struct {
		name      string
		filename  string
		wantCount int
	}{
		{name: "extended response", filename: "extended_response.json", wantCount: 2},
		{name: "basic response", filename: "basic_response.json", wantCount: 2},
		{name: "already normalized response", filename: "display_response.json", wantCount: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := LoadTestJSON(t, tt.filename)

			var records []map[string]interface{}
			require.NoError(t, json.Unmarshal(data, &records))
			assert.Len(t, records, tt.wantCount)
		})
	}
}
