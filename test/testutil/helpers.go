// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/flight-search/flight-search-console/internal/infrastructure/timeutil"
)

// LoadTestJSON loads a JSON file from the test/testdata directory.
func LoadTestJSON(t *testing.T, filename string) []byte {
	t.Helper()

	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}

	// testutil lives in test/testutil
	projectRoot := filepath.Join(filepath.Dir(currentFile), "..", "..")
	testDataPath := filepath.Join(projectRoot, "test", "testdata", filename)

	data, err := os.ReadFile(testDataPath)
	if err != nil {
		t.Fatalf("Failed to load test file %s: %v", filename, err)
	}
	return data
}

// MustParseDate parses a YYYY-MM-DD date at midnight UTC.
// It fails the test if parsing fails.
func MustParseDate(t *testing.T, dateStr string) time.Time {
	t.Helper()
	return MustParseDateIn(t, dateStr, time.UTC)
}

// MustParseDateIn parses a YYYY-MM-DD date at midnight in loc.
func MustParseDateIn(t *testing.T, dateStr string, loc *time.Location) time.Time {
	t.Helper()
	parsed, err := timeutil.ParseDate(dateStr, loc)
	if err != nil {
		t.Fatalf("Failed to parse date %s: %v", dateStr, err)
	}
	return parsed
}

// DatePtr parses a YYYY-MM-DD date and returns a pointer to it.
func DatePtr(t *testing.T, dateStr string) *time.Time {
	t.Helper()
	d := MustParseDate(t, dateStr)
	return &d
}

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}
