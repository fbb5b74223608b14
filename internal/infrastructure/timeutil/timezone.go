// Package timeutil provides time-related utilities for testability and convenience.
package timeutil

import (
	"fmt"
	"strings"
	"sync"
	"time"

	// Zone names from SEARCH_TIMEZONE must resolve on hosts without tzdata.
	_ "time/tzdata"
)

// DateLayout is the calendar-day layout used on the wire and in forms.
const DateLayout = "2006-01-02"

// UTC is the zone name used when none is configured.
const UTC = "UTC"

// locationCache stores loaded locations by name.
var locationCache sync.Map

// GetLocation returns the named location, loading it once.
// An empty name means UTC.
func GetLocation(name string) (*time.Location, error) {
	if name == "" {
		name = UTC
	}

	if loc, ok := locationCache.Load(name); ok {
		return loc.(*time.Location), nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", name, err)
	}

	locationCache.Store(name, loc)
	return loc, nil
}

// MustGetLocation returns the named location or panics.
func MustGetLocation(name string) *time.Location {
	loc, err := GetLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// ParseDate parses a YYYY-MM-DD value as midnight in loc.
// Surrounding whitespace is ignored. A nil loc means UTC.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	return time.ParseInLocation(DateLayout, strings.TrimSpace(value), loc)
}

// FormatDate formats a time as YYYY-MM-DD in its own location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ClearLocationCache drops every cached location.
func ClearLocationCache() {
	locationCache.Range(func(key, _ interface{}) bool {
		locationCache.Delete(key)
		return true
	})
}
