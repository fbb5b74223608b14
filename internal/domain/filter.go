package domain

import "strings"

// FilterName identifies one of the optional search filters.
type FilterName string

// Available filters.
const (
	FilterOrigin      FilterName = "origin"
	FilterDestination FilterName = "destination"
	FilterScale       FilterName = "scale"
	FilterAirline     FilterName = "airline"
	FilterMaxPrice    FilterName = "maxPrice"
)

// IsValid checks if the filter name is one of the known filters.
func (f FilterName) IsValid() bool {
	switch f {
	case FilterOrigin, FilterDestination, FilterScale, FilterAirline, FilterMaxPrice:
		return true
	default:
		return false
	}
}

// Variant selects which record shape and filter set the console works with.
type Variant string

// Supported variants.
const (
	// VariantBasic works with {origin, destination, date, price} records and
	// offers the origin, destination and maxPrice filters.
	VariantBasic Variant = "basic"

	// VariantExtended works with the full record and offers the origin,
	// destination, scale and airline filters.
	VariantExtended Variant = "extended"
)

var variantFilters = map[Variant][]FilterName{
	VariantBasic:    {FilterOrigin, FilterDestination, FilterMaxPrice},
	VariantExtended: {FilterOrigin, FilterDestination, FilterScale, FilterAirline},
}

// IsValid checks if the variant is supported.
func (v Variant) IsValid() bool {
	_, ok := variantFilters[v]
	return ok
}

// Filters returns the filters offered by the variant, in form order.
func (v Variant) Filters() []FilterName {
	names := variantFilters[v]
	out := make([]FilterName, len(names))
	copy(out, names)
	return out
}

// Supports reports whether the variant offers the given filter.
func (v Variant) Supports(name FilterName) bool {
	for _, n := range variantFilters[v] {
		if n == name {
			return true
		}
	}
	return false
}

// ParseVariant converts a string to a Variant.
// Returns VariantExtended if the string is empty or unknown.
func ParseVariant(s string) Variant {
	v := Variant(strings.ToLower(strings.TrimSpace(s)))
	if v.IsValid() {
		return v
	}
	return VariantExtended
}

// FilterSet holds the enabled flag of each filter.
// A missing entry means the filter is disabled.
type FilterSet map[FilterName]bool

// Enabled reports whether the filter is switched on.
func (fs FilterSet) Enabled(name FilterName) bool {
	return fs[name]
}

// With returns a copy of the set with the filter's flag changed.
func (fs FilterSet) With(name FilterName, enabled bool) FilterSet {
	out := fs.Clone()
	out[name] = enabled
	return out
}

// Clone returns an independent copy of the set. A nil set clones to an
// empty one.
func (fs FilterSet) Clone() FilterSet {
	out := make(FilterSet, len(fs)+1)
	for k, v := range fs {
		out[k] = v
	}
	return out
}

// FilterValues holds the user input for each filter.
type FilterValues struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Airline     string `json:"airline"`

	// MaxPrice is kept as typed; it is parsed when the query is built
	MaxPrice string `json:"maxPrice"`

	// Scale mirrors the stopover checkbox
	Scale bool `json:"scale"`
}

// With returns a copy of the values with the text input of a filter changed.
// The scale filter has no text input and is left untouched.
func (fv FilterValues) With(name FilterName, value string) FilterValues {
	switch name {
	case FilterOrigin:
		fv.Origin = value
	case FilterDestination:
		fv.Destination = value
	case FilterAirline:
		fv.Airline = value
	case FilterMaxPrice:
		fv.MaxPrice = value
	}
	return fv
}

// Filters pairs the enabled flags with the input values.
type Filters struct {
	Enabled FilterSet    `json:"enabled"`
	Values  FilterValues `json:"values"`
}

// Toggle returns a copy with the filter switched on or off.
// Toggling the scale filter also sets its value, since the checkbox is both
// the switch and the input.
func (f Filters) Toggle(name FilterName, checked bool) Filters {
	f.Enabled = f.Enabled.With(name, checked)
	if name == FilterScale {
		f.Values.Scale = checked
	}
	return f
}

// SetValue returns a copy with the text input of a filter changed.
func (f Filters) SetValue(name FilterName, value string) Filters {
	f.Values = f.Values.With(name, value)
	return f
}
