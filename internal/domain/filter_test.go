package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterName_IsValid(t *testing.T) {
	tests := []struct {
		name FilterName
		want bool
	}{
		{FilterOrigin, true},
		{FilterDestination, true},
		{FilterScale, true},
		{FilterAirline, true},
		{FilterMaxPrice, true},
		{FilterName("price"), false},
		{FilterName(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.name), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.name.IsValid())
		})
	}
}

func TestParseVariant(t *testing.T) {
	tests := []struct {
		input string
		want  Variant
	}{
		{"basic", VariantBasic},
		{"BASIC", VariantBasic},
		{" extended ", VariantExtended},
		{"", VariantExtended},
		{"unknown", VariantExtended},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseVariant(tt.input))
		})
	}
}

func TestVariant_Supports(t *testing.T) {
	assert.True(t, VariantBasic.Supports(FilterMaxPrice))
	assert.False(t, VariantBasic.Supports(FilterScale))
	assert.False(t, VariantBasic.Supports(FilterAirline))

	assert.True(t, VariantExtended.Supports(FilterScale))
	assert.True(t, VariantExtended.Supports(FilterAirline))
	assert.False(t, VariantExtended.Supports(FilterMaxPrice))

	assert.Equal(t,
		[]FilterName{FilterOrigin, FilterDestination, FilterScale, FilterAirline},
		VariantExtended.Filters())
}

func TestVariant_FiltersReturnsCopy(t *testing.T) {
	names := VariantBasic.Filters()
	names[0] = FilterAirline

	assert.Equal(t, FilterOrigin, VariantBasic.Filters()[0])
}

func TestFilterSet_WithDoesNotMutate(t *testing.T) {
	original := FilterSet{FilterOrigin: true}

	updated := original.With(FilterAirline, true)

	assert.True(t, updated.Enabled(FilterAirline))
	assert.True(t, updated.Enabled(FilterOrigin))
	assert.False(t, original.Enabled(FilterAirline))
	assert.Len(t, original, 1)
}

func TestFilterSet_NilIsUsable(t *testing.T) {
	var fs FilterSet

	assert.False(t, fs.Enabled(FilterOrigin))
	assert.True(t, fs.With(FilterOrigin, true).Enabled(FilterOrigin))
	assert.NotNil(t, fs.Clone())
}

func TestFilters_Toggle(t *testing.T) {
	tests := []struct {
		name      string
		filter    FilterName
		checked   bool
		wantScale bool
	}{
		{name: "scale on sets value", filter: FilterScale, checked: true, wantScale: true},
		{name: "scale off clears value", filter: FilterScale, checked: false, wantScale: false},
		{name: "origin leaves scale value", filter: FilterOrigin, checked: true, wantScale: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Filters{}.Toggle(tt.filter, tt.checked)

			assert.Equal(t, tt.checked, f.Enabled.Enabled(tt.filter))
			assert.Equal(t, tt.wantScale, f.Values.Scale)
		})
	}
}

func TestFilters_SetValue(t *testing.T) {
	f := Filters{}.
		SetValue(FilterOrigin, "JFK").
		SetValue(FilterDestination, "LAX").
		SetValue(FilterAirline, "Iberia").
		SetValue(FilterMaxPrice, "250.5").
		SetValue(FilterScale, "ignored")

	assert.Equal(t, FilterValues{
		Origin:      "JFK",
		Destination: "LAX",
		Airline:     "Iberia",
		MaxPrice:    "250.5",
	}, f.Values)

	// Setting a value never enables the filter.
	assert.False(t, f.Enabled.Enabled(FilterOrigin))
}
