package travelbuddy

import (
	"context"

	"github.com/dhamidi/travelbuddy/geocode"
	"github.com/dhamidi/travelbuddy/weather"
)

// fakeGeocoder returns a fixed location, or nil when the place is not in
// its table.
type fakeGeocoder struct {
	locations map[string]*geocode.Location
	err       error
}

func (f *fakeGeocoder) Geocode(_ context.Context, place string) (*geocode.Location, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.locations[place], nil
}

// fakeWeather returns canned conditions or a canned error.
type fakeWeather struct {
	current *weather.CurrentWeather
	err     error
}

func (f *fakeWeather) Current(_ context.Context, _, _ float64) (*weather.CurrentWeather, error) {
	return f.current, f.err
}

// fakeFinder returns a fixed zone name for every coordinate.
type fakeFinder struct {
	zone string
}

func (f *fakeFinder) TimezoneAt(_, _ float64) string { return f.zone }

func londonGeocoder() *fakeGeocoder {
	return &fakeGeocoder{locations: map[string]*geocode.Location{
		"London": {Latitude: 51.5074, Longitude: -0.1278, DisplayName: "London, United Kingdom"},
	}}
}
