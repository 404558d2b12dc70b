// Package travelinfo serves the static travel guide behind the
// get_travel_info tool: power outlets, local customs, and transportation
// notes for a handful of cities.
package travelinfo

import (
	"fmt"
	"strings"
)

// Entry is a single fact category for a city. Entries are kept as an
// ordered slice rather than a map because approximate matching picks the
// first entry that matches, in table order.
type Entry struct {
	Key  string
	Fact string
}

// Guide is an immutable lookup table from lower-cased city names to their
// fact entries. Build it once at startup; concurrent readers need no
// locking.
type Guide struct {
	cities map[string][]Entry
}

// UnknownCityError reports a city the guide has no entries for.
type UnknownCityError struct {
	City string
}

func (e *UnknownCityError) Error() string {
	return fmt.Sprintf("travelinfo: no entries for city %q", e.City)
}

// UnknownCategoryError reports a fact category that matched nothing for a
// known city. Available holds the city's category keys in table order.
type UnknownCategoryError struct {
	City      string
	InfoType  string
	Available []string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("travelinfo: no category matching %q for city %q", e.InfoType, e.City)
}

// New builds a Guide from a city table. City names are stored lower-cased;
// entry keys are expected to be lower-case already.
func New(cities map[string][]Entry) *Guide {
	normalized := make(map[string][]Entry, len(cities))
	for city, entries := range cities {
		normalized[strings.ToLower(city)] = entries
	}
	return &Guide{cities: normalized}
}

// Lookup finds the fact for infoType in city. City and category matching is
// case-insensitive. When infoType matches no key exactly, the entries are
// scanned in table order and the first key that contains infoType, or is
// contained in it, wins; there is no ranking beyond that.
func (g *Guide) Lookup(city, infoType string) (string, error) {
	entries, ok := g.cities[strings.ToLower(city)]
	if !ok {
		return "", &UnknownCityError{City: city}
	}

	want := strings.ToLower(infoType)
	for _, entry := range entries {
		if entry.Key == want {
			return entry.Fact, nil
		}
	}

	for _, entry := range entries {
		if strings.Contains(entry.Key, want) || strings.Contains(want, entry.Key) {
			return entry.Fact, nil
		}
	}

	return "", &UnknownCategoryError{
		City:      city,
		InfoType:  infoType,
		Available: g.Categories(city),
	}
}

// Categories returns the category keys for city in table order, or nil for
// an unknown city.
func (g *Guide) Categories(city string) []string {
	entries, ok := g.cities[strings.ToLower(city)]
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(entries))
	for _, entry := range entries {
		keys = append(keys, entry.Key)
	}
	return keys
}

// HasCity reports whether the guide covers city (case-insensitive).
func (g *Guide) HasCity(city string) bool {
	_, ok := g.cities[strings.ToLower(city)]
	return ok
}
