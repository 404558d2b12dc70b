// Package tzlookup maps coordinates to IANA timezone names using tzf's
// embedded timezone shapes.
package tzlookup

import (
	"fmt"
	"sync"

	"github.com/ringsaturn/tzf"
)

// Finder resolves a coordinate pair to an IANA timezone name such as
// "Europe/London". An empty string means no timezone covers the point.
type Finder interface {
	TimezoneAt(longitude, latitude float64) string
}

var (
	defaultOnce   sync.Once
	defaultFinder tzf.F
	defaultErr    error
)

// tzfFinder adapts a tzf.F to the Finder interface.
type tzfFinder struct {
	f tzf.F
}

func (t *tzfFinder) TimezoneAt(longitude, latitude float64) string {
	return t.f.GetTimezoneName(longitude, latitude)
}

// New returns a Finder backed by tzf's default data set. Building the
// finder parses the embedded polygon data, so the underlying instance is
// created once and shared; it is immutable and safe for concurrent use.
func New() (Finder, error) {
	defaultOnce.Do(func() {
		defaultFinder, defaultErr = tzf.NewDefaultFinder()
	})
	if defaultErr != nil {
		return nil, fmt.Errorf("tzlookup: initializing finder: %w", defaultErr)
	}
	return &tzfFinder{f: defaultFinder}, nil
}
