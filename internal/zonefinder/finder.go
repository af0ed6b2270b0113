/*
The zonefinder package maps coordinates to the name of the IANA timezone in
force at that place. Two implementations are provided: one using the tzf
package, which works from the timezone boundary polygons, and one using the
latlong package, which uses a compact pre-computed grid.
*/
package zonefinder

import (
	"errors"
	"fmt"
)

const (
	// NameTZF names the Finder based on github.com/ringsaturn/tzf
	NameTZF = "tzf"
	// NameLatlong names the Finder based on github.com/bradfitz/latlong
	NameLatlong = "latlong"
)

// ErrNoZone is returned when no timezone covers the coordinates
var ErrNoZone = errors.New("no timezone was found for the coordinates")

// Finder is the interface satisfied by anything which can name the
// timezone at a given latitude and longitude.
type Finder interface {
	ZoneName(lat, lng float64) (string, error)
}

// New returns the named Finder
func New(name string) (Finder, error) {
	switch name {
	case NameTZF:
		return NewTZF()
	case NameLatlong:
		return Latlong{}, nil
	}

	return nil, fmt.Errorf("unknown timezone finder: %q", name)
}
