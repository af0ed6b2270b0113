package zonefinder

import (
	"fmt"

	"github.com/ringsaturn/tzf"
)

// TZF is a Finder using the tzf timezone polygons
type TZF struct {
	f tzf.F
}

// NewTZF loads the default tzf data and returns the Finder
func NewTZF() (*TZF, error) {
	f, err := tzf.NewDefaultFinder()
	if err != nil {
		return nil, fmt.Errorf("cannot load the tzf timezone data: %w", err)
	}

	return &TZF{f: f}, nil
}

// ZoneName returns the name of the timezone at the coordinates
func (t *TZF) ZoneName(lat, lng float64) (string, error) {
	name := t.f.GetTimezoneName(lng, lat)
	if name == "" {
		return "", fmt.Errorf("tzf: %w: (%.4f, %.4f)", ErrNoZone, lat, lng)
	}

	return name, nil
}
