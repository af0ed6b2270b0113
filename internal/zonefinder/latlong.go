package zonefinder

import (
	"errors"
	"fmt"

	"github.com/bradfitz/latlong"
)

// latlongNotReady is the zone name latlong returns if its tables are missing
const latlongNotReady = "tables not generated yet"

// Latlong is a Finder using the latlong grid
type Latlong struct{}

// ZoneName returns the name of the timezone at the coordinates
func (Latlong) ZoneName(lat, lng float64) (string, error) {
	name := latlong.LookupZoneName(lat, lng)

	switch name {
	case latlongNotReady:
		return "", errors.New("latlong: the zone tables are not initialised")
	case "":
		return "", fmt.Errorf("latlong: %w: (%.4f, %.4f)", ErrNoZone, lat, lng)
	}

	return name, nil
}
