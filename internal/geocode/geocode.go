package geocode

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrNoMatch is returned when the place name cannot be found
	ErrNoMatch = errors.New("no matching place was found")
	// ErrTimedOut is wrapped by any error caused by a request timing out
	ErrTimedOut = errors.New("the geocoding request timed out")
)

// Point records the coordinates of a place
type Point struct {
	Lat float64
	Lng float64
}

// String returns the point formatted as a latitude, longitude pair
func (p Point) String() string {
	return fmt.Sprintf("(%.4f, %.4f)", p.Lat, p.Lng)
}

// Geocoder is the interface satisfied by anything which can turn a place
// name into a Point.
type Geocoder interface {
	Geocode(ctx context.Context, name string) (Point, error)
}
