package main

import (
	"context"
	"fmt"
	"time"

	"github.com/nickwells/tzdiff/internal/geocode"
	"github.com/nickwells/verbose.mod/verbose"
)

// locationZone geocodes the named location and returns the timezone in
// force there. If the name cannot be found the error will wrap
// geocode.ErrNoMatch.
func (prog *prog) locationZone(ctx context.Context, name string,
) (*time.Location, error) {
	defer prog.stack.Start("lookup", "Looking up: "+name)()

	p, err := prog.geocode(ctx, name)
	if err != nil {
		return nil, err
	}

	zoneName, err := prog.findZone(name, p.Lat, p.Lng)
	if err != nil {
		return nil, err
	}

	loc, err := time.LoadLocation(zoneName)
	if err != nil {
		return nil, fmt.Errorf("cannot load the timezone for %q (%s): %w",
			name, zoneName, err)
	}

	verbose.Println("location: ", name, " ", p.String(), " => ", zoneName)

	return loc, nil
}

// geocode times the geocoding of the named location
func (prog *prog) geocode(ctx context.Context, name string,
) (geocode.Point, error) {
	defer prog.stack.Start("geocode", "Geocoding: "+name)()

	return prog.geocoder.Geocode(ctx, name)
}

// findZone times the finding of the timezone at the coordinates
func (prog *prog) findZone(name string, lat, lng float64) (string, error) {
	defer prog.stack.Start("find-zone", "Finding the timezone")()

	zoneName, err := prog.finder.ZoneName(lat, lng)
	if err != nil {
		return "", fmt.Errorf("cannot find the timezone for %q: %w", name, err)
	}

	return zoneName, nil
}
