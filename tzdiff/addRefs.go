package main

import "github.com/nickwells/param.mod/v6/param"

func addRefs(ps *param.PSet) error {
	ps.AddReference("Nominatim",
		"The geocoding service used to find the coordinates of each"+
			" location. The public service has a usage policy which"+
			" limits you to one request per second and requires a"+
			" User-Agent identifying the application. See"+
			" https://operations.osmfoundation.org/policies/nominatim/"+
			"\n\n"+
			"You can run your own instance and give its address with"+
			" the '"+paramNameGeocoderURL+"' parameter.")
	ps.AddReference("tzf",
		"The library used by default to find the timezone at a pair of"+
			" coordinates. It uses the timezone boundary polygons. See"+
			" https://github.com/ringsaturn/tzf")
	ps.AddReference("latlong",
		"An alternative library for finding the timezone at a pair of"+
			" coordinates. It uses a small pre-computed grid. See"+
			" https://github.com/bradfitz/latlong")

	return nil
}
