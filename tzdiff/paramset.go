package main

import (
	"github.com/nickwells/param.mod/v6/param"
	"github.com/nickwells/param.mod/v6/paramset"
	"github.com/nickwells/verbose.mod/verbose"
	"github.com/nickwells/versionparams.mod/versionparams"
)

// makeParamSet generates the param set ready for parsing
func makeParamSet(prog *prog) *param.PSet {
	return paramset.NewOrPanic(
		verbose.AddParams,
		versionparams.AddParams,

		addParams(prog),

		addExamples,
		addRefs,

		SetGlobalConfigFile,
		SetConfigFile,

		param.SetProgramDescription(
			"This will show the time difference between a reference"+
				" location and each of a list of other locations."+
				"\n\n"+
				"You are first prompted for the reference location. If"+
				" you just press Enter the local timezone is used. Then"+
				" you enter the locations to compare, one per line,"+
				" finishing with a line containing just '"+finishInput+
				"'. The locations can also be given after the"+
				" parameters, following '"+param.DfltTerminalParam+"'."+
				"\n\n"+
				"Each location is looked up with a geocoding service to"+
				" find its coordinates and the timezone at those"+
				" coordinates is then found. A location that cannot be"+
				" found is shown as '"+invalidLocation+"'. If the"+
				" geocoding service times out the request is retried."+
				"\n\n"+
				"The difference is shown as hours, minutes and seconds"+
				" and is positive when the location is ahead of the"+
				" reference."),
	)
}
