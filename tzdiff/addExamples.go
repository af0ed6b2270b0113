package main

import "github.com/nickwells/param.mod/v6/param"

// addExamples adds examples to the usage message.
func addExamples(ps *param.PSet) error {
	ps.AddExample("tzdiff",
		"This will prompt for the reference location and then for the"+
			" locations to compare, finishing when you enter '"+
			finishInput+"'.")
	ps.AddExample("tzdiff -utc -- Tokyo Paris 'New York'",
		"This will show the time difference between UTC and each of"+
			" Tokyo, Paris and New York. You will not be prompted for"+
			" anything.")
	ps.AddExample("tzdiff -ref-zone Europe/London -plain -- Sydney",
		"This will show the time difference between London and Sydney"+
			" as plain columns rather than a bordered table.")
	ps.AddExample("tzdiff -show-timings -zone-finder latlong",
		"This will use the compact timezone grid to find the timezones"+
			" and will report how long each lookup took.")

	return nil
}
