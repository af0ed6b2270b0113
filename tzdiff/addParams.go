package main

import (
	"fmt"
	"time"

	"github.com/nickwells/check.mod/v2/check"
	"github.com/nickwells/location.mod/location"
	"github.com/nickwells/param.mod/v6/paction"
	"github.com/nickwells/param.mod/v6/param"
	"github.com/nickwells/param.mod/v6/psetter"
	"github.com/nickwells/tzdiff/internal/stdparams"
	"github.com/nickwells/tzdiff/internal/zonefinder"
)

const (
	paramNameRefZone           = "reference-zone"
	paramNameRefUTC            = "utc"
	paramNameListTimezoneNames = "list-timezone-names"
	paramNameGeocoderURL       = "geocoder-url"
	paramNameUserAgent         = "user-agent"
	paramNameRequestTimeout    = "request-timeout"
	paramNameRetryDelay        = "retry-delay"
	paramNameMaxAttempts       = "max-attempts"
	paramNameZoneFinder        = "zone-finder"
	paramNameTableStyle        = "table-style"
	paramNamePlain             = "plain"

	groupNameTimezone = param.DfltGroupName + "-timezone"
	groupNameGeocoder = param.DfltGroupName + "-geocoder"
	groupNameOutput   = param.DfltGroupName + "-output"
)

// setRefZone returns an action func that will set the reference timezone
func setRefZone(prog *prog, zone *time.Location) param.ActionFunc {
	return func(_ location.L, _ *param.ByName, _ []string) error {
		prog.refZone = zone

		return nil
	}
}

// addParams adds the parameters for this program
func addParams(prog *prog) param.PSetOptFunc {
	return func(ps *param.PSet) error {
		if err := addTimezoneParams(prog)(ps); err != nil {
			return err
		}

		if err := addGeocoderParams(prog)(ps); err != nil {
			return err
		}

		if err := addOutputParams(prog)(ps); err != nil {
			return err
		}

		stdparams.AddTiming(ps, &prog.stack)

		// allow trailing arguments: the locations to compare
		return ps.SetRemHandler(param.NullRemHandler{})
	}
}

// addTimezoneParams adds the parameters controlling the reference timezone
func addTimezoneParams(prog *prog) param.PSetOptFunc {
	return func(ps *param.PSet) error {
		ps.AddGroup(groupNameTimezone, "reference timezone parameters\n\n"+
			"These let you give the reference timezone directly rather"+
			" than being prompted for a location")

		var refCounter paction.Counter

		refCounterAF := (&refCounter).MakeActionFunc()

		refZoneParam := ps.Add(paramNameRefZone,
			psetter.TimeLocation{Value: &prog.refZone, Locations: prog.tzNames},
			"the timezone against which the locations are compared."+
				" If this is given you will not be prompted for a"+
				" reference location",
			param.AltNames("ref-zone", "ref-tz"),
			param.GroupName(groupNameTimezone),
			param.PostAction(refCounterAF),
		)

		ps.Add(paramNameRefUTC, psetter.Nil{},
			"compare the locations against UTC."+
				" You will not be prompted for a reference location",
			param.AltNames("ref-utc"),
			param.GroupName(groupNameTimezone),
			param.PostAction(refCounterAF),
			param.PostAction(setRefZone(prog, time.UTC)),
		)

		if len(prog.tzNames) > 0 {
			ps.Add(paramNameListTimezoneNames,
				psetter.Bool{Value: &prog.listTZNames},
				"list all the available timezones",
				param.Attrs(param.CommandLineOnly|param.DontShowInStdUsage),
				param.AltNames("list-tz-names", "list-timezones"),
				param.GroupName(groupNameTimezone))

			err := param.SeeAlso(paramNameListTimezoneNames)(refZoneParam)
			if err != nil {
				return err
			}
		}

		ps.AddFinalCheck(func() error {
			if refCounter.Count() > 1 {
				return fmt.Errorf(
					"the reference timezone has been set more than once: %s",
					refCounter.SetBy())
			}

			return nil
		})

		return nil
	}
}

// addGeocoderParams adds the parameters controlling how locations are
// found
func addGeocoderParams(prog *prog) param.PSetOptFunc {
	return func(ps *param.PSet) error {
		ps.AddGroup(groupNameGeocoder, "location lookup parameters\n\n"+
			"These control how place names are turned into timezones")

		ps.Add(paramNameGeocoderURL,
			psetter.String[string]{
				Value: &prog.geocoderURL,
				Checks: []check.String{
					check.StringLength[string](check.ValGT(0)),
				},
			},
			"the address of the Nominatim search service used to find"+
				" the coordinates of each location",
			param.AltNames("geocoder"),
			param.GroupName(groupNameGeocoder),
			param.Attrs(param.DontShowInStdUsage),
		)

		ps.Add(paramNameUserAgent,
			psetter.String[string]{
				Value: &prog.userAgent,
				Checks: []check.String{
					check.StringLength[string](check.ValGT(0)),
				},
			},
			"the User-Agent to give when querying the geocoder."+
				" The Nominatim usage policy requires that this"+
				" identifies the application",
			param.AltNames("ua"),
			param.GroupName(groupNameGeocoder),
			param.Attrs(param.DontShowInStdUsage),
		)

		ps.Add(paramNameRequestTimeout,
			psetter.Duration{Value: &prog.reqTimeout},
			"the time to wait for the geocoder to respond before"+
				" treating the request as timed out",
			param.AltNames("timeout"),
			param.GroupName(groupNameGeocoder),
		)

		ps.Add(paramNameRetryDelay,
			psetter.Duration{Value: &prog.retryDelay},
			"the time to wait after a geocoder request has timed out"+
				" before trying again",
			param.GroupName(groupNameGeocoder),
		)

		ps.Add(paramNameMaxAttempts,
			psetter.Int[int64]{
				Value: &prog.maxAttempts,
				Checks: []check.Int64{
					check.ValGE[int64](0),
				},
			},
			"the maximum number of times to make a geocoder request"+
				" which keeps timing out. A value of 0 means that the"+
				" request is retried until it succeeds",
			param.AltNames("attempts"),
			param.GroupName(groupNameGeocoder),
		)

		ps.Add(paramNameZoneFinder,
			psetter.Enum[string]{
				Value: &prog.zoneFinder,
				AllowedVals: psetter.AllowedVals[string]{
					zonefinder.NameTZF: "use the timezone boundary" +
						" polygons. This is the more accurate",
					zonefinder.NameLatlong: "use a compact grid of" +
						" timezones. This is quicker to load but may be" +
						" wrong close to a timezone boundary",
				},
			},
			"how to find the timezone at a location's coordinates",
			param.GroupName(groupNameGeocoder),
		)

		ps.AddFinalCheck(func() error {
			if prog.reqTimeout <= 0 {
				return fmt.Errorf("the %q (%s) must be greater than zero",
					paramNameRequestTimeout, prog.reqTimeout)
			}

			if prog.retryDelay <= 0 {
				return fmt.Errorf("the %q (%s) must be greater than zero",
					paramNameRetryDelay, prog.retryDelay)
			}

			return nil
		})

		return nil
	}
}

// addOutputParams adds the parameters controlling the results table
func addOutputParams(prog *prog) param.PSetOptFunc {
	return func(ps *param.PSet) error {
		ps.AddGroup(groupNameOutput, "output parameters")

		ps.Add(paramNameTableStyle,
			psetter.Enum[string]{
				Value: &prog.tableStyle,
				AllowedVals: psetter.AllowedVals[string]{
					tableStyleBox:     "show the results in a bordered table",
					tableStyleColumns: "show the results in plain columns",
				},
			},
			"how the table of results should be shown",
			param.AltNames("style"),
			param.GroupName(groupNameOutput),
		)

		ps.Add(paramNamePlain, psetter.Nil{},
			"show the results in plain columns."+
				" This is the same as giving '-"+paramNameTableStyle+
				" "+tableStyleColumns+"'",
			param.GroupName(groupNameOutput),
			param.PostAction(
				paction.SetVal(&prog.tableStyle, tableStyleColumns)),
		)

		return nil
	}
}
