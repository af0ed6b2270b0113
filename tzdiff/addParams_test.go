package main

import (
	"errors"
	"testing"
	"time"

	"github.com/nickwells/errutil.mod/errutil"
	"github.com/nickwells/param.mod/v6/paramset"
	"github.com/nickwells/param.mod/v6/paramtest"
	"github.com/nickwells/testhelper.mod/v2/testhelper"
	"github.com/nickwells/tzdiff/internal/zonefinder"
)

// cmpProgStruct compares the value with the expected value and returns
// an error if they differ
func cmpProgStruct(iVal, iExpVal any) error {
	val, ok := iVal.(*prog)
	if !ok {
		return errors.New("Bad value: not a pointer to a Prog struct")
	}

	expVal, ok := iExpVal.(*prog)
	if !ok {
		return errors.New("Bad expected value: not a pointer to a Prog struct")
	}

	return testhelper.DiffVals(val, expVal,
		[]string{"tzNames"}, // ignore the list of available timezones
	)
}

// mkTestParser populates and returns a paramtest.Parser ready to be added to
// the testcases.
func mkTestParser(
	errs errutil.ErrMap, id testhelper.ID,
	progSetter func(prog *prog),
	args ...string,
) paramtest.Parser {
	actVal := newProg()
	ps := paramset.NewNoHelpNoExitNoErrRptOrPanic(
		addParams(actVal),
	)

	expVal := newProg()
	if progSetter != nil {
		progSetter(expVal)
	}

	return paramtest.Parser{
		ID:             id,
		ExpParseErrors: errs,
		Val:            actVal,
		Ps:             ps,
		ExpVal:         expVal,
		Args:           args,
		CheckFunc:      cmpProgStruct,
	}
}

func TestParseParams(t *testing.T) {
	testCases := []paramtest.Parser{}

	testCases = append(testCases,
		mkTestParser(nil, testhelper.MkID("good: no params, no change"),
			nil))

	testCases = append(testCases,
		mkTestParser(nil, testhelper.MkID("good: utc"),
			func(prog *prog) { prog.refZone = time.UTC },
			"-"+paramNameRefUTC))

	testCases = append(testCases,
		mkTestParser(nil, testhelper.MkID("good: plain"),
			func(prog *prog) { prog.tableStyle = tableStyleColumns },
			"-"+paramNamePlain))

	testCases = append(testCases,
		mkTestParser(nil, testhelper.MkID("good: table-style columns"),
			func(prog *prog) { prog.tableStyle = tableStyleColumns },
			"-"+paramNameTableStyle, tableStyleColumns))

	testCases = append(testCases,
		mkTestParser(nil, testhelper.MkID("good: zone-finder latlong"),
			func(prog *prog) { prog.zoneFinder = zonefinder.NameLatlong },
			"-"+paramNameZoneFinder, zonefinder.NameLatlong))

	testCases = append(testCases,
		mkTestParser(nil, testhelper.MkID("good: max-attempts"),
			func(prog *prog) { prog.maxAttempts = 3 },
			"-"+paramNameMaxAttempts, "3"))

	testCases = append(testCases,
		mkTestParser(nil, testhelper.MkID("good: geocoder settings"),
			func(prog *prog) {
				prog.geocoderURL = "http://localhost:8080/search"
				prog.userAgent = "tzdiff-test"
			},
			"-"+paramNameGeocoderURL, "http://localhost:8080/search",
			"-"+paramNameUserAgent, "tzdiff-test"))

	testCases = append(testCases,
		mkTestParser(nil, testhelper.MkID("good: durations"),
			func(prog *prog) {
				prog.reqTimeout = 3 * time.Second
				prog.retryDelay = 500 * time.Millisecond
			},
			"-"+paramNameRequestTimeout, "3s",
			"-"+paramNameRetryDelay, "500ms"))

	{
		parseErrs := errutil.ErrMap{}
		parseErrs.AddError(
			paramNameTableStyle,
			errors.New(`value is not allowed: "nonesuch"`+"\n"+
				"At: [command line]:"+
				` Supplied Parameter:2: "-table-style" "nonesuch"`))

		testCases = append(testCases,
			mkTestParser(parseErrs, testhelper.MkID("bad: table-style"),
				nil,
				"-"+paramNameTableStyle, "nonesuch"))
	}

	{
		parseErrs := errutil.ErrMap{}
		parseErrs.AddError(
			paramNameZoneFinder,
			errors.New(`value is not allowed: "nonesuch"`+"\n"+
				"At: [command line]:"+
				` Supplied Parameter:2: "-zone-finder" "nonesuch"`))

		testCases = append(testCases,
			mkTestParser(parseErrs, testhelper.MkID("bad: zone-finder"),
				nil,
				"-"+paramNameZoneFinder, "nonesuch"))
	}

	for _, tc := range testCases {
		_ = tc.Test(t)
	}
}
