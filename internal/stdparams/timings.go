package stdparams

import (
	"github.com/nickwells/param.mod/v6/param"
	"github.com/nickwells/param.mod/v6/psetter"
	"github.com/nickwells/tzdiff/internal/callstack"
)

// AddTiming adds the show-timings parameter used to set the ShowTimings
// field in a callstack.Stack struct
func AddTiming(
	ps *param.PSet,
	cs *callstack.Stack,
	opt ...param.OptFunc,
) *param.ByName {
	opt = append(opt,
		param.Attrs(param.DontShowInStdUsage|param.CommandLineOnly),
		param.AltNames("show-timing", "show-times"))

	return ps.Add("show-timings", psetter.Bool{Value: &cs.ShowTimings},
		"report the time taken to look up each location."+
			" The timings are written to standard error.",
		opt...)
}
