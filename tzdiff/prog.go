package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/nickwells/english.mod/english"
	"github.com/nickwells/tempus.mod/tempus"
	"github.com/nickwells/tzdiff/internal/callstack"
	"github.com/nickwells/tzdiff/internal/geocode"
	"github.com/nickwells/tzdiff/internal/zonefinder"
	"github.com/nickwells/verbose.mod/verbose"
)

const (
	finishInput     = "q"
	invalidLocation = "Invalid location"
	maxLineLen      = 1024 * 1024

	promptReference = "Location for reference time" +
		" (Press Enter to use local time): "
	promptInvalid = "Invalid location. Enter again: "
	bannerCollect = "Enter locations line by line to compare timezone." +
		` Press "` + finishInput + `" to finish.`
)

// entry records a location to be compared with the reference and the
// formatted difference between them
type entry struct {
	name string
	zone *time.Location
	diff string
}

// prog holds program parameters and status
type prog struct {
	refZone     *time.Location
	tzNames     []string
	listTZNames bool

	geocoderURL string
	userAgent   string
	reqTimeout  time.Duration
	retryDelay  time.Duration
	maxAttempts int64
	zoneFinder  string

	tableStyle string

	locations []string

	stack callstack.Stack

	geocoder geocode.Geocoder
	finder   zonefinder.Finder
	now      func() time.Time
}

// newProg returns a new Prog instance with the default values set
func newProg() *prog {
	return &prog{
		tzNames:     tempus.TimezoneNames(),
		geocoderURL: geocode.DfltNominatimURL,
		userAgent:   geocode.DfltUserAgent,
		reqTimeout:  geocode.DfltTimeout,
		retryDelay:  geocode.DfltRetryDelay,
		zoneFinder:  zonefinder.NameTZF,
		tableStyle:  tableStyleBox,
	}
}

// listTimezoneNames displays the Timezone names
func (prog *prog) listTimezoneNames(w io.Writer) {
	for _, n := range prog.tzNames {
		fmt.Fprintln(w, n)
	}
}

// setup creates the geocoder and the zone finder from the parameters
func (prog *prog) setup() error {
	n, err := geocode.NewNominatim(
		geocode.BaseURL(prog.geocoderURL),
		geocode.UserAgent(prog.userAgent),
		geocode.Timeout(prog.reqTimeout))
	if err != nil {
		return err
	}

	prog.geocoder, err = geocode.NewRetrier(n,
		geocode.RetryDelay(prog.retryDelay),
		geocode.MaxAttempts(prog.maxAttempts))
	if err != nil {
		return err
	}

	prog.finder, err = zonefinder.New(prog.zoneFinder)

	return err
}

// timeNow returns the current time
func (prog *prog) timeNow() time.Time {
	if prog.now != nil {
		return prog.now()
	}

	return time.Now()
}

// lineReader reads lines of input, reporting whether a line was read
type lineReader struct {
	s *bufio.Scanner
}

// newLineReader returns a lineReader reading from r. Lines may be up to
// maxLineLen bytes long.
func newLineReader(r io.Reader) *lineReader {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineLen)

	return &lineReader{s: s}
}

// readLine returns the next line and true or, if the input is exhausted or
// cannot be read, an empty string and false.
func (lr *lineReader) readLine() (string, bool) {
	if !lr.s.Scan() {
		return "", false
	}

	return lr.s.Text(), true
}

// err returns the error, if any, which stopped the input being read. The
// end of the input is not an error.
func (lr *lineReader) err() error {
	if err := lr.s.Err(); err != nil {
		return fmt.Errorf("cannot read the input: %w", err)
	}

	return nil
}

// run prompts for the reference location, collects the locations to
// compare, calculates the differences and reports them.
func (prog *prog) run(ctx context.Context, in io.Reader, out io.Writer) error {
	lr := newLineReader(in)

	ref, err := prog.referenceZone(ctx, lr, out)
	if err != nil {
		return err
	}

	names := collectArgs(prog.locations)
	if len(names) == 0 {
		fmt.Fprintln(out, bannerCollect)

		names, err = collectLocations(lr)
		if err != nil {
			return err
		}
	}

	entries, err := prog.compare(ctx, ref, names)
	if err != nil {
		return err
	}

	return prog.report(out, entries)
}

// referenceZone returns the timezone to compare against. If it has been
// given as a parameter that is used, otherwise the user is prompted for a
// location until either one is found or an empty line is given, in which
// case the local timezone is used.
func (prog *prog) referenceZone(ctx context.Context,
	lr *lineReader, out io.Writer,
) (*time.Location, error) {
	if prog.refZone != nil {
		return prog.refZone, nil
	}

	fmt.Fprint(out, promptReference)

	name, _ := lr.readLine()
	for name != "" {
		loc, err := prog.locationZone(ctx, name)
		if err == nil {
			return loc, nil
		}

		if !errors.Is(err, geocode.ErrNoMatch) {
			return nil, err
		}

		fmt.Fprint(out, promptInvalid)

		name, _ = lr.readLine()
	}

	if err := lr.err(); err != nil {
		return nil, err
	}

	verbose.Println("reference: using the local timezone: ",
		time.Local.String())

	return time.Local, nil
}

// collectLocations reads location names until the finishInput line is read
// or the input is exhausted. Empty lines are skipped.
func collectLocations(lr *lineReader) ([]string, error) {
	names := []string{}

	for {
		name, ok := lr.readLine()
		if !ok {
			return names, lr.err()
		}

		if name == finishInput {
			return names, nil
		}

		if name == "" {
			continue
		}

		names = append(names, name)
	}
}

// collectArgs returns the non-empty location names from the program
// arguments
func collectArgs(args []string) []string {
	names := make([]string, 0, len(args))

	for _, a := range args {
		if a != "" {
			names = append(names, a)
		}
	}

	return names
}

// compare finds the timezone of each named location and records its
// difference from the reference timezone. Locations which cannot be found
// are marked as invalid.
func (prog *prog) compare(ctx context.Context,
	ref *time.Location, names []string,
) ([]entry, error) {
	entries := make([]entry, 0, len(names))
	invalidCount := 0

	for _, name := range names {
		e := entry{name: name, diff: invalidLocation}

		loc, err := prog.locationZone(ctx, name)

		switch {
		case errors.Is(err, geocode.ErrNoMatch):
			invalidCount++
		case err != nil:
			return nil, err
		default:
			e.zone = loc
			e.diff = formatDiff(offsetDiff(ref, loc, prog.timeNow()))
		}

		entries = append(entries, e)
	}

	verbose.Println("compared ", strconv.Itoa(len(entries)), " ",
		english.Plural("location", len(entries)),
		" (", strconv.Itoa(invalidCount), " invalid)")

	if n := prog.stack.Count(); n > 0 {
		verbose.Println("timed ", strconv.Itoa(n), " ",
			english.Plural("lookup", n),
			": total ", prog.stack.Total().String())
	}

	return entries, nil
}
