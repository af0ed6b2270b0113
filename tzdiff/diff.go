package main

import (
	"fmt"
	"time"
)

// offsetDiff returns the UTC offset of loc less that of ref at the given
// time. A positive value means that loc is ahead of ref.
func offsetDiff(ref, loc *time.Location, now time.Time) time.Duration {
	_, refOffset := now.In(ref).Zone()
	_, locOffset := now.In(loc).Zone()

	return time.Duration(locOffset-refOffset) * time.Second
}

// formatDiff returns the difference as a signed H:MM:SS string. A zero
// difference is shown as "0".
func formatDiff(d time.Duration) string {
	switch {
	case d == 0:
		return "0"
	case d < 0:
		return "-" + formatHMS(-d)
	}

	return "+" + formatHMS(d)
}

// formatHMS formats the (non-negative) duration as hours, minutes and
// seconds. The hours are not padded and are not folded into days.
func formatHMS(d time.Duration) string {
	d = d.Truncate(time.Second)

	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	return fmt.Sprintf("%d:%02d:%02d", int64(h), int64(m), int64(s))
}
