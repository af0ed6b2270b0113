package callstack

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/nickwells/timer.mod/timer"
	"github.com/nickwells/verbose.mod/verbose"
)

const maxTagWidth = 30

// Stack used in conjunction with the timer and verbose packages this
// will report how long each operation took to run
type Stack struct {
	ShowTimings bool
	W           io.Writer

	stack []string
	total time.Duration
	count int
}

// writer returns the writer to report to
func (s *Stack) writer() io.Writer {
	if s.W == nil {
		return os.Stderr
	}

	return s.W
}

// reporting returns true if timings or verbose messages are wanted
func (s *Stack) reporting() bool {
	return s.ShowTimings || verbose.IsOn()
}

// Start records the start of an operation, prints the message if timings
// are being shown and returns the function to be called when the operation
// completes.
func (s *Stack) Start(tag, msg string) func() {
	s.stack = append(s.stack, tag)
	if !s.reporting() {
		return func() { s.popStack() }
	}

	fmt.Fprintln(s.writer(), s.Tag(), msg)

	return timer.Start(tag, s)
}

// Tag returns a stacked tag reflecting the current stack depth and
// right-filled.
func (s *Stack) Tag() string {
	if len(s.stack) == 0 {
		return strings.Repeat(".", maxTagWidth) + ":"
	}

	t := strings.Repeat("|    ", len(s.stack)-1) +
		s.stack[len(s.stack)-1]
	if len(t) < maxTagWidth {
		t += strings.Repeat(".", maxTagWidth-len(t))
	}

	return t + ":"
}

// popStack removes the last stack entry
func (s *Stack) popStack() {
	if len(s.stack) > 0 {
		s.stack = s.stack[:len(s.stack)-1]
	}
}

// Act satisfies the action function interface for a timer. It prints out the
// tag and the duration in milliseconds and adds the duration to the total
// for the outermost operations.
func (s *Stack) Act(_ string, d time.Duration) {
	tag := s.Tag()
	s.popStack()

	if len(s.stack) == 0 {
		s.total += d
		s.count++
	}

	fmt.Fprintf(s.writer(), "%s%12.3f msecs\n",
		tag, float64(d/time.Microsecond)/1000.0)
}

// Count returns the number of completed outermost operations which have
// been timed
func (s *Stack) Count() int {
	return s.count
}

// Total returns the combined time taken by the completed outermost
// operations which have been timed
func (s *Stack) Total() time.Duration {
	return s.total
}
