package geocode

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/nickwells/english.mod/english"
	"github.com/nickwells/verbose.mod/verbose"
)

// DfltRetryDelay is the time to wait after a timeout before trying again
const DfltRetryDelay = 5 * time.Second

// Retrier is a Geocoder which wraps another Geocoder and repeats any request
// which times out. Other errors, including ErrNoMatch, are returned
// immediately.
//
// By default there is no limit on the number of attempts.
type Retrier struct {
	g           Geocoder
	delay       time.Duration
	maxAttempts int64
	timer       backoff.Timer
}

// RetrierOpt is the type of an option func used to configure a Retrier
type RetrierOpt func(r *Retrier) error

// RetryDelay returns an option func which sets the wait between attempts
func RetryDelay(d time.Duration) RetrierOpt {
	return func(r *Retrier) error {
		if d <= 0 {
			return fmt.Errorf("the retry delay (%s) must be positive", d)
		}

		r.delay = d

		return nil
	}
}

// MaxAttempts returns an option func which limits the number of attempts
// made. A value of zero means there is no limit.
func MaxAttempts(n int64) RetrierOpt {
	return func(r *Retrier) error {
		if n < 0 {
			return fmt.Errorf("the maximum number of attempts (%d)"+
				" must not be negative", n)
		}

		r.maxAttempts = n

		return nil
	}
}

// RetryTimer returns an option func which replaces the timer used to wait
// between attempts.
func RetryTimer(t backoff.Timer) RetrierOpt {
	return func(r *Retrier) error {
		if t == nil {
			return errors.New("the retry timer must not be nil")
		}

		r.timer = t

		return nil
	}
}

// NewRetrier returns a Retrier wrapping the given Geocoder
func NewRetrier(g Geocoder, opts ...RetrierOpt) (*Retrier, error) {
	if g == nil {
		return nil, errors.New("the Geocoder to retry must not be nil")
	}

	r := &Retrier{
		g:     g,
		delay: DfltRetryDelay,
	}

	for _, o := range opts {
		if err := o(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// backOff returns the retry policy: a constant delay between attempts,
// bounded by the maximum number of attempts if one is set, and stopping
// when the context is done.
func (r *Retrier) backOff(ctx context.Context) backoff.BackOffContext {
	var b backoff.BackOff = backoff.NewConstantBackOff(r.delay)
	if r.maxAttempts > 0 {
		b = backoff.WithMaxRetries(b, uint64(r.maxAttempts-1))
	}

	return backoff.WithContext(b, ctx)
}

// Geocode calls the wrapped Geocoder until it returns something other than
// a timeout, or the attempts are exhausted, or the context is done.
func (r *Retrier) Geocode(ctx context.Context, name string) (Point, error) {
	var (
		p        Point
		attempts int
	)

	op := func() error {
		attempts++

		var err error

		p, err = r.g.Geocode(ctx, name)
		if err != nil && !errors.Is(err, ErrTimedOut) {
			return backoff.Permanent(err)
		}

		return err
	}

	notify := func(_ error, d time.Duration) {
		verbose.Println("geocode: ", name,
			": timed out (attempt ", strconv.Itoa(attempts),
			") retrying in ", d.String())
	}

	err := backoff.RetryNotifyWithTimer(op, r.backOff(ctx), notify, r.timer)
	if err == nil {
		return p, nil
	}

	if errors.Is(err, ErrTimedOut) {
		return Point{}, fmt.Errorf("giving up after %d %s: %w",
			attempts, english.Plural("attempt", attempts), err)
	}

	return Point{}, err
}
