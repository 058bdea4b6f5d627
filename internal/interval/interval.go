// Package interval provides a time-based gate used to pace game ticks
// independently of the render rate.
package interval

import (
	"context"
	"time"
)

// Clock is the time source used by an Interval.
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time                         { return time.Now() }
func (systemClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// SystemClock returns the wall clock.
func SystemClock() Clock {
	return systemClock{}
}

// Interval reports whether at least one period has elapsed since the last
// tick. Before the first tick no timestamp is recorded and the period counts
// as already elapsed, so the first Tick returns at once and the first TryTick
// fires. Both methods record a timestamp on every successful tick.
//
// An Interval is not safe for concurrent use.
type Interval struct {
	period   time.Duration
	lastTick time.Time
	ticked   bool
	clock    Clock
}

// New creates an Interval with the given period on the wall clock.
func New(period time.Duration) *Interval {
	return NewWithClock(period, SystemClock())
}

// NewWithClock creates an Interval driven by clock.
func NewWithClock(period time.Duration, clock Clock) *Interval {
	if clock == nil {
		clock = SystemClock()
	}
	return &Interval{
		period: period,
		clock:  clock,
	}
}

// Period returns the configured period.
func (iv *Interval) Period() time.Duration {
	return iv.period
}

// SetPeriod changes the period. The last tick timestamp is kept.
func (iv *Interval) SetPeriod(period time.Duration) {
	iv.period = period
}

// Reset records now as the last tick.
func (iv *Interval) Reset() {
	iv.lastTick = iv.clock.Now()
	iv.ticked = true
}

// Remaining returns how long until the next tick is due. It is zero before
// the first tick and once the period has elapsed.
func (iv *Interval) Remaining() time.Duration {
	if !iv.ticked {
		return 0
	}
	elapsed := iv.clock.Now().Sub(iv.lastTick)
	if elapsed >= iv.period {
		return 0
	}
	return iv.period - elapsed
}

// Tick blocks until at least one period has elapsed since the last tick,
// sleeping for the remainder, then resets the timestamp. If ctx ends first the
// interval is left unchanged and ctx.Err() is returned.
func (iv *Interval) Tick(ctx context.Context) error {
	if wait := iv.Remaining(); wait > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-iv.clock.After(wait):
		}
	}
	iv.Reset()
	return nil
}

// TryTick reports whether the period has elapsed without blocking. A true
// result consumes the tick by resetting the timestamp; false leaves the
// interval untouched.
func (iv *Interval) TryTick() bool {
	if iv.Remaining() > 0 {
		return false
	}
	iv.Reset()
	return true
}
