// Package stopwatch measures elapsed wall-clock time between two explicit
// checkpoints and exposes it in millisecond and HH:MM:SS.mmm form.
package stopwatch

import (
	"fmt"
	"time"
)

// Clock returns the current instant. Injecting one makes a Stopwatch
// deterministic under test.
type Clock func() time.Time

// Stopwatch holds two optional timestamps (zero value = not captured).
// It is not safe for concurrent use; a measurement has a single owner.
type Stopwatch struct {
	now   Clock
	start time.Time
	stop  time.Time
}

// New creates a Stopwatch backed by the system clock.
func New() *Stopwatch {
	return NewWithClock(time.Now)
}

// NewWithClock creates a Stopwatch that reads the current time from clock.
func NewWithClock(clock Clock) *Stopwatch {
	return &Stopwatch{now: clock}
}

// Start records the current instant as the start of the measurement window,
// overwriting any previous start.
func (s *Stopwatch) Start() {
	s.start = s.now()
}

// Stop records the current instant as the end of the measurement window,
// overwriting any previous stop. Calling Stop before Start is permitted;
// elapsed queries then report zero until Start is called as well.
func (s *Stopwatch) Stop() {
	s.stop = s.now()
}

// Elapsed returns the duration between the start and stop checkpoints, or
// zero when either checkpoint has not been captured yet.
func (s *Stopwatch) Elapsed() time.Duration {
	if s.start.IsZero() || s.stop.IsZero() {
		return 0
	}
	// Ordering is intentionally not validated; stopping before starting
	// yields a negative duration.
	return s.stop.Sub(s.start)
}

// ElapsedMilliseconds returns the measured duration in milliseconds, or 0
// when either checkpoint is missing.
func (s *Stopwatch) ElapsedMilliseconds() float64 {
	return float64(s.Elapsed().Nanoseconds()) / 1e6
}

// ElapsedFormatted renders the measured duration as HH:MM:SS.mmm.
func (s *Stopwatch) ElapsedFormatted() string {
	ms := s.Elapsed().Milliseconds()
	return fmt.Sprintf("%02d:%02d:%02d.%03d",
		ms/3600000,
		(ms/60000)%60,
		(ms/1000)%60,
		ms%1000)
}
