// Package stopwatch measures elapsed wall time and renders it with a unit
// scaled to its magnitude.
package stopwatch

import (
	"fmt"
	"time"
)

// Stopwatch records a start and an end instant.
type Stopwatch struct {
	start time.Time
	end   time.Time
	now   func() time.Time
}

// New returns a stopwatch that has not been started.
func New() *Stopwatch {
	return &Stopwatch{now: time.Now}
}

// Started returns a stopwatch already running.
func Started() *Stopwatch {
	s := New()
	s.Start()
	return s
}

// Start records the start instant.
func (s *Stopwatch) Start() {
	s.start = s.now()
	s.end = time.Time{}
}

// End records the end instant.
func (s *Stopwatch) End() {
	s.end = s.now()
}

// Elapsed returns end minus start, or the time since start while running.
func (s *Stopwatch) Elapsed() time.Duration {
	if s.start.IsZero() {
		return 0
	}
	if s.end.IsZero() {
		return s.now().Sub(s.start)
	}
	return s.end.Sub(s.start)
}

// String formats Elapsed with Format.
func (s *Stopwatch) String() string {
	return Format(s.Elapsed())
}

// Format renders d with one decimal in the largest unit it exceeds:
// us, ms, s, m, h or d. For example 1500us is "1.5ms".
func Format(d time.Duration) string {
	span := float64(d.Microseconds())
	unit := "us"

	steps := []struct {
		limit float64
		unit  string
	}{
		{1000, "ms"},
		{1000, "s"},
		{60, "m"},
		{60, "h"},
		{24, "d"},
	}
	for _, step := range steps {
		if span <= step.limit {
			break
		}
		span /= step.limit
		unit = step.unit
	}

	return fmt.Sprintf("%.1f%s", span, unit)
}
