// v0
// internal/simclock/clock.go

// Package simclock maps real elapsed wall-clock time onto the circular telemetry
// series: 5 wall-clock seconds advance the "current" sample by one index, independent
// of the series' 5-minute timestamp stride.
package simclock

import "time"

// StepDuration is the wall-clock time represented by one series index.
const StepDuration = 5 * time.Second

// Clock wraps time functions so callers can inject a deterministic source in tests.
type Clock interface {
	Now() time.Time
}

// RealClock reads the actual wall clock.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// MockClock is a settable Clock for tests.
type MockClock struct {
	now time.Time
}

func NewMockClock(t time.Time) *MockClock { return &MockClock{now: t} }

func (m *MockClock) Now() time.Time { return m.now }

func (m *MockClock) Set(t time.Time) { m.now = t }

func (m *MockClock) Advance(d time.Duration) { m.now = m.now.Add(d) }

// CurrentIndex returns the series index for the given wall-clock instant. The series
// behaves as a circular buffer: long sessions wrap instead of running out of data.
// A now before sessionStart clamps to index 0. length must be positive.
func CurrentIndex(now, sessionStart time.Time, length int) int {
	if length <= 0 {
		panic("simclock: CurrentIndex requires a positive series length")
	}
	elapsed := now.Sub(sessionStart)
	if elapsed < 0 {
		return 0
	}
	return int(elapsed/StepDuration) % length
}
