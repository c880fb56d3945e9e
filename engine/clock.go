package engine

import (
	"sync/atomic"
	"time"
)

// Clock is the wall-clock source used for tick deadlines
// Simulation time never reads it; GameTime advances by whole ticks
type Clock interface {
	Now() time.Time
}

// WallClock reads the system monotonic clock
type WallClock struct{}

// Now returns time.Now()
func (WallClock) Now() time.Time {
	return time.Now()
}

// ManualClock only moves when Advance is called
type ManualClock struct {
	base    time.Time
	elapsed atomic.Int64 // ns since base
}

// NewManualClock creates a clock frozen at start
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{base: start}
}

func (m *ManualClock) Now() time.Time {
	return m.base.Add(time.Duration(m.elapsed.Load()))
}

// Advance moves the clock forward by d
func (m *ManualClock) Advance(d time.Duration) {
	m.elapsed.Add(int64(d))
}
