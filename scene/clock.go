package scene

import (
	"sync"
	"time"
)

// Clock reports simulation time in seconds.
type Clock interface {
	Now() float64
}

// WallClock reports seconds elapsed since it was created.
type WallClock struct {
	start time.Time
}

// NewWallClock returns a clock starting at zero now.
func NewWallClock() *WallClock {
	return &WallClock{start: time.Now()}
}

// Now returns the elapsed wall time in seconds.
func (c *WallClock) Now() float64 {
	return time.Since(c.start).Seconds()
}

// ManualClock is advanced explicitly, for headless runs and tests.
type ManualClock struct {
	mu sync.Mutex
	t  float64
}

// NewManualClock returns a clock at time t.
func NewManualClock(t float64) *ManualClock {
	return &ManualClock{t: t}
}

// Now returns the current time.
func (c *ManualClock) Now() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

// Advance moves the clock forward by dt seconds.
func (c *ManualClock) Advance(dt float64) {
	c.mu.Lock()
	c.t += dt
	c.mu.Unlock()
}

// Set moves the clock to t.
func (c *ManualClock) Set(t float64) {
	c.mu.Lock()
	c.t = t
	c.mu.Unlock()
}
