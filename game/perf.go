package game

import (
	"sort"
	"time"
)

// Draw phases timed in graphical mode.
const (
	drawScene    = "scene"
	drawMarkers  = "markers"
	drawPanorama = "panorama"
	drawUI       = "ui"
)

// FrameTimer keeps a rolling window of render phase durations.
type FrameTimer struct {
	samples    map[string][]time.Duration
	maxSamples int
}

// NewFrameTimer creates a timer averaging over the last window frames.
func NewFrameTimer(window int) *FrameTimer {
	if window < 1 {
		window = 120
	}
	return &FrameTimer{
		samples:    make(map[string][]time.Duration),
		maxSamples: window,
	}
}

// Measure runs fn and records its duration under name.
func (t *FrameTimer) Measure(name string, fn func()) {
	start := time.Now()
	fn()
	t.Record(name, time.Since(start))
}

// Record adds a duration sample for the named phase.
func (t *FrameTimer) Record(name string, d time.Duration) {
	s := append(t.samples[name], d)
	if len(s) > t.maxSamples {
		s = s[1:]
	}
	t.samples[name] = s
}

// Avg returns the average duration for the named phase.
func (t *FrameTimer) Avg(name string) time.Duration {
	s := t.samples[name]
	if len(s) == 0 {
		return 0
	}
	var total time.Duration
	for _, d := range s {
		total += d
	}
	return total / time.Duration(len(s))
}

// Total returns the sum of all phase averages.
func (t *FrameTimer) Total() time.Duration {
	var total time.Duration
	for name := range t.samples {
		total += t.Avg(name)
	}
	return total
}

// Pct returns each phase's share of Total, in percent.
func (t *FrameTimer) Pct() map[string]float64 {
	total := t.Total()
	out := make(map[string]float64, len(t.samples))
	for name := range t.samples {
		if total > 0 {
			out[name] = float64(t.Avg(name)) / float64(total) * 100
		} else {
			out[name] = 0
		}
	}
	return out
}

// SortedNames returns phase names by average duration, longest first.
func (t *FrameTimer) SortedNames() []string {
	names := make([]string, 0, len(t.samples))
	for name := range t.samples {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return t.Avg(names[i]) > t.Avg(names[j])
	})
	return names
}
