package telemetry

import (
	"errors"

	"github.com/pthm-cable/lumaprobe/cubemap"
	"github.com/pthm-cable/lumaprobe/luminance"
)

// Collector accumulates probe events within time windows and produces
// WindowStats. It implements luminance.RefreshObserver.
type Collector struct {
	runID               string
	windowDurationSec   float64
	windowDurationTicks int32
	dt                  float64

	// Current window tracking
	windowStartTick int32
	missesAtStart   uint64

	// Event counters for current window
	refreshes   int
	forced      int
	unavailable int
	failures    int

	lumas      []float64
	sumR, sumG float64
	sumB       float64
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds
// dt: seconds per tick (used for tick-to-time conversion)
func NewCollector(runID string, windowDurationSec, dt float64) *Collector {
	ticksPerWindow := int32(windowDurationSec / dt)
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	return &Collector{
		runID:               runID,
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
	}
}

// OnRefresh records a capture refresh attempt.
func (c *Collector) OnRefresh(ev luminance.RefreshEvent) {
	switch {
	case ev.Err == nil:
		c.refreshes++
		if ev.Forced {
			c.forced++
		}
	case errors.Is(ev.Err, luminance.ErrCaptureUnavailable):
		c.unavailable++
	default:
		c.failures++
	}
}

// RecordQuery records one luminance query result.
func (c *Collector) RecordQuery(col cubemap.LinearColor) {
	c.lumas = append(c.lumas, col.Luma())
	c.sumR += float64(col.R)
	c.sumG += float64(col.G)
	c.sumB += float64(col.B)
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush produces a WindowStats and resets counters for the next window.
// totalMisses is the running sampler miss count summed over all probes.
func (c *Collector) Flush(currentTick int32, probes int, totalMisses uint64) WindowStats {
	mean, std, p10, p50, p90 := ComputeLumaStats(c.lumas)

	stats := WindowStats{
		RunID:           c.runID,
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * c.dt,

		Probes:      probes,
		Queries:     len(c.lumas),
		Refreshes:   c.refreshes,
		Forced:      c.forced,
		Unavailable: c.unavailable,
		Failures:    c.failures,

		LumaMean: mean,
		LumaStd:  std,
		LumaP10:  p10,
		LumaP50:  p50,
		LumaP90:  p90,
	}
	if totalMisses >= c.missesAtStart {
		stats.Misses = totalMisses - c.missesAtStart
	}
	if n := float64(len(c.lumas)); n > 0 {
		stats.MeanR = c.sumR / n
		stats.MeanG = c.sumG / n
		stats.MeanB = c.sumB / n
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.missesAtStart = totalMisses
	c.refreshes = 0
	c.forced = 0
	c.unavailable = 0
	c.failures = 0
	c.lumas = c.lumas[:0]
	c.sumR, c.sumG, c.sumB = 0, 0, 0

	return stats
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int32 {
	return c.windowDurationTicks
}
