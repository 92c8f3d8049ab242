package game

import (
	"log/slog"

	"github.com/pthm-cable/lumaprobe/systems"
	"github.com/pthm-cable/lumaprobe/telemetry"
)

// recordReadings feeds this tick's probe readings to the collector and, when
// enabled, buffers them for samples.csv.
func (g *Game) recordReadings(readings []systems.Reading) {
	recordSamples := g.outputManager != nil && g.config().Telemetry.RecordSamples
	simTime := g.SimTime()

	for _, r := range readings {
		g.collector.RecordQuery(r.Linear)
		if !recordSamples {
			continue
		}
		g.samples = append(g.samples, telemetry.SampleRecord{
			RunID:   g.runID,
			Tick:    g.tick,
			SimTime: simTime,
			ProbeID: r.ID,
			Probe:   r.Name,
			R:       r.Color.R,
			G:       r.Color.G,
			B:       r.Color.B,
			Luma:    r.Luma,
		})
	}
}

// flushTelemetry closes the stats window when it is due.
func (g *Game) flushTelemetry(readings []systems.Reading) {
	if !g.collector.ShouldFlush(g.tick) {
		return
	}

	var misses uint64
	for _, r := range readings {
		misses += r.Misses
	}

	stats := g.collector.Flush(g.tick, len(g.entries), misses)
	perfStats := g.perfCollector.Stats()

	if g.statsCallback != nil {
		g.statsCallback(stats)
	}

	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if g.outputManager == nil {
		return
	}
	if err := g.outputManager.WriteStats(stats); err != nil {
		slog.Error("failed to write stats", "error", err)
	}
	if err := g.outputManager.WritePerf(perfStats, g.runID, stats.WindowEndTick); err != nil {
		slog.Error("failed to write perf", "error", err)
	}
	if len(g.samples) > 0 {
		if err := g.outputManager.WriteSamples(g.samples); err != nil {
			slog.Error("failed to write samples", "error", err)
		}
		g.samples = g.samples[:0]
	}
}
