package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated luminance statistics for a time window.
type WindowStats struct {
	RunID           string  `csv:"run_id"`
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	Probes int `csv:"probes"`

	// Events during window
	Queries     int    `csv:"queries"`
	Refreshes   int    `csv:"refreshes"`
	Forced      int    `csv:"forced_refreshes"`
	Unavailable int    `csv:"unavailable"`
	Failures    int    `csv:"failures"`
	Misses      uint64 `csv:"sampler_misses"`

	// Luma distribution over all queries in the window
	LumaMean float64 `csv:"luma_mean"`
	LumaStd  float64 `csv:"luma_std"`
	LumaP10  float64 `csv:"luma_p10"`
	LumaP50  float64 `csv:"luma_p50"`
	LumaP90  float64 `csv:"luma_p90"`

	// Mean linear color
	MeanR float64 `csv:"mean_r"`
	MeanG float64 `csv:"mean_g"`
	MeanB float64 `csv:"mean_b"`
}

// Percentile calculates the p-th percentile of a sorted slice.
// p should be in [0, 1]. Returns 0 if slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	// Linear interpolation
	idx := p * float64(n-1)
	lo := int(idx)
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}

	frac := idx - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// ComputeLumaStats calculates mean, population std and percentiles.
func ComputeLumaStats(values []float64) (mean, std, p10, p50, p90 float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0, 0
	}

	mean, std = stat.PopMeanStdDev(values, nil)

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	return mean, std, Percentile(sorted, 0.10), Percentile(sorted, 0.50), Percentile(sorted, 0.90)
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("probes", s.Probes),
		slog.Int("queries", s.Queries),
		slog.Int("refreshes", s.Refreshes),
		slog.Int("forced_refreshes", s.Forced),
		slog.Int("unavailable", s.Unavailable),
		slog.Int("failures", s.Failures),
		slog.Uint64("sampler_misses", s.Misses),
		slog.Float64("luma_mean", s.LumaMean),
		slog.Float64("luma_std", s.LumaStd),
		slog.Float64("luma_p10", s.LumaP10),
		slog.Float64("luma_p50", s.LumaP50),
		slog.Float64("luma_p90", s.LumaP90),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}
