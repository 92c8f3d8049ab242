package game

import (
	"fmt"
	"io"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// logWriter is the destination for log output.
var logWriter io.Writer

// SetLogWriter sets the log output destination.
func SetLogWriter(w io.Writer) {
	logWriter = w
}

// Logf writes a formatted log message.
func Logf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if logWriter != nil {
		fmt.Fprintln(logWriter, msg)
	} else {
		fmt.Println(msg)
	}
}

// logPerfStats logs render phase timing.
func (g *Game) logPerfStats() {
	total := g.drawPerf.Total()
	Logf("=== Draw @ Tick %d | FPS: %d ===", g.tick, rl.GetFPS())
	Logf("Total draw time: %s", total.Round(time.Microsecond))

	pct := g.drawPerf.Pct()
	for _, name := range g.drawPerf.SortedNames() {
		avg := g.drawPerf.Avg(name)
		Logf("  %-18s %10s  %5.1f%%", name, avg.Round(time.Microsecond), pct[name])
	}
	Logf("")
}

// logProbeState logs each probe's position, latest reading and capture state.
func (g *Game) logProbeState() {
	Logf("=== Tick %d (%.1fs) ===", g.tick, g.SimTime())
	for _, e := range g.entries {
		pos := g.posMap.Get(e.entity)
		lum := g.lumMap.Get(e.entity)
		t, _, ok := e.probe.Policy().LastCapture()
		captured := "never"
		if ok {
			captured = fmt.Sprintf("%.2fs", t)
		}
		Logf("%-10s @ (%.0f,%.0f,%.0f) luma=%.3f #%02x%02x%02x refreshes=%d last=%s misses=%d",
			e.name, pos.X, pos.Y, pos.Z, lum.Luma,
			lum.Color.R, lum.Color.G, lum.Color.B,
			e.probe.Policy().Count(), captured, e.probe.Sampler().Misses())
	}
	Logf("")
}
