package game

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm-cable/lumaprobe/config"
	"github.com/pthm-cable/lumaprobe/luminance"
	"github.com/pthm-cable/lumaprobe/telemetry"
)

func newHeadless(t *testing.T, opts Options) *Game {
	t.Helper()
	if err := config.Init(""); err != nil {
		t.Fatalf("config.Init: %v", err)
	}
	cfg := config.Cfg()
	// Keep software captures cheap.
	cfg.Capture.Resolution = 8
	opts.Headless = true
	g := NewGameWithOptions(opts)
	t.Cleanup(g.Unload)
	return g
}

func TestHeadlessRun(t *testing.T) {
	var windows []telemetry.WindowStats
	g := newHeadless(t, Options{
		StatsCallback: func(s telemetry.WindowStats) { windows = append(windows, s) },
	})

	for i := 0; i < 120; i++ {
		g.UpdateHeadless()
	}

	if g.Tick() != 120 {
		t.Fatalf("Tick() = %d, want 120", g.Tick())
	}
	if len(windows) == 0 {
		t.Fatal("no stats windows flushed")
	}

	w := windows[0]
	n := len(g.entries)
	if w.Probes != n {
		t.Errorf("Probes = %d, want %d", w.Probes, n)
	}
	if want := n * int(w.WindowEndTick-w.WindowStartTick); w.Queries != want {
		t.Errorf("Queries = %d, want %d", w.Queries, want)
	}
	if w.Refreshes < n {
		t.Errorf("Refreshes = %d, want at least one per probe", w.Refreshes)
	}
	if w.Failures != 0 || w.Unavailable != 0 {
		t.Errorf("Failures = %d, Unavailable = %d, want 0", w.Failures, w.Unavailable)
	}
	if w.Misses != 0 {
		t.Errorf("Misses = %d, want 0", w.Misses)
	}
	if w.RunID != g.RunID() {
		t.Errorf("RunID = %q, want %q", w.RunID, g.RunID())
	}
}

func TestHeadlessProbesMove(t *testing.T) {
	g := newHeadless(t, Options{})

	start := make(map[string][3]float64)
	for _, e := range g.entries {
		p := g.posMap.Get(e.entity)
		start[e.name] = [3]float64{p.X, p.Y, p.Z}
	}
	for i := 0; i < 30; i++ {
		g.UpdateHeadless()
	}

	for _, pc := range config.Cfg().Probes {
		var e *probeEntry
		for i := range g.entries {
			if g.entries[i].name == pc.Name {
				e = &g.entries[i]
			}
		}
		if e == nil {
			t.Fatalf("probe %q not spawned", pc.Name)
		}
		p := g.posMap.Get(e.entity)
		moved := [3]float64{p.X, p.Y, p.Z} != start[pc.Name]
		wantMove := pc.Orbit != nil || pc.Velocity != (config.Vec3{})
		if moved != wantMove {
			t.Errorf("probe %q moved = %v, want %v", pc.Name, moved, wantMove)
		}
	}
}

func TestHeadlessQueriesUpdateComponents(t *testing.T) {
	g := newHeadless(t, Options{})
	g.UpdateHeadless()

	for _, e := range g.entries {
		lum := g.lumMap.Get(e.entity)
		if lum.Color.A != 255 {
			t.Errorf("probe %q alpha = %d, want 255", e.name, lum.Color.A)
		}
		if lum.Luma <= 0 {
			t.Errorf("probe %q luma = %v, want > 0 in a lit scene", e.name, lum.Luma)
		}
		if got := e.probe.Policy().Count(); got != 1 {
			t.Errorf("probe %q refreshes after first tick = %d, want 1", e.name, got)
		}
	}
}

func TestApplySettings(t *testing.T) {
	g := newHeadless(t, Options{})
	g.UpdateHeadless()

	before := make([]int, len(g.entries))
	for i, e := range g.entries {
		before[i] = e.probe.Policy().Count()
	}

	s := g.Settings()
	s.BlurSamples = 4
	s.BlurRadius = 0.1
	if err := g.ApplySettings(s); err != nil {
		t.Fatalf("ApplySettings: %v", err)
	}
	if got := config.Cfg().Blur.Samples; got != 4 {
		t.Errorf("config blur samples = %d, want 4", got)
	}
	for i, e := range g.entries {
		if got := e.probe.Policy().Count(); got != before[i]+1 {
			t.Errorf("probe %q refreshes = %d, want %d (forced)", e.name, got, before[i]+1)
		}
		if got := e.probe.Settings(); got != s {
			t.Errorf("probe %q settings = %+v, want %+v", e.name, got, s)
		}
	}

	bad := s
	bad.BlurRadius = -1
	if err := g.ApplySettings(bad); err == nil {
		t.Error("ApplySettings accepted a negative blur radius")
	}
	if got := g.Settings(); got != s {
		t.Errorf("settings after rejected update = %+v, want %+v", got, s)
	}
}

func TestOutputFiles(t *testing.T) {
	dir := t.TempDir()
	if err := config.Init(""); err != nil {
		t.Fatalf("config.Init: %v", err)
	}
	config.Cfg().Capture.Resolution = 8

	g := NewGameWithOptions(Options{Headless: true, OutputDir: dir})
	for i := 0; i < 90; i++ {
		g.UpdateHeadless()
	}
	g.Unload()

	for _, name := range []string{"config.yaml", "luminance.csv", "perf.csv", "samples.csv"} {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			t.Errorf("missing %s: %v", name, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", name)
		}
	}

	records, err := telemetry.ReadSamples(filepath.Join(dir, "samples.csv"))
	if err != nil {
		t.Fatalf("ReadSamples: %v", err)
	}
	if want := 90 * len(g.entries); len(records) != want {
		t.Errorf("sample records = %d, want %d", len(records), want)
	}
}

func TestExportPanoramas(t *testing.T) {
	g := newHeadless(t, Options{})
	g.UpdateHeadless()

	dir := filepath.Join(t.TempDir(), "pano")
	if err := g.ExportPanoramas(dir); err != nil {
		t.Fatalf("ExportPanoramas: %v", err)
	}
	for _, e := range g.entries {
		if _, err := os.Stat(filepath.Join(dir, "panorama_"+e.name+".png")); err != nil {
			t.Errorf("panorama for %q: %v", e.name, err)
		}
	}

	if err := g.ExportFaces(dir); err == nil {
		t.Error("ExportFaces succeeded without a GPU capture")
	}
}

func TestLogProbeState(t *testing.T) {
	var buf bytes.Buffer
	SetLogWriter(&buf)
	defer SetLogWriter(nil)

	g := newHeadless(t, Options{})
	g.UpdateHeadless()
	g.logProbeState()

	out := buf.String()
	for _, e := range g.entries {
		if !strings.Contains(out, e.name) {
			t.Errorf("log missing probe %q:\n%s", e.name, out)
		}
	}
	if !strings.Contains(out, "refreshes=1") {
		t.Errorf("log missing refresh count:\n%s", out)
	}
}

func TestSettingsMatchConfig(t *testing.T) {
	g := newHeadless(t, Options{})
	want := luminance.Settings{
		RefreshTime:     config.Cfg().Capture.RefreshTime,
		RefreshDistance: config.Cfg().Capture.RefreshDistance,
		BlurRadius:      config.Cfg().Blur.Radius,
		BlurSamples:     config.Cfg().Blur.Samples,
	}
	if got := g.Settings(); got != want {
		t.Errorf("Settings() = %+v, want %+v", got, want)
	}
}
