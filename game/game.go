// Package game runs probe scenes: it owns the ECS world, the capture
// providers behind each probe, telemetry, and the graphical viewer.
package game

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/lumaprobe/camera"
	"github.com/pthm-cable/lumaprobe/components"
	"github.com/pthm-cable/lumaprobe/config"
	"github.com/pthm-cable/lumaprobe/luminance"
	"github.com/pthm-cable/lumaprobe/renderer"
	"github.com/pthm-cable/lumaprobe/scene"
	"github.com/pthm-cable/lumaprobe/systems"
	"github.com/pthm-cable/lumaprobe/telemetry"
	"github.com/pthm-cable/lumaprobe/ui"
)

// Options configures a run.
type Options struct {
	LogStats  bool   // Output window stats via slog
	OutputDir string // Directory for CSV logs and config snapshot (empty = disabled)
	Headless  bool   // Software capture, no window
	PerfLog   bool   // Log frame timing summaries in graphical mode

	// StatsCallback, if set, receives every flushed stats window.
	StatsCallback func(telemetry.WindowStats)
}

// probeEntry tracks a probe entity and the provider behind it.
type probeEntry struct {
	entity ecs.Entity
	id     uint32
	name   string
	probe  *luminance.Probe
	radius float64
	gpu    *renderer.CubeCapture // nil in headless mode
}

// Game holds the complete run state.
type Game struct {
	cfg   *config.Config
	world *ecs.World
	runID string

	fixedMapper *ecs.Map5[
		components.Position,
		components.View,
		components.Velocity,
		components.ProbeRef,
		components.Luminance,
	]
	orbitMapper *ecs.Map5[
		components.Position,
		components.View,
		components.Orbit,
		components.ProbeRef,
		components.Luminance,
	]
	posMap  *ecs.Map1[components.Position]
	viewMap *ecs.Map1[components.View]
	lumMap  *ecs.Map1[components.Luminance]

	movement *systems.MovementSystem
	probes   *systems.ProbeSystem
	entries  []probeEntry

	scene *scene.Scene
	clock scene.Clock

	// Telemetry
	collector     *telemetry.Collector
	perfCollector *telemetry.PerfCollector
	outputManager *telemetry.OutputManager
	samples       []telemetry.SampleRecord
	statsCallback func(telemetry.WindowStats)
	logStats      bool

	// Graphical mode only
	headless      bool
	sceneRenderer *renderer.SceneRenderer
	panorama      *renderer.PanoramaView
	panoramaCount int
	orbit         *camera.Orbit
	hud           *ui.HUD
	perfPanel     *ui.PerfPanel
	controls      *ui.Controls
	drawPerf      *FrameTimer
	perfLog       bool

	// State
	tick     int32
	paused   bool
	selected int
}

// NewGameWithOptions creates a run from the global config. In graphical mode
// the window must already be open.
func NewGameWithOptions(opts Options) *Game {
	cfg := config.Cfg()
	world := ecs.NewWorld()

	g := &Game{
		cfg:   cfg,
		world: world,
		runID: uuid.New().String(),
		fixedMapper: ecs.NewMap5[
			components.Position,
			components.View,
			components.Velocity,
			components.ProbeRef,
			components.Luminance,
		](world),
		orbitMapper: ecs.NewMap5[
			components.Position,
			components.View,
			components.Orbit,
			components.ProbeRef,
			components.Luminance,
		](world),
		posMap:        ecs.NewMap1[components.Position](world),
		viewMap:       ecs.NewMap1[components.View](world),
		lumMap:        ecs.NewMap1[components.Luminance](world),
		movement:      systems.NewMovementSystem(world),
		probes:        systems.NewProbeSystem(world),
		scene:         BuildScene(cfg),
		statsCallback: opts.StatsCallback,
		logStats:      opts.LogStats,
		headless:      opts.Headless,
		perfLog:       opts.PerfLog,
	}

	if opts.Headless {
		g.clock = scene.NewManualClock(0)
	} else {
		g.clock = scene.NewWallClock()
		g.sceneRenderer = renderer.NewSceneRenderer(g.scene)
	}

	g.collector = telemetry.NewCollector(g.runID, cfg.Telemetry.StatsWindow, cfg.Simulation.DT)
	g.perfCollector = telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow)

	if opts.OutputDir != "" {
		om, err := telemetry.NewOutputManager(opts.OutputDir, cfg.Telemetry.RecordSamples)
		if err != nil {
			slog.Error("failed to create output manager", "error", err)
		} else {
			g.outputManager = om
			if err := om.WriteConfig(cfg); err != nil {
				slog.Error("failed to write config", "error", err)
			}
		}
	}

	g.spawnProbes()

	if !opts.Headless {
		g.initViewer()
	}

	slog.Info("run started",
		"run_id", g.runID,
		"probes", len(g.entries),
		"headless", opts.Headless,
		"resolution", cfg.Capture.Resolution,
	)

	return g
}

// config returns the run configuration.
func (g *Game) config() *config.Config {
	return g.cfg
}

// initViewer allocates GPU resources for the graphical viewer.
func (g *Game) initViewer() {
	cfg := g.config()
	for i := range g.entries {
		if g.entries[i].gpu != nil {
			g.entries[i].gpu.Init()
		}
	}
	g.panorama = renderer.NewPanoramaView(cfg.Telemetry.PanoramaWidth, cfg.Telemetry.PanoramaHeight)
	g.panoramaCount = -1
	g.orbit = camera.NewOrbit(g.probeCentroid(), 900)
	g.hud = ui.NewHUD()
	g.perfPanel = ui.NewPerfPanel(10, int32(cfg.Screen.Height)-150)
	g.controls = ui.NewControls(int32(cfg.Screen.Width)-290, int32(cfg.Screen.Height)-230, 280)
	g.drawPerf = NewFrameTimer(120)
}

// Update handles input and advances one tick unless paused.
func (g *Game) Update() {
	g.handleInput()
	if g.paused {
		return
	}
	g.step()
}

// UpdateHeadless advances one tick without input handling.
func (g *Game) UpdateHeadless() {
	g.step()
}

// step runs a single tick: move probes, query luminance, record telemetry.
func (g *Game) step() {
	cfg := g.config()
	g.perfCollector.StartTick()

	g.perfCollector.StartPhase(telemetry.PhaseMovement)
	g.movement.Update(cfg.Simulation.DT)

	g.perfCollector.StartPhase(telemetry.PhaseProbes)
	readings := g.probes.Update()

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.recordReadings(readings)
	g.tick++
	if mc, ok := g.clock.(*scene.ManualClock); ok {
		mc.Advance(cfg.Simulation.DT)
	}
	g.flushTelemetry(readings)

	g.perfCollector.EndTick()
}

// Tick returns the current tick.
func (g *Game) Tick() int32 {
	return g.tick
}

// SimTime returns simulated seconds since the start of the run.
func (g *Game) SimTime() float64 {
	return float64(g.tick) * g.config().Simulation.DT
}

// RunID returns the identifier stamped into telemetry rows.
func (g *Game) RunID() string {
	return g.runID
}

// Unload releases all resources and closes output files.
func (g *Game) Unload() {
	if g.outputManager != nil && len(g.samples) > 0 {
		if err := g.outputManager.WriteSamples(g.samples); err != nil {
			slog.Error("failed to write samples", "error", err)
		}
		g.samples = g.samples[:0]
	}
	for i := range g.entries {
		if g.entries[i].gpu != nil {
			g.entries[i].gpu.Unload()
		}
	}
	if g.panorama != nil {
		g.panorama.Unload()
	}
	if g.outputManager != nil {
		if err := g.outputManager.Close(); err != nil {
			slog.Error("failed to close output", "error", err)
		}
	}
}
