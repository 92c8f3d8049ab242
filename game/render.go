package game

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/lumaprobe/renderer"
	"github.com/pthm-cable/lumaprobe/ui"
)

// viewerFovy is the vertical field of view of the orbit camera, degrees.
const viewerFovy = 60

// Draw renders the scene, probe markers, the selected probe's panorama and
// the UI.
func (g *Game) Draw() {
	cfg := g.config()

	rl.BeginDrawing()
	rl.ClearBackground(linear(cfg.Scene.SkyHorizon).ToRGBA8(true))

	eye := g.orbit.Position()
	g.drawPerf.Measure(drawScene, func() {
		renderer.BeginView(eye, g.orbit.Target, viewerFovy)
		g.sceneRenderer.Draw(eye, cfg.Capture.MaxViewDistance*2)
	})
	g.drawPerf.Measure(drawMarkers, func() {
		for _, e := range g.entries {
			pos := g.posMap.Get(e.entity)
			view := g.viewMap.Get(e.entity)
			lum := g.lumMap.Get(e.entity)
			renderer.DrawMarker(pos.Vec(), view.Vec(), e.radius, lum.Linear)
		}
		rl.EndMode3D()
	})
	g.drawPerf.Measure(drawPanorama, g.drawPanorama)
	g.drawPerf.Measure(drawUI, g.drawUI)

	rl.EndDrawing()

	if g.perfLog && g.tick > 0 && g.tick%600 == 0 {
		g.logPerfStats()
	}
}

// drawPanorama shows the selected probe's capture, re-rendering the texture
// only after the probe recaptured.
func (g *Game) drawPanorama() {
	e := g.selectedEntry()
	if e == nil {
		return
	}
	if count := e.probe.Policy().Count(); count != g.panoramaCount {
		g.panorama.Update(e.probe.Sampler())
		g.panoramaCount = count
	}

	cfg := g.config()
	w := float32(cfg.Telemetry.PanoramaWidth)
	h := float32(cfg.Telemetry.PanoramaHeight)
	dst := rl.Rectangle{X: cfg.Derived.ScreenW32 - w - 10, Y: 10, Width: w, Height: h}
	g.panorama.Draw(dst, e.name)
}

// drawUI draws the HUD, perf panel and settings controls.
func (g *Game) drawUI() {
	cfg := g.config()

	statuses := make([]ui.ProbeStatus, len(g.entries))
	for i, e := range g.entries {
		lum := g.lumMap.Get(e.entity)
		statuses[i] = ui.ProbeStatus{
			Name:      e.name,
			Color:     lum.Color,
			Luma:      lum.Luma,
			Refreshes: e.probe.Policy().Count(),
			Misses:    e.probe.Sampler().Misses(),
			Selected:  i == g.selected,
		}
	}

	g.hud.Draw(ui.HUDData{
		Title:   "Luminance Probes",
		Tick:    g.tick,
		SimTime: g.SimTime(),
		FPS:     rl.GetFPS(),
		Paused:  g.paused,
		Probes:  statuses,
	})
	g.hud.DrawControls(int32(cfg.Screen.Height),
		"[Space] pause  [Tab] probe  [R] recapture  [C] settings  [L] log  [F12] faces  [Arrows/RMB] orbit  [Wheel] zoom")

	perf := g.perfCollector.Stats()
	g.perfPanel.Draw(perf.AvgTickDuration.Microseconds(), perf.PhasePct)

	if next, changed := g.controls.Draw(cfg.Settings()); changed {
		if err := g.ApplySettings(next); err != nil {
			slog.Warn("applying settings", "error", err)
		}
	}
}
