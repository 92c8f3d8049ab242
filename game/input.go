package game

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// handleInput processes keyboard and mouse input.
func (g *Game) handleInput() {
	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}

	// Cycle the probe shown in the panorama
	if rl.IsKeyPressed(rl.KeyTab) && len(g.entries) > 0 {
		g.selected = (g.selected + 1) % len(g.entries)
		g.panoramaCount = -1
	}

	// Force a recapture of the selected probe
	if rl.IsKeyPressed(rl.KeyR) {
		if e := g.selectedEntry(); e != nil {
			if err := e.probe.Refresh(); err != nil {
				slog.Warn("refresh failed", "probe", e.name, "error", err)
			}
		}
	}

	if rl.IsKeyPressed(rl.KeyC) {
		g.controls.Toggle()
	}

	if rl.IsKeyPressed(rl.KeyL) {
		g.logProbeState()
	}

	if rl.IsKeyPressed(rl.KeyF12) {
		if err := g.ExportFaces("faces"); err != nil {
			slog.Warn("exporting faces", "error", err)
		} else {
			Logf("Exported faces of %s to faces/", g.selectedEntry().name)
		}
	}

	g.handleCameraInput()
}

// handleCameraInput orbits and zooms the viewer camera.
func (g *Game) handleCameraInput() {
	if g.orbit == nil {
		return
	}

	const rotateSpeed = 0.03
	if rl.IsKeyDown(rl.KeyRight) {
		g.orbit.Rotate(rotateSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyLeft) {
		g.orbit.Rotate(-rotateSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyUp) {
		g.orbit.Rotate(0, rotateSpeed)
	}
	if rl.IsKeyDown(rl.KeyDown) {
		g.orbit.Rotate(0, -rotateSpeed)
	}

	// Right-drag orbits
	if rl.IsMouseButtonDown(rl.MouseButtonRight) {
		d := rl.GetMouseDelta()
		g.orbit.Rotate(-float64(d.X)*0.005, float64(d.Y)*0.005)
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		g.orbit.ZoomBy(1 + float64(wheel)*0.1)
	}
	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		g.orbit.ZoomBy(1.25)
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		g.orbit.ZoomBy(0.8)
	}

	// Home recenters on the probes
	if rl.IsKeyPressed(rl.KeyHome) {
		g.orbit.Target = g.probeCentroid()
	}
}

// selectedEntry returns the probe shown in the panorama, or nil.
func (g *Game) selectedEntry() *probeEntry {
	if g.selected < 0 || g.selected >= len(g.entries) {
		return nil
	}
	return &g.entries[g.selected]
}
