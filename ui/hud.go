package ui

import (
	"fmt"
	"sort"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ProbeStatus is one probe's line in the HUD.
type ProbeStatus struct {
	Name      string
	Color     rl.Color
	Luma      float64
	Refreshes int
	Misses    uint64
	Selected  bool
}

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title   string
	Tick    int32
	SimTime float64
	FPS     int32
	Paused  bool
	Probes  []ProbeStatus
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
	}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	r := h.renderer

	rl.DrawText(data.Title, 10, 10, 20, rl.White)
	rl.DrawText(
		fmt.Sprintf("Tick: %d | Time: %.1fs | FPS: %d", data.Tick, data.SimTime, data.FPS),
		10, 35, 16, rl.LightGray,
	)
	if data.Paused {
		rl.DrawText("PAUSED", 10, 55, 16, rl.Yellow)
	}

	width := int32(300)
	height := r.Theme.Padding*2 + r.Theme.LineHeight*int32(1+2*len(data.Probes))
	x, y := int32(10), int32(80)
	r.DrawPanel(x, y, width, height)

	x += r.Theme.Padding
	y = r.DrawSectionHeader(x, y+r.Theme.Padding, "Probes")
	for _, p := range data.Probes {
		label := p.Name
		if p.Selected {
			label = "> " + label
		}
		y = r.DrawColorSwatch(x, y, label, p.Color)
		y = r.DrawLabelValue(x, y, "  luma", fmt.Sprintf("%.3f  refreshes %d  misses %d", p.Luma, p.Refreshes, p.Misses))
	}
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}

// PerfPanel renders tick phase timing.
type PerfPanel struct {
	renderer *Renderer
	x, y     int32
}

// NewPerfPanel creates a perf panel at (x, y).
func NewPerfPanel(x, y int32) *PerfPanel {
	return &PerfPanel{renderer: NewRenderer(), x: x, y: y}
}

// Draw renders phase percentages as bars, in name order.
func (p *PerfPanel) Draw(tickUS int64, phasePct map[string]float64) {
	r := p.renderer
	names := make([]string, 0, len(phasePct))
	for name := range phasePct {
		names = append(names, name)
	}
	sort.Strings(names)

	width := int32(260)
	height := r.Theme.Padding*2 + (r.Theme.LineHeight+2)*int32(len(names)) + r.Theme.LineHeight*2
	r.DrawPanel(p.x, p.y, width, height)

	x := p.x + r.Theme.Padding
	y := r.DrawSectionHeader(x, p.y+r.Theme.Padding, "Perf")
	y = r.DrawLabelValue(x, y, "tick", fmt.Sprintf("%d us", tickUS))
	for _, name := range names {
		y = r.DrawBar(x, y, name, float32(phasePct[name]/100), width-r.Theme.Padding*2)
	}
}
