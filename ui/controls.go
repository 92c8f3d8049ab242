package ui

import (
	"fmt"
	"math"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/lumaprobe/luminance"
)

// Controls edits probe settings with raygui sliders.
type Controls struct {
	renderer *Renderer
	x, y     int32
	width    int32
	visible  bool
}

// NewControls creates a new settings panel.
func NewControls(x, y, width int32) *Controls {
	return &Controls{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
		visible:  true,
	}
}

// Toggle switches panel visibility.
func (c *Controls) Toggle() bool {
	c.visible = !c.visible
	return c.visible
}

// IsVisible returns whether the panel is shown.
func (c *Controls) IsVisible() bool {
	return c.visible
}

// slider describes one editable setting.
type slider struct {
	label    string
	min, max float32
	format   string
	get      func(luminance.Settings) float32
	set      func(*luminance.Settings, float32)
}

var sliders = []slider{
	{
		label: "Blur radius", min: 0, max: 1, format: "%.2f",
		get: func(s luminance.Settings) float32 { return float32(s.BlurRadius) },
		set: func(s *luminance.Settings, v float32) { s.BlurRadius = float64(v) },
	},
	{
		label: "Blur samples", min: 1, max: 128, format: "%.0f",
		get: func(s luminance.Settings) float32 { return float32(s.BlurSamples) },
		set: func(s *luminance.Settings, v float32) { s.BlurSamples = int(math.Round(float64(v))) },
	},
	{
		label: "Refresh time", min: 0, max: 2, format: "%.2fs",
		get: func(s luminance.Settings) float32 { return float32(s.RefreshTime) },
		set: func(s *luminance.Settings, v float32) { s.RefreshTime = float64(v) },
	},
	{
		label: "Refresh dist", min: 0, max: 500, format: "%.0f",
		get: func(s luminance.Settings) float32 { return float32(s.RefreshDistance) },
		set: func(s *luminance.Settings, v float32) { s.RefreshDistance = float64(v) },
	},
}

// Draw renders the panel and returns the edited settings and whether any
// slider moved this frame.
func (c *Controls) Draw(current luminance.Settings) (luminance.Settings, bool) {
	if !c.visible {
		return current, false
	}

	r := c.renderer
	padding := r.Theme.Padding
	rowHeight := int32(38)
	height := padding*2 + r.Theme.LineHeight + rowHeight*int32(len(sliders))
	r.DrawPanel(c.x, c.y, c.width, height)

	x := float32(c.x + padding)
	y := r.DrawSectionHeader(c.x+padding, c.y+padding, "Probe settings")
	sliderWidth := float32(c.width - padding*2 - 60)

	next := current
	for _, s := range sliders {
		value := s.get(current)
		rl.DrawText(s.label, int32(x), y, r.Theme.FontSize, r.Theme.LabelColor)
		y += 14
		v := gui.SliderBar(
			rl.Rectangle{X: x, Y: float32(y), Width: sliderWidth, Height: 16},
			"", "",
			value, s.min, s.max,
		)
		rl.DrawText(fmt.Sprintf(s.format, value), int32(x+sliderWidth+8), y+2, r.Theme.FontSize, r.Theme.ValueColor)
		if v != value {
			s.set(&next, v)
		}
		y += rowHeight - 14
	}

	return next, next != current
}
