package telemetry

import (
	"fmt"
	"image/color"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PlotLuma renders luma over simulation time, one line per probe, and saves
// it to path. The image format follows the file extension.
func PlotLuma(records []SampleRecord, title, path string) error {
	if len(records) == 0 {
		return fmt.Errorf("plotting luma: no samples")
	}

	byProbe := make(map[string]plotter.XYs)
	for _, r := range records {
		byProbe[r.Probe] = append(byProbe[r.Probe], plotter.XY{X: r.SimTime, Y: r.Luma})
	}
	names := make([]string, 0, len(byProbe))
	for name := range byProbe {
		names = append(names, name)
	}
	sort.Strings(names)

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "sim time (s)"
	p.Y.Label.Text = "luma"

	colors := generateColors(len(names))
	for i, name := range names {
		line, err := plotter.NewLine(byProbe[name])
		if err != nil {
			return fmt.Errorf("plotting probe %q: %w", name, err)
		}
		line.Color = colors[i]
		line.Width = vg.Points(1)
		p.Add(line)
		p.Legend.Add(name, line)
	}
	p.Legend.Top = true

	if err := p.Save(10*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("saving plot: %w", err)
	}
	return nil
}

// generateColors spreads n hues around the color wheel.
func generateColors(n int) []color.Color {
	colors := make([]color.Color, n)
	for i := range colors {
		h := float64(i) / float64(max(n, 1))
		r, g, b := hueToRGB(h)
		colors[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return colors
}

func hueToRGB(h float64) (r, g, b uint8) {
	seg := int(h * 6)
	f := h*6 - float64(seg)
	up := uint8(f * 255)
	down := 255 - up
	switch seg % 6 {
	case 0:
		return 255, up, 0
	case 1:
		return down, 255, 0
	case 2:
		return 0, 255, up
	case 3:
		return 0, down, 255
	case 4:
		return up, 0, 255
	default:
		return 255, 0, down
	}
}
