package game

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/pthm-cable/lumaprobe/cubemap"
)

// ExportPanoramas writes each probe's current capture as an equirectangular
// PNG, panorama_<name>.png, into dir.
func (g *Game) ExportPanoramas(dir string) error {
	cfg := g.config()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating panorama dir: %w", err)
	}
	for _, e := range g.entries {
		img := cubemap.Panorama(e.probe.Sampler(), cfg.Telemetry.PanoramaWidth, cfg.Telemetry.PanoramaHeight)
		path := filepath.Join(dir, fmt.Sprintf("panorama_%s.png", e.name))
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating %s: %w", path, err)
		}
		if err := png.Encode(f, img); err != nil {
			f.Close()
			return fmt.Errorf("encoding %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("closing %s: %w", path, err)
		}
	}
	return nil
}

// ExportFaces writes the selected probe's GPU capture faces into dir. Only
// available in graphical mode.
func (g *Game) ExportFaces(dir string) error {
	e := g.selectedEntry()
	if e == nil || e.gpu == nil {
		return fmt.Errorf("no GPU capture selected")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating face dir: %w", err)
	}
	return e.gpu.ExportFaces(dir)
}
