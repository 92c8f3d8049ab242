// Face dump tool - captures one probe's cube faces on the GPU and writes them,
// with the matching software capture and both panoramas, as PNG files.
//
// Usage: go run ./cmd/facedump -probe fixed -out faces
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/lumaprobe/config"
	"github.com/pthm-cable/lumaprobe/cubemap"
	"github.com/pthm-cable/lumaprobe/game"
	"github.com/pthm-cable/lumaprobe/luminance"
	"github.com/pthm-cable/lumaprobe/renderer"
	"github.com/pthm-cable/lumaprobe/scene"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	probeName := flag.String("probe", "", "Probe to capture from (empty = first probe)")
	outDir := flag.String("out", "faces", "Output directory")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	pos, err := probePosition(cfg, *probeName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if err := os.MkdirAll(filepath.Join(*outDir, "software"), 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create output dir: %v\n", err)
		os.Exit(1)
	}

	sc := game.BuildScene(cfg)
	res := cfg.Capture.Resolution

	// Initialize raylib with hidden window
	rl.SetConfigFlags(rl.FlagWindowHidden)
	rl.InitWindow(int32(res), int32(res), "Face Dump")
	defer rl.CloseWindow()

	cc := cfg.Capture.ClearColor
	gpu := renderer.NewCubeCapture(renderer.NewSceneRenderer(sc), renderer.CubeCaptureOptions{
		Resolution:      res,
		MaxViewDistance: cfg.Capture.MaxViewDistance,
		ClearColor:      cubemap.LinearColor{R: float32(cc.R), G: float32(cc.G), B: float32(cc.B), A: 1},
		Position:        scene.FixedPosition(pos),
	})
	gpu.Init()
	defer gpu.Unload()

	soft := scene.NewSoftwareCapture(sc, res, nil, scene.FixedPosition(pos))

	gpuFaces, err := capture(gpu)
	if err != nil {
		fmt.Fprintf(os.Stderr, "GPU capture failed: %v\n", err)
		os.Exit(1)
	}
	if err := gpu.ExportFaces(*outDir); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to export faces: %v\n", err)
		os.Exit(1)
	}

	softFaces, err := capture(soft)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Software capture failed: %v\n", err)
		os.Exit(1)
	}
	for f := cubemap.Face(0); f < cubemap.NumFaces; f++ {
		path := filepath.Join(*outDir, "software", fmt.Sprintf("face_%d.png", f))
		if err := writePNG(path, faceImage(softFaces, f)); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	}

	w, h := cfg.Telemetry.PanoramaWidth, cfg.Telemetry.PanoramaHeight
	panoramas := map[string]*cubemap.Faces{"panorama_gpu.png": gpuFaces, "panorama_software.png": softFaces}
	for name, faces := range panoramas {
		if err := writePNG(filepath.Join(*outDir, name), cubemap.Panorama(cubemap.NewSampler(faces), w, h)); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	}

	fmt.Printf("Faces captured at (%.0f, %.0f, %.0f) written to: %s (%dx%d)\n", pos.X, pos.Y, pos.Z, *outDir, res, res)
}

// probePosition returns the configured position of the named probe.
func probePosition(cfg *config.Config, name string) (r3.Vec, error) {
	for _, p := range cfg.Probes {
		if name == "" || p.Name == name {
			return r3.Vec{X: p.Position.X, Y: p.Position.Y, Z: p.Position.Z}, nil
		}
	}
	if name == "" {
		return r3.Vec{}, nil
	}
	return r3.Vec{}, fmt.Errorf("no probe named %q", name)
}

// capture runs one capture into a fresh store.
func capture(p luminance.CaptureProvider) (*cubemap.Faces, error) {
	c, err := p.Capture()
	if err != nil {
		return nil, err
	}
	faces := cubemap.NewFaces()
	if err := faces.Replace(c.Resolution, c.Faces); err != nil {
		return nil, err
	}
	return faces, nil
}

// faceImage converts a stored face to an sRGB image.
func faceImage(faces *cubemap.Faces, f cubemap.Face) *image.RGBA {
	res := faces.Resolution()
	img := image.NewRGBA(image.Rect(0, 0, res, res))
	for i, c := range faces.Face(f) {
		c.A = 1
		img.SetRGBA(i%res, i/res, c.ToRGBA8(true))
	}
	return img
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}
