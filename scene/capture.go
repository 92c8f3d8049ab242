package scene

import (
	"sync"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/lumaprobe/cubemap"
	"github.com/pthm-cable/lumaprobe/luminance"
)

// PositionFunc reports the world position a capture is taken from.
type PositionFunc func() r3.Vec

// FixedPosition returns a PositionFunc that always reports p.
func FixedPosition(p r3.Vec) PositionFunc {
	return func() r3.Vec { return p }
}

// SoftwareCapture renders cube captures by ray casting the scene on the CPU.
// It implements luminance.CaptureProvider.
type SoftwareCapture struct {
	Scene      *Scene
	Resolution int
	Clock      Clock
	Pos        PositionFunc
}

// NewSoftwareCapture returns a provider capturing scene at res×res per face.
func NewSoftwareCapture(scene *Scene, res int, clock Clock, pos PositionFunc) *SoftwareCapture {
	return &SoftwareCapture{Scene: scene, Resolution: res, Clock: clock, Pos: pos}
}

// Now implements luminance.CaptureProvider.
func (c *SoftwareCapture) Now() float64 {
	if c.Clock == nil {
		return 0
	}
	return c.Clock.Now()
}

// Position implements luminance.CaptureProvider.
func (c *SoftwareCapture) Position() r3.Vec {
	if c.Pos == nil {
		return r3.Vec{}
	}
	return c.Pos()
}

// Capture renders the six faces from the current position, one goroutine per
// face.
func (c *SoftwareCapture) Capture() (luminance.Capture, error) {
	if c.Scene == nil || c.Resolution <= 0 {
		return luminance.Capture{}, luminance.ErrCaptureUnavailable
	}

	res := c.Resolution
	origin := c.Position()
	out := luminance.Capture{Resolution: res}

	var wg sync.WaitGroup
	for f := range out.Faces {
		px := make([]cubemap.LinearColor, res*res)
		out.Faces[f] = px
		wg.Add(1)
		go func(face cubemap.Face, px []cubemap.LinearColor) {
			defer wg.Done()
			for y := 0; y < res; y++ {
				for x := 0; x < res; x++ {
					px[x+y*res] = c.Scene.Trace(origin, cubemap.PixelDirection(face, x, y, res))
				}
			}
		}(cubemap.Face(f), px)
	}
	wg.Wait()

	return out, nil
}
