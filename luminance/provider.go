// Package luminance estimates the perceived color of a scene around a point
// by sampling a lazily refreshed cubemap capture.
//
// A Probe owns the capture state, the stored faces and the estimator. Every
// luminance query first checks whether the capture is stale (too old, or the
// probe moved too far) and recaptures through a CaptureProvider before
// sampling.
package luminance

import (
	"errors"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/lumaprobe/cubemap"
)

// ErrCaptureUnavailable is returned by a CaptureProvider that has no valid
// render target bound (not initialised yet, or already released).
var ErrCaptureUnavailable = errors.New("luminance: capture unavailable")

// Capture is the result of rendering the six cube faces from one position.
// Every face holds Resolution² pixels in row-major order, oriented so that
// pixel (x, y) of face f looks along cubemap.PixelDirection(f, x, y, res).
type Capture struct {
	Resolution int
	Faces      [cubemap.NumFaces][]cubemap.LinearColor
}

// CaptureProvider renders cube captures and reports the current time and
// world position of the capture point.
type CaptureProvider interface {
	// Now returns the current time in seconds.
	Now() float64

	// Position returns the current world position of the capture point.
	Position() r3.Vec

	// Capture renders all six faces from the current position.
	Capture() (Capture, error)
}
