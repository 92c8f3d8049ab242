package luminance

import (
	"image/color"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/lumaprobe/cubemap"
)

// worldUp is the +Z up axis used to build the sampling basis.
var worldUp = r3.Vec{Z: 1}

// spiralWinding is the number of half turns the spiral makes per unit of
// radius.
const spiralWinding = 3

// Estimator averages cubemap samples along a spiral around a view direction.
type Estimator struct {
	sampler *cubemap.Sampler
	radius  float64
	samples int
}

// NewEstimator returns an estimator reading from sampler.
func NewEstimator(sampler *cubemap.Sampler, radius float64, samples int) *Estimator {
	e := &Estimator{sampler: sampler}
	e.SetBlur(radius, samples)
	return e
}

// SetBlur changes the spiral radius and sample count. Counts below 1 are
// treated as 1.
func (e *Estimator) SetBlur(radius float64, samples int) {
	e.radius = radius
	e.samples = max(samples, 1)
}

// Directions returns the spiral sample directions for view. The first
// direction is always the normalized view itself.
func (e *Estimator) Directions(view r3.Vec) []r3.Vec {
	right := cubemap.SafeUnit(r3.Cross(view, worldUp))
	up := cubemap.SafeUnit(r3.Cross(view, right))

	n := e.samples
	dirs := make([]r3.Vec, n)
	for i := range dirs {
		dist := float64(i) / float64(n) * e.radius
		phase := dist * math.Pi * spiralWinding
		offset := r3.Add(
			r3.Scale(math.Cos(phase)*dist, right),
			r3.Scale(math.Sin(phase)*dist, up),
		)
		dirs[i] = cubemap.SafeUnit(r3.Add(view, offset))
	}
	return dirs
}

// EstimateLinear returns the mean linear color around view with alpha set
// to 1.
func (e *Estimator) EstimateLinear(view r3.Vec) cubemap.LinearColor {
	var sum cubemap.LinearColor
	for _, dir := range e.Directions(view) {
		sum = sum.Add(e.sampler.Sample(dir))
	}
	c := sum.Div(float32(e.samples))
	c.A = 1
	return c
}

// Estimate returns EstimateLinear quantized to sRGB 8-bit.
func (e *Estimator) Estimate(view r3.Vec) color.RGBA {
	return e.EstimateLinear(view).ToRGBA8(true)
}
