package cubemap

import (
	"math"
	"sync/atomic"

	"gonum.org/v1/gonum/spatial/r3"
)

// Sampler resolves directions to captured pixels with nearest-pixel lookup.
type Sampler struct {
	src    PixelSource
	misses atomic.Uint64
}

// NewSampler returns a sampler reading from src.
func NewSampler(src PixelSource) *Sampler {
	return &Sampler{src: src}
}

// Index returns the face and flat pixel index that dir resolves to at the
// source's current resolution. The index is not bounds checked.
func (s *Sampler) Index(dir r3.Vec) (Face, int) {
	uv, face := Project(dir)
	res := s.src.Resolution()
	x := int(math.Floor(uv.U * float64(res)))
	y := int(math.Floor(uv.V * float64(res)))
	return face, x + y*res
}

// Sample returns the captured color in direction dir. Lookups that fall
// outside the stored faces (nothing captured yet, or an index pushed past the
// end by rounding at a face boundary) return the zero color and count as a
// miss.
func (s *Sampler) Sample(dir r3.Vec) LinearColor {
	face, i := s.Index(dir)
	c, ok := s.src.Pixel(face, i)
	if !ok {
		s.misses.Add(1)
		return LinearColor{}
	}
	return c
}

// Misses returns the number of out-of-range lookups since creation.
func (s *Sampler) Misses() uint64 {
	return s.misses.Load()
}
