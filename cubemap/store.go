package cubemap

import (
	"errors"
	"fmt"
	"sync/atomic"
)

var (
	// ErrResolution is returned when a capture reports a non-positive resolution.
	ErrResolution = errors.New("cubemap: resolution must be positive")

	// ErrFaceSize is returned when a face buffer does not hold resolution² pixels.
	ErrFaceSize = errors.New("cubemap: face size does not match resolution")
)

// PixelSource is read access to captured face pixels.
type PixelSource interface {
	// Resolution is the square face size in pixels, 0 before the first capture.
	Resolution() int

	// Pixel returns the pixel at flat row-major index i of a face. ok is false
	// when face or i is out of bounds.
	Pixel(face Face, i int) (c LinearColor, ok bool)
}

// faceData is one immutable capture: all six faces back to back in a single
// buffer, indexed face*res² + y*res + x.
type faceData struct {
	res    int
	pixels []LinearColor
}

// Faces stores the six captured faces in one contiguous buffer.
//
// Replace swaps the whole buffer with a single atomic store, so a reader sees
// either the previous capture or the new one and never a mix of both. Faces
// must not be copied after first use.
type Faces struct {
	data atomic.Pointer[faceData]
}

// NewFaces returns an empty store. Every lookup misses until the first Replace.
func NewFaces() *Faces {
	return &Faces{}
}

// Resolution returns the current face resolution, or 0 if nothing was captured.
func (f *Faces) Resolution() int {
	d := f.data.Load()
	if d == nil {
		return 0
	}
	return d.res
}

// Pixel implements PixelSource.
func (f *Faces) Pixel(face Face, i int) (LinearColor, bool) {
	d := f.data.Load()
	if d == nil || !face.Valid() {
		return LinearColor{}, false
	}
	n := d.res * d.res
	if i < 0 || i >= n {
		return LinearColor{}, false
	}
	return d.pixels[int(face)*n+i], true
}

// Face returns a read-only view of one face's pixels, or nil when empty.
func (f *Faces) Face(face Face) []LinearColor {
	d := f.data.Load()
	if d == nil || !face.Valid() {
		return nil
	}
	n := d.res * d.res
	return d.pixels[int(face)*n : (int(face)+1)*n : (int(face)+1)*n]
}

// Replace installs a new capture. Every face must hold exactly res*res pixels;
// on error the previous capture is left in place.
func (f *Faces) Replace(res int, faces [NumFaces][]LinearColor) error {
	if res <= 0 {
		return fmt.Errorf("%w: %d", ErrResolution, res)
	}
	n := res * res
	for i, px := range faces {
		if len(px) != n {
			return fmt.Errorf("%w: face %s has %d pixels, want %d", ErrFaceSize, Face(i), len(px), n)
		}
	}

	pixels := make([]LinearColor, NumFaces*n)
	for i, px := range faces {
		copy(pixels[i*n:(i+1)*n], px)
	}
	f.data.Store(&faceData{res: res, pixels: pixels})
	return nil
}
