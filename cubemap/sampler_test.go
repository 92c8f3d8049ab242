package cubemap

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

// gradientFaces fills each face so that pixel i of face f has R = f*1000 + i.
func gradientFaces(res int) [NumFaces][]LinearColor {
	var faces [NumFaces][]LinearColor
	for f := range faces {
		faces[f] = make([]LinearColor, res*res)
		for i := range faces[f] {
			faces[f][i] = LinearColor{R: float32(f*1000 + i), A: 1}
		}
	}
	return faces
}

func TestSamplerAxisIndex(t *testing.T) {
	const res = 4
	store := NewFaces()
	if err := store.Replace(res, gradientFaces(res)); err != nil {
		t.Fatalf("Replace: %v", err)
	}
	s := NewSampler(store)

	center := res/2 + res/2*res
	for f := Face(0); f < NumFaces; f++ {
		face, i := s.Index(f.Axis())
		if face != f || i != center {
			t.Errorf("Index(%v axis) = (%v, %d), want (%v, %d)", f, face, i, f, center)
		}
		got := s.Sample(f.Axis())
		if want := float32(int(f)*1000 + center); got.R != want {
			t.Errorf("Sample(%v axis).R = %v, want %v", f, got.R, want)
		}
	}
	if s.Misses() != 0 {
		t.Errorf("Misses() = %d, want 0", s.Misses())
	}
}

func TestSamplerIdempotent(t *testing.T) {
	store := NewFaces()
	if err := store.Replace(8, gradientFaces(8)); err != nil {
		t.Fatalf("Replace: %v", err)
	}
	s := NewSampler(store)
	dir := r3.Vec{X: 0.3, Y: -0.7, Z: 0.2}
	first := s.Sample(dir)
	for i := 0; i < 10; i++ {
		if got := s.Sample(dir); got != first {
			t.Fatalf("Sample #%d = %+v, want %+v", i, got, first)
		}
	}
}

func TestSamplerEmptyStore(t *testing.T) {
	s := NewSampler(NewFaces())
	if got := s.Sample(r3.Vec{X: 1}); got != (LinearColor{}) {
		t.Errorf("Sample on empty store = %+v, want zero", got)
	}
	if s.Misses() != 1 {
		t.Errorf("Misses() = %d, want 1", s.Misses())
	}
}

func TestFacesReplace(t *testing.T) {
	store := NewFaces()
	if store.Resolution() != 0 {
		t.Fatalf("Resolution() = %d before capture, want 0", store.Resolution())
	}

	if err := store.Replace(0, [NumFaces][]LinearColor{}); !errors.Is(err, ErrResolution) {
		t.Errorf("Replace(0) error = %v, want ErrResolution", err)
	}

	bad := gradientFaces(2)
	bad[3] = bad[3][:3]
	if err := store.Replace(2, bad); !errors.Is(err, ErrFaceSize) {
		t.Errorf("Replace(short face) error = %v, want ErrFaceSize", err)
	}
	if store.Resolution() != 0 {
		t.Errorf("failed Replace changed resolution to %d", store.Resolution())
	}

	src := gradientFaces(2)
	if err := store.Replace(2, src); err != nil {
		t.Fatalf("Replace: %v", err)
	}
	src[0][0].R = -1
	if c, _ := store.Pixel(FacePosX, 0); c.R != 0 {
		t.Errorf("store aliases caller buffer: R = %v", c.R)
	}

	if got := len(store.Face(FaceNegZ)); got != 4 {
		t.Errorf("len(Face(-Z)) = %d, want 4", got)
	}
	if c, ok := store.Pixel(FaceNegZ, 3); !ok || c.R != 5003 {
		t.Errorf("Pixel(-Z, 3) = %+v, %v; want R=5003", c, ok)
	}
	if _, ok := store.Pixel(FaceNegZ, 4); ok {
		t.Error("Pixel past end of face reported ok")
	}
	if _, ok := store.Pixel(Face(6), 0); ok {
		t.Error("Pixel on invalid face reported ok")
	}
}

func TestPanorama(t *testing.T) {
	store := NewFaces()
	var faces [NumFaces][]LinearColor
	for f := range faces {
		faces[f] = make([]LinearColor, 4)
		for i := range faces[f] {
			faces[f][i] = LinearColor{R: 1, G: 1, B: 1, A: 1}
		}
	}
	if err := store.Replace(2, faces); err != nil {
		t.Fatalf("Replace: %v", err)
	}

	img := Panorama(NewSampler(store), 16, 8)
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 8 {
		t.Fatalf("bounds = %v, want 16x8", b)
	}
	if c := img.RGBAAt(5, 3); c.R != 255 || c.A != 255 {
		t.Errorf("pixel = %+v, want white", c)
	}
}
