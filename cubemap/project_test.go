package cubemap

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestProjectAxes(t *testing.T) {
	tests := []struct {
		dir  r3.Vec
		face Face
	}{
		{r3.Vec{X: 1}, FacePosX},
		{r3.Vec{X: -1}, FaceNegX},
		{r3.Vec{Y: 1}, FacePosY},
		{r3.Vec{Y: -1}, FaceNegY},
		{r3.Vec{Z: 1}, FacePosZ},
		{r3.Vec{Z: -1}, FaceNegZ},
		{r3.Vec{X: 7.5}, FacePosX},
		{r3.Vec{Z: -0.001}, FaceNegZ},
	}

	for _, tt := range tests {
		t.Run(tt.face.String(), func(t *testing.T) {
			uv, face := Project(tt.dir)
			if face != tt.face {
				t.Errorf("Project(%v) face = %v, want %v", tt.dir, face, tt.face)
			}
			if uv.U != 0.5 || uv.V != 0.5 {
				t.Errorf("Project(%v) uv = %+v, want (0.5, 0.5)", tt.dir, uv)
			}
		})
	}
}

func TestProjectRange(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10000; i++ {
		dir := r3.Vec{X: rng.NormFloat64(), Y: rng.NormFloat64(), Z: rng.NormFloat64()}
		if r3.Norm2(dir) == 0 {
			continue
		}
		uv, face := Project(dir)
		if !face.Valid() {
			t.Fatalf("Project(%v) face = %d, out of range", dir, face)
		}
		if uv.U < 0 || uv.U >= 1 || uv.V < 0 || uv.V >= 1 {
			t.Fatalf("Project(%v) uv = %+v, out of [0,1)", dir, uv)
		}
	}
}

func TestProjectLastMatchWins(t *testing.T) {
	// Exact corner: every positive rule matches, +Z is evaluated last.
	_, face := Project(r3.Vec{X: 1, Y: 1, Z: 1})
	if face != FacePosZ {
		t.Errorf("corner face = %v, want %v", face, FacePosZ)
	}

	// Edge between +X and -Y: -Y comes later in the table.
	_, face = Project(r3.Vec{X: 1, Y: -1})
	if face != FaceNegY {
		t.Errorf("edge face = %v, want %v", face, FaceNegY)
	}
}

func TestProjectDegenerate(t *testing.T) {
	for _, dir := range []r3.Vec{{}, {X: math.NaN()}} {
		uv, face := Project(dir)
		if face != FacePosX || uv != (UV{0.5, 0.5}) {
			t.Errorf("Project(%v) = %+v, %v; want center of +X", dir, uv, face)
		}
	}
}

func TestWrap01(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"zero", 0, 0},
		{"half", 0.5, 0.5},
		{"one wraps to zero", 1.0, 0},
		{"above one", 1.25, 0.25},
		{"negative", -0.25, 0.75},
		{"tiny negative", -1e-7, 1 - 1e-7},
		{"below float resolution", -1e-17, 0},
		{"nan", math.NaN(), 0},
		{"inf", math.Inf(1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap01(tt.in)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Wrap01(%v) = %v, want %v", tt.in, got, tt.want)
			}
			if got < 0 || got >= 1 {
				t.Errorf("Wrap01(%v) = %v, out of [0,1)", tt.in, got)
			}
		})
	}
}

func TestProjectRawBoundary(t *testing.T) {
	// On +Z raw u = xa. The +X and -X rules match too but +Z is evaluated
	// last. Raw 1 gives exactly 0, raw -1 gives -1 which wraps to 0.
	for _, x := range []float64{1, -1} {
		uv, face := Project(r3.Vec{X: x, Z: 1})
		if face != FacePosZ {
			t.Fatalf("x=%v: face = %v, want +Z", x, face)
		}
		if uv.U != 0 {
			t.Errorf("x=%v: u = %v, want 0", x, uv.U)
		}
		if uv.V != 0.5 {
			t.Errorf("x=%v: v = %v, want 0.5", x, uv.V)
		}
	}
}

func TestFaceDirectionRoundTrip(t *testing.T) {
	const res = 16
	for f := Face(0); f < NumFaces; f++ {
		for y := 0; y < res; y++ {
			for x := 0; x < res; x++ {
				uv := UV{(float64(x) + 0.5) / res, (float64(y) + 0.5) / res}
				dir := FaceDirection(f, uv)
				got, face := Project(dir)
				if face != f {
					t.Fatalf("face %v pixel (%d,%d): projected to %v", f, x, y, face)
				}
				if math.Abs(got.U-uv.U) > 1e-9 || math.Abs(got.V-uv.V) > 1e-9 {
					t.Fatalf("face %v pixel (%d,%d): uv = %+v, want %+v", f, x, y, got, uv)
				}
			}
		}
	}
}

func TestPixelDirectionIsUnit(t *testing.T) {
	d := PixelDirection(FaceNegY, 3, 1, 8)
	if n := r3.Norm(d); math.Abs(n-1) > 1e-12 {
		t.Errorf("|PixelDirection| = %v, want 1", n)
	}
}

func TestSafeUnit(t *testing.T) {
	if got := SafeUnit(r3.Vec{X: 1e-5}); got != (r3.Vec{}) {
		t.Errorf("SafeUnit(tiny) = %v, want zero", got)
	}
	got := SafeUnit(r3.Vec{X: 3, Y: 4})
	if math.Abs(got.X-0.6) > 1e-12 || math.Abs(got.Y-0.8) > 1e-12 {
		t.Errorf("SafeUnit(3,4) = %v, want (0.6, 0.8)", got)
	}
}

func TestEquirect(t *testing.T) {
	uv := EquirectUV(r3.Vec{Z: 1})
	if uv.V != 0 {
		t.Errorf("up: v = %v, want 0", uv.V)
	}
	uv = EquirectUV(r3.Vec{Y: -1})
	if math.Abs(uv.U-0.5) > 1e-12 || math.Abs(uv.V-0.5) > 1e-12 {
		t.Errorf("-Y: uv = %+v, want (0.5, 0.5)", uv)
	}

	for _, dir := range []r3.Vec{{X: 1}, {X: -0.3, Y: 0.2, Z: 0.5}, {Y: 1, Z: -1}} {
		back := EquirectDirection(EquirectUV(dir))
		want := SafeUnit(dir)
		if r3.Norm(r3.Sub(back, want)) > 1e-9 {
			t.Errorf("round trip %v: got %v, want %v", dir, back, want)
		}
	}
}
