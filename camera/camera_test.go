package camera

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/lumaprobe/cubemap"
)

func TestFaceViewsMirrored(t *testing.T) {
	want := map[cubemap.Face]bool{
		cubemap.FacePosX: true,
		cubemap.FaceNegX: false,
		cubemap.FacePosY: true,
		cubemap.FaceNegY: false,
		cubemap.FacePosZ: false,
		cubemap.FaceNegZ: true,
	}

	for f, v := range FaceViews() {
		if v.Face != cubemap.Face(f) {
			t.Errorf("views[%d].Face = %v", f, v.Face)
		}
		if v.Mirrored != want[v.Face] {
			t.Errorf("face %v: mirrored = %v, want %v", v.Face, v.Mirrored, want[v.Face])
		}
		if v.Forward != v.Face.Axis() {
			t.Errorf("face %v: forward = %v, want %v", v.Face, v.Forward, v.Face.Axis())
		}
		if d := r3.Dot(v.Forward, v.Up); d != 0 {
			t.Errorf("face %v: up not orthogonal to forward (dot %v)", v.Face, d)
		}
	}
}

func TestFaceViewMatchesPixelDirection(t *testing.T) {
	// The top-left pixel of the stored face lies up and, after any mirror
	// flip, left of the view center.
	const res = 8
	for _, v := range FaceViews() {
		d := cubemap.PixelDirection(v.Face, 0, 0, res)
		if r3.Dot(d, v.Up) <= 0 {
			t.Errorf("face %v: pixel (0,0) is not above center", v.Face)
		}
		sx := r3.Dot(d, v.Right)
		if v.Mirrored {
			sx = -sx
		}
		if sx >= 0 {
			t.Errorf("face %v: pixel (0,0) is not left of center after flip", v.Face)
		}
	}
}

func TestOrbitPosition(t *testing.T) {
	o := NewOrbit(r3.Vec{X: 10}, 100)
	o.Pitch = 0
	o.Yaw = 0

	p := o.Position()
	if math.Abs(p.X-110) > 1e-9 || math.Abs(p.Y) > 1e-9 || math.Abs(p.Z) > 1e-9 {
		t.Errorf("Position() = %v, want (110, 0, 0)", p)
	}
	if f := o.Forward(); math.Abs(f.X+1) > 1e-9 {
		t.Errorf("Forward() = %v, want -X", f)
	}
}

func TestOrbitRotateClamp(t *testing.T) {
	o := NewOrbit(r3.Vec{}, 100)
	o.Rotate(3*math.Pi, 10)

	if o.Pitch != maxPitch {
		t.Errorf("pitch = %v, want %v", o.Pitch, maxPitch)
	}
	if o.Yaw < 0 || o.Yaw >= 2*math.Pi {
		t.Errorf("yaw = %v, not wrapped", o.Yaw)
	}
}

func TestOrbitZoom(t *testing.T) {
	o := NewOrbit(r3.Vec{}, 100)

	tests := []struct {
		factor float64
		want   float64
	}{
		{2, 50},
		{0, 50},
		{1000, 10},
		{0.0001, 1000},
	}
	for _, tt := range tests {
		o.ZoomBy(tt.factor)
		if math.Abs(o.Distance-tt.want) > 1e-9 {
			t.Errorf("ZoomBy(%v): distance = %v, want %v", tt.factor, o.Distance, tt.want)
		}
	}
}
