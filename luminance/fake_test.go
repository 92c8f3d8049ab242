package luminance

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/lumaprobe/cubemap"
)

// fakeProvider renders a fixed color per face and counts captures.
type fakeProvider struct {
	now      float64
	pos      r3.Vec
	res      int
	colors   [cubemap.NumFaces]cubemap.LinearColor
	pixel    func(f cubemap.Face, i int) cubemap.LinearColor
	err      error
	captures int
}

func newFakeProvider(res int) *fakeProvider {
	fp := &fakeProvider{res: res}
	for f := range fp.colors {
		v := float32(f+1) / cubemap.NumFaces
		fp.colors[f] = cubemap.LinearColor{R: v, G: v / 2, B: 1 - v, A: 1}
	}
	return fp
}

func (f *fakeProvider) Now() float64     { return f.now }
func (f *fakeProvider) Position() r3.Vec { return f.pos }

func (f *fakeProvider) Capture() (Capture, error) {
	if f.err != nil {
		return Capture{}, f.err
	}
	f.captures++
	c := Capture{Resolution: f.res}
	for face := range c.Faces {
		px := make([]cubemap.LinearColor, f.res*f.res)
		for i := range px {
			if f.pixel != nil {
				px[i] = f.pixel(cubemap.Face(face), i)
			} else {
				px[i] = f.colors[face]
			}
		}
		c.Faces[face] = px
	}
	return c, nil
}

type recordingObserver struct {
	events []RefreshEvent
}

func (r *recordingObserver) OnRefresh(ev RefreshEvent) {
	r.events = append(r.events, ev)
}
