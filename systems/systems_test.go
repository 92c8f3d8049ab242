package systems

import (
	"image/color"
	"math"
	"testing"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/lumaprobe/components"
	"github.com/pthm-cable/lumaprobe/cubemap"
	"github.com/pthm-cable/lumaprobe/luminance"
)

// flatProvider captures every face filled with one color.
type flatProvider struct {
	c        cubemap.LinearColor
	captures int
}

func (p *flatProvider) Now() float64     { return 0 }
func (p *flatProvider) Position() r3.Vec { return r3.Vec{} }

func (p *flatProvider) Capture() (luminance.Capture, error) {
	p.captures++
	out := luminance.Capture{Resolution: 2}
	for f := range out.Faces {
		out.Faces[f] = []cubemap.LinearColor{p.c, p.c, p.c, p.c}
	}
	return out, nil
}

func TestMovementSystem(t *testing.T) {
	w := ecs.NewWorld()
	linear := ecs.NewMap2[components.Position, components.Velocity](w)
	orbital := ecs.NewMap2[components.Position, components.Orbit](w)

	e1 := linear.NewEntity(&components.Position{}, &components.Velocity{X: 2, Z: -1})
	e2 := orbital.NewEntity(&components.Position{}, &components.Orbit{Center: r3.Vec{Z: 5}, Radius: 10, Speed: math.Pi / 2})

	sys := NewMovementSystem(w)
	sys.Update(1)

	pos := ecs.NewMap[components.Position](w)
	if p := pos.Get(e1); p.X != 2 || p.Z != -1 {
		t.Errorf("linear position = %+v, want (2, 0, -1)", *p)
	}
	if p := pos.Get(e2); math.Abs(p.X) > 1e-9 || math.Abs(p.Y-10) > 1e-9 || p.Z != 5 {
		t.Errorf("orbit position = %+v, want (0, 10, 5)", *p)
	}
}

func TestProbeSystem(t *testing.T) {
	w := ecs.NewWorld()
	mapper := ecs.NewMap3[components.ProbeRef, components.View, components.Luminance](w)

	white := &flatProvider{c: cubemap.LinearColor{R: 1, G: 1, B: 1, A: 1}}
	black := &flatProvider{c: cubemap.LinearColor{A: 1}}

	mapper.NewEntity(
		&components.ProbeRef{ID: 1, Name: "white", Probe: luminance.NewProbe(luminance.DefaultSettings(), white)},
		&components.View{X: 1},
		&components.Luminance{},
	)
	e2 := mapper.NewEntity(
		&components.ProbeRef{ID: 2, Name: "black", Probe: luminance.NewProbe(luminance.DefaultSettings(), black)},
		&components.View{Z: -1},
		&components.Luminance{},
	)
	mapper.NewEntity(&components.ProbeRef{ID: 3}, &components.View{}, &components.Luminance{})

	sys := NewProbeSystem(w)
	readings := sys.Update()
	if len(readings) != 2 {
		t.Fatalf("got %d readings, want 2", len(readings))
	}

	byName := map[string]Reading{}
	for _, r := range readings {
		byName[r.Name] = r
	}
	if c := byName["white"].Color; c != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("white probe color = %v", c)
	}
	if l := byName["black"].Luma; l != 0 {
		t.Errorf("black probe luma = %v, want 0", l)
	}

	lum := ecs.NewMap[components.Luminance](w)
	if got := lum.Get(e2).Color; got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("stored color = %v", got)
	}

	sys.Update()
	if white.captures != 1 || black.captures != 1 {
		t.Errorf("captures = %d, %d; want 1 each within refresh time", white.captures, black.captures)
	}
}
