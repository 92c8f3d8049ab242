// Package scene describes a small synthetic world and renders cube captures
// of it on the CPU.
//
// The world is Z-up: a sky dome with a sun and a procedural cloud layer, an
// infinite ground plane and a list of spheres. It stands in for the engine
// scene when no GPU is available.
package scene

import (
	"math"

	"github.com/ojrac/opensimplex-go"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/lumaprobe/cubemap"
)

// Sun is a directional light with a visible disc.
type Sun struct {
	// Direction points from the scene towards the sun.
	Direction r3.Vec
	Color     cubemap.LinearColor
	Intensity float32
	// AngularRadius of the disc in radians.
	AngularRadius float64
}

// Sky is the background seen when a ray hits nothing.
type Sky struct {
	Zenith  cubemap.LinearColor
	Horizon cubemap.LinearColor
	Ground  cubemap.LinearColor

	// CloudCover in [0,1] is the fraction of the sky covered by clouds.
	CloudCover float64
	// CloudScale is the noise frequency on the cloud plane.
	CloudScale float64
	CloudSeed  int64
}

// Sphere is a diffuse ball, optionally emissive.
type Sphere struct {
	Center   r3.Vec
	Radius   float64
	Albedo   cubemap.LinearColor
	Emission cubemap.LinearColor
}

// Scene is everything a capture can see.
type Scene struct {
	Sky          Sky
	Sun          Sun
	GroundHeight float64
	GroundAlbedo cubemap.LinearColor
	Spheres      []Sphere

	// MaxDistance is the far clip. Surfaces beyond it show the sky.
	MaxDistance float64

	clouds opensimplex.Noise
}

// New returns a scene with the given parts, ready to trace.
func New(sky Sky, sun Sun, groundHeight float64, groundAlbedo cubemap.LinearColor, spheres []Sphere, maxDistance float64) *Scene {
	s := &Scene{
		Sky:          sky,
		Sun:          sun,
		GroundHeight: groundHeight,
		GroundAlbedo: groundAlbedo,
		Spheres:      spheres,
		MaxDistance:  maxDistance,
	}
	s.Sun.Direction = cubemap.SafeUnit(sun.Direction)
	s.clouds = opensimplex.NewNormalized(sky.CloudSeed)
	return s
}

// Default returns a daylight scene with a few spheres around the origin.
func Default() *Scene {
	return New(
		Sky{
			Zenith:     cubemap.LinearColor{R: 0.12, G: 0.25, B: 0.60, A: 1},
			Horizon:    cubemap.LinearColor{R: 0.65, G: 0.75, B: 0.85, A: 1},
			Ground:     cubemap.LinearColor{R: 0.20, G: 0.18, B: 0.15, A: 1},
			CloudCover: 0.4,
			CloudScale: 1.5,
			CloudSeed:  7,
		},
		Sun{
			Direction:     r3.Vec{X: 0.4, Y: 0.3, Z: 0.8},
			Color:         cubemap.LinearColor{R: 1, G: 0.95, B: 0.85, A: 1},
			Intensity:     3,
			AngularRadius: 0.05,
		},
		-100,
		cubemap.LinearColor{R: 0.25, G: 0.35, B: 0.15, A: 1},
		[]Sphere{
			{Center: r3.Vec{X: 400}, Radius: 150, Albedo: cubemap.LinearColor{R: 0.8, G: 0.2, B: 0.2, A: 1}},
			{Center: r3.Vec{Y: -500, Z: 50}, Radius: 200, Albedo: cubemap.LinearColor{R: 0.2, G: 0.3, B: 0.8, A: 1}},
			{Center: r3.Vec{X: -300, Y: 300, Z: 200}, Radius: 80, Emission: cubemap.LinearColor{R: 4, G: 3, B: 1, A: 1}},
		},
		2000,
	)
}

// Trace returns the linear color seen from origin along dir.
func (s *Scene) Trace(origin, dir r3.Vec) cubemap.LinearColor {
	dir = cubemap.SafeUnit(dir)
	if dir == (r3.Vec{}) {
		return cubemap.LinearColor{}
	}

	t, normal, albedo, emission, hit := s.intersect(origin, dir)
	if !hit || t > s.MaxDistance {
		return s.background(dir)
	}

	p := r3.Add(origin, r3.Scale(t, dir))
	return s.shade(p, normal, albedo).Add(emission)
}

// intersect finds the nearest surface along the ray.
func (s *Scene) intersect(origin, dir r3.Vec) (t float64, normal r3.Vec, albedo, emission cubemap.LinearColor, hit bool) {
	t = math.Inf(1)

	if dir.Z < 0 && origin.Z > s.GroundHeight {
		if tg := (s.GroundHeight - origin.Z) / dir.Z; tg < t {
			t, normal, albedo, emission, hit = tg, r3.Vec{Z: 1}, s.GroundAlbedo, cubemap.LinearColor{}, true
		}
	}

	for i := range s.Spheres {
		sp := &s.Spheres[i]
		ts, ok := raySphere(origin, dir, sp.Center, sp.Radius)
		if ok && ts < t {
			p := r3.Add(origin, r3.Scale(ts, dir))
			t, normal, albedo, emission, hit = ts, r3.Unit(r3.Sub(p, sp.Center)), sp.Albedo, sp.Emission, true
		}
	}
	return t, normal, albedo, emission, hit
}

// raySphere returns the nearest positive hit distance.
func raySphere(origin, dir, center r3.Vec, radius float64) (float64, bool) {
	oc := r3.Sub(origin, center)
	b := r3.Dot(oc, dir)
	c := r3.Dot(oc, oc) - radius*radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	if t := -b - sq; t > 1e-6 {
		return t, true
	}
	if t := -b + sq; t > 1e-6 {
		return t, true
	}
	return 0, false
}

func (s *Scene) shade(p, normal r3.Vec, albedo cubemap.LinearColor) cubemap.LinearColor {
	light := s.ambient(normal)

	if ndl := r3.Dot(normal, s.Sun.Direction); ndl > 0 && !s.shadowed(p, normal) {
		light = light.Add(s.Sun.Color.Scale(s.Sun.Intensity * float32(ndl)))
	}

	c := albedo.Mul(light)
	c.A = 1
	return c
}

// ambient approximates sky light arriving at a surface with the given normal.
func (s *Scene) ambient(normal r3.Vec) cubemap.LinearColor {
	w := float32(0.5 + 0.5*normal.Z)
	return s.Sky.Zenith.Scale(w).Add(s.Sky.Ground.Scale(1 - w)).Scale(0.5)
}

func (s *Scene) shadowed(p, normal r3.Vec) bool {
	origin := r3.Add(p, r3.Scale(1e-3, normal))
	for i := range s.Spheres {
		if _, ok := raySphere(origin, s.Sun.Direction, s.Spheres[i].Center, s.Spheres[i].Radius); ok {
			return true
		}
	}
	return false
}

// background is the sky dome, the sun disc and clouds.
func (s *Scene) background(dir r3.Vec) cubemap.LinearColor {
	if dir.Z < 0 {
		return s.Sky.Ground
	}

	c := lerp(s.Sky.Horizon, s.Sky.Zenith, float32(math.Sqrt(dir.Z)))

	if s.Sky.CloudCover > 0 && dir.Z > 0.02 && s.clouds != nil {
		// Project onto a flat cloud plane above the viewer.
		u, v := dir.X/dir.Z*s.Sky.CloudScale, dir.Y/dir.Z*s.Sky.CloudScale
		n := s.clouds.Eval2(u, v)
		cover := smoothstep(1-s.Sky.CloudCover, 1, n)
		// Clouds fade out towards the horizon.
		cover *= math.Min(1, dir.Z*4)
		c = lerp(c, cubemap.LinearColor{R: 0.9, G: 0.9, B: 0.92, A: 1}, float32(cover))
	}

	if s.Sun.AngularRadius > 0 && r3.Dot(dir, s.Sun.Direction) > math.Cos(s.Sun.AngularRadius) {
		c = c.Add(s.Sun.Color.Scale(s.Sun.Intensity))
	}

	c.A = 1
	return c
}

func lerp(a, b cubemap.LinearColor, t float32) cubemap.LinearColor {
	return a.Scale(1 - t).Add(b.Scale(t))
}

func smoothstep(e0, e1, x float64) float64 {
	t := math.Max(0, math.Min(1, (x-e0)/(e1-e0)))
	return t * t * (3 - 2*t)
}
