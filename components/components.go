// Package components defines ECS components for luminance probes.
package components

import (
	"image/color"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/lumaprobe/cubemap"
	"github.com/pthm-cable/lumaprobe/luminance"
)

// Position represents an entity's world position.
type Position struct {
	X, Y, Z float64
}

// Vec returns the position as a vector.
func (p Position) Vec() r3.Vec {
	return r3.Vec{X: p.X, Y: p.Y, Z: p.Z}
}

// Velocity represents an entity's velocity in world units per second.
type Velocity struct {
	X, Y, Z float64
}

// View is the direction a probe reports luminance for. It does not need to
// be normalized.
type View struct {
	X, Y, Z float64
}

// Vec returns the view as a vector.
func (v View) Vec() r3.Vec {
	return r3.Vec{X: v.X, Y: v.Y, Z: v.Z}
}

// Orbit moves an entity on a horizontal circle.
type Orbit struct {
	Center r3.Vec
	Radius float64
	Speed  float64 // radians per second
	Phase  float64 // current angle, radians
}

// ProbeRef ties an entity to its luminance probe.
type ProbeRef struct {
	ID    uint32
	Name  string
	Probe *luminance.Probe
}

// Luminance holds the latest query result for a probe.
type Luminance struct {
	Color  color.RGBA
	Linear cubemap.LinearColor
	Luma   float64
}
