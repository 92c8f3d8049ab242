package camera

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Orbit is a viewer camera circling a target point, Z-up.
type Orbit struct {
	Target r3.Vec

	// Yaw around +Z and pitch above the XY plane, in radians.
	Yaw, Pitch float64

	Distance float64

	// Distance constraints
	MinDistance, MaxDistance float64
}

// maxPitch keeps the camera off the poles where the look-at basis flips.
const maxPitch = math.Pi/2 - 0.01

// NewOrbit creates a camera looking at target from distance.
func NewOrbit(target r3.Vec, distance float64) *Orbit {
	return &Orbit{
		Target:      target,
		Yaw:         -math.Pi / 2,
		Pitch:       0.3,
		Distance:    distance,
		MinDistance: distance / 10,
		MaxDistance: distance * 10,
	}
}

// Position returns the camera position in world coordinates.
func (o *Orbit) Position() r3.Vec {
	cp := math.Cos(o.Pitch)
	offset := r3.Vec{
		X: cp * math.Cos(o.Yaw),
		Y: cp * math.Sin(o.Yaw),
		Z: math.Sin(o.Pitch),
	}
	return r3.Add(o.Target, r3.Scale(o.Distance, offset))
}

// Forward returns the unit view direction.
func (o *Orbit) Forward() r3.Vec {
	return r3.Unit(r3.Sub(o.Target, o.Position()))
}

// Rotate turns the camera by the given yaw and pitch deltas. Yaw wraps,
// pitch is clamped short of straight up and down.
func (o *Orbit) Rotate(dyaw, dpitch float64) {
	o.Yaw = mod(o.Yaw+dyaw, 2*math.Pi)
	o.Pitch = clamp(o.Pitch+dpitch, -maxPitch, maxPitch)
}

// SetDistance sets the orbit distance, clamped to min/max.
func (o *Orbit) SetDistance(d float64) {
	o.Distance = clamp(d, o.MinDistance, o.MaxDistance)
}

// ZoomBy divides the distance by factor (factor > 1 moves closer).
func (o *Orbit) ZoomBy(factor float64) {
	if factor <= 0 {
		return
	}
	o.SetDistance(o.Distance / factor)
}

// mod computes the positive modulo (Go's math.Mod can return negative).
func mod(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	return r
}

// clamp restricts a value to a range.
func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
