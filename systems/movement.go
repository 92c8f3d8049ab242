// Package systems contains ECS systems for probe entities.
package systems

import (
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/lumaprobe/components"
)

// MovementSystem advances moving and orbiting probes.
type MovementSystem struct {
	linear  ecs.Filter2[components.Position, components.Velocity]
	orbital ecs.Filter2[components.Position, components.Orbit]
}

// NewMovementSystem creates a new movement system.
func NewMovementSystem(w *ecs.World) *MovementSystem {
	return &MovementSystem{
		linear:  *ecs.NewFilter2[components.Position, components.Velocity](w),
		orbital: *ecs.NewFilter2[components.Position, components.Orbit](w),
	}
}

// Update moves entities by dt seconds.
func (s *MovementSystem) Update(dt float64) {
	query := s.linear.Query()
	for query.Next() {
		pos, vel := query.Get()
		pos.X += vel.X * dt
		pos.Y += vel.Y * dt
		pos.Z += vel.Z * dt
	}

	oq := s.orbital.Query()
	for oq.Next() {
		pos, orb := oq.Get()
		orb.Phase = math.Mod(orb.Phase+orb.Speed*dt, 2*math.Pi)
		pos.X = orb.Center.X + orb.Radius*math.Cos(orb.Phase)
		pos.Y = orb.Center.Y + orb.Radius*math.Sin(orb.Phase)
		pos.Z = orb.Center.Z
	}
}
