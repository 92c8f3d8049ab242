package cubemap

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// EquirectUV maps a direction to a single latitude/longitude UV, independent
// of cube faces. It is meant for editor and debug display, not for sampling.
//
//	u = (1 + atan2(x, -y)/π) / 2
//	v = acos(z) / π
func EquirectUV(dir r3.Vec) UV {
	n := SafeUnit(dir)
	return UV{
		U: (1 + math.Atan2(n.X, -n.Y)/math.Pi) / 2,
		V: math.Acos(math.Max(-1, math.Min(1, n.Z))) / math.Pi,
	}
}

// EquirectDirection is the inverse of EquirectUV. v=0 looks straight up (+Z).
func EquirectDirection(uv UV) r3.Vec {
	theta := uv.V * math.Pi
	phi := (2*uv.U - 1) * math.Pi
	s := math.Sin(theta)
	return r3.Vec{
		X: s * math.Sin(phi),
		Y: -s * math.Cos(phi),
		Z: math.Cos(theta),
	}
}
