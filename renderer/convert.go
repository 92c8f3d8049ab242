package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/lumaprobe/cubemap"
)

// vec3 converts a world vector to raylib's float32 vector.
func vec3(v r3.Vec) rl.Vector3 {
	return rl.NewVector3(float32(v.X), float32(v.Y), float32(v.Z))
}

// displayColor converts a linear color to an opaque sRGB raylib color.
func displayColor(c cubemap.LinearColor) rl.Color {
	c.A = 1
	return c.ToRGBA8(true)
}
