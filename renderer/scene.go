package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/lumaprobe/cubemap"
	"github.com/pthm-cable/lumaprobe/scene"
)

// sphereRings and sphereSlices set the tessellation of drawn spheres.
const (
	sphereRings  = 16
	sphereSlices = 24
)

// SceneRenderer draws a scene.Scene with raylib. Shading is flat per object:
// each sphere gets the color the CPU tracer computes at its sun-facing point,
// so GPU and software captures agree on broad colors.
type SceneRenderer struct {
	scene *scene.Scene
}

// NewSceneRenderer creates a renderer for s.
func NewSceneRenderer(s *scene.Scene) *SceneRenderer {
	return &SceneRenderer{scene: s}
}

// Scene returns the scene being drawn.
func (r *SceneRenderer) Scene() *scene.Scene {
	return r.scene
}

// Draw renders the scene as seen from eye. Must be called between
// BeginMode3D and EndMode3D. Objects entirely beyond maxDistance are skipped.
func (r *SceneRenderer) Draw(eye r3.Vec, maxDistance float64) {
	s := r.scene
	if s == nil {
		return
	}

	// Ground as a thin slab, top face at GroundHeight.
	ground := s.GroundAlbedo.Mul(s.Sky.Zenith.Scale(0.5).Add(s.Sun.Color.Scale(s.Sun.Intensity * float32(s.Sun.Direction.Z))))
	size := float32(2 * maxDistance)
	rl.DrawCube(rl.NewVector3(float32(eye.X), float32(eye.Y), float32(s.GroundHeight)-0.5), size, size, 1, displayColor(ground))

	// Sun disc just inside the far clip.
	if s.Sun.AngularRadius > 0 && s.Sun.Direction.Z > 0 {
		d := 0.9 * maxDistance
		center := r3.Add(eye, r3.Scale(d, s.Sun.Direction))
		rl.DrawSphereEx(vec3(center), float32(d*s.Sun.AngularRadius), 8, 8, displayColor(s.Sun.Color.Scale(s.Sun.Intensity)))
	}

	for i := range s.Spheres {
		sp := &s.Spheres[i]
		if r3.Norm(r3.Sub(sp.Center, eye))-sp.Radius > maxDistance {
			continue
		}
		probe := r3.Add(sp.Center, r3.Scale(sp.Radius*1.001, s.Sun.Direction))
		c := s.Trace(probe, r3.Scale(-1, s.Sun.Direction))
		rl.DrawSphereEx(vec3(sp.Center), float32(sp.Radius), sphereRings, sphereSlices, displayColor(c))
	}
}

// DrawMarker draws a probe marker: a sphere in the probe's luminance color
// and a line along its view direction.
func DrawMarker(pos, view r3.Vec, radius float64, c cubemap.LinearColor) {
	rl.DrawSphere(vec3(pos), float32(radius), displayColor(c))
	rl.DrawSphereWires(vec3(pos), float32(radius)*1.05, 6, 8, rl.DarkGray)
	tip := r3.Add(pos, r3.Scale(radius*4, cubemap.SafeUnit(view)))
	rl.DrawLine3D(vec3(pos), vec3(tip), rl.Yellow)
}

// BeginView starts 3D mode for a Z-up viewer camera at eye looking at target.
// Pair with rl.EndMode3D.
func BeginView(eye, target r3.Vec, fovy float32) {
	rl.BeginMode3D(rl.Camera3D{
		Position:   vec3(eye),
		Target:     vec3(target),
		Up:         rl.NewVector3(0, 0, 1),
		Fovy:       fovy,
		Projection: rl.CameraPerspective,
	})
}
