package game

import (
	"log/slog"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/lumaprobe/components"
	"github.com/pthm-cable/lumaprobe/config"
	"github.com/pthm-cable/lumaprobe/cubemap"
	"github.com/pthm-cable/lumaprobe/luminance"
	"github.com/pthm-cable/lumaprobe/renderer"
	"github.com/pthm-cable/lumaprobe/scene"
)

// BuildScene creates the synthetic scene described by the config.
func BuildScene(cfg *config.Config) *scene.Scene {
	sc := cfg.Scene
	spheres := make([]scene.Sphere, len(sc.Spheres))
	for i, s := range sc.Spheres {
		spheres[i] = scene.Sphere{
			Center:   vec(s.Center),
			Radius:   s.Radius,
			Albedo:   linear(s.Albedo),
			Emission: linear(s.Emission),
		}
	}

	return scene.New(
		scene.Sky{
			Zenith:     linear(sc.SkyZenith),
			Horizon:    linear(sc.SkyHorizon),
			Ground:     linear(sc.SkyGround),
			CloudCover: sc.CloudCover,
			CloudScale: sc.CloudScale,
			CloudSeed:  sc.CloudSeed,
		},
		scene.Sun{
			Direction:     vec(sc.SunDirection),
			Color:         linear(sc.SunColor),
			Intensity:     float32(sc.SunIntensity),
			AngularRadius: sc.SunRadius,
		},
		sc.GroundHeight,
		linear(sc.GroundAlbedo),
		spheres,
		cfg.Capture.MaxViewDistance,
	)
}

// spawnProbes creates one entity per configured probe, each with its own
// capture provider.
func (g *Game) spawnProbes() {
	cfg := g.config()
	for i, pc := range cfg.Probes {
		g.spawnProbe(uint32(i), pc)
	}
}

// spawnProbe creates a probe entity. Probes with an orbit move on a circle;
// the rest move with their (possibly zero) velocity.
func (g *Game) spawnProbe(id uint32, pc config.ProbeConfig) ecs.Entity {
	var entity ecs.Entity
	position := func() r3.Vec {
		return g.posMap.Get(entity).Vec()
	}

	provider, gpu := g.newProvider(position)
	probe := luminance.NewProbe(
		g.config().Settings(),
		provider,
		luminance.WithLogger(slog.Default().With("probe", pc.Name)),
		luminance.WithObserver(g.collector),
	)

	pos := components.Position{X: pc.Position.X, Y: pc.Position.Y, Z: pc.Position.Z}
	view := components.View{X: pc.View.X, Y: pc.View.Y, Z: pc.View.Z}
	ref := components.ProbeRef{ID: id, Name: pc.Name, Probe: probe}
	lum := components.Luminance{}

	if pc.Orbit != nil {
		orb := components.Orbit{
			Center: vec(pc.Orbit.Center),
			Radius: pc.Orbit.Radius,
			Speed:  pc.Orbit.Speed,
		}
		// Start on the circle so the first capture is taken where the
		// probe will be.
		pos = components.Position{X: orb.Center.X + orb.Radius, Y: orb.Center.Y, Z: orb.Center.Z}
		entity = g.orbitMapper.NewEntity(&pos, &view, &orb, &ref, &lum)
	} else {
		vel := components.Velocity{X: pc.Velocity.X, Y: pc.Velocity.Y, Z: pc.Velocity.Z}
		entity = g.fixedMapper.NewEntity(&pos, &view, &vel, &ref, &lum)
	}

	g.entries = append(g.entries, probeEntry{
		entity: entity,
		id:     id,
		name:   pc.Name,
		probe:  probe,
		radius: pc.Radius,
		gpu:    gpu,
	})
	return entity
}

// newProvider returns the capture provider for a probe: software ray casting
// in headless mode, GPU render targets otherwise.
func (g *Game) newProvider(position scene.PositionFunc) (luminance.CaptureProvider, *renderer.CubeCapture) {
	cfg := g.config()
	if g.headless {
		return scene.NewSoftwareCapture(g.scene, cfg.Capture.Resolution, g.clock, position), nil
	}
	gpu := renderer.NewCubeCapture(g.sceneRenderer, renderer.CubeCaptureOptions{
		Resolution:      cfg.Capture.Resolution,
		MaxViewDistance: cfg.Capture.MaxViewDistance,
		ClearColor:      linear(cfg.Capture.ClearColor),
		Clock:           g.clock,
		Position:        position,
	})
	return gpu, gpu
}

// probeCentroid returns the mean probe position.
func (g *Game) probeCentroid() r3.Vec {
	var sum r3.Vec
	if len(g.entries) == 0 {
		return sum
	}
	for _, e := range g.entries {
		sum = r3.Add(sum, g.posMap.Get(e.entity).Vec())
	}
	return r3.Scale(1/float64(len(g.entries)), sum)
}

func vec(v config.Vec3) r3.Vec {
	return r3.Vec{X: v.X, Y: v.Y, Z: v.Z}
}

func linear(c config.Color) cubemap.LinearColor {
	return cubemap.LinearColor{R: float32(c.R), G: float32(c.G), B: float32(c.B), A: 1}
}
