package systems

import (
	"image/color"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/lumaprobe/components"
	"github.com/pthm-cable/lumaprobe/cubemap"
)

// Reading is one probe's luminance query result for a tick.
type Reading struct {
	ID     uint32
	Name   string
	Linear cubemap.LinearColor
	Color  color.RGBA
	Luma   float64
	Misses uint64
}

// ProbeSystem queries every probe's luminance once per tick. Queries are
// sequential; a probe's refresh and sampling never overlap.
type ProbeSystem struct {
	filter   ecs.Filter3[components.ProbeRef, components.View, components.Luminance]
	readings []Reading
}

// NewProbeSystem creates a new probe system.
func NewProbeSystem(w *ecs.World) *ProbeSystem {
	return &ProbeSystem{
		filter: *ecs.NewFilter3[components.ProbeRef, components.View, components.Luminance](w),
	}
}

// Update queries all probes and stores the results on their Luminance
// component. The returned slice is reused by the next call.
func (s *ProbeSystem) Update() []Reading {
	s.readings = s.readings[:0]

	query := s.filter.Query()
	for query.Next() {
		ref, view, lum := query.Get()
		if ref.Probe == nil {
			continue
		}

		linear := ref.Probe.LuminanceLinear(view.Vec())
		lum.Linear = linear
		lum.Color = linear.ToRGBA8(true)
		lum.Luma = linear.Luma()

		s.readings = append(s.readings, Reading{
			ID:     ref.ID,
			Name:   ref.Name,
			Linear: linear,
			Color:  lum.Color,
			Luma:   lum.Luma,
			Misses: ref.Probe.Sampler().Misses(),
		})
	}
	return s.readings
}
