package luminance

import (
	"errors"
	"fmt"
)

// Settings control refresh gating and blur of a probe.
type Settings struct {
	// RefreshTime is the maximum capture age in seconds.
	RefreshTime float64 `yaml:"refresh_time"`

	// RefreshDistance is how far, in world units, the probe may move before
	// the capture is considered stale.
	RefreshDistance float64 `yaml:"refresh_distance"`

	// BlurRadius is the radius of the sampling spiral, in direction units.
	BlurRadius float64 `yaml:"blur_radius"`

	// BlurSamples is the number of spiral samples averaged per query.
	// Values below 1 are treated as 1.
	BlurSamples int `yaml:"blur_samples"`
}

// DefaultSettings returns the stock probe settings.
func DefaultSettings() Settings {
	return Settings{
		RefreshTime:     0.1,
		RefreshDistance: 50,
		BlurRadius:      0.3,
		BlurSamples:     32,
	}
}

// Validate reports settings that cannot produce meaningful estimates.
func (s Settings) Validate() error {
	var errs []error
	if s.RefreshTime < 0 {
		errs = append(errs, fmt.Errorf("refresh time %v is negative", s.RefreshTime))
	}
	if s.RefreshDistance < 0 {
		errs = append(errs, fmt.Errorf("refresh distance %v is negative", s.RefreshDistance))
	}
	if s.BlurRadius < 0 {
		errs = append(errs, fmt.Errorf("blur radius %v is negative", s.BlurRadius))
	}
	return errors.Join(errs...)
}
