package game

import (
	"errors"
	"fmt"

	"github.com/pthm-cable/lumaprobe/luminance"
)

// Settings returns the probe settings currently in effect.
func (g *Game) Settings() luminance.Settings {
	return g.config().Settings()
}

// ApplySettings updates every probe and forces each to recapture. Invalid
// settings are rejected before any probe changes.
func (g *Game) ApplySettings(s luminance.Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	g.config().SetSettings(s)

	var errs []error
	for _, e := range g.entries {
		if err := e.probe.SetSettings(s); err != nil {
			errs = append(errs, fmt.Errorf("probe %s: %w", e.name, err))
		}
	}
	return errors.Join(errs...)
}
