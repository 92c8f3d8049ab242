package luminance

import (
	"image/color"
	"log/slog"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/lumaprobe/cubemap"
)

// Option configures a Probe.
type Option func(*Probe)

// WithLogger sets the logger used for refresh diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(p *Probe) {
		p.policy.logger = l
	}
}

// WithObserver registers an observer for refresh attempts.
func WithObserver(o RefreshObserver) Option {
	return func(p *Probe) {
		p.policy.observer = o
	}
}

// Probe answers luminance queries for one capture point. It is not safe for
// concurrent use; queries and refreshes must be sequenced by the caller.
type Probe struct {
	settings  Settings
	store     *cubemap.Faces
	sampler   *cubemap.Sampler
	policy    *RefreshPolicy
	estimator *Estimator
}

// NewProbe returns a probe that captures through provider. Nothing is
// captured until the first query or Refresh.
func NewProbe(settings Settings, provider CaptureProvider, opts ...Option) *Probe {
	store := cubemap.NewFaces()
	sampler := cubemap.NewSampler(store)
	p := &Probe{
		settings:  settings,
		store:     store,
		sampler:   sampler,
		policy:    NewRefreshPolicy(provider, store, settings.RefreshTime, settings.RefreshDistance),
		estimator: NewEstimator(sampler, settings.BlurRadius, settings.BlurSamples),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Luminance refreshes the capture if stale and returns the blurred sRGB color
// seen along view. Capture failures are logged and the previous capture, if
// any, is sampled instead.
func (p *Probe) Luminance(view r3.Vec) color.RGBA {
	return p.LuminanceLinear(view).ToRGBA8(true)
}

// LuminanceLinear is Luminance without quantization.
func (p *Probe) LuminanceLinear(view r3.Vec) cubemap.LinearColor {
	_, _ = p.policy.TryRefresh()
	return p.estimator.EstimateLinear(view)
}

// Sample returns the unblurred stored color in direction dir. It does not
// refresh.
func (p *Probe) Sample(dir r3.Vec) cubemap.LinearColor {
	return p.sampler.Sample(dir)
}

// Refresh captures unconditionally.
func (p *Probe) Refresh() error {
	return p.policy.Refresh()
}

// Settings returns the current settings.
func (p *Probe) Settings() Settings {
	return p.settings
}

// SetSettings applies new settings and recaptures immediately.
func (p *Probe) SetSettings(s Settings) error {
	p.settings = s
	p.policy.SetThresholds(s.RefreshTime, s.RefreshDistance)
	p.estimator.SetBlur(s.BlurRadius, s.BlurSamples)
	return p.policy.Refresh()
}

// Sampler returns the probe's cubemap sampler.
func (p *Probe) Sampler() *cubemap.Sampler {
	return p.sampler
}

// Faces returns the probe's pixel store.
func (p *Probe) Faces() *cubemap.Faces {
	return p.store
}

// Policy returns the probe's refresh policy.
func (p *Probe) Policy() *RefreshPolicy {
	return p.policy
}

// CubemapUV maps a direction to an equirectangular UV for display.
func CubemapUV(dir r3.Vec) cubemap.UV {
	return cubemap.EquirectUV(dir)
}
