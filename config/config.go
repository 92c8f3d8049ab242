// Package config provides configuration loading and access for probe runs.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/lumaprobe/luminance"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all run configuration parameters.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Simulation SimulationConfig `yaml:"simulation"`
	Capture    CaptureConfig    `yaml:"capture"`
	Blur       BlurConfig       `yaml:"blur"`
	Scene      SceneConfig      `yaml:"scene"`
	Probes     []ProbeConfig    `yaml:"probes"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// Vec3 is a position or direction in world units, Z-up.
type Vec3 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// Color is a linear RGB color.
type Color struct {
	R float64 `yaml:"r"`
	G float64 `yaml:"g"`
	B float64 `yaml:"b"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// SimulationConfig holds host loop settings.
type SimulationConfig struct {
	DT float64 `yaml:"dt"` // Seconds per tick
}

// CaptureConfig holds capture target and refresh settings.
type CaptureConfig struct {
	RefreshTime     float64 `yaml:"refresh_time"`      // Max capture age in seconds
	RefreshDistance float64 `yaml:"refresh_distance"`  // Max probe movement before recapture
	Resolution      int     `yaml:"resolution"`        // Face size in pixels
	MaxViewDistance float64 `yaml:"max_view_distance"` // Far clip of the capture
	ClearColor      Color   `yaml:"clear_color"`       // Background of GPU captures
}

// BlurConfig holds spiral blur settings.
type BlurConfig struct {
	Radius  float64 `yaml:"radius"`
	Samples int     `yaml:"samples"`
}

// SceneConfig describes the synthetic scene.
type SceneConfig struct {
	SkyZenith    Color          `yaml:"sky_zenith"`
	SkyHorizon   Color          `yaml:"sky_horizon"`
	SkyGround    Color          `yaml:"sky_ground"`
	CloudCover   float64        `yaml:"cloud_cover"`
	CloudScale   float64        `yaml:"cloud_scale"`
	CloudSeed    int64          `yaml:"cloud_seed"`
	SunDirection Vec3           `yaml:"sun_direction"`
	SunColor     Color          `yaml:"sun_color"`
	SunIntensity float64        `yaml:"sun_intensity"`
	SunRadius    float64        `yaml:"sun_radius"` // Angular radius, radians
	GroundHeight float64        `yaml:"ground_height"`
	GroundAlbedo Color          `yaml:"ground_albedo"`
	Spheres      []SphereConfig `yaml:"spheres"`
}

// SphereConfig is one sphere in the scene.
type SphereConfig struct {
	Center   Vec3    `yaml:"center"`
	Radius   float64 `yaml:"radius"`
	Albedo   Color   `yaml:"albedo"`
	Emission Color   `yaml:"emission"`
}

// ProbeConfig places one luminance probe.
type ProbeConfig struct {
	Name     string  `yaml:"name"`
	Position Vec3    `yaml:"position"`
	View     Vec3    `yaml:"view"`
	Velocity Vec3    `yaml:"velocity"`
	Orbit    *Orbit  `yaml:"orbit,omitempty"`
	Radius   float64 `yaml:"radius"` // Marker size in the viewer
}

// Orbit moves a probe on a horizontal circle around Center.
type Orbit struct {
	Center Vec3    `yaml:"center"`
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"` // Radians per second
}

// TelemetryConfig holds telemetry settings.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"`          // Seconds per stats window
	PerfCollectorWindow int     `yaml:"perf_collector_window"` // Ticks averaged by the perf collector
	RecordSamples       bool    `yaml:"record_samples"`        // Write every query to samples.csv
	PanoramaWidth       int     `yaml:"panorama_width"`
	PanoramaHeight      int     `yaml:"panorama_height"`
}

// DerivedConfig holds values computed from the loaded config.
type DerivedConfig struct {
	ScreenW32 float32
	ScreenH32 float32
	// TicksPerSecond is 1/DT.
	TicksPerSecond float64
}

var global *Config

// Init loads configuration from path (or embedded defaults if empty) and
// sets the global config.
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only overwrites fields present in the file. Lists are replaced.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	cfg.computeDerived()

	return cfg, nil
}

// Validate reports every setting that cannot be used.
func (c *Config) Validate() error {
	var errs []error
	if err := c.Settings().Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.Capture.Resolution <= 0 {
		errs = append(errs, fmt.Errorf("capture.resolution must be positive, got %d", c.Capture.Resolution))
	}
	if c.Capture.MaxViewDistance <= 0 {
		errs = append(errs, fmt.Errorf("capture.max_view_distance must be positive, got %v", c.Capture.MaxViewDistance))
	}
	if c.Simulation.DT <= 0 {
		errs = append(errs, fmt.Errorf("simulation.dt must be positive, got %v", c.Simulation.DT))
	}
	names := make(map[string]bool, len(c.Probes))
	for i, p := range c.Probes {
		if p.Name == "" {
			errs = append(errs, fmt.Errorf("probes[%d]: name is required", i))
		} else if names[p.Name] {
			errs = append(errs, fmt.Errorf("probes[%d]: duplicate name %q", i, p.Name))
		}
		names[p.Name] = true
		if p.View == (Vec3{}) {
			errs = append(errs, fmt.Errorf("probes[%d]: view direction is zero", i))
		}
	}
	return errors.Join(errs...)
}

// Settings returns the probe settings described by the capture and blur
// sections.
func (c *Config) Settings() luminance.Settings {
	return luminance.Settings{
		RefreshTime:     c.Capture.RefreshTime,
		RefreshDistance: c.Capture.RefreshDistance,
		BlurRadius:      c.Blur.Radius,
		BlurSamples:     c.Blur.Samples,
	}
}

// SetSettings writes probe settings back into the capture and blur sections.
func (c *Config) SetSettings(s luminance.Settings) {
	c.Capture.RefreshTime = s.RefreshTime
	c.Capture.RefreshDistance = s.RefreshDistance
	c.Blur.Radius = s.BlurRadius
	c.Blur.Samples = s.BlurSamples
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
	c.Derived.TicksPerSecond = 1 / c.Simulation.DT

	for i := range c.Probes {
		if c.Probes[i].Radius == 0 {
			c.Probes[i].Radius = 10
		}
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
