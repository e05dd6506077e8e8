package panzoom

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the tunables shared by the tracker, the camera and the hosts.
type Config struct {
	// ZoomEpsilon is the smallest mean contact distance that yields a pinch ratio.
	ZoomEpsilon float64 `env:"PANZOOM_ZOOM_EPSILON" envDefault:"1e-6"`
	// MinZoom and MaxZoom clamp the camera zoom.
	MinZoom float64 `env:"PANZOOM_MIN_ZOOM" envDefault:"0.05"`
	MaxZoom float64 `env:"PANZOOM_MAX_ZOOM" envDefault:"20"`
	// WheelZoomStep is the zoom factor per wheel notch.
	WheelZoomStep float64 `env:"PANZOOM_WHEEL_ZOOM_STEP" envDefault:"1.1"`
	// WheelZoomDuration is the wheel zoom animation length.
	WheelZoomDuration time.Duration `env:"PANZOOM_WHEEL_ZOOM_DURATION" envDefault:"120ms"`
	// ClickSlop is how far, in pixels, a mouse may travel between press and
	// release and still count as a click.
	ClickSlop float64 `env:"PANZOOM_CLICK_SLOP" envDefault:"4"`

	LogLevel  string `env:"PANZOOM_LOG_LEVEL"  envDefault:"warn"`
	LogFormat string `env:"PANZOOM_LOG_FORMAT" envDefault:"text"`
}

// DefaultConfig returns the built-in defaults, ignoring the environment.
func DefaultConfig() Config {
	var cfg Config
	// Parsing an empty environment only applies envDefault tags.
	_ = env.ParseWithOptions(&cfg, env.Options{Environment: map[string]string{}})
	return cfg
}

// LoadConfigFromEnv loads configuration from PANZOOM_* environment variables
// and validates it.
func LoadConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every out-of-range field.
func (c Config) Validate() error {
	var errs []error
	if c.ZoomEpsilon < 0 {
		errs = append(errs, fmt.Errorf("zoom epsilon %g is negative", c.ZoomEpsilon))
	}
	if c.MinZoom <= 0 {
		errs = append(errs, fmt.Errorf("min zoom %g must be positive", c.MinZoom))
	}
	if c.MaxZoom < c.MinZoom {
		errs = append(errs, fmt.Errorf("max zoom %g is below min zoom %g", c.MaxZoom, c.MinZoom))
	}
	if c.WheelZoomStep <= 1 {
		errs = append(errs, fmt.Errorf("wheel zoom step %g must be greater than 1", c.WheelZoomStep))
	}
	if c.WheelZoomDuration < 0 {
		errs = append(errs, fmt.Errorf("wheel zoom duration %v is negative", c.WheelZoomDuration))
	}
	if c.ClickSlop < 0 {
		errs = append(errs, fmt.Errorf("click slop %g is negative", c.ClickSlop))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
