package stickr

import (
	"errors"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
)

// Default tuning values.
const (
	DefaultMinScale           = 0.25
	DefaultMaxScale           = 5.0
	DefaultTiltBound          = 180.0
	DefaultTiltSlowFactor     = 3.0
	DefaultScaleSpanThreshold = 300.0
	DefaultCameraDistance     = 576.0 // 8 inches at 72 dpi
	DefaultHandleRadius       = 48.0
)

// ErrInvalidConfig is returned (wrapped) when a Config fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the engine constants. They are fixed once the engine is
// created.
type Config struct {
	// MinScale and MaxScale bound the cumulative uniform scale.
	MinScale float64 `toml:"min_scale"`
	MaxScale float64 `toml:"max_scale"`

	// TiltBound is the hard clamp, in degrees, for both tilt axes.
	TiltBound float64 `toml:"tilt_bound"`

	// TiltSlowFactor divides every tilt delta before it is accumulated.
	TiltSlowFactor float64 `toml:"tilt_slow_factor"`

	// ScaleSpanThreshold is the vertical pointer span above which two-pointer
	// motion scales the element instead of tilting it.
	ScaleSpanThreshold float64 `toml:"scale_span_threshold"`

	// CameraDistance is the distance of the virtual camera used to project
	// tilt into a perspective matrix.
	CameraDistance float64 `toml:"camera_distance"`

	// HandleRadius is the touch radius of the corner handles. Zero disables
	// the handles.
	HandleRadius float64 `toml:"handle_radius"`
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		MinScale:           DefaultMinScale,
		MaxScale:           DefaultMaxScale,
		TiltBound:          DefaultTiltBound,
		TiltSlowFactor:     DefaultTiltSlowFactor,
		ScaleSpanThreshold: DefaultScaleSpanThreshold,
		CameraDistance:     DefaultCameraDistance,
		HandleRadius:       DefaultHandleRadius,
	}
}

// Validate reports whether the configuration is usable.
func (c Config) Validate() error {
	switch {
	case !finite(c.MinScale, c.MaxScale, c.TiltBound, c.TiltSlowFactor,
		c.ScaleSpanThreshold, c.CameraDistance, c.HandleRadius):
		return fmt.Errorf("%w: non-finite value", ErrInvalidConfig)
	case c.MinScale <= 0:
		return fmt.Errorf("%w: min_scale must be positive, got %v", ErrInvalidConfig, c.MinScale)
	case c.MaxScale < c.MinScale:
		return fmt.Errorf("%w: max_scale %v below min_scale %v", ErrInvalidConfig, c.MaxScale, c.MinScale)
	case c.TiltBound <= 0:
		return fmt.Errorf("%w: tilt_bound must be positive, got %v", ErrInvalidConfig, c.TiltBound)
	case c.TiltSlowFactor <= 0:
		return fmt.Errorf("%w: tilt_slow_factor must be positive, got %v", ErrInvalidConfig, c.TiltSlowFactor)
	case c.ScaleSpanThreshold < 0:
		return fmt.Errorf("%w: scale_span_threshold must not be negative, got %v", ErrInvalidConfig, c.ScaleSpanThreshold)
	case c.CameraDistance <= 0:
		return fmt.Errorf("%w: camera_distance must be positive, got %v", ErrInvalidConfig, c.CameraDistance)
	case c.HandleRadius < 0:
		return fmt.Errorf("%w: handle_radius must not be negative, got %v", ErrInvalidConfig, c.HandleRadius)
	}
	return nil
}

// LoadConfig decodes a TOML file over DefaultConfig, so keys missing from
// the file keep their defaults, and validates the result.
func LoadConfig(path string) (Config, error) {
	conf := DefaultConfig()
	if _, err := toml.DecodeFile(path, &conf); err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := conf.Validate(); err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return conf, nil
}

// ParseConfig is LoadConfig for in-memory TOML.
func ParseConfig(data string) (Config, error) {
	conf := DefaultConfig()
	if _, err := toml.Decode(data, &conf); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := conf.Validate(); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return conf, nil
}

// Write encodes the configuration as TOML.
func (c Config) Write(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
