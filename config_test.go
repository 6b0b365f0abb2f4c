package stickr

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestParseConfigOverridesDefaults(t *testing.T) {
	cfg, err := ParseConfig(`
max_scale = 8.0
tilt_slow_factor = 2.0
handle_radius = 0.0
`)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	assertNear(t, "max_scale", cfg.MaxScale, 8)
	assertNear(t, "tilt_slow_factor", cfg.TiltSlowFactor, 2)
	assertNear(t, "handle_radius", cfg.HandleRadius, 0)
	assertNear(t, "min_scale default", cfg.MinScale, DefaultMinScale)
	assertNear(t, "camera_distance default", cfg.CameraDistance, DefaultCameraDistance)
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		invalid bool
	}{
		{"syntax", "max_scale = = 2", false},
		{"wrong type", `max_scale = "big"`, false},
		{"zero min", "min_scale = 0.0", true},
		{"max below min", "min_scale = 2.0\nmax_scale = 1.0", true},
		{"negative tilt bound", "tilt_bound = -1.0", true},
		{"zero slow factor", "tilt_slow_factor = 0.0", true},
		{"negative span", "scale_span_threshold = -5.0", true},
		{"zero camera", "camera_distance = 0.0", true},
		{"negative radius", "handle_radius = -1.0", true},
		{"infinite", "max_scale = inf", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig(tt.data)
			if err == nil {
				t.Fatal("expected error")
			}
			if got := errors.Is(err, ErrInvalidConfig); got != tt.invalid {
				t.Errorf("errors.Is(ErrInvalidConfig) = %v, want %v (err: %v)", got, tt.invalid, err)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stickr.toml")
	if err := os.WriteFile(path, []byte("scale_span_threshold = 150.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	assertNear(t, "scale_span_threshold", cfg.ScaleSpanThreshold, 150)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want os.ErrNotExist", err)
	}
}

func TestConfigWrite(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TiltBound = 90

	var buf bytes.Buffer
	if err := cfg.Write(&buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !strings.Contains(buf.String(), "tilt_bound = 90.0") {
		t.Errorf("output missing tilt_bound:\n%s", buf.String())
	}

	got, err := ParseConfig(buf.String())
	if err != nil {
		t.Fatalf("ParseConfig(Write output): %v", err)
	}
	if got != cfg {
		t.Errorf("reparsed = %+v, want %+v", got, cfg)
	}
}
