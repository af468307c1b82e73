package config

import (
	"log"
	"os"
	"strconv"

	"github.com/iliyamo/venue-seatmap-editor/internal/viewport"
)

// EditorConfig carries the tunables of the canvas viewport. Operators can
// tighten the zoom range or disable gestures per deployment without a
// rebuild.
type EditorConfig struct {
	MinScale         float64
	MaxScale         float64
	ScaleStep        float64
	BoundaryPadding  float64
	WheelDamping     float64
	PinchSensitivity float64
	WheelZoom        bool
	PinchZoom        bool
}

// LoadEditor reads the EDITOR_* environment variables, falling back to the
// viewport defaults for anything unset.
func LoadEditor() EditorConfig {
	d := viewport.DefaultOptions()
	return EditorConfig{
		MinScale:         envFloat("EDITOR_MIN_SCALE", d.MinScale),
		MaxScale:         envFloat("EDITOR_MAX_SCALE", d.MaxScale),
		ScaleStep:        envFloat("EDITOR_SCALE_STEP", d.ScaleStep),
		BoundaryPadding:  envFloat("EDITOR_BOUNDARY_PADDING", d.BoundaryPadding),
		WheelDamping:     envFloat("EDITOR_WHEEL_DAMPING", d.WheelDamping),
		PinchSensitivity: envFloat("EDITOR_PINCH_SENSITIVITY", d.PinchSensitivity),
		WheelZoom:        envBool("EDITOR_WHEEL_ZOOM", d.WheelZoomEnabled),
		PinchZoom:        envBool("EDITOR_PINCH_ZOOM", d.PinchZoomEnabled),
	}
}

// ViewportOptions converts the config into the options consumed by
// viewport.New.
func (e EditorConfig) ViewportOptions() viewport.Options {
	opts := viewport.DefaultOptions()
	opts.MinScale = e.MinScale
	opts.MaxScale = e.MaxScale
	opts.ScaleStep = e.ScaleStep
	opts.BoundaryPadding = e.BoundaryPadding
	opts.WheelDamping = e.WheelDamping
	opts.PinchSensitivity = e.PinchSensitivity
	opts.WheelZoomEnabled = e.WheelZoom
	opts.PinchZoomEnabled = e.PinchZoom
	return opts
}

func envFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Fatalf("config: %s must be a number, got %q", key, v)
	}
	return f
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Fatalf("config: %s must be a boolean, got %q", key, v)
	}
	return b
}
