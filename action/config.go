package action

import (
	"math"

	"github.com/lixenwraith/gaze-browse/parameter"
)

// ZoomConfig holds all tunable parameters of the zoom coordinate action
// Durations are in seconds, speeds in units per second
type ZoomConfig struct {
	// Zoom progression
	ZoomSpeed                 float64 // Linear zoom increase per second
	MaxOrientationLogZoom     float64 // Orientation runs while logZoom is above this
	MaxDriftCorrectionLogZoom float64 // Session finishes once logZoom reaches this
	MoveDuration              float64 // Time constant for moving the zoom coordinate to input
	DeviationSlowdown         float64 // Zoom speed reduction at full deviation (0-1)

	// Sampling & drift correction
	SampleLifetime          float64 // Initial lifetime of a buffered sample
	DeviationFadingDuration float64 // Time for full deviation to fade to zero
	DeviationDeadZone       float64 // Observed deviation below this counts as none
	CenterOffsetMultiplier  float64 // Pull toward surface center at high zoom, 0 disables
	Weighting               string  // Sample weighting policy name

	// Presentation
	DoDimming       bool
	DimmingDuration float64
	DimmingValue    float64

	// Host protection
	MaxTimePerFrame float64 // Cap on a single tick
	StartAtGaze     bool    // First valid input moves the zoom coordinate to the gaze
}

// DefaultZoomConfig returns the recommended configuration
func DefaultZoomConfig() ZoomConfig {
	return ZoomConfig{
		ZoomSpeed:                 parameter.ZoomSpeed,
		MaxOrientationLogZoom:     parameter.MaxOrientationLogZoom,
		MaxDriftCorrectionLogZoom: parameter.MaxDriftCorrectionLogZoom,
		MoveDuration:              parameter.MoveDuration,
		DeviationSlowdown:         parameter.DeviationSlowdown,

		SampleLifetime:          parameter.SampleLifetime,
		DeviationFadingDuration: parameter.DeviationFadingDuration,
		DeviationDeadZone:       parameter.DeviationDeadZone,
		CenterOffsetMultiplier:  parameter.CenterOffsetMultiplier,
		Weighting:               parameter.WeightingPolicy,

		DoDimming:       true,
		DimmingDuration: parameter.DimmingDuration,
		DimmingValue:    parameter.DimmingValue,

		MaxTimePerFrame: parameter.MaxTimePerFrame,
	}
}

// PreciseZoomConfig zooms slower and pulls edge targets toward the center
func PreciseZoomConfig() ZoomConfig {
	cfg := DefaultZoomConfig()
	cfg.ZoomSpeed = 0.18
	cfg.MaxDriftCorrectionLogZoom = 0.4
	cfg.CenterOffsetMultiplier = 0.25
	cfg.DeviationSlowdown = 0.75
	cfg.Weighting = "zoom"
	return cfg
}

// FastZoomConfig trades precision for shorter sessions
func FastZoomConfig() ZoomConfig {
	cfg := DefaultZoomConfig()
	cfg.ZoomSpeed = 0.4
	cfg.MoveDuration = 0.3
	cfg.DeviationSlowdown = 0.25
	cfg.DeviationFadingDuration = 0.6
	return cfg
}

// Sanitize replaces out-of-range values so a session can always be built
// Each field falls back to its default when missing or nonsensical
func (c ZoomConfig) Sanitize() ZoomConfig {
	def := DefaultZoomConfig()
	positive := func(v, fallback float64) float64 {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return fallback
		}
		return v
	}
	unit := func(v, fallback float64) float64 {
		if math.IsNaN(v) || v < 0 || v > 1 {
			return fallback
		}
		return v
	}

	c.ZoomSpeed = positive(c.ZoomSpeed, def.ZoomSpeed)
	c.MoveDuration = positive(c.MoveDuration, def.MoveDuration)
	c.SampleLifetime = positive(c.SampleLifetime, def.SampleLifetime)
	c.DeviationFadingDuration = positive(c.DeviationFadingDuration, def.DeviationFadingDuration)
	c.MaxTimePerFrame = positive(c.MaxTimePerFrame, def.MaxTimePerFrame)
	c.DimmingDuration = positive(c.DimmingDuration, def.DimmingDuration)

	c.DeviationSlowdown = unit(c.DeviationSlowdown, def.DeviationSlowdown)
	c.DeviationDeadZone = unit(c.DeviationDeadZone, def.DeviationDeadZone)
	c.DimmingValue = unit(c.DimmingValue, def.DimmingValue)
	c.CenterOffsetMultiplier = unit(c.CenterOffsetMultiplier, def.CenterOffsetMultiplier)

	c.MaxOrientationLogZoom = unit(c.MaxOrientationLogZoom, def.MaxOrientationLogZoom)
	c.MaxDriftCorrectionLogZoom = unit(c.MaxDriftCorrectionLogZoom, def.MaxDriftCorrectionLogZoom)
	if c.MaxDriftCorrectionLogZoom >= c.MaxOrientationLogZoom {
		c.MaxOrientationLogZoom = def.MaxOrientationLogZoom
		c.MaxDriftCorrectionLogZoom = def.MaxDriftCorrectionLogZoom
	}

	if _, ok := LookupWeighting(c.Weighting); !ok {
		c.Weighting = def.Weighting
	}
	return c
}
