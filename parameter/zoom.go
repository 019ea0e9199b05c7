package parameter

// Zoom Progression
const (
	// ZoomSpeed is the linear zoom increase per second
	ZoomSpeed = 0.25

	// MaxOrientationLogZoom bounds the orientation phase, orientation runs while logZoom is above it
	MaxOrientationLogZoom = 0.75

	// MaxDriftCorrectionLogZoom ends the session once logZoom reaches it
	// Must be lower than MaxOrientationLogZoom
	MaxDriftCorrectionLogZoom = 0.5

	// MoveDuration is the time constant (seconds) used to replace the zoom coordinate with input
	MoveDuration = 0.5

	// DeviationSlowdown scales zoom speed down by deviation during drift correction
	// 0 keeps full speed, 1 stops zooming at full deviation
	DeviationSlowdown = 0.5
)

// Sampling & Drift Correction
const (
	// SampleLifetime is the initial lifetime (seconds) of a buffered gaze sample
	SampleLifetime = 0.5

	// DeviationFadingDuration is the time (seconds) full deviation needs to fade back to zero
	DeviationFadingDuration = 1.0

	// DeviationDeadZone is the observed deviation treated as no discrepancy
	DeviationDeadZone = 0.01

	// CenterOffsetMultiplier pulls the zoom coordinate toward the surface center at high zoom
	// One moves the outermost corner into the center at maximum zoom, zero disables the pull
	CenterOffsetMultiplier = 0.0

	// WeightingPolicy names the default sample weighting
	WeightingPolicy = "recency"
)

// Dimming
const (
	// DimmingDuration is the time (seconds) until the surface is fully dimmed
	DimmingDuration = 0.5

	// DimmingValue is the target dim level
	DimmingValue = 0.3
)

// Frame Timing
const (
	// MaxTimePerFrame caps a single tick (seconds) so a stalled host cannot skip both phases at once
	MaxTimePerFrame = 0.1

	// FramesPerSecond is the host loop rate used by the demo binaries
	FramesPerSecond = 60
)
