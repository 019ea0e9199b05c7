package action

import (
	"math"

	"github.com/lixenwraith/gaze-browse/vmath"
)

// ZoomState is the progression mode of a zoom session
type ZoomState uint8

const (
	StateZoom       ZoomState = iota // Samples are collected and zoom progresses
	StateDebugFixed                  // Everything frozen for inspection, entered only on request
)

func (s ZoomState) String() string {
	if s == StateDebugFixed {
		return "debug-fixed"
	}
	return "zoom"
}

// Phase is the refinement stage derived from log zoom
type Phase uint8

const (
	PhaseOrientation     Phase = iota // Coarse, fast narrowing toward the gaze
	PhaseDriftCorrection              // Fine correction of systematic tracker offset
	PhaseFinished                     // Threshold reached, coordinate is final
)

func (p Phase) String() string {
	switch p {
	case PhaseOrientation:
		return "orientation"
	case PhaseDriftCorrection:
		return "drift-correction"
	case PhaseFinished:
		return "finished"
	}
	return "unknown"
}

// PhaseController maps log zoom to a phase and decides zoom speed per phase
type PhaseController struct {
	maxOrientation     float64
	maxDriftCorrection float64
	zoomSpeed          float64
	slowdown           float64
}

// NewPhaseController creates a controller from sanitized configuration
func NewPhaseController(cfg ZoomConfig) PhaseController {
	return PhaseController{
		maxOrientation:     cfg.MaxOrientationLogZoom,
		maxDriftCorrection: cfg.MaxDriftCorrectionLogZoom,
		zoomSpeed:          cfg.ZoomSpeed,
		slowdown:           cfg.DeviationSlowdown,
	}
}

// PhaseOf returns the phase for a log zoom, thresholds have no hysteresis
func (pc PhaseController) PhaseOf(logZoom float64) Phase {
	switch {
	case logZoom > pc.maxOrientation:
		return PhaseOrientation
	case logZoom > pc.maxDriftCorrection:
		return PhaseDriftCorrection
	default:
		return PhaseFinished
	}
}

// ZoomRate returns the linear zoom increase per second
// Drift correction slows down while deviation is high so correction can settle
func (pc PhaseController) ZoomRate(phase Phase, deviation float64) float64 {
	switch phase {
	case PhaseOrientation:
		return pc.zoomSpeed
	case PhaseDriftCorrection:
		return pc.zoomSpeed * math.Max(0, 1-pc.slowdown*vmath.Clamp01(deviation))
	}
	return 0
}

// LogZoom converts linear zoom (>= 1) to log zoom in [0,1], 1 meaning no magnification
func LogZoom(linZoom float64) float64 {
	if linZoom <= 1 {
		return 1
	}
	return vmath.Clamp01(1 - math.Log(linZoom))
}

// LinZoom is the inverse of LogZoom
func LinZoom(logZoom float64) float64 {
	return math.Exp(1 - vmath.Clamp01(logZoom))
}
