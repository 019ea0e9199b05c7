package action

import (
	"math"

	"github.com/lixenwraith/gaze-browse/vmath"
)

// minLogZoom guards the screen transform against division by zero
const minLogZoom = 1e-6

// PageFromScreen maps a surface-relative coordinate to the page coordinate shown there
// zoom is the zoom coordinate, offset the center offset, both in page space
// The zoom coordinate is displayed at zoom+offset and magnified by 1/logZoom around it
func PageFromScreen(screen, zoom, offset vmath.Vec2F, logZoom float64) vmath.Vec2F {
	rel := vmath.V2FSub(vmath.V2FSub(screen, zoom), offset)
	return vmath.V2FAdd(zoom, vmath.V2FScale(rel, logZoom))
}

// ScreenFromPage is the inverse of PageFromScreen
func ScreenFromPage(page, zoom, offset vmath.Vec2F, logZoom float64) vmath.Vec2F {
	l := math.Max(logZoom, minLogZoom)
	rel := vmath.V2FScale(vmath.V2FSub(page, zoom), 1/l)
	return vmath.V2FAdd(vmath.V2FAdd(zoom, rel), offset)
}

// CenterOffset pulls the displayed zoom coordinate toward the surface center as zoom grows
// multiplier 1 moves the outermost corner into the center at maximum zoom
func CenterOffset(zoom vmath.Vec2F, logZoom, multiplier float64) vmath.Vec2F {
	if multiplier == 0 {
		return vmath.Vec2F{}
	}
	toCenter := vmath.V2FSub(vmath.Center, zoom)
	return vmath.V2FScale(toCenter, multiplier*(1-vmath.Clamp01(logZoom)))
}

// Refiner moves the zoom coordinate each tick and estimates deviation
type Refiner struct {
	moveDuration float64
	fading       float64
	deadZone     float64
	weighting    Weighting
}

// NewRefiner creates a refiner from sanitized configuration
func NewRefiner(cfg ZoomConfig, w Weighting) Refiner {
	if w == nil {
		w = RecencyWeighting{}
	}
	return Refiner{
		moveDuration: cfg.MoveDuration,
		fading:       cfg.DeviationFadingDuration,
		deadZone:     cfg.DeviationDeadZone,
		weighting:    w,
	}
}

// Weighting returns the sample weighting policy in use
func (r Refiner) Weighting() Weighting {
	return r.weighting
}

// moveFactor is the share of the remaining distance covered in dt
func (r Refiner) moveFactor(dt float64) float64 {
	return math.Min(1, dt/r.moveDuration)
}

// Orient moves the zoom coordinate toward the page coordinate under the gaze
// A single noisy sample moves it by at most dt/MoveDuration of the distance
func (r Refiner) Orient(zoom, offset vmath.Vec2F, logZoom float64, gaze vmath.Vec2F, dt float64) vmath.Vec2F {
	target := PageFromScreen(gaze, zoom, offset, logZoom)
	return vmath.V2FClamp01(vmath.V2FLerp(zoom, target, r.moveFactor(dt)))
}

// FadeDeviation lets deviation decay linearly to zero over the fading duration
func (r Refiner) FadeDeviation(deviation, dt float64) float64 {
	if dt <= 0 {
		return deviation
	}
	return math.Max(0, deviation-dt/r.fading)
}

// ObservedDeviation measures how far the zoom coordinate sits from the weighted gaze
// Measured in surface units at the current zoom so it reads the same at every magnification
func (r Refiner) ObservedDeviation(zoom, page vmath.Vec2F, logZoom float64) float64 {
	l := math.Max(logZoom, minLogZoom)
	d := vmath.Clamp01(vmath.V2FDist(zoom, page) / l)
	if d < r.deadZone {
		return 0
	}
	return d
}

// Correct runs one drift correction tick
// deviation is the already faded value; the result is the new zoom coordinate and deviation
// The coordinate settles on the weighted gaze with the move time constant at any distance
// Deviation only reports the discrepancy, it slows zoom in ZoomRate
func (r Refiner) Correct(zoom vmath.Vec2F, logZoom float64, buf *SampleBuffer, deviation, dt float64) (vmath.Vec2F, float64) {
	page, ok := buf.WeightedPageGaze(r.weighting)
	if !ok {
		return zoom, deviation
	}

	deviation = math.Max(deviation, r.ObservedDeviation(zoom, page, logZoom))
	next := vmath.V2FLerp(zoom, page, r.moveFactor(dt))
	return vmath.V2FClamp01(next), deviation
}
