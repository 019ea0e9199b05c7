package action

import (
	"log"
	"math"

	"github.com/google/uuid"
	"github.com/lixenwraith/gaze-browse/vmath"
)

// Result is the output of a zoom session, valid after finish or abort
// Coordinate is normalized page space; converting to content pixels is the host's job
type Result struct {
	SessionID  string
	Coordinate vmath.Vec2F
	Completed  bool    // False when aborted before reaching the final zoom
	Ticks      int     // Ticks that advanced time
	Elapsed    float64 // Seconds of advanced time
}

// ZoomCoordinateAction refines a jittering gaze stream into one page coordinate
// Orientation zooms toward the gaze, drift correction compensates systematic tracker offset
type ZoomCoordinateAction struct {
	cfg         ZoomConfig
	phases      PhaseController
	refiner     Refiner
	startCenter vmath.Vec2F
	onPhase     func(from, to Phase)

	id        string
	lifecycle Lifecycle
	state     ZoomState
	phase     Phase

	relativeZoomCoordinate vmath.Vec2F
	relativeCenterOffset   vmath.Vec2F
	logZoom                float64 // [1..0], 1 - ln(linZoom)
	linZoom                float64 // [1..], only grows while zooming
	deviation              float64 // [0..1]
	firstUpdate            bool
	samples                *SampleBuffer
	look                   presentation

	ticks          int
	elapsed        float64
	warnedInactive bool
}

// ZoomOption configures a ZoomCoordinateAction at construction
type ZoomOption func(*ZoomCoordinateAction)

// WithWeighting overrides the configured sample weighting policy
func WithWeighting(w Weighting) ZoomOption {
	return func(z *ZoomCoordinateAction) {
		if w != nil {
			z.refiner.weighting = w
		}
	}
}

// WithStartCenter sets the zoom coordinate used on activation
func WithStartCenter(center vmath.Vec2F) ZoomOption {
	return func(z *ZoomCoordinateAction) {
		z.startCenter = vmath.V2FClamp01(center)
	}
}

// WithPhaseHook registers a callback invoked synchronously on every phase change
func WithPhaseHook(fn func(from, to Phase)) ZoomOption {
	return func(z *ZoomCoordinateAction) {
		z.onPhase = fn
	}
}

// NewZoomCoordinateAction creates an inactive zoom action
func NewZoomCoordinateAction(cfg ZoomConfig, opts ...ZoomOption) *ZoomCoordinateAction {
	cfg = cfg.Sanitize()
	w, _ := LookupWeighting(cfg.Weighting)

	z := &ZoomCoordinateAction{
		cfg:         cfg,
		phases:      NewPhaseController(cfg),
		refiner:     NewRefiner(cfg, w),
		startCenter: vmath.Center,
		samples:     NewSampleBuffer(cfg.SampleLifetime),
		look:        newPresentation(cfg),
		linZoom:     1,
		logZoom:     1,
	}
	z.relativeZoomCoordinate = z.startCenter
	for _, opt := range opts {
		opt(z)
	}
	z.relativeZoomCoordinate = z.startCenter
	return z
}

// Activate starts a fresh session
func (z *ZoomCoordinateAction) Activate() {
	z.id = uuid.NewString()
	z.lifecycle = Active
	z.state = StateZoom
	z.phase = PhaseOrientation

	z.relativeZoomCoordinate = z.startCenter
	z.relativeCenterOffset = vmath.Vec2F{}
	z.linZoom = 1
	z.logZoom = 1
	z.deviation = 0
	z.firstUpdate = true
	z.samples.Reset()
	z.look.start()

	z.ticks = 0
	z.elapsed = 0
	z.warnedInactive = false

	log.Printf("Zoom session %s activated at (%.3f, %.3f)", z.id, z.startCenter.X, z.startCenter.Y)
}

// Update advances the session by tpf seconds and reports whether it is done
func (z *ZoomCoordinateAction) Update(tpf float64, input Input) bool {
	switch z.lifecycle {
	case Inactive:
		if !z.warnedInactive {
			log.Printf("Zoom update ignored: action not active")
			z.warnedInactive = true
		}
		return false
	case Finished, Aborted:
		return true
	}

	dt := z.clampTick(tpf)
	if dt == 0 || z.state == StateDebugFixed {
		return false
	}

	// First tick only establishes a baseline once input can be trusted
	if z.firstUpdate {
		if !input.Valid || !vmath.V2FFinite(input.Gaze) {
			return false
		}
		z.firstUpdate = false
		if z.cfg.StartAtGaze {
			z.relativeZoomCoordinate = vmath.V2FClamp01(input.Gaze)
		}
		return false
	}

	z.ticks++
	z.elapsed += dt
	z.samples.Decay(dt)
	z.deviation = z.refiner.FadeDeviation(z.deviation, dt)
	z.look.update(dt)

	// Hold zoom without a trustworthy coordinate
	if !input.Valid || !vmath.V2FFinite(input.Gaze) {
		return false
	}
	gaze := vmath.V2FClamp01(input.Gaze)

	// Sample records what was displayed when the gaze landed
	z.samples.Push(Sample{
		LogZoom:                z.logZoom,
		RelativeGazeCoordinate: gaze,
		RelativeZoomCoordinate: z.relativeZoomCoordinate,
		RelativeCenterOffset:   z.relativeCenterOffset,
	})

	phase := z.phases.PhaseOf(z.logZoom)
	switch phase {
	case PhaseOrientation:
		z.relativeZoomCoordinate = z.refiner.Orient(z.relativeZoomCoordinate, z.relativeCenterOffset, z.logZoom, gaze, dt)
	case PhaseDriftCorrection:
		z.relativeZoomCoordinate, z.deviation = z.refiner.Correct(z.relativeZoomCoordinate, z.logZoom, z.samples, z.deviation, dt)
	}

	z.linZoom += z.phases.ZoomRate(phase, z.deviation) * dt
	z.logZoom = LogZoom(z.linZoom)
	// Orientation ends exactly at its threshold so drift correction always gets a tick
	if phase == PhaseOrientation && z.logZoom <= z.cfg.MaxOrientationLogZoom {
		z.logZoom = z.cfg.MaxOrientationLogZoom
		z.linZoom = LinZoom(z.logZoom)
	}
	z.relativeCenterOffset = CenterOffset(z.relativeZoomCoordinate, z.logZoom, z.cfg.CenterOffsetMultiplier)

	next := z.phases.PhaseOf(z.logZoom)
	if next != z.phase {
		z.changePhase(next)
	}
	if next == PhaseFinished {
		z.lifecycle = Finished
		log.Printf("Zoom session %s finished at (%.4f, %.4f) after %d ticks",
			z.id, z.relativeZoomCoordinate.X, z.relativeZoomCoordinate.Y, z.ticks)
		return true
	}
	return false
}

// clampTick bounds host supplied frame time
func (z *ZoomCoordinateAction) clampTick(tpf float64) float64 {
	if math.IsNaN(tpf) || tpf <= 0 {
		return 0
	}
	return math.Min(tpf, z.cfg.MaxTimePerFrame)
}

func (z *ZoomCoordinateAction) changePhase(next Phase) {
	prev := z.phase
	z.phase = next
	log.Printf("Zoom session %s: %s -> %s (logZoom %.3f)", z.id, prev, next, z.logZoom)
	if z.onPhase != nil {
		z.onPhase(prev, next)
	}
}

// Draw hands the current view to the canvas
func (z *ZoomCoordinateAction) Draw(canvas Canvas) {
	if canvas == nil || z.lifecycle == Inactive {
		return
	}
	canvas.DrawZoom(z.View())
}

// Deactivate returns the action to Inactive, the last coordinate stays readable
func (z *ZoomCoordinateAction) Deactivate() {
	z.lifecycle = Inactive
	z.state = StateZoom
	z.samples.Reset()
	z.look.reset()
}

// Abort terminates an active session, keeping the coordinate of the last Update
func (z *ZoomCoordinateAction) Abort() {
	if z.lifecycle != Active {
		return
	}
	z.lifecycle = Aborted
	log.Printf("Zoom session %s aborted in %s at (%.4f, %.4f)",
		z.id, z.phase, z.relativeZoomCoordinate.X, z.relativeZoomCoordinate.Y)
}

// SetDebugFixed freezes or resumes progression
func (z *ZoomCoordinateAction) SetDebugFixed(fixed bool) {
	if fixed {
		z.state = StateDebugFixed
	} else {
		z.state = StateZoom
	}
}

// Result returns the session output
func (z *ZoomCoordinateAction) Result() Result {
	return Result{
		SessionID:  z.id,
		Coordinate: z.relativeZoomCoordinate,
		Completed:  z.lifecycle == Finished,
		Ticks:      z.ticks,
		Elapsed:    z.elapsed,
	}
}

// View snapshots the presentation state
func (z *ZoomCoordinateAction) View() ZoomView {
	return ZoomView{
		SessionID:    z.id,
		Lifecycle:    z.lifecycle,
		State:        z.state,
		Phase:        z.phase,
		Coordinate:   z.relativeZoomCoordinate,
		CenterOffset: z.relativeCenterOffset,
		LogZoom:      z.logZoom,
		LinZoom:      z.linZoom,
		Deviation:    z.deviation,
		Dimming:      z.look.value(),
		Samples:      z.samples.Len(),
	}
}

// Coordinate returns the zoom coordinate in normalized page space
func (z *ZoomCoordinateAction) Coordinate() vmath.Vec2F { return z.relativeZoomCoordinate }

// LogZoom returns the log zoom, 1 unmagnified and falling as zoom grows
func (z *ZoomCoordinateAction) LogZoom() float64 { return z.logZoom }

// LinZoom returns the linear magnification, starting at 1
func (z *ZoomCoordinateAction) LinZoom() float64 { return z.linZoom }

// Deviation returns the current drift discrepancy in [0,1]
func (z *ZoomCoordinateAction) Deviation() float64 { return z.deviation }

// Dimming returns the current surface dim level
func (z *ZoomCoordinateAction) Dimming() float64 { return z.look.value() }

// Phase returns the refinement stage of the last Update
func (z *ZoomCoordinateAction) Phase() Phase { return z.phase }

// State returns zoom or debug-fixed
func (z *ZoomCoordinateAction) State() ZoomState { return z.state }

// Lifecycle returns the protocol state
func (z *ZoomCoordinateAction) Lifecycle() Lifecycle { return z.lifecycle }

// SessionID returns the id assigned on Activate, empty before the first activation
func (z *ZoomCoordinateAction) SessionID() string { return z.id }

// Config returns the sanitized configuration in use
func (z *ZoomCoordinateAction) Config() ZoomConfig { return z.cfg }

// Samples returns a copy of the buffered samples, oldest first
func (z *ZoomCoordinateAction) Samples() []Sample {
	return z.samples.Samples()
}
