package action

import (
	"github.com/lixenwraith/gaze-browse/vmath"
)

// ZoomView is the read-only state handed to the drawing pass
// Nothing in it feeds back into refinement
type ZoomView struct {
	SessionID    string
	Lifecycle    Lifecycle
	State        ZoomState
	Phase        Phase
	Coordinate   vmath.Vec2F // Zoom coordinate in page space
	CenterOffset vmath.Vec2F
	LogZoom      float64
	LinZoom      float64
	Deviation    float64
	Dimming      float64
	Samples      int
}

// PageAt returns the page coordinate visible at a surface coordinate
func (v ZoomView) PageAt(screen vmath.Vec2F) vmath.Vec2F {
	return PageFromScreen(screen, v.Coordinate, v.CenterOffset, v.LogZoom)
}

// ScreenAt returns where a page coordinate is displayed on the surface
func (v ZoomView) ScreenAt(page vmath.Vec2F) vmath.Vec2F {
	return ScreenFromPage(page, v.Coordinate, v.CenterOffset, v.LogZoom)
}

// presentation holds cosmetic values derived from the session
type presentation struct {
	enabled bool
	target  float64
	dimming vmath.LerpValue
}

func newPresentation(cfg ZoomConfig) presentation {
	return presentation{
		enabled: cfg.DoDimming,
		target:  cfg.DimmingValue,
		dimming: vmath.NewRamp(0, cfg.DimmingValue, cfg.DimmingDuration),
	}
}

// start resets dimming and aims it at the dim level when enabled
func (p *presentation) start() {
	p.dimming.Reset(0)
	if p.enabled {
		p.dimming.Target = p.target
	}
}

func (p *presentation) update(dt float64) {
	p.dimming.Update(dt)
}

func (p *presentation) reset() {
	p.dimming.Reset(0)
}

func (p presentation) value() float64 {
	return p.dimming.Current
}
