package pipeline

import (
	"sync/atomic"

	"github.com/lixenwraith/gaze-browse/action"
	"github.com/lixenwraith/gaze-browse/status"
)

// recorder caches registry pointers written on every tick
type recorder struct {
	sessions  *atomic.Int64
	finished  *atomic.Int64
	aborted   *atomic.Int64
	submitted *atomic.Int64
	deviation *status.AtomicFloat
	logZoom   *status.AtomicFloat
	phase     *status.AtomicString
	session   *status.AtomicString
	step      *status.AtomicString
	active    *atomic.Bool
}

func newRecorder(reg *status.Registry) *recorder {
	return &recorder{
		sessions:  reg.Ints.Get(status.KeyZoomSessions),
		finished:  reg.Ints.Get(status.KeyZoomFinished),
		aborted:   reg.Ints.Get(status.KeyZoomAborted),
		submitted: reg.Ints.Get(status.KeyKeyboardSubmitted),
		deviation: reg.Floats.Get(status.KeyZoomDeviation),
		logZoom:   reg.Floats.Get(status.KeyZoomLogZoom),
		phase:     reg.Strings.Get(status.KeyZoomPhase),
		session:   reg.Strings.Get(status.KeyZoomSession),
		step:      reg.Strings.Get(status.KeyPipelineStep),
		active:    reg.Bools.Get(status.KeyPipelineActive),
	}
}

func (r *recorder) stepStarted(s Step) {
	r.step.Store(s.Name)
	if z, ok := s.Action.(*action.ZoomCoordinateAction); ok {
		r.sessions.Add(1)
		r.session.StoreID(z.SessionID())
		r.observe(z)
	}
}

func (r *recorder) observe(a action.Action) {
	z, ok := a.(*action.ZoomCoordinateAction)
	if !ok {
		return
	}
	r.deviation.Set(z.Deviation())
	r.logZoom.Set(z.LogZoom())
	r.phase.Store(z.Phase().String())
}

func (r *recorder) stepFinished(a action.Action) {
	switch v := a.(type) {
	case *action.ZoomCoordinateAction:
		r.finished.Add(1)
	case *action.KeyboardAction:
		if v.Submitted() {
			r.submitted.Add(1)
		}
	}
}

func (r *recorder) stepAborted(a action.Action) {
	if _, ok := a.(*action.ZoomCoordinateAction); ok {
		r.aborted.Add(1)
	}
}
