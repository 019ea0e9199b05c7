// Package trace records zoom sessions tick by tick and exports them as plots
package trace

import (
	"errors"
	"sync"

	"github.com/lixenwraith/gaze-browse/action"
	"github.com/lixenwraith/gaze-browse/vmath"
)

// ErrNoSamples is returned when exporting an empty recording
var ErrNoSamples = errors.New("trace has no samples")

// Tick is one recorded frame
type Tick struct {
	Index int
	Time  float64
	Input action.Input
	View  action.ZoomView
}

// PageGaze returns the page coordinate under the input gaze for this frame
func (t Tick) PageGaze() vmath.Vec2F {
	return t.View.PageAt(t.Input.Gaze)
}

// Summary condenses a recording
type Summary struct {
	Ticks        int
	Duration     float64
	Final        vmath.Vec2F
	Completed    bool
	MaxDeviation float64
	DriftStart   float64 // Time drift correction started, -1 if never
}

// Recorder accumulates ticks; safe for use from one writer and concurrent readers
type Recorder struct {
	mu    sync.Mutex
	ticks []Tick
	time  float64
}

func NewRecorder() *Recorder {
	return &Recorder{ticks: make([]Tick, 0, 256)}
}

// Record appends a frame; dt is the host frame time passed to Update
func (r *Recorder) Record(dt float64, in action.Input, v action.ZoomView) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if dt > 0 {
		r.time += dt
	}
	r.ticks = append(r.ticks, Tick{Index: len(r.ticks), Time: r.time, Input: in, View: v})
}

// Ticks returns a copy of the recorded frames
func (r *Recorder) Ticks() []Tick {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Tick, len(r.ticks))
	copy(out, r.ticks)
	return out
}

func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.ticks)
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ticks = r.ticks[:0]
	r.time = 0
}

// Summary condenses the recording, ok is false when empty
func (r *Recorder) Summary() (Summary, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.ticks) == 0 {
		return Summary{}, false
	}

	last := r.ticks[len(r.ticks)-1]
	s := Summary{
		Ticks:      len(r.ticks),
		Duration:   last.Time,
		Final:      last.View.Coordinate,
		Completed:  last.View.Lifecycle == action.Finished,
		DriftStart: -1,
	}
	for _, t := range r.ticks {
		s.MaxDeviation = max(s.MaxDeviation, t.View.Deviation)
		if s.DriftStart < 0 && t.View.Phase == action.PhaseDriftCorrection {
			s.DriftStart = t.Time
		}
	}
	return s, true
}
