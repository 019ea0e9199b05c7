package status

import (
	"sort"
	"strconv"
	"sync/atomic"
)

// Metric keys written by the pipeline and read by the status bar
const (
	KeyZoomSessions      = "zoom.sessions"
	KeyZoomFinished      = "zoom.finished"
	KeyZoomAborted       = "zoom.aborted"
	KeyZoomDeviation     = "zoom.deviation"
	KeyZoomLogZoom       = "zoom.logzoom"
	KeyZoomPhase         = "zoom.phase"
	KeyZoomSession       = "zoom.session"
	KeyKeyboardSubmitted = "keyboard.submitted"
	KeyPipelineActive    = "pipeline.active"
	KeyPipelineStep      = "pipeline.step"
	KeyAudioEnabled      = "audio.enabled"
)

// Registry groups metric maps by value type
// Writers cache pointers once and store to the atomics directly
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns the number of metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Entry is one formatted metric
type Entry struct {
	Key   string
	Value string
}

// Snapshot formats every metric, sorted by key
func (r *Registry) Snapshot() []Entry {
	out := make([]Entry, 0, r.TotalCount())
	r.Bools.Range(func(k string, v *atomic.Bool) {
		out = append(out, Entry{k, strconv.FormatBool(v.Load())})
	})
	r.Ints.Range(func(k string, v *atomic.Int64) {
		out = append(out, Entry{k, strconv.FormatInt(v.Load(), 10)})
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		out = append(out, Entry{k, strconv.FormatFloat(v.Get(), 'f', 3, 64)})
	})
	r.Strings.Range(func(k string, v *AtomicString) {
		out = append(out, Entry{k, v.Load()})
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
