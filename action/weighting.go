package action

import (
	"math"

	"github.com/lixenwraith/gaze-browse/vmath"
	"gonum.org/v1/gonum/stat"
)

// Weighting decides how much a buffered sample contributes to the drift estimate
// Weights must be non-negative; lifetime is the buffer's initial sample lifetime
type Weighting interface {
	Name() string
	Weight(s Sample, lifetime float64) float64
}

// RecencyWeighting favors recent samples in proportion to their remaining lifetime
type RecencyWeighting struct{}

func (RecencyWeighting) Name() string { return "recency" }

func (RecencyWeighting) Weight(s Sample, lifetime float64) float64 {
	if lifetime <= 0 {
		return 1
	}
	return vmath.Clamp01(s.Lifetime / lifetime)
}

// UniformWeighting averages the decayed buffer without bias
type UniformWeighting struct{}

func (UniformWeighting) Name() string { return "uniform" }

func (UniformWeighting) Weight(Sample, float64) float64 { return 1 }

// ZoomWeighting favors samples taken at higher magnification, where a gaze sample covers less page
// Remaining lifetime still scales weight so old samples fade out smoothly
type ZoomWeighting struct{}

func (ZoomWeighting) Name() string { return "zoom" }

func (ZoomWeighting) Weight(s Sample, lifetime float64) float64 {
	magnification := 1 / math.Max(s.LogZoom, 0.05)
	return RecencyWeighting{}.Weight(s, lifetime) * magnification
}

var weightings = map[string]Weighting{
	"recency": RecencyWeighting{},
	"uniform": UniformWeighting{},
	"zoom":    ZoomWeighting{},
}

// LookupWeighting resolves a policy by name
func LookupWeighting(name string) (Weighting, bool) {
	w, ok := weightings[name]
	return w, ok
}

// weightedPageGaze averages reconstructed page gaze coordinates
func weightedPageGaze(samples []Sample, lifetime float64, w Weighting) (vmath.Vec2F, bool) {
	if len(samples) == 0 {
		return vmath.Vec2F{}, false
	}

	xs := make([]float64, len(samples))
	ys := make([]float64, len(samples))
	ws := make([]float64, len(samples))
	total := 0.0
	for i, s := range samples {
		p := s.PageGaze()
		xs[i], ys[i] = p.X, p.Y
		ws[i] = math.Max(0, w.Weight(s, lifetime))
		total += ws[i]
	}
	if total == 0 {
		return vmath.Vec2F{}, false
	}

	return vmath.Vec2F{X: stat.Mean(xs, ws), Y: stat.Mean(ys, ws)}, true
}
