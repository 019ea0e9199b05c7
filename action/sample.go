package action

import (
	"github.com/lixenwraith/gaze-browse/vmath"
)

// Sample is one observation taken in a zooming tick
// Coordinates are relative to the surface at capture time
type Sample struct {
	LogZoom                float64
	RelativeGazeCoordinate vmath.Vec2F
	RelativeZoomCoordinate vmath.Vec2F
	RelativeCenterOffset   vmath.Vec2F
	Lifetime               float64 // Seconds left before eviction
}

// PageGaze reconstructs the page coordinate under the gaze when the sample was taken
func (s Sample) PageGaze() vmath.Vec2F {
	return PageFromScreen(s.RelativeGazeCoordinate, s.RelativeZoomCoordinate, s.RelativeCenterOffset, s.LogZoom)
}

// SampleBuffer holds decaying samples in insertion order
// All samples share one initial lifetime, so expired samples always form a prefix
type SampleBuffer struct {
	samples  []Sample
	lifetime float64
}

// NewSampleBuffer creates a buffer whose samples live for lifetime seconds
func NewSampleBuffer(lifetime float64) *SampleBuffer {
	return &SampleBuffer{
		samples:  make([]Sample, 0, 64),
		lifetime: lifetime,
	}
}

// Push appends a sample with a fresh lifetime
func (b *SampleBuffer) Push(s Sample) {
	s.Lifetime = b.lifetime
	b.samples = append(b.samples, s)
}

// Decay subtracts dt from every lifetime and evicts expired samples
func (b *SampleBuffer) Decay(dt float64) {
	if dt <= 0 || len(b.samples) == 0 {
		return
	}
	expired := 0
	for i := range b.samples {
		b.samples[i].Lifetime -= dt
		if b.samples[i].Lifetime <= 0 {
			expired = i + 1
		}
	}
	if expired > 0 {
		b.samples = append(b.samples[:0], b.samples[expired:]...)
	}
}

// Len returns the number of live samples
func (b *SampleBuffer) Len() int {
	return len(b.samples)
}

// InitialLifetime returns the lifetime assigned on Push
func (b *SampleBuffer) InitialLifetime() float64 {
	return b.lifetime
}

// Samples returns a copy of the live samples, oldest first
func (b *SampleBuffer) Samples() []Sample {
	out := make([]Sample, len(b.samples))
	copy(out, b.samples)
	return out
}

// Reset drops all samples, keeping capacity
func (b *SampleBuffer) Reset() {
	b.samples = b.samples[:0]
}

// WeightedPageGaze returns the weighted mean page coordinate under the gaze
// ok is false when the buffer is empty or all weights are zero
func (b *SampleBuffer) WeightedPageGaze(w Weighting) (vmath.Vec2F, bool) {
	return weightedPageGaze(b.samples, b.lifetime, w)
}
