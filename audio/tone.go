package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
)

// Envelope shapes a source with linear attack and release over a fixed length
// It stops after total samples regardless of the source
type Envelope struct {
	src     beep.Streamer
	gain    float64
	attack  int
	release int
	total   int
	pos     int
}

// NewEnvelope wraps src; release is measured back from the end
func NewEnvelope(sr beep.SampleRate, src beep.Streamer, gain float64, total, attack, release time.Duration) *Envelope {
	return &Envelope{
		src:     src,
		gain:    gain,
		attack:  sr.N(attack),
		release: sr.N(release),
		total:   sr.N(total),
	}
}

// level returns the envelope multiplier at sample position pos
func (e *Envelope) level(pos int) float64 {
	l := 1.0
	if e.attack > 0 && pos < e.attack {
		l = float64(pos) / float64(e.attack)
	}
	if left := e.total - pos; e.release > 0 && left < e.release {
		l = min(l, float64(left)/float64(e.release))
	}
	return l
}

func (e *Envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.pos >= e.total {
		return 0, false
	}
	want := min(len(samples), e.total-e.pos)
	n, ok = e.src.Stream(samples[:want])
	for i := 0; i < n; i++ {
		g := e.gain * e.level(e.pos)
		samples[i][0] *= g
		samples[i][1] *= g
		e.pos++
	}
	if !ok || n == 0 {
		e.pos = e.total
	}
	return n, n > 0
}

func (e *Envelope) Err() error {
	return e.src.Err()
}

// tone builds a sine partial mix at the given frequencies
func tone(sr beep.SampleRate, freqs ...float64) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		s, err := generators.SineTone(sr, f)
		if err != nil {
			return nil, err
		}
		parts = append(parts, s)
	}
	if len(parts) == 1 {
		return parts[0], nil
	}
	return beep.Mix(parts...), nil
}
