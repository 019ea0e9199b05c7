package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/lixenwraith/gaze-browse/action"
	"github.com/lixenwraith/gaze-browse/parameter"
)

// Cue identifies a feedback sound
type Cue uint8

const (
	CuePhase  Cue = iota // Drift correction started
	CueFinish            // Coordinate selected
	CueAbort             // Session cancelled
	CueKey               // Keyboard input
)

func (c Cue) String() string {
	switch c {
	case CuePhase:
		return "phase"
	case CueFinish:
		return "finish"
	case CueAbort:
		return "abort"
	case CueKey:
		return "key"
	}
	return "unknown"
}

type cueSpec struct {
	freqs    []float64
	duration time.Duration
	attack   time.Duration
	release  time.Duration
	gain     float64
}

var cueSpecs = map[Cue]cueSpec{
	CuePhase:  {[]float64{parameter.PhaseCueFrequency}, parameter.PhaseCueDuration, parameter.PhaseCueAttack, parameter.PhaseCueRelease, 0.5},
	CueFinish: {[]float64{parameter.FinishCueFrequency, parameter.FinishCueOvertone}, parameter.FinishCueDuration, parameter.FinishCueAttack, parameter.FinishCueRelease, 0.35},
	CueAbort:  {[]float64{parameter.AbortCueFrequency}, parameter.AbortCueDuration, parameter.AbortCueAttack, parameter.AbortCueRelease, 0.6},
	CueKey:    {[]float64{parameter.KeyCueFrequency}, parameter.KeyCueDuration, parameter.KeyCueAttack, parameter.KeyCueRelease, 0.25},
}

// Duration returns the cue length
func (c Cue) Duration() time.Duration {
	return cueSpecs[c].duration
}

// NewCueStreamer synthesizes a cue at volume (0-1)
func NewCueStreamer(sr beep.SampleRate, c Cue, volume float64) (beep.Streamer, error) {
	s, ok := cueSpecs[c]
	if !ok {
		return nil, fmt.Errorf("unknown cue %d", c)
	}
	src, err := tone(sr, s.freqs...)
	if err != nil {
		return nil, fmt.Errorf("cue %s: %w", c, err)
	}
	return NewEnvelope(sr, src, s.gain*volume, s.duration, s.attack, s.release), nil
}

// CueForPhase maps a zoom phase change to its cue
func CueForPhase(from, to action.Phase) (Cue, bool) {
	switch {
	case from == action.PhaseOrientation && to == action.PhaseDriftCorrection:
		return CuePhase, true
	case to == action.PhaseFinished:
		return CueFinish, true
	}
	return 0, false
}
