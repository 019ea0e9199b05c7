package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 50 * time.Millisecond

	// AudioMasterVolume is the default output gain (0-1)
	AudioMasterVolume = 0.6
)

// Phase Cue: played once when drift correction starts
const (
	PhaseCueDuration  = 120 * time.Millisecond
	PhaseCueFrequency = 660.0
	PhaseCueAttack    = 5 * time.Millisecond
	PhaseCueRelease   = 60 * time.Millisecond
)

// Finish Cue: two rising partials
const (
	FinishCueDuration  = 250 * time.Millisecond
	FinishCueFrequency = 880.0
	FinishCueOvertone  = 1320.0
	FinishCueAttack    = 5 * time.Millisecond
	FinishCueRelease   = 200 * time.Millisecond
)

// Abort Cue: low buzz
const (
	AbortCueDuration  = 150 * time.Millisecond
	AbortCueFrequency = 120.0
	AbortCueAttack    = 10 * time.Millisecond
	AbortCueRelease   = 40 * time.Millisecond
)

// Key Cue: short click for keyboard input
const (
	KeyCueDuration  = 30 * time.Millisecond
	KeyCueFrequency = 1800.0
	KeyCueAttack    = 2 * time.Millisecond
	KeyCueRelease   = 20 * time.Millisecond
)
