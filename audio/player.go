// Package audio plays short synthesized feedback cues for gaze actions
package audio

import (
	"log"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/gaze-browse/action"
	"github.com/lixenwraith/gaze-browse/config"
	"github.com/lixenwraith/gaze-browse/parameter"
)

// Player mixes cues into one speaker stream
type Player struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	sr          beep.SampleRate
	mixer       *beep.Mixer
	initialized bool
	played      map[Cue]int
}

// NewPlayer creates an uninitialized player
func NewPlayer(cfg config.AudioConfig) *Player {
	return &Player{
		cfg:    cfg,
		sr:     beep.SampleRate(cfg.SampleRate),
		mixer:  &beep.Mixer{},
		played: make(map[Cue]int),
	}
}

// Initialize opens the speaker, a disabled player stays silent without error
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || !p.cfg.Enabled {
		return nil
	}
	if err := speaker.Init(p.sr, p.sr.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Cleanup stops output and closes the speaker
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

// Play queues a cue; ignored when the speaker is not open
func (p *Player) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.played[c]++
	if !p.initialized {
		return
	}
	s, err := NewCueStreamer(p.sr, c, p.cfg.MasterVolume)
	if err != nil {
		log.Printf("Audio cue %s failed: %v", c, err)
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Played returns how often a cue was requested
func (p *Player) Played(c Cue) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played[c]
}

// Active reports whether the speaker is open
func (p *Player) Active() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// PhaseHook returns a zoom phase callback that plays the matching cue
func (p *Player) PhaseHook() func(from, to action.Phase) {
	return func(from, to action.Phase) {
		if c, ok := CueForPhase(from, to); ok {
			p.Play(c)
		}
	}
}
