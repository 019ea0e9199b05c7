// Package pipeline sequences actions for a tab
// It drives one action at a time through the shared lifecycle and routes outputs between steps
package pipeline

import (
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/lixenwraith/gaze-browse/action"
	"github.com/lixenwraith/gaze-browse/status"
)

var (
	ErrEmpty   = errors.New("pipeline has no steps")
	ErrRunning = errors.New("pipeline already running")
)

// Step is one action in a chain
type Step struct {
	Name   string
	Action action.Action
	// Bind receives the previous finished action before this one activates
	Bind func(prev action.Action)
	// Done receives this action after it finished, before deactivation
	Done func(a action.Action)
}

// lifecycler is implemented by actions that expose their protocol state
type lifecycler interface {
	Lifecycle() action.Lifecycle
}

// Pipeline runs its steps in order, one active action at a time
type Pipeline struct {
	name  string
	id    string
	steps []Step

	current   int
	running   bool
	completed bool
	aborted   bool

	m *recorder
}

// New creates an idle pipeline
func New(name string, reg *status.Registry, steps ...Step) *Pipeline {
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &Pipeline{
		name:  name,
		steps: steps,
		m:     newRecorder(reg),
	}
}

// Start activates the first step
func (p *Pipeline) Start() error {
	if len(p.steps) == 0 {
		return ErrEmpty
	}
	if p.running {
		return ErrRunning
	}
	p.id = uuid.NewString()
	p.current = 0
	p.running = true
	p.completed = false
	p.aborted = false
	p.m.active.Store(true)

	log.Printf("Pipeline %s (%s) started with %d steps", p.name, p.id, len(p.steps))
	p.activate(nil)
	return nil
}

// activate binds and starts the current step
func (p *Pipeline) activate(prev action.Action) {
	step := p.steps[p.current]
	if step.Bind != nil && prev != nil {
		step.Bind(prev)
	}
	step.Action.Activate()
	p.m.stepStarted(step)
}

// Update advances the active step and reports whether the pipeline ended
func (p *Pipeline) Update(tpf float64, input action.Input) bool {
	if !p.running {
		return p.completed || p.aborted
	}

	step := p.steps[p.current]
	done := step.Action.Update(tpf, input)
	p.m.observe(step.Action)
	if !done {
		return false
	}

	if l, ok := step.Action.(lifecycler); ok && l.Lifecycle() == action.Aborted {
		p.stop(false)
		return true
	}

	p.m.stepFinished(step.Action)
	if step.Done != nil {
		step.Done(step.Action)
	}
	step.Action.Deactivate()

	p.current++
	if p.current == len(p.steps) {
		p.stop(true)
		return true
	}
	p.activate(step.Action)
	return false
}

// Draw hands the active step's view to the canvas
func (p *Pipeline) Draw(canvas action.Canvas) {
	if !p.running {
		return
	}
	p.steps[p.current].Action.Draw(canvas)
}

// Abort terminates the active step and the rest of the chain
func (p *Pipeline) Abort() {
	if !p.running {
		return
	}
	a := p.steps[p.current].Action
	a.Abort()
	p.stop(false)
}

func (p *Pipeline) stop(completed bool) {
	if !completed {
		a := p.steps[p.current].Action
		p.m.stepAborted(a)
		a.Deactivate()
		log.Printf("Pipeline %s (%s) aborted at step %q", p.name, p.id, p.steps[p.current].Name)
	} else {
		log.Printf("Pipeline %s (%s) completed", p.name, p.id)
	}
	p.running = false
	p.completed = completed
	p.aborted = !completed
	p.m.active.Store(false)
	p.m.step.Store("")
}

// Active returns the running action, nil when idle
func (p *Pipeline) Active() action.Action {
	if !p.running {
		return nil
	}
	return p.steps[p.current].Action
}

func (p *Pipeline) Name() string    { return p.name }
func (p *Pipeline) ID() string      { return p.id }
func (p *Pipeline) Running() bool   { return p.running }
func (p *Pipeline) Completed() bool { return p.completed }
func (p *Pipeline) Aborted() bool   { return p.aborted }
