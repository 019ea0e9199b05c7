package pipeline

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lixenwraith/gaze-browse/action"
	"github.com/lixenwraith/gaze-browse/status"
	"github.com/lixenwraith/gaze-browse/vmath"
)

const tick = 1.0 / 60.0

// pageSurface maps normalized coordinates onto a fixed content size
type pageSurface struct{ w, h float64 }

func (s pageSurface) ContentFromRelative(rel vmath.Vec2F) vmath.Vec2F {
	return vmath.Vec2F{X: rel.X * s.w, Y: rel.Y * s.h}
}

type textInput struct {
	at     vmath.Vec2F
	text   string
	submit bool
}

type recordingSink struct {
	clicks []vmath.Vec2F
	inputs []textInput
}

func (s *recordingSink) Click(c vmath.Vec2F) { s.clicks = append(s.clicks, c) }

func (s *recordingSink) InputText(c vmath.Vec2F, text string, submit bool) {
	s.inputs = append(s.inputs, textInput{c, text, submit})
}

type countingOverlay struct{ open int }

func (o *countingOverlay) AddFloatingFrame(string) action.OverlayHandle {
	o.open++
	return action.OverlayHandle(o.open)
}

func (o *countingOverlay) RemoveFloatingFrame(action.OverlayHandle) { o.open-- }

// run drives p with centered gaze until it ends
func run(t *testing.T, p *Pipeline, maxTicks int) {
	t.Helper()
	for i := 0; i < maxTicks; i++ {
		if p.Update(tick, action.GazeInput(0.5, 0.5)) {
			return
		}
	}
	t.Fatalf("Pipeline %s did not end within %d ticks", p.Name(), maxTicks)
}

func TestStartErrors(t *testing.T) {
	p := New("empty", nil)
	if err := p.Start(); !errors.Is(err, ErrEmpty) {
		t.Errorf("Start on empty pipeline = %v, want ErrEmpty", err)
	}

	p = NewClickPipeline(pageSurface{100, 100}, &recordingSink{})
	if err := p.Start(); err != nil {
		t.Fatalf("Start = %v", err)
	}
	if err := p.Start(); !errors.Is(err, ErrRunning) {
		t.Errorf("Second Start = %v, want ErrRunning", err)
	}
}

func TestClickPipeline(t *testing.T) {
	reg := status.NewRegistry()
	sink := &recordingSink{}
	p := NewClickPipeline(pageSurface{1280, 2000}, sink, WithRegistry(reg))

	if p.Active() != nil {
		t.Error("Idle pipeline should have no active action")
	}
	if err := p.Start(); err != nil {
		t.Fatalf("Start = %v", err)
	}
	if _, ok := p.Active().(*action.ZoomCoordinateAction); !ok {
		t.Fatalf("Active = %T, want zoom action", p.Active())
	}
	run(t, p, 400)

	if !p.Completed() || p.Aborted() || p.Running() {
		t.Errorf("State completed=%v aborted=%v running=%v", p.Completed(), p.Aborted(), p.Running())
	}
	want := []vmath.Vec2F{{X: 640, Y: 1000}}
	if diff := cmp.Diff(want, sink.clicks, approxVec()); diff != "" {
		t.Errorf("Clicks mismatch (-want +got):\n%s", diff)
	}
	if got := reg.Ints.Get(status.KeyZoomFinished).Load(); got != 1 {
		t.Errorf("zoom.finished = %d, want 1", got)
	}
	if got := reg.Ints.Get(status.KeyZoomSessions).Load(); got != 1 {
		t.Errorf("zoom.sessions = %d, want 1", got)
	}
	if reg.Bools.Get(status.KeyPipelineActive).Load() {
		t.Error("pipeline.active should be false after completion")
	}
	if got := reg.Strings.Get(status.KeyZoomPhase).Load(); got != "finished" {
		t.Errorf("zoom.phase = %q, want finished", got)
	}
	if got := reg.Strings.Get(status.KeyZoomSession).Load(); len(got) != status.ShortIDLen {
		t.Errorf("zoom.session = %q, want the %d-char id prefix", got, status.ShortIDLen)
	}
}

func TestTextInputPipeline(t *testing.T) {
	reg := status.NewRegistry()
	sink := &recordingSink{}
	ov := &countingOverlay{}
	p := NewTextInputPipeline(pageSurface{100, 200}, ov, sink, WithRegistry(reg))

	if err := p.Start(); err != nil {
		t.Fatalf("Start = %v", err)
	}
	for i := 0; i < 400; i++ {
		p.Update(tick, action.GazeInput(0.5, 0.5))
		if _, ok := p.Active().(*action.KeyboardAction); ok {
			break
		}
	}
	kb, ok := p.Active().(*action.KeyboardAction)
	if !ok {
		t.Fatalf("Active = %T after zoom, want keyboard", p.Active())
	}
	if ov.open != 1 {
		t.Errorf("Open frames = %d, want 1", ov.open)
	}

	for _, r := range "gaze" {
		kb.TypeRune(r)
	}
	kb.Submit()
	if !p.Update(tick, action.Input{}) {
		t.Fatal("Pipeline should end once the keyboard submits")
	}

	want := []textInput{{vmath.Vec2F{X: 50, Y: 100}, "gaze", true}}
	if diff := cmp.Diff(want, sink.inputs, cmp.AllowUnexported(textInput{}), approxVec()); diff != "" {
		t.Errorf("Inputs mismatch (-want +got):\n%s", diff)
	}
	if ov.open != 0 {
		t.Errorf("Open frames = %d after completion, want 0", ov.open)
	}
	if got := reg.Ints.Get(status.KeyKeyboardSubmitted).Load(); got != 1 {
		t.Errorf("keyboard.submitted = %d, want 1", got)
	}
}

func TestAbortStopsChain(t *testing.T) {
	reg := status.NewRegistry()
	sink := &recordingSink{}
	p := NewClickPipeline(pageSurface{100, 100}, sink, WithRegistry(reg))
	if err := p.Start(); err != nil {
		t.Fatalf("Start = %v", err)
	}
	zoom := p.Active().(*action.ZoomCoordinateAction)
	for i := 0; i < 20; i++ {
		p.Update(tick, action.GazeInput(0.5, 0.5))
	}

	p.Abort()
	if !p.Aborted() || p.Running() || p.Active() != nil {
		t.Errorf("State after abort aborted=%v running=%v", p.Aborted(), p.Running())
	}
	if len(sink.clicks) != 0 {
		t.Error("Aborted pipeline must not click")
	}
	if zoom.Lifecycle() != action.Inactive {
		t.Errorf("Zoom lifecycle = %s, want inactive after abort", zoom.Lifecycle())
	}
	if got := reg.Ints.Get(status.KeyZoomAborted).Load(); got != 1 {
		t.Errorf("zoom.aborted = %d, want 1", got)
	}
	if !p.Update(tick, action.GazeInput(0.5, 0.5)) {
		t.Error("Update on an ended pipeline should report done")
	}

	// Restart after abort takes a fresh session
	if err := p.Start(); err != nil {
		t.Fatalf("Restart = %v", err)
	}
	run(t, p, 400)
	if len(sink.clicks) != 1 {
		t.Errorf("Clicks after restart = %d, want 1", len(sink.clicks))
	}
}

func TestDrawRoutesActiveStep(t *testing.T) {
	p := NewClickPipeline(pageSurface{100, 100}, &recordingSink{})
	c := &countingCanvas{}
	p.Draw(c)
	if c.zoom != 0 {
		t.Error("Idle pipeline should not draw")
	}
	if err := p.Start(); err != nil {
		t.Fatalf("Start = %v", err)
	}
	p.Draw(c)
	if c.zoom != 1 || c.keyboard != 0 {
		t.Errorf("Draw counts zoom=%d keyboard=%d", c.zoom, c.keyboard)
	}
}

type countingCanvas struct{ zoom, keyboard int }

func (c *countingCanvas) DrawZoom(action.ZoomView)         { c.zoom++ }
func (c *countingCanvas) DrawKeyboard(action.KeyboardView) { c.keyboard++ }

func approxVec() cmp.Option {
	return cmp.Comparer(func(a, b vmath.Vec2F) bool {
		const eps = 1e-6
		dx, dy := a.X-b.X, a.Y-b.Y
		return dx < eps && dx > -eps && dy < eps && dy > -eps
	})
}
