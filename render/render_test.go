package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/lixenwraith/gaze-browse/action"
	"github.com/lixenwraith/gaze-browse/status"
	"github.com/lixenwraith/gaze-browse/vmath"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Init simulation screen: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func rowText(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func bgAt(s tcell.Screen, x, y int) tcell.Color {
	_, _, st, _ := s.GetContent(x, y)
	_, bg, _ := st.Decompose()
	return bg
}

func zoomView(logZoom, dimming float64) action.ZoomView {
	return action.ZoomView{
		Lifecycle:  action.Active,
		Phase:      action.PhaseDriftCorrection,
		Coordinate: vmath.Center,
		LogZoom:    logZoom,
		LinZoom:    action.LinZoom(logZoom),
		Deviation:  0.4,
		Dimming:    dimming,
		Samples:    12,
	}
}

func TestBlend(t *testing.T) {
	a, b := RGB{0, 100, 200}, RGB{200, 100, 0}
	tests := []struct {
		name  string
		alpha float64
		want  RGB
	}{
		{"zero alpha", 0, a},
		{"negative alpha", -1, a},
		{"full alpha", 1, b},
		{"half", 0.5, RGB{100, 100, 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Blend(a, b, tt.alpha); got != tt.want {
				t.Errorf("Blend = %v, want %v", got, tt.want)
			}
		})
	}
	if got := Dim(RGB{90, 90, 90}, 1); got != RGBBlack {
		t.Errorf("Full dim = %v, want black", got)
	}
}

func TestGaugeColor(t *testing.T) {
	if GaugeColor(0) != RgbGaugeLow || GaugeColor(1) != RgbGaugeHigh || GaugeColor(0.5) != RgbGaugeMid {
		t.Error("Gauge endpoints do not match palette stops")
	}
	if GaugeColor(-1) != RgbGaugeLow || GaugeColor(2) != RgbGaugeHigh {
		t.Error("Gauge should clamp out-of-range deviation")
	}
}

func TestBridgeRoundTrip(t *testing.T) {
	c := RGB{12, 34, 56}
	if got := TcellToRGB(RGBToTcell(c)); got != c {
		t.Errorf("Round trip = %v, want %v", got, c)
	}
	if TcellToRGB(tcell.ColorDefault) != RgbBackground {
		t.Error("Default color should map to the page background")
	}
}

func TestPage(t *testing.T) {
	a, b := NewPage(120, 60, 9), NewPage(120, 60, 9)
	if diff := cmp.Diff(a.Targets(), b.Targets()); diff != "" {
		t.Errorf("Same seed produced different targets:\n%s", diff)
	}
	if len(a.Targets()) == 0 {
		t.Fatal("Expected page targets")
	}

	tg := a.Targets()[0]
	center := vmath.Vec2F{X: float64(tg.X) + 0.5, Y: float64(tg.Y) + 0.5}
	if got, ok := a.TargetAt(center); !ok || got.Label != tg.Label {
		t.Errorf("TargetAt(%+v) = %+v, %v", center, got, ok)
	}
	if _, ok := a.TargetAt(vmath.Vec2F{X: -1, Y: 0}); ok {
		t.Error("Negative content coordinate should not hit")
	}

	want := vmath.Vec2F{X: 60, Y: 30}
	if got := a.ContentFromRelative(vmath.Center); got != want {
		t.Errorf("ContentFromRelative(center) = %+v, want %+v", got, want)
	}
	if r, hit := a.RuneAt(vmath.Vec2F{X: 1.5, Y: 0.5}); r != ' ' || hit {
		t.Errorf("RuneAt outside page = %q, %v", r, hit)
	}
}

func TestRelativeAtRoundTrip(t *testing.T) {
	s := newSimScreen(t, 80, 24)
	c := NewCanvas(s, NewPage(100, 50, 1), nil)

	for _, cell := range [][2]int{{0, 1}, {40, 12}, {79, 22}} {
		rel, ok := c.RelativeAt(cell[0], cell[1])
		if !ok {
			t.Fatalf("RelativeAt(%d, %d) outside page area", cell[0], cell[1])
		}
		x, y, ok := c.cellAt(rel)
		if !ok || x != cell[0] || y != cell[1] {
			t.Errorf("cellAt(RelativeAt(%v)) = (%d, %d)", cell, x, y)
		}
	}
	if _, ok := c.RelativeAt(0, 0); ok {
		t.Error("Header row should not map to the page")
	}
	if _, ok := c.RelativeAt(0, 23); ok {
		t.Error("Status row should not map to the page")
	}
}

func TestDrawZoomCrosshairAndHeader(t *testing.T) {
	s := newSimScreen(t, 80, 24)
	c := NewCanvas(s, NewPage(100, 50, 1), nil)
	c.Clear()

	c.DrawZoom(zoomView(0.6, 0))
	if r, _, _, _ := s.GetContent(40, 12); r != '+' {
		t.Errorf("Crosshair cell = %q, want '+'", r)
	}
	header := rowText(s, 0)
	if !strings.Contains(header, "drift-correction") || !strings.Contains(header, "####") {
		t.Errorf("Header = %q", header)
	}

	v := zoomView(0.6, 0)
	v.State = action.StateDebugFixed
	c.DrawZoom(v)
	if !strings.Contains(rowText(s, 0), "FIXED") {
		t.Error("Frozen session should be marked in the header")
	}
}

func TestDrawZoomDimsAwayFromFocus(t *testing.T) {
	s := newSimScreen(t, 80, 24)
	c := NewCanvas(s, NewPage(100, 50, 1), nil)

	c.DrawZoom(zoomView(0.8, 0))
	plain := bgAt(s, 0, 1)
	c.DrawZoom(zoomView(0.8, 0.3))
	dimmed := bgAt(s, 0, 1)

	want := RGBToTcell(Dim(TcellToRGB(plain), 0.3))
	if dimmed != want {
		t.Errorf("Corner background = %v, want %v", dimmed, want)
	}
}

func TestDrawKeyboardRequiresOpenFrame(t *testing.T) {
	s := newSimScreen(t, 80, 24)
	frames := NewFrames()
	c := NewCanvas(s, NewPage(100, 50, 1), frames)

	h := frames.AddFloatingFrame("keyboard")
	c.Clear()
	c.DrawKeyboard(action.KeyboardView{Text: "hi", Frame: h})

	found := false
	for y := 0; y < 24; y++ {
		if strings.Contains(rowText(s, y), "> hi_") {
			found = true
		}
	}
	if !found {
		t.Error("Keyboard text line not drawn")
	}

	frames.RemoveFloatingFrame(h)
	if len(frames.Open()) != 0 {
		t.Error("Frame should be closed")
	}
	c.Clear()
	c.DrawKeyboard(action.KeyboardView{Text: "hi", Frame: h})
	for y := 0; y < 24; y++ {
		if strings.Contains(rowText(s, y), "> hi_") {
			t.Fatal("Keyboard drawn without an open frame")
		}
	}
}

func TestDrawStatus(t *testing.T) {
	s := newSimScreen(t, 80, 24)
	c := NewCanvas(s, NewPage(100, 50, 1), nil)

	reg := status.NewRegistry()
	reg.Ints.Get(status.KeyZoomSessions).Store(3)
	c.DrawStatus(reg.Snapshot(), "clicked HOME")

	got := rowText(s, 23)
	if !strings.Contains(got, "clicked HOME") || !strings.Contains(got, "zoom.sessions=3") {
		t.Errorf("Status row = %q", got)
	}
}

func TestFramesHandles(t *testing.T) {
	f := NewFrames()
	a := f.AddFloatingFrame("keyboard")
	b := f.AddFloatingFrame("hint")
	if a == b {
		t.Fatal("Handles must be distinct")
	}
	if name, ok := f.Name(b); !ok || name != "hint" {
		t.Errorf("Name(%d) = %q, %v", b, name, ok)
	}
	f.RemoveFloatingFrame(action.NoOverlay)
	if diff := cmp.Diff([]action.OverlayHandle{a, b}, f.Open()); diff != "" {
		t.Errorf("Open mismatch (-want +got):\n%s", diff)
	}
}

func TestDimScreen(t *testing.T) {
	s := newSimScreen(t, 80, 24)
	c := NewCanvas(s, NewPage(100, 50, 1), nil)

	c.Clear()
	c.DrawPage()
	plainBg := bgAt(s, 10, 5)
	plainHeader := bgAt(s, 0, 0)

	c.DimScreen(0)
	if got := bgAt(s, 10, 5); got != plainBg {
		t.Fatalf("Zero dim changed background %v -> %v", plainBg, got)
	}

	c.DimScreen(0.6)
	tests := []struct {
		x, y  int
		plain tcell.Color
	}{
		{10, 5, plainBg},
		{0, 0, plainHeader},
	}
	for _, tt := range tests {
		want := RGBToTcell(Dim(TcellToRGB(tt.plain), 0.6))
		if got := bgAt(s, tt.x, tt.y); got != want {
			t.Errorf("Background at (%d, %d) = %v, want %v", tt.x, tt.y, got, want)
		}
	}

	c.DrawPaused()
	found := false
	for y := 0; y < 24; y++ {
		if strings.Contains(rowText(s, y), "PAUSED") {
			found = true
		}
	}
	if !found {
		t.Error("Pause label not drawn")
	}
}
