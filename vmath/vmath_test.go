package vmath

import (
	"math"
	"testing"
)

func TestAdvance(t *testing.T) {
	tests := []struct {
		name                      string
		current, target, rate, dt float64
		want                      float64
	}{
		{"step up", 0, 1, 2, 0.25, 0.5},
		{"step down", 1, 0, 2, 0.25, 0.5},
		{"no overshoot", 0.9, 1, 2, 0.25, 1},
		{"zero dt", 0.3, 1, 2, 0, 0.3},
		{"negative dt", 0.3, 1, 2, -1, 0.3},
		{"zero rate", 0.3, 1, 0, 1, 0.3},
		{"at target", 0.3, 0.3, 2, 1, 0.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Advance(tt.current, tt.target, tt.rate, tt.dt)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Advance(%v,%v,%v,%v) = %v, want %v", tt.current, tt.target, tt.rate, tt.dt, got, tt.want)
			}
		})
	}
}

func TestLerpValueRamp(t *testing.T) {
	l := NewRamp(0, 0.3, 0.5)

	l.Update(0.25)
	if math.Abs(l.Current-0.15) > 1e-12 {
		t.Errorf("Expected half way after quarter second, got %v", l.Current)
	}
	if l.Settled() {
		t.Error("Expected ramp to be unsettled mid-way")
	}

	l.Update(1)
	if l.Current != 0.3 || !l.Settled() {
		t.Errorf("Expected settled at 0.3, got %v", l.Current)
	}

	l.Reset(0.1)
	if l.Current != 0.1 || l.Target != 0.1 {
		t.Errorf("Expected reset to 0.1, got current=%v target=%v", l.Current, l.Target)
	}
	if l.Rate == 0 {
		t.Error("Expected Reset to keep the rate")
	}
}

func TestLerpValueZeroRateSnaps(t *testing.T) {
	l := LerpValue{Current: 0, Target: 0.7}
	if got := l.Update(0); got != 0 {
		t.Errorf("Expected no change on zero dt, got %v", got)
	}
	if got := l.Update(0.01); got != 0.7 {
		t.Errorf("Expected snap to target, got %v", got)
	}
}

func TestClamp01(t *testing.T) {
	if Clamp01(-0.5) != 0 || Clamp01(1.5) != 1 || Clamp01(0.25) != 0.25 {
		t.Error("Clamp01 out of range handling failed")
	}
	if Clamp01(math.NaN()) != 0 {
		t.Error("Expected NaN to clamp to 0")
	}
	v := V2FClamp01(Vec2F{-1, 2})
	if v != (Vec2F{0, 1}) {
		t.Errorf("V2FClamp01 = %v", v)
	}
}

func TestVec2FOps(t *testing.T) {
	a := Vec2F{0.2, 0.4}
	b := Vec2F{0.6, 0.1}

	if got := V2FAdd(a, b); math.Abs(got.X-0.8) > 1e-12 || math.Abs(got.Y-0.5) > 1e-12 {
		t.Errorf("V2FAdd = %v", got)
	}
	if got := V2FLerp(a, b, 0.5); math.Abs(got.X-0.4) > 1e-12 || math.Abs(got.Y-0.25) > 1e-12 {
		t.Errorf("V2FLerp = %v", got)
	}
	if got := V2FMag(Vec2F{3, 4}); got != 5 {
		t.Errorf("V2FMag = %v", got)
	}
	if V2FFinite(Vec2F{math.Inf(1), 0}) || !V2FFinite(a) {
		t.Error("V2FFinite mismatch")
	}
}

func TestFastRandDeterministic(t *testing.T) {
	r1 := NewFastRand(42)
	r2 := NewFastRand(42)
	for i := 0; i < 100; i++ {
		a, b := r1.Float64(), r2.Float64()
		if a != b {
			t.Fatalf("Sequences diverged at %d: %v vs %v", i, a, b)
		}
		if a < 0 || a >= 1 {
			t.Fatalf("Float64 out of range: %v", a)
		}
	}

	r := NewFastRand(0)
	for i := 0; i < 100; i++ {
		if s := r.Symmetric(0.1); s < -0.1 || s >= 0.1 {
			t.Fatalf("Symmetric out of range: %v", s)
		}
	}
}
