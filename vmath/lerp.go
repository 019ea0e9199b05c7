package vmath

import "math"

// Advance moves current toward target by at most rate*dt and never overshoots
// rate is in units per second; dt <= 0 or rate <= 0 returns current unchanged
func Advance(current, target, rate, dt float64) float64 {
	if dt <= 0 || rate <= 0 {
		return current
	}
	step := rate * dt
	diff := target - current
	if math.Abs(diff) <= step {
		return target
	}
	return current + math.Copysign(step, diff)
}

// LerpValue ramps Current toward Target at Rate units per second
// Zero Rate snaps to Target on the first positive tick
type LerpValue struct {
	Current float64
	Target  float64
	Rate    float64
}

// NewRamp creates a value at from that reaches to after duration seconds
func NewRamp(from, to, duration float64) LerpValue {
	l := LerpValue{Current: from, Target: to}
	if duration > 0 {
		l.Rate = math.Abs(to-from) / duration
	}
	return l
}

// Update advances the ramp by dt seconds and returns the new value
func (l *LerpValue) Update(dt float64) float64 {
	if l.Rate <= 0 {
		if dt > 0 {
			l.Current = l.Target
		}
		return l.Current
	}
	l.Current = Advance(l.Current, l.Target, l.Rate, dt)
	return l.Current
}

// Settled reports whether the ramp has reached its target
func (l LerpValue) Settled() bool {
	return l.Current == l.Target
}

// Reset places both current and target at v, keeping the rate
func (l *LerpValue) Reset(v float64) {
	l.Current = v
	l.Target = v
}
