package vmath

// FastRand is a xorshift64 generator for reproducible jitter in scripted sessions
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Float64 returns a value in [0,1)
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Symmetric returns a value in [-amplitude, amplitude)
func (r *FastRand) Symmetric(amplitude float64) float64 {
	return (r.Float64()*2 - 1) * amplitude
}

// Jitter returns v displaced by a uniform offset of at most amplitude per axis
func (r *FastRand) Jitter(v Vec2F, amplitude float64) Vec2F {
	return Vec2F{v.X + r.Symmetric(amplitude), v.Y + r.Symmetric(amplitude)}
}
