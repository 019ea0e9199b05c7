package status

import (
	"math"
	"sync/atomic"
)

// AtomicFloat is a float64 stored as bits for lock-free access
// Zero value is ready to use
type AtomicFloat struct {
	bits atomic.Uint64
}

func (f *AtomicFloat) Set(val float64) {
	f.bits.Store(math.Float64bits(val))
}

func (f *AtomicFloat) Get() float64 {
	return math.Float64frombits(f.bits.Load())
}

// Add adds delta and returns the new value
func (f *AtomicFloat) Add(delta float64) float64 {
	for {
		old := f.bits.Load()
		next := math.Float64frombits(old) + delta
		if f.bits.CompareAndSwap(old, math.Float64bits(next)) {
			return next
		}
	}
}

// Max raises the stored value to val if val is larger, returning the result
func (f *AtomicFloat) Max(val float64) float64 {
	for {
		old := f.bits.Load()
		cur := math.Float64frombits(old)
		if val <= cur {
			return cur
		}
		if f.bits.CompareAndSwap(old, math.Float64bits(val)) {
			return val
		}
	}
}
