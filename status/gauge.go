package status

import (
	"math"
	"sync/atomic"
)

// Gauge is an atomic float64, zero value reads 0.0
type Gauge struct {
	bits atomic.Uint64
}

// Set stores val
func (g *Gauge) Set(val float64) {
	g.bits.Store(math.Float64bits(val))
}

// Get loads the current value
func (g *Gauge) Get() float64 {
	return math.Float64frombits(g.bits.Load())
}

// Add adds delta and returns the new value
func (g *Gauge) Add(delta float64) float64 {
	for {
		old := g.bits.Load()
		next := math.Float64frombits(old) + delta
		if g.bits.CompareAndSwap(old, math.Float64bits(next)) {
			return next
		}
	}
}
