package status

import (
	"math"
	"sync/atomic"
)

// Gauge holds the last observed float sample and the peak seen since creation
// Zero value is ready to use
type Gauge struct {
	last atomic.Uint64
	peak atomic.Uint64
}

// Observe records a sample, raising the peak when exceeded
func (g *Gauge) Observe(v float64) {
	g.last.Store(math.Float64bits(v))
	for {
		old := g.peak.Load()
		if math.Float64frombits(old) >= v {
			return
		}
		if g.peak.CompareAndSwap(old, math.Float64bits(v)) {
			return
		}
	}
}

// Last returns the most recent sample
func (g *Gauge) Last() float64 {
	return math.Float64frombits(g.last.Load())
}

// Peak returns the largest sample observed
func (g *Gauge) Peak() float64 {
	return math.Float64frombits(g.peak.Load())
}
