package component

import "github.com/lixenwraith/galactic-wrench/vmath"

// ParticleComponent is a damped cosmetic spark
type ParticleComponent struct {
	Pos   vmath.Vec2
	Vel   vmath.Vec2
	Life  int // Remaining ticks
	Color string
	Size  float64
}
