package component

import "github.com/lixenwraith/galactic-wrench/vmath"

// ExplosionComponent is a cosmetic frame timer; renderers derive the radius from Frame
type ExplosionComponent struct {
	Pos   vmath.Vec2
	Frame int
}
