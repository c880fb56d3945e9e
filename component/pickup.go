package component

import "github.com/lixenwraith/galactic-wrench/vmath"

// BoltPickupComponent is dropped currency waiting for the player; it has no TTL
type BoltPickupComponent struct {
	Pos   vmath.Vec2
	Value int
}
