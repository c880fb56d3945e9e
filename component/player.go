package component

import "github.com/lixenwraith/galactic-wrench/vmath"

// PlayerComponent is the controllable ship
// Health and weapon selection are session scalars held by engine.State
type PlayerComponent struct {
	Pos   vmath.Vec2
	Angle float64 // Facing toward the cursor, radians
}
