package component

import "github.com/lixenwraith/galactic-wrench/vmath"

// ShakeComponent is the viewport offset pulse, zero when idle
type ShakeComponent struct {
	Offset vmath.Vec2
}

// Active reports whether a pulse is currently applied
func (s ShakeComponent) Active() bool {
	return s.Offset.X != 0 || s.Offset.Y != 0
}
