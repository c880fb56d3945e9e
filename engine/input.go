package engine

import (
	"github.com/lixenwraith/galactic-wrench/parameter"
	"github.com/lixenwraith/galactic-wrench/vmath"
)

// Keys is the held movement key bitmask
type Keys uint8

const (
	KeyUp Keys = 1 << iota
	KeyDown
	KeyLeft
	KeyRight
)

// Has reports whether every key in k2 is held
func (k Keys) Has(k2 Keys) bool {
	return k&k2 == k2
}

// Input is the per-tick player intent, already validated by the input adapter
type Input struct {
	Keys         Keys
	Cursor       vmath.Vec2 // Field coordinates
	Fire         bool
	WeaponSelect []int // Weapon indices requested since the last tick, last valid wins
}

// NewInput returns an idle input with the cursor at field centre
func NewInput() Input {
	return Input{Cursor: vmath.Vec2{X: parameter.PlayerStartX, Y: parameter.PlayerStartY}}
}

// Direction returns the unnormalized movement direction, each axis in {-1, 0, 1}
func (in Input) Direction() vmath.Vec2 {
	var d vmath.Vec2
	if in.Keys.Has(KeyUp) {
		d.Y--
	}
	if in.Keys.Has(KeyDown) {
		d.Y++
	}
	if in.Keys.Has(KeyLeft) {
		d.X--
	}
	if in.Keys.Has(KeyRight) {
		d.X++
	}
	return d
}
