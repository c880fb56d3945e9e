package component

import "github.com/lixenwraith/galactic-wrench/vmath"

// BulletComponent is a linear projectile fired by the player
type BulletComponent struct {
	Pos    vmath.Vec2
	Angle  float64
	Speed  float64 // px/tick
	Weapon int     // Catalog index of the weapon that fired it
	Damage int     // Damage of that weapon at fire time
}
