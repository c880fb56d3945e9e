package component

import (
	"github.com/lixenwraith/galactic-wrench/parameter"
	"github.com/lixenwraith/galactic-wrench/vmath"
)

// EnemyComponent is a homing hostile; stats come from its archetype
type EnemyComponent struct {
	Pos    vmath.Vec2
	Health int
	Type   parameter.EnemyType
	Angle  float64
}

// Archetype resolves the static template for the enemy, never fails
func (e EnemyComponent) Archetype() parameter.EnemyArchetype {
	return parameter.EnemyArchetypeByType(e.Type)
}
