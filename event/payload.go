package event

import (
	"github.com/lixenwraith/galactic-wrench/core"
	"github.com/lixenwraith/galactic-wrench/parameter"
)

// ShotPayload describes a fired bullet
type ShotPayload struct {
	Bullet core.Entity
	Weapon int
	X, Y   float64
}

// EnemyPayload describes a hit or killed enemy
type EnemyPayload struct {
	Enemy  core.Entity
	Type   parameter.EnemyType
	Health int // Remaining health, <= 0 on kill
	Points int // Score awarded, 0 for non-lethal hits
	X, Y   float64
}

// PlayerHitPayload carries health after contact damage
type PlayerHitPayload struct {
	Damage int
	Health int
}

// BoltPayload carries a collected pickup value and the new total
type BoltPayload struct {
	Value int
	Total int
}

// WavePayload carries the new wave number
type WavePayload struct {
	Wave int
}

// GameOverPayload carries final session scalars
type GameOverPayload struct {
	Score int
	Bolts int
	Wave  int
	Kills int
}
