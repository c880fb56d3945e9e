package engine

import (
	"github.com/lixenwraith/galactic-wrench/component"
	"github.com/lixenwraith/galactic-wrench/core"
)

// Snapshot is an immutable render view of a State
// All slices are copies; readers on other goroutines may hold it indefinitely
type Snapshot struct {
	Phase core.GamePhase
	Tick  uint64

	Health int
	Bolts  int
	Score  int
	Wave   int
	Kills  int
	Weapon int

	Player     component.PlayerComponent
	Bullets    []component.BulletComponent
	Enemies    []component.EnemyComponent
	Particles  []component.ParticleComponent
	Pickups    []component.BoltPickupComponent
	Explosions []component.ExplosionComponent
	Shake      component.ShakeComponent
}

// NewSnapshot copies the observable parts of s
func NewSnapshot(s State) *Snapshot {
	return &Snapshot{
		Phase:      s.Phase,
		Tick:       s.Tick,
		Health:     s.Health,
		Bolts:      s.Bolts,
		Score:      s.Score,
		Wave:       s.Wave,
		Kills:      s.Kills,
		Weapon:     s.Weapon,
		Player:     s.Player,
		Bullets:    s.Bullets.Values(),
		Enemies:    s.Enemies.Values(),
		Particles:  s.Particles.Values(),
		Pickups:    s.Pickups.Values(),
		Explosions: s.Explosions.Values(),
		Shake:      s.Shake,
	}
}
