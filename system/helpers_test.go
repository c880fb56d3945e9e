package system

import (
	"github.com/lixenwraith/galactic-wrench/component"
	"github.com/lixenwraith/galactic-wrench/core"
	"github.com/lixenwraith/galactic-wrench/engine"
	"github.com/lixenwraith/galactic-wrench/event"
	"github.com/lixenwraith/galactic-wrench/parameter"
	"github.com/lixenwraith/galactic-wrench/vmath"
)

func newTestEnv(seed uint64) Env {
	cfg := engine.DefaultConfig()
	cfg.Seed = seed
	return NewEnv(cfg, core.NewIDSource())
}

// newPlayingState returns a fresh session with the start event drained
func newPlayingState() engine.State {
	s := engine.NewState().Restart()
	s.Events = nil
	return s
}

func addEnemy(s engine.State, env Env, t parameter.EnemyType, x, y float64, health int) (engine.State, core.Entity) {
	id := env.IDs.Next()
	s.Enemies = s.Enemies.Append(id, component.EnemyComponent{Pos: vmath.Vec2{X: x, Y: y}, Health: health, Type: t})
	return s, id
}

func addBullet(s engine.State, env Env, x, y float64, weapon int) (engine.State, core.Entity) {
	id := env.IDs.Next()
	w := parameter.WeaponAt(weapon)
	s.Bullets = s.Bullets.Append(id, component.BulletComponent{
		Pos: vmath.Vec2{X: x, Y: y}, Speed: w.Speed, Weapon: weapon, Damage: w.Damage,
	})
	return s, id
}

func countEvents(s engine.State, t event.EventType) int {
	n := 0
	for _, ev := range s.Events {
		if ev.Type == t {
			n++
		}
	}
	return n
}

func componentPickup(x, y float64, value int) component.BoltPickupComponent {
	return component.BoltPickupComponent{Pos: vmath.Vec2{X: x, Y: y}, Value: value}
}

func componentParticle(life int) component.ParticleComponent {
	return component.ParticleComponent{Vel: vmath.Vec2{X: 1, Y: 1}, Life: life, Size: 3, Color: "#ffffff"}
}

// lookup finds the value stored under id
func lookup[T any](r engine.Registry[T], id core.Entity) (T, bool) {
	var found T
	ok := false
	r.Each(func(eid core.Entity, v T) bool {
		if eid == id {
			found, ok = v, true
			return false
		}
		return true
	})
	return found, ok
}
