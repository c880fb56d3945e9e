package system

import (
	"github.com/lixenwraith/galactic-wrench/component"
	"github.com/lixenwraith/galactic-wrench/core"
	"github.com/lixenwraith/galactic-wrench/engine"
	"github.com/lixenwraith/galactic-wrench/event"
	"github.com/lixenwraith/galactic-wrench/parameter"
	"github.com/lixenwraith/galactic-wrench/vmath"
)

// resolveBulletHits pairs bullets with enemies
// Bullets are visited in registry order and each hits the first live enemy in registry order;
// an enemy killed by an earlier bullet is excluded from every later pairing
func resolveBulletHits(s engine.State, env Env) engine.State {
	if s.Bullets.Len() == 0 || s.Enemies.Len() == 0 {
		return s
	}

	enemies := s.Enemies.Items()
	spent := make(map[core.Entity]bool)

	for _, b := range s.Bullets.Items() {
		target := -1
		for i := range enemies {
			e := enemies[i].Value
			if e.Health > 0 && vmath.Dist(b.Value.Pos, e.Pos) < e.Archetype().Radius() {
				target = i
				break
			}
		}
		if target < 0 {
			continue
		}
		spent[b.ID] = true

		// Parity: damage and color follow the equipped weapon unless snapshotting is enabled
		w := parameter.WeaponAt(s.Weapon)
		damage := w.Damage
		if env.Config.SnapshotBulletDamage {
			w = parameter.WeaponAt(b.Value.Weapon)
			damage = b.Value.Damage
		}
		s = CreateParticles(s, b.Value.Pos, w.Color, parameter.ImpactParticles, env)

		hit := &enemies[target]
		hit.Value.Health -= damage
		arch := hit.Value.Archetype()

		if hit.Value.Health > 0 {
			s.Emit(event.EventEnemyHit, &event.EnemyPayload{
				Enemy: hit.ID, Type: arch.Type, Health: hit.Value.Health,
				X: hit.Value.Pos.X, Y: hit.Value.Pos.Y,
			})
			continue
		}

		s.Score += arch.Points
		s.Kills++
		s = CreateParticles(s, hit.Value.Pos, arch.Color, parameter.DeathParticles, env)
		s.Explosions = s.Explosions.Append(env.IDs.Next(), component.ExplosionComponent{Pos: hit.Value.Pos})
		s = triggerShake(s, parameter.ShakeKill, env)
		s = dropBolt(s, hit.Value.Pos, arch.Points, env)
		s.Emit(event.EventEnemyKilled, &event.EnemyPayload{
			Enemy: hit.ID, Type: arch.Type, Health: hit.Value.Health, Points: arch.Points,
			X: hit.Value.Pos.X, Y: hit.Value.Pos.Y,
		})
	}

	health := make(map[core.Entity]int, len(enemies))
	for _, e := range enemies {
		health[e.ID] = e.Value.Health
	}
	s.Enemies = s.Enemies.
		Map(func(id core.Entity, e component.EnemyComponent) component.EnemyComponent {
			e.Health = health[id]
			return e
		}).
		Filter(func(_ core.Entity, e component.EnemyComponent) bool {
			return e.Health > 0
		})
	s.Bullets = s.Bullets.Filter(func(id core.Entity, _ component.BulletComponent) bool {
		return !spent[id]
	})
	return s
}

// resolvePlayerContacts applies contact damage from every overlapping enemy, every tick
// Reaching zero health ends the session, cancels all timers and stops the shake
func resolvePlayerContacts(s engine.State, env Env) engine.State {
	var touching []component.EnemyComponent
	s.Enemies.Each(func(_ core.Entity, e component.EnemyComponent) bool {
		if vmath.Dist(s.Player.Pos, e.Pos) < e.Archetype().Radius()+parameter.ContactPadding {
			touching = append(touching, e)
		}
		return true
	})

	for range touching {
		s.Health = vmath.ClampInt(s.Health-parameter.ContactDamage, 0, parameter.PlayerMaxHealth)
		s = triggerShake(s, parameter.ShakeContact, env)
		s.Emit(event.EventPlayerHit, &event.PlayerHitPayload{
			Damage: parameter.ContactDamage,
			Health: s.Health,
		})

		if s.Health == 0 {
			// Clearing the timeline drops the pending shake reset, so the offset goes with it
			s.Phase = core.PhaseGameOver
			s.Timeline = s.Timeline.Clear()
			s.Shake = component.ShakeComponent{}
			s.Emit(event.EventGameOver, &event.GameOverPayload{
				Score: s.Score, Bolts: s.Bolts, Wave: s.Wave, Kills: s.Kills,
			})
			break
		}
	}
	return s
}

// collectPickups absorbs every bolt pickup within reach of the player
func collectPickups(s engine.State) engine.State {
	player := s.Player.Pos
	var collected []int
	s.Pickups = s.Pickups.Filter(func(_ core.Entity, p component.BoltPickupComponent) bool {
		if vmath.Dist(player, p.Pos) < parameter.PickupRadius {
			collected = append(collected, p.Value)
			return false
		}
		return true
	})
	for _, v := range collected {
		s.Bolts += v
		s.Emit(event.EventBoltCollected, &event.BoltPayload{Value: v, Total: s.Bolts})
	}
	return s
}
