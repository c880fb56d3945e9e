package system

import (
	"github.com/lixenwraith/galactic-wrench/component"
	"github.com/lixenwraith/galactic-wrench/core"
	"github.com/lixenwraith/galactic-wrench/engine"
	"github.com/lixenwraith/galactic-wrench/parameter"
	"github.com/lixenwraith/galactic-wrench/vmath"
)

// movePlayer applies held keys at fixed speed per axis and clamps to the inset field
func movePlayer(s engine.State, in engine.Input) engine.State {
	pos := s.Player.Pos.Add(in.Direction().Scale(parameter.PlayerSpeed))
	s.Player.Pos = vmath.Vec2{
		X: vmath.Clamp(pos.X, parameter.PlayerMinX, parameter.PlayerMaxX),
		Y: vmath.Clamp(pos.Y, parameter.PlayerMinY, parameter.PlayerMaxY),
	}
	return s
}

// aimPlayer faces the player toward the cursor from the already-moved position
func aimPlayer(s engine.State, in engine.Input) engine.State {
	s.Player.Angle = vmath.AngleTo(s.Player.Pos, in.Cursor)
	return s
}

// moveBullets advances bullets and drops those outside the culling box on the same tick
func moveBullets(s engine.State) engine.State {
	s.Bullets = s.Bullets.
		Map(func(_ core.Entity, b component.BulletComponent) component.BulletComponent {
			b.Pos = b.Pos.Add(vmath.FromAngle(b.Angle, b.Speed))
			return b
		}).
		Filter(func(_ core.Entity, b component.BulletComponent) bool {
			return vmath.Within(b.Pos, parameter.BulletMinX, parameter.BulletMinY, parameter.BulletMaxX, parameter.BulletMaxY)
		})
	return s
}

// moveEnemies steers every enemy toward the player position committed this tick
func moveEnemies(s engine.State) engine.State {
	target := s.Player.Pos
	s.Enemies = s.Enemies.Map(func(_ core.Entity, e component.EnemyComponent) component.EnemyComponent {
		e.Angle = vmath.AngleTo(e.Pos, target)
		e.Pos = e.Pos.Add(vmath.FromAngle(e.Angle, e.Archetype().Speed))
		return e
	})
	return s
}

// updateParticles integrates damped motion; expired particles are pruned at end of tick
func updateParticles(s engine.State) engine.State {
	s.Particles = s.Particles.Map(func(_ core.Entity, p component.ParticleComponent) component.ParticleComponent {
		p.Pos = p.Pos.Add(p.Vel)
		p.Vel = p.Vel.Scale(parameter.ParticleDamping)
		p.Life--
		p.Size *= parameter.ParticleShrink
		return p
	})
	return s
}

// updateExplosions advances explosion frames
func updateExplosions(s engine.State) engine.State {
	s.Explosions = s.Explosions.Map(func(_ core.Entity, e component.ExplosionComponent) component.ExplosionComponent {
		e.Frame++
		return e
	})
	return s
}

// prune removes expired cosmetic entities
func prune(s engine.State) engine.State {
	s.Particles = s.Particles.Filter(func(_ core.Entity, p component.ParticleComponent) bool {
		return p.Life > 0
	})
	s.Explosions = s.Explosions.Filter(func(_ core.Entity, e component.ExplosionComponent) bool {
		return e.Frame < parameter.ExplosionFrames
	})
	return s
}
