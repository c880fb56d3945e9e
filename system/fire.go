package system

import (
	"github.com/lixenwraith/galactic-wrench/component"
	"github.com/lixenwraith/galactic-wrench/engine"
	"github.com/lixenwraith/galactic-wrench/event"
	"github.com/lixenwraith/galactic-wrench/parameter"
	"github.com/lixenwraith/galactic-wrench/vmath"
)

// selectWeapon applies weapon-select requests in order; out-of-range indices are ignored
func selectWeapon(s engine.State, in engine.Input) engine.State {
	for _, idx := range in.WeaponSelect {
		if idx >= 0 && idx < parameter.WeaponCount {
			s.Weapon = idx
		}
	}
	return s
}

// canFire reports whether the equipped weapon is off cooldown
func canFire(s engine.State, w parameter.Weapon) bool {
	return !s.HasFired || s.GameTime-s.LastShot > w.FireRate
}

// fire spawns a bullet at the muzzle when the trigger is held and the weapon is ready
func fire(s engine.State, in engine.Input, env Env) engine.State {
	if !in.Fire {
		return s
	}
	w := parameter.WeaponAt(s.Weapon)
	if !canFire(s, w) {
		return s
	}

	muzzle := s.Player.Pos.Add(vmath.FromAngle(s.Player.Angle, parameter.MuzzleOffset))
	id := env.IDs.Next()
	s.Bullets = s.Bullets.Append(id, component.BulletComponent{
		Pos:    muzzle,
		Angle:  s.Player.Angle,
		Speed:  w.Speed,
		Weapon: s.Weapon,
		Damage: w.Damage,
	})
	s = CreateParticles(s, muzzle, w.Color, parameter.MuzzleParticles, env)
	s.LastShot = s.GameTime
	s.HasFired = true

	s.Emit(event.EventShotFired, &event.ShotPayload{Bullet: id, Weapon: s.Weapon, X: muzzle.X, Y: muzzle.Y})
	return s
}
