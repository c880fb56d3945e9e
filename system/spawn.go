package system

import (
	"math"

	"github.com/lixenwraith/galactic-wrench/component"
	"github.com/lixenwraith/galactic-wrench/engine"
	"github.com/lixenwraith/galactic-wrench/parameter"
	"github.com/lixenwraith/galactic-wrench/vmath"
)

// Spawn sides, drawn uniformly
const (
	sideTop = iota
	sideRight
	sideBottom
	sideLeft
)

// SpawnEnemy adds one enemy just outside a random field edge
// The archetype is uniform among those unlocked by the current wave
func SpawnEnemy(s engine.State, env Env) engine.State {
	arch := parameter.EnemyArchetypes[env.Rand.Intn(parameter.SpawnTier(s.Wave))]

	var pos vmath.Vec2
	switch env.Rand.Intn(4) {
	case sideTop:
		pos = vmath.Vec2{X: env.Rand.Range(0, parameter.FieldWidth), Y: -parameter.SpawnEdgeOffset}
	case sideRight:
		pos = vmath.Vec2{X: parameter.FieldWidth + parameter.SpawnEdgeOffset, Y: env.Rand.Range(0, parameter.FieldHeight)}
	case sideBottom:
		pos = vmath.Vec2{X: env.Rand.Range(0, parameter.FieldWidth), Y: parameter.FieldHeight + parameter.SpawnEdgeOffset}
	default:
		pos = vmath.Vec2{X: -parameter.SpawnEdgeOffset, Y: env.Rand.Range(0, parameter.FieldHeight)}
	}

	s.Enemies = s.Enemies.Append(env.IDs.Next(), component.EnemyComponent{
		Pos:    pos,
		Health: arch.Health + s.Wave*parameter.HealthPerWave,
		Type:   arch.Type,
	})
	return s
}

// spawnWave handles a spawn timer firing and re-arms the timer
// A firing at or above the population cap is skipped, not deferred
func spawnWave(s engine.State, due engine.TimerEvent, env Env) engine.State {
	if s.Enemies.Len() < parameter.SpawnPopulationCap {
		for i := 0; i < parameter.SpawnBatch(s.Wave); i++ {
			s = SpawnEnemy(s, env)
		}
	}
	s.Timeline = s.Timeline.Schedule(engine.TimerSpawn, due.Due+parameter.SpawnPeriod(s.Wave))
	return s
}

// CreateParticles adds a radial burst of count particles at pos
func CreateParticles(s engine.State, pos vmath.Vec2, color string, count int, env Env) engine.State {
	for i := 0; i < count; i++ {
		angle := env.Rand.Range(0, 2*math.Pi)
		speed := env.Rand.Range(parameter.ParticleMinSpeed, parameter.ParticleMaxSpeed)
		life := parameter.ParticleMinLife + env.Rand.Intn(parameter.ParticleMaxLife-parameter.ParticleMinLife)
		s.Particles = s.Particles.Append(env.IDs.Next(), component.ParticleComponent{
			Pos:   pos,
			Vel:   vmath.FromAngle(angle, speed),
			Life:  life,
			Color: color,
			Size:  env.Rand.Range(parameter.ParticleMinSize, parameter.ParticleMaxSize),
		})
	}
	return s
}

// dropBolt rolls the loot chance for a killed enemy
func dropBolt(s engine.State, pos vmath.Vec2, points int, env Env) engine.State {
	if !env.Rand.Chance(parameter.BoltDropChance) {
		return s
	}
	offset := vmath.Vec2{
		X: env.Rand.Range(-parameter.BoltScatter, parameter.BoltScatter),
		Y: env.Rand.Range(-parameter.BoltScatter, parameter.BoltScatter),
	}
	s.Pickups = s.Pickups.Append(env.IDs.Next(), component.BoltPickupComponent{
		Pos:   pos.Add(offset),
		Value: points / parameter.BoltValueDivisor,
	})
	return s
}
