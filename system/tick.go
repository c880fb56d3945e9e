package system

import (
	"github.com/lixenwraith/galactic-wrench/core"
	"github.com/lixenwraith/galactic-wrench/engine"
)

// Step advances the simulation by one tick
// prev is never modified: every stage reads the state built so far and returns a new one
// Outside Playing only the tick counter moves
func Step(prev engine.State, in engine.Input, env Env) engine.State {
	next := prev
	next.Events = nil
	next.Tick++

	if prev.Phase != core.PhasePlaying {
		return next
	}

	next.GameTime += env.Config.TickInterval
	next = selectWeapon(next, in)
	next = runTimers(next, env)

	// Motion
	next = movePlayer(next, in)
	next = aimPlayer(next, in)
	next = fire(next, in, env)
	next = moveBullets(next)
	next = moveEnemies(next)
	next = updateParticles(next)
	next = updateExplosions(next)

	// Collision
	next = resolveBulletHits(next, env)
	next = resolvePlayerContacts(next, env)
	next = collectPickups(next)

	next = advanceWave(next, prev.Kills)
	return prune(next)
}

// StepFunc binds env for the scheduler
func StepFunc(env Env) engine.StepFunc {
	return func(prev engine.State, in engine.Input) engine.State {
		return Step(prev, in, env)
	}
}

// runTimers fires every timeline event due at the current game time, in due order
func runTimers(s engine.State, env Env) engine.State {
	due, rest := s.Timeline.PopDue(s.GameTime)
	s.Timeline = rest
	for _, ev := range due {
		switch ev.Kind {
		case engine.TimerSpawn:
			s = spawnWave(s, ev, env)
		case engine.TimerShakeReset:
			s = resetShake(s)
		}
	}
	return s
}
