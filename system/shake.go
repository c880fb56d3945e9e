package system

import (
	"github.com/lixenwraith/galactic-wrench/engine"
	"github.com/lixenwraith/galactic-wrench/parameter"
	"github.com/lixenwraith/galactic-wrench/vmath"
)

// triggerShake applies a random offset of the given intensity and reschedules the reset
// A newer pulse replaces both the offset and the pending reset
func triggerShake(s engine.State, intensity float64, env Env) engine.State {
	s.Shake.Offset = vmath.Vec2{
		X: (env.Rand.Float64() - 0.5) * intensity,
		Y: (env.Rand.Float64() - 0.5) * intensity,
	}
	s.Timeline = s.Timeline.Schedule(engine.TimerShakeReset, s.GameTime+parameter.ShakeDuration)
	return s
}

func resetShake(s engine.State) engine.State {
	s.Shake.Offset = vmath.Vec2{}
	return s
}
