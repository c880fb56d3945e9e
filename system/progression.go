package system

import (
	"github.com/lixenwraith/galactic-wrench/core"
	"github.com/lixenwraith/galactic-wrench/engine"
	"github.com/lixenwraith/galactic-wrench/event"
	"github.com/lixenwraith/galactic-wrench/parameter"
)

// advanceWave raises the wave once per kill milestone crossed since prevKills
// The spawn timer is re-armed with the new period while the session is live
func advanceWave(s engine.State, prevKills int) engine.State {
	crossed := s.Kills/parameter.KillsPerWave - prevKills/parameter.KillsPerWave
	if crossed <= 0 {
		return s
	}
	s.Wave += crossed
	s.Emit(event.EventWaveAdvanced, &event.WavePayload{Wave: s.Wave})

	if s.Phase == core.PhasePlaying {
		s.Timeline = s.Timeline.Schedule(engine.TimerSpawn, s.GameTime+parameter.SpawnPeriod(s.Wave))
	}
	return s
}
