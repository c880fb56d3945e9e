package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/galactic-wrench/core"
	"github.com/lixenwraith/galactic-wrench/engine"
	"github.com/lixenwraith/galactic-wrench/event"
	"github.com/lixenwraith/galactic-wrench/parameter"
)

func TestWaveAdvancesOnKillMilestones(t *testing.T) {
	tests := []struct {
		prev, kills int
		wantWave    int
	}{
		{9, 10, 2},
		{10, 11, 1},
		{11, 19, 1},
		{19, 20, 2},
		{29, 30, 2},
		{9, 21, 3},
		{0, 0, 1},
	}
	for _, tt := range tests {
		s := newPlayingState()
		s.Kills = tt.kills

		next := advanceWave(s, tt.prev)

		if next.Wave != tt.wantWave {
			t.Errorf("kills %d->%d: Wave = %d, want %d", tt.prev, tt.kills, next.Wave, tt.wantWave)
		}
	}
}

func TestWaveSequenceOverSession(t *testing.T) {
	s := newPlayingState()
	for kills := 1; kills <= 35; kills++ {
		prev := s.Kills
		s.Kills = kills
		s.Events = nil
		s = advanceWave(s, prev)

		advanced := countEvents(s, event.EventWaveAdvanced) == 1
		want := kills%10 == 0
		if advanced != want {
			t.Errorf("kills %d: advanced = %v, want %v", kills, advanced, want)
		}
	}
	if s.Wave != 4 {
		t.Errorf("Wave = %d after 35 kills, want 4", s.Wave)
	}
}

func TestWaveChangeRearmsSpawnTimer(t *testing.T) {
	s := newPlayingState()
	s.GameTime = 5 * time.Second
	s.Kills = 10

	next := advanceWave(s, 9)

	due, ok := next.Timeline.Pending(engine.TimerSpawn)
	if want := s.GameTime + parameter.SpawnPeriod(2); !ok || due != want {
		t.Errorf("spawn due = %v (%v), want %v", due, ok, want)
	}
}

func TestWaveAfterGameOverDoesNotArmTimer(t *testing.T) {
	s := newPlayingState()
	s.Phase = core.PhaseGameOver
	s.Timeline = s.Timeline.Clear()
	s.Kills = 10

	next := advanceWave(s, 9)

	if next.Timeline.Len() != 0 {
		t.Errorf("Timeline.Len() = %d, want 0", next.Timeline.Len())
	}
}
