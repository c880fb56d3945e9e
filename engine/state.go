package engine

import (
	"time"

	"github.com/lixenwraith/galactic-wrench/component"
	"github.com/lixenwraith/galactic-wrench/core"
	"github.com/lixenwraith/galactic-wrench/event"
	"github.com/lixenwraith/galactic-wrench/parameter"
	"github.com/lixenwraith/galactic-wrench/vmath"
)

// State is the complete simulation state of one session
// It is a value: a tick reads the previous State and returns the next one
// Registries and the Timeline are immutable, so copying State is shallow and safe
type State struct {
	Phase core.GamePhase

	// Session scalars
	Health int
	Bolts  int
	Score  int
	Wave   int
	Kills  int
	Weapon int // Equipped weapon catalog index

	Player     component.PlayerComponent
	Bullets    Registry[component.BulletComponent]
	Enemies    Registry[component.EnemyComponent]
	Particles  Registry[component.ParticleComponent]
	Pickups    Registry[component.BoltPickupComponent]
	Explosions Registry[component.ExplosionComponent]
	Shake      component.ShakeComponent

	GameTime time.Duration // Elapsed session game time
	LastShot time.Duration // Game time of the last shot, valid when HasFired
	HasFired bool
	Timeline Timeline

	// Tick counts steps across sessions
	Tick uint64

	// Events emitted by the step that produced this state
	Events []event.GameEvent
}

// NewState returns the idle menu state
func NewState() State {
	s := freshSession()
	s.Phase = core.PhaseMenu
	return s
}

// Restart returns a new Playing session built from s
// Only valid from Menu or GameOver; Playing states are returned unchanged
func (s State) Restart() State {
	if s.Phase == core.PhasePlaying {
		return s
	}
	next := freshSession()
	next.Phase = core.PhasePlaying
	next.Tick = s.Tick
	next.Timeline = next.Timeline.Schedule(TimerSpawn, parameter.SpawnPeriod(next.Wave))
	next.Emit(event.EventGameStarted, nil)
	return next
}

// ToMenu returns the menu state after a finished session
// Final scalars are kept for display until the next Restart
func (s State) ToMenu() State {
	if s.Phase != core.PhaseGameOver {
		return s
	}
	next := s
	next.Phase = core.PhaseMenu
	next.Timeline = next.Timeline.Clear()
	next.Shake = component.ShakeComponent{}
	next.Events = nil
	return next
}

// Emit appends an outbound event stamped with the current tick
func (s *State) Emit(t event.EventType, payload any) {
	s.Events = append(s.Events, event.GameEvent{Type: t, Payload: payload, Tick: s.Tick})
}

func freshSession() State {
	return State{
		Health: parameter.PlayerMaxHealth,
		Wave:   parameter.StartingWave,
		Player: component.PlayerComponent{
			Pos: vmath.Vec2{X: parameter.PlayerStartX, Y: parameter.PlayerStartY},
		},
	}
}
