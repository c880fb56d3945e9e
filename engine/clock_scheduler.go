package engine

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/galactic-wrench/core"
	"github.com/lixenwraith/galactic-wrench/event"
	"github.com/lixenwraith/galactic-wrench/status"
)

// StepFunc advances a state by one tick
type StepFunc func(prev State, in Input) State

type command uint8

const (
	cmdNewGame command = iota
	cmdReturnToMenu
)

// ClockScheduler drives the simulation on a fixed tick
// The scheduler goroutine is the single owner of State; other goroutines
// push Input through SetInput and read the published Snapshot
type ClockScheduler struct {
	step  StepFunc
	clock Clock
	state State // Owned by the tick goroutine

	tickInterval     time.Duration
	nextTickDeadline time.Time

	// Input box, written by the input goroutine
	inputMu        sync.Mutex
	input          Input
	pendingWeapons []int

	commands chan command
	snapshot atomic.Pointer[Snapshot]
	queue    *event.EventQueue

	tickCount atomic.Uint64

	// Control channels
	stopChan chan struct{}
	wg       sync.WaitGroup
	running  atomic.Bool

	// Cached metric pointers
	statTicks   *atomic.Int64
	statEnemies *atomic.Int64
	statKills   *atomic.Int64
	statWave    *atomic.Int64
	statDropped *atomic.Int64
	statTickMs  *status.Gauge
}

// NewClockScheduler creates a scheduler starting in the menu phase
func NewClockScheduler(cfg Config, step StepFunc, clock Clock, queue *event.EventQueue, reg *status.Registry) *ClockScheduler {
	cs := &ClockScheduler{
		step:         step,
		clock:        clock,
		state:        NewState(),
		tickInterval: cfg.TickInterval,
		input:        NewInput(),
		commands:     make(chan command, 8),
		queue:        queue,
		stopChan:     make(chan struct{}),
		statTicks:    reg.Ints.Get("engine.ticks"),
		statEnemies:  reg.Ints.Get("game.enemies"),
		statKills:    reg.Ints.Get("game.kills"),
		statWave:     reg.Ints.Get("game.wave"),
		statDropped:  reg.Ints.Get("event.dropped"),
		statTickMs:   reg.Gauges.Get("engine.tick_ms"),
	}
	cs.snapshot.Store(NewSnapshot(cs.state))
	return cs
}

// SetInput replaces the held input; weapon selections accumulate until the next tick
func (cs *ClockScheduler) SetInput(in Input) {
	cs.inputMu.Lock()
	defer cs.inputMu.Unlock()
	cs.pendingWeapons = append(cs.pendingWeapons, in.WeaponSelect...)
	in.WeaponSelect = nil
	cs.input = in
}

// NewGame requests a session reset into Playing, ignored while already playing
func (cs *ClockScheduler) NewGame() {
	cs.sendCommand(cmdNewGame)
}

// ReturnToMenu requests GameOver → Menu
func (cs *ClockScheduler) ReturnToMenu() {
	cs.sendCommand(cmdReturnToMenu)
}

func (cs *ClockScheduler) sendCommand(c command) {
	select {
	case cs.commands <- c:
	default:
		log.Printf("scheduler: command queue full, dropped %d", c)
	}
}

// Snapshot returns the latest published view, never nil
func (cs *ClockScheduler) Snapshot() *Snapshot {
	return cs.snapshot.Load()
}

// TickCount returns the number of ticks processed
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// Start begins the scheduler loop
func (cs *ClockScheduler) Start() {
	select {
	case <-cs.stopChan:
		return
	default:
	}
	if cs.running.CompareAndSwap(false, true) {
		cs.wg.Add(1)
		log.Printf("scheduler: started, tick %v", cs.tickInterval)
		core.Go(cs.schedulerLoop)
	}
}

// Stop halts the scheduler loop and waits for it to exit
// A stopped scheduler cannot be restarted
func (cs *ClockScheduler) Stop() {
	if cs.running.CompareAndSwap(true, false) {
		close(cs.stopChan)
		cs.wg.Wait()
		log.Printf("scheduler: stopped after %d ticks", cs.tickCount.Load())
	}
}

// schedulerLoop ticks on deadline with drift correction
func (cs *ClockScheduler) schedulerLoop() {
	defer cs.wg.Done()

	cs.nextTickDeadline = cs.clock.Now().Add(cs.tickInterval)

	timer := time.NewTimer(cs.tickInterval)
	defer timer.Stop()

	for {
		select {
		case <-cs.stopChan:
			return
		case <-timer.C:
		}

		now := cs.clock.Now()
		if !now.Before(cs.nextTickDeadline) {
			cs.Tick()

			cs.nextTickDeadline = cs.nextTickDeadline.Add(cs.tickInterval)
			// Too far behind: drop missed ticks rather than bursting
			if now.Sub(cs.nextTickDeadline) > 2*cs.tickInterval {
				cs.nextTickDeadline = now.Add(cs.tickInterval)
			}
		}

		sleep := cs.nextTickDeadline.Sub(cs.clock.Now())
		if sleep < 0 {
			sleep = 0
		}
		timer.Reset(sleep)
	}
}

// Tick runs one step synchronously on the caller's goroutine
// Must only be called from the scheduler loop, or by tests before Start
func (cs *ClockScheduler) Tick() {
	start := time.Now()

	cs.applyCommands()

	cs.inputMu.Lock()
	in := cs.input
	in.WeaponSelect = cs.pendingWeapons
	cs.pendingWeapons = nil
	cs.inputMu.Unlock()

	prevPhase := cs.state.Phase
	cs.state = cs.step(cs.state, in)
	cs.publish()

	if prevPhase != cs.state.Phase {
		log.Printf("scheduler: phase %v -> %v at tick %d", prevPhase, cs.state.Phase, cs.state.Tick)
	}

	cs.tickCount.Add(1)
	cs.statTicks.Store(int64(cs.tickCount.Load()))
	cs.statEnemies.Store(int64(cs.state.Enemies.Len()))
	cs.statKills.Store(int64(cs.state.Kills))
	cs.statWave.Store(int64(cs.state.Wave))
	cs.statDropped.Store(int64(cs.queue.Dropped()))
	cs.statTickMs.Observe(float64(time.Since(start).Microseconds()) / 1000)
}

// applyCommands drains pending phase transitions
func (cs *ClockScheduler) applyCommands() {
	for {
		select {
		case c := <-cs.commands:
			switch c {
			case cmdNewGame:
				if cs.state.Phase != core.PhasePlaying {
					cs.state = cs.state.Restart()
					log.Printf("scheduler: new game at tick %d", cs.state.Tick)
					cs.publish()
				}
			case cmdReturnToMenu:
				cs.state = cs.state.ToMenu()
			}
		default:
			return
		}
	}
}

// publish pushes emitted events and the snapshot, then clears events so they are sent once
func (cs *ClockScheduler) publish() {
	cs.queue.PushAll(cs.state.Events)
	cs.state.Events = nil
	cs.snapshot.Store(NewSnapshot(cs.state))
}
