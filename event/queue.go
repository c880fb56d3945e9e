package event

import (
	"sync"

	"github.com/lixenwraith/galactic-wrench/parameter"
)

// EventQueue is a bounded FIFO between the scheduler, which pushes a tick's events,
// and the frame loop, which drains them
// When full the oldest unread event is overwritten and counted in Dropped
type EventQueue struct {
	mu      sync.Mutex
	events  [parameter.EventQueueSize]GameEvent
	head    uint64 // Next read
	tail    uint64 // Next write
	dropped uint64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push adds one event
func (eq *EventQueue) Push(ev GameEvent) {
	eq.mu.Lock()
	eq.push(ev)
	eq.mu.Unlock()
}

// PushAll adds events in order under a single lock
func (eq *EventQueue) PushAll(evs []GameEvent) {
	if len(evs) == 0 {
		return
	}
	eq.mu.Lock()
	for _, ev := range evs {
		eq.push(ev)
	}
	eq.mu.Unlock()
}

func (eq *EventQueue) push(ev GameEvent) {
	eq.events[eq.tail&parameter.EventBufferMask] = ev
	eq.tail++
	if eq.tail-eq.head > parameter.EventQueueSize {
		eq.head++
		eq.dropped++
	}
}

// Consume returns all pending events oldest first, nil when empty
func (eq *EventQueue) Consume() []GameEvent {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	if eq.tail == eq.head {
		return nil
	}
	out := make([]GameEvent, 0, eq.tail-eq.head)
	for ; eq.head < eq.tail; eq.head++ {
		out = append(out, eq.events[eq.head&parameter.EventBufferMask])
	}
	return out
}

// Len returns the pending event count
func (eq *EventQueue) Len() int {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return int(eq.tail - eq.head)
}

// Dropped returns how many events were overwritten before being consumed
func (eq *EventQueue) Dropped() uint64 {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return eq.dropped
}
