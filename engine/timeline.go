package engine

import (
	"slices"
	"time"
)

// TimerKind identifies a scheduled timer; at most one event per kind is pending
type TimerKind uint8

const (
	// TimerSpawn fires the enemy spawner and re-arms itself
	TimerSpawn TimerKind = iota
	// TimerShakeReset zeroes the screen shake offset
	TimerShakeReset
)

// String returns the timer name for logging
func (k TimerKind) String() string {
	switch k {
	case TimerSpawn:
		return "Spawn"
	case TimerShakeReset:
		return "ShakeReset"
	default:
		return "Unknown"
	}
}

// TimerEvent is a pending timer due at the given game time
type TimerEvent struct {
	Kind TimerKind
	Due  time.Duration
}

// Timeline holds pending timer events keyed by kind
// Values are immutable: every operation returns a new Timeline
type Timeline struct {
	events []TimerEvent
}

// Schedule returns a timeline with kind due at the given time, replacing any pending event of that kind
func (t Timeline) Schedule(kind TimerKind, due time.Duration) Timeline {
	out := make([]TimerEvent, 0, len(t.events)+1)
	for _, ev := range t.events {
		if ev.Kind != kind {
			out = append(out, ev)
		}
	}
	return Timeline{events: append(out, TimerEvent{Kind: kind, Due: due})}
}

// Clear returns an empty timeline
func (t Timeline) Clear() Timeline {
	return Timeline{}
}

// Pending returns the due time of kind
func (t Timeline) Pending(kind TimerKind) (time.Duration, bool) {
	for _, ev := range t.events {
		if ev.Kind == kind {
			return ev.Due, true
		}
	}
	return 0, false
}

// Len returns the number of pending events
func (t Timeline) Len() int {
	return len(t.events)
}

// PopDue splits off every event due at or before now
// Due events are ordered by due time, ties by kind
func (t Timeline) PopDue(now time.Duration) ([]TimerEvent, Timeline) {
	var due []TimerEvent
	rest := make([]TimerEvent, 0, len(t.events))
	for _, ev := range t.events {
		if ev.Due <= now {
			due = append(due, ev)
		} else {
			rest = append(rest, ev)
		}
	}
	slices.SortFunc(due, func(a, b TimerEvent) int {
		if a.Due != b.Due {
			if a.Due < b.Due {
				return -1
			}
			return 1
		}
		return int(a.Kind) - int(b.Kind)
	})
	return due, Timeline{events: rest}
}
