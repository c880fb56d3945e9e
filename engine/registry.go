package engine

import (
	"slices"

	"github.com/lixenwraith/galactic-wrench/core"
)

// Entry pairs an entity id with its component value
type Entry[T any] struct {
	ID    core.Entity
	Value T
}

// Registry is an ordered, immutable collection of one entity kind
// Every mutating operation returns a new Registry and leaves the receiver untouched,
// which lets a tick read the previous state while building the next one
// Iteration order is insertion order
type Registry[T any] struct {
	entries []Entry[T]
}

// NewRegistry builds a registry from entries in the given order
func NewRegistry[T any](entries ...Entry[T]) Registry[T] {
	return Registry[T]{entries: slices.Clone(entries)}
}

// Append returns a registry with v added at the end under id
func (r Registry[T]) Append(id core.Entity, v T) Registry[T] {
	// Clip forces a fresh backing array so sibling registries never share a tail
	return Registry[T]{entries: append(slices.Clip(r.entries), Entry[T]{ID: id, Value: v})}
}

// Filter returns a registry holding the entries for which keep returns true
func (r Registry[T]) Filter(keep func(id core.Entity, v T) bool) Registry[T] {
	out := make([]Entry[T], 0, len(r.entries))
	for _, e := range r.entries {
		if keep(e.ID, e.Value) {
			out = append(out, e)
		}
	}
	return Registry[T]{entries: out}
}

// Map returns a registry with every value replaced by next(id, v), order preserved
func (r Registry[T]) Map(next func(id core.Entity, v T) T) Registry[T] {
	out := make([]Entry[T], len(r.entries))
	for i, e := range r.entries {
		out[i] = Entry[T]{ID: e.ID, Value: next(e.ID, e.Value)}
	}
	return Registry[T]{entries: out}
}

// Len returns the number of live entities
func (r Registry[T]) Len() int {
	return len(r.entries)
}

// Each visits entries in insertion order until fn returns false
func (r Registry[T]) Each(fn func(id core.Entity, v T) bool) {
	for _, e := range r.entries {
		if !fn(e.ID, e.Value) {
			return
		}
	}
}

// Items returns a copy of all entries
func (r Registry[T]) Items() []Entry[T] {
	return slices.Clone(r.entries)
}

// Values returns a copy of all component values in order
func (r Registry[T]) Values() []T {
	out := make([]T, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.Value
	}
	return out
}
