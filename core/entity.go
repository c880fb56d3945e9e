package core

import "sync/atomic"

// Entity is a unique identifier for a simulated object
type Entity uint64

// IDSource hands out entity ids from a single monotonic counter
// Ids are never reused, including across session resets
type IDSource struct {
	next atomic.Uint64
}

// NewIDSource creates a counter whose first id is 1
func NewIDSource() *IDSource {
	return &IDSource{}
}

// Next returns a fresh id
func (s *IDSource) Next() Entity {
	return Entity(s.next.Add(1))
}

// Last returns the most recently issued id, 0 if none
func (s *IDSource) Last() Entity {
	return Entity(s.next.Load())
}
