package parameter

import "time"

// Game Loop & Engine Timing
const (
	// TickInterval is the nominal simulation step (~60 Hz)
	TickInterval = 16 * time.Millisecond

	// FrameUpdateInterval is the rendering frame rate interval
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxTickLag is how far the scheduler may fall behind before it drops missed deadlines
	MaxTickLag = 2 * TickInterval
)

// Event Queue
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 1024

	// EventBufferMask is the bitmask for fast modulo operations (1024 - 1)
	EventBufferMask = 1023
)
