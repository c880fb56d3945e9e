package parameter

import "time"

// Keyboard hold emulation
// Terminals report key presses and autorepeat but never releases
const (
	// KeyHoldInitial keeps a fresh press held long enough to bridge the autorepeat delay
	KeyHoldInitial = 350 * time.Millisecond

	// KeyHoldRepeat extends a key that is already repeating
	KeyHoldRepeat = 90 * time.Millisecond
)

// Audio
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// AudioMasterVolume scales every cue, 1.0 = unity
	AudioMasterVolume = 0.5
)
