package audio

import (
	"fmt"
	"log"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/galactic-wrench/event"
	"github.com/lixenwraith/galactic-wrench/parameter"
)

const (
	sampleRate = beep.SampleRate(parameter.AudioSampleRate)

	// maxVoices caps concurrent cues so bursts of hits do not clip
	maxVoices = 16
)

// SoundManager turns game events into synthesized cues
// Muted managers and managers that failed to initialize drop events silently
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool

	played  uint64
	dropped uint64
}

// NewSoundManager creates a muted sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
		muted: true,
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(newVolume(sm.mixer, parameter.AudioMasterVolume))
	sm.initialized = true
	log.Printf("audio: speaker ready at %d Hz", sampleRate)
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
	log.Printf("audio: closed, played %d dropped %d", sm.played, sm.dropped)
}

// SetMuted enables or silences cue playback
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
	if muted && sm.initialized {
		speaker.Lock()
		sm.mixer.Clear()
		speaker.Unlock()
	}
}

// ToggleMute flips the mute state and returns the new value
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	muted := !sm.muted
	sm.mu.Unlock()
	sm.SetMuted(muted)
	return muted
}

// Muted reports the mute state
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Play queues one cue per event
func (sm *SoundManager) Play(evs []event.GameEvent) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted || len(evs) == 0 {
		return
	}

	streams := make([]beep.Streamer, 0, len(evs))
	for _, ev := range evs {
		if s := Build(ev, sampleRate); s != nil {
			streams = append(streams, s)
		}
	}

	speaker.Lock()
	defer speaker.Unlock()
	for _, s := range streams {
		if sm.mixer.Len() >= maxVoices {
			sm.dropped++
			continue
		}
		sm.mixer.Add(s)
		sm.played++
	}
}

// Stats returns cue counters
func (sm *SoundManager) Stats() (played, dropped uint64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played, sm.dropped
}
