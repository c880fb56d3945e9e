package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/galactic-wrench/event"
	"github.com/lixenwraith/galactic-wrench/parameter"
)

// Cue identifies a synthesized sound effect
type Cue int

const (
	CueNone Cue = iota
	CueShot
	CueHit
	CueKill
	CuePlayerHit
	CueBolt
	CueWave
	CueGameOver
	CueStart
)

// CueFor maps a game event to its cue
func CueFor(t event.EventType) Cue {
	switch t {
	case event.EventShotFired:
		return CueShot
	case event.EventEnemyHit:
		return CueHit
	case event.EventEnemyKilled:
		return CueKill
	case event.EventPlayerHit:
		return CuePlayerHit
	case event.EventBoltCollected:
		return CueBolt
	case event.EventWaveAdvanced:
		return CueWave
	case event.EventGameOver:
		return CueGameOver
	case event.EventGameStarted:
		return CueStart
	default:
		return CueNone
	}
}

// shotPitch gives each weapon a distinct muzzle tone, indexed by catalog position
var shotPitch = [parameter.WeaponCount]struct {
	from, to float64
	wave     WaveType
}{
	{900, 300, WaveSaw},    // Combustor
	{1400, 700, WaveSine},  // Plasma Coil
	{600, 900, WaveSquare}, // Buzz Blades
	{200, 60, WaveSaw},     // RYNO
}

// Build synthesizes the streamer for one event, nil for silent events
func Build(ev event.GameEvent, rate beep.SampleRate) beep.Streamer {
	switch CueFor(ev.Type) {
	case CueShot:
		weapon := 0
		if p, ok := ev.Payload.(*event.ShotPayload); ok && p.Weapon >= 0 && p.Weapon < parameter.WeaponCount {
			weapon = p.Weapon
		}
		s := shotPitch[weapon]
		return newVolume(tone(s.from, s.to, 60*time.Millisecond, s.wave, rate), 0.25)
	case CueHit:
		return newVolume(tone(300, 250, 40*time.Millisecond, WaveSquare, rate), 0.2)
	case CueKill:
		return beep.Mix(
			newVolume(tone(0, 0, 200*time.Millisecond, WaveNoise, rate), 0.35),
			newVolume(tone(160, 40, 200*time.Millisecond, WaveSine, rate), 0.5),
		)
	case CuePlayerHit:
		return newVolume(tone(120, 80, 120*time.Millisecond, WaveSaw, rate), 0.4)
	case CueBolt:
		return beep.Seq(
			newVolume(tone(987.77, 987.77, 50*time.Millisecond, WaveSquare, rate), 0.2),
			newVolume(tone(1318.51, 1318.51, 90*time.Millisecond, WaveSquare, rate), 0.2),
		)
	case CueWave:
		return beep.Seq(
			newVolume(tone(440, 440, 100*time.Millisecond, WaveSine, rate), 0.4),
			newVolume(tone(554.37, 554.37, 100*time.Millisecond, WaveSine, rate), 0.4),
			newVolume(tone(659.25, 659.25, 180*time.Millisecond, WaveSine, rate), 0.4),
		)
	case CueGameOver:
		return newVolume(tone(440, 55, 900*time.Millisecond, WaveSaw, rate), 0.5)
	case CueStart:
		return newVolume(tone(220, 880, 250*time.Millisecond, WaveSine, rate), 0.4)
	default:
		return nil
	}
}
