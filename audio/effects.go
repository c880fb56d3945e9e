package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/galactic-wrench/vmath"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a raw wave with an optional linear frequency sweep
type oscillator struct {
	freq     float64
	sweep    float64 // Hz added per second
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *vmath.Rand
}

// NewOscillator creates a fixed-pitch oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding linearly from one frequency to another
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	o := &oscillator{
		freq:     from,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
	if secs := duration.Seconds(); secs > 0 {
		o.sweep = (to - from) / secs
	}
	if wave == WaveNoise {
		o.noise = vmath.NewRand(uint64(from*1000) + 1)
	}
	return o
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq + o.sweep*float64(o.position)/float64(o.rate)
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if releaseStart := e.totalSamples - e.releaseSamples; e.releaseSamples > 0 && e.position >= releaseStart {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; math.Log2(0) is -Inf so zero is mapped to silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone is an enveloped oscillator, the building block of every cue
func tone(from, to float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	osc := NewSweep(from, to, d, wave, rate)
	return NewEnvelope(osc, d, d/10, d/2, rate)
}
