package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to exhaustion and returns the sample count and peak amplitude
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for j := 0; j < n; j++ {
			if v := buf[j][0]; v > peak {
				peak = v
			} else if -v > peak {
				peak = -v
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("streamer never drained")
	return 0, 0
}

func TestOscillatorDuration(t *testing.T) {
	rate := beep.SampleRate(44100)
	tests := []struct {
		name string
		wave WaveType
	}{
		{"Sine", WaveSine},
		{"Square", WaveSquare},
		{"Saw", WaveSaw},
		{"Noise", WaveNoise},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			osc := NewOscillator(440, 100*time.Millisecond, tt.wave, rate)
			n, peak := drain(t, osc)
			if n != rate.N(100*time.Millisecond) {
				t.Errorf("streamed %d samples, want %d", n, rate.N(100*time.Millisecond))
			}
			if peak > 1.0 {
				t.Errorf("peak = %v, want <= 1", peak)
			}
			if osc.Err() != nil {
				t.Errorf("Err() = %v", osc.Err())
			}
		})
	}
}

func TestSquareWaveValues(t *testing.T) {
	osc := NewOscillator(220, 50*time.Millisecond, WaveSquare, beep.SampleRate(44100))
	samples := make([][2]float64, 64)
	n, _ := osc.Stream(samples)
	for i := 0; i < n; i++ {
		if v := samples[i][0]; v != -1.0 && v != 1.0 {
			t.Fatalf("sample %d = %v, want ±1", i, v)
		}
	}
}

func TestEnvelopeFadesEdges(t *testing.T) {
	rate := beep.SampleRate(44100)
	d := 100 * time.Millisecond
	env := NewEnvelope(NewOscillator(0, d, WaveSquare, rate), d, 10*time.Millisecond, 10*time.Millisecond, rate)

	samples := make([][2]float64, rate.N(d))
	n, _ := env.Stream(samples)

	if samples[0][0] != 0 {
		t.Errorf("first sample = %v, want 0 (attack start)", samples[0][0])
	}
	if mid := samples[n/2][0]; mid != 1.0 {
		t.Errorf("sustain sample = %v, want 1", mid)
	}
	if last := samples[n-1][0]; last <= 0 || last > 0.01 {
		t.Errorf("last sample = %v, want near 0", last)
	}
}
