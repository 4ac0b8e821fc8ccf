package audio

import (
	"math"
	"testing"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

func drain(t *testing.T, s beep.Streamer) (count int, peak float64) {
	t.Helper()
	samples := make([][2]float64, 512)
	for {
		n, ok := s.Stream(samples)
		for i := 0; i < n; i++ {
			if v := math.Abs(samples[i][0]); v > peak {
				peak = v
			}
		}
		count += n
		if !ok {
			break
		}
	}
	if err := s.Err(); err != nil {
		t.Fatalf("stream error: %v", err)
	}
	return count, peak
}

func TestTonesCoverEveryEvent(t *testing.T) {
	for _, ev := range []flappy.SoundEvent{flappy.SoundFlap, flappy.SoundScore, flappy.SoundHit} {
		if _, ok := Tones[ev]; !ok {
			t.Errorf("no tone for %v", ev)
		}
	}
}

func TestToneLength(t *testing.T) {
	rate := beep.SampleRate(44100)

	tests := []struct {
		ev   flappy.SoundEvent
		want int
	}{
		{flappy.SoundFlap, 3528},  // 80ms
		{flappy.SoundScore, 7056}, // 160ms
		{flappy.SoundHit, rate.N(Tones[flappy.SoundHit].Duration)},
	}

	for _, tt := range tests {
		t.Run(tt.ev.String(), func(t *testing.T) {
			s, err := Tones[tt.ev].Streamer(rate, 1)
			if err != nil {
				t.Fatalf("Streamer() failed: %v", err)
			}
			got, _ := drain(t, s)
			if got != tt.want {
				t.Errorf("samples = %d, expected %d", got, tt.want)
			}
		})
	}
}

func TestToneVolume(t *testing.T) {
	rate := beep.SampleRate(44100)
	tone := Tones[flappy.SoundScore]

	s, err := tone.Streamer(rate, 1)
	if err != nil {
		t.Fatalf("Streamer() failed: %v", err)
	}
	_, peak := drain(t, s)
	if peak > tone.Volume+1e-9 {
		t.Errorf("peak %f exceeds tone volume %f", peak, tone.Volume)
	}
	if peak < tone.Volume*0.9 {
		t.Errorf("peak %f too quiet for volume %f", peak, tone.Volume)
	}
}

func TestToneMuted(t *testing.T) {
	rate := beep.SampleRate(44100)

	s, err := Tones[flappy.SoundHit].Streamer(rate, 0)
	if err != nil {
		t.Fatalf("Streamer() failed: %v", err)
	}
	count, peak := drain(t, s)
	if count == 0 {
		t.Error("muted tone should still have a length")
	}
	if peak != 0 {
		t.Errorf("muted tone peak = %f, expected 0", peak)
	}
}

func TestToneAboveNyquist(t *testing.T) {
	tone := Tone{Freq: 30000, Duration: 10, Volume: 1}
	if _, err := tone.Streamer(beep.SampleRate(44100), 1); err == nil {
		t.Error("expected error for frequency above Nyquist")
	}
}

func TestRenderTones(t *testing.T) {
	format := beep.Format{SampleRate: 22050, NumChannels: 2, Precision: 2}

	buffers, err := renderTones(format, 1)
	if err != nil {
		t.Fatalf("renderTones() failed: %v", err)
	}
	if len(buffers) != len(Tones) {
		t.Fatalf("rendered %d buffers, expected %d", len(buffers), len(Tones))
	}
	if got := buffers[flappy.SoundFlap].Len(); got != format.SampleRate.N(Tones[flappy.SoundFlap].Duration) {
		t.Errorf("flap buffer length = %d", got)
	}
}
