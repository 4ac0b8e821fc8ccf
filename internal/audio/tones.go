// Package audio synthesizes and plays the game's sound effects.
package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// Tone is a plain sine beep.
type Tone struct {
	Freq     float64
	Duration time.Duration
	Volume   float64 // 0.0 - 1.0
}

// Tones for each game event.
var Tones = map[flappy.SoundEvent]Tone{
	flappy.SoundFlap:  {Freq: 650, Duration: 80 * time.Millisecond, Volume: 0.6},
	flappy.SoundScore: {Freq: 900, Duration: 160 * time.Millisecond, Volume: 0.35},
	flappy.SoundHit:   {Freq: 120, Duration: 350 * time.Millisecond, Volume: 0.6},
}

// Streamer returns a finite stream playing the tone at the given sample rate.
// master scales the tone volume.
func (t Tone) Streamer(sr beep.SampleRate, master float64) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, t.Freq)
	if err != nil {
		return nil, fmt.Errorf("audio: %.0fHz tone: %w", t.Freq, err)
	}
	return newVolume(beep.Take(sr.N(t.Duration), sine), t.Volume*master), nil
}

// newVolume wraps s in a linear gain. Zero or negative gain is silent,
// since log2(0) is -Inf.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
