package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// Player plays game sound effects on the system speaker.
// Playback is asynchronous; Play never blocks the caller.
type Player struct {
	mu      sync.Mutex
	rate    beep.SampleRate
	volume  float64
	buffers map[flappy.SoundEvent]*beep.Buffer
	closed  bool
}

var _ flappy.Sound = (*Player)(nil)

// New initializes the speaker and pre-renders every tone.
func New(cfg config.SoundConfig) (*Player, error) {
	rate := beep.SampleRate(cfg.SampleRate)

	buffers, err := renderTones(beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}, cfg.Volume)
	if err != nil {
		return nil, err
	}

	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("audio: cannot init speaker: %w", err)
	}

	return &Player{
		rate:    rate,
		volume:  cfg.Volume,
		buffers: buffers,
	}, nil
}

// renderTones synthesizes every tone into a reusable buffer.
func renderTones(format beep.Format, master float64) (map[flappy.SoundEvent]*beep.Buffer, error) {
	buffers := make(map[flappy.SoundEvent]*beep.Buffer, len(Tones))
	for ev, tone := range Tones {
		s, err := tone.Streamer(format.SampleRate, master)
		if err != nil {
			return nil, err
		}
		buf := beep.NewBuffer(format)
		buf.Append(s)
		buffers[ev] = buf
	}
	return buffers, nil
}

// Play starts the effect for ev. Unknown events are ignored.
func (p *Player) Play(ev flappy.SoundEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	buf, ok := p.buffers[ev]
	if !ok {
		return
	}
	speaker.Play(buf.Streamer(0, buf.Len()))
}

// Close stops all sounds and releases the audio device.
func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true
	speaker.Clear()
	speaker.Close()
	return nil
}
