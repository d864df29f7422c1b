// Package playback plays rendered WAV assets through the system
// speaker, for auditioning generator output without launching the game.
package playback

import (
	"errors"
	"fmt"
	"math"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"

	"github.com/funkworks/discoforge/pkg/synth"
)

// ErrNotInitialized is returned when playing before Init.
var ErrNotInitialized = errors.New("player not initialized")

// Player owns the speaker and plays one asset at a time.
type Player struct {
	mu          sync.Mutex
	initialized bool
	sampleRate  beep.SampleRate
	volume      float64
}

// New returns a Player at full volume. Init must be called before
// playing.
func New() *Player {
	return &Player{volume: 1}
}

// Init opens the speaker at the pipeline sample rate. Files at other
// rates are resampled on the fly. Repeated calls are no-ops.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		return nil
	}
	p.sampleRate = beep.SampleRate(synth.SampleRate)
	if err := speaker.Init(p.sampleRate, p.sampleRate.N(time.Second/30)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	p.initialized = true
	return nil
}

// Close stops any playback in progress.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		speaker.Clear()
	}
}

// SetVolume sets the playback volume, clamped to [0, 1].
func (p *Player) SetVolume(vol float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.volume = clamp(vol, 0, 1)
}

// PlayFile decodes a WAV from disk and plays it, blocking until the
// last sample has sounded. With loop set the file repeats until the
// process is interrupted.
func (p *Player) PlayFile(path string, loop bool) error {
	p.mu.Lock()
	if !p.initialized {
		p.mu.Unlock()
		return ErrNotInitialized
	}
	rate := p.sampleRate
	vol := p.volume
	p.mu.Unlock()

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	streamer, format, err := wav.Decode(f)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if format.SampleRate != rate {
		s = beep.Resample(4, format.SampleRate, rate, streamer)
	}
	if loop {
		s = &repeatStreamer{src: streamer, inner: s}
	}
	s = &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   gainExp(vol),
		Silent:   vol <= 0,
	}

	done := make(chan struct{})
	speaker.Play(beep.Seq(s, beep.Callback(func() { close(done) })))
	<-done
	return nil
}

// gainExp converts a linear 0..1 volume to the base-2 exponent
// effects.Volume expects: 1 maps to 0 (unity), 0.5 to -1.
func gainExp(vol float64) float64 {
	if vol <= 0 {
		return -100
	}
	return math.Log2(vol)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// repeatStreamer replays a seekable source forever. It streams from
// inner (the source, possibly behind a resampler) and rewinds the
// source each time it drains.
type repeatStreamer struct {
	src   beep.StreamSeeker
	inner beep.Streamer
}

func (r *repeatStreamer) Stream(samples [][2]float64) (int, bool) {
	if r.src.Len() == 0 {
		return 0, false
	}
	filled := 0
	for filled < len(samples) {
		n, ok := r.inner.Stream(samples[filled:])
		filled += n
		if !ok {
			if err := r.src.Seek(0); err != nil {
				return filled, filled > 0
			}
		}
	}
	return filled, true
}

func (r *repeatStreamer) Err() error {
	return r.inner.Err()
}
