package synth

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/wav"
)

// ErrBadChannels is returned when a WAV is requested with a channel
// count other than 1 or 2.
var ErrBadChannels = errors.New("unsupported channel count")

// BufferStreamer adapts a rendered Buffer to beep.Streamer. The mono
// samples are duplicated on both output channels.
type BufferStreamer struct {
	buf Buffer
	pos int
}

// NewBufferStreamer wraps buf for consumption by beep.
func NewBufferStreamer(buf Buffer) *BufferStreamer {
	return &BufferStreamer{buf: buf}
}

// Stream fills samples from the buffer and reports how many were
// written. It drains once and then keeps reporting completion.
func (s *BufferStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= len(s.buf) {
		return 0, false
	}
	for i := range samples {
		if s.pos >= len(s.buf) {
			return i, true
		}
		v := s.buf[s.pos]
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
	}
	return len(samples), true
}

// Err always returns nil; a buffer cannot fail mid-stream.
func (s *BufferStreamer) Err() error {
	return nil
}

// WriteWAV normalizes a copy of buf to DefaultPeak and writes it as a
// 16-bit WAV at SampleRate. channels must be 1 or 2; mono input is
// duplicated across stereo channels. Parent directories are created as
// needed.
func WriteWAV(path string, buf Buffer, channels int) error {
	return WriteWAVPeak(path, buf, channels, DefaultPeak)
}

// WriteWAVPeak is WriteWAV with an explicit normalization target. A peak
// outside (0, 1] falls back to DefaultPeak.
func WriteWAVPeak(path string, buf Buffer, channels int, peak float64) error {
	if channels != 1 && channels != 2 {
		return fmt.Errorf("%w: %d", ErrBadChannels, channels)
	}
	if peak <= 0 || peak > 1 {
		peak = DefaultPeak
	}

	out := make(Buffer, len(buf))
	copy(out, buf)
	Normalize(out, peak)

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating WAV file: %w", err)
	}
	defer file.Close()

	format := beep.Format{
		SampleRate:  beep.SampleRate(SampleRate),
		NumChannels: channels,
		Precision:   2,
	}
	if err := wav.Encode(file, NewBufferStreamer(out), format); err != nil {
		return fmt.Errorf("encoding WAV: %w", err)
	}
	return nil
}
