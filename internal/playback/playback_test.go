package playback

import (
	"math"
	"testing"
)

func TestGainExp(t *testing.T) {
	tests := []struct {
		vol  float64
		want float64
	}{
		{1.0, 0},
		{0.5, -1},
		{0.25, -2},
	}

	for _, tt := range tests {
		got := gainExp(tt.vol)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("gainExp(%f) = %f, want %f", tt.vol, got, tt.want)
		}
	}

	if got := gainExp(0); got > -90 {
		t.Errorf("gainExp(0) = %f, want far below unity", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, min, max, want float64
	}{
		{0.5, 0, 1, 0.5},
		{-1, 0, 1, 0},
		{2, 0, 1, 1},
		{0, 0, 1, 0},
		{1, 0, 1, 1},
	}

	for _, tt := range tests {
		got := clamp(tt.v, tt.min, tt.max)
		if got != tt.want {
			t.Errorf("clamp(%f, %f, %f) = %f, want %f", tt.v, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestSetVolumeClamps(t *testing.T) {
	p := New()
	if p.volume != 1 {
		t.Fatalf("default volume = %f, want 1", p.volume)
	}

	p.SetVolume(2)
	if p.volume != 1 {
		t.Errorf("volume after SetVolume(2) = %f, want 1", p.volume)
	}

	p.SetVolume(-0.5)
	if p.volume != 0 {
		t.Errorf("volume after SetVolume(-0.5) = %f, want 0", p.volume)
	}
}

func TestPlayFileBeforeInit(t *testing.T) {
	p := New()
	if err := p.PlayFile("nope.wav", false); err != ErrNotInitialized {
		t.Errorf("PlayFile before Init = %v, want ErrNotInitialized", err)
	}
}

// memStreamer is a seekable in-memory streamer for exercising the
// repeat wrapper without an audio device.
type memStreamer struct {
	data []float64
	pos  int
}

func (m *memStreamer) Stream(samples [][2]float64) (int, bool) {
	if m.pos >= len(m.data) {
		return 0, false
	}
	n := 0
	for i := range samples {
		if m.pos >= len(m.data) {
			break
		}
		samples[i][0] = m.data[m.pos]
		samples[i][1] = m.data[m.pos]
		m.pos++
		n++
	}
	return n, true
}

func (m *memStreamer) Err() error      { return nil }
func (m *memStreamer) Len() int        { return len(m.data) }
func (m *memStreamer) Position() int   { return m.pos }
func (m *memStreamer) Seek(p int) error {
	m.pos = p
	return nil
}

func TestRepeatStreamerWraps(t *testing.T) {
	src := &memStreamer{data: []float64{0.1, 0.2, 0.3, 0.4}}
	rep := &repeatStreamer{src: src, inner: src}

	out := make([][2]float64, 10)
	n, ok := rep.Stream(out)
	if !ok || n != 10 {
		t.Fatalf("Stream = (%d, %v), want (10, true)", n, ok)
	}

	want := []float64{0.1, 0.2, 0.3, 0.4, 0.1, 0.2, 0.3, 0.4, 0.1, 0.2}
	for i, w := range want {
		if out[i][0] != w {
			t.Errorf("sample %d = %f, want %f", i, out[i][0], w)
		}
	}
}

func TestRepeatStreamerEmptySource(t *testing.T) {
	src := &memStreamer{}
	rep := &repeatStreamer{src: src, inner: src}

	n, ok := rep.Stream(make([][2]float64, 4))
	if n != 0 || ok {
		t.Errorf("Stream on empty source = (%d, %v), want (0, false)", n, ok)
	}
}
