package synth

import (
	"math"
	"math/rand"
)

// Wave selects the waveform a Sweep produces.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
)

// Sine returns a sine wave at the given frequency.
func Sine(freq, dur float64) Buffer {
	n := Samples(dur)
	buf := make(Buffer, n)
	phase := 0.0
	inc := freq / SampleRate
	for i := 0; i < n; i++ {
		buf[i] = math.Sin(2 * math.Pi * phase)
		phase += inc
		if phase >= 1 {
			phase -= 1
		}
	}
	return buf
}

// Square returns a pulse wave. duty is the fraction of each cycle spent
// at +1; 0.5 gives a classic square.
func Square(freq, dur, duty float64) Buffer {
	n := Samples(dur)
	buf := make(Buffer, n)
	phase := 0.0
	inc := freq / SampleRate
	for i := 0; i < n; i++ {
		if phase < duty {
			buf[i] = 1
		} else {
			buf[i] = -1
		}
		phase += inc
		if phase >= 1 {
			phase -= 1
		}
	}
	return buf
}

// Saw returns a sawtooth wave rising from 0 to +1, wrapping to -1.
func Saw(freq, dur float64) Buffer {
	n := Samples(dur)
	buf := make(Buffer, n)
	phase := 0.0
	inc := freq / SampleRate
	for i := 0; i < n; i++ {
		if phase < 0.5 {
			buf[i] = 2 * phase
		} else {
			buf[i] = 2 * (phase - 1)
		}
		phase += inc
		if phase >= 1 {
			phase -= 1
		}
	}
	return buf
}

// Noise returns uniform noise in [-1, 1) drawn from rng.
func Noise(rng *rand.Rand, dur float64) Buffer {
	n := Samples(dur)
	buf := make(Buffer, n)
	for i := 0; i < n; i++ {
		buf[i] = rng.Float64()*2 - 1
	}
	return buf
}

// Sweep returns a tone whose frequency moves linearly from f0 to f1 over
// the duration. The phase accumulates through the changing frequency, so
// the glide has no discontinuities.
func Sweep(f0, f1, dur float64, shape Wave) Buffer {
	n := Samples(dur)
	buf := make(Buffer, n)
	phase := 0.0
	for i := 0; i < n; i++ {
		f := f0
		if n > 1 {
			f = f0 + (f1-f0)*float64(i)/float64(n-1)
		}
		phase += f / SampleRate
		if phase >= 1 {
			phase -= 1
		}
		buf[i] = math.Sin(2 * math.Pi * phase)
		if shape == WaveSquare {
			if buf[i] >= 0 {
				buf[i] = 1
			} else {
				buf[i] = -1
			}
		}
	}
	return buf
}
