package synth

import (
	"math"
	"math/rand"
)

// Kick renders a four-on-the-floor bass drum hit. The pitch sweeps down
// from a 205 Hz thump toward 45 Hz.
func Kick() Buffer {
	const dur = 0.15
	n := Samples(dur)
	buf := make(Buffer, n)
	phase := 0.0
	for i := 0; i < n; i++ {
		t := dur * float64(i) / float64(n)
		f := 160*math.Exp(-t/0.035) + 45
		phase += f / SampleRate
		buf[i] = math.Sin(2*math.Pi*phase) * 0.65
	}
	return Apply(buf, DecayEnv(n, 0.08))
}

// Snare renders a noise plus low square snare hit.
func Snare(rng *rand.Rand, dur float64) Buffer {
	buf := Gain(Noise(rng, dur), 0.3)
	MixAt(buf, Gain(Square(180, dur, 0.5), 0.12), 0)
	return Apply(buf, DecayEnv(len(buf), 0.05))
}

// HihatClosed renders a short tick of enveloped noise.
func HihatClosed(rng *rand.Rand) Buffer {
	const dur = 0.04
	return Apply(Gain(Noise(rng, dur), 0.18), DecayEnv(Samples(dur), 0.02))
}

// HihatOpen renders the longer off-beat hat that carries a disco groove.
func HihatOpen(rng *rand.Rand) Buffer {
	const dur = 0.12
	return Apply(Gain(Noise(rng, dur), 0.16), DecayEnv(Samples(dur), 0.08))
}

// DiscoBass renders a punchy bass note: narrow pulse plus fundamental
// plus a sub octave, shaped by an exponential decay.
func DiscoBass(freq, dur, decay float64) Buffer {
	buf := Gain(Square(freq, dur, 0.3), 0.35)
	MixAt(buf, Gain(Sine(freq, dur), 0.3), 0)
	MixAt(buf, Gain(Sine(freq*0.5, dur), 0.15), 0)
	return Apply(buf, DecayEnv(len(buf), decay))
}

// GuitarStab renders a rhythm guitar chord hit from slightly detuned
// pulse pairs, lowpassed into a wah-like chucka.
func GuitarStab(freqs []float64, dur float64) Buffer {
	buf := make(Buffer, Samples(dur))
	for _, f := range freqs {
		MixAt(buf, Gain(Square(f, dur, 0.4), 0.06), 0)
		MixAt(buf, Gain(Square(f*1.003, dur, 0.4), 0.04), 0)
	}
	return Apply(Lowpass(buf, 3), DecayEnv(len(buf), 0.04))
}

// GuitarMute renders a shorter, more percussive muted chord hit.
func GuitarMute(freqs []float64, dur float64) Buffer {
	buf := make(Buffer, Samples(dur))
	for _, f := range freqs {
		MixAt(buf, Gain(Square(f, dur, 0.35), 0.05), 0)
	}
	return Apply(Lowpass(buf, 4), DecayEnv(len(buf), 0.02))
}

// StringNote renders one voice of a string pad: detuned saws with an
// octave shimmer and a slow swell.
func StringNote(freq, dur float64) Buffer {
	buf := Gain(Saw(freq, dur), 0.07)
	MixAt(buf, Gain(Saw(freq*1.004, dur), 0.05), 0)
	MixAt(buf, Gain(Saw(freq*0.998, dur), 0.04), 0)
	MixAt(buf, Gain(Sine(freq*2, dur), 0.03), 0)
	return Apply(Lowpass(buf, 2), Swell(len(buf), 0.1))
}

// StringChord sums StringNote voices for each frequency.
func StringChord(freqs []float64, dur float64) Buffer {
	buf := make(Buffer, Samples(dur))
	for _, f := range freqs {
		MixAt(buf, StringNote(f, dur), 0)
	}
	return buf
}

// LeadSynth renders a bright melody voice: square plus octave sine.
func LeadSynth(freq, dur float64) Buffer {
	buf := Gain(Square(freq, dur, 0.5), 0.18)
	MixAt(buf, Gain(Sine(freq*2, dur), 0.08), 0)
	MixAt(buf, Gain(Sine(freq, dur), 0.06), 0)
	return Apply(buf, AR(len(buf), 0.005, 0.03))
}
