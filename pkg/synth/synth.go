// Package synth renders retro sound effects and music as mono float64
// sample buffers and writes them out as 16-bit WAV files.
//
// Everything is built from a small set of oscillators, envelopes and
// mixing helpers. All noise flows through an explicit *rand.Rand so a
// render with the same seed produces the same bytes on every run.
package synth

// SampleRate is the fixed output rate for all generated audio.
const SampleRate = 44100

// DefaultPeak is the target peak amplitude WAV output is normalized to.
const DefaultPeak = 0.8

// Buffer is a mono run of float64 samples at SampleRate.
type Buffer []float64

// Samples converts a duration in seconds to a sample count.
func Samples(dur float64) int {
	return int(SampleRate * dur)
}

// BeatSamples converts a beat count at the given tempo to a sample count.
func BeatSamples(beats, bpm float64) int {
	return int(SampleRate * 60.0 / bpm * beats)
}

// Silence returns an all-zero buffer of the given duration.
func Silence(dur float64) Buffer {
	return make(Buffer, Samples(dur))
}
