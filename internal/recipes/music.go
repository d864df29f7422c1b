package recipes

import (
	"math/rand"

	"github.com/funkworks/discoforge/pkg/synth"
)

// musicTracks renders the three looping disco tracks as stereo WAVs:
// a smooth menu groove, an upbeat level funk, and a dark boss pumper.
func musicTracks(ctx *Context) error {
	tracks := []struct {
		name  string
		build func(*rand.Rand) synth.Buffer
	}{
		{"menu_theme", menuTheme},
		{"level_theme", levelTheme},
		{"boss_theme", bossTheme},
	}
	for _, t := range tracks {
		buf := t.build(ctx.Rng)
		if err := ctx.SaveWAV(ctx.AudioPath("music", t.name+".wav"), buf, 2); err != nil {
			return err
		}
	}
	return nil
}

// leadNote places one lead synth note: bar index, beat offset within
// the bar, note name, and length in beats.
type leadNote struct {
	bar   int
	beat  float64
	note  string
	beats float64
}

// riffNote is a leadNote without the bar, for phrases that repeat
// across several bars.
type riffNote struct {
	beat  float64
	note  string
	beats float64
}

// chordFreqs resolves note names to frequencies.
func chordFreqs(names ...string) []float64 {
	out := make([]float64, len(names))
	for i, nm := range names {
		out[i] = synth.NoteFreq(nm)
	}
	return out
}

// discoDrums lays the classic disco pattern over the whole mix: kick on
// every quarter, snare on 2 and 4, open hi-hat on every off-beat, and
// closed hi-hat sixteenths. Higher variation adds snare ghost notes.
func discoDrums(mix synth.Buffer, rng *rand.Rand, bpm float64, totalBars, variation int) {
	beat := synth.BeatSamples(1, bpm)
	bar := beat * 4
	sixteenth := beat / 4

	for b := 0; b < totalBars; b++ {
		for i := 0; i < 4; i++ {
			pos := b*bar + i*beat
			synth.MixAt(mix, synth.Kick(), pos)
			if i == 1 || i == 3 {
				synth.MixAt(mix, synth.Snare(rng, 0.12), pos)
			}
			synth.MixAt(mix, synth.HihatOpen(rng), pos+beat/2)
			for s := 0; s < 4; s++ {
				if s == 2 {
					continue
				}
				vol := 0.5
				if s == 0 {
					vol = 0.8
				}
				synth.MixAt(mix, synth.Gain(synth.HihatClosed(rng), vol), pos+s*sixteenth)
			}
			if variation >= 1 && i == 0 && b%2 == 1 {
				synth.MixAt(mix, synth.Gain(synth.Snare(rng, 0.06), 0.4), pos+3*sixteenth)
			}
			if variation >= 2 && i == 3 {
				synth.MixAt(mix, synth.Gain(synth.Snare(rng, 0.06), 0.5), pos+beat/2)
			}
		}
	}
}

// menuTheme is a smooth 120 BPM groove: Am7, Dm9, Gmaj7, Cmaj7, two
// bars each, with an octave-bouncing bass and a laid-back lead.
func menuTheme(rng *rand.Rand) synth.Buffer {
	const bpm = 120
	beat := synth.BeatSamples(1, bpm)
	bar := beat * 4
	eighth := beat / 2
	const totalBars = 8
	mix := make(synth.Buffer, bar*totalBars)

	discoDrums(mix, rng, bpm, totalBars, 0)

	bassProg := [4][2]string{{"A2", "A3"}, {"D2", "D3"}, {"G2", "G3"}, {"C2", "C3"}}
	for ci, oct := range bassProg {
		lo, hi := synth.NoteFreq(oct[0]), synth.NoteFreq(oct[1])
		for rep := 0; rep < 2; rep++ {
			pos := (ci*2 + rep) * bar
			for i := 0; i < 4; i++ {
				bp := pos + i*beat
				synth.MixAt(mix, synth.DiscoBass(lo, 0.18, 0.12), bp)
				synth.MixAt(mix, synth.DiscoBass(hi, 0.12, 0.08), bp+eighth)
			}
		}
	}

	chords := [4][]float64{
		chordFreqs("A3", "C4", "E4", "G4"),
		chordFreqs("D3", "F4", "A4", "C5"),
		chordFreqs("G3", "B3", "D4", "F#4"),
		chordFreqs("C3", "E4", "G4", "B4"),
	}
	for ci, chord := range chords {
		for rep := 0; rep < 2; rep++ {
			b := ci*2 + rep
			for i := 0; i < 4; i++ {
				pos := b*bar + i*beat
				// Stab between the kicks, ghost mute on the "a".
				synth.MixAt(mix, synth.GuitarStab(chord, 0.08), pos+eighth)
				synth.MixAt(mix, synth.GuitarMute(chord, 0.04), pos+3*(beat/4))
			}
		}
	}

	padChords := [4][]float64{
		chordFreqs("A3", "C4", "E4", "G4"),
		chordFreqs("D4", "F4", "A4", "C5"),
		chordFreqs("G3", "B3", "D4", "F#4"),
		chordFreqs("C4", "E4", "G4", "B4"),
	}
	padDur := 60.0 / bpm * 8
	for ci, chord := range padChords {
		synth.MixAt(mix, synth.StringChord(chord, padDur), ci*2*bar)
	}

	melody := []leadNote{
		{0, 0, "E5", 1}, {0, 1, "D5", 0.5}, {0, 1.5, "C5", 0.5},
		{0, 2, "A4", 1.5}, {0, 3.5, "G4", 0.5},
		{1, 0, "A4", 2}, {1, 2, "G4", 1}, {1, 3, "E4", 1},
		{2, 0, "D5", 0.5}, {2, 0.5, "E5", 0.5}, {2, 1, "D5", 1},
		{2, 2, "B4", 1}, {2, 3, "A4", 1},
		{3, 0, "G4", 1.5}, {3, 1.5, "A4", 0.5}, {3, 2, "B4", 2},
		{4, 0, "C5", 1}, {4, 1, "B4", 0.5}, {4, 1.5, "A4", 0.5},
		{4, 2, "G4", 1}, {4, 3, "A4", 0.5}, {4, 3.5, "B4", 0.5},
		{5, 0, "C5", 2}, {5, 2, "A4", 2},
		{6, 0, "F5", 0.5}, {6, 0.5, "E5", 0.5}, {6, 1, "D5", 0.5},
		{6, 1.5, "C5", 0.5}, {6, 2, "D5", 1}, {6, 3, "E5", 1},
		{7, 0, "C5", 2}, {7, 2, "B4", 1}, {7, 3, "A4", 1},
	}
	for _, m := range melody {
		pos := m.bar*bar + int(m.beat*float64(beat))
		dur := 60.0 / bpm * m.beats * 0.85
		synth.MixAt(mix, synth.LeadSynth(synth.NoteFreq(m.note), dur), pos)
	}

	return mix
}

// levelTheme is an upbeat 126 BPM funk: Em7, A7, Dm7, G7, with a
// syncopated bass, sixteenth-note guitar chucka, and two alternating
// lead riffs.
func levelTheme(rng *rand.Rand) synth.Buffer {
	const bpm = 126
	beat := synth.BeatSamples(1, bpm)
	bar := beat * 4
	eighth := beat / 2
	sixteenth := beat / 4
	const totalBars = 8
	mix := make(synth.Buffer, bar*totalBars)

	discoDrums(mix, rng, bpm, totalBars, 1)

	bassProg := [4][2]string{{"E2", "E3"}, {"A2", "A3"}, {"D2", "D3"}, {"G2", "G3"}}
	for ci, oct := range bassProg {
		lo, hi := synth.NoteFreq(oct[0]), synth.NoteFreq(oct[1])
		for rep := 0; rep < 2; rep++ {
			pos := (ci*2 + rep) * bar
			synth.MixAt(mix, synth.DiscoBass(lo, 0.15, 0.1), pos)
			synth.MixAt(mix, synth.DiscoBass(hi, 0.1, 0.06), pos+eighth)
			synth.MixAt(mix, synth.DiscoBass(lo, 0.08, 0.06), pos+beat+sixteenth*3)
			synth.MixAt(mix, synth.DiscoBass(hi, 0.12, 0.08), pos+beat*2)
			synth.MixAt(mix, synth.DiscoBass(lo, 0.1, 0.06), pos+beat*2+eighth)
			synth.MixAt(mix, synth.DiscoBass(hi, 0.15, 0.1), pos+beat*3)
			synth.MixAt(mix, synth.DiscoBass(lo, 0.08, 0.06), pos+beat*3+eighth)
		}
	}

	chords := [4][]float64{
		chordFreqs("E3", "G4", "B4", "D5"),
		chordFreqs("A3", "C#4", "E4", "G4"),
		chordFreqs("D3", "F4", "A4", "C5"),
		chordFreqs("G3", "B3", "D4", "F4"),
	}
	for ci, chord := range chords {
		for rep := 0; rep < 2; rep++ {
			b := ci*2 + rep
			for i := 0; i < 4; i++ {
				pos := b*bar + i*beat
				synth.MixAt(mix, synth.GuitarStab(chord, 0.07), pos+eighth)
				synth.MixAt(mix, synth.GuitarMute(chord, 0.04), pos+eighth+sixteenth)
				synth.MixAt(mix, synth.GuitarStab(chord, 0.06), pos+3*sixteenth)
			}
		}
	}

	padChords := [4][]float64{
		chordFreqs("E4", "G4", "B4", "D5"),
		chordFreqs("A3", "C#4", "E4", "G4"),
		chordFreqs("D4", "F4", "A4", "C5"),
		chordFreqs("G3", "B3", "D4", "F4"),
	}
	padDur := 60.0 / bpm * 8
	for ci, chord := range padChords {
		synth.MixAt(mix, synth.Gain(synth.StringChord(chord, padDur), 0.8), ci*2*bar)
	}

	riffA := []riffNote{
		{0, "E5", 0.5}, {0.5, "D5", 0.25}, {0.75, "E5", 0.25},
		{1, "G5", 0.5}, {1.5, "E5", 0.5},
		{2, "D5", 0.5}, {2.5, "B4", 0.5},
		{3, "A4", 0.75}, {3.75, "B4", 0.25},
	}
	riffB := []riffNote{
		{0, "A4", 0.5}, {0.5, "B4", 0.25}, {0.75, "C5", 0.25},
		{1, "D5", 0.5}, {1.5, "E5", 0.5},
		{2, "D5", 1},
		{3, "B4", 0.5}, {3.5, "A4", 0.5},
	}
	for rep := 0; rep < 2; rep++ {
		for ri, riff := range [2][]riffNote{riffA, riffB} {
			b := rep*4 + ri*2
			for _, rn := range riff {
				for sub := 0; sub < 2; sub++ {
					pos := (b+sub)*bar + int(rn.beat*float64(beat))
					dur := 60.0 / bpm * rn.beats * 0.8
					synth.MixAt(mix, synth.LeadSynth(synth.NoteFreq(rn.note), dur), pos)
				}
			}
		}
	}

	return mix
}

// bossTheme is a dark 132 BPM pumper: Am, F, Dm, E7, with relentless
// eighth-note octave bass, hard stabs, and a minor-key lead.
func bossTheme(rng *rand.Rand) synth.Buffer {
	const bpm = 132
	beat := synth.BeatSamples(1, bpm)
	bar := beat * 4
	eighth := beat / 2
	sixteenth := beat / 4
	const totalBars = 8
	mix := make(synth.Buffer, bar*totalBars)

	discoDrums(mix, rng, bpm, totalBars, 2)

	bassProg := [4][2]string{{"A2", "A3"}, {"F2", "F3"}, {"D2", "D3"}, {"E2", "E3"}}
	for ci, oct := range bassProg {
		lo, hi := synth.NoteFreq(oct[0]), synth.NoteFreq(oct[1])
		for rep := 0; rep < 2; rep++ {
			pos := (ci*2 + rep) * bar
			for i := 0; i < 8; i++ {
				f := lo
				if i%2 == 1 {
					f = hi
				}
				synth.MixAt(mix, synth.DiscoBass(f, 0.12, 0.08), pos+i*eighth)
			}
		}
	}

	chords := [4][]float64{
		chordFreqs("A3", "C4", "E4"),
		chordFreqs("F3", "A3", "C4"),
		chordFreqs("D3", "F4", "A4"),
		chordFreqs("E3", "G#3", "B3", "D4"),
	}
	for ci, chord := range chords {
		for rep := 0; rep < 2; rep++ {
			b := ci*2 + rep
			for i := 0; i < 4; i++ {
				pos := b*bar + i*beat
				synth.MixAt(mix, synth.Gain(synth.GuitarStab(chord, 0.09), 1.2), pos+eighth)
				synth.MixAt(mix, synth.Gain(synth.GuitarStab(chord, 0.06), 0.8), pos+3*sixteenth)
			}
		}
	}

	padChords := [4][]float64{
		chordFreqs("A3", "C4", "E4", "A4"),
		chordFreqs("F3", "A3", "C4", "F4"),
		chordFreqs("D3", "F4", "A4", "D5"),
		chordFreqs("E3", "G#3", "B3", "E4"),
	}
	padDur := 60.0 / bpm * 8
	for ci, chord := range padChords {
		synth.MixAt(mix, synth.Gain(synth.StringChord(chord, padDur), 1.1), ci*2*bar)
	}

	patterns := [4][]riffNote{
		{{0, "A5", 0.5}, {0.5, "G5", 0.5}, {1, "F5", 0.5}, {1.5, "E5", 0.5},
			{2, "C5", 1}, {3, "B4", 0.5}, {3.5, "A4", 0.5}},
		{{0, "F4", 0.5}, {0.5, "A4", 0.5}, {1, "C5", 0.5}, {1.5, "F5", 0.5},
			{2, "E5", 1}, {3, "C5", 0.5}, {3.5, "A4", 0.5}},
		{{0, "D5", 0.75}, {0.75, "E5", 0.25}, {1, "F5", 0.5}, {1.5, "E5", 0.5},
			{2, "D5", 0.5}, {2.5, "C5", 0.5}, {3, "A4", 1}},
		{{0, "E5", 0.5}, {0.5, "F5", 0.5}, {1, "G#5", 0.5}, {1.5, "A5", 0.5},
			{2, "G#5", 1}, {3, "E5", 0.75}, {3.75, "D5", 0.25}},
	}
	for pi, pattern := range patterns {
		for rep := 0; rep < 2; rep++ {
			b := pi*2 + rep
			for _, rn := range pattern {
				pos := b*bar + int(rn.beat*float64(beat))
				dur := 60.0 / bpm * rn.beats * 0.8
				synth.MixAt(mix, synth.Gain(synth.LeadSynth(synth.NoteFreq(rn.note), dur), 1.2), pos)
			}
		}
	}

	// Brass-like chord hits on the downbeat and the and-of-three.
	stabChords := [4]struct {
		bar   int
		freqs []float64
	}{
		{0, chordFreqs("A4", "C5", "E5")},
		{2, chordFreqs("F4", "A4", "C5")},
		{4, chordFreqs("D4", "F4", "A4")},
		{6, chordFreqs("E4", "G#4", "B4")},
	}
	for _, sc := range stabChords {
		for sub := 0; sub < 2; sub++ {
			pos := (sc.bar + sub) * bar
			for _, f := range sc.freqs {
				hit := synth.Gain(synth.Square(f, 0.06, 0.5), 0.1)
				synth.MixAt(mix, synth.Apply(hit, synth.DecayEnv(len(hit), 0.03)), pos)
			}
			pos2 := (sc.bar+sub)*bar + beat*2 + eighth
			for _, f := range sc.freqs {
				hit := synth.Gain(synth.Square(f, 0.04, 0.5), 0.08)
				synth.MixAt(mix, synth.Apply(hit, synth.DecayEnv(len(hit), 0.02)), pos2)
			}
		}
	}

	return mix
}
