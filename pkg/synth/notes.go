package synth

import (
	"fmt"
	"math"
)

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// noteFreqs maps names like "A4" or "C#3" to equal-temperament
// frequencies, A4 = 440 Hz, octaves 1 through 7.
var noteFreqs = make(map[string]float64, 12*7)

func init() {
	for oct := 1; oct <= 7; oct++ {
		for i, name := range noteNames {
			midi := (oct+1)*12 + i
			noteFreqs[fmt.Sprintf("%s%d", name, oct)] = 440 * math.Pow(2, float64(midi-69)/12)
		}
	}
}

// NoteFreq returns the frequency of a named note. Unknown names return 0,
// which renders as silence.
func NoteFreq(name string) float64 {
	return noteFreqs[name]
}
