package synth

import "math"

// ramp fills seg with a linear slope from one level to another, both
// endpoints included.
func ramp(seg Buffer, from, to float64) {
	n := len(seg)
	if n == 0 {
		return
	}
	if n == 1 {
		seg[0] = from
		return
	}
	for i := range seg {
		seg[i] = from + (to-from)*float64(i)/float64(n-1)
	}
}

// ADSR returns a piecewise linear attack/decay/sustain/release envelope
// of n samples. Times are in seconds, sustain is a level in [0, 1].
// Segments that do not fit are shortened in order, sustain last.
func ADSR(n int, attack, decay, sustain, release float64) Buffer {
	a := min(int(attack*SampleRate), n)
	rem := n - a
	d := min(int(decay*SampleRate), rem)
	rem -= d
	r := min(int(release*SampleRate), rem)
	s := rem - r

	env := make(Buffer, n)
	pos := 0
	if a > 0 {
		ramp(env[pos:pos+a], 0, 1)
		pos += a
	}
	if d > 0 {
		ramp(env[pos:pos+d], 1, sustain)
		pos += d
	}
	for i := 0; i < s; i++ {
		env[pos+i] = sustain
	}
	pos += s
	if r > 0 {
		ramp(env[pos:pos+r], sustain, 0)
	}
	return env
}

// DecayEnv returns an exponential decay envelope of n samples with time
// constant tau seconds.
func DecayEnv(n int, tau float64) Buffer {
	env := make(Buffer, n)
	total := float64(n) / SampleRate
	for i := range env {
		t := 0.0
		if n > 1 {
			t = total * float64(i) / float64(n-1)
		}
		env[i] = math.Exp(-t / tau)
	}
	return env
}

// Punch returns a sharp attack and fast decay envelope for impacts.
func Punch(n int) Buffer {
	return ADSR(n, 0.002, 0.03, 0.3, 0.08)
}

// AR returns a flat envelope with a linear attack and release ramp.
func AR(n int, attack, release float64) Buffer {
	env := make(Buffer, n)
	for i := range env {
		env[i] = 1
	}
	a := min(int(attack*SampleRate), n)
	r := min(int(release*SampleRate), n)
	if a > 0 {
		ramp(env[:a], 0, 1)
	}
	if r > 0 {
		ramp(env[n-r:], 1, 0)
	}
	return env
}

// Swell returns a slow attack envelope for pads, with a short fixed
// release.
func Swell(n int, attack float64) Buffer {
	return AR(n, attack, 0.05)
}

// Apply multiplies buf by env in place over their common length and
// returns buf.
func Apply(buf, env Buffer) Buffer {
	n := min(len(buf), len(env))
	for i := 0; i < n; i++ {
		buf[i] *= env[i]
	}
	return buf
}
