package synth

import "math"

// MixAt adds src into dst starting at the given sample offset. Samples
// falling outside dst are dropped.
func MixAt(dst, src Buffer, offset int) {
	if offset < 0 || offset >= len(dst) {
		return
	}
	end := min(offset+len(src), len(dst))
	for i := offset; i < end; i++ {
		dst[i] += src[i-offset]
	}
}

// Gain scales buf in place and returns it.
func Gain(buf Buffer, g float64) Buffer {
	for i := range buf {
		buf[i] *= g
	}
	return buf
}

// Concat returns a new buffer holding the given buffers back to back.
func Concat(bufs ...Buffer) Buffer {
	total := 0
	for _, b := range bufs {
		total += len(b)
	}
	out := make(Buffer, 0, total)
	for _, b := range bufs {
		out = append(out, b...)
	}
	return out
}

// Lowpass smooths buf in place with a 3-tap kernel, repeated for the
// given number of passes. Edges are treated as zero.
func Lowpass(buf Buffer, passes int) Buffer {
	for p := 0; p < passes; p++ {
		prev := 0.0
		for i := 0; i < len(buf); i++ {
			next := 0.0
			if i+1 < len(buf) {
				next = buf[i+1]
			}
			cur := buf[i]
			buf[i] = 0.25*prev + 0.5*cur + 0.25*next
			prev = cur
		}
	}
	return buf
}

// Normalize scales buf in place so its peak magnitude equals target,
// then clamps to [-1, 1]. A silent buffer is left untouched.
func Normalize(buf Buffer, target float64) Buffer {
	peak := 0.0
	for _, v := range buf {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	if peak > 0 {
		s := target / peak
		for i := range buf {
			buf[i] *= s
		}
	}
	for i, v := range buf {
		if v > 1 {
			buf[i] = 1
		} else if v < -1 {
			buf[i] = -1
		}
	}
	return buf
}
