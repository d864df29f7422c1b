package texture

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/funkworks/discoforge/pkg/pixel"
)

// Glow surrounds a disc of the given radius with a soft additive halo.
// Rings step outward from the radius with brightness falling linearly;
// intensity scales the whole effect (1.0 matches a full-strength neon
// halo).
func Glow(c *pixel.Canvas, cx, cy int, radius float64, col color.RGBA, intensity float64) {
	for ring := 1; ring < 12; ring++ {
		a := float64(35-ring*3) * intensity
		if a < 3 {
			a = 3
		}
		strength := a / 255
		for angle := 0; angle < 360; angle += 2 {
			rad := float64(angle) * math.Pi / 180
			px := cx + int((radius+float64(ring)*2.5)*math.Cos(rad))
			py := cy + int((radius+float64(ring)*2.5)*math.Sin(rad))
			c.Add(px, py, col, strength)
		}
	}
}

// LightCone pours an additive cone of light downward from the apex.
// The cone widens by spread pixels per row, fades with distance and
// fades again toward its edges. maxLen bounds the reach in rows.
func LightCone(c *pixel.Canvas, apexX, apexY int, col color.RGBA, intensity, spread float64, maxLen int) {
	if maxLen <= 0 {
		return
	}
	for dist := 1; dist < maxLen; dist++ {
		t := float64(dist) / float64(maxLen)
		alpha := intensity * 30 * (1 - t)
		if alpha < 2 {
			alpha = 2
		}
		y := apexY + dist
		if y >= c.Height() {
			break
		}
		halfSpread := int(float64(dist) * spread)
		if halfSpread < 1 {
			halfSpread = 1
		}
		for lx := apexX - halfSpread; lx <= apexX+halfSpread; lx++ {
			edge := 1 - math.Abs(float64(lx-apexX))/float64(halfSpread)
			if edge < 0 {
				edge = 0
			}
			a := alpha * edge
			if a < 1 {
				continue
			}
			c.Add(lx, y, col, a/255)
		}
	}
}

// Beams radiates n additive light rays from (cx, cy), each jittered a
// few degrees off its even spacing and cut off at a random length
// between minLen and maxLen. Rays start at innerR so a sphere drawn at
// the center afterwards sits on top of them; brightness falls off as
// 1 - t*t along each ray, and rays are thickened near the center.
func Beams(c *pixel.Canvas, rng *rand.Rand, cx, cy, n, innerR, minLen, maxLen int, cols []color.RGBA) {
	if n <= 0 || len(cols) == 0 {
		return
	}
	for i := 0; i < n; i++ {
		angle := float64(i)*360/float64(n) + (rng.Float64()*10 - 5)
		rad := angle * math.Pi / 180
		col := cols[i%len(cols)]
		length := minLen
		if maxLen > minLen {
			length += rng.Intn(maxLen - minLen)
		}
		sin, cos := math.Sin(rad), math.Cos(rad)
		for dist := innerR; dist < length; dist++ {
			t := float64(dist-innerR) / float64(length-innerR)
			alpha := 22 * (1 - t*t)
			if alpha < 2 {
				alpha = 2
			}
			px := cx + int(float64(dist)*cos)
			py := cy + int(float64(dist)*sin)
			c.Add(px, py, col, alpha/255)
			if dist < innerR+55 {
				for _, off := range [...]int{-1, 1} {
					ox := cx + int(float64(dist)*cos+float64(off)*sin)
					oy := cy + int(float64(dist)*sin-float64(off)*cos)
					c.Add(ox, oy, col, alpha/2/255)
				}
			}
		}
	}
}

// Burst fills r with a noise flame: scattered points and short rising
// streaks colored by height through grad, hottest at the bottom. The
// density is proportional to the region area.
func Burst(c *pixel.Canvas, rng *rand.Rand, r Rect, grad []color.RGBA) {
	if len(grad) == 0 || r.W <= 0 || r.H <= 0 {
		return
	}
	n := r.W * r.H / 3
	for i := 0; i < n; i++ {
		x := r.X + rng.Intn(r.W)
		y := r.Y + rng.Intn(r.H)
		// Height through the region picks the gradient band, with
		// jitter so the bands feather into each other.
		t := float64(r.Bottom()-1-y) / float64(r.H)
		t += rng.Float64()*0.3 - 0.15
		col := gradAt(grad, t)
		c.Blend(x, y, col)
		if rng.Float64() < 0.25 {
			streak := 1 + rng.Intn(3)
			for s := 1; s <= streak; s++ {
				c.Blend(x, y-s, pixel.WithAlpha(col, uint8(int(col.A)*2/(2+s))))
			}
		}
	}
}

func gradAt(grad []color.RGBA, t float64) color.RGBA {
	if t <= 0 {
		return grad[0]
	}
	if t >= 1 {
		return grad[len(grad)-1]
	}
	idx := int(t * float64(len(grad)))
	if idx >= len(grad) {
		idx = len(grad) - 1
	}
	return grad[idx]
}

// Sparkles scatters n reflective glints over r, each blended into the
// background at a random strength. Roughly one in seven grows a small
// additive cross flare.
func Sparkles(c *pixel.Canvas, rng *rand.Rand, r Rect, n int, cols []color.RGBA) {
	if len(cols) == 0 || r.W <= 0 || r.H <= 0 {
		return
	}
	for i := 0; i < n; i++ {
		x := r.X + rng.Intn(r.W)
		y := r.Y + rng.Intn(r.H)
		bright := 140 + rng.Intn(116)
		col := cols[rng.Intn(len(cols))]
		blend := 0.3 + rng.Float64()*0.4
		c.Mix(x, y, col, blend)
		if rng.Float64() < 0.15 {
			flare := float64(bright) * 0.3 / 255
			white := color.RGBA{255, 255, 255, 255}
			c.Add(x-1, y, white, flare)
			c.Add(x+1, y, white, flare)
			c.Add(x, y-1, white, flare)
			c.Add(x, y+1, white, flare)
		}
	}
}

// VGradient fills r with a vertical linear gradient from top to bottom.
func VGradient(c *pixel.Canvas, r Rect, top, bottom color.RGBA) {
	for y := r.Y; y < r.Bottom(); y++ {
		t := float64(y-r.Y) / float64(r.H)
		c.HLine(r.X, r.Right()-1, y, pixel.Lerp(top, bottom, t))
	}
}
