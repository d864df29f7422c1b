package texture

import (
	"image/color"
	"math/rand"

	"github.com/funkworks/discoforge/pkg/pixel"
)

// BrickStyle describes a running-bond brick pattern. CourseH and BrickW
// default to 4 and 16 when zero, the proportions of a 32px tile.
type BrickStyle struct {
	Base      color.RGBA
	Dark      color.RGBA
	Light     color.RGBA
	Highlight color.RGBA
	Mortar    color.RGBA

	CourseH int
	BrickW  int

	// Grime speckles scattered over the finished wall, biased toward
	// the bottom rows. Zero count disables them.
	GrimeCount  int
	GrimeColors []color.RGBA
}

func (s *BrickStyle) courseH() int {
	if s.CourseH > 0 {
		return s.CourseH
	}
	return 4
}

func (s *BrickStyle) brickW() int {
	if s.BrickW > 0 {
		return s.BrickW
	}
	return 16
}

// Bricks fills r with a running-bond brick wall: horizontal mortar
// lines every course, staggered vertical joints, per-brick shade
// variation and occasional single-pixel highlights. Every pixel of the
// region is painted, either mortar or brick.
func Bricks(c *pixel.Canvas, rng *rand.Rand, r Rect, st BrickStyle) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	bh := st.courseH()
	bw := st.brickW()
	half := bw / 2

	c.FillRect(r.X, r.Y, r.Right()-1, r.Bottom()-1, st.Base)

	// Horizontal mortar every course.
	for y := r.Y; y < r.Bottom(); y += bh {
		c.HLine(r.X, r.Right()-1, y, st.Mortar)
	}

	rows := (r.H + bh - 1) / bh
	for row := 0; row < rows; row++ {
		yTop := r.Y + row*bh + 1
		offset := 0
		if row%2 == 0 {
			offset = half
		}
		// Staggered vertical joints.
		for vx := offset; vx < r.W; vx += bw {
			mx := r.X + vx
			yEnd := yTop + bh - 2
			if yEnd > r.Bottom()-1 {
				yEnd = r.Bottom() - 1
			}
			c.VLine(mx, yTop, yEnd, st.Mortar)
		}
		// Brick faces between joints.
		for vx := offset; vx < r.W; vx += bw {
			bx := r.X + vx + 1
			faceW := bw - 2
			if bx+faceW > r.Right()-1 {
				faceW = r.Right() - 1 - bx
			}
			faceH := bh - 1
			if faceW <= 2 || yTop+faceH > r.Bottom() {
				continue
			}
			shade := [...]color.RGBA{st.Base, st.Dark, st.Light}[rng.Intn(3)]
			c.FillRect(bx, yTop, bx+faceW-1, yTop+faceH-1, shade)
			if rng.Float64() < 0.3 && faceW > 1 {
				hx := bx + rng.Intn(faceW-1)
				c.Set(hx, yTop, st.Highlight)
			}
		}
	}

	for g := 0; g < st.GrimeCount; g++ {
		gx := r.X + rng.Intn(r.W)
		gy := r.Y + rng.Intn(r.H)
		if rng.Float64() < 0.7 {
			gy = r.Y + r.H/2 + rng.Intn(r.H-r.H/2)
		}
		if len(st.GrimeColors) > 0 {
			c.Set(gx, gy, st.GrimeColors[rng.Intn(len(st.GrimeColors))])
		}
	}
}

// WoodStyle describes horizontal plank wood. PlankH defaults to 8.
type WoodStyle struct {
	Base   color.RGBA
	Gap    color.RGBA
	Grain  color.RGBA
	Light  color.RGBA
	PlankH int
}

func (s *WoodStyle) plankH() int {
	if s.PlankH > 0 {
		return s.PlankH
	}
	return 8
}

// WoodGrain fills r with horizontal planks: gap lines at fixed
// intervals, short random grain streaks and a sparse highlight row at
// the top of each plank.
func WoodGrain(c *pixel.Canvas, rng *rand.Rand, r Rect, st WoodStyle) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	ph := st.plankH()
	c.FillRect(r.X, r.Y, r.Right()-1, r.Bottom()-1, st.Base)

	for y := r.Y + ph - 1; y < r.Bottom(); y += ph {
		c.HLine(r.X, r.Right()-1, y, st.Gap)
	}

	for y := r.Y; y < r.Bottom(); y++ {
		if rng.Float64() >= 0.2 {
			continue
		}
		if r.W < 4 {
			continue
		}
		length := r.W/4 + rng.Intn(r.W/2+1)
		sx := r.X + rng.Intn(r.W-length+1)
		c.HLine(sx, min(sx+length, r.Right()-1), y, st.Grain)
	}

	for y := r.Y + 1; y < r.Bottom(); y += ph {
		for x := r.X; x < r.Right(); x++ {
			if rng.Float64() < 0.3 {
				c.Set(x, y, st.Light)
			}
		}
	}
}

// Speckle scatters n single pixels of randomly chosen colors over r.
// The standard grain pass for asphalt, sand and concrete.
func Speckle(c *pixel.Canvas, rng *rand.Rand, r Rect, n int, cols []color.RGBA) {
	if len(cols) == 0 || r.W <= 0 || r.H <= 0 {
		return
	}
	for i := 0; i < n; i++ {
		x := r.X + rng.Intn(r.W)
		y := r.Y + rng.Intn(r.H)
		c.Set(x, y, cols[rng.Intn(len(cols))])
	}
}

// Crack draws a jagged random-walk fissure starting at (x, y), biased
// downward, for up to length steps. Roughly 40% of the steps widen the
// crack by one pixel.
func Crack(c *pixel.Canvas, rng *rand.Rand, x, y, length int, col color.RGBA) {
	cx, cy := x, y
	for i := 0; i < length; i++ {
		cx += rng.Intn(3) - 1
		cy += [...]int{0, 1, 1}[rng.Intn(3)]
		c.Set(cx, cy, col)
		if rng.Float64() < 0.4 {
			c.Set(cx+1, cy, col)
		}
	}
}
