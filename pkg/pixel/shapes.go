package pixel

import (
	"image/color"
	"math"
)

// FillRect draws a solid rectangle spanning the inclusive corners
// (x1, y1) and (x2, y2). Corners may be given in any order.
func (c *Canvas) FillRect(x1, y1, x2, y2 int, col color.RGBA) {
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	if y2 < y1 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			c.Blend(x, y, col)
		}
	}
}

// StrokeRect draws a 1px rectangle outline on the inclusive corners.
func (c *Canvas) StrokeRect(x1, y1, x2, y2 int, col color.RGBA) {
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	if y2 < y1 {
		y1, y2 = y2, y1
	}
	c.HLine(x1, x2, y1, col)
	c.HLine(x1, x2, y2, col)
	c.VLine(x1, y1, y2, col)
	c.VLine(x2, y1, y2, col)
}

// HLine draws a horizontal line from x1 to x2 at row y.
func (c *Canvas) HLine(x1, x2, y int, col color.RGBA) {
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		c.Blend(x, y, col)
	}
}

// VLine draws a vertical line from y1 to y2 at column x.
func (c *Canvas) VLine(x, y1, y2 int, col color.RGBA) {
	if y2 < y1 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		c.Blend(x, y, col)
	}
}

// Line draws a straight line by stepping a parameter over
// max(|dx|, |dy|) samples, one blended pixel per step.
func (c *Canvas) Line(x1, y1, x2, y2 int, col color.RGBA) {
	dx := math.Abs(float64(x2 - x1))
	dy := math.Abs(float64(y2 - y1))
	steps := int(math.Max(dx, dy))
	if steps == 0 {
		c.Blend(x1, y1, col)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := float64(x1) + t*float64(x2-x1)
		y := float64(y1) + t*float64(y2-y1)
		c.Blend(int(math.Round(x)), int(math.Round(y)), col)
	}
}

// ThickLine draws a line of the given pixel thickness by stamping a
// filled disc at each step.
func (c *Canvas) ThickLine(x1, y1, x2, y2, thickness int, col color.RGBA) {
	if thickness <= 1 {
		c.Line(x1, y1, x2, y2, col)
		return
	}
	r := thickness / 2
	dx := math.Abs(float64(x2 - x1))
	dy := math.Abs(float64(y2 - y1))
	steps := int(math.Max(dx, dy))
	if steps == 0 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := int(math.Round(float64(x1) + t*float64(x2-x1)))
		y := int(math.Round(float64(y1) + t*float64(y2-y1)))
		c.FillCircle(x, y, r, col)
	}
}

// FillCircle draws a solid disc with a soft 1px edge.
func (c *Canvas) FillCircle(cx, cy, r int, col color.RGBA) {
	if r < 0 {
		return
	}
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			dx := float64(x - cx)
			dy := float64(y - cy)
			d := math.Sqrt(dx*dx + dy*dy)
			if d > float64(r) {
				continue
			}
			a := col.A
			if d > float64(r)-1 && r > 0 {
				a = uint8(float64(a) * (float64(r) - d))
			}
			c.Blend(x, y, color.RGBA{col.R, col.G, col.B, a})
		}
	}
}

// FillEllipse draws a solid axis-aligned ellipse centered at (cx, cy)
// with radii rx and ry, softening the outer rim.
func (c *Canvas) FillEllipse(cx, cy, rx, ry int, col color.RGBA) {
	if rx <= 0 || ry <= 0 {
		return
	}
	for y := cy - ry; y <= cy+ry; y++ {
		for x := cx - rx; x <= cx+rx; x++ {
			dx := float64(x-cx) / float64(rx)
			dy := float64(y-cy) / float64(ry)
			d := dx*dx + dy*dy
			if d > 1.0 {
				continue
			}
			a := col.A
			if d > 0.85 {
				a = uint8(float64(a) * (1.0 - d) / 0.15)
			}
			c.Blend(x, y, color.RGBA{col.R, col.G, col.B, a})
		}
	}
}

// StrokeEllipse draws a 1px ellipse outline.
func (c *Canvas) StrokeEllipse(cx, cy, rx, ry int, col color.RGBA) {
	if rx <= 0 || ry <= 0 {
		return
	}
	steps := 4 * (rx + ry)
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		x := cx + int(math.Round(float64(rx)*math.Cos(a)))
		y := cy + int(math.Round(float64(ry)*math.Sin(a)))
		c.Blend(x, y, col)
	}
}

// Lerp returns the linear interpolation of a toward b by t, with t
// clamped to [0, 1].
func Lerp(a, b color.RGBA, t float64) color.RGBA {
	t = math.Max(0, math.Min(1, t))
	return color.RGBA{
		R: uint8(float64(a.R)*(1-t) + float64(b.R)*t),
		G: uint8(float64(a.G)*(1-t) + float64(b.G)*t),
		B: uint8(float64(a.B)*(1-t) + float64(b.B)*t),
		A: uint8(float64(a.A)*(1-t) + float64(b.A)*t),
	}
}

// Scale multiplies each RGB channel by f, clamping to byte range.
// Alpha is preserved.
func Scale(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{
		R: clampU8(int(float64(c.R) * f)),
		G: clampU8(int(float64(c.G) * f)),
		B: clampU8(int(float64(c.B) * f)),
		A: c.A,
	}
}

// WithAlpha returns c with its alpha replaced.
func WithAlpha(c color.RGBA, a uint8) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: a}
}
