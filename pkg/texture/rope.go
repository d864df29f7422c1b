package texture

import (
	"image/color"
	"math"

	"github.com/funkworks/discoforge/pkg/pixel"
)

// CatenaryY returns the vertical sag offset of a hanging rope at
// parameter t in [0, 1]. The offset is zero at both endpoints and
// exactly sag at the midpoint:
//
//	y(t) = sag * (1 - (2t-1)^2)
func CatenaryY(t, sag float64) float64 {
	u := 2*t - 1
	return sag * (1 - u*u)
}

// RopeStyle is the three-shade coloring of a 3px rope: a highlight row
// above the body and a shadow row below it.
type RopeStyle struct {
	Highlight color.RGBA
	Body      color.RGBA
	Shadow    color.RGBA
}

// Rope draws a rope hanging between (x1, y1) and (x2, y2) with the
// given midpoint sag. Endpoints at different heights are handled by
// adding the sag curve to the straight line between them.
func Rope(c *pixel.Canvas, x1, y1, x2, y2 int, sag float64, st RopeStyle) {
	steps := int(math.Max(math.Abs(float64(x2-x1)), math.Abs(float64(y2-y1))))
	if steps == 0 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		px := int(math.Round(float64(x1) + t*float64(x2-x1)))
		lin := float64(y1) + t*float64(y2-y1)
		py := int(math.Round(lin + CatenaryY(t, sag)))
		c.Set(px, py-1, st.Highlight)
		c.Set(px, py, st.Body)
		c.Set(px, py+1, st.Shadow)
	}
}

// Chain draws a hanging chain along the same curve as Rope, as short
// alternating light/dark link segments one pixel thick.
func Chain(c *pixel.Canvas, x1, y1, x2, y2 int, sag float64, light, dark color.RGBA) {
	steps := int(math.Max(math.Abs(float64(x2-x1)), math.Abs(float64(y2-y1))))
	if steps == 0 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		px := int(math.Round(float64(x1) + t*float64(x2-x1)))
		lin := float64(y1) + t*float64(y2-y1)
		py := int(math.Round(lin + CatenaryY(t, sag)))
		col := light
		if (i/2)%2 == 0 {
			col = dark
		}
		c.Set(px, py, col)
	}
}
