package texture

import (
	"image/color"

	"github.com/funkworks/discoforge/pkg/pixel"
)

// SphereStyle describes a faceted mirror sphere. FacetSize defaults
// to 4.
type SphereStyle struct {
	Bright    color.RGBA
	Dark      color.RGBA
	Highlight color.RGBA
	FacetSize int
}

func (s *SphereStyle) facetSize() int {
	if s.FacetSize > 0 {
		return s.FacetSize
	}
	return 4
}

// FacetSphere draws a mirror ball of radius r centered at (cx, cy):
// a dark base disc covered by a checkered facet grid, shaded by a
// diffuse light from the upper left, with a specular patch toward the
// light. Facets outside the circle are skipped, keeping the silhouette
// round.
func FacetSphere(c *pixel.Canvas, cx, cy, r int, st SphereStyle) {
	if r <= 0 {
		return
	}
	fs := st.facetSize()

	c.FillCircle(cx, cy, r, st.Dark)

	for fy := -r + 1; fy < r; fy += fs {
		for fx := -r + 1; fx < r; fx += fs {
			if fx*fx+fy*fy > r*r {
				continue
			}
			nx := float64(fx) / float64(r)
			ny := float64(fy) / float64(r)
			light := -0.5*nx - 0.6*ny + 0.3
			if light < 0 {
				light = 0
			}
			facetRow := (fy + r) / fs
			facetCol := (fx + r) / fs
			isBright := (facetRow+facetCol)%2 == 0
			base := st.Dark
			if isBright {
				base = st.Bright
			}
			brightness := 0.4 + 0.6*light
			col := pixel.Scale(base, brightness)
			if light > 0.7 && isBright {
				col.R = addU8(col.R, 60)
				col.G = addU8(col.G, 60)
				col.B = addU8(col.B, 65)
			}
			x2 := cx + fx + fs - 1
			y2 := cy + fy + fs - 1
			if x2 > cx+r {
				x2 = cx + r
			}
			if y2 > cy+r {
				y2 = cy + r
			}
			fillFacet(c, cx+fx, cy+fy, x2, y2, cx, cy, r, col)
		}
	}

	// Specular patch toward the light source.
	sx := cx - r*3/10
	sy := cy - r*7/20
	c.FillRect(sx, sy, sx+3, sy+3, st.Highlight)
	c.Set(sx+1, sy-1, st.Highlight)
}

// fillFacet paints a facet rectangle but clips it to the sphere circle
// so facets never square off the rim.
func fillFacet(c *pixel.Canvas, x1, y1, x2, y2, cx, cy, r int, col color.RGBA) {
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			dx := x - cx
			dy := y - cy
			if dx*dx+dy*dy > r*r {
				continue
			}
			c.Set(x, y, col)
		}
	}
}

func addU8(v uint8, d int) uint8 {
	n := int(v) + d
	if n > 255 {
		return 255
	}
	return uint8(n)
}
