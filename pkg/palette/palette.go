// Package palette remaps sprite colors through ordered rule tables.
// A remap classifies each pixel by channel relationships and
// brightness, walks its rules in order and applies the first matching
// transform. Rules are plain data, so new character skins are YAML
// edits rather than code.
package palette

import (
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultAlphaThreshold is the alpha below which pixels pass through
// untouched, preserving anti-aliased sprite edges.
const DefaultAlphaThreshold = 10

// grayTolerance is the maximum channel spread for a pixel to count as
// gray, and dominanceMargin the lead a channel needs to dominate.
const (
	grayTolerance   = 15
	dominanceMargin = 8
)

// Features is the classification of a single pixel. The boolean
// classes are not exclusive: a dark desaturated brown can be both
// Gray and Warm, and rule order decides which wins.
type Features struct {
	Brightness float64 // mean of R, G, B
	Gray       bool    // channel spreads within grayTolerance
	Warm       bool    // descending R > G > B with a red lead (browns, oranges)
	Cool       bool    // blue leads both other channels
	Green      bool    // green leads both other channels
	Hue        float64 // HSV hue in degrees
	Sat        float64 // HSV saturation in [0, 1]
}

// Classify derives the rule-matching features of one pixel.
func Classify(c color.RGBA) Features {
	r, g, b := int(c.R), int(c.G), int(c.B)
	h, s, _ := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hsv()
	return Features{
		Brightness: float64(r+g+b) / 3,
		Gray:       abs(r-g) < grayTolerance && abs(g-b) < grayTolerance,
		Warm:       r > g && g > b && r-b > dominanceMargin,
		Cool:       b-r > dominanceMargin && b-g > dominanceMargin,
		Green:      g-r > dominanceMargin && g-b > dominanceMargin,
		Hue:        h,
		Sat:        s,
	}
}

// Match is the predicate side of a rule. Every field is optional; the
// zero Match matches all pixels.
type Match struct {
	// Class names one of the boolean features: "gray", "warm",
	// "cool" or "green". Empty matches any class.
	Class string `yaml:"class,omitempty"`

	// MinBrightness is an exclusive lower bound, MaxBrightness an
	// inclusive upper bound (0 = unbounded).
	MinBrightness float64 `yaml:"min_brightness,omitempty"`
	MaxBrightness float64 `yaml:"max_brightness,omitempty"`

	// Hue window in degrees, applied when the bounds differ. Windows
	// may wrap around 360.
	HueMin float64 `yaml:"hue_min,omitempty"`
	HueMax float64 `yaml:"hue_max,omitempty"`

	// MinSaturation filters out near-gray pixels from hue windows.
	MinSaturation float64 `yaml:"min_saturation,omitempty"`
}

func (m *Match) matches(f Features) bool {
	switch m.Class {
	case "":
	case "gray":
		if !f.Gray {
			return false
		}
	case "warm":
		if !f.Warm {
			return false
		}
	case "cool":
		if !f.Cool {
			return false
		}
	case "green":
		if !f.Green {
			return false
		}
	default:
		return false
	}
	if f.Brightness <= m.MinBrightness && m.MinBrightness > 0 {
		return false
	}
	if m.MaxBrightness > 0 && f.Brightness > m.MaxBrightness {
		return false
	}
	if m.HueMin != m.HueMax {
		if m.HueMin <= m.HueMax {
			if f.Hue < m.HueMin || f.Hue > m.HueMax {
				return false
			}
		} else if f.Hue < m.HueMin && f.Hue > m.HueMax {
			return false
		}
	}
	if m.MinSaturation > 0 && f.Sat < m.MinSaturation {
		return false
	}
	return true
}

// Transform is the action side of a rule: per-channel linear scaling
// with optional caps and floors, in R, G, B order. An all-zero Scale
// means identity; a zero Cap means 255.
type Transform struct {
	Scale [3]float64 `yaml:"scale,omitempty,flow"`
	Cap   [3]float64 `yaml:"cap,omitempty,flow"`
	Floor [3]float64 `yaml:"floor,omitempty,flow"`
}

func (t *Transform) apply(c color.RGBA) color.RGBA {
	scale := t.Scale
	if scale == [3]float64{} {
		scale = [3]float64{1, 1, 1}
	}
	ch := func(v uint8, i int) uint8 {
		out := float64(v) * scale[i]
		hi := t.Cap[i]
		if hi == 0 {
			hi = 255
		}
		if out > hi {
			out = hi
		}
		if out < t.Floor[i] {
			out = t.Floor[i]
		}
		if out < 0 {
			out = 0
		}
		return uint8(out)
	}
	return color.RGBA{R: ch(c.R, 0), G: ch(c.G, 1), B: ch(c.B, 2), A: c.A}
}

// Rule pairs a predicate with a transform.
type Rule struct {
	Name  string    `yaml:"name,omitempty"`
	Match Match     `yaml:"match,omitempty"`
	Then  Transform `yaml:"then"`
}

// Remap is an ordered rule table. Pixels below the alpha threshold and
// pixels no rule matches pass through unchanged, which keeps outlines
// and unlisted materials intact. Remapping is neither idempotent nor
// invertible; it is a one-way reskin.
type Remap struct {
	Name string `yaml:"-"`

	// AlphaThreshold overrides DefaultAlphaThreshold when positive.
	AlphaThreshold uint8 `yaml:"alpha_threshold,omitempty"`

	Rules []Rule `yaml:"rules"`
}

func (m *Remap) alphaThreshold() uint8 {
	if m.AlphaThreshold > 0 {
		return m.AlphaThreshold
	}
	return DefaultAlphaThreshold
}

// Apply remaps a single pixel: first matching rule wins.
func (m *Remap) Apply(c color.RGBA) color.RGBA {
	if c.A < m.alphaThreshold() {
		return c
	}
	f := Classify(c)
	for i := range m.Rules {
		if m.Rules[i].Match.matches(f) {
			return m.Rules[i].Then.apply(c)
		}
	}
	return c
}

// ApplyImage remaps every pixel of src into a new image of the same
// dimensions. The source is never modified.
func (m *Remap) ApplyImage(src *image.RGBA) *image.RGBA {
	dst := image.NewRGBA(src.Rect)
	b := src.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			si := src.PixOffset(x, y)
			p := src.Pix[si : si+4 : si+4]
			out := m.Apply(color.RGBA{R: p[0], G: p[1], B: p[2], A: p[3]})
			di := dst.PixOffset(x, y)
			q := dst.Pix[di : di+4 : di+4]
			q[0] = out.R
			q[1] = out.G
			q[2] = out.B
			q[3] = out.A
		}
	}
	return dst
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
