package texture

import (
	"image/color"
	"unicode"

	"github.com/funkworks/discoforge/pkg/pixel"
)

// glyphs holds a 3x5 bitmap per character, one byte per row with the
// low three bits as columns (high bit = left column). Enough for
// signage and HUD labels; anything fancier gets rendered offline.
var glyphs = map[rune][5]uint8{
	'A': {0b010, 0b101, 0b111, 0b101, 0b101},
	'B': {0b110, 0b101, 0b110, 0b101, 0b110},
	'C': {0b011, 0b100, 0b100, 0b100, 0b011},
	'D': {0b110, 0b101, 0b101, 0b101, 0b110},
	'E': {0b111, 0b100, 0b110, 0b100, 0b111},
	'F': {0b111, 0b100, 0b110, 0b100, 0b100},
	'G': {0b011, 0b100, 0b101, 0b101, 0b011},
	'H': {0b101, 0b101, 0b111, 0b101, 0b101},
	'I': {0b111, 0b010, 0b010, 0b010, 0b111},
	'J': {0b001, 0b001, 0b001, 0b101, 0b010},
	'K': {0b101, 0b110, 0b100, 0b110, 0b101},
	'L': {0b100, 0b100, 0b100, 0b100, 0b111},
	'M': {0b101, 0b111, 0b111, 0b101, 0b101},
	'N': {0b110, 0b101, 0b101, 0b101, 0b101},
	'O': {0b010, 0b101, 0b101, 0b101, 0b010},
	'P': {0b110, 0b101, 0b110, 0b100, 0b100},
	'Q': {0b010, 0b101, 0b101, 0b010, 0b001},
	'R': {0b110, 0b101, 0b110, 0b101, 0b101},
	'S': {0b011, 0b100, 0b010, 0b001, 0b110},
	'T': {0b111, 0b010, 0b010, 0b010, 0b010},
	'U': {0b101, 0b101, 0b101, 0b101, 0b111},
	'V': {0b101, 0b101, 0b101, 0b101, 0b010},
	'W': {0b101, 0b101, 0b111, 0b111, 0b101},
	'X': {0b101, 0b101, 0b010, 0b101, 0b101},
	'Y': {0b101, 0b101, 0b010, 0b010, 0b010},
	'Z': {0b111, 0b001, 0b010, 0b100, 0b111},
	'0': {0b111, 0b101, 0b101, 0b101, 0b111},
	'1': {0b010, 0b110, 0b010, 0b010, 0b111},
	'2': {0b110, 0b001, 0b010, 0b100, 0b111},
	'3': {0b111, 0b001, 0b011, 0b001, 0b111},
	'4': {0b101, 0b101, 0b111, 0b001, 0b001},
	'5': {0b111, 0b100, 0b110, 0b001, 0b110},
	'6': {0b011, 0b100, 0b111, 0b101, 0b111},
	'7': {0b111, 0b001, 0b001, 0b010, 0b010},
	'8': {0b111, 0b101, 0b111, 0b101, 0b111},
	'9': {0b111, 0b101, 0b111, 0b001, 0b110},
	'-': {0b000, 0b000, 0b111, 0b000, 0b000},
	'.': {0b000, 0b000, 0b000, 0b000, 0b010},
	'!': {0b010, 0b010, 0b010, 0b000, 0b010},
	' ': {},
}

// GlyphW and GlyphH are the unscaled cell dimensions of the built-in
// font; each character advances GlyphW+1 columns.
const (
	GlyphW = 3
	GlyphH = 5
)

// Text draws s at (x, y) in the built-in 3x5 font, each font pixel
// expanded to a scale x scale block. Lowercase letters are uppercased;
// characters without a glyph advance the cursor but draw nothing.
func Text(c *pixel.Canvas, x, y int, s string, col color.RGBA, scale int) {
	if scale < 1 {
		scale = 1
	}
	cx := x
	for _, r := range s {
		g, ok := glyphs[unicode.ToUpper(r)]
		if ok {
			for row := 0; row < GlyphH; row++ {
				bits := g[row]
				for bit := 0; bit < GlyphW; bit++ {
					if bits&(1<<(GlyphW-1-bit)) == 0 {
						continue
					}
					px := cx + bit*scale
					py := y + row*scale
					c.FillRect(px, py, px+scale-1, py+scale-1, col)
				}
			}
		}
		cx += (GlyphW + 1) * scale
	}
}

// TextWidth returns the pixel width Text will cover for s at the given
// scale, including inter-character gaps but not a trailing one.
func TextWidth(s string, scale int) int {
	if scale < 1 {
		scale = 1
	}
	n := len([]rune(s))
	if n == 0 {
		return 0
	}
	return (n*(GlyphW+1) - 1) * scale
}
