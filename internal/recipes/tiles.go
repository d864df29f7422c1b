package recipes

import (
	"image/color"
	"math/rand"

	"github.com/funkworks/discoforge/pkg/pixel"
	"github.com/funkworks/discoforge/pkg/sheet"
	"github.com/funkworks/discoforge/pkg/texture"
)

// Tileset tiles are 32px square; the game's tilemap loader assumes
// this size.
const tileSize = 32

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func rgba(r, g, b, a uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: a}
}

// tileRect is the full-tile region for the texture helpers.
func tileRect() texture.Rect {
	return texture.Rect{W: tileSize, H: tileSize}
}

// jitter returns a uniform random offset in [-n, n].
func jitter(rng *rand.Rand, n int) int {
	return rng.Intn(2*n+1) - n
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// shiftU8 adds d to one channel, clamping to byte range.
func shiftU8(v uint8, d int) uint8 {
	n := int(v) + d
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return uint8(n)
}

// shiftRGB offsets each color channel independently, keeping alpha.
func shiftRGB(c color.RGBA, dr, dg, db int) color.RGBA {
	return color.RGBA{R: shiftU8(c.R, dr), G: shiftU8(c.G, dg), B: shiftU8(c.B, db), A: c.A}
}

// renderStrip draws each tile onto its own canvas, in order on the
// recipe's single random stream, and writes the composed strip under
// sprites/environment.
func renderStrip(ctx *Context, name string, draws []func(*pixel.Canvas, *rand.Rand)) error {
	tiles := make([]*pixel.Canvas, len(draws))
	for i, draw := range draws {
		cv, err := pixel.New(tileSize, tileSize)
		if err != nil {
			return err
		}
		draw(cv, ctx.Rng)
		tiles[i] = cv
	}
	strip, err := sheet.Strip(tileSize, tiles)
	if err != nil {
		return err
	}
	return ctx.SaveImage(ctx.SpritePath("environment", name), strip)
}
