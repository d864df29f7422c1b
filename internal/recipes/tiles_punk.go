package recipes

import (
	"image/color"
	"math/rand"

	"github.com/funkworks/discoforge/pkg/pixel"
	"github.com/funkworks/discoforge/pkg/texture"
)

// CBGB punk alley palette.
var (
	punkBrickBase     = rgb(120, 55, 40)
	punkBrickDark     = rgb(90, 40, 28)
	punkBrickLight    = rgb(140, 68, 50)
	punkBrickHi       = rgb(155, 80, 60)
	punkMortar        = rgb(75, 72, 65)
	punkMortarDark    = rgb(60, 58, 52)
	punkGrimeDark     = rgb(50, 42, 35)
	punkGrimeStain    = rgb(65, 55, 45)
	punkAsphalt       = rgb(55, 55, 52)
	punkAsphaltDark   = rgb(40, 40, 38)
	punkAsphaltLight  = rgb(70, 70, 66)
	punkAsphaltCrack  = rgb(30, 28, 26)
	punkOilStain      = rgb(35, 30, 40)
	punkOilSheen      = rgb(50, 45, 60)
	punkPebble        = rgb(80, 78, 72)
	punkDumpsterBase  = rgb(40, 75, 45)
	punkDumpsterDark  = rgb(28, 55, 32)
	punkDumpsterLight = rgb(55, 95, 60)
	punkRustDark      = rgb(110, 55, 25)
	punkRustLight     = rgb(140, 70, 30)
	punkLid           = rgb(65, 65, 60)
	punkLidHi         = rgb(90, 90, 85)
	punkTrashBrown    = rgb(95, 70, 40)
	punkTrashWhite    = rgb(180, 175, 165)
	punkWater         = rgb(50, 65, 80)
	punkWaterLight    = rgb(70, 90, 110)
	punkRipple        = rgb(85, 105, 130)
	punkReflect       = rgb(100, 120, 150)
	punkSidewalk      = rgb(130, 125, 118)
	punkSidewalkLight = rgb(150, 145, 138)
	punkSidewalkDark  = rgb(105, 100, 95)
	punkSidewalkCrack = rgb(80, 76, 70)
	punkTransition    = rgb(90, 85, 78)

	// Spray paint cans the taggers carry.
	punkPaint = []color.RGBA{
		rgb(210, 80, 130),
		rgb(60, 200, 90),
		rgb(240, 220, 50),
		rgb(70, 120, 220),
	}
)

func punkBrickStyle() texture.BrickStyle {
	return texture.BrickStyle{
		Base:      punkBrickBase,
		Dark:      punkBrickDark,
		Light:     punkBrickLight,
		Highlight: punkBrickHi,
		Mortar:    punkMortar,
	}
}

// punkAlleyTiles renders the CBGB alley tileset: dirty brick, cracked
// asphalt, graffiti wall, dumpster, puddle and the wall-to-sidewalk
// edge tile.
func punkAlleyTiles(ctx *Context) error {
	return renderStrip(ctx, "tileset_punk_alley.png", []func(*pixel.Canvas, *rand.Rand){
		punkBrickWall,
		punkCrackedAsphalt,
		punkGraffitiWall,
		punkDumpster,
		punkPuddle,
		punkAlleyEdge,
	})
}

func punkBrickWall(c *pixel.Canvas, rng *rand.Rand) {
	st := punkBrickStyle()
	st.GrimeCount = 20
	st.GrimeColors = []color.RGBA{punkGrimeDark, punkGrimeStain}
	texture.Bricks(c, rng, tileRect(), st)

	// Weather a few mortar pixels darker.
	for i := 0; i < 8; i++ {
		x, y := rng.Intn(tileSize), rng.Intn(tileSize)
		if c.At(x, y) == punkMortar {
			c.Set(x, y, punkMortarDark)
		}
	}
}

func punkCrackedAsphalt(c *pixel.Canvas, rng *rand.Rand) {
	c.Fill(punkAsphalt)
	texture.Speckle(c, rng, tileRect(), 40,
		[]color.RGBA{punkAsphaltLight, punkAsphaltDark, punkPebble})

	// Main fissure running the full tile height.
	cx := 4 + rng.Intn(9)
	for cy := 1; cy < tileSize; cy++ {
		cx += rng.Intn(3) - 1
		px := min(max(cx, 0), tileSize-1)
		c.Set(px, cy, punkAsphaltCrack)
		if rng.Float64() < 0.4 {
			c.Set(px+1, cy, punkAsphaltCrack)
		}
	}
	// Shorter side crack.
	texture.Crack(c, rng, 18+rng.Intn(11), 8+rng.Intn(9), 8+rng.Intn(7), punkAsphaltCrack)

	// Oil blotches with a sheen dot.
	for i := 0; i < 2; i++ {
		ox := 4 + rng.Intn(23)
		oy := 4 + rng.Intn(23)
		r := 2 + rng.Intn(3)
		c.FillEllipse(ox, oy, r, r, punkOilStain)
		c.Set(ox+1, oy-1, punkOilSheen)
	}
}

func punkGraffitiWall(c *pixel.Canvas, rng *rand.Rand) {
	texture.Bricks(c, rng, tileRect(), punkBrickStyle())
	texture.Speckle(c, rng, tileRect(), 15, []color.RGBA{punkBrickDark, punkBrickLight})

	// Two big paint splashes, then loose splatter dots.
	sx, sy := 4+rng.Intn(11), 4+rng.Intn(11)
	r := 4 + rng.Intn(3)
	c.FillEllipse(sx, sy, r, r, punkPaint[rng.Intn(len(punkPaint))])
	sx, sy = 16+rng.Intn(13), 14+rng.Intn(13)
	r = 3 + rng.Intn(3)
	c.FillEllipse(sx, sy, r, r, punkPaint[rng.Intn(len(punkPaint))])
	texture.Speckle(c, rng, tileRect(), 12, punkPaint)

	// The club's name sprayed over the splashes.
	throwCol := punkPaint[rng.Intn(len(punkPaint))]
	texture.Text(c, 2+rng.Intn(15), 2+rng.Intn(4), "CBGB", throwCol, 1)

	// A tag streak with a drip off its tail.
	tagY := 10 + rng.Intn(13)
	tagCol := punkPaint[rng.Intn(len(punkPaint))]
	x1 := 2 + rng.Intn(7)
	x2 := 20 + rng.Intn(10)
	c.HLine(x1, x2, tagY, tagCol)
	dripX := x2 - 1 - rng.Intn(4)
	c.VLine(dripX, tagY, tagY+2+rng.Intn(4), tagCol)
}

func punkDumpster(c *pixel.Canvas, rng *rand.Rand) {
	c.Fill(punkDumpsterBase)

	// Lid with a worn highlight row and a handle.
	c.FillRect(0, 0, tileSize-1, 4, punkLid)
	c.HLine(0, tileSize-1, 5, punkDumpsterDark)
	for x := 2; x < tileSize-2; x++ {
		if rng.Float64() < 0.4 {
			c.Set(x, 1, punkLidHi)
		}
	}
	c.FillRect(13, 2, 18, 3, punkLidHi)

	// Panel ribs and paint wear.
	c.VLine(10, 6, tileSize-3, punkDumpsterDark)
	c.VLine(21, 6, tileSize-3, punkDumpsterDark)
	texture.Speckle(c, rng, texture.Rect{X: 1, Y: 6, W: tileSize - 2, H: tileSize - 8}, 25,
		[]color.RGBA{punkDumpsterDark, punkDumpsterLight, punkDumpsterBase})

	// Rust blooms.
	for i := 0; i < 5; i++ {
		rx := 2 + rng.Intn(27)
		ry := 8 + rng.Intn(21)
		rr := 1 + rng.Intn(2)
		c.FillEllipse(rx, ry, rr, rr, punkRustDark)
		c.Set(rx, ry, punkRustLight)
	}

	// Garbage peeking over the lid.
	for i := 0; i < 3; i++ {
		gx := 3 + rng.Intn(26)
		gc := punkTrashBrown
		if rng.Intn(2) == 1 {
			gc = punkTrashWhite
		}
		c.FillRect(gx, 0, gx+1, 1, gc)
	}

	c.HLine(0, tileSize-1, tileSize-2, punkDumpsterDark)
	c.HLine(0, tileSize-1, tileSize-1, punkGrimeDark)
}

func punkPuddle(c *pixel.Canvas, rng *rand.Rand) {
	c.Fill(punkAsphalt)
	texture.Speckle(c, rng, tileRect(), 25, []color.RGBA{punkAsphaltLight, punkAsphaltDark})
	for i := 0; i < 2; i++ {
		texture.Crack(c, rng, 2+rng.Intn(28), 2+rng.Intn(28), 3+rng.Intn(4), punkAsphaltCrack)
	}

	// Water pool, lighter toward the center.
	rx := 9 + rng.Intn(4)
	ry := 7 + rng.Intn(4)
	c.FillEllipse(16, 16, rx, ry, punkWater)
	c.FillEllipse(16, 16, rx-3, ry-3, punkWaterLight)

	// Glints and ripple dots on the surface.
	for i := 0; i < 4; i++ {
		c.Set(16+jitter(rng, rx-3), 16+jitter(rng, ry-3), punkReflect)
	}
	for i := 0; i < 6; i++ {
		c.Set(16+jitter(rng, rx-2), 16+jitter(rng, ry-2), punkRipple)
	}
}

func punkAlleyEdge(c *pixel.Canvas, rng *rand.Rand) {
	// Brick above, sidewalk below, a grimy seam between.
	texture.Bricks(c, rng, texture.Rect{W: tileSize, H: 16}, punkBrickStyle())
	texture.Speckle(c, rng, texture.Rect{W: tileSize, H: 15}, 10,
		[]color.RGBA{punkBrickDark, punkBrickLight, punkBrickHi})
	for i := 0; i < 6; i++ {
		c.Set(rng.Intn(tileSize), 10+rng.Intn(5), punkGrimeStain)
	}

	c.HLine(0, tileSize-1, 15, punkTransition)
	c.HLine(0, tileSize-1, 16, punkMortarDark)

	c.FillRect(0, 17, tileSize-1, tileSize-1, punkSidewalk)
	texture.Speckle(c, rng, texture.Rect{Y: 17, W: tileSize, H: 15}, 20,
		[]color.RGBA{punkSidewalkLight, punkSidewalkDark})
	c.VLine(16, 17, tileSize-1, punkSidewalkCrack)
	for i := 0; i < 2; i++ {
		texture.Crack(c, rng, 4+rng.Intn(25), 19+rng.Intn(10), 3+rng.Intn(4), punkSidewalkCrack)
	}
	for i := 0; i < 5; i++ {
		c.Set(rng.Intn(tileSize), 17, punkGrimeStain)
	}
}
