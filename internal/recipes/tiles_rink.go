package recipes

import (
	"image/color"
	"math/rand"

	"github.com/funkworks/discoforge/pkg/pixel"
)

// Roller rink palette: warm maple, deep purple lobby carpet, chrome and
// neon pink.
var (
	rinkWoodBase    = rgb(140, 90, 51)
	rinkWoodLight   = rgb(212, 167, 106)
	rinkWoodGrain   = rgb(120, 78, 43)
	rinkCarpetBase  = rgb(74, 14, 78)
	rinkCarpetLight = rgb(95, 25, 100)
	rinkCarpetDark  = rgb(55, 8, 60)
	rinkChrome      = rgb(192, 192, 192)
	rinkChromeLight = rgb(230, 230, 240)
	rinkChromeDark  = rgb(120, 120, 130)
	rinkChromeShine = rgb(255, 255, 255)
	rinkNeonPink    = rgb(255, 105, 180)
	rinkWallDark    = rgb(26, 10, 46)
	rinkWallMid     = rgb(40, 18, 65)
	rinkLaneLine    = rgb(180, 140, 80)
)

// rinkTiles renders the roller rink tileset: rink floor, floor with lane
// line, lobby carpet, chrome barrier, interior wall and the floor-to-wall
// edge tile.
func rinkTiles(ctx *Context) error {
	return renderStrip(ctx, "tileset_rink.png", []func(*pixel.Canvas, *rand.Rand){
		func(c *pixel.Canvas, rng *rand.Rand) { rinkWoodTile(c, rng, false) },
		func(c *pixel.Canvas, rng *rand.Rand) { rinkWoodTile(c, rng, true) },
		rinkCarpetTile,
		rinkBarrierTile,
		rinkWallTile,
		rinkEdgeTile,
	})
}

// rinkWoodTile draws the polished rink floor. The lane variant uses the
// lighter maple with a painted lane line across the middle.
func rinkWoodTile(c *pixel.Canvas, rng *rand.Rand, lane bool) {
	base, grain := rinkWoodBase, rinkWoodGrain
	if lane {
		base, grain = rinkWoodLight, rinkWoodBase
	}
	c.Fill(base)

	for y := 0; y < tileSize; y++ {
		if rng.Float64() < 0.25 {
			length := 8 + rng.Intn(21)
			sx := rng.Intn(tileSize - length + 1)
			c.HLine(sx, sx+length, y, grain)
		}
	}

	// Polished sheen band across the middle.
	for y := 12; y < 18; y++ {
		for x := 0; x < tileSize; x++ {
			c.Set(x, y, shiftRGB(c.At(x, y), 15, 12, 8))
		}
	}

	if lane {
		c.HLine(0, tileSize-1, 15, rinkLaneLine)
		c.HLine(0, tileSize-1, 16, rinkLaneLine)
	}

	// Darken the top and bottom edges.
	for _, y := range [4]int{0, 1, tileSize - 2, tileSize - 1} {
		for x := 0; x < tileSize; x++ {
			c.Set(x, y, shiftRGB(c.At(x, y), -20, -15, -10))
		}
	}
}

// rinkCarpetTile draws the lobby carpet with a repeating argyle diamond
// pattern and a few worn patches.
func rinkCarpetTile(c *pixel.Canvas, rng *rand.Rand) {
	c.Fill(rinkCarpetBase)

	for y := 0; y < tileSize; y++ {
		for x := 0; x < tileSize; x++ {
			dx, dy := x%8-4, y%8-4
			switch d := abs(dx) + abs(dy); {
			case d <= 3:
				c.Set(x, y, rinkCarpetLight)
			case d == 4:
				c.Set(x, y, rinkCarpetDark)
			}
		}
	}

	// Worn spots.
	for i := 0; i < 3; i++ {
		cx := 4 + rng.Intn(tileSize-8)
		cy := 4 + rng.Intn(tileSize-8)
		for dy := -2; dy <= 2; dy++ {
			for dx := -2; dx <= 2; dx++ {
				if dx*dx+dy*dy <= 4 {
					c.Set(cx+dx, cy+dy, shiftRGB(c.At(cx+dx, cy+dy), 8, 5, 8))
				}
			}
		}
	}
}

// rinkBarrierTile draws the chrome spectator barrier with a neon strip
// along the bottom.
func rinkBarrierTile(c *pixel.Canvas, _ *rand.Rand) {
	c.Fill(rinkWallDark)

	// Two horizontal rails.
	for _, top := range [2]int{4, 18} {
		c.FillRect(0, top, tileSize-1, top+4, rinkChrome)
		c.HLine(0, tileSize-1, top, rinkChromeLight)
		c.HLine(0, tileSize-1, top+1, rinkChromeShine)
		c.HLine(0, tileSize-1, top+4, rinkChromeDark)
	}

	// Support posts at the edges.
	for _, px := range [2]int{2, tileSize - 3} {
		c.FillRect(px, 2, px+1, 28, rinkChrome)
		c.VLine(px, 2, 28, rinkChromeLight)
	}

	// Neon strip with a faint halo above and below.
	c.HLine(0, tileSize-1, 26, rinkNeonPink)
	c.HLine(0, tileSize-1, 27, rgb(200, 60, 120))
	for x := 0; x < tileSize; x++ {
		c.Set(x, 25, rgba(120, 30, 70, 180))
		c.Set(x, 28, rgba(100, 25, 60, 140))
	}
}

// rinkWallPanels outlines staggered panel rectangles over [y0,y1), with
// every other course shifted by offset and wrapped around the tile.
func rinkWallPanels(c *pixel.Canvas, y0, y1, stride, panelH, offset int) {
	for y := y0; y < y1; y += stride {
		shift := 0
		if ((y-y0)/stride)%2 == 1 {
			shift = offset
		}
		for x := 0; x < tileSize; x += 16 {
			bx := (x + shift) % tileSize
			c.StrokeRect(bx, y, min(bx+14, tileSize-1), min(y+panelH, tileSize-1), rinkWallMid)
		}
	}
}

func rinkWallTile(c *pixel.Canvas, rng *rand.Rand) {
	c.Fill(rinkWallDark)
	rinkWallPanels(c, 0, tileSize, 8, 6, 16)

	// Stray neon reflections.
	for i := 0; i < 2; i++ {
		nx := 2 + rng.Intn(tileSize-4)
		ny := 2 + rng.Intn(tileSize-4)
		col := [...]color.RGBA{rinkNeonPink, rgb(0, 255, 255), rgb(255, 215, 0)}[rng.Intn(3)]
		c.Set(nx, ny, pixel.WithAlpha(col, 160))
	}
}

// rinkEdgeTile draws the rink edge: wood floor on top, chrome trim strip,
// dark wall below.
func rinkEdgeTile(c *pixel.Canvas, rng *rand.Rand) {
	c.FillRect(0, 0, tileSize-1, 15, rinkWoodBase)
	for y := 0; y < 16; y++ {
		if rng.Float64() < 0.2 {
			length := 6 + rng.Intn(15)
			sx := rng.Intn(tileSize - length + 1)
			c.HLine(sx, sx+length, y, rinkWoodGrain)
		}
	}

	c.HLine(0, tileSize-1, 15, rinkChromeLight)
	c.HLine(0, tileSize-1, 16, rinkChrome)
	c.HLine(0, tileSize-1, 17, rinkChromeDark)

	c.FillRect(0, 18, tileSize-1, tileSize-1, rinkWallDark)
	rinkWallPanels(c, 18, tileSize, 6, 4, 8)
}
