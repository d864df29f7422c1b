package recipes

import (
	"image/color"
	"math/rand"

	"github.com/funkworks/discoforge/pkg/pixel"
	"github.com/funkworks/discoforge/pkg/texture"
)

// discoCellColors is one lit-floor color scheme, darkest to hottest.
type discoCellColors struct {
	base   color.RGBA
	glow   color.RGBA
	bright color.RGBA
	hot    color.RGBA
	grid   color.RGBA
	dark   color.RGBA
}

var (
	discoPurple = discoCellColors{
		base:   rgb(140, 40, 160),
		glow:   rgb(180, 60, 200),
		bright: rgb(220, 120, 240),
		hot:    rgb(245, 170, 255),
		grid:   rgb(60, 20, 80),
		dark:   rgb(45, 12, 55),
	}
	discoCyan = discoCellColors{
		base:   rgb(40, 130, 160),
		glow:   rgb(60, 180, 200),
		bright: rgb(120, 220, 240),
		hot:    rgb(170, 240, 255),
		grid:   rgb(20, 60, 80),
		dark:   rgb(12, 40, 55),
	}
)

// VIP lounge, speaker, bar and edge palette.
var (
	discoCarpet      = rgb(60, 20, 25)
	discoCarpetDark  = rgb(50, 15, 20)
	discoCarpetLight = rgb(72, 28, 32)
	discoPile1       = rgb(55, 18, 22)
	discoPile2       = rgb(68, 24, 28)
	discoCarpetHi    = rgb(80, 32, 38)
	discoTrim        = rgb(200, 170, 60)
	discoTrimDark    = rgb(180, 150, 40)
	discoTrimBright  = rgb(225, 195, 80)

	discoSpeakerBlack = rgb(20, 20, 22)
	discoSpeakerPanel = rgb(30, 30, 33)
	discoSpeakerDark  = rgb(14, 14, 16)
	discoConeBase     = rgb(35, 35, 38)
	discoConeMid      = rgb(45, 45, 50)
	discoConeRing     = rgb(28, 28, 32)
	discoConeCenter   = rgb(55, 55, 62)
	discoConeDot      = rgb(18, 18, 20)
	discoChrome       = rgb(160, 165, 175)
	discoChromeBright = rgb(200, 205, 215)
	discoChromeDark   = rgb(120, 124, 132)

	discoBarWood      = rgb(80, 50, 30)
	discoBarWoodDark  = rgb(60, 38, 22)
	discoBarWoodLight = rgb(95, 62, 38)
	discoBarWoodGrain = rgb(70, 44, 26)
	discoBrass        = rgb(190, 160, 50)
	discoBrassDark    = rgb(160, 135, 40)
	discoBrassBright  = rgb(215, 185, 70)
	discoBottleGreen  = rgb(30, 100, 45)
	discoBottleAmber  = rgb(140, 90, 25)
	discoBottleBlue   = rgb(40, 60, 130)
	discoBottleRed    = rgb(130, 30, 35)
	discoBottleCap    = rgb(180, 180, 175)
	discoBarFront     = rgb(55, 34, 18)
	discoBarFrontDark = rgb(40, 25, 12)

	discoEdgeChrome       = rgb(170, 175, 185)
	discoEdgeChromeBright = rgb(200, 205, 215)
	discoEdgeChromeDark   = rgb(130, 134, 142)
	discoEdgeShadowMid    = rgb(18, 15, 22)
	discoEdgeShadow       = rgb(10, 8, 12)
	discoEdgeVoid         = rgb(5, 3, 6)
)

// discoFloorTiles renders the dance floor tileset: lit floor cells in
// two color schemes, the VIP lounge carpet, a speaker stack, the bar
// counter and the floor's drop-off edge.
func discoFloorTiles(ctx *Context) error {
	return renderStrip(ctx, "tileset_disco_floor.png", []func(*pixel.Canvas, *rand.Rand){
		func(c *pixel.Canvas, rng *rand.Rand) { discoLitFloor(c, rng, discoPurple) },
		func(c *pixel.Canvas, rng *rand.Rand) { discoLitFloor(c, rng, discoCyan) },
		discoVIPLounge,
		discoSpeakerStack,
		discoBarCounter,
		discoFloorEdge,
	})
}

// discoCell draws one 8x8 lit cell at (cx, cy): a grid border ring, a
// 6x6 inner pad shaded base at the rim through glow to a bright core,
// corners knocked back to dark and a jittered hot pixel at the center.
func discoCell(c *pixel.Canvas, rng *rand.Rand, cx, cy int, col discoCellColors) {
	c.StrokeRect(cx, cy, cx+7, cy+7, col.grid)
	ix, iy := cx+1, cy+1
	c.FillRect(ix, iy, ix+5, iy+5, col.base)
	for _, p := range [4][2]int{{ix, iy}, {ix + 5, iy}, {ix, iy + 5}, {ix + 5, iy + 5}} {
		c.Set(p[0], p[1], col.dark)
	}
	c.FillRect(ix+1, iy+1, ix+4, iy+4, col.glow)
	c.FillRect(ix+2, iy+2, ix+3, iy+3, col.bright)
	c.Set(ix+2+rng.Intn(2), iy+2+rng.Intn(2), col.hot)
}

// discoCellClipped draws a lit cell with everything below maxY cut off,
// for the edge tile where the floor stops partway down.
func discoCellClipped(c *pixel.Canvas, rng *rand.Rand, cx, cy, maxY int, col discoCellColors) {
	bottom := min(cy+7, maxY)
	c.HLine(cx, cx+7, cy, col.grid)
	c.HLine(cx, cx+7, bottom, col.grid)
	c.VLine(cx, cy, bottom, col.grid)
	c.VLine(cx+7, cy, bottom, col.grid)

	ix, iy := cx+1, cy+1
	if iy > maxY {
		return
	}
	ib := min(iy+5, maxY)
	c.FillRect(ix, iy, ix+5, ib, col.base)
	for _, p := range [4][2]int{{ix, iy}, {ix + 5, iy}, {ix, ib}, {ix + 5, ib}} {
		c.Set(p[0], p[1], col.dark)
	}
	if iy+4 <= maxY {
		c.FillRect(ix+1, iy+1, ix+4, iy+4, col.glow)
	}
	if iy+3 <= maxY {
		c.FillRect(ix+2, iy+2, ix+3, iy+3, col.bright)
	}
	if iy+2 <= maxY {
		c.Set(ix+2+rng.Intn(2), iy+2, col.hot)
	}
}

// discoLitFloor fills a tile with a 4x4 grid of lit cells, then
// perturbs a few non-structural pixels for shimmer.
func discoLitFloor(c *pixel.Canvas, rng *rand.Rand, col discoCellColors) {
	c.Fill(col.dark)
	for row := 0; row < 4; row++ {
		for cell := 0; cell < 4; cell++ {
			discoCell(c, rng, cell*8, row*8, col)
		}
	}
	for i := 0; i < 12; i++ {
		x := 2 + rng.Intn(tileSize-4)
		y := 2 + rng.Intn(tileSize-4)
		p := c.At(x, y)
		if p == col.grid || p == col.dark {
			continue
		}
		s := [...]int{-15, -10, 10, 15}[rng.Intn(4)]
		c.Set(x, y, shiftRGB(p, s, s, s))
	}
}

func discoVIPLounge(c *pixel.Canvas, rng *rand.Rand) {
	c.Fill(discoCarpet)

	// Gold trim band along the top, notched every 4px.
	c.HLine(0, tileSize-1, 0, discoTrimBright)
	for x := 0; x < tileSize; x++ {
		col := discoTrim
		if rng.Intn(2) == 1 {
			col = discoTrimBright
		}
		c.Set(x, 1, col)
	}
	c.HLine(0, tileSize-1, 2, discoTrimDark)
	for x := 3; x < tileSize; x += 4 {
		c.Set(x, 1, discoTrimDark)
	}

	// Carpet pile.
	texture.Speckle(c, rng, texture.Rect{Y: 3, W: tileSize, H: tileSize - 3}, 80,
		[]color.RGBA{discoCarpetDark, discoCarpetLight, discoPile1, discoPile2, discoCarpet})
	for i := 0; i < 8; i++ {
		c.Set(rng.Intn(tileSize), 5+rng.Intn(tileSize-5), discoCarpetHi)
	}

	// Faint diagonal cross-hatch every 8px.
	for y := 4; y < tileSize; y += 8 {
		for x := 0; x < tileSize; x += 8 {
			col := discoCarpetDark
			if rng.Float64() >= 0.6 {
				col = discoPile1
			}
			c.Set(x, y, col)
			c.Set(x+1, y+1, col)
		}
	}

	// Shadow under the trim.
	for x := 0; x < tileSize; x++ {
		if rng.Float64() < 0.7 {
			c.Set(x, 3, discoCarpetDark)
		}
	}
}

// discoCone draws a speaker cone as concentric rings with a dust cap
// pixel at the center.
func discoCone(c *pixel.Canvas, cx, cy, r int) {
	c.FillEllipse(cx, cy, r, r, discoConeBase)
	c.StrokeEllipse(cx, cy, r, r, discoConeRing)
	if r > 2 {
		c.FillEllipse(cx, cy, r-1, r-1, discoConeMid)
		c.StrokeEllipse(cx, cy, r-1, r-1, discoConeRing)
	}
	if r > 3 {
		c.FillEllipse(cx, cy, r-2, r-2, discoConeBase)
		c.StrokeEllipse(cx, cy, r-2, r-2, discoConeRing)
	}
	if r > 2 {
		c.FillEllipse(cx, cy, max(r-3, 1), max(r-3, 1), discoConeCenter)
	}
	c.Set(cx, cy, discoConeDot)
}

func discoSpeakerStack(c *pixel.Canvas, rng *rand.Rand) {
	c.Fill(discoSpeakerBlack)

	// Chrome trim top and bottom with alternating sheen.
	c.FillRect(0, 0, tileSize-1, 1, discoChrome)
	c.FillRect(0, tileSize-2, tileSize-1, tileSize-1, discoChrome)
	for x := 1; x < tileSize-1; x += 2 {
		c.Set(x, 0, discoChromeBright)
	}
	for x := 0; x < tileSize; x += 2 {
		c.Set(x, tileSize-1, discoChromeDark)
	}

	// Recessed panel with a bevel.
	c.FillRect(2, 3, tileSize-3, tileSize-4, discoSpeakerPanel)
	c.HLine(2, tileSize-3, 3, discoSpeakerDark)
	c.VLine(2, 3, tileSize-4, discoSpeakerDark)
	c.VLine(tileSize-3, 3, tileSize-4, discoSpeakerBlack)
	c.HLine(2, tileSize-3, tileSize-4, discoSpeakerBlack)

	// Tweeter, woofer, mid.
	discoCone(c, 16, 8, 3)
	discoCone(c, 16, 17, 5)
	discoCone(c, 16, 25, 4)

	// Panel wear, only where the panel shows through.
	for i := 0; i < 15; i++ {
		x := 3 + rng.Intn(tileSize-6)
		y := 4 + rng.Intn(tileSize-8)
		if c.At(x, y) != discoSpeakerPanel {
			continue
		}
		c.Set(x, y, [...]color.RGBA{discoSpeakerBlack, discoSpeakerPanel, discoSpeakerDark}[rng.Intn(3)])
	}

	// Corner screws.
	for _, p := range [4][2]int{{4, 5}, {tileSize - 5, 5}, {4, tileSize - 6}, {tileSize - 5, tileSize - 6}} {
		c.Set(p[0], p[1], discoChromeDark)
	}
}

func discoBarCounter(c *pixel.Canvas, rng *rand.Rand) {
	// Front face below the counter.
	c.FillRect(0, 16, tileSize-1, tileSize-1, discoBarFront)
	c.HLine(0, tileSize-1, 16, discoBarFrontDark)
	c.HLine(0, tileSize-1, tileSize-1, discoBarFrontDark)
	c.VLine(10, 17, tileSize-2, discoBarFrontDark)
	c.VLine(21, 17, tileSize-2, discoBarFrontDark)
	texture.Speckle(c, rng, texture.Rect{X: 1, Y: 17, W: tileSize - 2, H: tileSize - 18}, 20,
		[]color.RGBA{discoBarFront, discoBarFrontDark, discoBarFront})

	// Wood counter top.
	c.FillRect(0, 10, tileSize-1, 15, discoBarWood)
	for y := 10; y < 16; y++ {
		for x := 0; x < tileSize; x++ {
			if rng.Float64() < 0.15 {
				c.Set(x, y, [...]color.RGBA{discoBarWoodDark, discoBarWoodGrain, discoBarWoodLight}[rng.Intn(3)])
			}
		}
	}
	for _, gy := range [2]int{11, 13} {
		for x := 0; x < tileSize; x++ {
			if rng.Float64() < 0.35 {
				c.Set(x, gy, discoBarWoodGrain)
			}
		}
	}
	for x := 0; x < tileSize; x++ {
		if rng.Float64() < 0.6 {
			c.Set(x, 10, discoBarWoodLight)
		}
	}

	// Brass rail with bracket studs.
	c.FillRect(0, 8, tileSize-1, 9, discoBrass)
	for x := 0; x < tileSize; x++ {
		if rng.Float64() < 0.4 {
			c.Set(x, 8, discoBrassBright)
		}
	}
	for x := 0; x < tileSize; x++ {
		if rng.Float64() < 0.3 {
			c.Set(x, 9, discoBrassDark)
		}
	}
	for x := 5; x < tileSize; x += 10 {
		c.Set(x, 9, discoChromeDark)
	}

	// Bottles lined up behind the rail.
	bottles := []struct {
		x      int
		col    color.RGBA
		height int
	}{
		{3, discoBottleGreen, 5},
		{8, discoBottleAmber, 6},
		{13, discoBottleBlue, 4},
		{18, discoBottleRed, 5},
		{23, discoBottleGreen, 6},
		{28, discoBottleAmber, 4},
	}
	for _, b := range bottles {
		top := 8 - b.height
		c.FillRect(b.x, top, b.x+1, 7, b.col)
		c.Set(b.x, top-1, discoBottleCap)
	}

	// Shadow under the counter lip.
	for x := 0; x < tileSize; x++ {
		if rng.Float64() < 0.5 {
			c.Set(x, 16, discoBarFrontDark)
		}
	}
}

func discoFloorEdge(c *pixel.Canvas, rng *rand.Rand) {
	// Lit floor above, clipped at row 20.
	c.FillRect(0, 0, tileSize-1, 20, discoPurple.dark)
	for row := 0; row < 3; row++ {
		for cell := 0; cell < 4; cell++ {
			scheme := discoPurple
			if (row+cell)%2 == 1 {
				scheme = discoCyan
			}
			discoCellClipped(c, rng, cell*8, row*8, 20, scheme)
		}
	}

	// Chrome lip.
	c.FillRect(0, 21, tileSize-1, 24, discoEdgeChrome)
	c.HLine(0, tileSize-1, 21, discoEdgeChromeBright)
	for x := 0; x < tileSize; x++ {
		if rng.Float64() < 0.3 {
			c.Set(x, 22, discoEdgeChromeBright)
		}
	}
	c.HLine(0, tileSize-1, 24, discoEdgeChromeDark)
	for x := 3; x < tileSize; x += 8 {
		c.Set(x, 22, discoChromeBright)
		c.Set(x, 23, discoChromeDark)
	}

	// Void below, stepped darker, with faint support beams.
	for y := 25; y < tileSize; y++ {
		col := discoEdgeVoid
		switch {
		case y < 27:
			col = discoEdgeShadowMid
		case y < 29:
			col = discoEdgeShadow
		}
		c.HLine(0, tileSize-1, y, col)
	}
	for x := 7; x < tileSize; x += 8 {
		for y := 25; y < tileSize; y++ {
			c.Set(x, y, shiftRGB(c.At(x, y), 5, 5, 5))
		}
	}
}
