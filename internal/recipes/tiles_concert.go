package recipes

import (
	"image/color"
	"math/rand"

	"github.com/funkworks/discoforge/pkg/pixel"
	"github.com/funkworks/discoforge/pkg/texture"
)

// Concert hall palette: dark stage wood, backstage concrete, amp black
// with gold trim, and the near-black crowd pit.
var (
	concertStageDark    = rgb(60, 40, 25)
	concertStageMid     = rgb(80, 55, 35)
	concertStageLight   = rgb(95, 65, 42)
	concertStageGrain   = rgb(70, 48, 30)
	concertStageGap     = rgb(35, 22, 12)
	concertLightWood    = rgb(110, 78, 50)
	concertTape         = rgb(170, 170, 175)
	concertTapeDark     = rgb(140, 140, 145)
	concertConcrete     = rgb(100, 100, 98)
	concertConcreteHi   = rgb(120, 120, 118)
	concertConcreteDark = rgb(75, 75, 73)
	concertCrack        = rgb(55, 55, 53)
	concertAmpBlack     = rgb(25, 25, 28)
	concertAmpDark      = rgb(35, 35, 38)
	concertGrille       = rgb(50, 50, 55)
	concertGrilleLight  = rgb(65, 65, 70)
	concertGold         = rgb(200, 170, 50)
	concertChrome       = rgb(180, 185, 195)
	concertCrowdDark    = rgb(12, 10, 15)
	concertSilhouette   = rgb(25, 20, 30)
	concertHead         = rgb(30, 25, 35)
	concertPhoneGlow    = rgb(180, 200, 255)
	concertPhoneGlow2   = rgb(200, 180, 255)
	concertMetalLip     = rgb(140, 145, 155)
	concertMetalLight   = rgb(180, 185, 195)
	concertLEDAmber     = rgb(255, 180, 40)
	concertLEDDim       = rgb(180, 120, 20)
	concertVoid         = rgb(8, 5, 10)
)

// concertTiles renders the concert hall tileset: stage planks, taped
// stage planks, backstage concrete, amp wall, crowd pit and the stage
// edge with its LED strip.
func concertTiles(ctx *Context) error {
	return renderStrip(ctx, "tileset_concert.png", []func(*pixel.Canvas, *rand.Rand){
		func(c *pixel.Canvas, rng *rand.Rand) { concertStageFloor(c, rng, false) },
		func(c *pixel.Canvas, rng *rand.Rand) { concertStageFloor(c, rng, true) },
		concertBackstage,
		concertAmpWall,
		concertCrowd,
		concertStageEdge,
	})
}

// concertStageFloor draws the plank stage. The taped variant uses the
// lighter wood and drops a gaffer tape mark across the middle.
func concertStageFloor(c *pixel.Canvas, rng *rand.Rand, taped bool) {
	base, mid := concertStageDark, concertStageMid
	if taped {
		base, mid = concertLightWood, rgb(100, 70, 45)
	}
	c.Fill(base)

	for _, y := range [4]int{7, 15, 23, 31} {
		c.HLine(0, tileSize-1, y, concertStageGap)
	}

	for y := 0; y < tileSize; y++ {
		if rng.Float64() < 0.25 {
			length := 6 + rng.Intn(17)
			sx := rng.Intn(tileSize - length + 1)
			c.HLine(sx, sx+length, y, concertStageGrain)
		}
	}

	// Light catching the top of each plank.
	for _, top := range [4]int{0, 8, 16, 24} {
		for x := 0; x < tileSize; x++ {
			if rng.Float64() < 0.15 {
				c.Set(x, top+1, mid)
			}
		}
	}

	if taped {
		tapeY := 10 + rng.Intn(11)
		c.FillRect(4, tapeY, tileSize-4, tapeY+2, concertTape)
		c.FillRect(5, tapeY, tileSize-5, tapeY+1, concertTapeDark)
	}

	for i := 0; i < 2; i++ {
		sx := 2 + rng.Intn(tileSize-5)
		sy := 2 + rng.Intn(tileSize-5)
		c.Set(sx, sy, concertStageLight)
	}
}

func concertBackstage(c *pixel.Canvas, rng *rand.Rand) {
	c.Fill(concertConcrete)
	texture.Speckle(c, rng, tileRect(), 35,
		[]color.RGBA{concertConcreteHi, concertConcreteDark, concertConcrete})

	// Expansion joint.
	c.VLine(16, 0, tileSize-1, concertCrack)

	// Hairline cracks wandering downward.
	for i := 0; i < 2; i++ {
		cx := 4 + rng.Intn(25)
		cy := 4 + rng.Intn(25)
		length := 4 + rng.Intn(5)
		for j := 0; j < length; j++ {
			dx := rng.Intn(3) - 1
			px := min(max(cx+dx, 0), tileSize-1)
			py := min(cy+j, tileSize-1)
			c.Set(px, py, concertCrack)
		}
	}

	// Scuff streaks.
	for i := 0; i < 3; i++ {
		sx := 2 + rng.Intn(tileSize-7)
		sy := 2 + rng.Intn(tileSize-3)
		c.HLine(sx, sx+2+rng.Intn(4), sy, concertConcreteDark)
	}
}

func concertAmpWall(c *pixel.Canvas, _ *rand.Rand) {
	c.Fill(concertAmpBlack)
	c.StrokeRect(1, 1, tileSize-2, tileSize-2, concertAmpDark)

	// Gold logo strip.
	c.FillRect(4, 2, tileSize-4, 5, concertAmpDark)
	for lx := 6; lx < tileSize-6; lx += 2 {
		c.Set(lx, 3, concertGold)
		c.Set(lx, 4, concertGold)
	}

	// Grille cloth dot pattern.
	for gy := 8; gy < tileSize-4; gy += 2 {
		for gx := 3; gx < tileSize-3; gx += 2 {
			col := concertGrilleLight
			if (gx+gy)%4 == 0 {
				col = concertGrille
			}
			c.Set(gx, gy, col)
		}
	}

	// Speaker cones showing through the cloth.
	for _, cy := range [2]int{14, 24} {
		c.StrokeEllipse(16, cy, 5, 5, concertGrilleLight)
		c.FillEllipse(16, cy, 2, 2, concertAmpBlack)
	}

	// Chrome corner protectors.
	for _, p := range [4][2]int{{1, 1}, {tileSize - 3, 1}, {1, tileSize - 3}, {tileSize - 3, tileSize - 3}} {
		c.FillRect(p[0], p[1], p[0]+1, p[1]+1, concertChrome)
	}
}

// concertCrowd draws the pit: head and shoulder silhouettes along the
// top, a couple of raised arms, phone screens, and a falloff to black.
func concertCrowd(c *pixel.Canvas, rng *rand.Rand) {
	c.Fill(concertCrowdDark)

	for hx := 3; hx < tileSize-3; hx += 6 {
		hy := 2 + rng.Intn(7)
		c.FillEllipse(hx, hy+2, 2, 2, concertSilhouette)
		c.FillRect(hx-3, hy+4, hx+3, hy+8, concertHead)
	}

	for i := 0; i < 2; i++ {
		ax := 4 + rng.Intn(tileSize-7)
		ay := rng.Intn(7)
		c.VLine(ax, ay, ay+6, concertSilhouette)
	}

	for i := 0; i < 3; i++ {
		px := 2 + rng.Intn(tileSize-5)
		py := 4 + rng.Intn(13)
		glow := concertPhoneGlow
		if rng.Intn(2) == 1 {
			glow = concertPhoneGlow2
		}
		c.FillRect(px, py, px+1, py+2, glow)
	}

	// Fade the lower half into darkness.
	for y := tileSize / 2; y < tileSize; y++ {
		f := 1 - float64(y-tileSize/2)/float64(tileSize/2)*0.5
		for x := 0; x < tileSize; x++ {
			c.Set(x, y, pixel.Scale(c.At(x, y), f))
		}
	}
}

// concertStageEdge draws the drop from the stage: planks, a metal lip,
// the amber LED strip facing the crowd, and the void underneath.
func concertStageEdge(c *pixel.Canvas, rng *rand.Rand) {
	c.FillRect(0, 0, tileSize-1, 13, concertStageDark)
	c.HLine(0, tileSize-1, 6, concertStageGap)
	for y := 0; y < 14; y++ {
		if rng.Float64() < 0.2 {
			length := 5 + rng.Intn(12)
			sx := rng.Intn(tileSize - length + 1)
			c.HLine(sx, sx+length, y, concertStageGrain)
		}
	}

	c.FillRect(0, 14, tileSize-1, 15, concertMetalLip)
	for x := 0; x < tileSize; x++ {
		if rng.Float64() < 0.3 {
			c.Set(x, 14, concertMetalLight)
		}
	}

	// LED strip, lit in pairs.
	for x := 0; x < tileSize; x++ {
		if x%4 < 2 {
			c.Set(x, 16, concertLEDAmber)
			c.Set(x, 17, concertLEDAmber)
			c.Set(x, 18, concertLEDDim)
		} else {
			c.Set(x, 16, concertLEDDim)
			c.Set(x, 17, concertAmpBlack)
			c.Set(x, 18, concertAmpBlack)
		}
	}

	c.FillRect(0, 19, tileSize-1, tileSize-1, concertVoid)
	for y := 20; y < tileSize; y++ {
		if rng.Float64() < 0.1 {
			c.Set(rng.Intn(tileSize), y, rgb(15, 12, 18))
		}
	}
}
