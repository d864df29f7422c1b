package recipes

import (
	"image/color"
	"math/rand"

	"github.com/funkworks/discoforge/pkg/pixel"
	"github.com/funkworks/discoforge/pkg/texture"
)

// Venice Beach palette: golden sand, sun-bleached boardwalk, gym
// concrete and the ocean.
var (
	veniceSandLight   = rgb(235, 210, 165)
	veniceSandMid     = rgb(215, 190, 145)
	veniceSandDark    = rgb(195, 170, 130)
	veniceSandWet     = rgb(170, 150, 115)
	veniceSandWetDark = rgb(145, 130, 100)
	veniceBoardwalk   = rgb(180, 155, 120)
	veniceBoardLight  = rgb(200, 175, 140)
	veniceBoardDark   = rgb(140, 120, 90)
	veniceBoardGrain  = rgb(160, 135, 105)
	veniceConcrete    = rgb(170, 170, 165)
	veniceConcreteHi  = rgb(190, 190, 185)
	veniceConcreteLo  = rgb(140, 140, 135)
	veniceCrack       = rgb(110, 110, 105)
	veniceOceanTop    = rgb(30, 120, 160)
	veniceOceanDark   = rgb(15, 75, 120)
	veniceFoam        = rgb(200, 220, 235)
	veniceOceanHi     = rgb(80, 170, 210)
)

// veniceTiles renders the Venice Beach tileset: dry sand, wet sand,
// boardwalk planks, gym concrete, ocean surface and the boardwalk-to-
// sand edge tile.
func veniceTiles(ctx *Context) error {
	return renderStrip(ctx, "tileset_venice.png", []func(*pixel.Canvas, *rand.Rand){
		func(c *pixel.Canvas, rng *rand.Rand) { veniceSand(c, rng, false) },
		func(c *pixel.Canvas, rng *rand.Rand) { veniceSand(c, rng, true) },
		veniceBoardwalkTile,
		veniceConcreteTile,
		veniceOcean,
		veniceBoardwalkEdge,
	})
}

func veniceSand(c *pixel.Canvas, rng *rand.Rand, wet bool) {
	base, dark := veniceSandLight, veniceSandDark
	if wet {
		base, dark = veniceSandWet, veniceSandWetDark
	}
	c.Fill(base)
	texture.Speckle(c, rng, tileRect(), 40, []color.RGBA{veniceSandMid, dark, base})

	// Sometimes a shell or pebble.
	if rng.Float64() < 0.5 {
		sx := 4 + rng.Intn(tileSize-8)
		sy := 4 + rng.Intn(tileSize-8)
		shell := [...]color.RGBA{rgb(240, 230, 220), rgb(220, 200, 180), rgb(200, 190, 170)}[rng.Intn(3)]
		c.FillRect(sx, sy, sx+2, sy+1, shell)
	}
}

func veniceBoardwalkTile(c *pixel.Canvas, rng *rand.Rand) {
	texture.WoodGrain(c, rng, tileRect(), texture.WoodStyle{
		Base:  veniceBoardwalk,
		Gap:   veniceBoardDark,
		Grain: veniceBoardGrain,
		Light: veniceBoardLight,
	})

	// Nail heads on each plank.
	for _, ny := range [4]int{4, 12, 20, 28} {
		c.Set(8, ny, veniceBoardDark)
		c.Set(24, ny, veniceBoardDark)
	}
}

func veniceConcreteTile(c *pixel.Canvas, rng *rand.Rand) {
	c.Fill(veniceConcrete)
	texture.Speckle(c, rng, tileRect(), 30,
		[]color.RGBA{veniceConcreteHi, veniceConcreteLo, veniceConcrete})

	// Expansion joint.
	c.VLine(16, 0, tileSize-1, veniceCrack)

	if rng.Float64() < 0.4 {
		cx := 4 + rng.Intn(25)
		cy := 4 + rng.Intn(25)
		for i := 0; i < 5; i++ {
			c.Set(cx+rng.Intn(3)-1, cy+i, veniceCrack)
		}
	}
}

// veniceOcean draws the water surface: a vertical gradient, a few wave
// highlights and foam flecks along the top edge.
func veniceOcean(c *pixel.Canvas, rng *rand.Rand) {
	texture.VGradient(c, tileRect(), veniceOceanTop, veniceOceanDark)

	for _, wy := range [3]int{6, 14, 22} {
		wx := rng.Intn(9)
		c.HLine(wx, wx+10+rng.Intn(11), wy, veniceOceanHi)
	}

	for x := 0; x < tileSize; x++ {
		if rng.Float64() < 0.3 {
			c.Set(x, 0, veniceFoam)
		}
		if rng.Float64() < 0.15 {
			c.Set(x, 1, pixel.WithAlpha(veniceFoam, 200))
		}
	}
}

// veniceBoardwalkEdge draws the step off the boardwalk onto the sand.
func veniceBoardwalkEdge(c *pixel.Canvas, rng *rand.Rand) {
	c.FillRect(0, 0, tileSize-1, 15, veniceBoardwalk)
	c.HLine(0, tileSize-1, 7, veniceBoardDark)
	for y := 0; y < 16; y++ {
		if rng.Float64() < 0.15 {
			length := 6 + rng.Intn(13)
			sx := rng.Intn(tileSize - length + 1)
			c.HLine(sx, min(sx+length, tileSize-1), y, veniceBoardGrain)
		}
	}

	c.HLine(0, tileSize-1, 15, veniceBoardDark)
	c.HLine(0, tileSize-1, 16, rgb(120, 100, 75))

	c.FillRect(0, 17, tileSize-1, tileSize-1, veniceSandLight)
	texture.Speckle(c, rng, texture.Rect{Y: 17, W: tileSize, H: tileSize - 17}, 15,
		[]color.RGBA{veniceSandMid, veniceSandDark})
}
