package recipes

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/funkworks/discoforge/pkg/pixel"
	"github.com/funkworks/discoforge/pkg/texture"
)

// The disco floor backdrop is three 640x360 layers scrolled at different
// speeds: a ceiling layer with the mirror ball, a mid layer with the DJ
// booth and VIP ropes, and a near layer with the lit dance floor.
const (
	prlxW = 640
	prlxH = 360
)

// Bee Gees Disco Floor palette.
var (
	prlxCeilTop     = rgb(8, 5, 15)
	prlxCeilBot     = rgb(18, 12, 30)
	prlxRafter      = rgb(12, 8, 20)
	prlxRafterLight = rgb(22, 16, 35)
	prlxRafterBolt  = rgb(60, 55, 70)

	prlxBallSilver = rgb(180, 185, 195)
	prlxBallHi     = rgb(240, 245, 255)
	prlxBallDark   = rgb(100, 105, 115)
	prlxBallFrame  = rgb(70, 72, 80)

	prlxBeamPink     = rgb(255, 100, 150)
	prlxBeamBlue     = rgb(100, 150, 255)
	prlxBeamGold     = rgb(255, 220, 100)
	prlxBeamWhite    = rgb(240, 240, 255)
	prlxSparkleWhite = rgb(250, 250, 255)
	prlxSparkleGold  = rgb(255, 230, 140)

	prlxSpeakerBlack = rgb(15, 15, 18)
	prlxSpeakerBody  = rgb(22, 22, 26)
	prlxSpeakerCone  = rgb(30, 30, 35)
	prlxSpeakerCap   = rgb(20, 20, 24)
	prlxChrome       = rgb(160, 165, 175)
	prlxChromeDark   = rgb(110, 112, 120)

	prlxBoothDark  = rgb(25, 20, 30)
	prlxBoothMid   = rgb(35, 28, 42)
	prlxBoothPanel = rgb(30, 25, 36)
	prlxSilhouette = rgb(18, 14, 22)
	prlxLEDRed     = rgb(255, 40, 40)
	prlxLEDGreen   = rgb(40, 255, 60)
	prlxLEDBlue    = rgb(60, 80, 255)
	prlxLEDAmber   = rgb(255, 180, 40)
	prlxPlatterRim = rgb(20, 18, 24)
	prlxPlatter    = rgb(40, 38, 45)
	prlxLabelRed   = rgb(180, 50, 50)

	prlxPostGold   = rgb(200, 170, 60)
	prlxPostHi     = rgb(230, 200, 90)
	prlxPostDark   = rgb(150, 125, 40)
	prlxVelvet     = rgb(160, 30, 40)
	prlxVelvetHi   = rgb(190, 50, 60)
	prlxVelvetDark = rgb(120, 20, 30)

	prlxNeonMagenta = rgb(255, 50, 200)
	prlxNeonCyan    = rgb(50, 220, 255)
	prlxNeonYellow  = rgb(255, 240, 50)

	prlxTileCenter = rgb(220, 220, 235)
	prlxFog        = rgb(200, 200, 210)

	prlxCupRed      = rgb(180, 30, 30)
	prlxCupRim      = rgb(140, 20, 20)
	prlxGlass       = rgb(180, 190, 200)
	prlxGlassHi     = rgb(220, 225, 240)
	prlxBottle      = rgb(30, 80, 40)
	prlxBottleLabel = rgb(200, 195, 180)
	prlxStrawPink   = rgb(220, 100, 130)

	prlxTileSchemes = [4][2]color.RGBA{
		{rgb(140, 40, 160), rgb(170, 60, 190)},
		{rgb(40, 130, 160), rgb(60, 160, 190)},
		{rgb(160, 40, 100), rgb(190, 60, 130)},
		{rgb(50, 50, 180), rgb(70, 70, 210)},
	}
)

func discoParallax(ctx *Context) error {
	if err := prlxSkyLayer(ctx); err != nil {
		return err
	}
	if err := prlxMidLayer(ctx); err != nil {
		return err
	}
	return prlxNearLayer(ctx)
}

// prlxSkyLayer renders the venue ceiling: gradient, rafters, colored
// spotlight washes, and the mirror ball with its beams and sparkles.
func prlxSkyLayer(ctx *Context) error {
	c, err := pixel.New(prlxW, prlxH)
	if err != nil {
		return err
	}
	rng := ctx.Rng
	full := texture.Rect{W: prlxW, H: prlxH}

	texture.VGradient(c, full, prlxCeilTop, prlxCeilBot)

	// Rafters with bolt joints, plus a horizontal beam across the top.
	for rx := 0; rx < prlxW; rx += 80 {
		c.FillRect(rx, 0, rx+4, 60, prlxRafter)
		c.VLine(rx, 0, 60, prlxRafterLight)
		c.Set(rx+2, 15, prlxRafterBolt)
		c.Set(rx+2, 45, prlxRafterBolt)
	}
	c.FillRect(0, 55, prlxW-1, 62, prlxRafter)
	c.HLine(0, prlxW-1, 56, prlxRafterLight)
	c.HLine(0, prlxW-1, 61, prlxRafterLight)

	spots := []struct {
		x         int
		col       color.RGBA
		intensity float64
		spread    float64
	}{
		{40, prlxBeamPink, 0.5, 35},
		{160, prlxBeamBlue, 0.45, 30},
		{480, prlxBeamGold, 0.5, 32},
		{600, prlxBeamPink, 0.4, 28},
		{100, prlxBeamGold, 0.35, 25},
		{540, prlxBeamBlue, 0.42, 30},
	}
	for _, s := range spots {
		texture.LightCone(c, s.x, 0, s.col, s.intensity, s.spread, 200)
	}

	// Beams radiate out before the ball is drawn so it covers their roots.
	ballX, ballY := prlxW/2, 55
	const ballR = 20
	texture.Beams(c, rng, ballX, ballY, 18, 25, 120, 220, []color.RGBA{
		prlxBeamPink, prlxBeamBlue, prlxBeamGold, prlxBeamWhite, prlxBeamPink, prlxBeamBlue,
	})

	c.VLine(ballX, 0, ballY-ballR, prlxBallFrame)
	texture.FacetSphere(c, ballX, ballY, ballR, texture.SphereStyle{
		Bright:    prlxBallSilver,
		Dark:      prlxBallDark,
		Highlight: prlxBallHi,
	})
	texture.Glow(c, ballX, ballY, ballR, rgb(255, 255, 255), 1)

	texture.Sparkles(c, rng, full, 250, []color.RGBA{prlxSparkleWhite, prlxSparkleGold})

	// Spotlight fixture housings at the cone apexes.
	for _, fx := range [5]int{40, 160, 480, 540, 600} {
		c.FillRect(fx-5, 0, fx+5, 6, rgb(40, 38, 48))
		c.FillRect(fx-3, 6, fx+3, 10, rgb(55, 52, 62))
		c.Set(fx, 10, rgb(200, 200, 210))
	}

	return ctx.SaveImage(ctx.SpritePath("environment", "parallax_disco_floor_sky.png"), c)
}

// prlxMidLayer renders the transparent mid layer: speaker stacks, the
// DJ booth with its silhouetted DJ, VIP rope lines, and the neon sign.
func prlxMidLayer(ctx *Context) error {
	c, err := pixel.New(prlxW, prlxH)
	if err != nil {
		return err
	}
	rng := ctx.Rng
	const groundY = 300

	prlxSpeakerStack(c, 10, groundY, 3)
	prlxSpeakerStack(c, 55, groundY, 2)
	prlxSpeakerStack(c, 585, groundY, 3)
	prlxSpeakerStack(c, 540, groundY, 2)

	prlxDJBooth(c, rng, groundY)

	for _, posts := range [2][3]int{{120, 170, 220}, {420, 470, 520}} {
		ropeY := groundY - 35
		for _, px := range posts {
			prlxRopePost(c, px, groundY, 35)
		}
		for i := 0; i < len(posts)-1; i++ {
			prlxVelvetRope(c, posts[i]+3, posts[i+1]+2, ropeY, 6)
		}
	}

	prlxNeonSign(c, 275, 170)

	return ctx.SaveImage(ctx.SpritePath("environment", "parallax_disco_floor_mid.png"), c)
}

// prlxSpeakerStack stacks count speaker cabinets upward from yBottom.
func prlxSpeakerStack(c *pixel.Canvas, x, yBottom, count int) {
	const cabW, cabH = 40, 32
	for i := 0; i < count; i++ {
		cy := yBottom - (i+1)*cabH
		c.FillRect(x, cy, x+cabW, cy+cabH, prlxSpeakerBlack)
		c.FillRect(x+1, cy+1, x+cabW-1, cy+cabH-1, prlxSpeakerBody)
		c.HLine(x, x+cabW, cy, prlxChrome)
		c.HLine(x, x+cabW, cy+cabH, prlxChromeDark)
		c.VLine(x, cy, cy+cabH, prlxChromeDark)
		c.VLine(x+cabW, cy, cy+cabH, prlxChromeDark)

		coneX, coneY := x+cabW/2, cy+cabH/2
		c.FillEllipse(coneX, coneY, 11, 11, prlxSpeakerCone)
		c.StrokeEllipse(coneX, coneY, 11, 11, prlxSpeakerBlack)
		c.FillEllipse(coneX, coneY, 7, 7, prlxSpeakerBlack)
		c.StrokeEllipse(coneX, coneY, 7, 7, prlxSpeakerCone)
		c.FillEllipse(coneX, coneY, 3, 3, prlxSpeakerCap)

		c.Set(x+3, cy+3, prlxChrome)
		c.Set(x+cabW-3, cy+3, prlxChrome)
		c.Set(x+3, cy+cabH-3, prlxChrome)
		c.Set(x+cabW-3, cy+cabH-3, prlxChrome)
	}
}

func prlxDJBooth(c *pixel.Canvas, rng *rand.Rand, groundY int) {
	const (
		boothX = 250
		boothW = 140
		boothH = 55
	)
	boothY := groundY - boothH

	// Stage riser under the booth.
	c.FillRect(boothX-10, groundY-8, boothX+boothW+10, groundY, rgb(28, 22, 34))
	c.HLine(boothX-10, boothX+boothW+10, groundY-8, rgb(45, 38, 55))

	// Console body and front equipment panel.
	c.FillRect(boothX, boothY+10, boothX+boothW, boothY+boothH, prlxBoothDark)
	c.FillRect(boothX+2, boothY+12, boothX+boothW-2, boothY+boothH-2, prlxBoothMid)
	c.FillRect(boothX+5, boothY+boothH-18, boothX+boothW-5, boothY+boothH-3, prlxBoothPanel)

	ledSeq := []color.RGBA{
		prlxLEDRed, prlxLEDGreen, prlxLEDBlue, prlxLEDAmber, prlxLEDRed,
		prlxLEDGreen, prlxLEDBlue, prlxLEDAmber, prlxLEDRed, prlxLEDGreen,
	}
	for i, lc := range ledSeq {
		lx := boothX + 12 + i*12
		ly := boothY + boothH - 12
		c.Set(lx, ly, lc)
		c.Set(lx, ly+4, ledSeq[rng.Intn(len(ledSeq))])
	}

	// VU meters: green at the bottom shading to red at the peak.
	for i := 0; i < 14; i++ {
		lx := boothX + 10 + i*9
		ly := boothY + boothH - 7
		barH := 1 + rng.Intn(5)
		for bh := 0; bh < barH; bh++ {
			bc := prlxLEDGreen
			switch {
			case bh >= 4:
				bc = prlxLEDRed
			case bh >= 3:
				bc = prlxLEDAmber
			}
			c.Set(lx, ly-bh, bc)
		}
	}

	for _, off := range [2]int{25, 95} {
		prlxTurntable(c, boothX+off, boothY+28)
	}

	// Mixer with five fader slots between the turntables.
	mixX, mixY := boothX+50, boothY+18
	c.FillRect(mixX, mixY, mixX+40, mixY+25, rgb(32, 28, 38))
	for fi := 0; fi < 5; fi++ {
		fx := mixX + 5 + fi*7
		c.VLine(fx, mixY+4, mixY+20, rgb(45, 40, 52))
		fkY := mixY + 6 + rng.Intn(11)
		c.FillRect(fx-1, fkY, fx+1, fkY+3, prlxChrome)
	}

	// DJ silhouette leaning over the decks.
	djX := boothX + boothW/2
	headY := boothY - 10
	c.FillEllipse(djX, headY-4, 6, 6, prlxSilhouette)
	for deg := 200; deg <= 340; deg += 4 {
		rad := float64(deg) * math.Pi / 180
		hx := djX + int(8*math.Cos(rad))
		hy := headY - 5 + int(7*math.Sin(rad))
		c.FillRect(hx, hy, hx+1, hy+1, rgb(40, 36, 48))
	}
	c.FillRect(djX-9, headY-5, djX-7, headY+1, rgb(45, 40, 50))
	c.FillRect(djX+7, headY-5, djX+9, headY+1, rgb(45, 40, 50))
	topY, botY := headY+2, boothY+12
	for y := topY; y <= botY; y++ {
		t := float64(y-topY) / float64(botY-topY)
		hw := int(math.Round(10 + 4*t))
		c.HLine(djX-hw, djX+hw, y, prlxSilhouette)
	}
	c.ThickLine(djX-10, headY+8, djX-25, boothY+20, 3, prlxSilhouette)
	c.ThickLine(djX+10, headY+8, djX+25, boothY+20, 3, prlxSilhouette)
}

func prlxTurntable(c *pixel.Canvas, cx, cy int) {
	const r = 14
	c.FillEllipse(cx, cy, r, r, prlxPlatterRim)
	c.FillEllipse(cx, cy, r-2, r-2, prlxPlatter)
	for gr := 3; gr < r-2; gr += 2 {
		c.StrokeEllipse(cx, cy, gr, gr, prlxPlatterRim)
	}
	c.FillEllipse(cx, cy, 4, 4, prlxLabelRed)
	c.Set(cx, cy, rgb(60, 60, 65))
	armX, armY := cx+r-2, cy-r+2
	c.Line(armX, armY, armX+8, armY-6, prlxChrome)
	c.Line(armX+8, armY-6, armX+10, armY-4, prlxChrome)
}

// prlxRopePost draws a brass VIP stanchion standing on yBottom.
func prlxRopePost(c *pixel.Canvas, x, yBottom, height int) {
	c.FillRect(x-4, yBottom-3, x+8, yBottom, prlxPostDark)
	c.FillEllipse(x+2, yBottom-3, 5, 2, prlxPostGold)
	c.FillRect(x, yBottom-height, x+4, yBottom-3, prlxPostGold)
	c.VLine(x+1, yBottom-height+2, yBottom-5, prlxPostHi)
	topY := yBottom - height
	c.FillEllipse(x+2, topY-2, 3, 3, prlxPostHi)
	c.Set(x+1, topY-3, rgb(255, 240, 140))
}

// prlxVelvetRope hangs a rope between two posts at height y, sagging
// toward the middle, with gold attachment collars at both ends.
func prlxVelvetRope(c *pixel.Canvas, x1, x2, y int, sag float64) {
	texture.Rope(c, x1, y, x2, y, sag, texture.RopeStyle{
		Highlight: prlxVelvetHi,
		Body:      prlxVelvet,
		Shadow:    prlxVelvetDark,
	})
	c.FillRect(x1, y-2, x1+2, y+3, prlxPostGold)
	c.FillRect(x2, y-2, x2+2, y+3, prlxPostGold)
}

// prlxNeonSign renders the glowing DISCO marquee above the booth. Each
// letter gets its own tube color and a soft halo that tints the backing
// panel where it is lit and leaves faint haze where it is not.
func prlxNeonSign(c *pixel.Canvas, signX, signY int) {
	const (
		scale = 4
		glowR = 6
	)
	letterW := texture.GlyphW * scale
	letterH := texture.GlyphH * scale
	advance := (texture.GlyphW + 1) * scale
	totalW := texture.TextWidth("DISCO", scale)

	c.FillRect(signX-5, signY-5, signX+totalW+5, signY+letterH+5, rgba(15, 10, 20, 200))

	word := "DISCO"
	cols := [5]color.RGBA{prlxNeonMagenta, prlxNeonCyan, prlxNeonYellow, prlxNeonMagenta, prlxNeonCyan}
	for i := 0; i < len(word); i++ {
		texture.Text(c, signX+i*advance, signY, word[i:i+1], cols[i], scale)
	}

	for i := 0; i < len(word); i++ {
		lx := signX + i*advance
		col := cols[i]
		for gx := lx - glowR; gx < lx+letterW+glowR; gx++ {
			for gy := signY - glowR; gy < signY+letterH+glowR; gy++ {
				dx := max(lx-gx, 0, gx-(lx+letterW-1))
				dy := max(signY-gy, 0, gy-(signY+letterH-1))
				d := math.Sqrt(float64(dx*dx + dy*dy))
				if d <= 0 || d >= glowR {
					continue
				}
				in := (1 - d/glowR) * 0.3
				if p := c.At(gx, gy); p.A > 0 {
					c.Add(gx, gy, col, in)
				} else if a := int(255 * in * 0.4); a > 0 {
					c.Set(gx, gy, color.RGBA{
						R: uint8(float64(col.R) * in * 0.5),
						G: uint8(float64(col.G) * in * 0.5),
						B: uint8(float64(col.B) * in * 0.5),
						A: uint8(a),
					})
				}
			}
		}
	}
}

// prlxNearLayer renders the transparent near layer: lit dance floor
// tiles under a band of floor fog, strewn with party debris.
func prlxNearLayer(ctx *Context) error {
	c, err := pixel.New(prlxW, prlxH)
	if err != nil {
		return err
	}
	rng := ctx.Rng
	const groundY = 310

	prlxDanceFloor(c, groundY)
	prlxFloorFog(c, rng, groundY)
	prlxDebris(c, rng, groundY)

	return ctx.SaveImage(ctx.SpritePath("environment", "parallax_disco_floor_near.png"), c)
}

func prlxDanceFloor(c *pixel.Canvas, groundY int) {
	const tileW, tileH = 25, 14
	grout := rgba(10, 10, 12, 200)

	for row := 0; row < 4; row++ {
		ty := groundY + row*tileH
		if ty+tileH > prlxH {
			break
		}
		for col := 0; col <= prlxW/tileW; col++ {
			tx := col * tileW
			base := prlxTileSchemes[(row+col)%len(prlxTileSchemes)][0]

			c.FillRect(tx+1, ty+1, tx+tileW-1, ty+tileH-1, base)
			// Grout seams replace outright so seams stay translucent.
			for x := tx; x <= tx+tileW; x++ {
				c.Set(x, ty, grout)
			}
			for y := ty; y <= ty+tileH; y++ {
				c.Set(tx, y, grout)
			}

			// Lit center fading out toward the tile edges.
			cx, cy := tx+tileW/2, ty+tileH/2
			glowR := min(tileW, tileH) / 3
			for gy := cy - glowR; gy <= cy+glowR; gy++ {
				for gx := cx - glowR; gx <= cx+glowR; gx++ {
					dx, dy := gx-cx, gy-cy
					d := math.Sqrt(float64(dx*dx + dy*dy))
					if d >= float64(glowR) {
						continue
					}
					p := c.At(gx, gy)
					if p.A == 0 {
						continue
					}
					t := 1 - d/float64(glowR)
					c.Mix(gx, gy, pixel.WithAlpha(prlxTileCenter, p.A), t*0.5)
				}
			}
		}
	}

	// Chrome strip along the floor's leading edge.
	for x := 0; x < prlxW; x++ {
		c.Set(x, groundY-1, rgba(120, 122, 130, 200))
		c.Set(x, groundY, rgba(80, 82, 90, 220))
		c.Set(x, groundY+1, rgba(80, 82, 90, 220))
	}
}

// prlxFogPixel lays haze over one pixel: lit pixels are tinted toward
// the fog color keeping their alpha, bare ones get a faint fog dot.
func prlxFogPixel(c *pixel.Canvas, x, y, alpha int) {
	if p := c.At(x, y); p.A > 0 {
		c.Mix(x, y, pixel.WithAlpha(prlxFog, p.A), float64(alpha)/255)
	} else {
		c.Set(x, y, pixel.WithAlpha(prlxFog, uint8(alpha)))
	}
}

func prlxFloorFog(c *pixel.Canvas, rng *rand.Rand, groundY int) {
	// Layered sine bands approximate drifting smoke, thickest at the
	// floor line and thinning above and below it.
	for fy := groundY - 15; fy < min(groundY+20, prlxH); fy++ {
		centerDist := math.Abs(float64(fy-groundY)) / 20
		baseAlpha := int(50 * (1 - centerDist))
		if baseAlpha < 2 {
			continue
		}
		for fx := 0; fx < prlxW; fx++ {
			noise := math.Sin(float64(fx)*0.02+float64(fy)*0.1)*0.3 +
				math.Sin(float64(fx)*0.05-float64(fy)*0.03)*0.2 +
				math.Sin(float64(fx)*0.01+float64(fy)*0.07)*0.5
			noise = (noise + 1) / 2
			alpha := int(float64(baseAlpha) * noise)
			if alpha < 2 {
				continue
			}
			prlxFogPixel(c, fx, fy, alpha)
		}
	}

	// A few thicker wisps drifting across the floor line.
	for i := 0; i < 8; i++ {
		wcx := 40 + rng.Intn(prlxW-79)
		wcy := groundY - 8 + rng.Intn(19)
		ww := 50 + rng.Intn(81)
		wh := 6 + rng.Intn(9)
		for wx := wcx - ww/2; wx < wcx+ww/2; wx++ {
			if wx < 0 || wx >= prlxW {
				continue
			}
			for wy := wcy - wh/2; wy < wcy+wh/2; wy++ {
				if wy < 0 || wy >= prlxH {
					continue
				}
				dx := float64(wx-wcx) / (float64(ww) / 2)
				dy := float64(wy-wcy) / (float64(wh) / 2)
				d := dx*dx + dy*dy
				if d < 1 && rng.Float64() < (1-d)*0.5 {
					prlxFogPixel(c, wx, wy, int(40*(1-d)))
				}
			}
		}
	}
}

// prlxDebris scatters the aftermath of a long night across the floor:
// red cups, cocktail glasses, beer bottles, straws, and confetti.
func prlxDebris(c *pixel.Canvas, rng *rand.Rand, groundY int) {
	for i := 0; i < 10; i++ {
		cx := 20 + rng.Intn(prlxW-39)
		cy := groundY + 8 + rng.Intn(prlxH-8-(groundY+8)+1)
		cupH := 6 + rng.Intn(4)
		for j := 0; j <= cupH; j++ {
			t := float64(j) / float64(cupH)
			hw := int(math.Round(2 - t))
			c.HLine(cx-hw, cx+hw, cy+j, prlxCupRed)
		}
		c.HLine(cx-2, cx+2, cy, prlxCupRim)
		if rng.Float64() < 0.3 {
			// Tipped over: a translucent spill puddle beside the cup.
			for ey := 0; ey < 4; ey++ {
				for ex := 0; ex < 8; ex++ {
					ddx := (float64(ex) - 3.5) / 4
					ddy := (float64(ey) - 1.5) / 2
					if ddx*ddx+ddy*ddy <= 1 {
						c.Set(cx+3+ex, cy+cupH-2+ey, rgba(120, 80, 30, 80))
					}
				}
			}
		}
	}

	for i := 0; i < 5; i++ {
		gx := 30 + rng.Intn(prlxW-59)
		gy := groundY + 5 + rng.Intn(prlxH-10-(groundY+5)+1)
		glassH := 7 + rng.Intn(4)
		bowl := glassH - 3
		for j := 0; j <= bowl; j++ {
			hw := int(math.Round(4 * (1 - float64(j)/float64(bowl))))
			c.HLine(gx-hw, gx+hw, gy+j, prlxGlass)
		}
		c.VLine(gx, gy+bowl, gy+glassH, prlxGlass)
		c.HLine(gx-2, gx+2, gy+glassH, prlxGlass)
		c.Set(gx-2, gy+1, prlxGlassHi)
		if rng.Float64() < 0.5 {
			c.Set(gx, gy+2, rgb(180, 50, 50))
		}
	}

	for i := 0; i < 6; i++ {
		bx := 15 + rng.Intn(prlxW-29)
		by := groundY + 4 + rng.Intn(prlxH-10-(groundY+4)+1)
		botH := 8 + rng.Intn(4)
		c.FillRect(bx, by+3, bx+3, by+botH, prlxBottle)
		c.FillRect(bx+1, by, bx+2, by+3, prlxBottle)
		c.FillRect(bx, by+5, bx+3, by+8, prlxBottleLabel)
		c.Set(bx, by+4, rgb(100, 180, 110))
		c.Set(bx+1, by, rgb(200, 170, 50))
	}

	for i := 0; i < 8; i++ {
		sx := 10 + rng.Intn(prlxW-19)
		sy := groundY + 3 + rng.Intn(prlxH-5-(groundY+3)+1)
		angle := rng.Float64()*0.8 - 0.4
		length := float64(8 + rng.Intn(7))
		col := []color.RGBA{prlxStrawPink, rgb(255, 255, 100), rgb(100, 200, 255)}[rng.Intn(3)]
		c.Line(sx, sy, sx+int(length*math.Cos(angle)), sy+int(length*math.Sin(angle)), col)
	}

	confettiCols := []color.RGBA{
		rgb(255, 100, 150), rgb(100, 200, 255), rgb(255, 220, 50),
		rgb(200, 100, 255), rgb(100, 255, 150), rgb(255, 150, 50),
	}
	for i := 0; i < 40; i++ {
		fx := rng.Intn(prlxW)
		fy := groundY + 2 + rng.Intn(prlxH-2-(groundY+2)+1)
		col := confettiCols[rng.Intn(len(confettiCols))]
		if rng.Intn(2) == 0 {
			c.Set(fx, fy, col)
		} else {
			c.FillRect(fx, fy, fx+1, fy+1, col)
		}
	}
}
