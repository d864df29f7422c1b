package recipes

import (
	"image/color"

	"github.com/funkworks/discoforge/pkg/pixel"
)

// HUD palette shared by the bars and icons.
var (
	hudFrameOuter = rgb(180, 140, 220)
	hudFrameInner = rgb(60, 30, 80)
	hudFrameShine = rgb(220, 180, 255)
	hudPurple     = rgb(26, 10, 46)
	hudSilver     = rgb(192, 192, 192)
	hudWhite      = rgb(255, 255, 255)
	hudMagenta    = rgb(255, 20, 147)
	hudRed        = rgb(220, 40, 40)
	hudRedDark    = rgb(140, 20, 20)
	hudCyan       = rgb(0, 255, 255)
	hudCyanDim    = rgb(0, 180, 200)
	hudCyanDark   = rgb(0, 100, 120)
	hudGold       = rgb(255, 215, 0)
	hudGoldDim    = rgb(200, 165, 0)
	hudGoldDark   = rgb(140, 110, 0)
)

// hudSprites renders the status bar frames and fills, the weapon type
// icons, and the small ammo and lives pickups.
func hudSprites(ctx *Context) error {
	bars := []struct {
		name    string
		w, h    int
		accent  color.RGBA
		fillTop color.RGBA
		fillBot color.RGBA
	}{
		{"health", 100, 12, hudRed, hudRed, hudRedDark},
		{"shield", 100, 12, hudCyan, hudCyan, hudCyanDark},
		{"boss", 200, 16, hudGold, hudGold, hudGoldDark},
	}
	for _, b := range bars {
		frame, err := hudBarFrame(b.w, b.h, b.accent)
		if err != nil {
			return err
		}
		if err := ctx.SaveImage(ctx.SpritePath("ui", "hud_"+b.name+"_frame.png"), frame); err != nil {
			return err
		}
		// The fill slab sits inside the frame's 2px border; the HUD
		// crops it horizontally to the current value.
		fill, err := hudBarFill(b.w-4, b.h-4, b.fillTop, b.fillBot)
		if err != nil {
			return err
		}
		if err := ctx.SaveImage(ctx.SpritePath("ui", "hud_"+b.name+"_fill.png"), fill); err != nil {
			return err
		}
	}

	icons := []struct {
		name string
		draw func(*pixel.Canvas)
	}{
		{"icon_pistol", hudPistol},
		{"icon_smg", hudSMG},
		{"icon_shotgun", hudShotgun},
		{"icon_assault_rifle", hudAssaultRifle},
		{"icon_sniper", hudSniper},
		{"icon_rocket_launcher", hudRocketLauncher},
	}
	for _, ic := range icons {
		c, err := pixel.New(16, 16)
		if err != nil {
			return err
		}
		ic.draw(c)
		if err := ctx.SaveImage(ctx.SpritePath("ui", ic.name+".png"), c); err != nil {
			return err
		}
	}

	if err := hudAmmoIcon(ctx); err != nil {
		return err
	}
	return hudLifeIcon(ctx)
}

// hudBarFrame draws the empty bar chrome: light outer border, dark
// inner border, purple well, a shine line, and accent corner pixels.
func hudBarFrame(w, h int, accent color.RGBA) (*pixel.Canvas, error) {
	c, err := pixel.New(w, h)
	if err != nil {
		return nil, err
	}
	c.StrokeRect(0, 0, w-1, h-1, hudFrameOuter)
	c.StrokeRect(1, 1, w-2, h-2, hudFrameInner)
	c.FillRect(2, 2, w-3, h-3, hudPurple)
	c.HLine(2, w-3, 1, hudFrameShine)
	c.Set(0, 0, accent)
	c.Set(w-1, 0, accent)
	c.Set(0, h-1, accent)
	c.Set(w-1, h-1, accent)
	return c, nil
}

func hudBarFill(w, h int, top, bot color.RGBA) (*pixel.Canvas, error) {
	c, err := pixel.New(w, h)
	if err != nil {
		return nil, err
	}
	for y := 0; y < h; y++ {
		t := float64(y) / float64(max(h-1, 1))
		c.HLine(0, w-1, y, pixel.Lerp(top, bot, t))
	}
	return c, nil
}

// hudPistol draws a small handgun silhouette.
func hudPistol(c *pixel.Canvas) {
	c.FillRect(7, 6, 14, 8, hudSilver)
	c.FillRect(4, 5, 8, 9, hudSilver)
	c.FillRect(4, 9, 7, 13, hudGoldDim)
	c.HLine(5, 8, 10, hudSilver)
	c.Set(14, 7, hudWhite)
}

// hudSMG draws a compact SMG with stock.
func hudSMG(c *pixel.Canvas) {
	c.FillRect(8, 6, 15, 7, hudSilver)
	c.FillRect(3, 5, 9, 8, hudSilver)
	c.FillRect(5, 8, 7, 12, hudGoldDim)
	c.FillRect(1, 6, 3, 8, hudSilver)
	c.Set(15, 6, hudMagenta)
}

// hudShotgun draws a wide-barrel shotgun.
func hudShotgun(c *pixel.Canvas) {
	c.FillRect(5, 5, 15, 7, hudSilver)
	c.FillRect(13, 4, 15, 8, hudSilver)
	c.FillRect(1, 5, 5, 8, hudGoldDim)
	c.FillRect(8, 8, 11, 9, hudSilver)
	c.Set(6, 9, hudSilver)
}

// hudAssaultRifle draws a medium rifle with magazine and sight.
func hudAssaultRifle(c *pixel.Canvas) {
	c.FillRect(7, 5, 15, 6, hudSilver)
	c.FillRect(3, 5, 8, 8, hudSilver)
	c.FillRect(5, 8, 7, 12, hudGoldDim)
	c.FillRect(1, 6, 3, 8, hudSilver)
	c.FillRect(9, 4, 11, 5, hudCyanDim)
}

// hudSniper draws a long barrel with scope and bipod.
func hudSniper(c *pixel.Canvas) {
	c.HLine(5, 15, 7, hudSilver)
	c.FillRect(3, 6, 7, 8, hudSilver)
	c.FillRect(7, 4, 12, 5, hudCyanDim)
	c.VLine(7, 5, 6, hudCyanDim)
	c.FillRect(1, 6, 3, 9, hudGoldDim)
	c.Line(5, 9, 4, 11, hudSilver)
	c.Line(7, 9, 8, 11, hudSilver)
}

// hudRocketLauncher draws a wide tube launcher with a loaded rocket.
func hudRocketLauncher(c *pixel.Canvas) {
	c.FillRect(3, 4, 15, 9, hudSilver)
	c.FillRect(13, 5, 15, 8, hudPurple)
	c.FillRect(5, 9, 7, 12, hudGoldDim)
	c.FillRect(8, 3, 10, 4, hudCyanDim)
	c.VLine(3, 5, 8, hudGoldDim)
	c.Set(14, 6, hudRed)
	c.Set(14, 7, hudRed)
}

func hudAmmoIcon(ctx *Context) error {
	c, err := pixel.New(8, 8)
	if err != nil {
		return err
	}
	c.FillRect(2, 3, 5, 7, hudGoldDim)
	c.FillRect(2, 1, 5, 3, hudSilver)
	// Round the tip by clearing its corners.
	c.Set(2, 1, color.RGBA{})
	c.Set(5, 1, color.RGBA{})
	c.Set(3, 2, hudWhite)
	return ctx.SaveImage(ctx.SpritePath("ui", "icon_ammo.png"), c)
}

// hudLifeIcon draws the mini disco cop head: afro, gold shades, and a
// magenta jacket with a chain.
func hudLifeIcon(ctx *Context) error {
	c, err := pixel.New(12, 12)
	if err != nil {
		return err
	}
	afro := rgb(60, 30, 15)
	for y := 0; y <= 7; y++ {
		for x := 1; x <= 10; x++ {
			dx := (float64(x) - 5.5) / 4.5
			dy := (float64(y) - 3.5) / 3.5
			if dx*dx+dy*dy <= 1 {
				c.Set(x, y, afro)
			}
		}
	}
	skin := rgb(180, 120, 80)
	c.FillRect(3, 4, 8, 9, skin)
	c.FillRect(3, 5, 5, 6, hudGoldDim)
	c.FillRect(6, 5, 8, 6, hudGoldDim)
	c.HLine(5, 6, 5, hudGold)
	c.Set(5, 8, rgb(140, 80, 50))
	c.Set(6, 8, rgb(140, 80, 50))
	c.FillRect(3, 9, 8, 11, hudMagenta)
	c.Set(5, 10, hudGold)
	c.Set(6, 10, hudGold)
	return ctx.SaveImage(ctx.SpritePath("ui", "icon_life.png"), c)
}
