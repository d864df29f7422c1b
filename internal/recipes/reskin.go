package recipes

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/funkworks/discoforge/pkg/pixel"
	"github.com/funkworks/discoforge/pkg/sheet"
)

// Player animations with committed P1 sheets.
var playerAnimations = []string{"idle", "run", "jump", "fall", "double_jump", "hurt"}

// playerP2Reskin derives the co-op player's sheets by remapping each P1
// sheet through the p2 skin: gray suit to cyan, brown afro to blonde.
// Missing source sheets are skipped so the recipe can run in a tree
// where the player sheets have not been rendered yet.
func playerP2Reskin(ctx *Context) error {
	skin, err := ctx.Skin("p2")
	if err != nil {
		return err
	}
	for _, anim := range playerAnimations {
		src := ctx.SpritePath("players", fmt.Sprintf("player_%s_sheet.png", anim))
		if _, err := os.Stat(src); err != nil {
			ctx.Log.Warn("source sheet not found, skipping",
				zap.String("file", filepath.Base(src)))
			continue
		}
		cv, err := sheet.LoadPNG(src)
		if err != nil {
			return err
		}
		out := pixel.FromImage(skin.ApplyImage(cv.Image()))
		dst := ctx.SpritePath("players", fmt.Sprintf("player_%s_p2_sheet.png", anim))
		if err := ctx.SaveImage(dst, out); err != nil {
			return err
		}
	}
	return nil
}
