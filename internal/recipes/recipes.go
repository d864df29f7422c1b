// Package recipes holds the catalog of asset generators and the batch
// runner that executes them. Each recipe owns one output contract of
// the game's asset tree (a tileset strip, a set of parallax layers, a
// bank of WAV files) and renders it from a deterministically seeded
// random source, so rerunning a recipe reproduces its committed assets
// exactly.
package recipes

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/funkworks/discoforge/internal/config"
	"github.com/funkworks/discoforge/pkg/palette"
	"github.com/funkworks/discoforge/pkg/pixel"
	"github.com/funkworks/discoforge/pkg/sheet"
	"github.com/funkworks/discoforge/pkg/synth"
)

// Recipe seeds. Rendered assets are committed to the game repo, so
// changing a seed silently reskins a shipped level; treat these as
// frozen.
const (
	seedPunkAlley     = 809
	seedDiscoFloor    = 814
	seedRink          = 42
	seedConcert       = 404
	seedVenice        = 99
	seedDiscoParallax = 815
	seedSfx           = 808
	seedMusic         = 42
)

// Recipe categories.
const (
	CategorySprites = "sprites"
	CategoryAudio   = "audio"
)

// Recipe is one named asset generator.
type Recipe struct {
	Name     string
	Category string
	// Seed is the fixed base seed for the recipe's random source. Zero
	// for recipes that draw nothing random.
	Seed int64
	Run  func(*Context) error
}

var catalog = []Recipe{
	{Name: "tileset_punk_alley", Category: CategorySprites, Seed: seedPunkAlley, Run: punkAlleyTiles},
	{Name: "tileset_disco_floor", Category: CategorySprites, Seed: seedDiscoFloor, Run: discoFloorTiles},
	{Name: "tileset_rink", Category: CategorySprites, Seed: seedRink, Run: rinkTiles},
	{Name: "tileset_concert", Category: CategorySprites, Seed: seedConcert, Run: concertTiles},
	{Name: "tileset_venice_beach", Category: CategorySprites, Seed: seedVenice, Run: veniceTiles},
	{Name: "parallax_disco_floor", Category: CategorySprites, Seed: seedDiscoParallax, Run: discoParallax},
	{Name: "hud_sprites", Category: CategorySprites, Run: hudSprites},
	{Name: "player_p2_reskin", Category: CategorySprites, Run: playerP2Reskin},
	{Name: "sfx", Category: CategoryAudio, Seed: seedSfx, Run: soundEffects},
	{Name: "music", Category: CategoryAudio, Seed: seedMusic, Run: musicTracks},
}

// All returns the catalog in registration order.
func All() []Recipe {
	out := make([]Recipe, len(catalog))
	copy(out, catalog)
	return out
}

// ByCategory returns the catalog entries in the given category.
func ByCategory(cat string) []Recipe {
	var out []Recipe
	for _, r := range catalog {
		if r.Category == cat {
			out = append(out, r)
		}
	}
	return out
}

// Find looks up a recipe by name.
func Find(name string) (Recipe, bool) {
	for _, r := range catalog {
		if r.Name == name {
			return r, true
		}
	}
	return Recipe{}, false
}

// Names returns the names of the given recipes, in order.
func Names(recs []Recipe) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Name
	}
	return out
}

// Context carries what a running recipe needs: the resolved config, a
// recipe-scoped logger, the output root and a random source seeded from
// the recipe's base seed plus the configured offset.
type Context struct {
	Cfg *config.Config
	Log *zap.Logger
	Out string
	Rng *rand.Rand
}

// SpritePath builds an output path under the sprite tree, for example
// SpritePath("environment", "tileset_rink.png").
func (c *Context) SpritePath(category, name string) string {
	return filepath.Join(c.Out, "sprites", category, name)
}

// AudioPath builds an output path under the audio tree.
func (c *Context) AudioPath(category, name string) string {
	return filepath.Join(c.Out, "audio", category, name)
}

// SaveImage writes a canvas as a PNG, plus a nearest-neighbour @Nx copy
// when a scale factor above 1 is configured.
func (c *Context) SaveImage(path string, cv *pixel.Canvas) error {
	if err := sheet.SavePNG(path, cv); err != nil {
		return err
	}
	c.Log.Info("generated",
		zap.String("file", filepath.Base(path)),
		zap.Int("w", cv.Width()),
		zap.Int("h", cv.Height()))
	if f := c.Cfg.Output.Scale; f > 1 {
		scaled := sheet.ScaledName(path, f)
		if err := sheet.SaveScaledPNG(scaled, cv, f); err != nil {
			return err
		}
		c.Log.Info("generated", zap.String("file", filepath.Base(scaled)))
	}
	return nil
}

// SaveWAV writes a sample buffer normalized to the configured peak.
func (c *Context) SaveWAV(path string, buf synth.Buffer, channels int) error {
	if err := synth.WriteWAVPeak(path, buf, channels, c.Cfg.Audio.Peak); err != nil {
		return err
	}
	c.Log.Info("generated",
		zap.String("file", filepath.Base(path)),
		zap.Float64("seconds", float64(len(buf))/synth.SampleRate))
	return nil
}

// Skin resolves a named remap table: built-ins, overlaid with the YAML
// skin file from config when one is set.
func (c *Context) Skin(name string) (*palette.Remap, error) {
	skins := palette.BuiltinSkins()
	if path := c.Cfg.Generator.SkinFile; path != "" {
		loaded, err := palette.LoadSkins(path)
		if err != nil {
			return nil, err
		}
		for k, v := range loaded {
			skins[k] = v
		}
	}
	m, ok := skins[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", palette.ErrUnknownSkin, name)
	}
	return m, nil
}

// Runner executes recipes sequentially against one config.
type Runner struct {
	cfg *config.Config
	log *zap.Logger
}

// NewRunner returns a Runner writing under cfg's output root.
func NewRunner(cfg *config.Config, log *zap.Logger) *Runner {
	return &Runner{cfg: cfg, log: log}
}

// Run executes the named recipes in order and returns how many failed.
// Unknown names and recipe errors are logged and counted; one failure
// never stops the rest of the batch.
func (r *Runner) Run(names []string) int {
	failed := 0
	for _, name := range names {
		rec, ok := Find(name)
		if !ok {
			r.log.Warn("unknown recipe", zap.String("recipe", name))
			failed++
			continue
		}
		log := r.log.With(zap.String("recipe", rec.Name))
		ctx := &Context{
			Cfg: r.cfg,
			Log: log,
			Out: r.cfg.Output.Root,
			Rng: rand.New(rand.NewSource(rec.Seed + r.cfg.Generator.SeedOffset)),
		}
		start := time.Now()
		if err := rec.Run(ctx); err != nil {
			log.Error("recipe failed", zap.Error(err))
			failed++
			continue
		}
		log.Info("recipe done", zap.Duration("took", time.Since(start)))
	}
	return failed
}
