package recipes

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/funkworks/discoforge/internal/config"
	"github.com/funkworks/discoforge/pkg/sheet"
)

// testRunner returns a Runner writing under a fresh temp root.
func testRunner(t *testing.T) (*Runner, *config.Config) {
	t.Helper()
	cfg := config.Default()
	cfg.Output.Root = t.TempDir()
	return NewRunner(cfg, zap.NewNop()), cfg
}

func TestCatalogIntegrity(t *testing.T) {
	recs := All()
	if len(recs) == 0 {
		t.Fatal("catalog is empty")
	}

	seen := make(map[string]bool)
	for _, r := range recs {
		if r.Name == "" {
			t.Error("recipe with empty name")
		}
		if seen[r.Name] {
			t.Errorf("duplicate recipe name %q", r.Name)
		}
		seen[r.Name] = true
		if r.Run == nil {
			t.Errorf("recipe %q has no Run", r.Name)
		}
		if r.Category != CategorySprites && r.Category != CategoryAudio {
			t.Errorf("recipe %q has unknown category %q", r.Name, r.Category)
		}
	}
}

func TestFind(t *testing.T) {
	rec, ok := Find("tileset_rink")
	if !ok {
		t.Fatal("Find(tileset_rink) not found")
	}
	if rec.Category != CategorySprites {
		t.Errorf("tileset_rink category = %q, want %q", rec.Category, CategorySprites)
	}

	if _, ok := Find("no_such_recipe"); ok {
		t.Error("Find(no_such_recipe) unexpectedly found")
	}
}

func TestByCategory(t *testing.T) {
	got := Names(ByCategory(CategoryAudio))
	want := []string{"sfx", "music"}
	if len(got) != len(want) {
		t.Fatalf("audio recipes = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("audio recipe %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestContextPaths(t *testing.T) {
	ctx := &Context{Out: "assets"}

	if got, want := ctx.SpritePath("ui", "x.png"), filepath.Join("assets", "sprites", "ui", "x.png"); got != want {
		t.Errorf("SpritePath = %q, want %q", got, want)
	}
	if got, want := ctx.AudioPath("sfx", "x.wav"), filepath.Join("assets", "audio", "sfx", "x.wav"); got != want {
		t.Errorf("AudioPath = %q, want %q", got, want)
	}
}

func TestRunnerContinuesPastUnknown(t *testing.T) {
	r, cfg := testRunner(t)

	failed := r.Run([]string{"no_such_recipe", "hud_sprites"})
	if failed != 1 {
		t.Fatalf("failed = %d, want 1", failed)
	}

	// The unknown name must not have stopped the batch.
	if _, err := os.Stat(filepath.Join(cfg.Output.Root, "sprites", "ui", "icon_pistol.png")); err != nil {
		t.Errorf("hud sprites missing after batch with unknown name: %v", err)
	}
}

func TestHudSpritesOutputs(t *testing.T) {
	r, cfg := testRunner(t)
	if failed := r.Run([]string{"hud_sprites"}); failed != 0 {
		t.Fatalf("failed = %d, want 0", failed)
	}

	tests := []struct {
		file string
		w, h int
	}{
		{"hud_health_frame.png", 100, 12},
		{"hud_health_fill.png", 96, 8},
		{"hud_shield_frame.png", 100, 12},
		{"hud_boss_frame.png", 200, 16},
		{"hud_boss_fill.png", 196, 12},
		{"icon_pistol.png", 16, 16},
		{"icon_rocket_launcher.png", 16, 16},
		{"icon_ammo.png", 8, 8},
		{"icon_life.png", 12, 12},
	}
	for _, tt := range tests {
		cv, err := sheet.LoadPNG(filepath.Join(cfg.Output.Root, "sprites", "ui", tt.file))
		if err != nil {
			t.Errorf("%s: %v", tt.file, err)
			continue
		}
		if cv.Width() != tt.w || cv.Height() != tt.h {
			t.Errorf("%s is %dx%d, want %dx%d", tt.file, cv.Width(), cv.Height(), tt.w, tt.h)
		}
	}
}

func TestTilesetStripShape(t *testing.T) {
	r, cfg := testRunner(t)
	if failed := r.Run([]string{"tileset_rink"}); failed != 0 {
		t.Fatalf("failed = %d, want 0", failed)
	}

	cv, err := sheet.LoadPNG(filepath.Join(cfg.Output.Root, "sprites", "environment", "tileset_rink.png"))
	if err != nil {
		t.Fatal(err)
	}
	if cv.Width() != 6*tileSize || cv.Height() != tileSize {
		t.Errorf("strip is %dx%d, want %dx%d", cv.Width(), cv.Height(), 6*tileSize, tileSize)
	}
}

func renderTileset(t *testing.T, seedOffset int64) []byte {
	t.Helper()
	r, cfg := testRunner(t)
	cfg.Generator.SeedOffset = seedOffset
	if failed := r.Run([]string{"tileset_punk_alley"}); failed != 0 {
		t.Fatalf("failed = %d, want 0", failed)
	}
	data, err := os.ReadFile(filepath.Join(cfg.Output.Root, "sprites", "environment", "tileset_punk_alley.png"))
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func TestTilesetDeterminism(t *testing.T) {
	a := renderTileset(t, 0)
	b := renderTileset(t, 0)
	if !bytes.Equal(a, b) {
		t.Error("same seed rendered different tileset bytes")
	}

	c := renderTileset(t, 1)
	if bytes.Equal(a, c) {
		t.Error("seed offset 1 rendered identical tileset bytes")
	}
}

func TestReskinSkipsMissingSources(t *testing.T) {
	r, cfg := testRunner(t)

	// No player sheets exist under the fresh root; the recipe warns and
	// skips rather than failing.
	if failed := r.Run([]string{"player_p2_reskin"}); failed != 0 {
		t.Fatalf("failed = %d, want 0", failed)
	}
	if _, err := os.Stat(filepath.Join(cfg.Output.Root, "sprites", "players")); !os.IsNotExist(err) {
		t.Errorf("players dir created despite no sources (stat err %v)", err)
	}
}

func TestScaledExport(t *testing.T) {
	r, cfg := testRunner(t)
	cfg.Output.Scale = 2
	if failed := r.Run([]string{"hud_sprites"}); failed != 0 {
		t.Fatalf("failed = %d, want 0", failed)
	}

	cv, err := sheet.LoadPNG(filepath.Join(cfg.Output.Root, "sprites", "ui", "icon_ammo@2x.png"))
	if err != nil {
		t.Fatal(err)
	}
	if cv.Width() != 16 || cv.Height() != 16 {
		t.Errorf("@2x icon is %dx%d, want 16x16", cv.Width(), cv.Height())
	}
}

func TestSfxBank(t *testing.T) {
	r, cfg := testRunner(t)
	if failed := r.Run([]string{"sfx"}); failed != 0 {
		t.Fatalf("failed = %d, want 0", failed)
	}

	dir := filepath.Join(cfg.Output.Root, "audio", "sfx")
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 17 {
		t.Errorf("sfx bank holds %d files, want 17", len(entries))
	}
	for _, name := range []string{"shoot_pistol.wav", "explosion.wav", "menu_select.wav"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
}

func TestMusicTracks(t *testing.T) {
	if testing.Short() {
		t.Skip("renders three full tracks")
	}
	r, cfg := testRunner(t)
	if failed := r.Run([]string{"music"}); failed != 0 {
		t.Fatalf("failed = %d, want 0", failed)
	}

	for _, name := range []string{"menu_theme.wav", "level_theme.wav", "boss_theme.wav"} {
		info, err := os.Stat(filepath.Join(cfg.Output.Root, "audio", "music", name))
		if err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		// 16-bit stereo at 44100 for several bars; anything tiny means a
		// truncated render.
		if info.Size() < 1<<20 {
			t.Errorf("%s is %d bytes, suspiciously small", name, info.Size())
		}
	}
}
