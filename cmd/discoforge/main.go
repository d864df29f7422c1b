// discoforge generates the Disco Cop asset tree: tilesets, parallax
// layers, HUD sprites, player reskins, sound effects and music.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/funkworks/discoforge/internal/config"
	"github.com/funkworks/discoforge/internal/logger"
	"github.com/funkworks/discoforge/internal/playback"
	"github.com/funkworks/discoforge/internal/recipes"
	"github.com/funkworks/discoforge/pkg/palette"
	"github.com/funkworks/discoforge/pkg/pixel"
	"github.com/funkworks/discoforge/pkg/sheet"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "list", "ls":
		cmdList()
	case "gen":
		cmdGen(args)
	case "all":
		cmdAll(args)
	case "reskin":
		cmdReskin(args)
	case "play":
		cmdPlay(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`discoforge - Disco Cop asset generator

Usage:
  discoforge <command> [options]

Commands:
  list                               List available recipes
  gen <recipe>...                    Generate the named recipes
  all                                Generate every recipe
  reskin -skin <name> <src> <dst>    Remap a sprite sheet's palette
  play [-loop] <file.wav>            Play a rendered WAV

Options (all commands):
  -config <file>   Config file path
  -out <dir>       Asset output root
  -scale <n>       Extra nearest-neighbour @Nx export
  -debug           Debug logging

Examples:
  discoforge all
  discoforge gen tileset_rink sfx
  discoforge reskin -skin p2 player_idle_sheet.png player_idle_p2_sheet.png
  discoforge play -loop assets/audio/music/menu_theme.wav`)
}

// setup parses the flag set, loads config and initializes logging.
// Callers defer logger.Sync after it returns.
func setup(fs *flag.FlagSet, args []string) *config.Config {
	config.RegisterFlags(fs)
	fs.Parse(args)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

func cmdList() {
	fmt.Println("Available recipes:")
	for _, r := range recipes.All() {
		fmt.Printf("  %-22s %s\n", r.Name, r.Category)
	}
}

func cmdGen(args []string) {
	fs := flag.NewFlagSet("gen", flag.ExitOnError)
	cfg := setup(fs, args)
	defer logger.Sync()

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: discoforge gen [options] <recipe>...")
		os.Exit(1)
	}
	runRecipes(cfg, fs.Args())
}

func cmdAll(args []string) {
	fs := flag.NewFlagSet("all", flag.ExitOnError)
	cfg := setup(fs, args)
	defer logger.Sync()

	runRecipes(cfg, recipes.Names(recipes.All()))
}

// runRecipes executes the batch. Partial failure is a warning; the
// process exits non-zero only when nothing succeeded.
func runRecipes(cfg *config.Config, names []string) {
	runner := recipes.NewRunner(cfg, logger.Log)
	failed := runner.Run(names)
	if failed > 0 {
		logger.Warn("some recipes failed",
			zap.Int("failed", failed),
			zap.Int("requested", len(names)))
	}
	if failed == len(names) {
		logger.Sync()
		os.Exit(1)
	}
}

func cmdReskin(args []string) {
	fs := flag.NewFlagSet("reskin", flag.ExitOnError)
	skinName := fs.String("skin", "p2", "Skin name to apply")
	skinFile := fs.String("skins", "", "YAML skin table (overrides config)")
	cfg := setup(fs, args)
	defer logger.Sync()

	if fs.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "Usage: discoforge reskin -skin <name> [options] <src.png> <dst.png>")
		os.Exit(1)
	}
	src, dst := fs.Arg(0), fs.Arg(1)

	skins := palette.BuiltinSkins()
	path := cfg.Generator.SkinFile
	if *skinFile != "" {
		path = *skinFile
	}
	if path != "" {
		loaded, err := palette.LoadSkins(path)
		if err != nil {
			logger.Error("loading skin file", zap.Error(err))
			logger.Sync()
			os.Exit(1)
		}
		for k, v := range loaded {
			skins[k] = v
		}
	}
	remap, ok := skins[*skinName]
	if !ok {
		logger.Error("unknown skin", zap.String("skin", *skinName))
		logger.Sync()
		os.Exit(1)
	}

	cv, err := sheet.LoadPNG(src)
	if err != nil {
		logger.Error("loading sheet", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	out := pixel.FromImage(remap.ApplyImage(cv.Image()))
	if err := sheet.SavePNG(dst, out); err != nil {
		logger.Error("saving sheet", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Info("reskinned",
		zap.String("skin", *skinName),
		zap.String("src", src),
		zap.String("dst", dst))
}

func cmdPlay(args []string) {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	loop := fs.Bool("loop", false, "Repeat until interrupted")
	volume := fs.Float64("volume", 1, "Playback volume 0..1")
	setup(fs, args)
	defer logger.Sync()

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: discoforge play [-loop] [-volume v] <file.wav>")
		os.Exit(1)
	}
	path := fs.Arg(0)

	player := playback.New()
	if err := player.Init(); err != nil {
		logger.Error("audio init", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	defer player.Close()
	player.SetVolume(*volume)

	logger.Info("playing", zap.String("file", path), zap.Bool("loop", *loop))
	if err := player.PlayFile(path, *loop); err != nil {
		logger.Error("playback", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}
