// sheetview previews generated sprite sheets: it cycles a strip's
// frames in an SDL2 window at a fixed rate, with keyboard stepping.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/funkworks/discoforge/pkg/pixel"
	"github.com/funkworks/discoforge/pkg/sheet"
)

func init() {
	// SDL calls must be made from the main thread.
	runtime.LockOSThread()
}

func main() {
	frameSpec := flag.String("frame", "", "Frame size WxH (default: whole sheet)")
	fps := flag.Float64("fps", 8, "Playback frame rate")
	scale := flag.Int("scale", 4, "Integer zoom factor")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: sheetview [options] <sheet.png>")
		flag.PrintDefaults()
		os.Exit(1)
	}
	path := flag.Arg(0)

	cv, err := sheet.LoadPNG(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	frameW, frameH := cv.Width(), cv.Height()
	if *frameSpec != "" {
		frameW, frameH, err = parseFrameSpec(*frameSpec)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	if frameW > cv.Width() || cv.Width()%frameW != 0 || cv.Height() != frameH {
		fmt.Fprintf(os.Stderr, "Error: sheet %dx%d does not divide into %dx%d frames\n",
			cv.Width(), cv.Height(), frameW, frameH)
		os.Exit(1)
	}

	if err := run(path, cv, frameW, frameH, *fps, *scale); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// parseFrameSpec parses a "WxH" size argument.
func parseFrameSpec(spec string) (int, int, error) {
	parts := strings.SplitN(strings.ToLower(spec), "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("bad frame spec %q, want WxH", spec)
	}
	w, err := strconv.Atoi(parts[0])
	if err != nil || w <= 0 {
		return 0, 0, fmt.Errorf("bad frame width in %q", spec)
	}
	h, err := strconv.Atoi(parts[1])
	if err != nil || h <= 0 {
		return 0, 0, fmt.Errorf("bad frame height in %q", spec)
	}
	return w, h, nil
}

func run(path string, cv *pixel.Canvas, frameW, frameH int, fps float64, scale int) error {
	if scale < 1 {
		scale = 1
	}
	if fps <= 0 {
		fps = 1
	}
	frames := cv.Width() / frameW

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("SDL_Init failed: %w", err)
	}
	defer sdl.Quit()

	winW := int32(frameW * scale)
	winH := int32(frameH * scale)
	window, err := sdl.CreateWindow(
		"sheetview - "+filepath.Base(path),
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		winW, winH,
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		return fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}
	defer window.Destroy()

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		return fmt.Errorf("SDL_CreateRenderer failed: %w", err)
	}
	defer renderer.Destroy()

	// The whole sheet goes into one streaming texture; frames are Copy'd
	// out by source rect. Canvas bytes are straight-alpha R,G,B,A which
	// is ABGR8888 in SDL's packed little-endian naming.
	img := cv.Image()
	tex, err := renderer.CreateTexture(
		sdl.PIXELFORMAT_ABGR8888,
		sdl.TEXTUREACCESS_STREAMING,
		int32(cv.Width()), int32(cv.Height()),
	)
	if err != nil {
		return fmt.Errorf("SDL_CreateTexture failed: %w", err)
	}
	defer tex.Destroy()
	if err := tex.Update(nil, unsafe.Pointer(&img.Pix[0]), img.Stride); err != nil {
		return fmt.Errorf("texture upload failed: %w", err)
	}
	tex.SetBlendMode(sdl.BLENDMODE_BLEND)

	frame := 0
	paused := false
	last := time.Now()
	lastTitle := ""
	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				return nil
			case *sdl.KeyboardEvent:
				if e.Type != sdl.KEYDOWN {
					continue
				}
				switch e.Keysym.Sym {
				case sdl.K_ESCAPE, sdl.K_q:
					return nil
				case sdl.K_SPACE:
					paused = !paused
				case sdl.K_RIGHT:
					frame = (frame + 1) % frames
					paused = true
				case sdl.K_LEFT:
					frame = (frame + frames - 1) % frames
					paused = true
				case sdl.K_UP:
					fps = min(fps*1.25, 60)
				case sdl.K_DOWN:
					fps = max(fps/1.25, 0.5)
				}
			}
		}

		if !paused && time.Since(last) >= time.Duration(float64(time.Second)/fps) {
			frame = (frame + 1) % frames
			last = time.Now()
		}

		renderer.SetDrawColor(24, 24, 28, 255)
		renderer.Clear()
		src := sdl.Rect{X: int32(frame * frameW), Y: 0, W: int32(frameW), H: int32(frameH)}
		dst := sdl.Rect{X: 0, Y: 0, W: winW, H: winH}
		renderer.Copy(tex, &src, &dst)
		renderer.Present()

		state := ""
		if paused {
			state = "  [paused]"
		}
		title := fmt.Sprintf("sheetview - %s  %d/%d  %.1f fps%s",
			filepath.Base(path), frame+1, frames, fps, state)
		if title != lastTitle {
			window.SetTitle(title)
			lastTitle = title
		}

		sdl.Delay(10)
	}
}
