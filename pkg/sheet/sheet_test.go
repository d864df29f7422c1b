package sheet

import (
	"errors"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/funkworks/discoforge/pkg/pixel"
)

func solidFrame(t *testing.T, w, h int, c color.RGBA) *pixel.Canvas {
	t.Helper()
	f, err := pixel.NewFilled(w, h, c)
	if err != nil {
		t.Fatalf("building frame: %v", err)
	}
	return f
}

func TestComposeWidthInvariant(t *testing.T) {
	s := Sheet{FrameW: 48, FrameH: 64}
	tests := []struct{ frames int }{{1}, {4}, {6}, {10}}

	for _, tt := range tests {
		frames := make([]*pixel.Canvas, tt.frames)
		for i := range frames {
			frames[i] = solidFrame(t, 48, 64, color.RGBA{uint8(i * 20), 0, 0, 255})
		}
		out, err := s.Compose(frames)
		if err != nil {
			t.Fatalf("Compose(%d frames): %v", tt.frames, err)
		}
		if out.Width() != 48*tt.frames {
			t.Errorf("sheet width = %d, want %d", out.Width(), 48*tt.frames)
		}
		if out.Height() != 64 {
			t.Errorf("sheet height = %d, want 64", out.Height())
		}
	}
}

func TestComposePlacesFramesInOrder(t *testing.T) {
	s := Sheet{FrameW: 4, FrameH: 4}
	red := solidFrame(t, 4, 4, color.RGBA{255, 0, 0, 255})
	green := solidFrame(t, 4, 4, color.RGBA{0, 255, 0, 255})
	blue := solidFrame(t, 4, 4, color.RGBA{0, 0, 255, 255})

	out, err := s.Compose([]*pixel.Canvas{red, green, blue})
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if got := out.At(1, 1); got.R != 255 {
		t.Errorf("frame 0 pixel = %v, want red", got)
	}
	if got := out.At(5, 1); got.G != 255 {
		t.Errorf("frame 1 pixel = %v, want green", got)
	}
	if got := out.At(9, 1); got.B != 255 {
		t.Errorf("frame 2 pixel = %v, want blue", got)
	}
}

func TestComposeRejectsMismatchedFrames(t *testing.T) {
	s := Sheet{FrameW: 8, FrameH: 8}
	good := solidFrame(t, 8, 8, color.RGBA{1, 1, 1, 255})
	wide := solidFrame(t, 9, 8, color.RGBA{1, 1, 1, 255})
	short := solidFrame(t, 8, 7, color.RGBA{1, 1, 1, 255})

	if _, err := s.Compose([]*pixel.Canvas{good, wide}); !errors.Is(err, ErrFrameSize) {
		t.Errorf("wide frame error = %v, want ErrFrameSize", err)
	}
	if _, err := s.Compose([]*pixel.Canvas{good, short}); !errors.Is(err, ErrFrameSize) {
		t.Errorf("short frame error = %v, want ErrFrameSize", err)
	}
	if _, err := s.Compose(nil); !errors.Is(err, ErrNoFrames) {
		t.Errorf("empty compose error = %v, want ErrNoFrames", err)
	}
}

func TestStripComposesSquareTiles(t *testing.T) {
	tiles := []*pixel.Canvas{
		solidFrame(t, 32, 32, color.RGBA{10, 0, 0, 255}),
		solidFrame(t, 32, 32, color.RGBA{0, 10, 0, 255}),
	}
	out, err := Strip(32, tiles)
	if err != nil {
		t.Fatalf("Strip: %v", err)
	}
	if out.Width() != 64 || out.Height() != 32 {
		t.Errorf("strip is %dx%d, want 64x32", out.Width(), out.Height())
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "out", "sheet.png")

	src := solidFrame(t, 6, 4, color.RGBA{0, 0, 0, 0})
	src.Set(0, 0, color.RGBA{255, 20, 147, 255})
	src.Set(5, 3, color.RGBA{0, 255, 255, 255})
	src.Blend(2, 2, color.RGBA{255, 215, 0, 128})

	if err := SavePNG(path, src); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	back, err := LoadPNG(path)
	if err != nil {
		t.Fatalf("LoadPNG: %v", err)
	}
	if back.Width() != 6 || back.Height() != 4 {
		t.Fatalf("loaded %dx%d, want 6x4", back.Width(), back.Height())
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			if got, want := back.At(x, y), src.At(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v after round trip, want %v", x, y, got, want)
			}
		}
	}
}

func TestLoadPNGMissingFile(t *testing.T) {
	if _, err := LoadPNG(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("loading a missing file should error")
	}
}

func TestSaveScaledPNG(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tile.png")

	src := solidFrame(t, 2, 2, color.RGBA{0, 0, 0, 255})
	src.Set(1, 0, color.RGBA{200, 50, 50, 255})

	if err := SaveScaledPNG(path, src, 3); err != nil {
		t.Fatalf("SaveScaledPNG: %v", err)
	}
	back, err := LoadPNG(path)
	if err != nil {
		t.Fatalf("LoadPNG: %v", err)
	}
	if back.Width() != 6 || back.Height() != 6 {
		t.Fatalf("scaled image is %dx%d, want 6x6", back.Width(), back.Height())
	}
	// Nearest neighbour keeps the block solid.
	for y := 0; y < 3; y++ {
		for x := 3; x < 6; x++ {
			if got := back.At(x, y); got.R != 200 {
				t.Fatalf("scaled pixel (%d,%d) = %v, want solid red block", x, y, got)
			}
		}
	}

	if err := SaveScaledPNG(path, src, 0); !errors.Is(err, ErrBadScale) {
		t.Errorf("zero factor error = %v, want ErrBadScale", err)
	}
}

func TestScaledName(t *testing.T) {
	tests := []struct {
		path   string
		factor int
		want   string
	}{
		{"sheet.png", 2, "sheet@2x.png"},
		{"dir/tiles.png", 3, "dir/tiles@3x.png"},
		{"noext", 2, "noext@2x"},
	}
	for _, tt := range tests {
		if got := ScaledName(tt.path, tt.factor); got != tt.want {
			t.Errorf("ScaledName(%q, %d) = %q, want %q", tt.path, tt.factor, got, tt.want)
		}
	}
}
