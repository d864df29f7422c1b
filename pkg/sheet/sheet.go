// Package sheet assembles animation frames and tiles into horizontal
// strip sheets and handles their PNG serialization. The engine indexes
// a strip as frame i = columns [i*FrameW, (i+1)*FrameW), so a sheet is
// valid only when its width is exactly FrameW times the frame count.
package sheet

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"

	"github.com/funkworks/discoforge/pkg/pixel"
)

// Sheet assembly errors.
var (
	ErrNoFrames  = errors.New("no frames to compose")
	ErrFrameSize = errors.New("frame size mismatch")
	ErrBadScale  = errors.New("scale factor must be positive")
)

// Sheet describes the fixed frame geometry of a strip.
type Sheet struct {
	FrameW int
	FrameH int
}

// Compose lays the frames out left to right into one canvas. Every
// frame must match the sheet's frame dimensions; the result is always
// FrameW*len(frames) wide and FrameH tall.
func (s Sheet) Compose(frames []*pixel.Canvas) (*pixel.Canvas, error) {
	if len(frames) == 0 {
		return nil, ErrNoFrames
	}
	for i, f := range frames {
		if f.Width() != s.FrameW || f.Height() != s.FrameH {
			return nil, fmt.Errorf("%w: frame %d is %dx%d, want %dx%d",
				ErrFrameSize, i, f.Width(), f.Height(), s.FrameW, s.FrameH)
		}
	}
	out, err := pixel.New(s.FrameW*len(frames), s.FrameH)
	if err != nil {
		return nil, err
	}
	for i, f := range frames {
		out.Paste(f, i*s.FrameW, 0)
	}
	return out, nil
}

// Strip composes square tiles of the given size into a tileset strip.
// Which index holds which tile is a per-tileset contract documented by
// its generator, not enforced here.
func Strip(tile int, tiles []*pixel.Canvas) (*pixel.Canvas, error) {
	return Sheet{FrameW: tile, FrameH: tile}.Compose(tiles)
}

// SavePNG writes the canvas to path, creating parent directories as
// needed. Canvas bytes hold straight (non-premultiplied) alpha, so
// they are encoded through an NRGBA view sharing the same storage;
// encoding the RGBA image directly would re-scale semi-transparent
// pixels.
func SavePNG(path string, c *pixel.Canvas) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	img := c.Image()
	view := &image.NRGBA{Pix: img.Pix, Stride: img.Stride, Rect: img.Rect}
	if err := png.Encode(file, view); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return nil
}

// LoadPNG reads a PNG into a canvas, keeping alpha straight. Files
// written by SavePNG round-trip byte for byte.
func LoadPNG(path string) (*pixel.Canvas, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decoding PNG %s: %w", path, err)
	}
	if n, ok := img.(*image.NRGBA); ok {
		return pixel.FromImage(&image.RGBA{Pix: n.Pix, Stride: n.Stride, Rect: n.Rect}), nil
	}
	// No alpha channel in the file, so premultiplied and straight agree.
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(rgba, rgba.Bounds(), img, b.Min, xdraw.Src)
	return pixel.FromImage(rgba), nil
}

// SaveScaledPNG writes the canvas upscaled by an integer factor with
// nearest-neighbour sampling, keeping pixel edges hard.
func SaveScaledPNG(path string, c *pixel.Canvas, factor int) error {
	if factor <= 0 {
		return fmt.Errorf("%w: %d", ErrBadScale, factor)
	}
	if factor == 1 {
		return SavePNG(path, c)
	}
	src := c.Image()
	dst := image.NewRGBA(image.Rect(0, 0, c.Width()*factor, c.Height()*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return SavePNG(path, pixel.FromImage(dst))
}

// ScaledName derives the conventional sibling filename for a scaled
// export: sheet.png at factor 2 becomes sheet@2x.png.
func ScaledName(path string, factor int) string {
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s@%dx%s", path[:len(path)-len(ext)], factor, ext)
}
