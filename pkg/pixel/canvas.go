// Package pixel provides an RGBA drawing canvas and the low-level
// primitives the procedural generators are built on.
package pixel

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// Canvas errors.
var (
	ErrBadSize = errors.New("invalid canvas dimensions")
)

// Canvas is a fixed-size RGBA pixel buffer. All drawing operations clip
// silently at the edges: writing outside the canvas is a no-op, never a
// panic. Generators lean on that contract to scatter detail with jitter
// and to draw shapes that only partially overlap the canvas.
type Canvas struct {
	img *image.RGBA
	w   int
	h   int
}

// New creates a fully transparent canvas.
func New(w, h int) (*Canvas, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadSize, w, h)
	}
	return &Canvas{
		img: image.NewRGBA(image.Rect(0, 0, w, h)),
		w:   w,
		h:   h,
	}, nil
}

// NewFilled creates a canvas pre-filled with a solid color.
func NewFilled(w, h int, c color.RGBA) (*Canvas, error) {
	cv, err := New(w, h)
	if err != nil {
		return nil, err
	}
	cv.Fill(c)
	return cv, nil
}

// FromImage wraps an existing RGBA image. The canvas shares the image's
// pixel storage.
func FromImage(img *image.RGBA) *Canvas {
	b := img.Bounds()
	return &Canvas{img: img, w: b.Dx(), h: b.Dy()}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.w }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.h }

// Image returns the underlying RGBA image for encoding.
func (c *Canvas) Image() *image.RGBA { return c.img }

// In reports whether (x, y) lies inside the canvas.
func (c *Canvas) In(x, y int) bool {
	return x >= 0 && x < c.w && y >= 0 && y < c.h
}

// Set writes a pixel, replacing whatever was there. Out-of-bounds
// coordinates are ignored.
func (c *Canvas) Set(x, y int, col color.RGBA) {
	if !c.In(x, y) {
		return
	}
	i := c.img.PixOffset(x, y)
	p := c.img.Pix[i : i+4 : i+4]
	p[0] = col.R
	p[1] = col.G
	p[2] = col.B
	p[3] = col.A
}

// At returns the pixel at (x, y), or the zero color when out of bounds.
func (c *Canvas) At(x, y int) color.RGBA {
	if !c.In(x, y) {
		return color.RGBA{}
	}
	i := c.img.PixOffset(x, y)
	p := c.img.Pix[i : i+4 : i+4]
	return color.RGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
}

// Blend composites col over the existing pixel. A fully opaque source
// replaces the destination outright; a fully transparent source leaves
// it untouched. Out-of-bounds coordinates are ignored.
func (c *Canvas) Blend(x, y int, col color.RGBA) {
	if !c.In(x, y) {
		return
	}
	sa := col.A
	if sa == 0 {
		return
	}
	i := c.img.PixOffset(x, y)
	p := c.img.Pix[i : i+4 : i+4]
	if sa == 255 || p[3] == 0 {
		p[0] = col.R
		p[1] = col.G
		p[2] = col.B
		p[3] = sa
		return
	}
	srcA := int(sa)
	dstA := int(p[3])
	outA := srcA + dstA*(255-srcA)/255
	if outA == 0 {
		return
	}
	p[0] = byte((int(col.R)*srcA + int(p[0])*dstA*(255-srcA)/255) / outA)
	p[1] = byte((int(col.G)*srcA + int(p[1])*dstA*(255-srcA)/255) / outA)
	p[2] = byte((int(col.B)*srcA + int(p[2])*dstA*(255-srcA)/255) / outA)
	p[3] = byte(outA)
}

// Add brightens the existing pixel by col scaled by strength in [0, 1],
// clamping each channel at 255. Alpha is raised to at least col.A scaled
// the same way. Used for glows, beams and sparkles that should stack.
func (c *Canvas) Add(x, y int, col color.RGBA, strength float64) {
	if !c.In(x, y) || strength <= 0 {
		return
	}
	if strength > 1 {
		strength = 1
	}
	i := c.img.PixOffset(x, y)
	p := c.img.Pix[i : i+4 : i+4]
	p[0] = clampU8(int(p[0]) + int(float64(col.R)*strength))
	p[1] = clampU8(int(p[1]) + int(float64(col.G)*strength))
	p[2] = clampU8(int(p[2]) + int(float64(col.B)*strength))
	if a := clampU8(int(float64(col.A) * strength)); a > p[3] {
		p[3] = a
	}
}

// Mix linearly interpolates the existing pixel toward col by t in [0, 1].
func (c *Canvas) Mix(x, y int, col color.RGBA, t float64) {
	if !c.In(x, y) {
		return
	}
	if t <= 0 {
		return
	}
	if t >= 1 {
		c.Set(x, y, col)
		return
	}
	i := c.img.PixOffset(x, y)
	p := c.img.Pix[i : i+4 : i+4]
	p[0] = uint8(float64(p[0])*(1-t) + float64(col.R)*t)
	p[1] = uint8(float64(p[1])*(1-t) + float64(col.G)*t)
	p[2] = uint8(float64(p[2])*(1-t) + float64(col.B)*t)
	p[3] = uint8(float64(p[3])*(1-t) + float64(col.A)*t)
}

// Fill sets every pixel to c.
func (c *Canvas) Fill(col color.RGBA) {
	pix := c.img.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i] = col.R
		pix[i+1] = col.G
		pix[i+2] = col.B
		pix[i+3] = col.A
	}
}

// Clone returns a deep copy of the canvas.
func (c *Canvas) Clone() *Canvas {
	img := image.NewRGBA(c.img.Rect)
	copy(img.Pix, c.img.Pix)
	return &Canvas{img: img, w: c.w, h: c.h}
}

// Paste copies src onto the canvas with its top-left corner at (xOff, yOff),
// replacing destination pixels verbatim. Source pixels that fall outside
// the canvas are clipped.
func (c *Canvas) Paste(src *Canvas, xOff, yOff int) {
	for y := 0; y < src.h; y++ {
		dy := y + yOff
		if dy < 0 || dy >= c.h {
			continue
		}
		for x := 0; x < src.w; x++ {
			dx := x + xOff
			if dx < 0 || dx >= c.w {
				continue
			}
			si := src.img.PixOffset(x, y)
			di := c.img.PixOffset(dx, dy)
			copy(c.img.Pix[di:di+4], src.img.Pix[si:si+4])
		}
	}
}

// PasteBlend composites src onto the canvas at (xOff, yOff) using Blend
// per pixel, so transparent source regions leave the destination alone.
func (c *Canvas) PasteBlend(src *Canvas, xOff, yOff int) {
	for y := 0; y < src.h; y++ {
		for x := 0; x < src.w; x++ {
			c.Blend(x+xOff, y+yOff, src.At(x, y))
		}
	}
}

func clampU8(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
