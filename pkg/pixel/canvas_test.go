package pixel

import (
	"image/color"
	"testing"
)

func TestNewRejectsBadDimensions(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"zero width", 0, 10},
		{"zero height", 10, 0},
		{"negative width", -3, 10},
		{"negative height", 10, -3},
		{"both zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.w, tt.h); err == nil {
				t.Errorf("New(%d, %d) expected error, got nil", tt.w, tt.h)
			}
		})
	}
}

func TestNewStartsTransparent(t *testing.T) {
	c, err := New(4, 4)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := c.At(x, y); got != (color.RGBA{}) {
				t.Fatalf("pixel (%d,%d) = %v, want transparent", x, y, got)
			}
		}
	}
}

func TestSetOutOfBoundsIsNoOp(t *testing.T) {
	c, err := NewFilled(8, 8, color.RGBA{10, 20, 30, 255})
	if err != nil {
		t.Fatalf("NewFilled failed: %v", err)
	}

	coords := []struct{ x, y int }{
		{-1, 0}, {0, -1}, {8, 0}, {0, 8},
		{-10000, -10000}, {10000, 10000}, {10000, 3}, {3, 10000},
	}
	for _, p := range coords {
		c.Set(p.x, p.y, color.RGBA{255, 0, 0, 255})
		c.Blend(p.x, p.y, color.RGBA{255, 0, 0, 255})
		c.Add(p.x, p.y, color.RGBA{255, 0, 0, 255}, 1)
		c.Mix(p.x, p.y, color.RGBA{255, 0, 0, 255}, 0.5)
	}

	// No in-bounds pixel may have changed.
	want := color.RGBA{10, 20, 30, 255}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if got := c.At(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v after OOB writes, want %v", x, y, got, want)
			}
		}
	}
}

func TestAtOutOfBoundsReturnsZero(t *testing.T) {
	c, _ := NewFilled(4, 4, color.RGBA{200, 200, 200, 255})
	if got := c.At(-1, 2); got != (color.RGBA{}) {
		t.Errorf("At(-1, 2) = %v, want zero color", got)
	}
	if got := c.At(2, 99); got != (color.RGBA{}) {
		t.Errorf("At(2, 99) = %v, want zero color", got)
	}
}

func TestBlendOpaqueReplaces(t *testing.T) {
	c, _ := NewFilled(2, 2, color.RGBA{5, 5, 5, 255})
	src := color.RGBA{200, 100, 50, 255}
	c.Blend(1, 1, src)
	if got := c.At(1, 1); got != src {
		t.Errorf("opaque blend = %v, want %v", got, src)
	}
}

func TestBlendTransparentPreservesDst(t *testing.T) {
	want := color.RGBA{60, 70, 80, 255}
	c, _ := NewFilled(2, 2, want)
	c.Blend(0, 0, color.RGBA{255, 255, 255, 0})
	if got := c.At(0, 0); got != want {
		t.Errorf("transparent blend = %v, want %v", got, want)
	}
}

func TestBlendOntoTransparentTakesSource(t *testing.T) {
	c, _ := New(2, 2)
	src := color.RGBA{90, 120, 30, 128}
	c.Blend(0, 0, src)
	if got := c.At(0, 0); got != src {
		t.Errorf("blend onto empty = %v, want %v", got, src)
	}
}

func TestBlendSemiOverSemiAlpha(t *testing.T) {
	c, _ := NewFilled(1, 1, color.RGBA{0, 0, 0, 100})
	c.Blend(0, 0, color.RGBA{255, 255, 255, 128})

	// outA = sa + da*(255-sa)/255 = 128 + 100*127/255 = 177 (integer math).
	got := c.At(0, 0)
	wantA := uint8(128 + 100*(255-128)/255)
	if got.A != wantA {
		t.Errorf("blended alpha = %d, want %d", got.A, wantA)
	}
	// Result color must land strictly between the two sources.
	if got.R == 0 || got.R == 255 {
		t.Errorf("blended R = %d, want intermediate value", got.R)
	}
}

func TestAddClampsAndStacks(t *testing.T) {
	c, _ := NewFilled(1, 1, color.RGBA{250, 10, 10, 255})
	c.Add(0, 0, color.RGBA{20, 20, 20, 255}, 1)
	got := c.At(0, 0)
	if got.R != 255 {
		t.Errorf("Add should clamp R to 255, got %d", got.R)
	}
	if got.G != 30 {
		t.Errorf("Add G = %d, want 30", got.G)
	}

	// A second pass keeps accumulating.
	c.Add(0, 0, color.RGBA{0, 20, 0, 255}, 0.5)
	if got = c.At(0, 0); got.G != 40 {
		t.Errorf("stacked Add G = %d, want 40", got.G)
	}
}

func TestFillRectCorners(t *testing.T) {
	c, _ := New(10, 10)
	col := color.RGBA{1, 2, 3, 255}
	c.FillRect(7, 7, 2, 2, col) // reversed corners

	for y := 2; y <= 7; y++ {
		for x := 2; x <= 7; x++ {
			if c.At(x, y) != col {
				t.Fatalf("pixel (%d,%d) not filled", x, y)
			}
		}
	}
	if c.At(1, 2) == col || c.At(8, 7) == col {
		t.Error("fill leaked outside the rectangle")
	}
}

func TestLineEndpoints(t *testing.T) {
	c, _ := New(16, 16)
	col := color.RGBA{255, 255, 255, 255}
	c.Line(1, 1, 14, 9, col)
	if c.At(1, 1) != col {
		t.Error("line start pixel not set")
	}
	if c.At(14, 9) != col {
		t.Error("line end pixel not set")
	}
}

func TestLineDegenerateIsPoint(t *testing.T) {
	c, _ := New(4, 4)
	col := color.RGBA{9, 9, 9, 255}
	c.Line(2, 2, 2, 2, col)
	if c.At(2, 2) != col {
		t.Error("zero-length line should draw its single pixel")
	}
}

func TestFillEllipseInsideOutside(t *testing.T) {
	c, _ := New(21, 21)
	col := color.RGBA{0, 255, 0, 255}
	c.FillEllipse(10, 10, 8, 5, col)

	if got := c.At(10, 10); got.G != 255 {
		t.Errorf("ellipse center not filled: %v", got)
	}
	if got := c.At(10, 16); got.A != 0 {
		t.Errorf("pixel outside ry should be empty: %v", got)
	}
	if got := c.At(19, 10); got.A != 0 {
		t.Errorf("pixel outside rx should be empty: %v", got)
	}
}

func TestPasteClipsAndCopies(t *testing.T) {
	dst, _ := NewFilled(8, 8, color.RGBA{1, 1, 1, 255})
	src, _ := NewFilled(4, 4, color.RGBA{200, 0, 0, 255})

	dst.Paste(src, 6, 6) // only the 2x2 overlap lands

	if got := dst.At(6, 6); got.R != 200 {
		t.Errorf("pasted pixel (6,6) = %v", got)
	}
	if got := dst.At(7, 7); got.R != 200 {
		t.Errorf("pasted pixel (7,7) = %v", got)
	}
	if got := dst.At(5, 5); got.R != 1 {
		t.Errorf("pixel left of paste = %v, want untouched", got)
	}

	// Fully off-canvas paste must not panic or mutate.
	before := dst.At(0, 0)
	dst.Paste(src, -100, -100)
	if dst.At(0, 0) != before {
		t.Error("off-canvas paste mutated the destination")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	a, _ := NewFilled(3, 3, color.RGBA{7, 7, 7, 255})
	b := a.Clone()
	b.Set(1, 1, color.RGBA{250, 0, 0, 255})
	if got := a.At(1, 1); got.R != 7 {
		t.Errorf("mutating clone affected original: %v", got)
	}
}

func TestLerpEndpointsAndMidpoint(t *testing.T) {
	a := color.RGBA{0, 0, 0, 0}
	b := color.RGBA{200, 100, 50, 255}
	if got := Lerp(a, b, 0); got != a {
		t.Errorf("Lerp t=0 = %v, want %v", got, a)
	}
	if got := Lerp(a, b, 1); got != b {
		t.Errorf("Lerp t=1 = %v, want %v", got, b)
	}
	mid := Lerp(a, b, 0.5)
	if mid.R != 100 || mid.G != 50 || mid.B != 25 {
		t.Errorf("Lerp t=0.5 = %v", mid)
	}
	// Out-of-range t clamps.
	if got := Lerp(a, b, 2.5); got != b {
		t.Errorf("Lerp t>1 = %v, want %v", got, b)
	}
}

func TestScaleClamps(t *testing.T) {
	c := color.RGBA{100, 200, 50, 77}
	got := Scale(c, 2.0)
	if got.R != 200 || got.G != 255 || got.B != 100 {
		t.Errorf("Scale = %v", got)
	}
	if got.A != 77 {
		t.Errorf("Scale changed alpha: %d", got.A)
	}
}
