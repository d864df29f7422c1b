package palette

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		c     color.RGBA
		gray  bool
		warm  bool
		cool  bool
		green bool
	}{
		{"pure gray", color.RGBA{128, 128, 128, 255}, true, false, false, false},
		{"near gray", color.RGBA{130, 120, 115, 255}, true, true, false, false},
		{"suit brown", color.RGBA{90, 60, 35, 255}, false, true, false, false},
		{"sky blue", color.RGBA{60, 120, 220, 255}, false, false, true, false},
		{"leaf green", color.RGBA{40, 180, 60, 255}, false, false, false, true},
		{"black", color.RGBA{0, 0, 0, 255}, true, false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Classify(tt.c)
			if f.Gray != tt.gray || f.Warm != tt.warm || f.Cool != tt.cool || f.Green != tt.green {
				t.Errorf("Classify(%v) = gray=%v warm=%v cool=%v green=%v, want gray=%v warm=%v cool=%v green=%v",
					tt.c, f.Gray, f.Warm, f.Cool, f.Green, tt.gray, tt.warm, tt.cool, tt.green)
			}
		})
	}
}

func TestClassifyBrightness(t *testing.T) {
	f := Classify(color.RGBA{30, 60, 90, 255})
	if f.Brightness != 60 {
		t.Errorf("Brightness = %v, want 60", f.Brightness)
	}
}

func TestP2SkinTransparencyPassthrough(t *testing.T) {
	skin := P2Skin()
	tests := []color.RGBA{
		{0, 0, 0, 0},
		{200, 200, 200, 0},
		{200, 200, 200, 9},
		{90, 60, 35, 5},
	}
	for _, c := range tests {
		if got := skin.Apply(c); got != c {
			t.Errorf("Apply(%v) = %v, want passthrough below alpha threshold", c, got)
		}
	}
}

func TestP2SkinGoldenValues(t *testing.T) {
	skin := P2Skin()
	tests := []struct {
		name string
		in   color.RGBA
		want color.RGBA
	}{
		// Bright suit gray 200 -> r*0.55, g*1.05, b*1.3.
		{"suit bright", color.RGBA{200, 200, 200, 255}, color.RGBA{110, 210, 255, 255}},
		// Mid suit gray 100 -> r*0.6, g*1.0, b*1.2.
		{"suit shade", color.RGBA{100, 100, 100, 255}, color.RGBA{60, 100, 120, 255}},
		// Afro brown (90,60,35), brightness 61.67 -> *2.8 capped 240/220/180.
		{"afro", color.RGBA{90, 60, 35, 255}, color.RGBA{240, 168, 88, 255}},
		// Afro shadow (30,20,10), brightness 20 -> *2.2 capped 180/160/120.
		{"afro shadow", color.RGBA{30, 20, 10, 255}, color.RGBA{66, 44, 17, 255}},
		// Outline black: no rule fires.
		{"outline", color.RGBA{0, 0, 0, 255}, color.RGBA{0, 0, 0, 255}},
		// Saturated red skin accent: neither gray nor descending-channel.
		{"accent", color.RGBA{220, 40, 80, 255}, color.RGBA{220, 40, 80, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := skin.Apply(tt.in); got != tt.want {
				t.Errorf("Apply(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRuleOrderFirstMatchWins(t *testing.T) {
	m := &Remap{
		Rules: []Rule{
			{Match: Match{Class: "gray", MinBrightness: 140}, Then: Transform{Scale: [3]float64{0, 0, 0.01}}},
			{Match: Match{Class: "gray"}, Then: Transform{Scale: [3]float64{2, 2, 2}}},
		},
	}
	// Bright gray hits the first rule even though the second matches too.
	got := m.Apply(color.RGBA{200, 200, 200, 255})
	if got.R != 0 || got.B != 2 {
		t.Errorf("first rule should win, got %v", got)
	}
	// Dim gray falls through to the second.
	got = m.Apply(color.RGBA{100, 100, 100, 255})
	if got.R != 200 {
		t.Errorf("second rule should fire for dim gray, got %v", got)
	}
}

func TestMatchHueWindow(t *testing.T) {
	m := Match{HueMin: 330, HueMax: 30, MinSaturation: 0.3}
	if !m.matches(Classify(color.RGBA{220, 30, 40, 255})) {
		t.Error("red at ~357 degrees should match a wrapped 330..30 window")
	}
	if m.matches(Classify(color.RGBA{40, 220, 60, 255})) {
		t.Error("green should not match a red hue window")
	}
	if m.matches(Classify(color.RGBA{200, 195, 193, 255})) {
		t.Error("near-gray should fail the saturation floor")
	}
}

func TestApplyImagePreservesSourceAndDims(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 2))
	set := func(x, y int, c color.RGBA) {
		i := src.PixOffset(x, y)
		src.Pix[i], src.Pix[i+1], src.Pix[i+2], src.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	set(0, 0, color.RGBA{200, 200, 200, 255})
	set(1, 0, color.RGBA{90, 60, 35, 255})
	set(2, 0, color.RGBA{0, 0, 0, 0})

	skin := P2Skin()
	dst := skin.ApplyImage(src)

	if dst.Bounds() != src.Bounds() {
		t.Fatalf("bounds changed: %v -> %v", src.Bounds(), dst.Bounds())
	}
	// Source untouched.
	if src.Pix[src.PixOffset(0, 0)] != 200 {
		t.Error("ApplyImage modified the source image")
	}
	// Remapped values landed.
	if dst.Pix[dst.PixOffset(0, 0)] != 110 {
		t.Errorf("suit pixel R = %d, want 110", dst.Pix[dst.PixOffset(0, 0)])
	}
	// Fully transparent pixel stays fully transparent.
	i := dst.PixOffset(2, 0)
	if dst.Pix[i+3] != 0 {
		t.Errorf("transparent pixel gained alpha %d", dst.Pix[i+3])
	}
}

func TestApplyImageSingleTransparentPixel(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 1, 1))
	dst := P2Skin().ApplyImage(src)
	for i, v := range dst.Pix {
		if v != 0 {
			t.Fatalf("byte %d of 1x1 transparent remap = %d, want 0", i, v)
		}
	}
}

func TestLoadSkins(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "skins.yaml")
	data := `skins:
  p2:
    alpha_threshold: 10
    rules:
      - name: suit-bright
        match: {class: gray, min_brightness: 140}
        then: {scale: [0.55, 1.05, 1.3]}
      - name: afro
        match: {class: warm, min_brightness: 30}
        then:
          scale: [2.8, 2.8, 2.52]
          cap: [240, 220, 180]
  neon:
    rules:
      - match: {class: cool}
        then: {scale: [1.2, 0.8, 1.0]}
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	skins, err := LoadSkins(path)
	if err != nil {
		t.Fatalf("LoadSkins: %v", err)
	}
	if len(skins) != 2 {
		t.Fatalf("loaded %d skins, want 2", len(skins))
	}
	p2, ok := skins["p2"]
	if !ok {
		t.Fatal("p2 skin missing")
	}
	if p2.Name != "p2" {
		t.Errorf("skin name = %q, want p2", p2.Name)
	}
	if len(p2.Rules) != 2 {
		t.Fatalf("p2 has %d rules, want 2", len(p2.Rules))
	}
	if p2.Rules[0].Match.Class != "gray" || p2.Rules[0].Match.MinBrightness != 140 {
		t.Errorf("rule 0 match parsed wrong: %+v", p2.Rules[0].Match)
	}
	if p2.Rules[1].Then.Cap != [3]float64{240, 220, 180} {
		t.Errorf("rule 1 caps parsed wrong: %+v", p2.Rules[1].Then.Cap)
	}

	// Loaded table behaves like the builtin for the suit band.
	got := p2.Apply(color.RGBA{200, 200, 200, 255})
	if got != (color.RGBA{110, 210, 255, 255}) {
		t.Errorf("loaded suit remap = %v", got)
	}

	if got := SkinNames(skins); len(got) != 2 || got[0] != "neon" || got[1] != "p2" {
		t.Errorf("SkinNames = %v", got)
	}
}

func TestLoadSkinsErrors(t *testing.T) {
	if _, err := LoadSkins(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file should error")
	}

	dir := t.TempDir()
	empty := filepath.Join(dir, "empty.yaml")
	os.WriteFile(empty, []byte("skins: {}\n"), 0o644)
	if _, err := LoadSkins(empty); err == nil {
		t.Error("empty skin table should error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	os.WriteFile(bad, []byte("skins: [not a map\n"), 0o644)
	if _, err := LoadSkins(bad); err == nil {
		t.Error("malformed yaml should error")
	}
}
