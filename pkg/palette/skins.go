package palette

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Skin file errors.
var (
	ErrNoSkins     = errors.New("skin file defines no skins")
	ErrUnknownSkin = errors.New("unknown skin")
)

type skinFile struct {
	Skins map[string]*Remap `yaml:"skins"`
}

// LoadSkins reads a YAML skin table. The file maps skin names to rule
// tables:
//
//	skins:
//	  p2:
//	    rules:
//	      - name: suit-bright
//	        match: {class: gray, min_brightness: 140}
//	        then: {scale: [0.55, 1.05, 1.3]}
func LoadSkins(path string) (map[string]*Remap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading skin file: %w", err)
	}
	var f skinFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing skin file %s: %w", path, err)
	}
	if len(f.Skins) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoSkins, path)
	}
	for name, m := range f.Skins {
		if m == nil {
			return nil, fmt.Errorf("skin %q has no rules", name)
		}
		m.Name = name
	}
	return f.Skins, nil
}

// SkinNames returns the sorted names of a skin table.
func SkinNames(skins map[string]*Remap) []string {
	names := make([]string, 0, len(skins))
	for name := range skins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// P2Skin is the built-in player-two reskin: the gray suit shifts to a
// cyan tint and the brown afro to blonde, leaving outlines and skin
// tones alone. Band bounds and channel factors are hand-tuned against
// the player sheets; near-boundary pixels can land one band off, which
// reads as grain at sprite scale and is left alone.
func P2Skin() *Remap {
	const blonde = 2.8
	const darkBlonde = 2.2
	return &Remap{
		Name:           "p2",
		AlphaThreshold: DefaultAlphaThreshold,
		Rules: []Rule{
			{
				Name:  "suit-bright",
				Match: Match{Class: "gray", MinBrightness: 140},
				Then:  Transform{Scale: [3]float64{0.55, 1.05, 1.3}},
			},
			{
				Name:  "suit-shade",
				Match: Match{Class: "gray", MinBrightness: 50},
				Then:  Transform{Scale: [3]float64{0.6, 1.0, 1.2}},
			},
			{
				Name:  "afro",
				Match: Match{Class: "warm", MinBrightness: 30},
				Then: Transform{
					Scale: [3]float64{blonde, blonde, blonde * 0.9},
					Cap:   [3]float64{240, 220, 180},
				},
			},
			{
				Name:  "afro-shadow",
				Match: Match{Class: "warm"},
				Then: Transform{
					Scale: [3]float64{darkBlonde, darkBlonde, darkBlonde * 0.8},
					Cap:   [3]float64{180, 160, 120},
				},
			},
		},
	}
}

// BuiltinSkins returns the compiled-in skin table.
func BuiltinSkins() map[string]*Remap {
	p2 := P2Skin()
	return map[string]*Remap{p2.Name: p2}
}
