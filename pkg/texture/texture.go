// Package texture provides procedural pixel-art synthesizers: brick
// courses, wood grain, faceted spheres, hanging ropes, light effects
// and a tiny bitmap font. Every synthesizer that needs randomness
// takes an explicit *rand.Rand so callers control determinism; the
// same generator state and parameters always produce identical pixels.
package texture

// Rect is an integer region with origin (X, Y) and size W x H.
type Rect struct {
	X, Y, W, H int
}

// Right returns the first x coordinate past the region.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the first y coordinate past the region.
func (r Rect) Bottom() int { return r.Y + r.H }
