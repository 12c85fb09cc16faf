package polynest

import (
	"fmt"
	"math"
)

// Radius bounds for the nesting stack. The outermost polygon always has
// radius RadiusMax; the recursion stops once a level's radius falls below
// RadiusMin.
const (
	RadiusMax = 1.0
	RadiusMin = 0.001
)

// Config holds the immutable parameters of one animation run. All frames are
// derived from it; nothing in the core mutates it.
type Config struct {
	// Sides is the number of sides of every polygon in the stack. Minimum 3.
	Sides int

	// Frames is the total number of animation frames. The per-frame rotation
	// increment sweeps from 0 at frame 0 to just under 2π/Sides at the last
	// frame, so the animation loops seamlessly.
	Frames int

	// MaxPolygons caps the nesting depth per frame.
	MaxPolygons int

	// ColorA and ColorB fill alternating nesting levels. The deepest allowed
	// slot is always drawn in the boundary color regardless of these.
	ColorA, ColorB Color
}

// Validate reports whether the configuration describes a drawable animation.
// Call it once at construction time; BuildFrame assumes a valid Config and is
// total for any frame index.
func (c Config) Validate() error {
	if c.Sides < 3 {
		return fmt.Errorf("config: %d sides does not form a polygon (minimum 3)", c.Sides)
	}
	if c.Frames < 1 {
		return fmt.Errorf("config: frame count %d, need at least 1", c.Frames)
	}
	if c.MaxPolygons < 1 {
		return fmt.Errorf("config: max polygons %d, need at least 1", c.MaxPolygons)
	}
	return nil
}

// RotationIncrement returns the rotation step between consecutive nesting
// levels for the given frame, in radians. It is held constant across all
// levels within one frame.
func (c Config) RotationIncrement(frame int) float64 {
	return float64(frame) / float64(c.Frames) * (2 * math.Pi / float64(c.Sides))
}
