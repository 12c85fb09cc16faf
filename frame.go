package polynest

import "github.com/jbeda/geom"

// Polygon is one nesting level's geometry for a single frame. Level 0 is the
// outermost polygon; deeper levels shrink toward the center.
type Polygon struct {
	Level    int
	Radius   float64
	Rotation float64

	// Points is the closed vertex loop (Sides+1 points, first repeated last).
	Points []geom.Coord
}

// FrameResult is the complete geometric state of one frame: the ordered stack
// of visible polygons, outermost first, plus the number of nesting slots left
// inactive. A renderer holding a persistent drawable per slot blanks the
// inactive tail.
type FrameResult struct {
	Polygons []Polygon
	Inactive int
}

// BuildFrame computes the nested polygon stack for one frame. It is a pure
// function of the frame index and config: no state survives between calls and
// identical inputs produce identical output, so frames may be built in
// parallel.
//
// The rotation increment for the frame is applied cumulatively per level
// (level i sits at i times the increment) while the radius recursion always
// steps by the single increment. The loop stops once a level's radius falls
// below RadiusMin or the increment is zero; the level that trips the stop is
// itself reported inactive, so a zero-rotation frame (frame 0) has no visible
// polygons at all.
//
// cfg must have passed Validate.
func BuildFrame(frame int, cfg Config) FrameResult {
	drot := cfg.RotationIncrement(frame)

	enclosing := RadiusMax
	last := cfg.MaxPolygons

	var polys []Polygon
	for i := 0; i < cfg.MaxPolygons; i++ {
		radius := NextRadius(drot, enclosing, cfg.Sides)
		rotation := drot * float64(i)
		polys = append(polys, Polygon{
			Level:    i,
			Radius:   radius,
			Rotation: rotation,
			Points:   Vertices(cfg.Sides, radius, rotation),
		})
		enclosing = radius

		if radius < RadiusMin || drot == 0 {
			last = i
			break
		}
	}

	return FrameResult{
		Polygons: polys[:last],
		Inactive: cfg.MaxPolygons - last,
	}
}
