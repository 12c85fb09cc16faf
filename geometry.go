package polynest

import (
	"math"

	"github.com/jbeda/geom"
)

// Vertices returns the vertex loop of a regular n-gon of the given radius,
// centered at the origin and rotated by rotation radians. The loop is closed:
// n+1 points, with the first repeated at the end. A NaN radius yields NaN
// points, which downstream renderers treat as invisible.
func Vertices(n int, radius, rotation float64) []geom.Coord {
	step := 2 * math.Pi / float64(n)
	pts := make([]geom.Coord, n+1)
	for k := 0; k <= n; k++ {
		theta := rotation + float64(k)*step
		pts[k] = geom.Coord{
			X: radius * math.Cos(theta),
			Y: radius * math.Sin(theta),
		}
	}
	return pts
}

// NextRadius returns the radius of an n-gon rotated by rotationIncrement
// relative to an enclosing n-gon of enclosingRadius, such that every vertex of
// the inner polygon lies exactly on an edge of the outer one.
//
// The value is the closed-form intersection of the inner polygon's vertex ray
// with the enclosing edge. The ratio to enclosingRadius depends only on the
// increment and n, so repeated application with a fixed increment produces a
// geometric decay. A zero increment yields exactly enclosingRadius — no
// shrinkage — and callers iterating the recursion must stop on that case
// themselves.
func NextRadius(rotationIncrement, enclosingRadius float64, n int) float64 {
	alpha := 2 * math.Pi / float64(n)
	t := math.Tan((math.Pi - alpha) / 2)
	return (t * enclosingRadius) / (math.Sin(rotationIncrement) + t*math.Cos(rotationIncrement))
}
