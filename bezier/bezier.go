// Package bezier generates polyline approximations of quadratic and cubic
// Bezier curves and prunes nearly-collinear points from the result.
package bezier

import "math"

// Point is a 2D point in content coordinates.
type Point struct {
	X, Y float64
}

// Quadratic evaluates the quadratic curve through control points p0, p1, p2
// at segments+1 evenly spaced parameter values, endpoints included.
func Quadratic(p0, p1, p2 Point, segments int) []Point {
	if segments < 1 {
		segments = 1
	}
	pts := make([]Point, 0, segments+1)
	for i := 0; i <= segments; i++ {
		t := float64(i) / float64(segments)
		u := 1 - t
		pts = append(pts, Point{
			X: u*u*p0.X + 2*u*t*p1.X + t*t*p2.X,
			Y: u*u*p0.Y + 2*u*t*p1.Y + t*t*p2.Y,
		})
	}
	return pts
}

// Cubic evaluates the cubic curve through control points p0..p3 at
// segments+1 evenly spaced parameter values, endpoints included.
func Cubic(p0, p1, p2, p3 Point, segments int) []Point {
	if segments < 1 {
		segments = 1
	}
	pts := make([]Point, 0, segments+1)
	for i := 0; i <= segments; i++ {
		t := float64(i) / float64(segments)
		u := 1 - t
		pts = append(pts, Point{
			X: u*u*u*p0.X + 3*u*u*t*p1.X + 3*u*t*t*p2.X + t*t*t*p3.X,
			Y: u*u*u*p0.Y + 3*u*u*t*p1.Y + 3*u*t*t*p2.Y + t*t*t*p3.Y,
		})
	}
	return pts
}

// Simplify drops interior points that lie within tolerance of the chord
// through their surviving neighbors, walking the polyline once. Endpoints
// are always kept. Inputs with fewer than three points are returned as-is.
func Simplify(pts []Point, tolerance float64) []Point {
	if len(pts) < 3 || tolerance <= 0 {
		return pts
	}
	out := make([]Point, 0, len(pts))
	out = append(out, pts[0])
	anchor := pts[0]
	for i := 1; i < len(pts)-1; i++ {
		if perpDist(anchor, pts[i+1], pts[i]) > tolerance {
			out = append(out, pts[i])
			anchor = pts[i]
		}
	}
	return append(out, pts[len(pts)-1])
}

// perpDist is the perpendicular distance from p to the line through a and b.
// Coincident a and b degrade to plain point distance.
func perpDist(a, b, p Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return math.Hypot(p.X-a.X, p.Y-a.Y)
	}
	return math.Abs(dx*(a.Y-p.Y)-dy*(a.X-p.X)) / length
}
