// Package raycast implements 2D ray casting against sets of line-segment
// walls: nearest-hit queries for single rays, fans of rays sharing an
// origin, and visibility polygons with silhouette-aligned sampling.
package raycast

import "math"

// Point represents a 2D point in space. It doubles as a direction vector
// where a direction is expected.
type Point struct {
	X, Y float64
}

// Add returns the sum of two points treated as vectors.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns the difference of two points treated as vectors.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Scale returns the point scaled by a factor.
func (p Point) Scale(f float64) Point {
	return Point{p.X * f, p.Y * f}
}

// Length returns the Euclidean length of the point treated as a vector.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Angle returns the angle of the point treated as a vector, in radians.
func (p Point) Angle() float64 {
	return math.Atan2(p.Y, p.X)
}

// Direction returns the unit vector pointing at the given angle in radians.
func Direction(angle float64) Point {
	return Point{math.Cos(angle), math.Sin(angle)}
}

// Distance calculates the Euclidean distance between two points.
func Distance(a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}
