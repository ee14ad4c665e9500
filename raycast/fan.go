package raycast

import (
	"math"
	"sort"
)

// silhouetteEpsilon is the angular offset added on either side of each
// endpoint-aligned ray so the fan wraps around wall silhouettes instead of
// stopping dead on them.
const silhouetteEpsilon = 1e-4

// FanDirections returns n unit directions evenly spaced across a field of
// view centered on angle, endpoints included. With n == 1 the single
// direction points at the start of the arc, matching linspace semantics.
// Returns nil for n <= 0.
func FanDirections(angle, fov float64, n int) []Point {
	if n <= 0 {
		return nil
	}
	start := angle - fov/2
	if n == 1 {
		return []Point{Direction(start)}
	}
	step := fov / float64(n-1)
	dirs := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		dirs = append(dirs, Direction(start+float64(i)*step))
	}
	return dirs
}

// SilhouetteDirections returns one direction toward every distinct wall
// endpoint, each flanked by a pair of offset rays just to either side,
// sorted by angle with duplicates removed. Casting along these directions
// captures obstacle silhouettes exactly instead of approximating them with
// a fixed angular resolution.
func SilhouetteDirections(origin Point, walls *WallSet) []Point {
	vertices := collectVertices(walls)

	var angles []float64
	for _, vertex := range vertices {
		angle := math.Atan2(vertex.Y-origin.Y, vertex.X-origin.X)
		angles = append(angles,
			angle-silhouetteEpsilon,
			angle,
			angle+silhouetteEpsilon,
		)
	}

	seen := make(map[float64]bool)
	var unique []float64
	for _, angle := range angles {
		// Normalize to [0, 2π) so duplicates from opposite windings collapse.
		normalized := math.Mod(angle, 2*math.Pi)
		if normalized < 0 {
			normalized += 2 * math.Pi
		}
		if !seen[normalized] {
			seen[normalized] = true
			unique = append(unique, normalized)
		}
	}
	sort.Float64s(unique)

	dirs := make([]Point, 0, len(unique))
	for _, angle := range unique {
		dirs = append(dirs, Direction(angle))
	}
	return dirs
}

// collectVertices extracts all unique endpoint vertices from the wall set.
func collectVertices(walls *WallSet) []Point {
	seen := make(map[Point]bool)
	var vertices []Point
	for _, wall := range walls.Segments() {
		if !seen[wall.A] {
			seen[wall.A] = true
			vertices = append(vertices, wall.A)
		}
		if !seen[wall.B] {
			seen[wall.B] = true
			vertices = append(vertices, wall.B)
		}
	}
	return vertices
}
