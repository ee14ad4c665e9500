package raycast

import (
	"fmt"
	"math"
)

// parallelEpsilon is the threshold below which a ray/segment denominator is
// treated as exactly zero. Near-parallel pairs otherwise produce enormous
// spurious t values.
const parallelEpsilon = 1e-12

// Hit is the result of casting a single ray against a wall set. On a hit,
// Point is the closest intersection, Distance its distance from the ray
// origin, and Wall the index of the intersected wall in the set. On a miss
// Wall is -1 and Point is the ray's far end at max range, which is what a
// renderer draws for an unobstructed ray.
type Hit struct {
	Point    Point
	Distance float64
	Wall     int
}

// Missed reports whether the ray traveled to max range without
// intersecting any wall.
func (h Hit) Missed() bool {
	return h.Wall < 0
}

// Cast casts a single ray from origin along dir and returns the closest
// intersection with any wall in the set, or a miss if the ray travels
// unobstructed for maxRange. The direction is normalized internally, so
// any non-zero vector works. A wall exactly at max range still counts as
// a hit. When two walls intersect the ray at exactly the same distance,
// the one declared first in the set wins.
func Cast(origin, dir Point, walls *WallSet, maxRange float64) (Hit, error) {
	if maxRange <= 0 {
		return Hit{}, fmt.Errorf("%w: max range must be positive, got %g", ErrInvalidArgument, maxRange)
	}
	length := dir.Length()
	if length < parallelEpsilon {
		return Hit{}, fmt.Errorf("%w: direction vector has zero length", ErrInvalidArgument)
	}
	d := dir.Scale(1 / length)

	best := Hit{
		Point:    origin.Add(d.Scale(maxRange)),
		Distance: maxRange,
		Wall:     -1,
	}
	for i, wall := range walls.Segments() {
		t, ok := intersectRaySegment(origin, d, wall)
		if !ok || t > maxRange {
			continue
		}
		// Strict comparison keeps the first-declared wall on exact ties.
		// A wall exactly at max range still beats the miss sentinel.
		if t < best.Distance || (t == best.Distance && best.Wall < 0) {
			best = Hit{
				Point:    origin.Add(d.Scale(t)),
				Distance: t,
				Wall:     i,
			}
		}
	}
	return best, nil
}

// CastFan casts one ray per direction, all from the same origin, and
// returns the hits in the same order as the directions. Each cast is
// independent of the others.
func CastFan(origin Point, dirs []Point, walls *WallSet, maxRange float64) ([]Hit, error) {
	hits := make([]Hit, 0, len(dirs))
	for _, dir := range dirs {
		hit, err := Cast(origin, dir, walls, maxRange)
		if err != nil {
			return nil, err
		}
		hits = append(hits, hit)
	}
	return hits, nil
}

// intersectRaySegment solves for the intersection of the ray
// origin + t*d (t >= 0) with the segment wall.A + u*(wall.B - wall.A)
// (0 <= u <= 1) and returns t. Parallel and collinear pairs report no
// intersection: a collinear overlap has no single well-defined closest
// point, and the case is vanishingly unlikely in randomized scenes.
func intersectRaySegment(origin, d Point, wall Wall) (float64, bool) {
	s := wall.B.Sub(wall.A)

	den := d.X*s.Y - d.Y*s.X
	if math.Abs(den) < parallelEpsilon {
		return 0, false
	}

	diff := wall.A.Sub(origin)
	t := (diff.X*s.Y - diff.Y*s.X) / den
	u := (diff.X*d.Y - diff.Y*d.X) / den

	if u < 0 || u > 1 || t < 0 {
		return 0, false
	}
	return t, true
}
