package raycast

// VisibilityPolygon computes the region visible from origin given the wall
// set, as polygon vertices in angular order. Rays are cast toward every
// wall silhouette, so polygon edges align exactly with wall edges. Rays
// that hit nothing extend to maxRange, closing the polygon along an arc of
// unobstructed rays.
func VisibilityPolygon(origin Point, walls *WallSet, maxRange float64) ([]Point, error) {
	dirs := SilhouetteDirections(origin, walls)
	hits, err := CastFan(origin, dirs, walls, maxRange)
	if err != nil {
		return nil, err
	}
	polygon := make([]Point, 0, len(hits))
	for _, hit := range hits {
		polygon = append(polygon, hit.Point)
	}
	return polygon, nil
}

// Contains tests whether a point lies inside a polygon using the even-odd
// ray crossing rule.
func Contains(point Point, polygon []Point) bool {
	inside := false
	j := len(polygon) - 1

	for i := 0; i < len(polygon); i++ {
		xi, yi := polygon[i].X, polygon[i].Y
		xj, yj := polygon[j].X, polygon[j].Y

		if ((yi > point.Y) != (yj > point.Y)) &&
			(point.X < (xj-xi)*(point.Y-yi)/(yj-yi)+xi) {
			inside = !inside
		}
		j = i
	}

	return inside
}
