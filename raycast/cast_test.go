package raycast

import (
	"errors"
	"math"
	"testing"
)

func TestCastEmptyWallSet(t *testing.T) {
	ws := NewWallSet()

	hit, err := Cast(Point{3, 4}, Point{0, 1}, ws, 50)
	if err != nil {
		t.Fatalf("Cast failed: %v", err)
	}
	if !hit.Missed() {
		t.Error("Expected a miss against an empty wall set")
	}
	if hit.Distance != 50 {
		t.Errorf("Expected miss distance 50, got %g", hit.Distance)
	}
	if hit.Point != (Point{3, 54}) {
		t.Errorf("Expected miss point at (3, 54), got (%g, %g)", hit.Point.X, hit.Point.Y)
	}
}

func TestCastStraightUp(t *testing.T) {
	wall, err := NewWall(Point{0, 0}, Point{10, 0})
	if err != nil {
		t.Fatalf("NewWall failed: %v", err)
	}
	ws := NewWallSet(wall)

	hit, err := Cast(Point{5, -5}, Point{0, 1}, ws, 1000)
	if err != nil {
		t.Fatalf("Cast failed: %v", err)
	}
	if hit.Missed() {
		t.Fatal("Expected a hit")
	}
	if hit.Point != (Point{5, 0}) {
		t.Errorf("Expected hit at (5, 0), got (%g, %g)", hit.Point.X, hit.Point.Y)
	}
	if hit.Distance != 5 {
		t.Errorf("Expected hit distance 5, got %g", hit.Distance)
	}
	if hit.Wall != 0 {
		t.Errorf("Expected wall index 0, got %d", hit.Wall)
	}
}

func TestCastUnnormalizedDirection(t *testing.T) {
	ws := NewWallSet(Wall{A: Point{0, 0}, B: Point{10, 0}})

	// (0, 7) must behave exactly like the unit vector (0, 1).
	hit, err := Cast(Point{5, -5}, Point{0, 7}, ws, 1000)
	if err != nil {
		t.Fatalf("Cast failed: %v", err)
	}
	if hit.Point != (Point{5, 0}) || hit.Distance != 5 {
		t.Errorf("Expected hit at (5, 0) distance 5, got (%g, %g) distance %g",
			hit.Point.X, hit.Point.Y, hit.Distance)
	}
}

func TestCastOcclusion(t *testing.T) {
	near := Wall{A: Point{0, 5}, B: Point{10, 5}}
	far := Wall{A: Point{0, 10}, B: Point{10, 10}}
	ws := NewWallSet(far, near)

	hit, err := Cast(Point{5, 0}, Point{0, 1}, ws, 1000)
	if err != nil {
		t.Fatalf("Cast failed: %v", err)
	}
	if hit.Distance != 5 {
		t.Errorf("Expected the nearer wall at distance 5, got %g", hit.Distance)
	}
	if hit.Wall != 1 {
		t.Errorf("Expected wall index 1 (the nearer wall), got %d", hit.Wall)
	}
}

func TestCastParallelMiss(t *testing.T) {
	ws := NewWallSet(Wall{A: Point{0, 0}, B: Point{10, 0}})

	offsets := []float64{-5, -0.001, 0.001, 5}
	for _, offset := range offsets {
		hit, err := Cast(Point{0, offset}, Point{1, 0}, ws, 1000)
		if err != nil {
			t.Fatalf("Cast failed at offset %g: %v", offset, err)
		}
		if !hit.Missed() {
			t.Errorf("Expected a parallel ray at offset %g to miss", offset)
		}
	}
}

func TestCastCollinearMiss(t *testing.T) {
	ws := NewWallSet(Wall{A: Point{0, 0}, B: Point{10, 0}})

	// Collinear overlap has no single closest point and is not a hit.
	hit, err := Cast(Point{-5, 0}, Point{1, 0}, ws, 1000)
	if err != nil {
		t.Fatalf("Cast failed: %v", err)
	}
	if !hit.Missed() {
		t.Error("Expected a collinear ray to miss")
	}
}

func TestCastRangeBoundary(t *testing.T) {
	ws := NewWallSet(Wall{A: Point{0, 10}, B: Point{10, 10}})
	origin := Point{5, 0}
	up := Point{0, 1}

	// Wall exactly at max range counts as a hit.
	hit, err := Cast(origin, up, ws, 10)
	if err != nil {
		t.Fatalf("Cast failed: %v", err)
	}
	if hit.Missed() {
		t.Error("Expected a wall exactly at max range to register as a hit")
	}
	if hit.Distance != 10 {
		t.Errorf("Expected hit distance 10, got %g", hit.Distance)
	}

	// Wall just beyond max range does not.
	hit, err = Cast(origin, up, ws, 10-1e-9)
	if err != nil {
		t.Fatalf("Cast failed: %v", err)
	}
	if !hit.Missed() {
		t.Error("Expected a wall just beyond max range to miss")
	}
}

func TestCastTieBreakInsertionOrder(t *testing.T) {
	// Both walls lie on y = 10 and intersect the ray at exactly t == 10.
	first := Wall{A: Point{0, 10}, B: Point{10, 10}}
	second := Wall{A: Point{-5, 10}, B: Point{15, 10}}

	hit, err := Cast(Point{5, 0}, Point{0, 1}, NewWallSet(first, second), 1000)
	if err != nil {
		t.Fatalf("Cast failed: %v", err)
	}
	if hit.Wall != 0 {
		t.Errorf("Expected the first-declared wall to win the tie, got index %d", hit.Wall)
	}

	// Swapping the declaration order must swap the winner.
	hit, err = Cast(Point{5, 0}, Point{0, 1}, NewWallSet(second, first), 1000)
	if err != nil {
		t.Fatalf("Cast failed: %v", err)
	}
	if hit.Wall != 0 {
		t.Errorf("Expected the swapped first wall to win the tie, got index %d", hit.Wall)
	}
}

func TestCastDeterminism(t *testing.T) {
	ws := NewWallSet(
		Wall{A: Point{-3.7, 12.1}, B: Point{8.9, 4.2}},
		Wall{A: Point{1.1, -2.2}, B: Point{6.6, 9.3}},
	)
	origin := Point{0.3, 0.7}
	dir := Point{0.6, 0.8}

	reference, err := Cast(origin, dir, ws, 500)
	if err != nil {
		t.Fatalf("Cast failed: %v", err)
	}
	for i := 0; i < 100; i++ {
		hit, err := Cast(origin, dir, ws, 500)
		if err != nil {
			t.Fatalf("Cast failed on repeat %d: %v", i, err)
		}
		if hit != reference {
			t.Fatalf("Cast is not deterministic: repeat %d gave %+v, want %+v", i, hit, reference)
		}
	}
}

func TestCastInvalidArguments(t *testing.T) {
	ws := NewWallSet(Wall{A: Point{0, 0}, B: Point{10, 0}})

	if _, err := Cast(Point{}, Point{0, 1}, ws, 0); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument for zero max range, got %v", err)
	}
	if _, err := Cast(Point{}, Point{0, 1}, ws, -5); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument for negative max range, got %v", err)
	}
	if _, err := Cast(Point{}, Point{0, 0}, ws, 10); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument for zero direction, got %v", err)
	}
}

func TestCastFanOrderPreserved(t *testing.T) {
	ws := NewWallSet(Wall{A: Point{-100, 20}, B: Point{100, 20}})

	dirs := FanDirections(math.Pi/2, math.Pi/3, 7)
	hits, err := CastFan(Point{0, 0}, dirs, ws, 1000)
	if err != nil {
		t.Fatalf("CastFan failed: %v", err)
	}
	if len(hits) != len(dirs) {
		t.Fatalf("Expected %d hits, got %d", len(dirs), len(hits))
	}

	// Each hit must correspond to its own direction: the hit point has to
	// lie along that ray.
	for i, hit := range hits {
		want := Direction(dirs[i].Angle()).Scale(hit.Distance)
		if math.Abs(hit.Point.X-want.X) > 1e-9 || math.Abs(hit.Point.Y-want.Y) > 1e-9 {
			t.Errorf("Hit %d does not lie along its input direction", i)
		}
	}
}

func TestCastFanEmptyDirections(t *testing.T) {
	ws := NewWallSet(Wall{A: Point{0, 0}, B: Point{10, 0}})

	hits, err := CastFan(Point{5, 5}, nil, ws, 100)
	if err != nil {
		t.Fatalf("CastFan failed: %v", err)
	}
	if len(hits) != 0 {
		t.Errorf("Expected no hits for no directions, got %d", len(hits))
	}
}
