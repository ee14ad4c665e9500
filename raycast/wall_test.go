package raycast

import (
	"errors"
	"math/rand"
	"testing"
)

func TestNewWallRejectsDegenerate(t *testing.T) {
	if _, err := NewWall(Point{3, 3}, Point{3, 3}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument for coincident endpoints, got %v", err)
	}

	wall, err := NewWall(Point{0, 0}, Point{1, 1})
	if err != nil {
		t.Fatalf("NewWall failed for a valid segment: %v", err)
	}
	if wall.A != (Point{0, 0}) || wall.B != (Point{1, 1}) {
		t.Errorf("Wall endpoints not preserved: %+v", wall)
	}
}

func TestWallSetPreservesInsertionOrder(t *testing.T) {
	walls := []Wall{
		{A: Point{0, 0}, B: Point{1, 0}},
		{A: Point{0, 1}, B: Point{1, 1}},
		{A: Point{0, 2}, B: Point{1, 2}},
	}
	ws := NewWallSet(walls[0], walls[1])
	ws.Add(walls[2])

	if ws.Len() != 3 {
		t.Fatalf("Expected 3 walls, got %d", ws.Len())
	}
	for i, wall := range ws.Segments() {
		if wall != walls[i] {
			t.Errorf("Wall %d out of order: got %+v, want %+v", i, wall, walls[i])
		}
	}
}

func TestBoundsValidate(t *testing.T) {
	valid := Bounds{MinX: 0, MinY: 0, MaxX: 800, MaxY: 600}
	if err := valid.Validate(); err != nil {
		t.Errorf("Expected valid bounds to pass, got %v", err)
	}

	degenerate := []Bounds{
		{MinX: 10, MinY: 0, MaxX: 10, MaxY: 600}, // zero width
		{MinX: 20, MinY: 0, MaxX: 10, MaxY: 600}, // inverted x
		{MinX: 0, MinY: 600, MaxX: 800, MaxY: 0}, // inverted y
	}
	for i, b := range degenerate {
		if err := b.Validate(); !errors.Is(err, ErrInvalidConfiguration) {
			t.Errorf("Bounds %d: expected ErrInvalidConfiguration, got %v", i, err)
		}
	}
}

func TestBoundsPerimeter(t *testing.T) {
	b := Bounds{MinX: 0, MinY: 0, MaxX: 800, MaxY: 600}

	edges := b.Perimeter()
	if len(edges) != 4 {
		t.Fatalf("Expected 4 perimeter walls, got %d", len(edges))
	}
	// The edges must chain: each wall starts where the previous ended.
	for i := range edges {
		next := edges[(i+1)%len(edges)]
		if edges[i].B != next.A {
			t.Errorf("Perimeter edge %d does not chain into the next", i)
		}
	}
}

func TestGenerateSeededReproducibility(t *testing.T) {
	bounds := Bounds{MinX: 0, MinY: 0, MaxX: 800, MaxY: 600}

	first, err := Generate(rand.New(rand.NewSource(42)), 25, bounds)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	second, err := Generate(rand.New(rand.NewSource(42)), 25, bounds)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if first.Len() != 25 || second.Len() != 25 {
		t.Fatalf("Expected 25 walls in both sets, got %d and %d", first.Len(), second.Len())
	}
	for i := range first.Segments() {
		if first.Segments()[i] != second.Segments()[i] {
			t.Fatalf("Wall %d differs between identically seeded generations", i)
		}
	}
}

func TestGenerateStaysInBounds(t *testing.T) {
	bounds := Bounds{MinX: 10, MinY: 20, MaxX: 110, MaxY: 220}

	ws, err := Generate(rand.New(rand.NewSource(7)), 100, bounds)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	for i, wall := range ws.Segments() {
		for _, p := range []Point{wall.A, wall.B} {
			if p.X < bounds.MinX || p.X > bounds.MaxX || p.Y < bounds.MinY || p.Y > bounds.MaxY {
				t.Errorf("Wall %d endpoint (%g, %g) outside bounds", i, p.X, p.Y)
			}
		}
		if wall.A == wall.B {
			t.Errorf("Wall %d is degenerate", i)
		}
	}
}

func TestGenerateInvalidInputs(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	bounds := Bounds{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100}

	if _, err := Generate(rng, 0, bounds); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("Expected ErrInvalidConfiguration for zero count, got %v", err)
	}
	if _, err := Generate(rng, -3, bounds); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("Expected ErrInvalidConfiguration for negative count, got %v", err)
	}
	if _, err := Generate(rng, 10, Bounds{MinX: 5, MinY: 0, MaxX: 5, MaxY: 10}); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("Expected ErrInvalidConfiguration for degenerate bounds, got %v", err)
	}
}
