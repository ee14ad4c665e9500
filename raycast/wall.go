package raycast

import (
	"fmt"
	"math/rand"
)

// Wall represents an impenetrable obstacle as a line segment between two
// endpoints.
type Wall struct {
	A, B Point
}

// NewWall creates a wall between two distinct endpoints. A zero-length
// segment has no well-defined intersection, so A == B is rejected.
func NewWall(a, b Point) (Wall, error) {
	if a == b {
		return Wall{}, fmt.Errorf("%w: wall endpoints coincide at (%g, %g)", ErrInvalidArgument, a.X, a.Y)
	}
	return Wall{A: a, B: b}, nil
}

// WallSet holds an ordered collection of walls. The insertion order is
// semantically irrelevant except as the tie-break when two walls produce
// exactly the same hit distance: the first-declared wall wins.
type WallSet struct {
	walls []Wall
}

// NewWallSet creates a wall set from the given walls, preserving order.
func NewWallSet(walls ...Wall) *WallSet {
	ws := &WallSet{walls: make([]Wall, len(walls))}
	copy(ws.walls, walls)
	return ws
}

// Add appends a wall to the set.
func (ws *WallSet) Add(w Wall) {
	ws.walls = append(ws.walls, w)
}

// Len returns the number of walls in the set.
func (ws *WallSet) Len() int {
	return len(ws.walls)
}

// Segments returns the walls in insertion order. The returned slice is the
// set's backing storage and must not be modified.
func (ws *WallSet) Segments() []Wall {
	return ws.walls
}

// Bounds is an axis-aligned rectangular region.
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Validate checks that the region has positive extent on both axes.
func (b Bounds) Validate() error {
	if b.MinX >= b.MaxX {
		return fmt.Errorf("%w: bounds min x %g >= max x %g", ErrInvalidConfiguration, b.MinX, b.MaxX)
	}
	if b.MinY >= b.MaxY {
		return fmt.Errorf("%w: bounds min y %g >= max y %g", ErrInvalidConfiguration, b.MinY, b.MaxY)
	}
	return nil
}

// RandomPoint returns a point drawn uniformly from the region.
func (b Bounds) RandomPoint(rng *rand.Rand) Point {
	return Point{
		X: b.MinX + rng.Float64()*(b.MaxX-b.MinX),
		Y: b.MinY + rng.Float64()*(b.MaxY-b.MinY),
	}
}

// Perimeter returns the four edges of the region as walls, clockwise from
// the top-left corner. Scenes use this to box in their playing field.
func (b Bounds) Perimeter() []Wall {
	tl := Point{b.MinX, b.MinY}
	tr := Point{b.MaxX, b.MinY}
	br := Point{b.MaxX, b.MaxY}
	bl := Point{b.MinX, b.MaxY}
	return []Wall{
		{A: tl, B: tr},
		{A: tr, B: br},
		{A: br, B: bl},
		{A: bl, B: tl},
	}
}

// Generate produces a wall set of count walls with endpoints drawn
// uniformly from the bounds region. The random source is supplied by the
// caller so generation is reproducible under a fixed seed. Overlapping
// walls are permitted; a degenerate draw (both endpoints equal) is
// redrawn, which with real-valued coordinates essentially never happens.
func Generate(rng *rand.Rand, count int, bounds Bounds) (*WallSet, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: wall count must be positive, got %d", ErrInvalidConfiguration, count)
	}
	if err := bounds.Validate(); err != nil {
		return nil, err
	}

	ws := &WallSet{walls: make([]Wall, 0, count)}
	for i := 0; i < count; i++ {
		a := bounds.RandomPoint(rng)
		b := bounds.RandomPoint(rng)
		for a == b {
			b = bounds.RandomPoint(rng)
		}
		ws.walls = append(ws.walls, Wall{A: a, B: b})
	}
	return ws, nil
}
