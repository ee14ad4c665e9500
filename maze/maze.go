// Package maze generates grid mazes with the randomized Prim's algorithm
// and converts them into wall segments for ray casting. Generation records
// every growth step so hosts can animate the maze growing cell by cell.
package maze

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// ErrInvalidConfiguration reports malformed maze dimensions.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Config describes a maze to generate. Width and Height are in cells and
// must be odd and at least 3 so the passage lattice lines up with the
// border. Seed 0 picks a random seed.
type Config struct {
	Width, Height int
	Seed          int64
}

// Change is a single cell toggled during generation.
type Change struct {
	X, Y int
	Open bool
}

// Step groups the changes applied together in one growth step.
type Step []Change

// Result is a generated maze. Grid is indexed [y][x]; true marks an open
// passage cell, false a wall cell. Steps holds the growth history in
// order: replaying them onto an all-wall grid reproduces Grid.
type Result struct {
	Width, Height int
	Grid          [][]bool
	Steps         []Step
	Seed          int64
}

// Generate grows a maze with the randomized Prim's algorithm: start from a
// random interior cell, keep a frontier of candidate wall cells, and carve
// through a frontier cell whenever exactly one of its neighbors is already
// open and the cell opposite that neighbor is still interior.
func Generate(cfg Config) (*Result, error) {
	if cfg.Width < 3 || cfg.Width%2 == 0 {
		return nil, fmt.Errorf("%w: width must be odd and >= 3, got %d", ErrInvalidConfiguration, cfg.Width)
	}
	if cfg.Height < 3 || cfg.Height%2 == 0 {
		return nil, fmt.Errorf("%w: height must be odd and >= 3, got %d", ErrInvalidConfiguration, cfg.Height)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	grid := make([][]bool, cfg.Height)
	for y := range grid {
		grid[y] = make([]bool, cfg.Width)
	}

	res := &Result{
		Width:  cfg.Width,
		Height: cfg.Height,
		Grid:   grid,
		Seed:   seed,
	}

	// Start on the odd lattice so corridors stay one cell wide.
	firstX := 1 + 2*rng.Intn((cfg.Width-1)/2)
	firstY := 1 + 2*rng.Intn((cfg.Height-1)/2)
	res.open(firstX, firstY)

	frontier := res.interiorClosedNeighbors(firstX, firstY)
	for len(frontier) > 0 {
		i := rng.Intn(len(frontier))
		c := frontier[i]

		if open := res.openNeighbors(c.X, c.Y); len(open) == 1 {
			// Carve through the frontier cell toward the side opposite its
			// single open neighbor, if that side is still interior.
			ox := 2*c.X - open[0].X
			oy := 2*c.Y - open[0].Y
			if res.interior(ox, oy) && !grid[oy][ox] {
				res.Steps = append(res.Steps, Step{
					{X: c.X, Y: c.Y, Open: true},
					{X: ox, Y: oy, Open: true},
				})
				grid[c.Y][c.X] = true
				grid[oy][ox] = true
				frontier = append(frontier, res.interiorClosedNeighbors(ox, oy)...)
			}
		}

		frontier[i] = frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
	}

	return res, nil
}

// Cell is a grid coordinate.
type Cell struct {
	X, Y int
}

func (r *Result) open(x, y int) {
	r.Steps = append(r.Steps, Step{{X: x, Y: y, Open: true}})
	r.Grid[y][x] = true
}

// interior reports whether the cell exists and is not on the border.
func (r *Result) interior(x, y int) bool {
	return x > 0 && x < r.Width-1 && y > 0 && y < r.Height-1
}

func (r *Result) openNeighbors(x, y int) []Cell {
	var out []Cell
	for _, d := range [4]Cell{{0, -1}, {1, 0}, {0, 1}, {-1, 0}} {
		nx, ny := x+d.X, y+d.Y
		if nx >= 0 && nx < r.Width && ny >= 0 && ny < r.Height && r.Grid[ny][nx] {
			out = append(out, Cell{nx, ny})
		}
	}
	return out
}

func (r *Result) interiorClosedNeighbors(x, y int) []Cell {
	var out []Cell
	for _, d := range [4]Cell{{0, -1}, {1, 0}, {0, 1}, {-1, 0}} {
		nx, ny := x+d.X, y+d.Y
		if r.interior(nx, ny) && !r.Grid[ny][nx] {
			out = append(out, Cell{nx, ny})
		}
	}
	return out
}
