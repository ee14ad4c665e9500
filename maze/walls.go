package maze

import "github.com/glowbox-games/glowbox/raycast"

// Walls converts the maze grid into ray-blocking wall segments. Each wall
// cell contributes one segment per edge that borders an open cell or the
// grid boundary, so rays only ever test exposed surfaces. cellSize scales
// grid coordinates into scene coordinates.
func Walls(grid [][]bool, cellSize float64) *raycast.WallSet {
	ws := raycast.NewWallSet()
	if len(grid) == 0 {
		return ws
	}
	height := len(grid)
	width := len(grid[0])

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if grid[y][x] {
				continue
			}
			cx := float64(x) * cellSize
			cy := float64(y) * cellSize

			// Top edge
			if y == 0 || grid[y-1][x] {
				ws.Add(raycast.Wall{
					A: raycast.Point{X: cx, Y: cy},
					B: raycast.Point{X: cx + cellSize, Y: cy},
				})
			}
			// Right edge
			if x == width-1 || grid[y][x+1] {
				ws.Add(raycast.Wall{
					A: raycast.Point{X: cx + cellSize, Y: cy},
					B: raycast.Point{X: cx + cellSize, Y: cy + cellSize},
				})
			}
			// Bottom edge
			if y == height-1 || grid[y+1][x] {
				ws.Add(raycast.Wall{
					A: raycast.Point{X: cx + cellSize, Y: cy + cellSize},
					B: raycast.Point{X: cx, Y: cy + cellSize},
				})
			}
			// Left edge
			if x == 0 || grid[y][x-1] {
				ws.Add(raycast.Wall{
					A: raycast.Point{X: cx, Y: cy + cellSize},
					B: raycast.Point{X: cx, Y: cy},
				})
			}
		}
	}
	return ws
}

// OpenCells returns the coordinates of all open cells, scanned in row
// order. Hosts use it to pick spawn locations.
func OpenCells(grid [][]bool) []Cell {
	var open []Cell
	for y := range grid {
		for x := range grid[y] {
			if grid[y][x] {
				open = append(open, Cell{X: x, Y: y})
			}
		}
	}
	return open
}
