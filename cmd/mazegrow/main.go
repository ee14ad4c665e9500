package main

import (
	"flag"
	"fmt"
	"image/color"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/glowbox-games/glowbox/internal/scene"
	"github.com/glowbox-games/glowbox/internal/vecdraw"
	"github.com/glowbox-games/glowbox/maze"
)

var (
	mazeWidth  = flag.Int("width", 31, "maze width in cells, must be odd")
	mazeHeight = flag.Int("height", 21, "maze height in cells, must be odd")
	cellSize   = flag.Float64("cell", 30, "cell size in pixels")
	stepsTick  = flag.Int("speed", 1, "growth steps replayed per tick")
	seed       = flag.Int64("seed", 0, "maze seed, 0 picks one from the clock")
)

var floorColor = color.RGBA{R: 0xe8, G: 0xe8, B: 0xe0, A: 0xff}

// growScene replays a finished maze's growth steps one tick at a time,
// then outlines the open area with its extracted wall segments.
type growScene struct {
	rng    *rand.Rand
	result *maze.Result
	grid   [][]bool
	next   int
	logger *log.Logger
}

func newGrowScene(rng *rand.Rand, logger *log.Logger) (*growScene, error) {
	s := &growScene{rng: rng, logger: logger}
	if err := s.regrow(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *growScene) regrow() error {
	result, err := maze.Generate(maze.Config{
		Width:  *mazeWidth,
		Height: *mazeHeight,
		Seed:   s.rng.Int63(),
	})
	if err != nil {
		return err
	}
	s.result = result
	s.next = 0

	// Start from an all-closed grid and let the replay open it up.
	s.grid = make([][]bool, result.Height)
	for y := range s.grid {
		s.grid[y] = make([]bool, result.Width)
	}
	s.logger.Info("grew maze", "seed", result.Seed, "steps", len(result.Steps))
	return nil
}

func (s *growScene) done() bool {
	return s.next >= len(s.result.Steps)
}

func (s *growScene) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		return s.regrow()
	}

	for i := 0; i < *stepsTick && !s.done(); i++ {
		for _, ch := range s.result.Steps[s.next] {
			s.grid[ch.Y][ch.X] = ch.Open
		}
		s.next++
	}
	return nil
}

func (s *growScene) Draw(screen *ebiten.Image) {
	cell := float32(*cellSize)
	for y, row := range s.grid {
		for x, open := range row {
			if open {
				vecdraw.FillRect(screen, float32(x)*cell, float32(y)*cell, cell, cell, floorColor)
			}
		}
	}

	if s.done() {
		for _, wall := range maze.Walls(s.grid, *cellSize).Segments() {
			vecdraw.Line(screen, wall.A, wall.B, 2, color.RGBA{R: 0xff, G: 0x60, B: 0x30, A: 0xff})
		}
	}

	msg := fmt.Sprintf("step %d/%d  R: regrow", s.next, len(s.result.Steps))
	ebitenutil.DebugPrintAt(screen, msg, 4, 4)
}

func main() {
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	s, err := newGrowScene(rand.New(rand.NewSource(*seed)), logger)
	if err != nil {
		logger.Fatal("maze generation failed", "err", err)
	}

	w := int(float64(*mazeWidth) * *cellSize)
	h := int(float64(*mazeHeight) * *cellSize)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Maze Growth")
	if err := ebiten.RunGame(scene.NewContext(w, h, s)); err != nil {
		logger.Fatal("game loop failed", "err", err)
	}
}
