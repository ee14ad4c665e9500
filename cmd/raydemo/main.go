package main

import (
	"flag"
	"fmt"
	"image/color"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/glowbox-games/glowbox/internal/scene"
	"github.com/glowbox-games/glowbox/internal/vecdraw"
	"github.com/glowbox-games/glowbox/raycast"
)

var (
	screenWidth  = flag.Int("width", 800, "screen width in pixels")
	screenHeight = flag.Int("height", 600, "screen height in pixels")
	wallCount    = flag.Int("walls", 10, "number of random wall segments")
	rayCount     = flag.Int("rays", 100, "number of rays in the fan")
	maxRange     = flag.Float64("range", 2000, "maximum ray range")
	polygonMode  = flag.Bool("polygon", false, "draw the visibility polygon instead of individual rays")
	seed         = flag.Int64("seed", 0, "wall layout seed, 0 picks one from the clock")
)

type demoScene struct {
	rng     *rand.Rand
	bounds  raycast.Bounds
	walls   *raycast.WallSet
	origin  raycast.Point
	hits    []raycast.Hit
	polygon []raycast.Point
}

func newDemoScene(rng *rand.Rand, bounds raycast.Bounds) (*demoScene, error) {
	s := &demoScene{rng: rng, bounds: bounds}
	if err := s.regenerate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *demoScene) regenerate() error {
	walls, err := raycast.Generate(s.rng, *wallCount, s.bounds)
	if err != nil {
		return err
	}
	for _, edge := range s.bounds.Perimeter() {
		walls.Add(edge)
	}
	s.walls = walls
	return nil
}

func (s *demoScene) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := s.regenerate(); err != nil {
			return err
		}
	}

	mx, my := ebiten.CursorPosition()
	s.origin = raycast.Point{X: float64(mx), Y: float64(my)}

	if *polygonMode {
		polygon, err := raycast.VisibilityPolygon(s.origin, s.walls, *maxRange)
		if err != nil {
			return err
		}
		s.polygon = polygon
		s.hits = nil
	} else {
		dirs := raycast.FanDirections(0, 2*math.Pi, *rayCount)
		hits, err := raycast.CastFan(s.origin, dirs, s.walls, *maxRange)
		if err != nil {
			return err
		}
		s.hits = hits
		s.polygon = nil
	}
	return nil
}

func (s *demoScene) Draw(screen *ebiten.Image) {
	if s.polygon != nil {
		vecdraw.FillPolygon(screen, s.polygon, color.RGBA{R: 0x50, G: 0x50, B: 0x20, A: 0x80})
	}
	for _, hit := range s.hits {
		vecdraw.Line(screen, s.origin, hit.Point, 1, color.RGBA{R: 0xff, G: 0xff, B: 0x60, A: 0x60})
	}
	for _, wall := range s.walls.Segments() {
		vecdraw.Line(screen, wall.A, wall.B, 3, color.White)
	}
	vecdraw.Circle(screen, s.origin, 5, color.RGBA{R: 0xff, G: 0xc0, B: 0x40, A: 0xff})

	ebitenutil.DebugPrintAt(screen, "R: new walls", 8, *screenHeight-20)
}

func main() {
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	logger.Info("starting ray demo", "walls", *wallCount, "rays", *rayCount, "seed", *seed)

	bounds := raycast.Bounds{MaxX: float64(*screenWidth), MaxY: float64(*screenHeight)}
	demo, err := newDemoScene(rand.New(rand.NewSource(*seed)), bounds)
	if err != nil {
		logger.Fatal("wall generation failed", "err", err)
	}

	ebiten.SetWindowSize(*screenWidth, *screenHeight)
	ebiten.SetWindowTitle(fmt.Sprintf("Ray Demo (%d rays)", *rayCount))
	if err := ebiten.RunGame(scene.NewContext(*screenWidth, *screenHeight, demo)); err != nil {
		logger.Fatal("game loop failed", "err", err)
	}
}
