package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/glowbox-games/glowbox/internal/scene"
	"github.com/glowbox-games/glowbox/mandelbrot"
)

var (
	screenWidth    = flag.Int("width", 400, "render width in pixels")
	screenHeight   = flag.Int("height", 300, "render height in pixels")
	windowScale    = flag.Int("scale", 2, "window scale factor")
	iterations     = flag.Int("iterations", 100, "starting iteration limit")
	shotPath       = flag.String("screenshot", "mandelbrot.png", "screenshot file path")
	shotWidth      = flag.Int("screenshot-width", 3840, "screenshot width in pixels")
	shotHeight     = flag.Int("screenshot-height", 2160, "screenshot height in pixels")
	shotIterations = flag.Int("screenshot-iterations", 1000, "screenshot iteration limit")
)

// Fraction of the window width panned per keypress, and the zoom step.
const (
	panFraction = 0.05
	zoomStep    = 0.7
)

type explorerScene struct {
	set     *mandelbrot.Set
	img     *ebiten.Image
	palette int
	logger  *log.Logger
}

func (s *explorerScene) Update() error {
	s.readKeys()
	s.readMouse()
	return nil
}

func (s *explorerScene) readKeys() {
	aMin, aMax, bMin, bMax := s.set.Window()
	da := (aMax - aMin) * panFraction
	db := (bMax - bMin) * panFraction

	if ebiten.IsKeyPressed(ebiten.KeyA) {
		s.set.Translate(-da, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		s.set.Translate(da, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		s.set.Translate(0, -db)
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		s.set.Translate(0, db)
	}

	if ebiten.IsKeyPressed(ebiten.KeyQ) {
		a, b := s.set.Center()
		s.set.ZoomComplex(a, b, 1/zoomStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyE) {
		a, b := s.set.Center()
		s.set.ZoomComplex(a, b, zoomStep)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyZ) {
		s.set.SetMaxIterations(s.set.MaxIterations() / 2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		s.set.SetMaxIterations(s.set.MaxIterations() * 2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		s.set.CenterPixel(ebiten.CursorPosition())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		s.palette = (s.palette + 1) % len(mandelbrot.Palettes)
		s.set.SetPalette(mandelbrot.Palettes[s.palette])
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.set.ResetWindow()
	}
}

func (s *explorerScene) readMouse() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.set.CenterPixel(ebiten.CursorPosition())
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		s.set.ResetWindow()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle) {
		s.saveScreenshot()
	}

	if _, dy := ebiten.Wheel(); dy != 0 {
		factor := zoomStep
		if dy < 0 {
			factor = 1 / zoomStep
		}
		x, y := ebiten.CursorPosition()
		s.set.ZoomPixel(x, y, factor)
	}
}

func (s *explorerScene) saveScreenshot() {
	start := time.Now()
	if err := s.set.SaveImage(*shotPath, *shotWidth, *shotHeight, *shotIterations); err != nil {
		s.logger.Error("screenshot failed", "err", err)
		return
	}
	s.logger.Info("screenshot saved", "path", *shotPath, "took", time.Since(start))
}

func (s *explorerScene) Draw(screen *ebiten.Image) {
	s.img.WritePixels(s.set.Pix())
	screen.DrawImage(s.img, nil)

	x, y := ebiten.CursorPosition()
	a, b := s.set.PixelToComplex(x, y)
	overlay := fmt.Sprintf("%.6g%+.6gi  iter %d", a, b, s.set.MaxIterations())
	ebitenutil.DebugPrintAt(screen, overlay, 4, *screenHeight-16)
}

func main() {
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})

	set, err := mandelbrot.NewSet(-2.5, 1.5, -1.5, 1.5, *screenWidth, *screenHeight, *iterations, mandelbrot.Palettes[0])
	if err != nil {
		logger.Fatal("invalid render settings", "err", err)
	}
	s := &explorerScene{
		set:    set,
		img:    ebiten.NewImage(*screenWidth, *screenHeight),
		logger: logger,
	}
	logger.Info("starting mandelbrot explorer", "width", *screenWidth, "height", *screenHeight, "iterations", *iterations)

	ebiten.SetWindowSize(*screenWidth**windowScale, *screenHeight**windowScale)
	ebiten.SetWindowTitle("Mandelbrot Explorer")
	if err := ebiten.RunGame(scene.NewContext(*screenWidth, *screenHeight, s)); err != nil {
		logger.Fatal("game loop failed", "err", err)
	}
}
