package main

import (
	"flag"
	"fmt"
	"image/color"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/glowbox-games/glowbox/audio"
	"github.com/glowbox-games/glowbox/internal/hideseek"
	"github.com/glowbox-games/glowbox/internal/scene"
	"github.com/glowbox-games/glowbox/internal/vecdraw"
	"github.com/glowbox-games/glowbox/maze"
	"github.com/glowbox-games/glowbox/raycast"
)

var (
	screenWidth  = flag.Int("width", 1050, "screen width in pixels")
	screenHeight = flag.Int("height", 750, "screen height in pixels")
	wallCount    = flag.Int("walls", 5, "number of random wall segments")
	rayCount     = flag.Int("rays", 1000, "rays per vision cone")
	mazeMode     = flag.Bool("maze", false, "play in a maze instead of an open arena")
	cellSize     = flag.Float64("cell", 50, "maze cell size in pixels")
	mute         = flag.Bool("mute", false, "disable sound effects")
	seed         = flag.Int64("seed", 0, "session seed, 0 picks one from the clock")
)

var (
	playerColor  = color.RGBA{R: 0x40, G: 0x80, B: 0xff, A: 0xff}
	playerVision = color.RGBA{R: 0x20, G: 0x40, B: 0x80, A: 0x60}
	enemyColor   = color.RGBA{R: 0xff, G: 0x40, B: 0x40, A: 0xff}
	enemyVision  = color.RGBA{R: 0x80, G: 0x20, B: 0x20, A: 0x60}
)

type gameScene struct {
	game   *hideseek.Game
	sounds *soundPlayer
}

func (s *gameScene) Update() error {
	s.readInput()

	wasRunning := s.game.Running
	outcome, err := s.game.Step()
	if err != nil {
		return err
	}
	if wasRunning && !s.game.Running {
		s.sounds.playOutcome(outcome)
	}
	return nil
}

func (s *gameScene) readInput() {
	player := s.game.Player
	cfg := s.game.Config()

	player.Velocity = 0
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		player.Velocity = cfg.MoveSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		player.Velocity = -cfg.MoveSpeed
	}

	player.Rotation = 0
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		player.Rotation = -cfg.TurnSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		player.Rotation = cfg.TurnSpeed
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) && !s.game.Running {
		if err := s.game.Restart(); err == nil {
			s.sounds.playBlip()
		}
	}
}

func (s *gameScene) Draw(screen *ebiten.Image) {
	vecdraw.FillPolygon(screen, s.game.Player.VisionPolygon(), playerVision)
	if !s.game.Running {
		// The enemy stays hidden until the round is decided.
		vecdraw.FillPolygon(screen, s.game.Enemy.VisionPolygon(), enemyVision)
		vecdraw.Circle(screen, s.game.Enemy.Position, 10, enemyColor)
	}
	vecdraw.Circle(screen, s.game.Player.Position, 10, playerColor)

	for _, wall := range s.game.Walls.Segments() {
		vecdraw.Line(screen, wall.A, wall.B, 3, color.White)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE: %d", s.game.Score), 8, *screenHeight-20)
	if !s.game.Running {
		msg := s.game.Outcome().String() + "  Hit R to play again"
		ebitenutil.DebugPrintAt(screen, msg, *screenWidth/2-60, *screenHeight/2)
	}
}

// soundPlayer queues sound effects on the speaker, or swallows them when
// muted or when audio initialization failed.
type soundPlayer struct {
	cfg     audio.Config
	enabled bool
}

func newSoundPlayer(logger *log.Logger) *soundPlayer {
	p := &soundPlayer{cfg: audio.DefaultConfig}
	if *mute {
		return p
	}
	rate := beep.SampleRate(p.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		logger.Warn("audio unavailable, continuing silently", "err", err)
		return p
	}
	p.enabled = true
	return p
}

func (p *soundPlayer) playOutcome(o hideseek.Outcome) {
	if !p.enabled {
		return
	}
	switch o {
	case hideseek.OutcomeWin:
		speaker.Play(audio.Victory(p.cfg))
	case hideseek.OutcomeLoss, hideseek.OutcomeDraw:
		speaker.Play(audio.Defeat(p.cfg))
	}
}

func (p *soundPlayer) playBlip() {
	if p.enabled {
		speaker.Play(audio.Blip(p.cfg))
	}
}

func main() {
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	logger.Info("starting hide and seek", "maze", *mazeMode, "seed", *seed)

	cfg := hideseek.Config{
		Arena:     raycast.Bounds{MaxX: float64(*screenWidth), MaxY: float64(*screenHeight)},
		WallCount: *wallCount,
		Rays:      *rayCount,
	}
	if *mazeMode {
		cfg.Maze = &maze.Config{
			Width:  oddCells(float64(*screenWidth), *cellSize),
			Height: oddCells(float64(*screenHeight), *cellSize),
		}
		cfg.CellSize = *cellSize
	}

	game, err := hideseek.NewGame(rand.New(rand.NewSource(*seed)), cfg)
	if err != nil {
		logger.Fatal("game setup failed", "err", err)
	}
	s := &gameScene{game: game, sounds: newSoundPlayer(logger)}

	ebiten.SetWindowSize(*screenWidth, *screenHeight)
	ebiten.SetWindowTitle("Hide and Seek")
	if err := ebiten.RunGame(scene.NewContext(*screenWidth, *screenHeight, s)); err != nil {
		logger.Fatal("game loop failed", "err", err)
	}
}

// oddCells returns the largest odd cell count fitting the span. Maze
// grids need odd dimensions so the border stays solid.
func oddCells(span, cell float64) int {
	n := int(span / cell)
	if n%2 == 0 {
		n--
	}
	return n
}
