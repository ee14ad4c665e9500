package hideseek

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/glowbox-games/glowbox/maze"
	"github.com/glowbox-games/glowbox/raycast"
)

// Outcome is how a round ended.
type Outcome int

const (
	// OutcomeNone means the round is still running.
	OutcomeNone Outcome = iota
	// OutcomeWin means the player spotted the enemy first.
	OutcomeWin
	// OutcomeLoss means the enemy spotted the player first.
	OutcomeLoss
	// OutcomeDraw means both spotted each other on the same tick.
	OutcomeDraw
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "YOU WON!"
	case OutcomeLoss:
		return "YOU LOST!"
	case OutcomeDraw:
		return "DRAW!"
	default:
		return ""
	}
}

// Config tunes a game. Zero values fall back to the defaults below.
type Config struct {
	Arena     raycast.Bounds
	WallCount int
	FOV       float64
	Rays      int
	MoveSpeed float64
	TurnSpeed float64
	MaxRange  float64

	// Maze switches the arena to maze-grid walls instead of random
	// segments. CellSize is the side length of one maze cell in scene
	// units and must be set alongside Maze.
	Maze     *maze.Config
	CellSize float64
}

// Default gameplay tuning, matching what the hideseek host ships with.
const (
	defaultWallCount = 5
	defaultRays      = 1000
	defaultMoveSpeed = 5
	defaultMaxRange  = 2000
)

func (cfg *Config) applyDefaults() {
	if cfg.WallCount == 0 {
		cfg.WallCount = defaultWallCount
	}
	if cfg.FOV == 0 {
		cfg.FOV = 72 * math.Pi / 180
	}
	if cfg.Rays == 0 {
		cfg.Rays = defaultRays
	}
	if cfg.MoveSpeed == 0 {
		cfg.MoveSpeed = defaultMoveSpeed
	}
	if cfg.TurnSpeed == 0 {
		cfg.TurnSpeed = 5 * math.Pi / 180
	}
	if cfg.MaxRange == 0 {
		cfg.MaxRange = defaultMaxRange
	}
}

// Game is one hide-and-seek session: a walled arena, the player, an
// initially invisible enemy wandering at random, and a running score
// across rounds.
type Game struct {
	Player *Character
	Enemy  *Character

	Walls   *raycast.WallSet
	Score   int
	Running bool

	cfg     Config
	rng     *rand.Rand
	outcome Outcome
}

// NewGame creates a game and starts its first round. The random source
// drives wall generation, spawn positions, and enemy wandering, so a
// seeded source reproduces a full session.
func NewGame(rng *rand.Rand, cfg Config) (*Game, error) {
	cfg.applyDefaults()
	if err := cfg.Arena.Validate(); err != nil {
		return nil, err
	}
	if cfg.Maze != nil && cfg.CellSize <= 0 {
		return nil, fmt.Errorf("%w: maze arenas need a positive cell size", raycast.ErrInvalidConfiguration)
	}

	g := &Game{
		Player: &Character{FOV: cfg.FOV, Rays: cfg.Rays},
		Enemy:  &Character{FOV: cfg.FOV, Rays: cfg.Rays},
		cfg:    cfg,
		rng:    rng,
	}
	if err := g.Restart(); err != nil {
		return nil, err
	}
	return g, nil
}

// Config returns the game's effective configuration.
func (g *Game) Config() Config {
	return g.cfg
}

// Outcome returns how the last round ended, or OutcomeNone while a round
// is running.
func (g *Game) Outcome() Outcome {
	return g.outcome
}

// Restart begins a new round: fresh walls, both characters respawned at
// random positions and headings. Random-segment arenas get new random
// walls boxed in by the perimeter; maze arenas get a newly grown maze.
// It does nothing while a round is still running.
func (g *Game) Restart() error {
	if g.Running {
		return nil
	}

	if g.cfg.Maze != nil {
		if err := g.restartMaze(); err != nil {
			return err
		}
	} else {
		walls, err := raycast.Generate(g.rng, g.cfg.WallCount, g.cfg.Arena)
		if err != nil {
			return err
		}
		for _, edge := range g.cfg.Arena.Perimeter() {
			walls.Add(edge)
		}
		g.Walls = walls

		g.spawn(g.Player)
		g.spawn(g.Enemy)
	}

	g.outcome = OutcomeNone
	g.Running = true
	return nil
}

// restartMaze grows a fresh maze and drops both characters onto random
// open cells. Reseeding from the game's source keeps whole sessions
// reproducible.
func (g *Game) restartMaze() error {
	mcfg := *g.cfg.Maze
	mcfg.Seed = g.rng.Int63()
	result, err := maze.Generate(mcfg)
	if err != nil {
		return err
	}
	g.Walls = maze.Walls(result.Grid, g.cfg.CellSize)

	open := maze.OpenCells(result.Grid)
	g.spawnInCell(g.Player, open[g.rng.Intn(len(open))])
	g.spawnInCell(g.Enemy, open[g.rng.Intn(len(open))])
	return nil
}

func (g *Game) spawn(c *Character) {
	c.Position = g.cfg.Arena.RandomPoint(g.rng)
	g.resetCharacter(c)
}

func (g *Game) spawnInCell(c *Character, cell maze.Cell) {
	c.Position = raycast.Point{
		X: (float64(cell.X) + 0.5) * g.cfg.CellSize,
		Y: (float64(cell.Y) + 0.5) * g.cfg.CellSize,
	}
	g.resetCharacter(c)
}

func (g *Game) resetCharacter(c *Character) {
	c.Angle = g.rng.Float64() * 2 * math.Pi
	c.Velocity = 0
	c.Rotation = 0
	c.polygon = c.polygon[:0]
}

// Step advances the game one tick and returns the outcome if the round
// ended on this tick. While the round is over, Step is a no-op until
// Restart is called.
func (g *Game) Step() (Outcome, error) {
	if !g.Running {
		return g.outcome, nil
	}

	g.wander()
	if err := g.Enemy.Update(g.Walls, g.cfg.Arena, g.cfg.MaxRange); err != nil {
		return OutcomeNone, err
	}
	if err := g.Player.Update(g.Walls, g.cfg.Arena, g.cfg.MaxRange); err != nil {
		return OutcomeNone, err
	}

	playerSees := g.Player.Sees(g.Enemy.Position)
	enemySees := g.Enemy.Sees(g.Player.Position)
	switch {
	case playerSees && enemySees:
		g.finish(OutcomeDraw)
	case playerSees:
		g.Score++
		g.finish(OutcomeWin)
	case enemySees:
		g.Score--
		g.finish(OutcomeLoss)
	}
	return g.outcome, nil
}

func (g *Game) finish(o Outcome) {
	g.outcome = o
	g.Running = false
}

// wander randomly perturbs the enemy's movement, giving it an aimless
// drifting patrol. Each impulse fires with 1% probability per tick.
func (g *Game) wander() {
	if g.rng.Float64() < 0.01 {
		g.Enemy.Velocity = g.cfg.MoveSpeed
	}
	if g.rng.Float64() < 0.01 {
		g.Enemy.Velocity = -g.cfg.MoveSpeed
	}
	if g.rng.Float64() < 0.01 {
		g.Enemy.Velocity = 0
	}
	if g.rng.Float64() < 0.01 {
		g.Enemy.Rotation = g.cfg.TurnSpeed
	}
	if g.rng.Float64() < 0.01 {
		g.Enemy.Rotation = -g.cfg.TurnSpeed
	}
	if g.rng.Float64() < 0.01 {
		g.Enemy.Rotation = 0
	}
}
