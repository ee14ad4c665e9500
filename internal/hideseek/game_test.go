package hideseek

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/glowbox-games/glowbox/maze"
	"github.com/glowbox-games/glowbox/raycast"
)

var testArena = raycast.Bounds{MinX: 0, MinY: 0, MaxX: 800, MaxY: 600}

// newTestGame builds a running game with a known layout: only the arena
// perimeter as walls, the player at (100, 300), the enemy at (500, 300),
// both stationary with the given headings.
func newTestGame(t *testing.T, playerAngle, enemyAngle float64) *Game {
	t.Helper()
	g, err := NewGame(rand.New(rand.NewSource(1)), Config{Arena: testArena})
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	g.Walls = raycast.NewWallSet(testArena.Perimeter()...)
	g.Player.Position = raycast.Point{X: 100, Y: 300}
	g.Player.Angle = playerAngle
	g.Enemy.Position = raycast.Point{X: 500, Y: 300}
	g.Enemy.Angle = enemyAngle
	g.Enemy.Velocity = 0
	g.Enemy.Rotation = 0
	return g
}

func TestNewGameSeededReproducibility(t *testing.T) {
	cfg := Config{Arena: testArena}

	first, err := NewGame(rand.New(rand.NewSource(7)), cfg)
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	second, err := NewGame(rand.New(rand.NewSource(7)), cfg)
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}

	if first.Player.Position != second.Player.Position {
		t.Error("Player spawns differ between identically seeded games")
	}
	if first.Enemy.Position != second.Enemy.Position {
		t.Error("Enemy spawns differ between identically seeded games")
	}
	if first.Walls.Len() != second.Walls.Len() {
		t.Fatalf("Wall counts differ: %d vs %d", first.Walls.Len(), second.Walls.Len())
	}
	for i := range first.Walls.Segments() {
		if first.Walls.Segments()[i] != second.Walls.Segments()[i] {
			t.Fatalf("Wall %d differs between identically seeded games", i)
		}
	}
}

func TestNewGameIncludesPerimeter(t *testing.T) {
	g, err := NewGame(rand.New(rand.NewSource(3)), Config{Arena: testArena, WallCount: 8})
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	// 8 random walls plus the 4 arena edges.
	if g.Walls.Len() != 12 {
		t.Errorf("Expected 12 walls, got %d", g.Walls.Len())
	}
	if !g.Running {
		t.Error("Expected a fresh game to be running")
	}
}

func TestStepPlayerSpotsEnemy(t *testing.T) {
	// Player faces the enemy; the enemy faces away.
	g := newTestGame(t, 0, 0)

	outcome, err := g.Step()
	if err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	if outcome != OutcomeWin {
		t.Fatalf("Expected the player to win, got %v", outcome)
	}
	if g.Score != 1 {
		t.Errorf("Expected score 1 after a win, got %d", g.Score)
	}
	if g.Running {
		t.Error("Expected the round to stop after a spot")
	}
}

func TestStepEnemySpotsPlayer(t *testing.T) {
	// Player faces away; the enemy faces the player.
	g := newTestGame(t, math.Pi, math.Pi)

	outcome, err := g.Step()
	if err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	if outcome != OutcomeLoss {
		t.Fatalf("Expected the player to lose, got %v", outcome)
	}
	if g.Score != -1 {
		t.Errorf("Expected score -1 after a loss, got %d", g.Score)
	}
}

func TestStepMutualSpotIsDraw(t *testing.T) {
	// Both face each other.
	g := newTestGame(t, 0, math.Pi)

	outcome, err := g.Step()
	if err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	if outcome != OutcomeDraw {
		t.Fatalf("Expected a draw, got %v", outcome)
	}
	if g.Score != 0 {
		t.Errorf("Expected an unchanged score after a draw, got %d", g.Score)
	}
}

func TestStepWallBlocksSight(t *testing.T) {
	g := newTestGame(t, 0, math.Pi)
	// A tall wall between the two characters.
	g.Walls.Add(raycast.Wall{
		A: raycast.Point{X: 300, Y: 0},
		B: raycast.Point{X: 300, Y: 600},
	})

	outcome, err := g.Step()
	if err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	if outcome != OutcomeNone {
		t.Fatalf("Expected the round to continue behind a wall, got %v", outcome)
	}
	if !g.Running {
		t.Error("Expected the round to keep running")
	}
}

func TestRestartOnlyBetweenRounds(t *testing.T) {
	g := newTestGame(t, 0, 0)

	walls := g.Walls
	if err := g.Restart(); err != nil {
		t.Fatalf("Restart failed: %v", err)
	}
	if g.Walls != walls {
		t.Error("Expected Restart to be a no-op while the round is running")
	}

	if _, err := g.Step(); err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	if g.Running {
		t.Fatal("Expected the round to be over")
	}
	if err := g.Restart(); err != nil {
		t.Fatalf("Restart failed: %v", err)
	}
	if g.Walls == walls {
		t.Error("Expected Restart to regenerate the walls")
	}
	if !g.Running || g.Outcome() != OutcomeNone {
		t.Error("Expected a fresh running round after Restart")
	}
}

func TestCharacterClampedToArena(t *testing.T) {
	c := &Character{
		Position: raycast.Point{X: 5, Y: 300},
		Angle:    math.Pi, // facing left, toward the MinX edge
		FOV:      math.Pi / 2,
		Rays:     10,
		Velocity: 50,
	}
	walls := raycast.NewWallSet(testArena.Perimeter()...)

	if err := c.Update(walls, testArena, 2000); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if c.Position.X != testArena.MinX {
		t.Errorf("Expected the character clamped at x=%g, got %g", testArena.MinX, c.Position.X)
	}
}

func TestCharacterSeesNothingBeforeUpdate(t *testing.T) {
	c := &Character{Position: raycast.Point{X: 100, Y: 100}}
	if c.Sees(raycast.Point{X: 100, Y: 101}) {
		t.Error("Expected no visibility before the first update")
	}
}

func TestMazeArenaSpawnsOnOpenCells(t *testing.T) {
	cell := 30.0
	mcfg := &maze.Config{Width: 21, Height: 15, Seed: 7}
	g, err := NewGame(rand.New(rand.NewSource(1)), Config{
		Arena:    raycast.Bounds{MinX: 0, MinY: 0, MaxX: 21 * cell, MaxY: 15 * cell},
		Maze:     mcfg,
		CellSize: cell,
	})
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	if g.Walls.Len() == 0 {
		t.Fatal("Expected maze walls")
	}

	// Spawn points sit at cell centers, so flooring recovers the cell.
	for _, c := range []*Character{g.Player, g.Enemy} {
		x := int(c.Position.X / cell)
		y := int(c.Position.Y / cell)
		if c.Position.X != (float64(x)+0.5)*cell || c.Position.Y != (float64(y)+0.5)*cell {
			t.Errorf("Expected a cell-centered spawn, got %v", c.Position)
		}
	}
}

func TestMazeArenaNeedsCellSize(t *testing.T) {
	_, err := NewGame(rand.New(rand.NewSource(1)), Config{
		Arena: testArena,
		Maze:  &maze.Config{Width: 21, Height: 15},
	})
	if !errors.Is(err, raycast.ErrInvalidConfiguration) {
		t.Errorf("Expected ErrInvalidConfiguration, got %v", err)
	}
}
