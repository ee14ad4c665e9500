// Package hideseek implements the hide-and-seek game: two ray-casting
// characters in a walled arena, each trying to spot the other inside its
// field of view first.
package hideseek

import (
	"github.com/glowbox-games/glowbox/raycast"
)

// Character is an entity on the playing field that sees by casting a fan
// of rays in its facing direction. Velocity and Rotation are applied every
// update, so holding a key simply keeps them non-zero.
type Character struct {
	Position raycast.Point
	Angle    float64 // facing direction in radians
	FOV      float64 // field of view in radians, centered on Angle
	Rays     int

	Velocity float64 // movement units per tick, negative moves backward
	Rotation float64 // radians per tick

	polygon []raycast.Point
}

// Heading returns the unit vector of the facing direction.
func (c *Character) Heading() raycast.Point {
	return raycast.Direction(c.Angle)
}

// Update advances the character one tick: applies rotation and velocity,
// clamps the position to the arena, and recomputes the vision polygon
// against the walls.
func (c *Character) Update(walls *raycast.WallSet, arena raycast.Bounds, maxRange float64) error {
	c.Angle += c.Rotation
	c.Position = c.Position.Add(c.Heading().Scale(c.Velocity))

	if c.Position.X < arena.MinX {
		c.Position.X = arena.MinX
	}
	if c.Position.X > arena.MaxX {
		c.Position.X = arena.MaxX
	}
	if c.Position.Y < arena.MinY {
		c.Position.Y = arena.MinY
	}
	if c.Position.Y > arena.MaxY {
		c.Position.Y = arena.MaxY
	}

	dirs := raycast.FanDirections(c.Angle, c.FOV, c.Rays)
	hits, err := raycast.CastFan(c.Position, dirs, walls, maxRange)
	if err != nil {
		return err
	}

	// The vision polygon fans out from the character's own position, so
	// the position itself is its first vertex.
	c.polygon = c.polygon[:0]
	c.polygon = append(c.polygon, c.Position)
	for _, hit := range hits {
		c.polygon = append(c.polygon, hit.Point)
	}
	return nil
}

// Sees reports whether a point lies inside the character's vision polygon.
// It is false before the first Update.
func (c *Character) Sees(p raycast.Point) bool {
	return raycast.Contains(p, c.polygon)
}

// VisionPolygon returns the current vision polygon vertices. The slice is
// reused between updates and must not be retained.
func (c *Character) VisionPolygon() []raycast.Point {
	return c.polygon
}
