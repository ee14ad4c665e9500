// Package scene provides the minimal scene abstraction shared by the toy
// hosts: each toy implements Scene, and Context adapts the active scene to
// ebiten's game loop.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one interactive screen: per-frame state updates and drawing.
// Input is read inside Update via ebiten's polling API.
type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// ContextAware is implemented by scenes that trigger transitions and need
// a handle back to their context.
type ContextAware interface {
	SetContext(*Context)
}

// Context owns the active scene and implements ebiten.Game with a fixed
// logical screen size.
type Context struct {
	width, height int
	current       Scene
}

// NewContext creates a context with a logical screen size showing the
// given scene first.
func NewContext(width, height int, first Scene) *Context {
	c := &Context{width: width, height: height}
	c.TransitionTo(first)
	return c
}

// TransitionTo makes the given scene the active one.
func (c *Context) TransitionTo(s Scene) {
	c.current = s
	if aware, ok := s.(ContextAware); ok {
		aware.SetContext(c)
	}
}

// Update advances the active scene by one tick.
func (c *Context) Update() error {
	return c.current.Update()
}

// Draw renders the active scene.
func (c *Context) Draw(screen *ebiten.Image) {
	c.current.Draw(screen)
}

// Layout reports the fixed logical screen size regardless of the window
// size.
func (c *Context) Layout(outsideWidth, outsideHeight int) (int, int) {
	return c.width, c.height
}
