// Package mandelbrot renders the Mandelbrot set with the escape-time
// algorithm over a movable complex window, colored through interpolated
// palettes. The raster is recomputed only when the window, iteration
// limit, or palette changes.
package mandelbrot

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration reports malformed window or raster parameters.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Iteration limits. Requests outside this range are clamped, matching the
// behavior of the interactive iteration halving/doubling controls.
const (
	MinIterations = 10
	MaxIterations = 10000
)

// Set is a rendered view of the Mandelbrot set. The window spans
// [aMin, aMax] on the real axis and [bMin, bMax] on the imaginary axis,
// sampled onto a width x height raster.
type Set struct {
	width, height int
	maxIterations int
	palette       *Palette

	aMin, aMax float64
	bMin, bMax float64

	// Original window, restored by ResetWindow.
	origAMin, origAMax float64
	origBMin, origBMax float64

	iterations []int
	pix        []byte // RGBA, row-major
}

// NewSet creates a set over the given complex window and raster size and
// renders it once.
func NewSet(aMin, aMax, bMin, bMax float64, width, height, maxIterations int, palette *Palette) (*Set, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: raster size must be positive, got %dx%d", ErrInvalidConfiguration, width, height)
	}
	if aMin >= aMax || bMin >= bMax {
		return nil, fmt.Errorf("%w: window [%g, %g]x[%g, %g] has no extent", ErrInvalidConfiguration, aMin, aMax, bMin, bMax)
	}
	if palette == nil {
		return nil, fmt.Errorf("%w: palette must not be nil", ErrInvalidConfiguration)
	}

	s := &Set{
		width:         width,
		height:        height,
		maxIterations: clampIterations(maxIterations),
		palette:       palette,
		aMin:          aMin,
		aMax:          aMax,
		bMin:          bMin,
		bMax:          bMax,
		origAMin:      aMin,
		origAMax:      aMax,
		origBMin:      bMin,
		origBMax:      bMax,
		iterations:    make([]int, width*height),
		pix:           make([]byte, width*height*4),
	}
	s.update()
	return s, nil
}

// Size returns the raster dimensions.
func (s *Set) Size() (width, height int) {
	return s.width, s.height
}

// Window returns the current complex window.
func (s *Set) Window() (aMin, aMax, bMin, bMax float64) {
	return s.aMin, s.aMax, s.bMin, s.bMax
}

// MaxIterations returns the current iteration limit.
func (s *Set) MaxIterations() int {
	return s.maxIterations
}

// Center returns the complex center of the window.
func (s *Set) Center() (a, b float64) {
	return (s.aMin + s.aMax) / 2, (s.bMin + s.bMax) / 2
}

// Pix returns the rendered RGBA pixel buffer, row-major, suitable for
// ebiten's WritePixels. The buffer is reused across renders and must not
// be retained across set mutations.
func (s *Set) Pix() []byte {
	return s.pix
}

// IterationAt returns the escape iteration count computed for a raster
// pixel. Pixels that never escaped report the iteration limit.
func (s *Set) IterationAt(x, y int) int {
	return s.iterations[y*s.width+x]
}

// PixelToComplex converts raster coordinates to the complex number they
// display.
func (s *Set) PixelToComplex(x, y int) (a, b float64) {
	a = s.aMin + float64(x)/float64(s.width)*(s.aMax-s.aMin)
	b = s.bMin + float64(y)/float64(s.height)*(s.bMax-s.bMin)
	return a, b
}

// SetWindow moves the window and re-renders.
func (s *Set) SetWindow(aMin, aMax, bMin, bMax float64) error {
	if aMin >= aMax || bMin >= bMax {
		return fmt.Errorf("%w: window [%g, %g]x[%g, %g] has no extent", ErrInvalidConfiguration, aMin, aMax, bMin, bMax)
	}
	s.aMin, s.aMax = aMin, aMax
	s.bMin, s.bMax = bMin, bMax
	s.update()
	return nil
}

// ResetWindow restores the window the set was created with.
func (s *Set) ResetWindow() {
	s.aMin, s.aMax = s.origAMin, s.origAMax
	s.bMin, s.bMax = s.origBMin, s.origBMax
	s.update()
}

// Translate shifts the window by the given complex offset.
func (s *Set) Translate(da, db float64) {
	s.aMin += da
	s.aMax += da
	s.bMin += db
	s.bMax += db
	s.update()
}

// CenterComplex recenters the window on a complex number.
func (s *Set) CenterComplex(a, b float64) {
	ca, cb := s.Center()
	s.Translate(a-ca, b-cb)
}

// CenterPixel recenters the window on a raster pixel.
func (s *Set) CenterPixel(x, y int) {
	a, b := s.PixelToComplex(x, y)
	s.CenterComplex(a, b)
}

// ZoomComplex scales the window around a complex number. Factors below 1
// zoom in, above 1 zoom out.
func (s *Set) ZoomComplex(a, b, factor float64) {
	s.aMin = a + factor*(s.aMin-a)
	s.aMax = a + factor*(s.aMax-a)
	s.bMin = b + factor*(s.bMin-b)
	s.bMax = b + factor*(s.bMax-b)
	s.update()
}

// ZoomPixel scales the window around a raster pixel.
func (s *Set) ZoomPixel(x, y int, factor float64) {
	a, b := s.PixelToComplex(x, y)
	s.ZoomComplex(a, b, factor)
}

// SetMaxIterations changes the iteration limit, clamped to
// [MinIterations, MaxIterations], and re-renders.
func (s *Set) SetMaxIterations(n int) {
	s.maxIterations = clampIterations(n)
	s.update()
}

// SetPalette recolors the raster without recomputing iterations.
func (s *Set) SetPalette(p *Palette) {
	if p == nil {
		return
	}
	s.palette = p
	s.updateColors()
}

func clampIterations(n int) int {
	if n < MinIterations {
		return MinIterations
	}
	if n > MaxIterations {
		return MaxIterations
	}
	return n
}

// update recomputes the escape iteration count for every pixel and then
// recolors. Points that never escape stay at the iteration limit.
func (s *Set) update() {
	for py := 0; py < s.height; py++ {
		cb := s.bMin
		if s.height > 1 {
			cb += float64(py) / float64(s.height-1) * (s.bMax - s.bMin)
		}
		for px := 0; px < s.width; px++ {
			ca := s.aMin
			if s.width > 1 {
				ca += float64(px) / float64(s.width-1) * (s.aMax - s.aMin)
			}
			s.iterations[py*s.width+px] = escapeIterations(ca, cb, s.maxIterations)
		}
	}
	s.updateColors()
}

// escapeIterations iterates z = z² + c and returns the iteration at which
// |z| exceeded 2, or max if it never did. Squares are carried between
// iterations so each step costs three multiplications.
func escapeIterations(ca, cb float64, max int) int {
	var za, zb, za2, zb2 float64
	for n := 0; n < max; n++ {
		zb = (za+za)*zb + cb
		za = za2 - zb2 + ca
		za2 = za * za
		zb2 = zb * zb
		if za2+zb2 > 4 {
			return n
		}
	}
	return max
}

func (s *Set) updateColors() {
	for i, n := range s.iterations {
		o := i * 4
		if n >= s.maxIterations {
			s.pix[o], s.pix[o+1], s.pix[o+2], s.pix[o+3] = 0, 0, 0, 255
			continue
		}
		c := s.palette.Color(n)
		s.pix[o], s.pix[o+1], s.pix[o+2], s.pix[o+3] = c.R, c.G, c.B, c.A
	}
}
