package mandelbrot

import (
	"fmt"
	"image"
	"image/png"
	"os"
)

// Image returns the current raster as a stdlib RGBA image. The pixel data
// is copied, so the image stays valid across later set mutations.
func (s *Set) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, s.pix)
	return img
}

// SaveImage renders the current window to a PNG file. Width, height and
// maxIterations override the on-screen settings so screenshots can be
// produced at a much higher resolution and iteration depth than the
// interactive view; pass zero to keep the on-screen values.
func (s *Set) SaveImage(path string, width, height, maxIterations int) error {
	if width <= 0 {
		width = s.width
	}
	if height <= 0 {
		height = s.height
	}
	if maxIterations <= 0 {
		maxIterations = s.maxIterations
	}

	render := s
	if width != s.width || height != s.height || maxIterations != s.maxIterations {
		var err error
		render, err = NewSet(s.aMin, s.aMax, s.bMin, s.bMax, width, height, maxIterations, s.palette)
		if err != nil {
			return fmt.Errorf("rendering screenshot: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating screenshot file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, render.Image()); err != nil {
		return fmt.Errorf("encoding screenshot: %w", err)
	}
	return f.Close()
}
