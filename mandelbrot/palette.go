package mandelbrot

import "image/color"

// Stop is a color stop on a palette, placed at a location in [0, 1].
type Stop struct {
	R, G, B  float64
	Location float64
}

// Palette maps iteration counts to colors by interpolating between color
// stops. Colors are precomputed once; lookups wrap around, so deep zooms
// with high iteration counts cycle through the palette.
type Palette struct {
	colors []color.RGBA
}

// paletteSize is the number of precomputed colors per palette.
const paletteSize = 250

// NewPalette builds a palette from color stops. Stops must be ordered by
// location, starting at 0 and ending at 1.
func NewPalette(stops []Stop) *Palette {
	p := &Palette{colors: make([]color.RGBA, paletteSize)}
	for i := range p.colors {
		hue := float64(i) / float64(paletteSize-1)
		p.colors[i] = interpolate(stops, hue)
	}
	return p
}

// Color returns the palette color for an iteration count, wrapping around
// the palette size.
func (p *Palette) Color(iterations int) color.RGBA {
	i := iterations % len(p.colors)
	if i < 0 {
		i += len(p.colors)
	}
	return p.colors[i]
}

// interpolate selects the color at a hue in [0, 1] by linear interpolation
// between the two surrounding stops.
func interpolate(stops []Stop, hue float64) color.RGBA {
	if hue < 0 {
		hue = 0
	}
	if hue > 1 {
		hue = 1
	}
	lo, hi := 0, 1
	for hue > stops[hi].Location {
		lo++
		hi++
	}
	frac := (hue - stops[lo].Location) / (stops[hi].Location - stops[lo].Location)
	return color.RGBA{
		R: uint8(stops[lo].R + frac*(stops[hi].R-stops[lo].R)),
		G: uint8(stops[lo].G + frac*(stops[hi].G-stops[lo].G)),
		B: uint8(stops[lo].B + frac*(stops[hi].B-stops[lo].B)),
		A: 255,
	}
}

// Grayscale fades from black to white and back.
var Grayscale = NewPalette([]Stop{
	{0, 0, 0, 0},
	{255, 255, 255, 0.5},
	{0, 0, 0, 1},
})

// Fire runs black through red and yellow to white and back.
var Fire = NewPalette([]Stop{
	{0, 0, 0, 0},
	{255, 0, 0, 0.2},
	{255, 255, 0, 0.4},
	{255, 255, 255, 0.5},
	{255, 255, 0, 0.6},
	{255, 0, 0, 0.8},
	{0, 0, 0, 1},
})

// Seashore cycles through sand, coral and sea tones.
var Seashore = NewPalette([]Stop{
	{0.791 * 255, 0.996 * 255, 0.763 * 255, 0.0 / 6.0},
	{0.897 * 255, 0.895 * 255, 0.656 * 255, 1.0 / 6.0},
	{0.947 * 255, 0.316 * 255, 0.127 * 255, 2.0 / 6.0},
	{0.518 * 255, 0.111 * 255, 0.092 * 255, 3.0 / 6.0},
	{0.020 * 255, 0.456 * 255, 0.684 * 255, 4.0 / 6.0},
	{0.538 * 255, 0.826 * 255, 0.818 * 255, 5.0 / 6.0},
	{0.791 * 255, 0.996 * 255, 0.763 * 255, 6.0 / 6.0},
})

// Forest cycles through soil, bark and leaf tones.
var Forest = NewPalette([]Stop{
	{30.2 / 100 * 255, 25.1 / 100 * 255, 12.5 / 100 * 255, 0.0 / 3.0},
	{65.9 / 100 * 255, 55.7 / 100 * 255, 42.0 / 100 * 255, 1.0 / 3.0},
	{29.0 / 100 * 255, 52.9 / 100 * 255, 22.4 / 100 * 255, 1.5 / 3.0},
	{8.6 / 100 * 255, 16.9 / 100 * 255, 42.4 / 100 * 255, 2.0 / 3.0},
	{14.5 / 100 * 255, 34.9 / 100 * 255, 10.6 / 100 * 255, 2.5 / 3.0},
	{30.2 / 100 * 255, 25.1 / 100 * 255, 12.5 / 100 * 255, 3.0 / 3.0},
})

// Palettes lists the built-in palettes in cycling order.
var Palettes = []*Palette{Grayscale, Fire, Seashore, Forest}
