// Package vecdraw provides the small vector-drawing helpers shared by the
// toy hosts, on top of ebiten's vector package.
package vecdraw

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/glowbox-games/glowbox/raycast"
)

// whiteSubImage is the 1x1 texture used to fill triangles with a flat
// color. The pixel sits inside a 3x3 image so bilinear sampling at the
// edges cannot bleed.
var whiteSubImage *ebiten.Image

func init() {
	whiteImage := ebiten.NewImage(3, 3)
	whiteImage.Fill(color.White)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// Line strokes a line segment between two points.
func Line(dst *ebiten.Image, a, b raycast.Point, width float32, clr color.Color) {
	vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), width, clr, true)
}

// Circle fills a circle centered on a point.
func Circle(dst *ebiten.Image, center raycast.Point, radius float32, clr color.Color) {
	vector.DrawFilledCircle(dst, float32(center.X), float32(center.Y), radius, clr, true)
}

// FillPolygon fills a polygon given its vertices in order. Polygons with
// fewer than three vertices draw nothing.
func FillPolygon(dst *ebiten.Image, pts []raycast.Point, clr color.Color) {
	if len(pts) < 3 {
		return
	}

	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := clr.RGBA()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}

	// Anti-aliasing stays off to avoid edge artifacts between the
	// polygon and the wall strokes drawn over it.
	dst.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{
		AntiAlias: false,
	})
}

// FillRect fills an axis-aligned rectangle.
func FillRect(dst *ebiten.Image, x, y, w, h float32, clr color.Color) {
	vector.DrawFilledRect(dst, x, y, w, h, clr, false)
}
