// seehuhn.de/go/pixel - software rasterisation for 2D games
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package testcases defines named drawing scenes.  The scenes are used by
// the tests and benchmarks of the rasteriser, and by the commands which
// export them to JSON and to reference PDF files.
package testcases

import (
	"image"
	"image/color"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pixel/transform"
)

// TestCase defines a single drawing scene.
type TestCase struct {
	Name   string           // lowercase a-z, 0-9 and _ only
	Path   *path.Data       // the geometry to draw (nil for Circle, Ellipse, ...)
	Width  int              // surface width in pixels
	Height int              // surface height in pixels
	Op     Operation        // what to do with the geometry
	CTM    transform.Matrix // applied to Path and centres (zero-value means no transform)
}

// Operation is the drawing operation of a scene.
type Operation interface {
	isOperation()
}

// Fill fills the path with a single colour, using the even-odd rule.
type Fill struct {
	Color color.RGBA
}

// Gradient fills the first subpath with a vertical gradient.
type Gradient struct {
	Top, Bottom color.RGBA
}

// Textured maps a texture onto the first subpath.
// UVs gives one texture coordinate pair per vertex.
type Textured struct {
	Texture image.Image
	UVs     []vec.Vec2
}

// Outline draws the outline of every subpath.
type Outline struct {
	Color color.RGBA
}

// ClippedOutline draws the parts of all outlines inside Window.
type ClippedOutline struct {
	Window rect.Rect
	Color  color.RGBA
}

// Circle draws the outline of a circle.
type Circle struct {
	Center vec.Vec2
	Radius float64
	Color  color.RGBA
}

// Disc draws a filled circle.
type Disc struct {
	Center vec.Vec2
	Radius float64
	Color  color.RGBA
}

// ShadedCircle draws concentric circles blending from Inner to Outer.
type ShadedCircle struct {
	Center       vec.Vec2
	Radius       float64
	Inner, Outer color.RGBA
}

// Ellipse draws the outline of an axis-aligned ellipse.
type Ellipse struct {
	Center vec.Vec2
	RX, RY float64
	Color  color.RGBA
}

// Flood draws the outlines of the path in the Border colour and then
// flood fills the region around Seed up to the border.
type Flood struct {
	Seed   image.Point
	Border color.RGBA
	Fill   color.RGBA
}

func (Fill) isOperation()           {}
func (Gradient) isOperation()       {}
func (Textured) isOperation()       {}
func (Outline) isOperation()        {}
func (ClippedOutline) isOperation() {}
func (Circle) isOperation()         {}
func (Disc) isOperation()           {}
func (ShadedCircle) isOperation()   {}
func (Ellipse) isOperation()        {}
func (Flood) isOperation()          {}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// rgb is a helper to create an opaque colour.
func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// polygon builds a path with a single closed subpath.
func polygon(pts ...vec.Vec2) *path.Data {
	p := (&path.Data{}).MoveTo(pts[0])
	for _, q := range pts[1:] {
		p = p.LineTo(q)
	}
	return p.Close()
}

// rings builds a path with one closed subpath per ring.
func rings(rs ...[]vec.Vec2) *path.Data {
	p := &path.Data{}
	for _, r := range rs {
		p = p.MoveTo(r[0])
		for _, q := range r[1:] {
			p = p.LineTo(q)
		}
		p = p.Close()
	}
	return p
}

// rectangle returns the corners of an axis-aligned rectangle, clockwise
// on screen.
func rectangle(x1, y1, x2, y2 float64) []vec.Vec2 {
	return []vec.Vec2{pt(x1, y1), pt(x2, y1), pt(x2, y2), pt(x1, y2)}
}

// reversed returns the points in reverse order.
func reversed(pts []vec.Vec2) []vec.Vec2 {
	res := make([]vec.Vec2, len(pts))
	for i, p := range pts {
		res[len(pts)-1-i] = p
	}
	return res
}
