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

// Package pixel draws lines, polygons, circles and textured shapes into
// an image, one pixel at a time.
//
// All drawing goes through a [Rasteriser], which owns the scratch buffers
// of the scanline algorithms.  Coordinates are in pixels, with the origin
// at the top-left corner of the surface and y increasing downwards.
// Polygon fills use the even-odd rule without anti-aliasing.  Geometric
// transformations are provided by the transform subpackage.
package pixel

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf

import (
	"image"
	"math"

	"golang.org/x/image/draw"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pixel/testcases"
	"seehuhn.de/go/pixel/transform"
)

// Render draws a test case scene into dst.
// The surface is not cleared first.
func Render(dst draw.Image, tc testcases.TestCase) {
	NewRasteriser(dst).Render(tc)
}

// Render draws a test case scene into r.Dst.
//
// If tc.CTM is not the zero matrix, it is applied to the path, to all
// centres and to the flood fill seed.  Radii are scaled by the square
// root of the area scale factor of the transformation.
func (r *Rasteriser) Render(tc testcases.TestCase) {
	p := tc.Path
	M := tc.CTM
	hasCTM := !M.IsZero()
	if hasCTM && p != nil {
		p = &path.Data{
			Cmds:   p.Cmds,
			Coords: transform.Apply(p.Coords, M),
		}
	}
	point := func(v vec.Vec2) vec.Vec2 {
		if hasCTM {
			return M.Apply(v)
		}
		return v
	}
	length := func(l float64) float64 {
		if hasCTM {
			return l * math.Sqrt(math.Abs(M[0][0]*M[1][1]-M[0][1]*M[1][0]))
		}
		return l
	}

	switch op := tc.Op.(type) {
	case testcases.Fill:
		r.FillPath(p, op.Color)

	case testcases.Gradient:
		if rings := r.Flatten(p); len(rings) > 0 {
			r.FillGradient(rings[0], op.Top, op.Bottom)
		}

	case testcases.Textured:
		if rings := r.Flatten(p); len(rings) > 0 && op.Texture != nil {
			r.FillTextured(rings[0], op.UVs, NewTexture(op.Texture))
		}

	case testcases.Outline:
		r.OutlinePath(p, op.Color)

	case testcases.ClippedOutline:
		w := op.Window
		if hasCTM {
			w = BoundingWindow(transform.Apply([]vec.Vec2{
				{X: w.LLx, Y: w.LLy}, {X: w.URx, Y: w.LLy},
				{X: w.URx, Y: w.URy}, {X: w.LLx, Y: w.URy},
			}, M))
		}
		for _, ring := range r.Flatten(p) {
			r.ClippedPolygon(ring, w, op.Color)
		}

	case testcases.Circle:
		r.Circle(point(op.Center), length(op.Radius), op.Color)

	case testcases.Disc:
		r.Disc(point(op.Center), length(op.Radius), op.Color)

	case testcases.ShadedCircle:
		r.ShadedCircle(point(op.Center), length(op.Radius), op.Inner, op.Outer)

	case testcases.Ellipse:
		r.Ellipse(point(op.Center), length(op.RX), length(op.RY), op.Color)

	case testcases.Flood:
		r.OutlinePath(p, op.Border)
		seed := point(vec.Vec2{X: float64(op.Seed.X), Y: float64(op.Seed.Y)})
		r.FloodFill(seed.X, seed.Y, Bounded{Border: op.Border, Fill: op.Fill})
	}
}

// NewSurface allocates a surface of the given size, with all pixels
// transparent black.
func NewSurface(width, height int) *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))
}
