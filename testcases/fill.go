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

package testcases

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

var fillCases = []TestCase{
	{
		Name:   "square",
		Path:   polygon(rectangle(10, 10, 20, 20)...),
		Width:  32,
		Height: 32,
		Op:     Fill{Color: rgb(255, 0, 0)},
	},
	{
		Name:   "triangle",
		Path:   polygon(pt(10, 50), pt(32, 10), pt(54, 50)),
		Width:  64,
		Height: 64,
		Op:     Fill{Color: rgb(0, 200, 80)},
	},
	{
		Name:   "diamond",
		Path:   polygon(diamond(32, 32, 24)...),
		Width:  64,
		Height: 64,
		Op:     Fill{Color: rgb(40, 60, 100)},
	},
	{
		Name:   "concave",
		Path:   polygon(pt(8, 8), pt(56, 8), pt(56, 24), pt(24, 24), pt(24, 56), pt(8, 56)),
		Width:  64,
		Height: 64,
		Op:     Fill{Color: rgb(200, 200, 200)},
	},
	{
		Name:   "subpixel_offset_25",
		Path:   polygon(rectangle(20.25, 20.25, 44.25, 44.25)...),
		Width:  64,
		Height: 64,
		Op:     Fill{Color: rgb(255, 255, 0)},
	},
	{
		Name:   "subpixel_offset_75",
		Path:   polygon(rectangle(20.75, 20.75, 44.75, 44.75)...),
		Width:  64,
		Height: 64,
		Op:     Fill{Color: rgb(255, 255, 0)},
	},
	{
		Name:   "partly_off_surface",
		Path:   polygon(pt(-40, 10), pt(50, -30), pt(90, 40), pt(20, 100)),
		Width:  64,
		Height: 64,
		Op:     Fill{Color: rgb(0, 100, 200)},
	},
}

// evenOddCases contains self-intersecting polygons, where the even-odd
// rule leaves holes.
var evenOddCases = []TestCase{
	{
		Name:   "star",
		Path:   polygon(fivePointStar(32, 32, 25)...),
		Width:  64,
		Height: 64,
		Op:     Fill{Color: rgb(255, 200, 0)},
	},
	{
		Name:   "bowtie",
		Path:   polygon(pt(8, 8), pt(56, 56), pt(56, 8), pt(8, 56)),
		Width:  64,
		Height: 64,
		Op:     Fill{Color: rgb(255, 0, 255)},
	},
}

var gradientCases = []TestCase{
	{
		Name:   "rectangle",
		Path:   polygon(rectangle(8, 8, 56, 56)...),
		Width:  64,
		Height: 64,
		Op:     Gradient{Top: rgb(100, 200, 255), Bottom: rgb(50, 100, 150)},
	},
	{
		Name:   "tentacle",
		Path:   polygon(pt(28, 4), pt(36, 4), pt(44, 30), pt(34, 60), pt(30, 60), pt(20, 30)),
		Width:  64,
		Height: 64,
		Op:     Gradient{Top: rgb(180, 40, 90), Bottom: rgb(20, 0, 40)},
	},
}

// diamond returns the corners of a square rotated by 45 degrees.
func diamond(cx, cy, r float64) []vec.Vec2 {
	return []vec.Vec2{pt(cx, cy-r), pt(cx+r, cy), pt(cx, cy+r), pt(cx-r, cy)}
}

// fivePointStar returns the corners of a five-pointed star, connecting
// every second point of a regular pentagon.
func fivePointStar(cx, cy, r float64) []vec.Vec2 {
	var pts [5]vec.Vec2
	for i := range 5 {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		pts[i] = pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	}
	return []vec.Vec2{pts[0], pts[2], pts[4], pts[1], pts[3]}
}

// circlePath builds a circle from four cubic Bézier curves.
func circlePath(p *path.Data, cx, cy, r float64, clockwise bool) *path.Data {
	// Magic number for circular arc approximation with cubic Bézier
	const k = 0.5522847498
	kr := k * r

	p = p.MoveTo(pt(cx, cy-r))
	if clockwise {
		p = p.CubeTo(pt(cx+kr, cy-r), pt(cx+r, cy-kr), pt(cx+r, cy))
		p = p.CubeTo(pt(cx+r, cy+kr), pt(cx+kr, cy+r), pt(cx, cy+r))
		p = p.CubeTo(pt(cx-kr, cy+r), pt(cx-r, cy+kr), pt(cx-r, cy))
		p = p.CubeTo(pt(cx-r, cy-kr), pt(cx-kr, cy-r), pt(cx, cy-r))
	} else {
		p = p.CubeTo(pt(cx-kr, cy-r), pt(cx-r, cy-kr), pt(cx-r, cy))
		p = p.CubeTo(pt(cx-r, cy+kr), pt(cx-kr, cy+r), pt(cx, cy+r))
		p = p.CubeTo(pt(cx+kr, cy+r), pt(cx+r, cy+kr), pt(cx+r, cy))
		p = p.CubeTo(pt(cx+r, cy-kr), pt(cx+kr, cy-r), pt(cx, cy-r))
	}
	return p.Close()
}
