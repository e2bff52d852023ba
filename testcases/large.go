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

var largeCases = []TestCase{
	{
		Name:   "rectangle",
		Path:   polygon(rectangle(16, 16, 496, 496)...),
		Width:  512,
		Height: 512,
		Op:     Fill{Color: rgb(255, 255, 255)},
	},
	{
		Name:   "many_sided",
		Path:   polygon(regularPolygon(256, 256, 240, 360)...),
		Width:  512,
		Height: 512,
		Op:     Fill{Color: rgb(255, 255, 255)},
	},
	{
		Name:   "letter_o",
		Path:   circlePath(circlePath(&path.Data{}, 256, 256, 220, true), 256, 256, 150, false),
		Width:  512,
		Height: 512,
		Op:     Fill{Color: rgb(255, 255, 255)},
	},
	{
		Name:   "huge_coordinates",
		Path:   polygon(pt(-1e6, -1e6), pt(1e6, -1e6), pt(100, 1e6)),
		Width:  256,
		Height: 256,
		Op:     Fill{Color: rgb(255, 255, 255)},
	},
}

// regularPolygon returns the n corners of a regular polygon, clockwise
// on screen.
func regularPolygon(cx, cy, r float64, n int) []vec.Vec2 {
	pts := make([]vec.Vec2, n)
	for i := range pts {
		s, c := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		pts[i] = pt(cx+r*c, cy+r*s)
	}
	return pts
}
