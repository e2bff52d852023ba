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

var outlineCases = []TestCase{
	{
		Name:   "triangle",
		Path:   polygon(pt(10, 50), pt(32, 10), pt(54, 50)),
		Width:  64,
		Height: 64,
		Op:     Outline{Color: rgb(255, 255, 255)},
	},
	{
		Name:   "star",
		Path:   polygon(fivePointStar(32, 32, 25)...),
		Width:  64,
		Height: 64,
		Op:     Outline{Color: rgb(255, 200, 0)},
	},
	{
		Name:   "fan",
		Path:   fan(32, 32, 28, 16),
		Width:  64,
		Height: 64,
		Op:     Outline{Color: rgb(0, 255, 0)},
	},
	{
		Name:   "single_point",
		Path:   (&path.Data{}).MoveTo(pt(15.6, 12.2)),
		Width:  32,
		Height: 32,
		Op:     Outline{Color: rgb(255, 0, 0)},
	},
	{
		Name:   "spikes",
		Path:   rings(spikeRow(pt(4, 48), pt(60, 48), 8, 10)...),
		Width:  64,
		Height: 64,
		Op:     Outline{Color: rgb(180, 180, 180)},
	},
	{
		Name:   "off_surface",
		Path:   polygon(pt(-20, 10), pt(80, 20), pt(30, 90)),
		Width:  64,
		Height: 64,
		Op:     Outline{Color: rgb(0, 128, 255)},
	},
}

// fan builds n open line segments from the centre outwards, covering all
// octants.
func fan(cx, cy, r float64, n int) *path.Data {
	p := &path.Data{}
	for i := range n {
		s, c := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		p = p.MoveTo(pt(cx, cy)).LineTo(pt(cx+r*c, cy+r*s))
	}
	return p
}

// spikeRow returns a row of upward pointing triangles standing on the
// segment from p0 to p1, which must be horizontal.
func spikeRow(p0, p1 vec.Vec2, width, height float64) [][]vec.Vec2 {
	var res [][]vec.Vec2
	for x := p0.X; x+width <= p1.X; x += width {
		res = append(res, []vec.Vec2{
			pt(x, p0.Y),
			pt(x+width, p0.Y),
			pt(x+width/2, p0.Y-height),
		})
	}
	return res
}
