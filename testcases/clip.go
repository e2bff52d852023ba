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

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

var clipCases = []TestCase{
	{
		Name:   "inside",
		Path:   polygon(pt(20, 20), pt(44, 24), pt(30, 44)),
		Width:  64,
		Height: 64,
		Op:     ClippedOutline{Window: rect.Rect{LLx: 8, LLy: 8, URx: 56, URy: 56}, Color: rgb(255, 255, 255)},
	},
	{
		Name:   "star",
		Path:   polygon(fivePointStar(32, 32, 30)...),
		Width:  64,
		Height: 64,
		Op:     ClippedOutline{Window: rect.Rect{LLx: 12, LLy: 16, URx: 52, URy: 44}, Color: rgb(255, 200, 0)},
	},
	{
		Name:   "fan",
		Path:   fan(32, 32, 40, 24),
		Width:  64,
		Height: 64,
		Op:     ClippedOutline{Window: rect.Rect{LLx: 16, LLy: 16, URx: 48, URy: 48}, Color: rgb(0, 255, 0)},
	},
	{
		Name:   "flashlight",
		Path:   polygon(cone(pt(4, 32), 15, 90, 20)...),
		Width:  64,
		Height: 64,
		Op:     ClippedOutline{Window: rect.Rect{LLx: 0, LLy: 0, URx: 63, URy: 63}, Color: rgb(255, 255, 160)},
	},
	{
		Name:   "outside",
		Path:   polygon(pt(0, 0), pt(10, 0), pt(0, 10)),
		Width:  64,
		Height: 64,
		Op:     ClippedOutline{Window: rect.Rect{LLx: 20, LLy: 20, URx: 40, URy: 40}, Color: rgb(255, 0, 0)},
	},
}

// cone returns the triangle of a light cone with the given apex, pointing
// in direction angle (in degrees), with the given length and half-angle.
func cone(apex vec.Vec2, angle, length, spread float64) []vec.Vec2 {
	toRad := math.Pi / 180
	sl, cl := math.Sincos((angle - spread) * toRad)
	sr, cr := math.Sincos((angle + spread) * toRad)
	return []vec.Vec2{
		apex,
		pt(apex.X+cl*length, apex.Y+sl*length),
		pt(apex.X+cr*length, apex.Y+sr*length),
	}
}
