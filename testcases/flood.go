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

import "image"

var floodCases = []TestCase{
	{
		Name:   "square",
		Path:   polygon(rectangle(10, 10, 50, 50)...),
		Width:  64,
		Height: 64,
		Op:     Flood{Seed: image.Pt(30, 30), Border: rgb(255, 255, 255), Fill: rgb(0, 0, 255)},
	},
	{
		Name:   "concave",
		Path:   polygon(pt(8, 8), pt(56, 8), pt(56, 24), pt(24, 24), pt(24, 56), pt(8, 56)),
		Width:  64,
		Height: 64,
		Op:     Flood{Seed: image.Pt(12, 50), Border: rgb(255, 255, 255), Fill: rgb(0, 200, 0)},
	},
	{
		Name:   "outside",
		Path:   polygon(pt(32, 8), pt(56, 56), pt(8, 56)),
		Width:  64,
		Height: 64,
		Op:     Flood{Seed: image.Pt(1, 1), Border: rgb(255, 255, 255), Fill: rgb(128, 0, 0)},
	},
	{
		Name:   "star",
		Path:   polygon(fivePointStar(32, 32, 28)...),
		Width:  64,
		Height: 64,
		Op:     Flood{Seed: image.Pt(32, 32), Border: rgb(255, 200, 0), Fill: rgb(255, 100, 0)},
	},
}
