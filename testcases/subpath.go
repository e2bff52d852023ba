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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

var subpathCases = []TestCase{
	{
		Name:   "square_with_hole",
		Path:   rings(rectangle(8, 8, 56, 56), reversed(rectangle(20, 20, 44, 44))),
		Width:  64,
		Height: 64,
		Op:     Fill{Color: rgb(255, 255, 255)},
	},
	{
		Name: "two_triangles",
		Path: rings(
			[]vec.Vec2{pt(4, 60), pt(16, 4), pt(28, 60)},
			[]vec.Vec2{pt(36, 60), pt(48, 4), pt(60, 60)},
		),
		Width:  64,
		Height: 64,
		Op:     Fill{Color: rgb(255, 255, 255)},
	},
	{
		Name:   "ring",
		Path:   circlePath(circlePath(&path.Data{}, 32, 32, 28, true), 32, 32, 16, false),
		Width:  64,
		Height: 64,
		Op:     Fill{Color: rgb(255, 255, 255)},
	},
	{
		Name:   "unclosed",
		Path:   (&path.Data{}).MoveTo(pt(8, 8)).LineTo(pt(56, 8)).LineTo(pt(32, 56)),
		Width:  64,
		Height: 64,
		Op:     Fill{Color: rgb(255, 255, 255)},
	},
}
