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

import "seehuhn.de/go/geom/path"

var curveCases = []TestCase{
	{
		Name:   "circle",
		Path:   circlePath(&path.Data{}, 32, 32, 25, true),
		Width:  64,
		Height: 64,
		Op:     Fill{Color: rgb(255, 255, 255)},
	},
	{
		Name:   "quadratic",
		Path:   (&path.Data{}).MoveTo(pt(8, 56)).QuadTo(pt(32, -8), pt(56, 56)).Close(),
		Width:  64,
		Height: 64,
		Op:     Fill{Color: rgb(255, 255, 255)},
	},
	{
		Name:   "cubic",
		Path:   (&path.Data{}).MoveTo(pt(8, 56)).CubeTo(pt(8, 0), pt(56, 0), pt(56, 56)).Close(),
		Width:  64,
		Height: 64,
		Op:     Fill{Color: rgb(255, 255, 255)},
	},
	{
		Name: "blob",
		Path: (&path.Data{}).
			MoveTo(pt(32, 6)).
			QuadTo(pt(58, 6), pt(58, 32)).
			CubeTo(pt(58, 50), pt(44, 58), pt(32, 58)).
			LineTo(pt(8, 58)).
			QuadTo(pt(6, 32), pt(32, 6)).
			Close(),
		Width:  64,
		Height: 64,
		Op:     Fill{Color: rgb(255, 255, 255)},
	},
	{
		Name:   "tiny_circle",
		Path:   circlePath(&path.Data{}, 8.5, 8.5, 3, true),
		Width:  16,
		Height: 16,
		Op:     Fill{Color: rgb(255, 255, 255)},
	},
}
