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

var shapeCases = []TestCase{
	{
		Name:   "circle",
		Width:  64,
		Height: 64,
		Op:     Circle{Center: pt(32, 32), Radius: 25, Color: rgb(255, 255, 255)},
	},
	{
		Name:   "circle_radius_zero",
		Width:  16,
		Height: 16,
		Op:     Circle{Center: pt(8, 8), Radius: 0, Color: rgb(255, 255, 255)},
	},
	{
		Name:   "circle_clipped",
		Width:  64,
		Height: 64,
		Op:     Circle{Center: pt(4, 60), Radius: 30, Color: rgb(255, 0, 0)},
	},
	{
		Name:   "ellipse_wide",
		Width:  64,
		Height: 64,
		Op:     Ellipse{Center: pt(32, 32), RX: 28, RY: 12, Color: rgb(0, 255, 255)},
	},
	{
		Name:   "ellipse_tall",
		Width:  64,
		Height: 64,
		Op:     Ellipse{Center: pt(32, 32), RX: 9, RY: 27, Color: rgb(0, 255, 255)},
	},
	{
		Name:   "ellipse_flat",
		Width:  64,
		Height: 64,
		Op:     Ellipse{Center: pt(32, 32), RX: 20, RY: 0, Color: rgb(255, 0, 255)},
	},
	{
		Name:   "disc",
		Width:  64,
		Height: 64,
		Op:     Disc{Center: pt(32, 32), Radius: 20, Color: rgb(255, 255, 0)},
	},
	{
		Name:   "shaded",
		Width:  64,
		Height: 64,
		Op:     ShadedCircle{Center: pt(32, 32), Radius: 24, Inner: rgb(255, 255, 200), Outer: rgb(60, 20, 0)},
	},
}
