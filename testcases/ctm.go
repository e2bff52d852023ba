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
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/pixel/transform"
)

var ctmCases = []TestCase{
	{
		Name:   "scale",
		Path:   polygon(rectangle(5, 5, 25, 25)...),
		Width:  64,
		Height: 64,
		Op:     Fill{Color: rgb(255, 255, 255)},
		CTM:    transform.Scale(2, 2),
	},
	{
		Name:   "translate",
		Path:   polygon(pt(0, 20), pt(10, 0), pt(20, 20)),
		Width:  64,
		Height: 64,
		Op:     Fill{Color: rgb(255, 255, 255)},
		CTM:    transform.Translate(22.5, 30.25),
	},
	{
		Name:   "rotate_about_centre",
		Path:   polygon(rectangle(16, 24, 48, 40)...),
		Width:  64,
		Height: 64,
		Op:     Fill{Color: rgb(255, 255, 255)},
		CTM:    transform.RotateAbout(30, 32, 32),
	},
	{
		Name:   "pipeline",
		Path:   polygon(pt(-10, -10), pt(10, -10), pt(10, 10), pt(-10, 10)),
		Width:  64,
		Height: 64,
		Op:     Fill{Color: rgb(255, 255, 255)},
		CTM: transform.Compose(
			transform.ScaleStep(1.5, 0.75),
			transform.RotateStep(45),
			transform.TranslateStep(32, 32),
		),
	},
	{
		Name:   "minimap",
		Path:   rings(rectangle(100, 100, 300, 200), rectangle(500, 400, 700, 700)),
		Width:  64,
		Height: 64,
		Op:     Fill{Color: rgb(255, 255, 255)},
		CTM: transform.WindowToViewport(
			rect.Rect{LLx: 0, LLy: 0, URx: 800, URy: 800},
			rect.Rect{LLx: 0, LLy: 0, URx: 64, URy: 64},
		),
	},
	{
		Name:   "circle_translated",
		Width:  64,
		Height: 64,
		Op:     Circle{Center: pt(0, 0), Radius: 20, Color: rgb(255, 255, 255)},
		CTM:    transform.Translate(32, 32),
	},
}
