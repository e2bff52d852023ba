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
	"image"
	"image/color"

	"seehuhn.de/go/geom/vec"
)

var textureCases = []TestCase{
	{
		Name:   "square",
		Path:   polygon(rectangle(8, 8, 56, 56)...),
		Width:  64,
		Height: 64,
		Op: Textured{
			Texture: checkerboard(16, 16, 4, rgb(255, 255, 255), rgb(30, 30, 120)),
			UVs:     []vec.Vec2{pt(0, 0), pt(1, 0), pt(1, 1), pt(0, 1)},
		},
	},
	{
		Name:   "triangle",
		Path:   polygon(pt(32, 6), pt(58, 56), pt(6, 56)),
		Width:  64,
		Height: 64,
		Op: Textured{
			Texture: checkerboard(8, 8, 2, rgb(200, 0, 0), rgb(255, 220, 0)),
			UVs:     []vec.Vec2{pt(0.5, 0), pt(1, 1), pt(0, 1)},
		},
	},
	{
		Name:   "skewed_quad",
		Path:   polygon(pt(10, 12), pt(50, 4), pt(58, 52), pt(4, 60)),
		Width:  64,
		Height: 64,
		Op: Textured{
			Texture: checkerboard(32, 32, 8, rgb(0, 0, 0), rgb(0, 180, 90)),
			UVs:     []vec.Vec2{pt(0, 0), pt(1, 0), pt(1, 1), pt(0, 1)},
		},
	},
	{
		Name:   "partial_uv",
		Path:   polygon(rectangle(16, 16, 48, 48)...),
		Width:  64,
		Height: 64,
		Op: Textured{
			Texture: checkerboard(16, 16, 4, rgb(255, 255, 255), rgb(120, 30, 30)),
			UVs:     []vec.Vec2{pt(0.25, 0.25), pt(0.75, 0.25), pt(0.75, 0.75), pt(0.25, 0.75)},
		},
	},
}

// checkerboard returns an image of squares with the given side length,
// alternating between the two colours.
func checkerboard(width, height, size int, c0, c1 color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := range height {
		for x := range width {
			c := c0
			if (x/size+y/size)%2 == 1 {
				c = c1
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}
