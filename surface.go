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

package pixel

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
)

// RGB returns an opaque colour.
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// RGBA returns a colour with an explicit alpha channel.
// The channels are stored as given, without premultiplication.
func RGBA(r, g, b, a uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: a}
}

// SetPixel writes c at the pixel containing the rounded coordinates (x, y).
// Writes outside the bounds of dst are silently ignored.
func SetPixel(dst draw.Image, x, y float64, c color.RGBA) {
	setPixel(dst, round(x), round(y), c)
}

// GetPixel returns the colour at the rounded coordinates (x, y).
// The second return value is false if (x, y) lies outside dst.
func GetPixel(src image.Image, x, y float64) (color.RGBA, bool) {
	return getPixel(src, round(x), round(y))
}

func setPixel(dst draw.Image, x, y int, c color.RGBA) {
	if !(image.Point{X: x, Y: y}).In(dst.Bounds()) {
		return
	}
	if rgba, ok := dst.(*image.RGBA); ok {
		rgba.SetRGBA(x, y, c)
		return
	}
	dst.Set(x, y, c)
}

func getPixel(src image.Image, x, y int) (color.RGBA, bool) {
	if !(image.Point{X: x, Y: y}).In(src.Bounds()) {
		return color.RGBA{}, false
	}
	if rgba, ok := src.(*image.RGBA); ok {
		return rgba.RGBAAt(x, y), true
	}
	return color.RGBAModel.Convert(src.At(x, y)).(color.RGBA), true
}

// round converts a coordinate to a pixel index.
// Coordinates beyond the int32 range are clamped, which keeps them
// outside of any surface.
func round(v float64) int {
	r := math.Round(v)
	switch {
	case math.IsNaN(r), r < math.MinInt32:
		return math.MinInt32
	case r > math.MaxInt32:
		return math.MaxInt32
	}
	return int(r)
}

// lerpChannel interpolates between two channel values and clamps the
// result to [0, 255].
func lerpChannel(a, b uint8, t float64) uint8 {
	v := math.Round(float64(a) + (float64(b)-float64(a))*t)
	return uint8(max(0, min(255, v)))
}

// lerpColor interpolates all four channels of two colours.
func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: lerpChannel(a.R, b.R, t),
		G: lerpChannel(a.G, b.G, t),
		B: lerpChannel(a.B, b.B, t),
		A: lerpChannel(a.A, b.A, t),
	}
}
