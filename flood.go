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
)

// FloodRule decides which pixels a flood fill paints.
// The implementations in this package are Replace and Bounded.
type FloodRule interface {
	// begin inspects the colour of the seed pixel.  It returns the colour
	// to paint and a predicate for the pixels to paint, or ok=false if
	// the fill should not start at all.
	begin(seed color.RGBA) (paint color.RGBA, inside func(color.RGBA) bool, ok bool)
}

// Replace is the flood fill rule which repaints the connected region of
// pixels having the seed's colour.
type Replace struct {
	// Target, if not nil, restricts the fill to seeds of this colour.
	// If the seed has a different colour, nothing is drawn.
	Target *color.RGBA

	// With is the replacement colour.
	With color.RGBA
}

func (f Replace) begin(seed color.RGBA) (color.RGBA, func(color.RGBA) bool, bool) {
	if seed == f.With {
		return f.With, nil, false
	}
	if f.Target != nil && *f.Target != seed {
		return f.With, nil, false
	}
	inside := func(c color.RGBA) bool {
		return c == seed
	}
	return f.With, inside, true
}

// Bounded is the flood fill rule which paints everything up to a border.
// Pixels of the border colour stop the fill, pixels already having the
// fill colour are not visited again, and all other pixels are overwritten.
type Bounded struct {
	Border color.RGBA
	Fill   color.RGBA
}

func (f Bounded) begin(seed color.RGBA) (color.RGBA, func(color.RGBA) bool, bool) {
	inside := func(c color.RGBA) bool {
		return c != f.Border && c != f.Fill
	}
	return f.Fill, inside, inside(seed)
}

// FloodFill paints the 4-connected region around the seed pixel (x, y),
// as selected by rule.  The seed coordinates are rounded to the nearest
// pixel.  An explicit stack is used instead of recursion, so large regions
// are safe.  A seed outside the surface draws nothing.
func (r *Rasteriser) FloodFill(x, y float64, rule FloodRule) {
	ix, iy := round(x), round(y)
	seed, ok := getPixel(r.Dst, ix, iy)
	if !ok || rule == nil {
		return
	}
	paint, inside, ok := rule.begin(seed)
	if !ok {
		return
	}

	b := r.Dst.Bounds()
	r.stack = append(r.stack[:0], image.Point{X: ix, Y: iy})
	for len(r.stack) > 0 {
		p := r.stack[len(r.stack)-1]
		r.stack = r.stack[:len(r.stack)-1]

		c, ok := getPixel(r.Dst, p.X, p.Y)
		if !ok || !inside(c) {
			continue
		}
		setPixel(r.Dst, p.X, p.Y, paint)
		if c, _ := getPixel(r.Dst, p.X, p.Y); inside(c) {
			// The surface cannot represent the paint colour distinctly,
			// continuing would never terminate.
			r.stack = r.stack[:0]
			return
		}

		if p.X+1 < b.Max.X {
			r.stack = append(r.stack, image.Point{X: p.X + 1, Y: p.Y})
		}
		if p.X-1 >= b.Min.X {
			r.stack = append(r.stack, image.Point{X: p.X - 1, Y: p.Y})
		}
		if p.Y+1 < b.Max.Y {
			r.stack = append(r.stack, image.Point{X: p.X, Y: p.Y + 1})
		}
		if p.Y-1 >= b.Min.Y {
			r.stack = append(r.stack, image.Point{X: p.X, Y: p.Y - 1})
		}
	}
}
