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
	"image/color"
	"math/bits"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Line draws the segment from p0 to p1 using Bresenham's algorithm.
// The end points are rounded to pixel positions first.  Both end points
// are drawn, and swapping p0 and p1 gives the same set of pixels.
// Only the steps which can reach the surface are visited, so segments
// with far away end points are cheap.
func (r *Rasteriser) Line(p0, p1 vec.Vec2, c color.RGBA) {
	if r.Dst == nil {
		return
	}
	x0, y0 := round(p0.X), round(p0.Y)
	x1, y1 := round(p1.X), round(p1.Y)

	// step along the longer axis
	steep := abs(y1-y0) > abs(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	// surface range along the major and minor axis
	b := r.Dst.Bounds()
	majLo, majHi, minLo, minHi := b.Min.X, b.Max.X, b.Min.Y, b.Max.Y
	if steep {
		majLo, majHi, minLo, minHi = minLo, minHi, majLo, majHi
	}
	xStart, xEnd := max(x0, majLo), min(x1, majHi-1)
	if xStart > xEnd || max(y0, y1) < minLo || min(y0, y1) >= minHi {
		return
	}

	dx := x1 - x0
	dy := y1 - y0
	yStep := 1
	if dy < 0 {
		yStep = -1
		dy = -dy
	}

	incE := 2 * dy
	incNE := 2 * (dy - dx)
	j, d := bresenhamSkip(dx, dy, xStart-x0)
	y := y0 + yStep*j
	for x := xStart; x <= xEnd; x++ {
		if yStep > 0 && y >= minHi || yStep < 0 && y < minLo {
			break
		}
		if steep {
			setPixel(r.Dst, y, x, c)
		} else {
			setPixel(r.Dst, x, y, c)
		}
		if d > 0 {
			y += yStep
			d += incNE
		} else {
			d += incE
		}
	}
}

// bresenhamSkip returns the minor axis offset j and the decision variable d
// of Bresenham's algorithm after k steps along the major axis, for a line
// with 0 <= dy <= dx.  The products involved may exceed 64 bits, so they
// are computed with full precision.
func bresenhamSkip(dx, dy, k int) (j, d int) {
	if k <= 0 {
		return 0, 2*dy - dx
	}
	// j = ceil((2·dy·k - dx) / (2·dx)) and d = 2·dy·(k+1) - dx - 2·dx·j
	hi, lo := bits.Mul64(uint64(2*dy), uint64(k))
	q, rem := bits.Div64(hi, lo, uint64(2*dx))
	j = int(q)
	d = int(rem) + 2*dy - dx
	if int(rem) > dx {
		j++
		d -= 2 * dx
	}
	return j, d
}

// Polygon draws the outline of a closed polygon, including the edge from
// the last point back to the first.
func (r *Rasteriser) Polygon(points []vec.Vec2, c color.RGBA) {
	n := len(points)
	switch n {
	case 0:
		return
	case 1:
		r.Line(points[0], points[0], c)
		return
	}
	for i, p := range points {
		r.Line(p, points[(i+1)%n], c)
	}
}

// Triangle draws the outline of the triangle p0, p1, p2.
func (r *Rasteriser) Triangle(p0, p1, p2 vec.Vec2, c color.RGBA) {
	r.Line(p0, p1, c)
	r.Line(p1, p2, c)
	r.Line(p2, p0, c)
}

// Rect draws the outline of the axis-aligned rectangle with top-left corner
// (x, y) and the given width and height.
func (r *Rasteriser) Rect(x, y, width, height float64, c color.RGBA) {
	r.Polygon([]vec.Vec2{
		{X: x, Y: y},
		{X: x + width, Y: y},
		{X: x + width, Y: y + height},
		{X: x, Y: y + height},
	}, c)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// OutlinePath draws the outline of every subpath of p, as for Polygon.
// Open subpaths are closed, and curves are flattened first.
func (r *Rasteriser) OutlinePath(p *path.Data, c color.RGBA) {
	if p == nil {
		return
	}
	r.walkPath(p, func(ring []vec.Vec2) {
		r.Polygon(ring, c)
	})
}
