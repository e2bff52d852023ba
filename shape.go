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
	"math"

	"seehuhn.de/go/geom/vec"
)

// Circle draws the outline of a circle using the midpoint algorithm.
// The centre and the radius are rounded to integers.  A radius of zero
// draws the centre pixel, negative radii draw nothing.
func (r *Rasteriser) Circle(center vec.Vec2, radius float64, c color.RGBA) {
	cx, cy := round(center.X), round(center.Y)
	rad := round(radius)
	if rad < 0 || r.Dst == nil {
		return
	}
	if lo, hi := r.visibleRadii(cx, cy); float64(rad) < lo || float64(rad) > hi {
		return
	}

	x, y := 0, rad
	d := 3 - 2*rad
	for x <= y {
		r.circlePoints(cx, cy, x, y, c)
		if d > 0 {
			d += 4*(x-y) + 10
			y--
		} else {
			d += 4*x + 6
		}
		x++
	}
}

// visibleRadii returns the range of radii for which an outline around
// (cx, cy) can touch the surface.  Rasterised outlines deviate from the
// exact circle by less than one pixel.
func (r *Rasteriser) visibleRadii(cx, cy int) (lo, hi float64) {
	b := r.Dst.Bounds()
	if b.Empty() {
		return 1, 0
	}
	x, y := float64(cx), float64(cy)
	xMin, xMax := float64(b.Min.X), float64(b.Max.X-1)
	yMin, yMax := float64(b.Min.Y), float64(b.Max.Y-1)

	nearX := max(xMin-x, 0, x-xMax)
	nearY := max(yMin-y, 0, y-yMax)
	farX := max(x-xMin, xMax-x)
	farY := max(y-yMin, yMax-y)
	return math.Hypot(nearX, nearY) - 1, math.Hypot(farX, farY) + 1
}

// circlePoints draws the eight reflections of (x, y) around (cx, cy).
func (r *Rasteriser) circlePoints(cx, cy, x, y int, c color.RGBA) {
	setPixel(r.Dst, cx+x, cy+y, c)
	setPixel(r.Dst, cx-x, cy+y, c)
	setPixel(r.Dst, cx+x, cy-y, c)
	setPixel(r.Dst, cx-x, cy-y, c)
	setPixel(r.Dst, cx+y, cy+x, c)
	setPixel(r.Dst, cx-y, cy+x, c)
	setPixel(r.Dst, cx+y, cy-x, c)
	setPixel(r.Dst, cx-y, cy-x, c)
}

// Ellipse draws the outline of an axis-aligned ellipse with semi-axes rx
// and ry, using the two-region midpoint algorithm.  The centre and the
// semi-axes are rounded to integers.
func (r *Rasteriser) Ellipse(center vec.Vec2, rx, ry float64, c color.RGBA) {
	cx, cy := round(center.X), round(center.Y)
	a, b := round(rx), round(ry)
	if a < 0 || b < 0 || r.Dst == nil {
		return
	}
	bounds := r.Dst.Bounds()
	if cx+a < bounds.Min.X || cx-a >= bounds.Max.X || cy+b < bounds.Min.Y || cy-b >= bounds.Max.Y {
		return
	}
	if b == 0 {
		for x := max(cx-a, bounds.Min.X); x <= min(cx+a, bounds.Max.X-1); x++ {
			setPixel(r.Dst, x, cy, c)
		}
		return
	}

	a2 := float64(a) * float64(a)
	b2 := float64(b) * float64(b)

	x, y := 0, b
	dx := 0.0
	dy := 2 * a2 * float64(y)

	// region 1: |slope| < 1, step in x
	d1 := b2 - a2*float64(b) + 0.25*a2
	for dx < dy {
		r.ellipsePoints(cx, cy, x, y, c)
		x++
		dx += 2 * b2
		if d1 < 0 {
			d1 += dx + b2
		} else {
			y--
			dy -= 2 * a2
			d1 += dx - dy + b2
		}
	}

	// region 2: |slope| >= 1, step in y
	fx := float64(x) + 0.5
	fy := float64(y - 1)
	d2 := b2*fx*fx + a2*fy*fy - a2*b2
	for y >= 0 {
		r.ellipsePoints(cx, cy, x, y, c)
		y--
		dy -= 2 * a2
		if d2 > 0 {
			d2 += a2 - dy
		} else {
			x++
			dx += 2 * b2
			d2 += dx - dy + a2
		}
	}
}

// ellipsePoints draws the four reflections of (x, y) around (cx, cy).
func (r *Rasteriser) ellipsePoints(cx, cy, x, y int, c color.RGBA) {
	setPixel(r.Dst, cx+x, cy+y, c)
	setPixel(r.Dst, cx-x, cy+y, c)
	setPixel(r.Dst, cx+x, cy-y, c)
	setPixel(r.Dst, cx-x, cy-y, c)
}

// Disc draws a filled circle by filling a polygon approximation of the
// circle outline.
func (r *Rasteriser) Disc(center vec.Vec2, radius float64, c color.RGBA) {
	if !(radius > 0) {
		return
	}
	r.ring = appendRing(r.ring[:0], center, radius, ringSegments(radius))
	r.Fill(r.ring, c)
}

// ShadedCircle fills a circle by drawing concentric outlines, with colours
// interpolated from inner at the centre to outer at the given radius.
func (r *Rasteriser) ShadedCircle(center vec.Vec2, radius float64, inner, outer color.RGBA) {
	rad := round(radius)
	if rad < 0 || r.Dst == nil {
		return
	}
	lo, hi := r.visibleRadii(round(center.X), round(center.Y))
	first := max(0, int(math.Ceil(lo)))
	last := min(rad, int(math.Floor(hi)))
	for i := first; i <= last; i++ {
		t := 0.0
		if rad > 0 {
			t = float64(i) / float64(rad)
		}
		r.Circle(center, float64(i), lerpColor(inner, outer, t))
	}
}

// ringSegments chooses the number of polygon corners for a circle of the
// given radius, so that the polygon deviates from the circle by at most
// defaultFlatness pixels.
func ringSegments(radius float64) int {
	if radius <= defaultFlatness {
		return minRingSegments
	}
	n := math.Ceil(math.Pi / math.Acos(1-defaultFlatness/radius))
	if n > maxRingSegments {
		return maxRingSegments
	}
	return max(int(n), minRingSegments)
}

// Bounds for the number of corners used to approximate a circle.
const (
	minRingSegments = 8
	maxRingSegments = 4096
)
