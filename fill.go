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
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Scanline fill model:
//
// For every integer scanline y with yMin <= y < yMax, where yMin and yMax
// are the extreme vertex y values, each non-horizontal edge (x0,y0)-(x1,y1)
// with y0 < y1 contributes the intercept
//
//	x = x0 + (y-y0)*(x1-x0)/(y1-y0)   if y0 <= y < y1.
//
// The intercepts are sorted and paired up (0,1), (2,3), ..., and every
// pair is filled from round(x_start) to round(x_end) inclusive.  This is
// the even-odd rule: self-intersecting polygons and nested rings produce
// holes.  An unpaired last intercept is dropped.

// edge represents a non-horizontal polygon edge, oriented downwards.
type edge struct {
	x0, y0 float64 // upper end point (smaller y)
	y1     float64 // y of lower end point
	dxdy   float64 // (x1-x0)/(y1-y0), precomputed for x-intercept calculation
}

// resetEdges clears the edge list and the bounding box.
func (r *Rasteriser) resetEdges() {
	r.edges = r.edges[:0]
	r.texEdges = r.texEdges[:0]
	r.bboxFirst = true
}

// addVertex records a vertex for the vertical extent of the polygon.
func (r *Rasteriser) addVertex(p vec.Vec2) {
	if r.bboxFirst {
		r.bboxYMin = p.Y
		r.bboxYMax = p.Y
		r.bboxFirst = false
		return
	}
	r.bboxYMin = min(r.bboxYMin, p.Y)
	r.bboxYMax = max(r.bboxYMax, p.Y)
}

// addRing adds the edges of the closed polygon pts to the edge list.
// Rings with fewer than three points are ignored.
func (r *Rasteriser) addRing(pts []vec.Vec2) {
	n := len(pts)
	if n < 3 {
		return
	}
	for i, p := range pts {
		r.addVertex(p)
		r.addEdge(p, pts[(i+1)%n])
	}
}

// addEdge adds a single edge.  Horizontal edges are skipped.
func (r *Rasteriser) addEdge(p0, p1 vec.Vec2) {
	if p0.Y == p1.Y {
		return
	}
	if p0.Y > p1.Y {
		p0, p1 = p1, p0
	}
	r.edges = append(r.edges, edge{
		x0:   p0.X,
		y0:   p0.Y,
		y1:   p1.Y,
		dxdy: (p1.X - p0.X) / (p1.Y - p0.Y),
	})
}

// scanRange returns the integer scanlines to visit, clamped to the
// surface.  The range is empty if no vertex was collected.
func (r *Rasteriser) scanRange() (yStart, yEnd int) {
	if r.bboxFirst || r.Dst == nil {
		return 0, 0
	}
	if math.IsNaN(r.bboxYMin) || math.IsNaN(r.bboxYMax) {
		return 0, 0
	}
	b := r.Dst.Bounds()
	lo, hi := float64(b.Min.Y), float64(b.Max.Y)

	// first integer y >= yMin, up to the last integer y < yMax
	yStart = int(min(max(math.Ceil(r.bboxYMin), lo), hi))
	yEnd = int(min(max(math.Ceil(r.bboxYMax), lo), hi))
	return yStart, yEnd
}

// intercepts computes the sorted x-intercepts of all edges with the
// scanline y.  The returned slice is only valid until the next call.
func (r *Rasteriser) intercepts(y float64) []float64 {
	r.xs = r.xs[:0]
	for i := range r.edges {
		e := &r.edges[i]
		if y < e.y0 || y >= e.y1 {
			continue
		}
		r.xs = append(r.xs, e.x0+(y-e.y0)*e.dxdy)
	}
	slices.Sort(r.xs)
	return r.xs
}

// fillSpans paints the paired spans of xs on row y.
func (r *Rasteriser) fillSpans(y int, xs []float64, c color.RGBA) {
	b := r.Dst.Bounds()
	for i := 0; i+1 < len(xs); i += 2 {
		xStart := max(round(xs[i]), b.Min.X)
		xEnd := min(round(xs[i+1]), b.Max.X-1)
		for x := xStart; x <= xEnd; x++ {
			setPixel(r.Dst, x, y, c)
		}
	}
}

// scanFlat fills the collected edges with a single colour.
func (r *Rasteriser) scanFlat(c color.RGBA) {
	yStart, yEnd := r.scanRange()
	for y := yStart; y < yEnd; y++ {
		r.fillSpans(y, r.intercepts(float64(y)), c)
	}
}

// Fill fills the polygon with a single colour, using the even-odd rule.
// The polygon is closed implicitly.  Polygons with fewer than three points
// draw nothing.
func (r *Rasteriser) Fill(points []vec.Vec2, c color.RGBA) {
	r.resetEdges()
	r.addRing(points)
	r.scanFlat(c)
}

// FillRings fills several closed rings as one shape, using the even-odd
// rule.  A ring inside another ring cuts a hole.
func (r *Rasteriser) FillRings(rings [][]vec.Vec2, c color.RGBA) {
	r.resetEdges()
	for _, ring := range rings {
		r.addRing(ring)
	}
	r.scanFlat(c)
}

// FillPath fills the path using the even-odd rule.  Curves are flattened
// to within Flatness pixels, and every subpath is closed implicitly.
func (r *Rasteriser) FillPath(p *path.Data, c color.RGBA) {
	if p == nil {
		return
	}
	r.collectPathEdges(p)
	r.scanFlat(c)
}

// FillGradient fills the polygon with a vertical colour gradient.
// Row y gets the colour interpolated between top and bottom with
// t = (y-yMin)/(yMax-yMin), where yMin and yMax are the extreme vertex y
// values.  The whole row uses the same colour.
func (r *Rasteriser) FillGradient(points []vec.Vec2, top, bottom color.RGBA) {
	r.resetEdges()
	r.addRing(points)

	height := r.bboxYMax - r.bboxYMin
	if r.bboxFirst || height <= 0 {
		return
	}

	yStart, yEnd := r.scanRange()
	for y := yStart; y < yEnd; y++ {
		t := (float64(y) - r.bboxYMin) / height
		r.fillSpans(y, r.intercepts(float64(y)), lerpColor(top, bottom, t))
	}
}
