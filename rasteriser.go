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
	"math"
	"slices"

	"golang.org/x/image/draw"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Rasteriser draws shapes into a surface using per-pixel writes only.
// The caller creates one instance per surface and reuses it for all
// drawing operations of a frame.  Internal buffers grow as needed but
// never shrink, achieving zero allocations in steady state.
//
// Pixels outside the bounds of Dst are never written.  No drawing
// operation fails: degenerate input draws nothing, or as much as
// makes sense.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// Dst is the surface all operations draw into.
	Dst draw.Image

	// Flatness is the curve flattening tolerance in pixels, used by
	// FillPath and Flatten.  Non-positive values select the default.
	// Typical values are 0.25-1.0.
	Flatness float64

	// Internal buffers (reused across calls)
	edges    []edge        // edge list for the current polygon
	texEdges []texEdge     // edge list for textured fills
	xs       []float64     // x-intercepts on the current scanline
	texXs    []texCrossing // x-intercepts with texture coordinates
	ring     []vec.Vec2    // current subpath while flattening a path
	stack    []image.Point // pending pixels for flood fill

	// Edge collection state (used by addRing/addEdge)
	bboxFirst bool    // true if no vertex has been seen yet
	bboxYMin  float64 // vertical extent of all vertices
	bboxYMax  float64
}

// NewRasteriser creates a new Rasteriser drawing into dst, with default
// values for all other parameters.
func NewRasteriser(dst draw.Image) *Rasteriser {
	return &Rasteriser{
		Dst:      dst,
		Flatness: defaultFlatness,
	}
}

// Reset points the Rasteriser at a new surface and restores default
// parameters, while keeping the internal buffers for reuse.
func (r *Rasteriser) Reset(dst draw.Image) {
	r.Dst = dst
	r.Flatness = defaultFlatness
}

// flatness returns the curve flattening tolerance, falling back to the
// default if Flatness is not positive.
func (r *Rasteriser) flatness() float64 {
	if r.Flatness > 0 {
		return r.Flatness
	}
	return defaultFlatness
}

// flattenQuadratic flattens a quadratic Bézier and calls emit for each
// intermediate and final point.  p0 is the start point, p1 is the control
// point, p2 is the endpoint.
func (r *Rasteriser) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(vec.Vec2)) {
	// Compute error vector: e = (P0 - 2*P1 + P2) / 4
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)

	n := 1
	if errDev := e.Length(); errDev > r.flatness() {
		n = int(math.Ceil(math.Sqrt(errDev / r.flatness())))
	}

	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		// B(t) = (1-t)²P0 + 2(1-t)tP1 + t²P2
		omt := 1 - t
		emit(p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t)))
	}
}

// flattenCubic flattens a cubic Bézier and calls emit for each intermediate
// and final point.  p0 is start, p1/p2 are controls, p3 is endpoint.
func (r *Rasteriser) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(vec.Vec2)) {
	d1 := p0.Sub(p1.Mul(2)).Add(p2) // P0 - 2*P1 + P2
	d2 := p1.Sub(p2.Mul(2)).Add(p3) // P1 - 2*P2 + P3

	// Compute segment count using Wang's formula
	m := max(d1.Length(), d2.Length())
	n := 1
	if m > 0 {
		// n = ceil(sqrt(3 * m / (4 * ε)))
		nFloat := math.Sqrt(3 * m / (4 * r.flatness()))
		if nFloat > 1 {
			n = int(math.Ceil(nFloat))
		}
	}

	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		// B(t) = (1-t)³P0 + 3(1-t)²tP1 + 3(1-t)t²P2 + t³P3
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		emit(p0.Mul(omt2 * omt).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t2 * t)))
	}
}

// collectPathEdges walks the path and builds the edge list.  Every subpath
// is closed implicitly, as required for filling.
func (r *Rasteriser) collectPathEdges(p *path.Data) {
	r.resetEdges()
	r.walkPath(p, r.addRing)
}

// Flatten converts a path into polygons, one for each subpath, replacing
// curves by straight line segments which deviate from the curve by at most
// Flatness pixels.
// The returned slices are newly allocated and owned by the caller.
func (r *Rasteriser) Flatten(p *path.Data) [][]vec.Vec2 {
	if p == nil {
		return nil
	}
	var res [][]vec.Vec2
	r.walkPath(p, func(ring []vec.Vec2) {
		res = append(res, slices.Clone(ring))
	})
	return res
}

// walkPath flattens the path and calls emit once for every subpath.
// The slice passed to emit is only valid until emit returns.
func (r *Rasteriser) walkPath(p *path.Data, emit func(ring []vec.Vec2)) {
	r.ring = r.ring[:0]

	// implicit is set while the only point of r.ring is the start point
	// carried over from a closed subpath.
	implicit := false
	appendPoint := func(v vec.Vec2) {
		r.ring = append(r.ring, v)
		implicit = false
	}
	endSubpath := func() {
		if len(r.ring) > 0 && !implicit {
			emit(r.ring)
		}
		r.ring = r.ring[:0]
	}

	var current vec.Vec2
	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			endSubpath()
			current = p.Coords[coordIdx]
			appendPoint(current)
			coordIdx++

		case path.CmdLineTo:
			current = p.Coords[coordIdx]
			appendPoint(current)
			coordIdx++

		case path.CmdQuadTo:
			r.flattenQuadratic(current, p.Coords[coordIdx], p.Coords[coordIdx+1], appendPoint)
			current = p.Coords[coordIdx+1]
			coordIdx += 2

		case path.CmdCubeTo:
			r.flattenCubic(current, p.Coords[coordIdx], p.Coords[coordIdx+1], p.Coords[coordIdx+2], appendPoint)
			current = p.Coords[coordIdx+2]
			coordIdx += 3

		case path.CmdClose:
			if len(r.ring) > 0 {
				current = r.ring[0]
			}
			endSubpath()
			// a following LineTo continues from the start of the
			// closed subpath
			appendPoint(current)
			implicit = true
		}
	}
	endSubpath()
}

// Default values for rasteriser parameters.
const (
	// defaultFlatness is the default curve flattening tolerance in pixels.
	// Without anti-aliasing, half a pixel is below what rounding of the
	// intercepts can show.
	defaultFlatness = 0.5
)
