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

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Outcode classifies a point relative to a clip window.
// Coordinates follow the surface convention, with y increasing downwards:
// Top means y < ymin.
type Outcode uint8

// These are the bits of an Outcode.
const (
	Left   Outcode = 1 << iota // x < xmin
	Right                      // x > xmax
	Bottom                     // y > ymax
	Top                        // y < ymin
)

// Inside is the outcode of a point within the window.
const Inside Outcode = 0

// OutcodeOf computes the outcode of p with respect to the window w.
// The window is given by w.LLx=xmin, w.LLy=ymin, w.URx=xmax, w.URy=ymax.
func OutcodeOf(p vec.Vec2, w rect.Rect) Outcode {
	code := Inside
	if p.X < w.LLx {
		code |= Left
	} else if p.X > w.URx {
		code |= Right
	}
	if p.Y < w.LLy {
		code |= Top
	} else if p.Y > w.URy {
		code |= Bottom
	}
	return code
}

// ClipLine clips the segment p0-p1 to the window w, using the
// Cohen-Sutherland algorithm.  If any part of the segment is visible, the
// visible part is returned with ok=true.  End points inside the window are
// returned unchanged, and clipped end points lie exactly on the window
// boundary.
func ClipLine(p0, p1 vec.Vec2, w rect.Rect) (q0, q1 vec.Vec2, ok bool) {
	code0 := OutcodeOf(p0, w)
	code1 := OutcodeOf(p1, w)

	// Every clip operation removes at least one bit from an outcode,
	// so four operations suffice in exact arithmetic.
	for step := 0; ; step++ {
		if code0|code1 == Inside {
			return p0, p1, true
		}
		if code0&code1 != Inside || step == maxClipSteps {
			return p0, p1, false
		}

		out := code0
		if out == Inside {
			out = code1
		}

		var p vec.Vec2
		dx := p1.X - p0.X
		dy := p1.Y - p0.Y
		switch {
		case out&Top != 0:
			if dy == 0 {
				return p0, p1, false
			}
			p = vec.Vec2{X: p0.X + dx*(w.LLy-p0.Y)/dy, Y: w.LLy}
		case out&Bottom != 0:
			if dy == 0 {
				return p0, p1, false
			}
			p = vec.Vec2{X: p0.X + dx*(w.URy-p0.Y)/dy, Y: w.URy}
		case out&Right != 0:
			if dx == 0 {
				return p0, p1, false
			}
			p = vec.Vec2{X: w.URx, Y: p0.Y + dy*(w.URx-p0.X)/dx}
		case out&Left != 0:
			if dx == 0 {
				return p0, p1, false
			}
			p = vec.Vec2{X: w.LLx, Y: p0.Y + dy*(w.LLx-p0.X)/dx}
		}

		if out == code0 {
			p0 = p
			code0 = OutcodeOf(p0, w)
		} else {
			p1 = p
			code1 = OutcodeOf(p1, w)
		}
	}
}

// maxClipSteps is the largest number of end point replacements done by
// ClipLine for a single segment.
const maxClipSteps = 4

// ClippedLine draws the part of the segment p0-p1 which lies inside the
// window w.
func (r *Rasteriser) ClippedLine(p0, p1 vec.Vec2, w rect.Rect, c color.RGBA) {
	if q0, q1, ok := ClipLine(p0, p1, w); ok {
		r.Line(q0, q1, c)
	}
}

// ClippedPolygon draws the parts of the closed polygon outline which lie
// inside the window w.
func (r *Rasteriser) ClippedPolygon(points []vec.Vec2, w rect.Rect, c color.RGBA) {
	n := len(points)
	if n < 2 {
		return
	}
	for i, p := range points {
		r.ClippedLine(p, points[(i+1)%n], w, c)
	}
}

// BoundingWindow returns the smallest window containing all points.
// For an empty list, the zero window is returned.
func BoundingWindow(points []vec.Vec2) rect.Rect {
	if len(points) == 0 {
		return rect.Rect{}
	}
	w := rect.Rect{
		LLx: points[0].X, LLy: points[0].Y,
		URx: points[0].X, URy: points[0].Y,
	}
	for _, p := range points[1:] {
		w.LLx = min(w.LLx, p.X)
		w.LLy = min(w.LLy, p.Y)
		w.URx = max(w.URx, p.X)
		w.URy = max(w.URy, p.Y)
	}
	return w
}
