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
	"math"

	"seehuhn.de/go/geom/vec"
)

// Ring returns n points evenly spaced on the circle around center, starting
// at angle zero.  Fewer than three points give nil.
func Ring(center vec.Vec2, radius float64, n int) []vec.Vec2 {
	if n < 3 {
		return nil
	}
	return appendRing(make([]vec.Vec2, 0, n), center, radius, n)
}

func appendRing(pts []vec.Vec2, center vec.Vec2, radius float64, n int) []vec.Vec2 {
	for i := range n {
		s, c := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		pts = append(pts, vec.Vec2{X: center.X + radius*c, Y: center.Y + radius*s})
	}
	return pts
}

// Cone returns the triangle of a light cone.  The apex is at the given
// point, the cone points in the direction given by angle (in degrees,
// measured from the positive x-axis towards the positive y-axis), the two
// far corners are at distance length and spread degrees to either side.
func Cone(apex vec.Vec2, angle, length, spread float64) []vec.Vec2 {
	toRad := math.Pi / 180
	sl, cl := math.Sincos((angle - spread) * toRad)
	sr, cr := math.Sincos((angle + spread) * toRad)
	return []vec.Vec2{
		apex,
		{X: apex.X + cl*length, Y: apex.Y + sl*length},
		{X: apex.X + cr*length, Y: apex.Y + sr*length},
	}
}

// Spikes returns a row of triangular spikes along the segment p0-p1.
// Spike i has a base of width spacing on the segment, centred on the point
// at distance i·spacing from p0, so the first base reaches half a spacing
// behind p0.  The tip lies at distance size·|side| from the segment, to the
// left of the direction p0→p1 if side is positive and to the right if side
// is negative (with y increasing downwards, left and right swap on screen).
// One spike is generated for every full spacing that fits into the
// segment, up to at most maxSpikes.  A segment of zero length, or a
// non-positive spacing, gives no spikes.
func Spikes(p0, p1 vec.Vec2, side, size, spacing float64) [][]vec.Vec2 {
	d := p1.Sub(p0)
	length := d.Length()
	if length == 0 || !(spacing > 0) {
		return nil
	}
	n := math.Floor(length / spacing)
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return nil
	}
	count := int(min(n, maxSpikes))

	u := d.Mul(1 / length)
	normal := vec.Vec2{X: -u.Y * side, Y: u.X * side}
	half := u.Mul(spacing / 2)
	spikes := make([][]vec.Vec2, 0, count)
	for i := range count {
		base := p0.Add(u.Mul(float64(i) * spacing))
		spikes = append(spikes, []vec.Vec2{
			base.Sub(half),
			base.Add(half),
			base.Add(normal.Mul(size)),
		})
	}
	return spikes
}

// maxSpikes limits the number of spikes generated by a single call.
const maxSpikes = 4096
