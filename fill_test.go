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
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func TestFillSquare(t *testing.T) {
	dst := NewSurface(32, 32)
	red := RGB(255, 0, 0)
	NewRasteriser(dst).Fill([]vec.Vec2{
		{X: 10, Y: 10}, {X: 20, Y: 10}, {X: 20, Y: 20}, {X: 10, Y: 20},
	}, red)

	for y := range 32 {
		for x := range 32 {
			got := dst.RGBAAt(x, y)
			switch {
			case x >= 10 && x < 20 && y >= 10 && y < 20:
				if got != red {
					t.Errorf("pixel (%d, %d) = %v, want %v", x, y, got, red)
				}
			case x >= 10 && x <= 20 && y >= 10 && y < 20:
				// right-most column: end points of spans are included
			default:
				if got != (color.RGBA{}) {
					t.Errorf("pixel (%d, %d) outside the square changed", x, y)
				}
			}
		}
	}
}

func TestFillDegenerate(t *testing.T) {
	nan := math.NaN()
	cases := [][]vec.Vec2{
		nil,
		{{X: 1, Y: 1}},
		{{X: 1, Y: 1}, {X: 10, Y: 10}},
		{{X: 1, Y: 5}, {X: 10, Y: 5}, {X: 20, Y: 5}},
		{{X: nan, Y: 1}, {X: 10, Y: 10}, {X: 1, Y: 10}},
		{{X: 1, Y: nan}, {X: 10, Y: nan}, {X: 1, Y: nan}},
	}
	for i, pts := range cases {
		dst := NewSurface(16, 16)
		NewRasteriser(dst).Fill(pts, RGB(255, 255, 255))
		if i != 4 && !isBlank(dst) {
			t.Errorf("case %d: degenerate polygon drew something", i)
		}
	}
}

func TestFillOrientation(t *testing.T) {
	pts := []vec.Vec2{{X: 3.3, Y: 2.1}, {X: 28.7, Y: 9.4}, {X: 17.2, Y: 29.8}, {X: 6, Y: 17.5}}
	a := NewSurface(32, 32)
	NewRasteriser(a).Fill(pts, RGB(255, 255, 255))

	rev := slices.Clone(pts)
	slices.Reverse(rev)
	b := NewSurface(32, 32)
	NewRasteriser(b).Fill(rev, RGB(255, 255, 255))

	if !slices.Equal(a.Pix, b.Pix) {
		t.Error("fill depends on the orientation of the polygon")
	}
}

func TestFillCoversSurface(t *testing.T) {
	dst := NewSurface(16, 16)
	NewRasteriser(dst).Fill([]vec.Vec2{
		{X: -1e9, Y: -1e9}, {X: 1e9, Y: -1e9}, {X: 1e9, Y: 1e9}, {X: -1e9, Y: 1e9},
	}, RGB(0, 255, 0))

	for y := range 16 {
		for x := range 16 {
			if dst.RGBAAt(x, y) != RGB(0, 255, 0) {
				t.Fatalf("pixel (%d, %d) not filled", x, y)
			}
		}
	}
}

func TestFillRingsEvenOdd(t *testing.T) {
	outer := []vec.Vec2{{X: 2, Y: 2}, {X: 30, Y: 2}, {X: 30, Y: 30}, {X: 2, Y: 30}}
	inner := []vec.Vec2{{X: 10, Y: 10}, {X: 22, Y: 10}, {X: 22, Y: 22}, {X: 10, Y: 22}}

	dst := NewSurface(32, 32)
	NewRasteriser(dst).FillRings([][]vec.Vec2{outer, inner}, RGB(255, 255, 255))

	if dst.RGBAAt(5, 16).A == 0 {
		t.Error("ring not filled")
	}
	if dst.RGBAAt(16, 16).A != 0 {
		t.Error("hole filled, although both rings have the same orientation")
	}
}

func TestFillPathCurve(t *testing.T) {
	const k = 0.5522847498 * 10
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 26, Y: 16}).
		CubeTo(vec.Vec2{X: 26, Y: 16 + k}, vec.Vec2{X: 16 + k, Y: 26}, vec.Vec2{X: 16, Y: 26}).
		CubeTo(vec.Vec2{X: 16 - k, Y: 26}, vec.Vec2{X: 6, Y: 16 + k}, vec.Vec2{X: 6, Y: 16}).
		CubeTo(vec.Vec2{X: 6, Y: 16 - k}, vec.Vec2{X: 16 - k, Y: 6}, vec.Vec2{X: 16, Y: 6}).
		CubeTo(vec.Vec2{X: 16 + k, Y: 6}, vec.Vec2{X: 26, Y: 16 - k}, vec.Vec2{X: 26, Y: 16}).
		Close()

	dst := NewSurface(32, 32)
	NewRasteriser(dst).FillPath(p, RGB(255, 255, 255))

	if dst.RGBAAt(16, 16).A == 0 {
		t.Error("centre of the circle not filled")
	}
	for _, q := range [][2]int{{7, 7}, {24, 7}, {24, 24}, {7, 24}} {
		if dst.RGBAAt(q[0], q[1]).A != 0 {
			t.Errorf("pixel %v outside the circle filled", q)
		}
	}
}

func TestFlatten(t *testing.T) {
	r := NewRasteriser(nil)

	if rings := r.Flatten(nil); rings != nil {
		t.Errorf("nil path: got %v", rings)
	}

	// a closed triangle, followed by a subpath which continues from the
	// start of the triangle
	p := &path.Data{
		Cmds: []path.Command{
			path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo, path.CmdClose,
			path.CmdLineTo,
		},
		Coords: []vec.Vec2{{X: 1, Y: 1}, {X: 5, Y: 1}, {X: 1, Y: 5}, {X: 9, Y: 9}},
	}
	rings := r.Flatten(p)
	want := [][]vec.Vec2{
		{{X: 1, Y: 1}, {X: 5, Y: 1}, {X: 1, Y: 5}},
		{{X: 1, Y: 1}, {X: 9, Y: 9}},
	}
	if len(rings) != len(want) {
		t.Fatalf("got %d rings, want %d", len(rings), len(want))
	}
	for i := range want {
		if !slices.Equal(rings[i], want[i]) {
			t.Errorf("ring %d = %v, want %v", i, rings[i], want[i])
		}
	}

	single := r.Flatten((&path.Data{}).MoveTo(vec.Vec2{X: 3, Y: 4}))
	if len(single) != 1 || len(single[0]) != 1 {
		t.Errorf("single point path: got %v", single)
	}

	// the returned rings must not share memory with internal buffers
	r.Flatten((&path.Data{}).MoveTo(vec.Vec2{X: 7, Y: 7}).LineTo(vec.Vec2{X: 8, Y: 8}))
	if !slices.Equal(rings[0], want[0]) {
		t.Error("Flatten result was overwritten by a later call")
	}
}

func TestFlattenTolerance(t *testing.T) {
	const radius = 20
	const k = 0.5522847498 * radius
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: radius, Y: 0}).
		CubeTo(vec.Vec2{X: radius, Y: k}, vec.Vec2{X: k, Y: radius}, vec.Vec2{X: 0, Y: radius}).
		QuadTo(vec.Vec2{X: -radius, Y: radius}, vec.Vec2{X: -radius, Y: 0})

	for _, flatness := range []float64{1, 0.5, 0.1, 0.01} {
		r := NewRasteriser(nil)
		r.Flatness = flatness
		rings := r.Flatten(p)
		if len(rings) != 1 {
			t.Fatalf("got %d rings", len(rings))
		}
		ring := rings[0]
		if ring[len(ring)-1] != (vec.Vec2{X: -radius, Y: 0}) {
			t.Errorf("flatness %g: last point %v", flatness, ring[len(ring)-1])
		}
		// the cubic part follows the circle closely
		for _, q := range ring {
			if q.X < 0 {
				break
			}
			if d := q.Length(); math.Abs(d-radius) > 0.1 {
				t.Errorf("flatness %g: point %v off the circle", flatness, q)
			}
		}
		// chords of the quadratic part stay within the tolerance
		for i := 1; i < len(ring); i++ {
			a, b := ring[i-1], ring[i]
			if a.X > 0 || b.X > 0 {
				continue
			}
			mid := a.Add(b).Mul(0.5)
			tParam := quadParamNear(mid, radius)
			onCurve := quadPoint(vec.Vec2{X: 0, Y: radius}, vec.Vec2{X: -radius, Y: radius}, vec.Vec2{X: -radius, Y: 0}, tParam)
			if d := mid.Sub(onCurve).Length(); d > flatness+1e-6 {
				t.Errorf("flatness %g: chord %v-%v deviates by %g", flatness, a, b, d)
			}
		}
	}
}

// quadPoint evaluates a quadratic Bézier curve.
func quadPoint(p0, p1, p2 vec.Vec2, t float64) vec.Vec2 {
	s := 1 - t
	return p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
}

// quadParamNear finds the parameter of the point on the quadratic part of
// the test path which is closest to q, by sampling.
func quadParamNear(q vec.Vec2, radius float64) float64 {
	const samples = 100000
	best, bestDist := 0.0, math.Inf(1)
	for i := 0; i <= samples; i++ {
		t := float64(i) / samples
		d := quadPoint(vec.Vec2{X: 0, Y: radius}, vec.Vec2{X: -radius, Y: radius}, vec.Vec2{X: -radius, Y: 0}, t).Sub(q).Length()
		if d < bestDist {
			best, bestDist = t, d
		}
	}
	return best
}

func TestFillGradient(t *testing.T) {
	top := RGB(0, 0, 0)
	bottom := RGB(200, 100, 50)
	dst := NewSurface(16, 16)
	NewRasteriser(dst).FillGradient([]vec.Vec2{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
	}, top, bottom)

	if got := dst.RGBAAt(3, 0); got != top {
		t.Errorf("top row = %v, want %v", got, top)
	}
	if got, want := dst.RGBAAt(3, 5), RGB(100, 50, 25); got != want {
		t.Errorf("middle row = %v, want %v", got, want)
	}
	for y := range 10 {
		c := dst.RGBAAt(5, y)
		if c.R > bottom.R || c.G > bottom.G || c.B > bottom.B {
			t.Errorf("row %d = %v, beyond the bottom colour", y, c)
		}
	}
	if dst.RGBAAt(5, 10).A != 0 {
		t.Error("row below the polygon filled")
	}
}

func TestFillGradientFlat(t *testing.T) {
	dst := NewSurface(16, 16)
	NewRasteriser(dst).FillGradient([]vec.Vec2{
		{X: 0, Y: 5}, {X: 10, Y: 5}, {X: 5, Y: 5},
	}, RGB(255, 0, 0), RGB(0, 0, 255))
	if !isBlank(dst) {
		t.Error("polygon without height drew something")
	}
}

// TestZeroAllocs checks that a Rasteriser does not allocate in steady state.
func TestZeroAllocs(t *testing.T) {
	dst := NewSurface(64, 64)
	r := NewRasteriser(dst)
	p := makeOPath(32, 32, 28, 18)
	white := RGB(255, 255, 255)

	r.FillPath(p, white) // warm up the buffers
	allocs := testing.AllocsPerRun(10, func() {
		r.FillPath(p, white)
	})
	if allocs > 0 {
		t.Errorf("FillPath allocates %g times per run", allocs)
	}
}
