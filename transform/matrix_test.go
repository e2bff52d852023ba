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

package transform

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

const epsilon = 1e-9

func near(a, b vec.Vec2) bool {
	return math.Abs(a.X-b.X) < epsilon && math.Abs(a.Y-b.Y) < epsilon
}

func nearMatrix(A, B Matrix) bool {
	for i := range 3 {
		for j := range 3 {
			if math.Abs(A[i][j]-B[i][j]) >= epsilon {
				return false
			}
		}
	}
	return true
}

func TestNonCommutative(t *testing.T) {
	p := vec.Vec2{X: 1, Y: 0}

	// rotate first, then translate
	got := Translate(5, 0).Mul(Rotate(90)).Apply(p)
	if want := (vec.Vec2{X: 5, Y: 1}); !near(got, want) {
		t.Errorf("translate·rotate: got %v, want %v", got, want)
	}

	// translate first, then rotate
	other := Rotate(90).Mul(Translate(5, 0)).Apply(p)
	if want := (vec.Vec2{X: 0, Y: 6}); !near(other, want) {
		t.Errorf("rotate·translate: got %v, want %v", other, want)
	}
	if near(got, other) {
		t.Error("composition order should matter")
	}
}

func TestCompose(t *testing.T) {
	p := vec.Vec2{X: 1, Y: 0}

	M := Compose(RotateStep(90), TranslateStep(5, 0))
	if got, want := M.Apply(p), (vec.Vec2{X: 5, Y: 1}); !near(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	N := Compose(ScaleStep(2, 3), RotateStep(90), TranslateStep(10, 20))
	want := Translate(10, 20).Mul(Rotate(90)).Mul(Scale(2, 3))
	if !nearMatrix(N, want) {
		t.Errorf("Compose mismatch:\n%v\n%v", N, want)
	}

	if Compose() != Identity() {
		t.Error("empty pipeline should be the identity")
	}
}

func TestInverseRoundTrip(t *testing.T) {
	points := []vec.Vec2{
		{X: 0, Y: 0},
		{X: 1, Y: 2},
		{X: -3.5, Y: 7.25},
		{X: 100, Y: -40},
	}
	cases := []struct {
		name string
		M    Matrix
	}{
		{"identity", Identity()},
		{"translate", Translate(3, -4)},
		{"rotate", Rotate(37)},
		{"scale", Scale(2, 0.5)},
		{"tiny", Scale(1e-7, 1e-7)},
		{"tinyRotate", Compose(RotateStep(30), ScaleStep(1e-9, 2e-9))},
		{"huge", Scale(1e8, 1e8)},
		{"about", RotateAbout(120, 10, 20)},
		{"pipeline", Compose(ScaleStep(3, 2), RotateStep(-15), TranslateStep(50, 60))},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			inv, ok := c.M.Inverse()
			if !ok {
				t.Fatal("matrix reported singular")
			}
			back := Apply(Apply(points, c.M), inv)
			for i := range points {
				if !near(back[i], points[i]) {
					t.Errorf("point %d: got %v, want %v", i, back[i], points[i])
				}
			}
		})
	}
}

func TestSingular(t *testing.T) {
	if _, ok := Scale(0, 1).Inverse(); ok {
		t.Error("zero scale should not be invertible")
	}
	nearly := Matrix{{1, 2, 0}, {1, 2 + 1e-15, 0}, {0, 0, 1}}
	if _, ok := nearly.Inverse(); ok {
		t.Error("nearly parallel rows should not be invertible")
	}
	nan := Matrix{{math.NaN(), 0, 0}, {0, 1, 0}, {0, 0, 1}}
	if _, ok := nan.Inverse(); ok {
		t.Error("NaN entries should not be invertible")
	}
}

func TestRotateAbout(t *testing.T) {
	M := RotateAbout(90, 10, 10)
	if got := M.Apply(vec.Vec2{X: 10, Y: 10}); !near(got, vec.Vec2{X: 10, Y: 10}) {
		t.Errorf("centre moved to %v", got)
	}
	if got, want := M.Apply(vec.Vec2{X: 11, Y: 10}), (vec.Vec2{X: 10, Y: 11}); !near(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestWindowToViewport(t *testing.T) {
	win := rect.Rect{LLx: 0, LLy: 0, URx: 1000, URy: 500}
	vp := rect.Rect{LLx: 10, LLy: 20, URx: 110, URy: 70}
	M := WindowToViewport(win, vp)

	tests := []struct{ in, out vec.Vec2 }{
		{vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 10, Y: 20}},
		{vec.Vec2{X: 1000, Y: 500}, vec.Vec2{X: 110, Y: 70}},
		{vec.Vec2{X: 500, Y: 250}, vec.Vec2{X: 60, Y: 45}},
	}
	for _, tt := range tests {
		if got := M.Apply(tt.in); !near(got, tt.out) {
			t.Errorf("%v: got %v, want %v", tt.in, got, tt.out)
		}
	}

	flat := WindowToViewport(rect.Rect{LLx: 5, LLy: 0, URx: 5, URy: 10}, vp)
	if got := flat.Apply(vec.Vec2{X: 5, Y: 10}); !near(got, vec.Vec2{X: 10, Y: 70}) {
		t.Errorf("degenerate window: got %v", got)
	}
}

func TestApplyDoesNotAlias(t *testing.T) {
	in := []vec.Vec2{{X: 1, Y: 1}}
	out := Apply(in, Translate(1, 0))
	out[0].X = 99
	if in[0].X != 1 {
		t.Error("Apply modified its input")
	}
}

func TestAffine(t *testing.T) {
	M := Compose(ScaleStep(2, 3), RotateStep(30), TranslateStep(4, 5))
	if back := FromAffine(M.Affine()); back != M {
		t.Errorf("round trip: got %v, want %v", back, M)
	}

	if got := FromAffine(matrix.Identity); got != Identity() {
		t.Errorf("identity: got %v", got)
	}
	if got := FromAffine(matrix.Scale(2, 3)); got != Scale(2, 3) {
		t.Errorf("scale: got %v", got)
	}

	p := vec.Vec2{X: 3, Y: 1}
	want := Rotate(30).Apply(p)
	if got := FromAffine(matrix.RotateDeg(30)).Apply(p); !near(got, want) {
		t.Errorf("rotation: got %v, want %v", got, want)
	}
}

func TestStepString(t *testing.T) {
	if s := TranslateStep(1, 2).String(); s != "translate(1, 2)" {
		t.Errorf("got %q", s)
	}
}
