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

import "fmt"

// Step is a single named transformation in a pipeline.
type Step struct {
	kind   stepKind
	a, b   float64 // scale factors, offsets, or rotation angle in a
	cx, cy float64 // rotation centre for RotateAboutStep
}

type stepKind int

const (
	stepScale stepKind = iota
	stepRotate
	stepRotateAbout
	stepTranslate
)

// ScaleStep scales by (sx, sy).
func ScaleStep(sx, sy float64) Step {
	return Step{kind: stepScale, a: sx, b: sy}
}

// RotateStep rotates by the given angle in degrees around the origin.
func RotateStep(degrees float64) Step {
	return Step{kind: stepRotate, a: degrees}
}

// RotateAboutStep rotates by the given angle in degrees around (cx, cy).
func RotateAboutStep(degrees, cx, cy float64) Step {
	return Step{kind: stepRotateAbout, a: degrees, cx: cx, cy: cy}
}

// TranslateStep shifts by (tx, ty).
func TranslateStep(tx, ty float64) Step {
	return Step{kind: stepTranslate, a: tx, b: ty}
}

// Matrix returns the matrix of a single step.
func (s Step) Matrix() Matrix {
	switch s.kind {
	case stepScale:
		return Scale(s.a, s.b)
	case stepRotate:
		return Rotate(s.a)
	case stepRotateAbout:
		return RotateAbout(s.a, s.cx, s.cy)
	case stepTranslate:
		return Translate(s.a, s.b)
	}
	return Identity()
}

func (s Step) String() string {
	switch s.kind {
	case stepScale:
		return fmt.Sprintf("scale(%g, %g)", s.a, s.b)
	case stepRotate:
		return fmt.Sprintf("rotate(%g)", s.a)
	case stepRotateAbout:
		return fmt.Sprintf("rotate(%g, %g, %g)", s.a, s.cx, s.cy)
	case stepTranslate:
		return fmt.Sprintf("translate(%g, %g)", s.a, s.b)
	}
	return "identity"
}

// Compose returns the matrix of a pipeline.  The steps are listed in the
// order they act on a point: steps[0] first, then steps[1], and so on.
// Thus Compose(s0, s1, s2) equals s2·s1·s0.
//
// The usual order for placing a shape is scale, then rotate, then translate.
func Compose(steps ...Step) Matrix {
	M := Identity()
	for _, s := range steps {
		M = s.Matrix().Mul(M)
	}
	return M
}
