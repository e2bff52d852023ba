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

// Package transform implements 2D affine maps as 3×3 matrices in
// homogeneous coordinates.
//
// A point (x, y) is treated as the column vector [x y 1]ᵗ and is mapped by
// M·[x y 1]ᵗ.  Consequently, in the product A.Mul(B) the right operand B is
// applied to a point first.  Matrix multiplication is not commutative, so
// the order of composition matters.
package transform

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Matrix is a 3×3 matrix, indexed as M[row][col].
// Matrix values are never modified in place by this package.
type Matrix [3][3]float64

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Translate returns a matrix which shifts points by (tx, ty).
func Translate(tx, ty float64) Matrix {
	return Matrix{
		{1, 0, tx},
		{0, 1, ty},
		{0, 0, 1},
	}
}

// Rotate returns a rotation by the given angle in degrees.
//
// The rotation is counter-clockwise in the usual mathematical orientation.
// On a surface where y increases downwards, this appears clockwise.
func Rotate(degrees float64) Matrix {
	s, c := math.Sincos(degrees * math.Pi / 180)
	return Matrix{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	}
}

// Scale returns a matrix which scales x by sx and y by sy.
func Scale(sx, sy float64) Matrix {
	return Matrix{
		{sx, 0, 0},
		{0, sy, 0},
		{0, 0, 1},
	}
}

// RotateAbout returns a rotation by the given angle in degrees around the
// point (cx, cy).  This is T(cx,cy)·R(degrees)·T(-cx,-cy).
func RotateAbout(degrees, cx, cy float64) Matrix {
	return Translate(cx, cy).Mul(Rotate(degrees)).Mul(Translate(-cx, -cy))
}

// WindowToViewport returns the map which takes the rectangle win onto the
// rectangle vp.  The x and y axes are scaled independently.
//
// If win has zero width (or height), the corresponding scale factor is zero
// and the whole window collapses onto the viewport's minimum on that axis.
func WindowToViewport(win, vp rect.Rect) Matrix {
	sx, sy := 0.0, 0.0
	if w := win.URx - win.LLx; w != 0 {
		sx = (vp.URx - vp.LLx) / w
	}
	if h := win.URy - win.LLy; h != 0 {
		sy = (vp.URy - vp.LLy) / h
	}
	return Translate(vp.LLx, vp.LLy).Mul(Scale(sx, sy)).Mul(Translate(-win.LLx, -win.LLy))
}

// Mul returns the matrix product A·B.
// When the result is applied to a point, B acts first and A second.
func (A Matrix) Mul(B Matrix) Matrix {
	var C Matrix
	for i := range 3 {
		for j := range 3 {
			var sum float64
			for k := range 3 {
				sum += A[i][k] * B[k][j]
			}
			C[i][j] = sum
		}
	}
	return C
}

// Apply maps a single point through M.  The homogeneous row is discarded.
func (M Matrix) Apply(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: M[0][0]*p.X + M[0][1]*p.Y + M[0][2],
		Y: M[1][0]*p.X + M[1][1]*p.Y + M[1][2],
	}
}

// Apply maps every point through M and returns the results in a new slice.
// Coordinates are not rounded.
func Apply(points []vec.Vec2, M Matrix) []vec.Vec2 {
	res := make([]vec.Vec2, len(points))
	for i, p := range points {
		res[i] = M.Apply(p)
	}
	return res
}

// Inverse returns the inverse of M.
// The second return value is false if M is singular, or so close to singular
// that the rows are numerically linearly dependent.  The test is relative to
// the size of the rows, so that uniformly small scalings remain invertible.
func (M Matrix) Inverse() (Matrix, bool) {
	// cofactors of the first row
	c00 := M[1][1]*M[2][2] - M[1][2]*M[2][1]
	c01 := M[1][2]*M[2][0] - M[1][0]*M[2][2]
	c02 := M[1][0]*M[2][1] - M[1][1]*M[2][0]

	det := M[0][0]*c00 + M[0][1]*c01 + M[0][2]*c02
	// |det| is bounded by the product of the row lengths
	bound := 1.0
	for _, row := range M {
		bound *= math.Hypot(math.Hypot(row[0], row[1]), row[2])
	}
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) ||
		math.Abs(det) < singularThreshold*bound {
		return Matrix{}, false
	}
	inv := 1 / det

	return Matrix{
		{
			c00 * inv,
			(M[0][2]*M[2][1] - M[0][1]*M[2][2]) * inv,
			(M[0][1]*M[1][2] - M[0][2]*M[1][1]) * inv,
		},
		{
			c01 * inv,
			(M[0][0]*M[2][2] - M[0][2]*M[2][0]) * inv,
			(M[0][2]*M[1][0] - M[0][0]*M[1][2]) * inv,
		},
		{
			c02 * inv,
			(M[0][1]*M[2][0] - M[0][0]*M[2][1]) * inv,
			(M[0][0]*M[1][1] - M[0][1]*M[1][0]) * inv,
		},
	}, true
}

// IsZero reports whether M is the zero value.
// Scene descriptions use the zero value to mean "no transformation".
func (M Matrix) IsZero() bool {
	return M == Matrix{}
}

// Affine converts M to the six-element form used in PDF content streams,
// [a b c d e f] with x' = a·x + c·y + e and y' = b·x + d·y + f.
// The bottom row of M is assumed to be [0 0 1].
func (M Matrix) Affine() matrix.Matrix {
	return matrix.Matrix{
		M[0][0], M[1][0],
		M[0][1], M[1][1],
		M[0][2], M[1][2],
	}
}

// FromAffine converts a six-element PDF matrix to a 3×3 Matrix.
func FromAffine(m matrix.Matrix) Matrix {
	return Matrix{
		{m[0], m[2], m[4]},
		{m[1], m[3], m[5]},
		{0, 0, 1},
	}
}

// singularThreshold is the smallest ratio between the determinant and the
// product of the row lengths for which Inverse still reports success.
const singularThreshold = 1e-12
