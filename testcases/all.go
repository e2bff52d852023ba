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

package testcases

// All contains all test cases, grouped by category.
// The category name is used as a prefix in reference file names.
var All = map[string][]TestCase{
	"fill":     fillCases,
	"evenodd":  evenOddCases,
	"gradient": gradientCases,
	"texture":  textureCases,
	"outline":  outlineCases,
	"shape":    shapeCases,
	"clip":     clipCases,
	"flood":    floodCases,
	"ctm":      ctmCases,
	"curve":    curveCases,
	"subpath":  subpathCases,
	"large":    largeCases,
}

// Comparable lists the categories whose scenes are simple fills, where
// the even-odd rule and the nonzero winding rule agree.  For these, the
// output can be compared to a general purpose anti-aliasing rasteriser.
var Comparable = []string{"fill", "ctm", "curve", "subpath", "large"}
