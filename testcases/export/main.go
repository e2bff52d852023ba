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

// Command export writes the scene definitions to JSON, so that reference
// images can be produced by other tools.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"fmt"
	"image/color"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pixel/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := writeJSON("testdata/testcases.json", out); err != nil {
		panic(err)
	}
}

func writeJSON(fname string, v any) (err error) {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding %s: %w", fname, err)
	}
	return nil
}

type jsonTestCase struct {
	Name   string        `json:"name"`
	Width  int           `json:"width"`
	Height int           `json:"height"`
	Path   []jsonSegment `json:"path,omitempty"`
	CTM    []float64     `json:"ctm,omitempty"`
	Op     string        `json:"op"`

	Color  []int       `json:"color,omitempty"`
	Color2 []int       `json:"color2,omitempty"`
	Center []float64   `json:"center,omitempty"`
	Radius []float64   `json:"radius,omitempty"`
	Window []float64   `json:"window,omitempty"`
	Seed   []int       `json:"seed,omitempty"`
	UVs    [][]float64 `json:"uvs,omitempty"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Width:  tc.Width,
		Height: tc.Height,
		Path:   pathToJSON(tc.Path),
	}
	if !tc.CTM.IsZero() {
		m := tc.CTM.Affine()
		jtc.CTM = m[:]
	}

	switch op := tc.Op.(type) {
	case testcases.Fill:
		jtc.Op = "fill"
		jtc.Color = colorToJSON(op.Color)
	case testcases.Gradient:
		jtc.Op = "gradient"
		jtc.Color = colorToJSON(op.Top)
		jtc.Color2 = colorToJSON(op.Bottom)
	case testcases.Textured:
		jtc.Op = "textured"
		for _, uv := range op.UVs {
			jtc.UVs = append(jtc.UVs, pointToJSON(uv))
		}
	case testcases.Outline:
		jtc.Op = "outline"
		jtc.Color = colorToJSON(op.Color)
	case testcases.ClippedOutline:
		jtc.Op = "clipped_outline"
		jtc.Color = colorToJSON(op.Color)
		w := op.Window
		jtc.Window = []float64{w.LLx, w.LLy, w.URx, w.URy}
	case testcases.Circle:
		jtc.Op = "circle"
		jtc.Color = colorToJSON(op.Color)
		jtc.Center = pointToJSON(op.Center)
		jtc.Radius = []float64{op.Radius}
	case testcases.Disc:
		jtc.Op = "disc"
		jtc.Color = colorToJSON(op.Color)
		jtc.Center = pointToJSON(op.Center)
		jtc.Radius = []float64{op.Radius}
	case testcases.ShadedCircle:
		jtc.Op = "shaded_circle"
		jtc.Color = colorToJSON(op.Inner)
		jtc.Color2 = colorToJSON(op.Outer)
		jtc.Center = pointToJSON(op.Center)
		jtc.Radius = []float64{op.Radius}
	case testcases.Ellipse:
		jtc.Op = "ellipse"
		jtc.Color = colorToJSON(op.Color)
		jtc.Center = pointToJSON(op.Center)
		jtc.Radius = []float64{op.RX, op.RY}
	case testcases.Flood:
		jtc.Op = "flood"
		jtc.Color = colorToJSON(op.Border)
		jtc.Color2 = colorToJSON(op.Fill)
		jtc.Seed = []int{op.Seed.X, op.Seed.Y}
	}
	return jtc
}

func colorToJSON(c color.RGBA) []int {
	return []int{int(c.R), int(c.G), int(c.B), int(c.A)}
}

func pointToJSON(p vec.Vec2) []float64 {
	return []float64{p.X, p.Y}
}

func pathToJSON(p *path.Data) []jsonSegment {
	if p == nil {
		return nil
	}
	var segs []jsonSegment
	for cmd, pts := range p.Iter() {
		seg := jsonSegment{Pts: make([][]float64, len(pts))}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdQuadTo:
			seg.Cmd = "Q"
		case path.CmdCubeTo:
			seg.Cmd = "C"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		for i, pt := range pts {
			seg.Pts[i] = pointToJSON(pt)
		}
		segs = append(segs, seg)
	}
	return segs
}
