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

// Command genpdf generates reference images for the drawing scenes.
// It creates PDFs from the scenes and renders them to PNGs using
// Ghostscript.  Scenes which have no PDF equivalent, like gradients,
// textures and flood fills of arbitrary regions, are skipped.
package main

import (
	"errors"
	"fmt"
	"image/color"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/pixel"
	"seehuhn.de/go/pixel/testcases"
)

const refDir = "testdata/reference"

// errSkip indicates a scene which cannot be expressed in PDF.
var errSkip = errors.New("no PDF equivalent")

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(refDir, name+".pdf")
			pngPath := filepath.Join(refDir, name+".png")

			err := generatePDF(tc, pdfPath)
			if errors.Is(err, errSkip) {
				fmt.Printf("%s: skipped\n", name)
				continue
			} else if err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if err := renderPNG(pdfPath, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	switch tc.Op.(type) {
	case testcases.Gradient, testcases.Textured, testcases.ShadedCircle, testcases.Flood:
		return errSkip
	}

	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(pdfcolor.DeviceGray(0))
	page.Rectangle(0, 0, float64(tc.Width), float64(tc.Height))
	page.Fill()

	// PDF origin is bottom-left, the scenes use top-left.  The rasteriser
	// samples at integer coordinates, which are pixel centres in PDF.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(tc.Height)})
	page.Transform(matrix.Matrix{1, 0, 0, 1, 0.5, 0.5})

	if !tc.CTM.IsZero() {
		page.Transform(tc.CTM.Affine())
	}

	// Outlines are one pixel wide, in device space.
	page.SetLineWidth(1)

	switch op := tc.Op.(type) {
	case testcases.Fill:
		page.SetFillColor(pdfcolor.DeviceGray(luminance(op.Color)))
		drawPath(page, tc.Path)
		page.FillEvenOdd()

	case testcases.Outline:
		page.SetStrokeColor(pdfcolor.DeviceGray(luminance(op.Color)))
		drawPath(page, tc.Path)
		page.Stroke()

	case testcases.ClippedOutline:
		page.SetStrokeColor(pdfcolor.DeviceGray(luminance(op.Color)))
		r := pixel.NewRasteriser(nil)
		for _, ring := range r.Flatten(tc.Path) {
			for i, p := range ring {
				q0, q1, ok := pixel.ClipLine(p, ring[(i+1)%len(ring)], op.Window)
				if !ok {
					continue
				}
				page.MoveTo(q0.X, q0.Y)
				page.LineTo(q1.X, q1.Y)
			}
		}
		page.Stroke()

	case testcases.Circle:
		page.SetStrokeColor(pdfcolor.DeviceGray(luminance(op.Color)))
		drawEllipse(page, op.Center, op.Radius, op.Radius)
		page.Stroke()

	case testcases.Ellipse:
		page.SetStrokeColor(pdfcolor.DeviceGray(luminance(op.Color)))
		drawEllipse(page, op.Center, op.RX, op.RY)
		page.Stroke()

	case testcases.Disc:
		page.SetFillColor(pdfcolor.DeviceGray(luminance(op.Color)))
		drawEllipse(page, op.Center, op.Radius, op.Radius)
		page.Fill()
	}

	return page.Close()
}

// luminance converts a colour to a gray value in the range [0, 1].
func luminance(c color.RGBA) float64 {
	return (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
}

// pathBuilder is the part of the page API used to construct paths.
type pathBuilder interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CurveTo(x1, y1, x2, y2, x3, y3 float64)
	ClosePath()
}

// drawPath adds the path to the page, converting quadratic curves to
// cubic ones, since PDF does not support quadratic curves.
func drawPath(page pathBuilder, p *path.Data) {
	for cmd, pts := range p.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
}

// drawEllipse adds an axis-aligned ellipse, made of four cubic Bézier
// curves, to the page.
func drawEllipse(page pathBuilder, center vec.Vec2, rx, ry float64) {
	const k = 0.5522847498
	cx, cy := center.X, center.Y
	kx, ky := k*rx, k*ry

	page.MoveTo(cx+rx, cy)
	page.CurveTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	page.CurveTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	page.CurveTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	page.CurveTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	page.ClosePath()
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=1: no anti-aliasing, as for the rasteriser
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=1",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
