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
	"fmt"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// BenchmarkFillO benchmarks filling an "O" shape: outer circle clockwise,
// inner circle counter-clockwise.
func BenchmarkFillO(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			dst := image.NewRGBA(image.Rect(0, 0, size, size))
			r := NewRasteriser(dst)

			center := float64(size) / 2
			oPath := makeOPath(center, center, float64(size)*0.45, float64(size)*0.30)
			white := RGB(255, 255, 255)

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				r.Reset(dst)
				r.FillPath(oPath, white)
			}
		})
	}
}

// BenchmarkVectorO benchmarks x/image/vector drawing the same "O" shape.
func BenchmarkVectorO(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)

			dst := image.NewRGBA(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.White)

			center := float64(size) / 2
			oPath := makeOPath(center, center, float64(size)*0.45, float64(size)*0.30)

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				r.Reset(size, size)
				addPathToVector(r, oPath)
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

func BenchmarkLine(b *testing.B) {
	dst := image.NewRGBA(image.Rect(0, 0, 512, 512))
	r := NewRasteriser(dst)
	c := RGB(255, 0, 0)
	b.ReportAllocs()
	for b.Loop() {
		for i := 0; i < 512; i += 8 {
			r.Line(vec.Vec2{X: 0, Y: float64(i)}, vec.Vec2{X: 511, Y: float64(511 - i)}, c)
		}
	}
}

func BenchmarkDisc(b *testing.B) {
	dst := image.NewRGBA(image.Rect(0, 0, 512, 512))
	r := NewRasteriser(dst)
	c := RGB(0, 0, 255)
	b.ReportAllocs()
	for b.Loop() {
		r.Disc(vec.Vec2{X: 256, Y: 256}, 200, c)
	}
}

func BenchmarkFloodFill(b *testing.B) {
	dst := image.NewRGBA(image.Rect(0, 0, 256, 256))
	r := NewRasteriser(dst)
	colors := []color.RGBA{RGB(255, 0, 0), RGB(0, 255, 0)}
	b.ReportAllocs()
	i := 0
	for b.Loop() {
		r.FloodFill(128, 128, Replace{With: colors[i%2]})
		i++
	}
}

func BenchmarkFillTextured(b *testing.B) {
	dst := image.NewRGBA(image.Rect(0, 0, 512, 512))
	r := NewRasteriser(dst)
	src := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for y := range 64 {
		for x := range 64 {
			src.SetRGBA(x, y, RGB(uint8(4*x), uint8(4*y), 128))
		}
	}
	tex := NewTexture(src)
	pts := []vec.Vec2{{X: 16, Y: 16}, {X: 496, Y: 32}, {X: 480, Y: 496}, {X: 32, Y: 480}}
	uvs := []vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	b.ReportAllocs()
	for b.Loop() {
		r.FillTextured(pts, uvs, tex)
	}
}

// makeOPath creates an "O" shape path.
func makeOPath(cx, cy, outerR, innerR float64) *path.Data {
	p := addCircleToPath(&path.Data{}, cx, cy, outerR, true)
	return addCircleToPath(p, cx, cy, innerR, false)
}

// addCircleToPath adds a circle to a path using cubic Bézier curves.
// Clockwise refers to the orientation on screen, with y pointing down.
func addCircleToPath(p *path.Data, cx, cy, r float64, clockwise bool) *path.Data {
	// Magic number for circular arc approximation with cubic Bézier
	const k = 0.5522847498
	kr := k * r

	p = p.MoveTo(vec.Vec2{X: cx, Y: cy - r})
	if clockwise {
		p = p.CubeTo(vec.Vec2{X: cx + kr, Y: cy - r}, vec.Vec2{X: cx + r, Y: cy - kr}, vec.Vec2{X: cx + r, Y: cy})
		p = p.CubeTo(vec.Vec2{X: cx + r, Y: cy + kr}, vec.Vec2{X: cx + kr, Y: cy + r}, vec.Vec2{X: cx, Y: cy + r})
		p = p.CubeTo(vec.Vec2{X: cx - kr, Y: cy + r}, vec.Vec2{X: cx - r, Y: cy + kr}, vec.Vec2{X: cx - r, Y: cy})
		p = p.CubeTo(vec.Vec2{X: cx - r, Y: cy - kr}, vec.Vec2{X: cx - kr, Y: cy - r}, vec.Vec2{X: cx, Y: cy - r})
	} else {
		p = p.CubeTo(vec.Vec2{X: cx - kr, Y: cy - r}, vec.Vec2{X: cx - r, Y: cy - kr}, vec.Vec2{X: cx - r, Y: cy})
		p = p.CubeTo(vec.Vec2{X: cx - r, Y: cy + kr}, vec.Vec2{X: cx - kr, Y: cy + r}, vec.Vec2{X: cx, Y: cy + r})
		p = p.CubeTo(vec.Vec2{X: cx + kr, Y: cy + r}, vec.Vec2{X: cx + r, Y: cy + kr}, vec.Vec2{X: cx + r, Y: cy})
		p = p.CubeTo(vec.Vec2{X: cx + r, Y: cy - kr}, vec.Vec2{X: cx + kr, Y: cy - r}, vec.Vec2{X: cx, Y: cy - r})
	}
	return p.Close()
}

// addPathToVector replays a path on a vector.Rasterizer.
// Every subpath is closed, as for filling.
func addPathToVector(r *vector.Rasterizer, p *path.Data) {
	f32 := func(v vec.Vec2) (float32, float32) {
		return float32(v.X), float32(v.Y)
	}
	open := false
	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if open {
				r.ClosePath()
			}
			r.MoveTo(f32(p.Coords[coordIdx]))
			open = true
			coordIdx++
		case path.CmdLineTo:
			r.LineTo(f32(p.Coords[coordIdx]))
			coordIdx++
		case path.CmdQuadTo:
			x1, y1 := f32(p.Coords[coordIdx])
			x2, y2 := f32(p.Coords[coordIdx+1])
			r.QuadTo(x1, y1, x2, y2)
			coordIdx += 2
		case path.CmdCubeTo:
			x1, y1 := f32(p.Coords[coordIdx])
			x2, y2 := f32(p.Coords[coordIdx+1])
			x3, y3 := f32(p.Coords[coordIdx+2])
			r.CubeTo(x1, y1, x2, y2, x3, y3)
			coordIdx += 3
		case path.CmdClose:
			if open {
				r.ClosePath()
			}
			open = false
		}
	}
	if open {
		r.ClosePath()
	}
}
