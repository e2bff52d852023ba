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
	"cmp"
	"image"
	"image/color"
	"slices"

	"golang.org/x/image/draw"
	"seehuhn.de/go/geom/vec"
)

// Texture is an immutable grid of texels for texture-mapped fills.
type Texture struct {
	pix *image.RGBA
}

// NewTexture copies img into a new texture of the same size.
func NewTexture(img image.Image) *Texture {
	b := img.Bounds()
	pix := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Copy(pix, image.Point{}, img, b, draw.Src, nil)
	return &Texture{pix: pix}
}

// NewScaledTexture resamples img to width×height texels, using bilinear
// interpolation.  Non-positive sizes give an empty texture.
func NewScaledTexture(img image.Image, width, height int) *Texture {
	pix := image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))
	if width > 0 && height > 0 {
		draw.BiLinear.Scale(pix, pix.Bounds(), img, img.Bounds(), draw.Src, nil)
	}
	return &Texture{pix: pix}
}

// Size returns the width and height of the texture in texels.
func (t *Texture) Size() (width, height int) {
	b := t.pix.Bounds()
	return b.Dx(), b.Dy()
}

// At returns the texel for texture coordinates (u, v) in [0, 1].
// The texel index is u*(width-1), v*(height-1), truncated.
// The second return value is false for coordinates outside the texture.
func (t *Texture) At(u, v float64) (color.RGBA, bool) {
	if u < 0 || v < 0 {
		return color.RGBA{}, false
	}
	w, h := t.Size()
	return getPixel(t.pix, int(u*float64(w-1)), int(v*float64(h-1)))
}

// texEdge is a non-horizontal polygon edge with texture coordinates,
// oriented downwards.
type texEdge struct {
	x0, y0, u0, v0 float64 // upper end point
	x1, y1, u1, v1 float64 // lower end point
}

// texCrossing is the intersection of a texEdge with a scanline.
type texCrossing struct {
	x, u, v float64
}

func (r *Rasteriser) addTexEdge(p0, p1, uv0, uv1 vec.Vec2) {
	if p0.Y == p1.Y {
		return
	}
	if p0.Y > p1.Y {
		p0, p1 = p1, p0
		uv0, uv1 = uv1, uv0
	}
	r.texEdges = append(r.texEdges, texEdge{
		x0: p0.X, y0: p0.Y, u0: uv0.X, v0: uv0.Y,
		x1: p1.X, y1: p1.Y, u1: uv1.X, v1: uv1.Y,
	})
}

// texIntercepts computes the crossings of all textured edges with the
// scanline y, sorted by x.  The returned slice is only valid until the
// next call.
func (r *Rasteriser) texIntercepts(y float64) []texCrossing {
	r.texXs = r.texXs[:0]
	for i := range r.texEdges {
		e := &r.texEdges[i]
		if y < e.y0 || y >= e.y1 {
			continue
		}
		t := (y - e.y0) / (e.y1 - e.y0)
		r.texXs = append(r.texXs, texCrossing{
			x: e.x0 + t*(e.x1-e.x0),
			u: e.u0 + t*(e.u1-e.u0),
			v: e.v0 + t*(e.v1-e.v0),
		})
	}
	slices.SortFunc(r.texXs, func(a, b texCrossing) int {
		return cmp.Compare(a.x, b.x)
	})
	return r.texXs
}

// FillTextured fills the polygon with texels from tex.  uvs holds one
// texture coordinate pair per vertex, with (0,0) the top-left and (1,1)
// the bottom-right texel.  Texture coordinates are interpolated linearly
// along the edges and then across each span.
//
// Spans which round to a single pixel are skipped, as are pixels whose
// texture coordinates fall outside the texture.  If uvs and points differ
// in length, nothing is drawn.
func (r *Rasteriser) FillTextured(points, uvs []vec.Vec2, tex *Texture) {
	n := len(points)
	if n < 3 || len(uvs) != n || tex == nil {
		return
	}

	r.resetEdges()
	for i, p := range points {
		j := (i + 1) % n
		r.addVertex(p)
		r.addTexEdge(p, points[j], uvs[i], uvs[j])
	}

	yStart, yEnd := r.scanRange()
	if yStart >= yEnd {
		return
	}
	b := r.Dst.Bounds()
	for y := yStart; y < yEnd; y++ {
		xs := r.texIntercepts(float64(y))
		for i := 0; i+1 < len(xs); i += 2 {
			a, c := xs[i], xs[i+1]
			xStart, xEnd := round(a.x), round(c.x)
			if xStart == xEnd {
				continue
			}
			span := float64(xEnd - xStart)
			for x := max(xStart, b.Min.X); x <= min(xEnd, b.Max.X-1); x++ {
				s := float64(x-xStart) / span
				texel, ok := tex.At(a.u+s*(c.u-a.u), a.v+s*(c.v-a.v))
				if !ok {
					continue
				}
				setPixel(r.Dst, x, y, texel)
			}
		}
	}
}
