// seehuhn.de/go/silhouette - vector silhouettes from raster logos
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

package render

import (
	"fmt"
	"image"
	"image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/silhouette/vector"
)

// Document draws the paths of doc onto dst, using source-over compositing.
//
// The matrix ctm maps document coordinates to the pixel coordinates of dst.
// If fill is not nil, it replaces the foreground colour
// [vector.Foreground]; all other fills are drawn in their own colour.
// Each path is filled with its own fill rule.
func Document(dst *image.RGBA, doc *vector.Document, ctm matrix.Matrix, fill color.Color) error {
	b := dst.Bounds()
	if b.Empty() {
		return nil
	}
	r := NewRasteriser(rect.Rect{
		LLx: float64(b.Min.X),
		LLy: float64(b.Min.Y),
		URx: float64(b.Max.X),
		URy: float64(b.Max.Y),
	})
	r.CTM = ctm

	for i, p := range doc.Paths {
		if p.Data == nil {
			continue
		}
		var c color.Color
		if fill != nil && p.Fill == vector.Foreground {
			c = fill
		} else {
			nrgba, err := vector.ParseColor(p.Fill)
			if err != nil {
				return fmt.Errorf("render: path %d: %w", i, err)
			}
			c = nrgba
		}

		cr, cg, cb, ca := c.RGBA()
		if ca == 0 {
			continue
		}
		r.Fill(p.Data, p.Rule, func(y, xMin int, coverage []float32) {
			blendRow(dst, y, xMin, coverage, cr, cg, cb, ca)
		})
	}
	return nil
}

// blendRow composites a premultiplied 16-bit colour over one row of dst,
// scaled by the given coverage.
func blendRow(dst *image.RGBA, y, xMin int, coverage []float32, cr, cg, cb, ca uint32) {
	const m = 0xffff
	off := dst.PixOffset(xMin, y)
	for _, cov := range coverage {
		a := uint32(cov*m + 0.5)
		if a > m {
			a = m
		}
		sa := ca * a / m
		inv := m - sa
		px := dst.Pix[off : off+4 : off+4]
		px[0] = uint8((uint32(px[0])*0x101*inv/m + cr*a/m) >> 8)
		px[1] = uint8((uint32(px[1])*0x101*inv/m + cg*a/m) >> 8)
		px[2] = uint8((uint32(px[2])*0x101*inv/m + cb*a/m) >> 8)
		px[3] = uint8((uint32(px[3])*0x101*inv/m + sa) >> 8)
		off += 4
	}
}

// Coverage rasterises the non-background paths of doc into an alpha mask of
// the given size.
func Coverage(doc *vector.Document, ctm matrix.Matrix, width, height int) *image.Alpha {
	dst := image.NewAlpha(image.Rect(0, 0, width, height))
	if width <= 0 || height <= 0 {
		return dst
	}
	r := NewRasteriser(rect.Rect{URx: float64(width), URy: float64(height)})
	r.CTM = ctm
	for _, p := range doc.Paths {
		if p.Data == nil || vector.IsBackground(p.Fill) {
			continue
		}
		r.Fill(p.Data, p.Rule, func(y, xMin int, coverage []float32) {
			row := dst.Pix[y*dst.Stride+xMin:]
			for i, c := range coverage {
				v := uint32(row[i]) + uint32(c*255+0.5)*(255-uint32(row[i]))/255
				row[i] = uint8(min(v, 255))
			}
		})
	}
	return dst
}
