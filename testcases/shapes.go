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

package testcases

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/silhouette/vector"
)

// kappa for cubic Bezier approximation of a quarter circle
const kappa = 0.5522847498307936

var fillShapes = []Shape{
	{
		Name:   "triangle",
		Path:   triangle(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Rule:   vector.NonZero,
	},
	{
		Name:   "star_nonzero",
		Path:   fivePointStar(32, 32, 25),
		Width:  64,
		Height: 64,
		Rule:   vector.NonZero,
	},
	{
		Name:   "star_evenodd",
		Path:   fivePointStar(32, 32, 25),
		Width:  64,
		Height: 64,
		Rule:   vector.EvenOdd,
	},
	{
		Name:   "rectangle",
		Path:   rectangle(10, 10, 44, 44),
		Width:  64,
		Height: 64,
		Rule:   vector.NonZero,
	},
	{
		Name:   "offset_rectangle",
		Path:   rectangle(10.3, 10.7, 44.5, 43.2),
		Width:  64,
		Height: 64,
		Rule:   vector.NonZero,
	},
}

var curveShapes = []Shape{
	{
		Name:   "quadratic",
		Path:   (&path.Data{}).MoveTo(pt(10, 50)).QuadTo(pt(32, 10), pt(54, 50)).Close(),
		Width:  64,
		Height: 64,
		Rule:   vector.NonZero,
	},
	{
		Name:   "cubic",
		Path:   (&path.Data{}).MoveTo(pt(10, 50)).CubeTo(pt(20, 10), pt(44, 10), pt(54, 50)).Close(),
		Width:  64,
		Height: 64,
		Rule:   vector.NonZero,
	},
	{
		Name:   "circle",
		Path:   circle(32, 32, 25, false),
		Width:  64,
		Height: 64,
		Rule:   vector.NonZero,
	},
	{
		Name:   "ellipse",
		Path:   ellipse(32, 32, 28, 12),
		Width:  64,
		Height: 64,
		Rule:   vector.NonZero,
	},
}

// Logo-like shapes: several subpaths with holes wound against the outer
// boundary, in the way the tracer produces them.
var subpathShapes = []Shape{
	{
		Name:   "ring_nonzero",
		Path:   ring(32, 32, 25, 12),
		Width:  64,
		Height: 64,
		Rule:   vector.NonZero,
	},
	{
		Name:   "ring_evenodd",
		Path:   ring(32, 32, 25, 12),
		Width:  64,
		Height: 64,
		Rule:   vector.EvenOdd,
	},
	{
		Name:   "overlapping_rect_evenodd",
		Path:   join(rectangle(10, 10, 40, 40), rectangle(24, 24, 54, 54)),
		Width:  64,
		Height: 64,
		Rule:   vector.EvenOdd,
	},
	{
		Name:   "grid",
		Path:   rectangleGrid(8, 8, 128, 128, 2),
		Width:  128,
		Height: 128,
		Rule:   vector.NonZero,
	},
}

var ctmShapes = []Shape{
	{
		Name:   "scale_2x",
		Path:   rectangle(0, 0, 20, 20),
		Width:  128,
		Height: 128,
		Rule:   vector.NonZero,
		CTM:    matrix.Scale(2, 2).Translate(24, 24),
	},
	{
		Name:   "scale_half",
		Path:   rectangle(0, 0, 80, 80),
		Width:  64,
		Height: 64,
		Rule:   vector.NonZero,
		CTM:    matrix.Scale(0.5, 0.5).Translate(12, 12),
	},
	{
		Name:   "rotate_45deg",
		Path:   rectangle(-10, -10, 10, 10),
		Width:  64,
		Height: 64,
		Rule:   vector.NonZero,
		CTM:    matrix.RotateDeg(45).Translate(32, 32),
	},
	{
		Name:   "flip_y",
		Path:   ring(32, 32, 20, 8),
		Width:  64,
		Height: 64,
		Rule:   vector.NonZero,
		CTM:    matrix.Matrix{1, 0, 0, -1, 0, 64},
	},
}

var largeShapes = []Shape{
	{
		Name:   "large_ring",
		Path:   ring(512, 512, 480, 300),
		Width:  1024,
		Height: 1024,
		Rule:   vector.NonZero,
	},
}

// triangle builds a triangular path.
func triangle(x1, y1, x2, y2, x3, y3 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x3, y3)).
		Close()
}

// fivePointStar builds a five-pointed star (self-intersecting).
func fivePointStar(cx, cy, r float64) *path.Data {
	p := &path.Data{}
	for k, i := range []int{0, 2, 4, 1, 3} {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		v := pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
		if k == 0 {
			p = p.MoveTo(v)
		} else {
			p = p.LineTo(v)
		}
	}
	return p.Close()
}

// rectangle builds a rectangular path, clockwise on screen.
func rectangle(x1, y1, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x1, y2)).
		Close()
}

// circle builds an approximate circle using four cubic Bezier curves.
func circle(cx, cy, r float64, reverse bool) *path.Data {
	k := r * kappa
	if reverse {
		return (&path.Data{}).
			MoveTo(pt(cx+r, cy)).
			CubeTo(pt(cx+r, cy+k), pt(cx+k, cy+r), pt(cx, cy+r)).
			CubeTo(pt(cx-k, cy+r), pt(cx-r, cy+k), pt(cx-r, cy)).
			CubeTo(pt(cx-r, cy-k), pt(cx-k, cy-r), pt(cx, cy-r)).
			CubeTo(pt(cx+k, cy-r), pt(cx+r, cy-k), pt(cx+r, cy)).
			Close()
	}
	return (&path.Data{}).
		MoveTo(pt(cx+r, cy)).
		CubeTo(pt(cx+r, cy-k), pt(cx+k, cy-r), pt(cx, cy-r)).
		CubeTo(pt(cx-k, cy-r), pt(cx-r, cy-k), pt(cx-r, cy)).
		CubeTo(pt(cx-r, cy+k), pt(cx-k, cy+r), pt(cx, cy+r)).
		CubeTo(pt(cx+k, cy+r), pt(cx+r, cy+k), pt(cx+r, cy)).
		Close()
}

// ellipse builds an approximate ellipse using four cubic Bezier curves.
func ellipse(cx, cy, rx, ry float64) *path.Data {
	kx := rx * kappa
	ky := ry * kappa

	return (&path.Data{}).
		MoveTo(pt(cx+rx, cy)).
		CubeTo(pt(cx+rx, cy-ky), pt(cx+kx, cy-ry), pt(cx, cy-ry)).
		CubeTo(pt(cx-kx, cy-ry), pt(cx-rx, cy-ky), pt(cx-rx, cy)).
		CubeTo(pt(cx-rx, cy+ky), pt(cx-kx, cy+ry), pt(cx, cy+ry)).
		CubeTo(pt(cx+kx, cy+ry), pt(cx+rx, cy+ky), pt(cx+rx, cy)).
		Close()
}

// ring builds a disc with a concentric hole.  The hole is wound in the
// opposite direction, so both fill rules give the same result.
func ring(cx, cy, outer, inner float64) *path.Data {
	return join(circle(cx, cy, outer, false), circle(cx, cy, inner, true))
}

// rectangleGrid builds a grid of rectangles.
func rectangleGrid(rows, cols, width, height int, gap float64) *path.Data {
	cellW := float64(width) / float64(cols)
	cellH := float64(height) / float64(rows)

	p := &path.Data{}
	for row := range rows {
		for col := range cols {
			x1 := float64(col)*cellW + gap
			y1 := float64(row)*cellH + gap
			x2 := float64(col+1)*cellW - gap
			y2 := float64(row+1)*cellH - gap

			p = p.
				MoveTo(pt(x1, y1)).
				LineTo(pt(x2, y1)).
				LineTo(pt(x2, y2)).
				LineTo(pt(x1, y2)).
				Close()
		}
	}

	return p
}

// join concatenates the subpaths of several paths.
func join(parts ...*path.Data) *path.Data {
	res := &path.Data{}
	for _, p := range parts {
		res.Cmds = append(res.Cmds, p.Cmds...)
		res.Coords = append(res.Coords, p.Coords...)
	}
	return res
}
