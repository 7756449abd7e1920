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

// Package fit turns traced pixel boundaries into smooth closed paths.
//
// A boundary is first thinned out with the Douglas-Peucker algorithm.  The
// remaining points are split at sharp corners, and every run between two
// corners is drawn as a Catmull-Rom spline, converted to cubic Bézier
// segments.
package fit

import "seehuhn.de/go/geom/vec"

// Simplify reduces a closed polygon with the Douglas-Peucker algorithm.
// Points which are no further than tol from the simplified outline are
// removed.  The polygon is split into two chains at the point farthest from
// the first point, so that the first point is always kept.  With tol = 0
// only exactly collinear points are removed.
func Simplify(points []vec.Vec2, tol float64) []vec.Vec2 {
	n := len(points)
	if n < 3 {
		return append([]vec.Vec2(nil), points...)
	}

	far := 0
	farDist := -1.0
	for i, p := range points {
		if d := p.Sub(points[0]).Length(); d > farDist {
			far, farDist = i, d
		}
	}
	if far == 0 {
		// all points coincide
		return []vec.Vec2{points[0]}
	}

	keep := make([]bool, n+1)
	keep[0], keep[far], keep[n] = true, true, true

	// closed is points with the first point appended
	closed := make([]vec.Vec2, n+1)
	copy(closed, points)
	closed[n] = points[0]

	douglasPeucker(closed, 0, far, tol, keep)
	douglasPeucker(closed, far, n, tol, keep)

	res := make([]vec.Vec2, 0, n)
	for i := range n {
		if keep[i] {
			res = append(res, points[i])
		}
	}
	return res
}

// douglasPeucker marks the points of pts[first:last+1] which must be kept.
func douglasPeucker(pts []vec.Vec2, first, last int, tol float64, keep []bool) {
	for last-first > 1 {
		idx := -1
		maxDist := tol
		for i := first + 1; i < last; i++ {
			if d := segmentDistance(pts[i], pts[first], pts[last]); d > maxDist {
				idx, maxDist = i, d
			}
		}
		if idx < 0 {
			return
		}
		keep[idx] = true
		douglasPeucker(pts, first, idx, tol, keep)
		first = idx
	}
}

// segmentDistance returns the distance of p from the line segment a–b.
func segmentDistance(p, a, b vec.Vec2) float64 {
	ab := b.Sub(a)
	l2 := ab.X*ab.X + ab.Y*ab.Y
	if l2 == 0 {
		return p.Sub(a).Length()
	}
	ap := p.Sub(a)
	t := (ap.X*ab.X + ap.Y*ab.Y) / l2
	t = min(max(t, 0), 1)
	return p.Sub(a.Add(ab.Mul(t))).Length()
}
