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

package trace

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Shape is an outer contour together with the holes directly inside it.
type Shape struct {
	Outer *Contour
	Holes []*Contour
}

// Nest groups contours into shapes.  Every hole is assigned to the smallest
// outer contour which encloses it.  Holes without an enclosing outer
// contour, which can only occur if that contour was dropped, are discarded.
// Shapes are returned in the order of their outer contours.
func Nest(contours []Contour) []Shape {
	var shapes []Shape
	idx := make(map[*Contour]int)
	areas := make([]float64, len(contours))
	for i := range contours {
		c := &contours[i]
		areas[i] = math.Abs(c.Area())
		if c.Polarity == Outer {
			idx[c] = len(shapes)
			shapes = append(shapes, Shape{Outer: c})
		}
	}

	for i := range contours {
		h := &contours[i]
		if h.Polarity != Hole {
			continue
		}
		probe, ok := insidePoint(h)
		if !ok {
			continue
		}

		best := -1
		for j := range contours {
			o := &contours[j]
			if o.Polarity != Outer || !contains(o.Points, probe) {
				continue
			}
			if best < 0 || areas[j] < areas[best] {
				best = j
			}
		}
		if best >= 0 {
			s := &shapes[idx[&contours[best]]]
			s.Holes = append(s.Holes, h)
		}
	}
	return shapes
}

// insidePoint returns the centre of a foreground pixel next to the first
// edge of a hole contour.  Since the foreground lies to the left of the
// walk, this pixel belongs to the region which encloses the hole.
func insidePoint(c *Contour) (vec.Vec2, bool) {
	if len(c.Points) < 2 {
		return vec.Vec2{}, false
	}
	p, q := c.Points[0], c.Points[1]
	d := q.Sub(p)
	l := d.Length()
	if l == 0 {
		return vec.Vec2{}, false
	}
	d = d.Mul(1 / l)
	// In image coordinates, the left of direction (dx, dy) is (dy, -dx).
	left := vec.Vec2{X: d.Y, Y: -d.X}
	mid := p.Add(d.Mul(0.5))
	return mid.Add(left.Mul(0.5)), true
}

// contains tests whether p lies inside the closed polygon pts, using the
// even-odd rule.
func contains(pts []vec.Vec2, p vec.Vec2) bool {
	inside := false
	n := len(pts)
	for i := range n {
		a, b := pts[i], pts[(i+1)%n]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if p.X < x {
				inside = !inside
			}
		}
	}
	return inside
}
