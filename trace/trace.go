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

// Package trace extracts the boundaries of the foreground regions of a
// two-level image as closed polygons.
//
// Boundaries run along the pixel edges.  They are found with a marching
// squares walk over the (width+1)×(height+1) grid of pixel corners, where
// pixels outside the image count as background.  The walk always keeps the
// foreground on its left, so in image coordinates (y pointing down) outer
// boundaries have negative signed area and the boundaries of holes have
// positive signed area.
package trace

import (
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/silhouette/bitmap"
)

// Limit is the number of contours above which an image is considered too
// complex for a useful silhouette.  Exceeding it is not an error.
const Limit = 500

// Polarity tells whether a contour encloses foreground or background.
type Polarity int

const (
	// Outer contours separate a foreground region from the background
	// around it.
	Outer Polarity = iota

	// Hole contours separate a foreground region from a background region
	// enclosed by it.
	Hole
)

func (p Polarity) String() string {
	switch p {
	case Outer:
		return "outer"
	case Hole:
		return "hole"
	default:
		return "invalid"
	}
}

// Contour is one closed boundary.
type Contour struct {
	// Points are the corners of the boundary polygon, in walk order.  The
	// closing edge from the last point back to the first is implied.
	Points []vec.Vec2

	// Steps is the length of the boundary in pixel edges.
	Steps int

	Polarity Polarity

	// Truncated is set if the walk hit its iteration limit before it
	// returned to the starting point.
	Truncated bool
}

// Area returns the signed area of the contour polygon.
func (c *Contour) Area() float64 {
	return signedArea(c.Points)
}

// Options control [Contours].
type Options struct {
	// MinPoints is the minimum boundary length, in pixel edges, of a
	// contour.  Shorter contours are dropped.
	MinPoints int
}

type direction uint8

const (
	up direction = iota
	right
	down
	left
)

var delta = [4]struct{ dx, dy int }{
	up:    {0, -1},
	right: {1, 0},
	down:  {0, 1},
	left:  {-1, 0},
}

// Corner bits of a grid vertex.
const (
	bitUL = 1
	bitUR = 2
	bitDL = 4
	bitDR = 8
)

// exits lists the outgoing boundary edges for every vertex case.  The
// saddle cases 6 and 9 have two.
var exits = [16][]direction{
	1:  {up},
	2:  {right},
	3:  {right},
	4:  {left},
	5:  {up},
	6:  {right, left},
	7:  {right},
	8:  {down},
	9:  {up, down},
	10: {down},
	11: {down},
	12: {left},
	13: {up},
	14: {left},
}

// tracer holds the state of one call to Contours.
type tracer struct {
	img     *bitmap.Image
	w, h    int
	visited []uint8 // bit d set: edge leaving the vertex in direction d done
	limit   int
}

// Contours traces all boundaries of the foreground of img.
//
// If poll is not nil, it is called before each new contour is traced.
// A non-nil return value stops the tracing, and the error is returned
// together with the contours found so far.
func Contours(img *bitmap.Image, opt Options, poll func() error) ([]Contour, error) {
	t := &tracer{
		img:     img,
		w:       img.Width,
		h:       img.Height,
		visited: make([]uint8, (img.Width+1)*(img.Height+1)),
		limit:   4 * img.Width * img.Height,
	}

	var res []Contour
	for y := 0; y <= t.h; y++ {
		for x := 0; x <= t.w; x++ {
			for _, d := range exits[t.vertexCase(x, y)] {
				if t.visited[t.vertex(x, y)]&(1<<d) != 0 {
					continue
				}
				if poll != nil {
					if err := poll(); err != nil {
						return res, err
					}
				}
				c := t.walk(x, y, d)
				if len(c.Points) < 3 || c.Steps < opt.MinPoints {
					continue
				}
				res = append(res, c)
			}
		}
	}
	return res, nil
}

func (t *tracer) vertex(x, y int) int {
	return y*(t.w+1) + x
}

func (t *tracer) isForeground(x, y int) bool {
	if x < 0 || y < 0 || x >= t.w || y >= t.h {
		return false
	}
	return t.img.IsForeground(x, y)
}

// vertexCase computes the 4-bit case of the grid vertex (x, y) from the
// four pixels around it.
func (t *tracer) vertexCase(x, y int) int {
	c := 0
	if t.isForeground(x-1, y-1) {
		c |= bitUL
	}
	if t.isForeground(x, y-1) {
		c |= bitUR
	}
	if t.isForeground(x-1, y) {
		c |= bitDL
	}
	if t.isForeground(x, y) {
		c |= bitDR
	}
	return c
}

// next returns the outgoing direction at a vertex with case c, reached by
// a step in direction in.  In the saddle cases the walk turns around the
// pixel it is following, so that diagonal neighbours stay separate.
func next(c int, in direction) direction {
	switch c {
	case 6:
		if in == up {
			return left
		}
		return right
	case 9:
		if in == right {
			return up
		}
		return down
	default:
		return exits[c][0]
	}
}

// walk follows the boundary which leaves the vertex (x0, y0) in direction
// d0, until it arrives back at the start edge.
func (t *tracer) walk(x0, y0 int, d0 direction) Contour {
	var c Contour
	x, y, d := x0, y0, d0
	for {
		t.visited[t.vertex(x, y)] |= 1 << d
		x += delta[d].dx
		y += delta[d].dy
		c.Steps++

		nd := next(t.vertexCase(x, y), d)
		if x == x0 && y == y0 && nd == d0 {
			if d != d0 {
				// the start vertex is a corner
				c.Points = append([]vec.Vec2{{X: float64(x0), Y: float64(y0)}}, c.Points...)
			}
			break
		}
		if nd != d {
			c.Points = append(c.Points, vec.Vec2{X: float64(x), Y: float64(y)})
		}
		d = nd

		if c.Steps >= t.limit || t.visited[t.vertex(x, y)]&(1<<d) != 0 {
			c.Truncated = true
			break
		}
	}

	c.Polarity = Outer
	if signedArea(c.Points) > 0 {
		c.Polarity = Hole
	}
	return c
}

// signedArea computes the shoelace area of a closed polygon.
func signedArea(pts []vec.Vec2) float64 {
	var sum float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum / 2
}
