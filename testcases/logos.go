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

import "math"

// logoSize is the width and height of the synthetic logos.
const logoSize = 96

var logos = []Logo{
	{
		Name:   "disc",
		Width:  logoSize,
		Height: logoSize,
		Paint:  disc(48, 48, 30),
		Outer:  1,
		Holes:  0,
	},
	{
		Name:   "ring",
		Width:  logoSize,
		Height: logoSize,
		Paint:  annulus(48, 48, 34, 18),
		Outer:  1,
		Holes:  1,
	},
	{
		Name:   "speckled_ring",
		Width:  logoSize,
		Height: logoSize,
		Paint:  annulus(48, 48, 34, 18),
		Noise:  specks,
		Outer:  1,
		Holes:  1,
	},
	{
		Name:   "bars",
		Width:  logoSize,
		Height: logoSize,
		Paint: union(
			box(16, 16, 28, 80),
			box(42, 16, 54, 80),
			box(68, 16, 80, 80),
		),
		Outer: 3,
		Holes: 0,
	},
	{
		Name:   "island",
		Width:  logoSize,
		Height: logoSize,
		Paint: union(
			difference(box(12, 12, 84, 84), box(30, 30, 66, 66)),
			box(40, 40, 56, 56),
		),
		Outer: 2,
		Holes: 1,
	},
	{
		Name:   "corner_badge",
		Width:  logoSize,
		Height: logoSize,
		Paint: union(
			disc(24, 24, 14),
			box(88, 88, 90, 90),
		),
		Outer: -1,
		Holes: 0,
	},
	{
		Name:   "blank",
		Width:  logoSize,
		Height: logoSize,
		Paint:  func(x, y float64) bool { return false },
		Outer:  0,
		Holes:  0,
	},
}

func disc(cx, cy, r float64) func(x, y float64) bool {
	return func(x, y float64) bool {
		return math.Hypot(x-cx, y-cy) <= r
	}
}

func annulus(cx, cy, outer, inner float64) func(x, y float64) bool {
	return func(x, y float64) bool {
		d := math.Hypot(x-cx, y-cy)
		return d <= outer && d > inner
	}
}

func box(x1, y1, x2, y2 float64) func(x, y float64) bool {
	return func(x, y float64) bool {
		return x >= x1 && x < x2 && y >= y1 && y < y2
	}
}

func union(parts ...func(x, y float64) bool) func(x, y float64) bool {
	return func(x, y float64) bool {
		for _, p := range parts {
			if p(x, y) {
				return true
			}
		}
		return false
	}
}

func difference(a, b func(x, y float64) bool) func(x, y float64) bool {
	return func(x, y float64) bool {
		return a(x, y) && !b(x, y)
	}
}

// specks flips isolated single pixels, spread over the whole image.
func specks(x, y int) bool {
	return (31*x+17*y)%101 == 0
}
