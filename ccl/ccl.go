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

// Package ccl finds the 4-connected foreground components of two-level
// images.  The same labelling is used for speck removal, hole filling and
// for locating the main subject of a logo.
package ccl

import (
	"cmp"
	"slices"

	"seehuhn.de/go/silhouette/bitmap"
)

// Component is a maximal 4-connected set of foreground pixels.
type Component struct {
	// Root is the pixel index (y*width + x) of the union-find
	// representative.  It identifies the component within one labelling.
	Root int

	// Size is the number of pixels in the component.
	Size int

	// Box is the bounding box of the component.
	Box bitmap.Rect
}

// Labeling assigns every foreground pixel of an image to its component.
type Labeling struct {
	Width, Height int

	// Root holds, for every pixel in row-major order, the Root of the
	// pixel's component, or -1 for background pixels.
	Root []int

	// Components lists all components in order of decreasing size.
	// Components of equal size are ordered by increasing Root.
	Components []Component
}

// Find returns the foreground components of img, largest first.
func Find(img *bitmap.Image) []Component {
	return Labels(img).Components
}

// Largest returns the largest foreground component of img, or nil if the
// image has no foreground pixels.
func Largest(img *bitmap.Image) *Component {
	comps := Find(img)
	if len(comps) == 0 {
		return nil
	}
	return &comps[0]
}

// Labels computes the component labelling of the foreground of img.
func Labels(img *bitmap.Image) *Labeling {
	return label(img.Width, img.Height, img.Mask())
}

// label labels the true entries of a row-major mask.
func label(width, height int, mask []bool) *Labeling {
	n := width * height
	uf := newUnionFind(n)

	// Only forward neighbours are needed, since every adjacency is seen
	// from its top-left pixel.
	for y := range height {
		for x := range width {
			idx := y*width + x
			if !mask[idx] {
				continue
			}
			if x+1 < width && mask[idx+1] {
				uf.union(int32(idx), int32(idx+1))
			}
			if y+1 < height && mask[idx+width] {
				uf.union(int32(idx), int32(idx+width))
			}
		}
	}

	l := &Labeling{
		Width:  width,
		Height: height,
		Root:   make([]int, n),
	}
	slot := make(map[int32]int)
	for y := range height {
		for x := range width {
			idx := y*width + x
			if !mask[idx] {
				l.Root[idx] = -1
				continue
			}
			root := uf.find(int32(idx))
			l.Root[idx] = int(root)

			k, ok := slot[root]
			if !ok {
				k = len(l.Components)
				slot[root] = k
				l.Components = append(l.Components, Component{
					Root: int(root),
					Box:  bitmap.Rect{X: x, Y: y, Width: 1, Height: 1},
				})
			}
			c := &l.Components[k]
			c.Size++
			c.Box = extend(c.Box, x, y)
		}
	}

	slices.SortFunc(l.Components, func(a, b Component) int {
		if a.Size != b.Size {
			return cmp.Compare(b.Size, a.Size)
		}
		return cmp.Compare(a.Root, b.Root)
	})

	return l
}

// extend grows r to include the pixel (x, y).
func extend(r bitmap.Rect, x, y int) bitmap.Rect {
	x0, y0 := min(r.X, x), min(r.Y, y)
	x1, y1 := max(r.Right(), x+1), max(r.Bottom(), y+1)
	return bitmap.Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}
