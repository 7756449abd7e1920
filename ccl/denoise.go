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

package ccl

import "seehuhn.de/go/silhouette/bitmap"

// RemoveSmall repaints every foreground component with fewer than minArea
// pixels in the background colour.  If minArea is not positive, or if there
// is nothing to remove, img is returned unchanged.
func RemoveSmall(img *bitmap.Image, minArea int) *bitmap.Image {
	if minArea <= 0 {
		return img
	}

	l := Labels(img)
	small := make(map[int]bool)
	for _, c := range l.Components {
		if c.Size < minArea {
			small[c.Root] = true
		}
	}
	if len(small) == 0 {
		return img
	}

	return repaint(img, l, small, false)
}

// FillHoles repaints every enclosed background region with at most maxArea
// pixels in the foreground colour.  Background regions which touch one of
// the image borders are never filled, whatever their size.  If maxArea is
// not positive, or if there is nothing to fill, img is returned unchanged.
func FillHoles(img *bitmap.Image, maxArea int) *bitmap.Image {
	if maxArea <= 0 {
		return img
	}

	mask := img.Mask()
	for i, fg := range mask {
		mask[i] = !fg
	}
	l := label(img.Width, img.Height, mask)

	holes := make(map[int]bool)
	for _, c := range l.Components {
		if c.Size <= maxArea && !c.Box.TouchesBorder(img.Width, img.Height) {
			holes[c.Root] = true
		}
	}
	if len(holes) == 0 {
		return img
	}

	return repaint(img, l, holes, true)
}

// repaint returns a copy of img where all pixels belonging to one of the
// selected components of l are set to the given level.
func repaint(img *bitmap.Image, l *Labeling, selected map[int]bool, foreground bool) *bitmap.Image {
	out := img.Clone()
	for idx, root := range l.Root {
		if root >= 0 && selected[root] {
			out.SetLevel(idx%l.Width, idx/l.Width, foreground)
		}
	}
	return out
}
