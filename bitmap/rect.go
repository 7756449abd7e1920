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

package bitmap

import "math"

// Rect is an axis-aligned pixel rectangle.  Width and Height are positive
// for every box returned by this module; a missing box is a nil *Rect.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Right returns the first column to the right of r.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the first row below r.
func (r Rect) Bottom() int { return r.Y + r.Height }

// Area returns the number of pixels covered by r.
func (r Rect) Area() int { return r.Width * r.Height }

// TouchesBorder reports whether r reaches any edge of a width×height image.
func (r Rect) TouchesBorder(width, height int) bool {
	return r.X <= 0 || r.Y <= 0 || r.Right() >= width || r.Bottom() >= height
}

// Expand grows r by pct percent of its own width (horizontally) and height
// (vertically) on every side and clamps the result to a width×height image.
func (r Rect) Expand(pct float64, width, height int) Rect {
	padX := int(math.Round(float64(r.Width) * pct / 100))
	padY := int(math.Round(float64(r.Height) * pct / 100))

	x0 := max(0, r.X-padX)
	y0 := max(0, r.Y-padY)
	x1 := min(width, r.Right()+padX)
	y1 := min(height, r.Bottom()+padY)

	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// ForegroundBox returns the bounding box of all foreground pixels of a
// two-level image, or nil if there are none.
func ForegroundBox(img *Image) *Rect {
	minX, minY := img.Width, img.Height
	maxX, maxY := -1, -1
	for y := range img.Height {
		row := img.Pix[4*y*img.Width : 4*(y+1)*img.Width]
		for x := range img.Width {
			if row[4*x] != 0 {
				continue
			}
			minX = min(minX, x)
			maxX = max(maxX, x)
			minY = min(minY, y)
			maxY = max(maxY, y)
		}
	}
	if maxX < 0 {
		return nil
	}
	return &Rect{X: minX, Y: minY, Width: maxX - minX + 1, Height: maxY - minY + 1}
}

// Crop copies the region r out of img.  The caller must make sure that r
// lies inside the image.
func Crop(img *Image, r Rect) *Image {
	out := New(r.Width, r.Height)
	rowLen := 4 * r.Width
	for y := range r.Height {
		src := 4 * ((r.Y+y)*img.Width + r.X)
		copy(out.Pix[y*rowLen:(y+1)*rowLen], img.Pix[src:src+rowLen])
	}
	return out
}
