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

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
)

// DefaultMaxSize is the default working resolution: the longest image side
// is scaled down to this many pixels.
const DefaultMaxSize = 512

// Resize scales img down so that neither side exceeds maxSize, keeping the
// aspect ratio.  Images which already fit are returned unchanged (the same
// pointer), as are all images if maxSize is not positive.
func Resize(img *Image, maxSize int) *Image {
	if maxSize <= 0 || (img.Width <= maxSize && img.Height <= maxSize) {
		return img
	}

	scale := float64(maxSize) / float64(max(img.Width, img.Height))
	w := max(1, int(math.Round(float64(img.Width)*scale)))
	h := max(1, int(math.Round(float64(img.Height)*scale)))

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img.NRGBA(), image.Rect(0, 0, img.Width, img.Height), xdraw.Src, nil)

	return &Image{Width: w, Height: h, Pix: dst.Pix}
}
