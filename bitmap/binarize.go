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

// Luma weights (ITU-R BT.601).
const (
	lumaR = 0.299
	lumaG = 0.587
	lumaB = 0.114
)

// alphaCutoff is the smallest alpha value of a pixel which can become
// foreground.  More transparent pixels are always background.
const alphaCutoff = 128

// Luma returns the BT.601 luma of an RGB triple, in the range 0–255.
func Luma(r, g, b uint8) float64 {
	return lumaR*float64(r) + lumaG*float64(g) + lumaB*float64(b)
}

// Binarize converts img into a two-level image.  A pixel becomes foreground
// if its luma is below threshold; invert swaps the outcome.  Pixels with
// alpha below 50% are background regardless of their colour.
func Binarize(img *Image, threshold int, invert bool) *Image {
	out := New(img.Width, img.Height)
	t := float64(threshold)
	for i := 0; i < len(img.Pix); i += 4 {
		p := img.Pix[i : i+4 : i+4]

		fg := Luma(p[0], p[1], p[2]) < t
		if invert {
			fg = !fg
		}
		if p[3] < alphaCutoff {
			fg = false
		}

		out.setLevelAt(i/4, fg)
	}
	return out
}
