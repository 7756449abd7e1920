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

import "fmt"

// Limits used by [Analyze].
const (
	// MaxDimension is the largest image side which is considered safe to
	// process.
	MaxDimension = 4096

	// WarnDimension is the image side above which a size warning is issued.
	WarnDimension = 2000

	// ComplexColorThreshold is the number of distinct quantised colours
	// above which an image is considered photographic.
	ComplexColorThreshold = 1000

	maxColorSamples = 10000
)

// Analysis describes how well an input image suits silhouette extraction.
type Analysis struct {
	Width, Height int

	// Oversized is set if one of the sides exceeds MaxDimension.
	Oversized bool

	// LikelyPhoto is set if the image contains many distinct colours,
	// which indicates gradients or photographic content.
	LikelyPhoto bool

	Warnings    []string
	Suggestions []string
}

// IsSimple reports whether the image is a good candidate for tracing.
func (a *Analysis) IsSimple() bool {
	return !a.Oversized && !a.LikelyPhoto
}

// Analyze inspects the size and the colour complexity of img.  The colour
// count is estimated from an evenly spaced sample of at most 10000 pixels,
// with every channel quantised to 16 levels.
func Analyze(img *Image) *Analysis {
	w, h := img.Width, img.Height
	a := &Analysis{Width: w, Height: h}

	a.Oversized = w > MaxDimension || h > MaxDimension
	if a.Oversized {
		a.Warnings = append(a.Warnings,
			fmt.Sprintf("image is very large (%d×%d), this may cause performance issues", w, h))
		a.Suggestions = append(a.Suggestions, "resize the image before processing")
	} else if w > WarnDimension || h > WarnDimension {
		a.Warnings = append(a.Warnings, fmt.Sprintf("large image detected (%d×%d)", w, h))
	}

	n := w * h
	if n == 0 {
		return a
	}
	sampleSize := min(float64(maxColorSamples), float64(n)/4)
	step := max(1, int(float64(n)/sampleSize))

	colors := make(map[[3]byte]struct{})
	for i := 0; i < n && len(colors) < ComplexColorThreshold+100; i += step {
		p := img.Pix[4*i : 4*i+3 : 4*i+3]
		colors[[3]byte{p[0] / 16, p[1] / 16, p[2] / 16}] = struct{}{}
	}

	a.LikelyPhoto = len(colors) > ComplexColorThreshold
	if a.LikelyPhoto {
		a.Warnings = append(a.Warnings, "image appears to contain gradients or photographic content")
		a.Suggestions = append(a.Suggestions,
			"logo silhouettes work best with flat colours and clear edges",
			"try a higher denoise level")
	}

	return a
}
