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

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/silhouette/bitmap"
	"seehuhn.de/go/silhouette/vector"
)

// Shape is a filled path, used to exercise the rasteriser.
type Shape struct {
	Name   string          // lowercase a-z and _ only
	Path   *path.Data      // the geometry to fill
	Width  int             // canvas width in pixels
	Height int             // canvas height in pixels
	Rule   vector.FillRule // fill rule
	CTM    matrix.Matrix   // transformation matrix (zero-value means no transform)
}

// Document wraps the shape into a single-path vector document.
func (s Shape) Document() *vector.Document {
	doc := vector.New(float64(s.Width), float64(s.Height))
	doc.Paths = append(doc.Paths, vector.Path{
		Data: s.Path,
		Fill: vector.Foreground,
		Rule: s.Rule,
	})
	return doc
}

// Logo is a synthetic raster logo, used as pipeline input.
//
// Paint reports whether the pixel with the given top-left corner is dark.
// Noise, if set, adds specks which are not part of the logo.
type Logo struct {
	Name   string
	Width  int
	Height int
	Paint  func(x, y float64) bool
	Noise  func(x, y int) bool

	// Outer and Holes give the expected number of outer and hole
	// contours after tracing the cleaned logo.  Negative values mean "not
	// checked".
	Outer, Holes int
}

// Image renders the logo, sampling each pixel at its centre.  Dark pixels
// are painted in a dark blue so that the binarizer has some work to do.
func (l Logo) Image() *bitmap.Image {
	img := bitmap.NewFilled(l.Width, l.Height, bitmap.Background)
	for y := range l.Height {
		for x := range l.Width {
			dark := l.Paint(float64(x)+0.5, float64(y)+0.5)
			if l.Noise != nil && l.Noise(x, y) {
				dark = !dark
			}
			if dark {
				i := 4 * (y*l.Width + x)
				copy(img.Pix[i:i+4], []byte{0x10, 0x20, 0x60, 0xff})
			}
		}
	}
	return img
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
