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

package export

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	"golang.org/x/image/draw"

	"seehuhn.de/go/silhouette/render"
	"seehuhn.de/go/silhouette/vector"
)

// jpegQuality matches the quality used by browsers for canvas exports.
const jpegQuality = 92

// encodeRaster renders doc onto a square canvas.  PNG output has a
// transparent background, JPEG output is painted onto white.
func encodeRaster(doc *vector.Document, f Format, size int) ([]byte, error) {
	ctm, err := containMatrix(doc, size)
	if err != nil {
		return nil, err
	}

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	if f == JPEG {
		draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	}
	if err := render.Document(dst, doc, ctm, nil); err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}

	buf := &bytes.Buffer{}
	switch f {
	case PNG:
		err = png.Encode(buf, dst)
	case JPEG:
		err = jpeg.Encode(buf, dst, &jpeg.Options{Quality: jpegQuality})
	}
	if err != nil {
		return nil, fmt.Errorf("export: encode %s: %w", f, err)
	}
	return buf.Bytes(), nil
}
