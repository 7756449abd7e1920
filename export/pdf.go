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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/silhouette/bitmap"
	"seehuhn.de/go/silhouette/vector"
)

// encodePDF writes doc as a single page PDF file.  The page has the size
// of the document, one unit becoming one PDF point.  Colours are converted
// to DeviceGray.
func encodePDF(doc *vector.Document) ([]byte, error) {
	box, w, h, err := naturalSize(doc)
	if err != nil {
		return nil, err
	}
	pageW, pageH := doc.Width, doc.Height
	if pageW <= 0 || pageH <= 0 {
		pageW, pageH = w, h
	}

	buf := &bytes.Buffer{}
	paper := &pdf.Rectangle{URx: pageW, URy: pageH}
	page, err := document.WriteSinglePage(buf, paper, pdf.V1_7, nil)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}

	// PDF origin is bottom-left, documents use top-left.
	sx, sy := pageW/w, pageH/h
	page.Transform(matrix.Matrix{sx, 0, 0, -sy, -sx * box.LLx, pageH + sy*box.LLy})

	for i, p := range doc.Paths {
		if p.Data == nil || len(p.Data.Cmds) == 0 {
			continue
		}
		c, err := vector.ParseColor(p.Fill)
		if err != nil {
			page.Close()
			return nil, fmt.Errorf("export: path %d: %w", i, err)
		}
		page.SetFillColor(color.DeviceGray(bitmap.Luma(c.R, c.G, c.B) / 255))

		for cmd, pts := range p.Data.Iter().ToCubic() {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
			case path.CmdCubeTo:
				page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
			case path.CmdClose:
				page.ClosePath()
			}
		}
		if p.Rule == vector.EvenOdd {
			page.FillEvenOdd()
		} else {
			page.Fill()
		}
	}

	if err := page.Close(); err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	return buf.Bytes(), nil
}
