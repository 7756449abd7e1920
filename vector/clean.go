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

package vector

import "seehuhn.de/go/geom/path"

// CleanOptions control [Clean].
type CleanOptions struct {
	// FitViewBox replaces the view box and the declared size of the
	// document by the bounding box of the remaining path data.
	FitViewBox bool
}

// Clean removes all background-coloured paths from doc and merges the
// remaining paths into a single path filled with the foreground colour,
// using the even-odd rule.  The traced paths wind outer boundaries and
// holes in opposite directions, so that the merged path renders the same
// under both fill rules.  The input document is not modified.
func Clean(doc *Document, opt CleanOptions) *Document {
	res := &Document{
		Width:     doc.Width,
		Height:    doc.Height,
		ViewBox:   doc.ViewBox,
		Precision: doc.Precision,
	}

	merged := &path.Data{}
	for _, p := range doc.Paths {
		if p.Data == nil || IsBackground(p.Fill) {
			continue
		}
		merged.Cmds = append(merged.Cmds, p.Data.Cmds...)
		merged.Coords = append(merged.Coords, p.Data.Coords...)
	}
	if len(merged.Cmds) > 0 {
		res.Paths = []Path{{Data: merged, Fill: Foreground, Rule: EvenOdd}}
	}

	if opt.FitViewBox {
		if b, ok := res.Bounds(); ok {
			res.ViewBox = b
			res.Width = b.URx - b.LLx
			res.Height = b.URy - b.LLy
		}
	}
	return res
}
