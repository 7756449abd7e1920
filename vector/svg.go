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

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
)

// WriteSVG writes d as a standalone SVG document.  Coordinates are
// rounded to d.Precision decimal places.
func (d *Document) WriteSVG(w io.Writer) error {
	bw := bufio.NewWriter(w)
	prec := d.Precision
	vb := d.ViewBox
	fmt.Fprintf(bw,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="%s %s %s %s">`+"\n",
		formatNumber(d.Width, prec), formatNumber(d.Height, prec),
		formatNumber(vb.LLx, prec), formatNumber(vb.LLy, prec),
		formatNumber(vb.URx-vb.LLx, prec), formatNumber(vb.URy-vb.LLy, prec))

	for _, p := range d.Paths {
		bw.WriteString(`<path d="`)
		bw.WriteString(PathString(p.Data, prec))
		bw.WriteString(`" fill="`)
		xml.EscapeText(bw, []byte(p.Fill))
		bw.WriteString(`"`)
		if p.Rule == EvenOdd {
			bw.WriteString(` fill-rule="evenodd"`)
		}
		bw.WriteString("/>\n")
	}
	bw.WriteString("</svg>\n")

	// bufio.Writer keeps the first write error and returns it here.
	return bw.Flush()
}

// SVG returns the SVG encoding of d.
func (d *Document) SVG() []byte {
	buf := &bytes.Buffer{}
	d.WriteSVG(buf) // writes to a bytes.Buffer cannot fail
	return buf.Bytes()
}
