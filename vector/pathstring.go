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
	"math"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/path"
)

// PathString converts p into SVG path data, for example
// "M 1 2 L 3 4 C 5 6 7 8 9 10 Z".  Coordinates are rounded to the given
// number of decimal places; trailing zeros are omitted.  A negative
// precision writes coordinates with full precision.
func PathString(p *path.Data, precision int) string {
	if p == nil {
		return ""
	}

	var b strings.Builder
	num := func(v float64) {
		b.WriteByte(' ')
		b.WriteString(formatNumber(v, precision))
	}
	cmd := func(c byte) {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(c)
	}

	k := 0
	for _, c := range p.Cmds {
		switch c {
		case path.CmdMoveTo:
			cmd('M')
			num(p.Coords[k].X)
			num(p.Coords[k].Y)
			k++
		case path.CmdLineTo:
			cmd('L')
			num(p.Coords[k].X)
			num(p.Coords[k].Y)
			k++
		case path.CmdQuadTo:
			cmd('Q')
			for _, q := range p.Coords[k : k+2] {
				num(q.X)
				num(q.Y)
			}
			k += 2
		case path.CmdCubeTo:
			cmd('C')
			for _, q := range p.Coords[k : k+3] {
				num(q.X)
				num(q.Y)
			}
			k += 3
		case path.CmdClose:
			cmd('Z')
		}
	}
	return b.String()
}

func formatNumber(v float64, precision int) string {
	if precision >= 0 {
		scale := math.Pow(10, float64(precision))
		v = math.Round(v*scale) / scale
	}
	if v == 0 {
		v = 0 // avoid "-0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
