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
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// ErrBadColor is returned for colour notations which cannot be parsed.
var ErrBadColor = errors.New("vector: invalid colour")

var namedColors = map[string]color.NRGBA{
	"black": {0, 0, 0, 255},
	"white": {255, 255, 255, 255},
}

// ParseColor parses the CSS colour notations used in SVG fill attributes:
// "#rgb", "#rrggbb", "rgb(r, g, b)" with integer or percentage components,
// and the names "black" and "white".  Case and surrounding white space are
// ignored.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	if c, ok := namedColors[s]; ok {
		return c, nil
	}

	if hex, ok := strings.CutPrefix(s, "#"); ok {
		switch len(hex) {
		case 3:
			v, err := strconv.ParseUint(hex, 16, 16)
			if err != nil {
				break
			}
			r, g, b := uint8(v>>8&15), uint8(v>>4&15), uint8(v&15)
			return color.NRGBA{r * 17, g * 17, b * 17, 255}, nil
		case 6:
			v, err := strconv.ParseUint(hex, 16, 32)
			if err != nil {
				break
			}
			return color.NRGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 255}, nil
		}
		return color.NRGBA{}, fmt.Errorf("%w %q", ErrBadColor, s)
	}

	if args, ok := strings.CutPrefix(s, "rgb"); ok {
		args = strings.TrimSpace(args)
		if strings.HasPrefix(args, "(") && strings.HasSuffix(args, ")") {
			parts := strings.Split(args[1:len(args)-1], ",")
			if len(parts) == 3 {
				var c [3]uint8
				ok := true
				for i, part := range parts {
					v, err := parseComponent(strings.TrimSpace(part))
					if err != nil {
						ok = false
						break
					}
					c[i] = v
				}
				if ok {
					return color.NRGBA{c[0], c[1], c[2], 255}, nil
				}
			}
		}
	}

	return color.NRGBA{}, fmt.Errorf("%w %q", ErrBadColor, s)
}

func parseComponent(s string) (uint8, error) {
	s, percent := strings.CutSuffix(s, "%")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if percent {
		v = v * 255 / 100
	}
	v = min(max(v, 0), 255)
	return uint8(math.Round(v)), nil
}

// FormatColor returns the "#rrggbb" notation of c.  Alpha is ignored.
func FormatColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// IsBackground reports whether fill denotes the background colour white.
// Unparseable fills are not background.
func IsBackground(fill string) bool {
	c, err := ParseColor(fill)
	return err == nil && c == namedColors["white"]
}
