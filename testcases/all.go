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

// Shapes contains all vector shapes, grouped by category.
// The category name is used as a prefix in file names.
var Shapes = map[string][]Shape{
	"fill":    fillShapes,
	"curve":   curveShapes,
	"subpath": subpathShapes,
	"ctm":     ctmShapes,
	"large":   largeShapes,
}

// Logos contains the synthetic raster logos.
var Logos = logos
