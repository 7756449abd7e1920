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

// Package vector holds the vector documents produced by the tracing
// pipeline, together with their SVG encoding and the final cleanup step.
package vector

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
)

// FillRule selects how the interior of a path is determined.
type FillRule int

// The supported fill rules.
const (
	NonZero FillRule = iota
	EvenOdd
)

func (r FillRule) String() string {
	if r == EvenOdd {
		return "evenodd"
	}
	return "nonzero"
}

// Foreground is the fill colour of silhouette paths.
const Foreground = "#000000"

// Background is the fill colour used for background regions by the
// tracer.  Cleanup removes all paths in this colour.
const Background = "#ffffff"

// Path is one filled path of a document.
type Path struct {
	Data *path.Data

	// Fill is a CSS colour notation, for example "#000000".
	Fill string

	Rule FillRule
}

// Document is a vector image.  Coordinates are given in the units of the
// view box, with the y-axis pointing down.
type Document struct {
	// Width and Height are the declared size of the image.
	Width, Height float64

	// ViewBox is the part of the coordinate plane which is mapped onto
	// the image area.
	ViewBox rect.Rect

	// Paths are painted in order.
	Paths []Path

	// Precision is the number of decimal places written for coordinates
	// when the document is encoded.  Negative values write coordinates
	// without rounding.
	Precision int
}

// DefaultPrecision is the coordinate precision of documents returned by
// [New].
const DefaultPrecision = 2

// New returns an empty document of the given size, with a view box
// matching the size.
func New(width, height float64) *Document {
	return &Document{
		Width:     width,
		Height:    height,
		ViewBox:   rect.Rect{URx: width, URy: height},
		Precision: DefaultPrecision,
	}
}

// WithFill returns a copy of d where paths filled with the foreground
// colour are filled with fill instead.  The path data is shared with d.
func (d *Document) WithFill(fill string) *Document {
	res := *d
	res.Paths = make([]Path, len(d.Paths))
	for i, p := range d.Paths {
		if p.Fill == Foreground {
			p.Fill = fill
		}
		res.Paths[i] = p
	}
	return &res
}

// Bounds returns the bounding box of all path coordinates, including
// Bézier control points.  The second return value is false if the document
// has no coordinates.
func (d *Document) Bounds() (rect.Rect, bool) {
	b := rect.Rect{
		LLx: math.Inf(1), LLy: math.Inf(1),
		URx: math.Inf(-1), URy: math.Inf(-1),
	}
	found := false
	for _, p := range d.Paths {
		if p.Data == nil {
			continue
		}
		for _, c := range p.Data.Coords {
			b.LLx = min(b.LLx, c.X)
			b.LLy = min(b.LLy, c.Y)
			b.URx = max(b.URx, c.X)
			b.URy = max(b.URy, c.Y)
			found = true
		}
	}
	if !found {
		return rect.Rect{}, false
	}
	return b, true
}
