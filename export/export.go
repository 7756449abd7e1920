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

// Package export converts vector silhouettes into downloadable files:
// SVG, PNG, JPEG and PDF.
//
// Raster formats are rendered onto a square canvas of the requested
// resolution, with the drawing scaled to fit and centred.
package export

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/silhouette/vector"
)

// Export errors.
var (
	// ErrUnknownFormat is returned for formats other than svg, png, jpg
	// and pdf.
	ErrUnknownFormat = errors.New("export: unknown format")

	// ErrBadResolution is returned when a raster export is requested with
	// a resolution other than 512, 1024 or 2048.
	ErrBadResolution = errors.New("export: unsupported resolution")

	// ErrEmptyDocument is returned when the document has no usable size.
	ErrEmptyDocument = errors.New("export: document has no size")
)

// Format is an output file format.  The value is also the file name
// extension.
type Format string

// The supported formats.
const (
	SVG  Format = "svg"
	PNG  Format = "png"
	JPEG Format = "jpg"
	PDF  Format = "pdf"
)

// ParseFormat converts a format name into a Format.  The name is case
// insensitive and "jpeg" is accepted as an alias for "jpg".
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case SVG, PNG, JPEG, PDF:
		return f, nil
	case "jpeg":
		return JPEG, nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownFormat, s)
}

// IsRaster reports whether the format is a pixel format.
func (f Format) IsRaster() bool {
	return f == PNG || f == JPEG
}

// The supported raster resolutions.
const (
	Res512  = 512
	Res1024 = 1024
	Res2048 = 2048

	DefaultResolution = Res1024
)

// DefaultBaseName is used for file names when Options.BaseName is empty.
const DefaultBaseName = "logo-silhouette"

// Options describe a single export.
type Options struct {
	Format Format

	// Resolution is the width and height of raster exports in pixels.
	// Zero selects DefaultResolution.  It is ignored for vector formats.
	Resolution int

	// Fill replaces the foreground colour of the document.  The empty
	// string keeps black.
	Fill string

	// BaseName is the first part of the generated file name.
	BaseName string

	// Now returns the time used in the file name.  If nil, time.Now is
	// used.
	Now func() time.Time
}

// Artifact is the result of an export.
type Artifact struct {
	Data     []byte
	Filename string
	Format   Format

	// Size is the length of Data in bytes.
	Size int
}

// Export encodes doc in the format given by opt.
func Export(ctx context.Context, doc *vector.Document, opt Options) (*Artifact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := opt.Resolution
	if opt.Format.IsRaster() {
		if res == 0 {
			res = DefaultResolution
		}
		if res != Res512 && res != Res1024 && res != Res2048 {
			return nil, fmt.Errorf("%w: %d", ErrBadResolution, opt.Resolution)
		}
	}

	fill := opt.Fill
	if fill == "" {
		fill = vector.Foreground
	}
	if _, err := vector.ParseColor(fill); err != nil {
		return nil, fmt.Errorf("export: fill: %w", err)
	}
	if fill != vector.Foreground {
		doc = doc.WithFill(fill)
	}

	var data []byte
	var err error
	switch opt.Format {
	case SVG:
		data = encodeSVG(doc)
	case PNG, JPEG:
		data, err = encodeRaster(doc, opt.Format, res)
	case PDF:
		data, err = encodePDF(doc)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownFormat, opt.Format)
	}
	if err != nil {
		return nil, err
	}

	now := time.Now
	if opt.Now != nil {
		now = opt.Now
	}
	if !opt.Format.IsRaster() {
		res = 0
	}
	return &Artifact{
		Data:     data,
		Filename: Filename(opt.BaseName, opt.Format, res, now()),
		Format:   opt.Format,
		Size:     len(data),
	}, nil
}

// Filename returns "<base>-<res>-<unixmillis>.<ext>".  The resolution part
// is left out if res is zero.
func Filename(base string, f Format, res int, t time.Time) string {
	if base == "" {
		base = DefaultBaseName
	}
	var suffix string
	if res > 0 {
		suffix = fmt.Sprintf("-%d", res)
	}
	return fmt.Sprintf("%s%s-%d.%s", base, suffix, t.UnixMilli(), f)
}

const xmlDeclaration = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"

func encodeSVG(doc *vector.Document) []byte {
	return append([]byte(xmlDeclaration), doc.SVG()...)
}

// naturalSize returns the area of the document which is exported, and its
// size.
func naturalSize(doc *vector.Document) (rect.Rect, float64, float64, error) {
	box := doc.ViewBox
	w, h := box.URx-box.LLx, box.URy-box.LLy
	if w <= 0 || h <= 0 {
		box = rect.Rect{URx: doc.Width, URy: doc.Height}
		w, h = doc.Width, doc.Height
	}
	if w <= 0 || h <= 0 {
		return rect.Rect{}, 0, 0, ErrEmptyDocument
	}
	return box, w, h, nil
}

// containMatrix maps the exported area of doc onto a size×size square,
// scaled to fit and centred.
func containMatrix(doc *vector.Document, size int) (matrix.Matrix, error) {
	box, w, h, err := naturalSize(doc)
	if err != nil {
		return matrix.Matrix{}, err
	}
	s := float64(size)
	scale := min(s/w, s/h)
	offX := (s - w*scale) / 2
	offY := (s - h*scale) / 2
	return matrix.Matrix{
		scale, 0,
		0, scale,
		offX - scale*box.LLx, offY - scale*box.LLy,
	}, nil
}
